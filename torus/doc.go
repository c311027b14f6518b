// Package torus renders a rotating torus into a grid of ASCII glyphs.
//
// The renderer samples the torus surface parametrically, rotates every sample
// around two axes, projects it with a perspective divide and keeps the nearest
// lit sample per cell in a depth buffer.
//
// Pipeline (fixed):
//
//	Sample (theta, phi) → Rotate (A, B) → Project → Depth test → Glyph.
//
// Render is a pure function of its arguments: buffers are allocated per call and
// nothing is carried over between frames.
package torus
