package torus

import "math"

// angle is a sample angle with its sine and cosine precomputed.
type angle struct {
	sin, cos float64
}

// Point is a surface sample in camera space.
type Point struct {
	X, Y, Z float64
}

// rotation holds the sines and cosines of the two frame angles.
//
// A rotates around the x axis, B around the z axis.
type rotation struct {
	sinA, cosA float64
	sinB, cosB float64
}

func newRotation(a, b float64) rotation {
	sinA, cosA := math.Sincos(a)
	sinB, cosB := math.Sincos(b)
	return rotation{sinA: sinA, cosA: cosA, sinB: sinB, cosB: cosB}
}

// transform revolves the tube circle point at theta around the ring by phi, applies
// both frame rotations and pushes the result cameraDistance away from the viewer.
func (r rotation) transform(g Geometry, theta, phi angle) Point {
	circleX := g.RingRadius + g.TubeRadius*theta.cos
	circleY := g.TubeRadius * theta.sin

	return Point{
		X: circleX*(r.cosB*phi.cos+r.sinA*r.sinB*phi.sin) - circleY*r.cosA*r.sinB,
		Y: circleX*(r.sinB*phi.cos-r.sinA*r.cosB*phi.sin) + circleY*r.cosA*r.cosB,
		Z: g.CameraDistance + r.cosA*circleX*phi.sin + circleY*r.sinA,
	}
}

// luminance is the dot product of the rotated surface normal with the light
// direction (0, 1, -1). It ranges over [-√2, √2]; non-positive faces away.
func (r rotation) luminance(theta, phi angle) float64 {
	return phi.cos*theta.cos*r.sinB -
		r.cosA*theta.cos*phi.sin -
		r.sinA*theta.sin +
		r.cosB*(r.cosA*theta.sin-theta.cos*r.sinA*phi.sin)
}

// project maps a camera-space point onto a width x height cell grid. Screen y grows
// downward while model y grows upward. Coordinates are truncated toward zero.
func project(p Point, k1 float64, width, height int) (x, y int, ooz float64) {
	ooz = 1 / p.Z
	x = int(float64(width)/2 + k1*ooz*p.X)
	y = int(float64(height)/2 - k1*ooz*p.Y)
	return x, y, ooz
}

// samples returns the angles visited by stepping from 0 while below 2π.
//
// Angles accumulate by repeated addition so every caller walks the same values.
func samples(step float64) []angle {
	if step <= 0 {
		return nil
	}
	out := make([]angle, 0, int(2*math.Pi/step)+1)
	for a := 0.0; a < 2*math.Pi; a += step {
		s, c := math.Sincos(a)
		out = append(out, angle{sin: s, cos: c})
	}
	return out
}
