package torus

// Geometry describes the torus, the camera offset and the surface sampling density.
//
// Zero or negative fields fall back to the defaults.
type Geometry struct {
	// TubeRadius is the radius of the tube cross-section (R1).
	TubeRadius float64
	// RingRadius is the distance from the torus axis to the tube center (R2).
	RingRadius float64
	// CameraDistance is the offset added along the viewing axis (K2).
	// It must exceed TubeRadius+RingRadius so every sample lies in front of the camera.
	CameraDistance float64

	// ThetaStep walks the tube cross-section, PhiStep walks the ring.
	ThetaStep float64
	PhiStep   float64
}

const (
	defaultTubeRadius     = 1.0
	defaultRingRadius     = 2.0
	defaultCameraDistance = 4.6

	defaultThetaStep = 0.07
	defaultPhiStep   = 0.02
)

// DefaultGeometry returns the stock donut.
func DefaultGeometry() Geometry {
	return Geometry{
		TubeRadius:     defaultTubeRadius,
		RingRadius:     defaultRingRadius,
		CameraDistance: defaultCameraDistance,
		ThetaStep:      defaultThetaStep,
		PhiStep:        defaultPhiStep,
	}
}

func (g Geometry) normalized() Geometry {
	if g.TubeRadius <= 0 {
		g.TubeRadius = defaultTubeRadius
	}
	if g.RingRadius <= 0 {
		g.RingRadius = defaultRingRadius
	}
	if g.CameraDistance <= 0 {
		g.CameraDistance = defaultCameraDistance
	}
	if g.ThetaStep <= 0 {
		g.ThetaStep = defaultThetaStep
	}
	if g.PhiStep <= 0 {
		g.PhiStep = defaultPhiStep
	}
	return g
}

// Scale returns the projection factor k1 for a screen width: the torus edge lands
// 3/8 of the width away from the center.
func (g Geometry) Scale(width int) float64 {
	return float64(width) * 3 / (8 * (g.TubeRadius + g.RingRadius))
}
