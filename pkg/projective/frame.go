package projective

import (
	"math"

	"github.com/philipparndt/gopappus/pkg/geometry"
)

// Frame orients the canonical equatorial semicircle (cos θ, sin θ, 0),
// θ ∈ [0, π), onto the visible half of the geodesic through two points.
// The rotation is RotZ(ZCos, Clockwise) · RotX(XSin).
type Frame struct {
	ZCos      float64 // cosine of the in-plane rotation
	Clockwise bool    // sign of the in-plane rotation
	XSin      float64 // sine of the tilt about the X axis
}

// DegenerateFrame is returned when the line through the two points has no
// planar direction. Two boundary points always produce it: their line is the
// boundary circle itself, which the identity frame traces.
var DegenerateFrame = Frame{ZCos: 1, Clockwise: false, XSin: 0}

// CalculateFrame returns the frame for the geodesic through p1 and p2.
func CalculateFrame(p1, p2 geometry.Vector3) Frame {
	line := Join(p1, p2)
	if line.Z < 0 {
		line = line.Neg()
	}

	if line.X == 0 && line.Y == 0 {
		return DegenerateFrame
	}

	// Direction of the geodesic's ideal point, on the equator.
	ideal, err := geometry.NewVector3(-line.Y, line.X, 0).Normalize()
	if err != nil {
		return DegenerateFrame
	}

	tilt, err := line.Cross(ideal).Normalize()
	if err != nil {
		return DegenerateFrame
	}

	return Frame{
		ZCos:      clampUnit(ideal.Dot(geometry.NewVector3(1, 0, 0))),
		Clockwise: ideal.Y < 0,
		XSin:      clampUnit(tilt.Z),
	}
}

// IsDegenerate reports whether f is the fallback frame.
func (f Frame) IsDegenerate() bool {
	return f == DegenerateFrame
}

// Matrix returns the composed rotation RotZ · RotX.
func (f Frame) Matrix() geometry.Matrix3 {
	return geometry.RotationZCos(f.ZCos, f.Clockwise).Mul(geometry.RotationXSin(f.XSin))
}

// BaseRotation returns the in-plane part RotZ of the frame.
func (f Frame) BaseRotation() geometry.Matrix3 {
	return geometry.RotationZCos(f.ZCos, f.Clockwise)
}

// InverseBaseRotation undoes BaseRotation.
func (f Frame) InverseBaseRotation() geometry.Matrix3 {
	return geometry.RotationZCos(f.ZCos, !f.Clockwise)
}

// clampUnit keeps rounding from pushing a cosine or sine past ±1.
func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
