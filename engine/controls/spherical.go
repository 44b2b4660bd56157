package controls

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl64"
)

// poleEpsilon keeps Phi strictly inside (0, π).
const poleEpsilon = 1e-6

// Spherical is a camera-to-target offset in a Y-up frame. Phi is the polar angle from +Y,
// Theta the azimuth around +Y measured from +Z toward +X.
type Spherical struct {
	Radius float64
	Phi    float64
	Theta  float64
}

// SphericalFromVec3 converts a Y-up Cartesian offset. A zero vector yields all-zero angles.
//
// Parameters:
//   - v: the offset
//
// Returns:
//   - Spherical: the spherical form
func SphericalFromVec3(v mgl64.Vec3) Spherical {
	r := v.Len()
	if r == 0 {
		return Spherical{}
	}
	return Spherical{
		Radius: r,
		Theta:  math.Atan2(v[0], v[2]),
		Phi:    math.Acos(common.Clamp(v[1]/r, -1, 1)),
	}
}

// Vec3 converts back to a Y-up Cartesian offset.
func (s Spherical) Vec3() mgl64.Vec3 {
	sinPhiRadius := math.Sin(s.Phi) * s.Radius
	return mgl64.Vec3{
		sinPhiRadius * math.Sin(s.Theta),
		math.Cos(s.Phi) * s.Radius,
		sinPhiRadius * math.Cos(s.Theta),
	}
}

// MakeSafe nudges Phi off the poles.
func (s *Spherical) MakeSafe() {
	s.Phi = common.Clamp(s.Phi, poleEpsilon, math.Pi-poleEpsilon)
}

// clampAzimuth restricts theta to [min, max]. Finite bounds are first folded into (-π, π];
// when folding makes min > max the interval wraps across ±π and theta snaps to whichever bound
// lies on its side of the midpoint (min+max)/2.
func clampAzimuth(theta, min, max float64) float64 {
	if math.IsInf(min, 0) || math.IsInf(max, 0) {
		return theta
	}
	const twoPi = 2 * math.Pi
	if min < -math.Pi {
		min += twoPi
	} else if min > math.Pi {
		min -= twoPi
	}
	if max < -math.Pi {
		max += twoPi
	} else if max > math.Pi {
		max -= twoPi
	}

	if min <= max {
		return common.Clamp(theta, min, max)
	}
	if theta > (min+max)/2 {
		return math.Max(min, theta)
	}
	return math.Min(max, theta)
}
