package controls

import "github.com/go-gl/mathgl/mgl64"

// changeEpsilon is the squared displacement, in world units or small-angle radians, below
// which a pose counts as unchanged.
const changeEpsilon = 1e-6

// changeDetector remembers the pose of the last notified update.
type changeDetector struct {
	lastPosition   mgl64.Vec3
	lastQuaternion mgl64.Quat
}

func newChangeDetector() changeDetector {
	return changeDetector{lastQuaternion: mgl64.QuatIdent()}
}

// check reports whether the pose moved beyond changeEpsilon since the last fire, or the zoom
// changed, and records the pose when it did. 8·(1 - q·q') approximates the squared rotation
// angle for small rotations.
func (c *changeDetector) check(position mgl64.Vec3, q mgl64.Quat, zoomChanged bool) bool {
	moved := position.Sub(c.lastPosition).LenSqr() > changeEpsilon
	turned := 8*(1-c.lastQuaternion.Dot(q)) > changeEpsilon
	if !zoomChanged && !moved && !turned {
		return false
	}
	c.lastPosition = position
	c.lastQuaternion = q
	return true
}
