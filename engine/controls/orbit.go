package controls

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/go-gl/mathgl/mgl64"
)

var worldUp = mgl64.Vec3{0, 1, 0}

// orbitState owns the spherical form of the camera offset between updates.
type orbitState struct {
	spherical   Spherical
	zoomChanged bool
}

// step folds pending deltas into the camera pose: it converts the offset to spherical form in
// a frame where camera.Up is +Y, applies the damped deltas, clamps, moves the target by the
// damped pan, writes the new position and orientation, and decays the deltas.
func (o *orbitState) step(cam camera.Camera, proj projection, target *mgl64.Vec3, delta *PendingDelta, cfg *Config) {
	toYUp := mgl64.QuatBetweenVectors(cam.Up(), worldUp)
	fromYUp := toYUp.Inverse()

	offset := toYUp.Rotate(cam.Position().Sub(*target))
	o.spherical = SphericalFromVec3(offset)

	d := cfg.DampingFactor
	o.spherical.Theta += delta.Theta * d
	o.spherical.Phi += delta.Phi * d

	o.spherical.Theta = clampAzimuth(o.spherical.Theta, cfg.MinAzimuthAngle, cfg.MaxAzimuthAngle)
	o.spherical.Phi = common.Clamp(o.spherical.Phi, cfg.MinPolarAngle, cfg.MaxPolarAngle)
	o.spherical.MakeSafe()

	if proj.applyScale(cam, &o.spherical, delta.Scale, cfg) {
		o.zoomChanged = true
	}

	*target = target.Add(delta.Pan.Mul(d))

	offset = fromYUp.Rotate(o.spherical.Vec3())
	cam.SetPosition(target.Add(offset))
	cam.LookAt(*target)

	delta.decay(d)
}
