package controls

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/go-gl/mathgl/mgl64"
)

// projection isolates the math that differs between camera variants.
type projection interface {
	// targetDistance returns the world-space height of half the viewport at the target,
	// used to scale pan.
	targetDistance(cam camera.Camera, target mgl64.Vec3) float64

	// applyScale folds a pending dolly scale into the pose and reports whether the camera
	// zoom changed.
	applyScale(cam camera.Camera, s *Spherical, scale float64, cfg *Config) bool
}

type perspectiveProjection struct{}

type orthographicProjection struct{}

var (
	_ projection = perspectiveProjection{}
	_ projection = orthographicProjection{}
)

// projectionFor selects the variant for a camera.
func projectionFor(cam camera.Camera) (projection, error) {
	switch p := cam.Projection(); p {
	case camera.ProjectionPerspective:
		return perspectiveProjection{}, nil
	case camera.ProjectionOrthographic:
		return orthographicProjection{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedProjection, p)
	}
}

func (perspectiveProjection) targetDistance(cam camera.Camera, target mgl64.Vec3) float64 {
	return cam.Position().Sub(target).Len() * math.Tan(cam.Fov()/2)
}

func (perspectiveProjection) applyScale(_ camera.Camera, s *Spherical, scale float64, cfg *Config) bool {
	s.Radius = common.Clamp(s.Radius*scale, cfg.MinDistance, cfg.MaxDistance)
	return false
}

func (orthographicProjection) targetDistance(cam camera.Camera, _ mgl64.Vec3) float64 {
	_, _, top, bottom := cam.Frustum()
	return (top - bottom) / (2 * cam.Zoom())
}

func (orthographicProjection) applyScale(cam camera.Camera, _ *Spherical, scale float64, cfg *Config) bool {
	zoom := cam.Zoom()
	next := common.Clamp(zoom/scale, cfg.MinZoom, cfg.MaxZoom)
	if next == zoom {
		return false
	}
	cam.SetZoom(next)
	return true
}
