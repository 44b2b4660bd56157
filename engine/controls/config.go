package controls

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// TouchMapping selects the state driven by one and two touch contacts.
// One accepts StateRotate or StatePan; Two accepts StateDollyPan or StateDollyRotate.
type TouchMapping struct {
	One State
	Two State
}

// MouseMapping selects the state driven by each mouse button. StateNone leaves a button unbound.
type MouseMapping struct {
	Left   State
	Middle State
	Right  State
}

// Config holds the tunable parameters of an orbit session. The host owns it and may change any
// field between frames; the controls read it on every event and every Update.
type Config struct {
	Enabled bool

	EnableRotate bool
	EnableZoom   bool
	EnablePan    bool

	RotateSpeed float64
	ZoomSpeed   float64
	PanSpeed    float64

	// DampingFactor is the fraction of pending delta applied per Update, in [0, 1).
	DampingFactor float64

	// Perspective radius limits.
	MinDistance float64
	MaxDistance float64

	// Orthographic zoom limits.
	MinZoom float64
	MaxZoom float64

	// Polar limits in radians, measured from the up axis, within [0, π].
	MinPolarAngle float64
	MaxPolarAngle float64

	// Azimuth limits in radians. Either may be infinite; when both are finite the interval
	// must lie within [-2π, 2π] and span less than 2π, and may wrap across ±π.
	MinAzimuthAngle float64
	MaxAzimuthAngle float64

	Touches      TouchMapping
	MouseButtons MouseMapping
}

// DefaultConfig returns the default configuration: every feature enabled, unit speeds,
// damping 0.05 and no limits beyond the polar range [0, π].
//
// Returns:
//   - *Config: a new configuration
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		EnableRotate:    true,
		EnableZoom:      true,
		EnablePan:       true,
		RotateSpeed:     1,
		ZoomSpeed:       1,
		PanSpeed:        1,
		DampingFactor:   0.05,
		MinDistance:     0,
		MaxDistance:     math.Inf(1),
		MinZoom:         0,
		MaxZoom:         math.Inf(1),
		MinPolarAngle:   0,
		MaxPolarAngle:   math.Pi,
		MinAzimuthAngle: math.Inf(-1),
		MaxAzimuthAngle: math.Inf(1),
		Touches: TouchMapping{
			One: StateRotate,
			Two: StateDollyPan,
		},
		MouseButtons: MouseMapping{
			Left:   StateRotate,
			Middle: StateDolly,
			Right:  StatePan,
		},
	}
}

// Validate checks ranges and gesture mappings.
//
// Returns:
//   - error: nil, or an error wrapping ErrInvalidConfig naming the offending field
func (c *Config) Validate() error {
	for name, v := range map[string]float64{
		"RotateSpeed":   c.RotateSpeed,
		"ZoomSpeed":     c.ZoomSpeed,
		"PanSpeed":      c.PanSpeed,
		"DampingFactor": c.DampingFactor,
		"MinDistance":   c.MinDistance,
		"MinZoom":       c.MinZoom,
		"MinPolarAngle": c.MinPolarAngle,
		"MaxPolarAngle": c.MaxPolarAngle,
	} {
		if !common.IsFinite(v) {
			return invalid("%s must be finite, got %v", name, v)
		}
	}
	for name, v := range map[string]float64{
		"MaxDistance":     c.MaxDistance,
		"MaxZoom":         c.MaxZoom,
		"MinAzimuthAngle": c.MinAzimuthAngle,
		"MaxAzimuthAngle": c.MaxAzimuthAngle,
	} {
		if math.IsNaN(v) {
			return invalid("%s must not be NaN", name)
		}
	}

	if c.DampingFactor < 0 || c.DampingFactor >= 1 {
		return invalid("DampingFactor must be in [0, 1), got %v", c.DampingFactor)
	}
	if c.MinDistance < 0 || c.MinDistance > c.MaxDistance {
		return invalid("distance range [%v, %v] is empty or negative", c.MinDistance, c.MaxDistance)
	}
	if c.MinZoom < 0 || c.MinZoom > c.MaxZoom {
		return invalid("zoom range [%v, %v] is empty or negative", c.MinZoom, c.MaxZoom)
	}
	if c.MinPolarAngle < 0 || c.MaxPolarAngle > math.Pi || c.MinPolarAngle > c.MaxPolarAngle {
		return invalid("polar range [%v, %v] must lie within [0, π]", c.MinPolarAngle, c.MaxPolarAngle)
	}
	if c.MinAzimuthAngle > c.MaxAzimuthAngle {
		return invalid("azimuth range [%v, %v] is empty", c.MinAzimuthAngle, c.MaxAzimuthAngle)
	}
	if !math.IsInf(c.MinAzimuthAngle, 0) && !math.IsInf(c.MaxAzimuthAngle, 0) {
		if c.MinAzimuthAngle < -2*math.Pi || c.MaxAzimuthAngle > 2*math.Pi ||
			c.MaxAzimuthAngle-c.MinAzimuthAngle >= 2*math.Pi {
			return invalid("azimuth range [%v, %v] must lie within [-2π, 2π] and span less than 2π",
				c.MinAzimuthAngle, c.MaxAzimuthAngle)
		}
	}

	if s := c.Touches.One; s != StateRotate && s != StatePan {
		return invalid("Touches.One must be rotate or pan, got %v", s)
	}
	if s := c.Touches.Two; s != StateDollyPan && s != StateDollyRotate {
		return invalid("Touches.Two must be dolly_pan or dolly_rotate, got %v", s)
	}
	for name, s := range map[string]State{
		"MouseButtons.Left":   c.MouseButtons.Left,
		"MouseButtons.Middle": c.MouseButtons.Middle,
		"MouseButtons.Right":  c.MouseButtons.Right,
	} {
		switch s {
		case StateNone, StateRotate, StateDolly, StatePan:
		default:
			return invalid("%s must be none, rotate, dolly or pan, got %v", name, s)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
