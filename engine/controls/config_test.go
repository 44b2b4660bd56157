package controls

import (
	"errors"
	"math"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := map[string]struct {
		mutate  func(*Config)
		wantErr bool
	}{
		"defaults": {
			mutate: func(*Config) {},
		},
		"damping of one": {
			mutate:  func(c *Config) { c.DampingFactor = 1 },
			wantErr: true,
		},
		"negative damping": {
			mutate:  func(c *Config) { c.DampingFactor = -0.1 },
			wantErr: true,
		},
		"nan speed": {
			mutate:  func(c *Config) { c.RotateSpeed = math.NaN() },
			wantErr: true,
		},
		"inverted distance": {
			mutate: func(c *Config) {
				c.MinDistance = 10
				c.MaxDistance = 5
			},
			wantErr: true,
		},
		"negative zoom": {
			mutate:  func(c *Config) { c.MinZoom = -1 },
			wantErr: true,
		},
		"polar beyond pi": {
			mutate:  func(c *Config) { c.MaxPolarAngle = 4 },
			wantErr: true,
		},
		"wrapping azimuth": {
			mutate: func(c *Config) {
				c.MinAzimuthAngle = 3 * math.Pi / 4
				c.MaxAzimuthAngle = 5 * math.Pi / 4
			},
		},
		"azimuth full turn": {
			mutate: func(c *Config) {
				c.MinAzimuthAngle = -math.Pi
				c.MaxAzimuthAngle = math.Pi
			},
			wantErr: true,
		},
		"azimuth half open": {
			mutate: func(c *Config) { c.MinAzimuthAngle = 0 },
		},
		"two contacts mapped to rotate": {
			mutate:  func(c *Config) { c.Touches.Two = StateRotate },
			wantErr: true,
		},
		"mouse mapped to dolly pan": {
			mutate:  func(c *Config) { c.MouseButtons.Right = StateDollyPan },
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestPropsApply(t *testing.T) {
	doc := []byte(`
enable_pan: false
rotate_speed: 0.5
damping_factor: 0.1
max_distance: 50
min_azimuth_angle: -1.5
max_azimuth_angle: 1.5
touches:
  two: dolly_rotate
mouse_buttons:
  middle: none
`)
	props, err := ParseProps(doc)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	cfg := DefaultConfig()
	if err := props.Apply(cfg); err != nil {
		t.Fatalf("unexpected apply error: %v", err)
	}

	if cfg.EnablePan || !cfg.EnableRotate || !cfg.EnableZoom {
		t.Errorf("expected only pan disabled, got rotate=%v zoom=%v pan=%v", cfg.EnableRotate, cfg.EnableZoom, cfg.EnablePan)
	}
	if cfg.RotateSpeed != 0.5 || cfg.ZoomSpeed != 1 {
		t.Errorf("expected rotate speed 0.5 and zoom speed untouched, got %v and %v", cfg.RotateSpeed, cfg.ZoomSpeed)
	}
	if cfg.DampingFactor != 0.1 || cfg.MaxDistance != 50 || cfg.MinDistance != 0 {
		t.Errorf("unexpected damping/distance: %v [%v, %v]", cfg.DampingFactor, cfg.MinDistance, cfg.MaxDistance)
	}
	if cfg.MinAzimuthAngle != -1.5 || cfg.MaxAzimuthAngle != 1.5 {
		t.Errorf("unexpected azimuth range [%v, %v]", cfg.MinAzimuthAngle, cfg.MaxAzimuthAngle)
	}
	if cfg.Touches.One != StateRotate || cfg.Touches.Two != StateDollyRotate {
		t.Errorf("unexpected touch mapping %+v", cfg.Touches)
	}
	if cfg.MouseButtons.Left != StateRotate || cfg.MouseButtons.Middle != StateNone {
		t.Errorf("unexpected mouse mapping %+v", cfg.MouseButtons)
	}
}

func TestPropsInfinity(t *testing.T) {
	props, err := ParseProps([]byte("max_zoom: .inf\nmin_azimuth_angle: -.inf\n"))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	cfg := DefaultConfig()
	cfg.MaxZoom = 4
	cfg.MinAzimuthAngle = -1
	cfg.MaxAzimuthAngle = 1
	if err := props.Apply(cfg); err != nil {
		t.Fatalf("unexpected apply error: %v", err)
	}
	if !math.IsInf(cfg.MaxZoom, 1) || !math.IsInf(cfg.MinAzimuthAngle, -1) {
		t.Errorf("expected unbounded limits, got zoom max %v azimuth min %v", cfg.MaxZoom, cfg.MinAzimuthAngle)
	}
}

func TestPropsErrors(t *testing.T) {
	tests := map[string]struct {
		doc        string
		parseErr   bool
		invalidCfg bool
	}{
		"unknown key": {
			doc:      "spin_speed: 2\n",
			parseErr: true,
		},
		"unknown state": {
			doc:      "touches:\n  one: spin\n",
			parseErr: true,
		},
		"invalid damping": {
			doc:        "damping_factor: 1.5\n",
			invalidCfg: true,
		},
		"empty document": {
			doc: "",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			props, err := ParseProps([]byte(tc.doc))
			if tc.parseErr {
				if err == nil {
					t.Fatal("expected parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}

			cfg := DefaultConfig()
			before := *cfg
			err = props.Apply(cfg)
			if tc.invalidCfg {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
				if *cfg != before {
					t.Error("expected config unchanged after failed apply")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected apply error: %v", err)
			}
		})
	}
}
