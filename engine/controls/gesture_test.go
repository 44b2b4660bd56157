package controls

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

func TestClassifyTouch(t *testing.T) {
	tests := map[string]struct {
		contacts int
		mutate   func(*Config)
		expected State
	}{
		"no contacts": {
			contacts: 0,
			expected: StateNone,
		},
		"one contact rotates": {
			contacts: 1,
			expected: StateRotate,
		},
		"one contact rotate disabled": {
			contacts: 1,
			mutate:   func(c *Config) { c.EnableRotate = false },
			expected: StateNone,
		},
		"one contact mapped to pan": {
			contacts: 1,
			mutate:   func(c *Config) { c.Touches.One = StatePan },
			expected: StatePan,
		},
		"two contacts dolly pan": {
			contacts: 2,
			expected: StateDollyPan,
		},
		"two contacts zoom only": {
			contacts: 2,
			mutate:   func(c *Config) { c.EnablePan = false },
			expected: StateDollyPan,
		},
		"two contacts zoom and pan disabled": {
			contacts: 2,
			mutate: func(c *Config) {
				c.EnablePan = false
				c.EnableZoom = false
			},
			expected: StateNone,
		},
		"two contacts dolly rotate": {
			contacts: 2,
			mutate: func(c *Config) {
				c.Touches.Two = StateDollyRotate
				c.EnableZoom = false
			},
			expected: StateDollyRotate,
		},
		"three contacts": {
			contacts: 3,
			expected: StateNone,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			if tc.mutate != nil {
				tc.mutate(cfg)
			}
			if got := ClassifyTouch(tc.contacts, cfg); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestClassifyMouse(t *testing.T) {
	tests := map[string]struct {
		button   int
		mutate   func(*Config)
		expected State
	}{
		"left rotates":   {button: common.MouseButtonLeft, expected: StateRotate},
		"middle dollies": {button: common.MouseButtonMiddle, expected: StateDolly},
		"right pans":     {button: common.MouseButtonRight, expected: StatePan},
		"no button":      {button: common.MouseButtonNone, expected: StateNone},
		"pan disabled": {
			button:   common.MouseButtonRight,
			mutate:   func(c *Config) { c.EnablePan = false },
			expected: StateNone,
		},
		"remapped left": {
			button:   common.MouseButtonLeft,
			mutate:   func(c *Config) { c.MouseButtons.Left = StatePan },
			expected: StatePan,
		},
		"unbound middle": {
			button:   common.MouseButtonMiddle,
			mutate:   func(c *Config) { c.MouseButtons.Middle = StateNone },
			expected: StateNone,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			if tc.mutate != nil {
				tc.mutate(cfg)
			}
			if got := ClassifyMouse(tc.button, cfg); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestParseState(t *testing.T) {
	for s := range stateNames {
		got, err := ParseState(s.String())
		if err != nil || got != s {
			t.Errorf("round trip of %v: got %v (err %v)", s, got, err)
		}
	}
	if got, err := ParseState(" Dolly_Pan "); err != nil || got != StateDollyPan {
		t.Errorf("expected case-insensitive parse, got %v (err %v)", got, err)
	}
	if _, err := ParseState("spin"); err == nil {
		t.Error("expected error for unknown state")
	}
}
