package controls

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// State is the interaction mode of a gesture.
type State int

const (
	StateNone State = iota
	StateRotate
	StateDolly
	StatePan
	StateDollyPan
	StateDollyRotate
)

var stateNames = map[State]string{
	StateNone:        "none",
	StateRotate:      "rotate",
	StateDolly:       "dolly",
	StatePan:         "pan",
	StateDollyPan:    "dolly_pan",
	StateDollyRotate: "dolly_rotate",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ParseState resolves a state name as written by State.String, case-insensitively.
//
// Parameters:
//   - name: the state name
//
// Returns:
//   - State: the parsed state
//   - error: if the name is not a known state
func ParseState(name string) (State, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range stateNames {
		if n == name {
			return s, nil
		}
	}
	return StateNone, fmt.Errorf("unknown gesture state %q", name)
}

// enabled reports whether the features a state drives are allowed by cfg.
// Combined states need at least one of their two features.
func (s State) enabled(cfg *Config) bool {
	switch s {
	case StateRotate:
		return cfg.EnableRotate
	case StateDolly:
		return cfg.EnableZoom
	case StatePan:
		return cfg.EnablePan
	case StateDollyPan:
		return cfg.EnableZoom || cfg.EnablePan
	case StateDollyRotate:
		return cfg.EnableZoom || cfg.EnableRotate
	default:
		return false
	}
}

// ClassifyTouch maps a touch contact count to a state using cfg.Touches.
//
// Parameters:
//   - contacts: number of active touch contacts
//   - cfg: the live configuration
//
// Returns:
//   - State: the mapped state, or StateNone when the count or the mapped features are not usable
func ClassifyTouch(contacts int, cfg *Config) State {
	var s State
	switch contacts {
	case 1:
		s = cfg.Touches.One
	case 2:
		s = cfg.Touches.Two
	default:
		return StateNone
	}
	if !s.enabled(cfg) {
		return StateNone
	}
	return s
}

// ClassifyMouse maps a held mouse button to a state using cfg.MouseButtons.
//
// Parameters:
//   - button: a common.MouseButton* value
//   - cfg: the live configuration
//
// Returns:
//   - State: the mapped state, or StateNone when the button is unmapped or its feature disabled
func ClassifyMouse(button int, cfg *Config) State {
	var s State
	switch button {
	case common.MouseButtonLeft:
		s = cfg.MouseButtons.Left
	case common.MouseButtonMiddle:
		s = cfg.MouseButtons.Middle
	case common.MouseButtonRight:
		s = cfg.MouseButtons.Right
	default:
		return StateNone
	}
	if !s.enabled(cfg) {
		return StateNone
	}
	return s
}
