package input

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/controls"
)

// MousePointerID is the pointer id used for every mouse sample. Touch ids from the platform are
// non-negative, so the mouse never collides with a contact.
const MousePointerID = -1

// MouseAdapter turns button, cursor and scroll callbacks into pointer samples.
// The first pressed button captures the pointer until it is released; other buttons pressed
// meanwhile are ignored, and cursor motion without a captured button is hover and not forwarded.
type MouseAdapter struct {
	handler WheelHandler

	down   bool
	button int
	x, y   float64
}

// NewMouseAdapter creates an adapter that forwards to handler.
//
// Parameters:
//   - handler: the receiver of samples and wheel steps
//
// Returns:
//   - *MouseAdapter: the adapter
func NewMouseAdapter(handler WheelHandler) *MouseAdapter {
	return &MouseAdapter{handler: handler, button: common.MouseButtonNone}
}

// Button handles a button press or release at a cursor position.
//
// Parameters:
//   - button: a common.MouseButton* code
//   - pressed: true on press, false on release
//   - x, y: cursor position in pixels
func (m *MouseAdapter) Button(button int, pressed bool, x, y float64) {
	m.x, m.y = x, y
	switch {
	case pressed && !m.down:
		m.down = true
		m.button = button
		m.emit(controls.PhaseStart)
	case !pressed && m.down && button == m.button:
		m.emit(controls.PhaseEnd)
		m.down = false
		m.button = common.MouseButtonNone
	}
}

// Move handles cursor motion.
//
// Parameters:
//   - x, y: cursor position in pixels
func (m *MouseAdapter) Move(x, y float64) {
	if x == m.x && y == m.y {
		return
	}
	m.x, m.y = x, y
	if m.down {
		m.emit(controls.PhaseMove)
	}
}

// Scroll forwards vertical wheel motion. Platforms report positive yoff when the wheel moves
// away from the user, which dollies in.
//
// Parameters:
//   - xoff, yoff: scroll offsets
func (m *MouseAdapter) Scroll(xoff, yoff float64) {
	if yoff != 0 {
		m.handler.HandleWheel(-yoff)
	}
}

// Cancel releases a captured button without a matching platform event, for example when the
// window loses focus.
func (m *MouseAdapter) Cancel() {
	if !m.down {
		return
	}
	m.emit(controls.PhaseCancel)
	m.down = false
	m.button = common.MouseButtonNone
}

// Pressed reports whether a button is captured and which one.
func (m *MouseAdapter) Pressed() (button int, down bool) {
	return m.button, m.down
}

func (m *MouseAdapter) emit(phase controls.PointerPhase) {
	m.handler.HandlePointer(controls.PointerSample{
		ID:     MousePointerID,
		X:      m.x,
		Y:      m.y,
		Phase:  phase,
		Kind:   controls.KindMouse,
		Button: m.button,
	})
}
