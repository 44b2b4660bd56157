package input

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/hajimehoshi/ebiten/v2"
)

// PollEbitenTouches feeds ebiten's current touches into a. Call it once per ebiten Update.
//
// Parameters:
//   - a: the touch adapter
func PollEbitenTouches(a *TouchAdapter) {
	ids := ebiten.AppendTouchIDs(nil)
	points := make([]TouchPoint, 0, len(ids))
	for _, id := range ids {
		x, y := ebiten.TouchPosition(id)
		points = append(points, TouchPoint{ID: int(id), X: float64(x), Y: float64(y)})
	}
	a.Frame(points)
}

// PollEbitenMouse feeds ebiten's cursor, buttons and wheel into m. Call it once per ebiten
// Update. When several buttons are held the left button wins, then right, then middle.
//
// Parameters:
//   - m: the mouse adapter
func PollEbitenMouse(m *MouseAdapter) {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	button := common.MouseButtonNone
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		button = common.MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		button = common.MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		button = common.MouseButtonMiddle
	}

	held, down := m.Pressed()
	switch {
	case down && !ebiten.IsMouseButtonPressed(ebitenButton(held)):
		m.Button(held, false, x, y)
	case !down && button != common.MouseButtonNone:
		m.Button(button, true, x, y)
	default:
		m.Move(x, y)
	}

	if xoff, yoff := ebiten.Wheel(); xoff != 0 || yoff != 0 {
		m.Scroll(xoff, yoff)
	}
}

func ebitenButton(button int) ebiten.MouseButton {
	switch button {
	case common.MouseButtonRight:
		return ebiten.MouseButtonRight
	case common.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}
