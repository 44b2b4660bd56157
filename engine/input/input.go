// Package input adapts platform mouse and touch events into controls.PointerSample streams.
package input

import "github.com/Carmen-Shannon/oxy-orbit/engine/controls"

// PointerHandler receives normalized pointer samples. controls.Controls implements it.
type PointerHandler interface {
	HandlePointer(s controls.PointerSample)
}

// WheelHandler receives pointer samples and wheel steps. controls.Controls implements it.
type WheelHandler interface {
	PointerHandler
	HandleWheel(deltaY float64)
}
