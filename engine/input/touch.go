package input

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/controls"
)

// TouchPoint is one active contact in a platform touch snapshot.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// TouchAdapter diffs successive touch snapshots into Start, Move and End samples, for
// platforms that expose touches by polling rather than by events.
type TouchAdapter struct {
	handler PointerHandler

	order  []int
	active map[int]TouchPoint
	seen   map[int]bool
}

// NewTouchAdapter creates an adapter that forwards to handler.
//
// Parameters:
//   - handler: the receiver of samples
//
// Returns:
//   - *TouchAdapter: the adapter
func NewTouchAdapter(handler PointerHandler) *TouchAdapter {
	return &TouchAdapter{
		handler: handler,
		active:  make(map[int]TouchPoint),
		seen:    make(map[int]bool),
	}
}

// Frame applies a snapshot of the current contacts. Lifted contacts end first, then moved
// contacts move, then new contacts start, so a contact count change is seen after the
// positions it affects are current.
//
// Parameters:
//   - points: every contact currently down
func (a *TouchAdapter) Frame(points []TouchPoint) {
	clear(a.seen)
	for _, p := range points {
		a.seen[p.ID] = true
	}

	kept := a.order[:0]
	for _, id := range a.order {
		if a.seen[id] {
			kept = append(kept, id)
			continue
		}
		a.emit(a.active[id], controls.PhaseEnd)
		delete(a.active, id)
	}
	a.order = kept

	for _, p := range points {
		prev, ok := a.active[p.ID]
		if !ok || (prev.X == p.X && prev.Y == p.Y) {
			continue
		}
		a.active[p.ID] = p
		a.emit(p, controls.PhaseMove)
	}

	for _, p := range points {
		if _, ok := a.active[p.ID]; ok {
			continue
		}
		a.active[p.ID] = p
		a.order = append(a.order, p.ID)
		a.emit(p, controls.PhaseStart)
	}
}

// Cancel ends every active contact with PhaseCancel.
func (a *TouchAdapter) Cancel() {
	for _, id := range a.order {
		a.emit(a.active[id], controls.PhaseCancel)
	}
	a.order = a.order[:0]
	clear(a.active)
}

// Active returns the number of contacts currently down.
func (a *TouchAdapter) Active() int {
	return len(a.order)
}

func (a *TouchAdapter) emit(p TouchPoint, phase controls.PointerPhase) {
	a.handler.HandlePointer(controls.PointerSample{
		ID:     p.ID,
		X:      p.X,
		Y:      p.Y,
		Phase:  phase,
		Kind:   controls.KindTouch,
		Button: common.MouseButtonNone,
	})
}
