package controls

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// PointerPhase is the lifecycle phase of a pointer sample.
type PointerPhase int

const (
	PhaseStart PointerPhase = iota
	PhaseMove
	PhaseEnd
	PhaseCancel
)

// PointerKind tells the controls whether a sample comes from a touch contact or a mouse.
// Touch gestures are classified by contact count, mouse gestures by button.
type PointerKind int

const (
	KindTouch PointerKind = iota
	KindMouse
)

// PointerSample is one normalized pointer event, produced by a platform adapter.
// Button carries a common.MouseButton* value for mouse samples and common.MouseButtonNone
// for touches.
type PointerSample struct {
	ID     int
	X, Y   float64
	Phase  PointerPhase
	Kind   PointerKind
	Button int
}

// Position returns the sample's screen-space position.
func (s PointerSample) Position() mgl64.Vec2 {
	return mgl64.Vec2{s.X, s.Y}
}

// PointerRegistry tracks active contacts by id in insertion order.
// It is not safe for concurrent use; Controls guards it with its own mutex.
type PointerRegistry struct {
	order     []int
	positions map[int]mgl64.Vec2
}

// NewPointerRegistry creates an empty registry.
//
// Returns:
//   - *PointerRegistry: the registry
func NewPointerRegistry() *PointerRegistry {
	return &PointerRegistry{
		positions: make(map[int]mgl64.Vec2),
	}
}

// Track upserts the last-known position of a contact. The first Track of an id fixes its
// position in the contact order.
//
// Parameters:
//   - id: the pointer identifier
//   - x, y: screen-space position in pixels
func (r *PointerRegistry) Track(id int, x, y float64) {
	if _, ok := r.positions[id]; !ok {
		r.order = append(r.order, id)
	}
	r.positions[id] = mgl64.Vec2{x, y}
}

// Remove deletes a contact.
//
// Parameters:
//   - id: the pointer identifier
//
// Returns:
//   - error: ErrUnknownPointer if the id is not tracked
func (r *PointerRegistry) Remove(id int) error {
	if _, ok := r.positions[id]; !ok {
		return fmt.Errorf("remove %d: %w", id, ErrUnknownPointer)
	}
	delete(r.positions, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Has reports whether id is tracked.
func (r *PointerRegistry) Has(id int) bool {
	_, ok := r.positions[id]
	return ok
}

// Len returns the number of active contacts.
func (r *PointerRegistry) Len() int {
	return len(r.order)
}

// Clear removes every contact.
func (r *PointerRegistry) Clear() {
	r.order = r.order[:0]
	clear(r.positions)
}

// Position returns the last-known position of a contact.
//
// Parameters:
//   - id: the pointer identifier
//
// Returns:
//   - mgl64.Vec2: screen-space position
//   - error: ErrUnknownPointer if the id is not tracked
func (r *PointerRegistry) Position(id int) (mgl64.Vec2, error) {
	p, ok := r.positions[id]
	if !ok {
		return mgl64.Vec2{}, fmt.Errorf("position %d: %w", id, ErrUnknownPointer)
	}
	return p, nil
}

// Centroid returns the position of the sole contact, or the midpoint of the first two when
// two or more are active. An empty registry yields the zero vector.
//
// Returns:
//   - mgl64.Vec2: the gesture's anchor point
func (r *PointerRegistry) Centroid() mgl64.Vec2 {
	switch len(r.order) {
	case 0:
		return mgl64.Vec2{}
	case 1:
		return r.positions[r.order[0]]
	default:
		return r.positions[r.order[0]].Add(r.positions[r.order[1]]).Mul(0.5)
	}
}

// Other returns the position of the contact paired with id among the first two contacts.
//
// Parameters:
//   - id: the pointer identifier
//
// Returns:
//   - mgl64.Vec2: the paired contact's position
//   - error: ErrUnknownPointer if id is not tracked or has no partner
func (r *PointerRegistry) Other(id int) (mgl64.Vec2, error) {
	if !r.Has(id) || len(r.order) < 2 {
		return mgl64.Vec2{}, fmt.Errorf("other of %d: %w", id, ErrUnknownPointer)
	}
	if r.order[0] == id {
		return r.positions[r.order[1]], nil
	}
	return r.positions[r.order[0]], nil
}

// Spread returns the distance between the first two contacts, or 0 with fewer than two.
func (r *PointerRegistry) Spread() float64 {
	if len(r.order) < 2 {
		return 0
	}
	return r.positions[r.order[0]].Sub(r.positions[r.order[1]]).Len()
}
