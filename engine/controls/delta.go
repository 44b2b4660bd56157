package controls

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PendingDelta is the input accumulated between updates. Update applies a damped fraction of
// Theta, Phi and Pan and decays the rest; Scale is consumed whole.
type PendingDelta struct {
	Theta float64
	Phi   float64
	Pan   mgl64.Vec3
	Scale float64
}

func newPendingDelta() PendingDelta {
	return PendingDelta{Scale: 1}
}

// Residual returns the largest remaining magnitude among Theta, Phi and Pan.
func (d PendingDelta) Residual() float64 {
	return max(math.Abs(d.Theta), math.Abs(d.Phi), d.Pan.Len())
}

func (d *PendingDelta) decay(damping float64) {
	keep := 1 - damping
	d.Theta *= keep
	d.Phi *= keep
	d.Pan = d.Pan.Mul(keep)
	d.Scale = 1
}

// deltaAccumulator turns pixel motion into pending deltas. Start points are the previous
// sample of the active gesture; every move consumes the difference and advances them.
type deltaAccumulator struct {
	pending PendingDelta

	rotateStart mgl64.Vec2
	panStart    mgl64.Vec2
	// touch dolly keeps the contact spread in Y; mouse dolly keeps the cursor position
	dollyStart mgl64.Vec2
}

func (a *deltaAccumulator) rotateLeft(angle float64) {
	a.pending.Theta -= angle
}

func (a *deltaAccumulator) rotateUp(angle float64) {
	a.pending.Phi -= angle
}

func (a *deltaAccumulator) dollyOut(scale float64) {
	a.pending.Scale /= scale
}

func (a *deltaAccumulator) dollyIn(scale float64) {
	a.pending.Scale *= scale
}

// rotateTo rotates by the pixel motion from rotateStart to end. Both axes are normalized by
// height so equal drags give equal angles at any aspect ratio.
func (a *deltaAccumulator) rotateTo(end mgl64.Vec2, speed, height float64) {
	delta := end.Sub(a.rotateStart).Mul(speed)
	a.rotateStart = end
	if height <= 0 {
		return
	}
	a.rotateLeft(2 * math.Pi * delta[0] / height)
	a.rotateUp(2 * math.Pi * delta[1] / height)
}

// panTo moves the pivot by the pixel motion from panStart to end along the camera's right
// (col0) and up (col1) axes. targetDistance is the world height of half the viewport at the
// target.
func (a *deltaAccumulator) panTo(end mgl64.Vec2, speed, height, targetDistance float64, col0, col1 mgl64.Vec3) {
	delta := end.Sub(a.panStart).Mul(speed)
	a.panStart = end
	if height <= 0 {
		return
	}
	left := 2 * delta[0] * targetDistance / height
	up := 2 * delta[1] * targetDistance / height
	a.pending.Pan = a.pending.Pan.Add(col0.Mul(-left)).Add(col1.Mul(up))
}

// pinchTo folds the ratio of the new contact spread to the previous one into Scale.
// Spreading the contacts apart dollies in.
func (a *deltaAccumulator) pinchTo(spread, zoomSpeed float64) {
	start := a.dollyStart[1]
	a.dollyStart = mgl64.Vec2{0, spread}
	if start <= 0 || spread <= 0 {
		return
	}
	a.dollyOut(math.Pow(spread/start, zoomSpeed))
}

// dragDollyTo dollies by a fixed step per sample: dragging down dollies out, up dollies in.
func (a *deltaAccumulator) dragDollyTo(end mgl64.Vec2, zoomSpeed float64) {
	dy := end[1] - a.dollyStart[1]
	a.dollyStart = end
	switch {
	case dy > 0:
		a.dollyOut(zoomScale(zoomSpeed))
	case dy < 0:
		a.dollyIn(zoomScale(zoomSpeed))
	}
}

// wheel dollies one step per event: negative deltaY dollies in, positive out.
func (a *deltaAccumulator) wheel(deltaY, zoomSpeed float64) {
	switch {
	case deltaY < 0:
		a.dollyIn(zoomScale(zoomSpeed))
	case deltaY > 0:
		a.dollyOut(zoomScale(zoomSpeed))
	}
}

func zoomScale(zoomSpeed float64) float64 {
	return math.Pow(0.95, zoomSpeed)
}
