package controls

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/go-gl/mathgl/mgl64"
)

// ChangeEvent is the snapshot delivered to the change callback after an update that moved,
// turned or zoomed the camera.
type ChangeEvent struct {
	Position   mgl64.Vec3
	Quaternion mgl64.Quat
	Target     mgl64.Vec3
	Zoom       float64
	Spherical  Spherical
	State      State
	Config     Config
}

// Controls is an orbit session: it turns pointer samples into pending deltas and, once per
// frame, folds them into the pose of a camera orbiting a target point.
//
// Event handlers never move the camera; Update is the only writer of the pose and the target.
// One session drives one camera. Independent sessions may be updated concurrently.
type Controls interface {
	// HandlePointer dispatches a sample to the handler for its phase.
	//
	// Parameters:
	//   - s: the pointer sample
	HandlePointer(s PointerSample)

	// HandlePointerDown tracks a new contact (or a pressed mouse button) and re-classifies the
	// gesture. No-op while the controls are disabled.
	//
	// Parameters:
	//   - s: the pointer sample
	HandlePointerDown(s PointerSample)

	// HandlePointerMove updates a tracked contact and accumulates the delta of the active
	// gesture. No-op while disabled or for untracked ids.
	//
	// Parameters:
	//   - s: the pointer sample
	HandlePointerMove(s PointerSample)

	// HandlePointerUp removes a contact. Remaining touch contacts continue as a freshly
	// classified gesture. No-op for untracked ids.
	//
	// Parameters:
	//   - s: the pointer sample
	HandlePointerUp(s PointerSample)

	// HandlePointerCancel behaves like HandlePointerUp.
	//
	// Parameters:
	//   - s: the pointer sample
	HandlePointerCancel(s PointerSample)

	// HandleWheel dollies one step per event while no drag gesture is active.
	// Negative deltaY dollies in, positive dollies out.
	//
	// Parameters:
	//   - deltaY: vertical scroll amount; only its sign is used
	HandleWheel(deltaY float64)

	// HandleLayout records the viewport size in pixels. Rotate and pan are normalized by the
	// height and are skipped while it is not positive.
	//
	// Parameters:
	//   - width, height: viewport size in pixels
	HandleLayout(width, height float64)

	// Update applies damped pending deltas to the camera and notifies observers when the pose
	// changed. It panics with ErrUnsupportedProjection if the camera's projection is unknown.
	//
	// Returns:
	//   - bool: true if the change callback fired
	Update() bool

	// SaveState records the current target, camera position and zoom for Reset.
	SaveState()

	// Reset restores the state recorded by SaveState (or at construction), drops pending
	// deltas and active contacts, and runs an update.
	Reset()

	// Camera returns the driven camera.
	Camera() camera.Camera

	// Config returns the live configuration. Callers may change it between frames.
	Config() *Config

	// Target returns the orbit pivot.
	Target() mgl64.Vec3

	// SetTarget moves the orbit pivot. The camera follows on the next Update.
	//
	// Parameters:
	//   - target: world-space pivot
	SetTarget(target mgl64.Vec3)

	// State returns the active gesture state.
	State() State

	// Spherical returns the offset computed by the last Update.
	Spherical() Spherical

	// Pending returns the input not yet applied to the camera.
	Pending() PendingDelta

	// Viewport returns the size recorded by HandleLayout.
	Viewport() (width, height float64)
}

type savedState struct {
	target   mgl64.Vec3
	position mgl64.Vec3
	zoom     float64
}

type controlsImpl struct {
	mu *sync.Mutex

	cam camera.Camera
	cfg *Config

	target        mgl64.Vec3
	width, height float64

	state    State
	kind     PointerKind
	button   int
	pointers *PointerRegistry

	acc     deltaAccumulator
	orbit   orbitState
	changes changeDetector
	saved   savedState

	onChange   func(ChangeEvent)
	invalidate func()
}

var _ Controls = &controlsImpl{}

// NewControls creates an orbit session for cam. A nil cfg uses DefaultConfig. The camera's
// current pose becomes the state restored by Reset.
//
// Parameters:
//   - cam: a perspective or orthographic camera
//   - cfg: the live configuration, owned by the caller
//   - options: functional options to configure the session
//
// Returns:
//   - Controls: the session
//   - error: ErrUnsupportedProjection for other cameras, or a wrapped ErrInvalidConfig
func NewControls(cam camera.Camera, cfg *Config, options ...ControlsBuilderOption) (Controls, error) {
	if cam == nil {
		return nil, fmt.Errorf("nil camera: %w", ErrUnsupportedProjection)
	}
	if _, err := projectionFor(cam); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &controlsImpl{
		mu:       &sync.Mutex{},
		cam:      cam,
		cfg:      cfg,
		pointers: NewPointerRegistry(),
		acc:      deltaAccumulator{pending: newPendingDelta()},
		changes:  newChangeDetector(),
	}
	for _, option := range options {
		option(c)
	}

	toYUp := mgl64.QuatBetweenVectors(cam.Up(), worldUp)
	c.orbit.spherical = SphericalFromVec3(toYUp.Rotate(cam.Position().Sub(c.target)))
	c.saveState()
	return c, nil
}

func (c *controlsImpl) HandlePointer(s PointerSample) {
	switch s.Phase {
	case PhaseStart:
		c.HandlePointerDown(s)
	case PhaseMove:
		c.HandlePointerMove(s)
	case PhaseEnd:
		c.HandlePointerUp(s)
	case PhaseCancel:
		c.HandlePointerCancel(s)
	}
}

func (c *controlsImpl) HandlePointerDown(s PointerSample) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.cfg.Enabled {
		return
	}
	c.pointers.Track(s.ID, s.X, s.Y)
	c.kind = s.Kind
	c.button = s.Button
	c.classify()
}

func (c *controlsImpl) HandlePointerMove(s PointerSample) {
	c.mu.Lock()
	if !c.cfg.Enabled || !c.pointers.Has(s.ID) {
		c.mu.Unlock()
		return
	}
	c.pointers.Track(s.ID, s.X, s.Y)
	accepted := c.accumulate()
	invalidate := c.invalidate
	c.mu.Unlock()

	if accepted && invalidate != nil {
		invalidate()
	}
}

func (c *controlsImpl) HandlePointerUp(s PointerSample) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.pointers.Remove(s.ID); err != nil {
		return
	}
	if c.kind == KindMouse {
		c.endGesture()
		return
	}
	c.classify()
}

func (c *controlsImpl) HandlePointerCancel(s PointerSample) {
	c.HandlePointerUp(s)
}

func (c *controlsImpl) HandleWheel(deltaY float64) {
	c.mu.Lock()
	if !c.cfg.Enabled || !c.cfg.EnableZoom || c.state != StateNone || deltaY == 0 {
		c.mu.Unlock()
		return
	}
	c.acc.wheel(deltaY, c.cfg.ZoomSpeed)
	invalidate := c.invalidate
	c.mu.Unlock()

	if invalidate != nil {
		invalidate()
	}
}

func (c *controlsImpl) HandleLayout(width, height float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width, c.height = width, height
}

func (c *controlsImpl) Update() bool {
	changed, event := c.update()
	if changed {
		onChange, invalidate := c.onChange, c.invalidate
		if onChange != nil {
			onChange(event)
		}
		if invalidate != nil {
			invalidate()
		}
	}
	return changed
}

func (c *controlsImpl) SaveState() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saveState()
}

func (c *controlsImpl) Reset() {
	c.mu.Lock()
	c.target = c.saved.target
	c.cam.SetPosition(c.saved.position)
	c.cam.SetZoom(c.saved.zoom)
	c.acc = deltaAccumulator{pending: newPendingDelta()}
	c.pointers.Clear()
	c.state = StateNone
	c.orbit.zoomChanged = true
	c.mu.Unlock()

	c.Update()
}

func (c *controlsImpl) Camera() camera.Camera {
	return c.cam
}

func (c *controlsImpl) Config() *Config {
	return c.cfg
}

func (c *controlsImpl) Target() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *controlsImpl) SetTarget(target mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = target
}

func (c *controlsImpl) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *controlsImpl) Spherical() Spherical {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orbit.spherical
}

func (c *controlsImpl) Pending() PendingDelta {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.acc.pending
}

func (c *controlsImpl) Viewport() (width, height float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width, c.height
}

// update runs one orbit step and the change check under the mutex.
func (c *controlsImpl) update() (bool, ChangeEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	proj, err := projectionFor(c.cam)
	if err != nil {
		panic(err)
	}

	c.orbit.step(c.cam, proj, &c.target, &c.acc.pending, c.cfg)

	if !c.changes.check(c.cam.Position(), c.cam.Quaternion(), c.orbit.zoomChanged) {
		return false, ChangeEvent{}
	}
	c.orbit.zoomChanged = false
	return true, ChangeEvent{
		Position:   c.cam.Position(),
		Quaternion: c.cam.Quaternion(),
		Target:     c.target,
		Zoom:       c.cam.Zoom(),
		Spherical:  c.orbit.spherical,
		State:      c.state,
		Config:     *c.cfg,
	}
}

// classify picks the state for the current contacts and re-seeds every start point from them.
// Caller must hold the mutex.
func (c *controlsImpl) classify() {
	if c.kind == KindMouse {
		c.state = ClassifyMouse(c.button, c.cfg)
	} else {
		c.state = ClassifyTouch(c.pointers.Len(), c.cfg)
	}
	if c.state == StateNone {
		c.endGesture()
		return
	}

	anchor := c.pointers.Centroid()
	c.acc.rotateStart = anchor
	c.acc.panStart = anchor
	if c.kind == KindMouse {
		c.acc.dollyStart = anchor
	} else {
		c.acc.dollyStart = mgl64.Vec2{0, c.pointers.Spread()}
	}
}

// endGesture returns to StateNone and discards start points. Caller must hold the mutex.
func (c *controlsImpl) endGesture() {
	c.state = StateNone
	c.acc.rotateStart = mgl64.Vec2{}
	c.acc.panStart = mgl64.Vec2{}
	c.acc.dollyStart = mgl64.Vec2{}
}

// accumulate feeds the moved contacts into the active gesture and reports whether any feature
// consumed them. Caller must hold the mutex.
func (c *controlsImpl) accumulate() bool {
	cfg := c.cfg
	anchor := c.pointers.Centroid()

	switch c.state {
	case StateRotate:
		if !cfg.EnableRotate {
			return false
		}
		c.acc.rotateTo(anchor, cfg.RotateSpeed, c.height)
	case StatePan:
		if !cfg.EnablePan {
			return false
		}
		c.pan(anchor)
	case StateDolly:
		if !cfg.EnableZoom {
			return false
		}
		c.acc.dragDollyTo(anchor, cfg.ZoomSpeed)
	case StateDollyPan:
		if !cfg.EnableZoom && !cfg.EnablePan {
			return false
		}
		if cfg.EnableZoom {
			c.acc.pinchTo(c.pointers.Spread(), cfg.ZoomSpeed)
		}
		if cfg.EnablePan {
			c.pan(anchor)
		}
	case StateDollyRotate:
		if !cfg.EnableZoom && !cfg.EnableRotate {
			return false
		}
		if cfg.EnableZoom {
			c.acc.pinchTo(c.pointers.Spread(), cfg.ZoomSpeed)
		}
		if cfg.EnableRotate {
			c.acc.rotateTo(anchor, cfg.RotateSpeed, c.height)
		}
	default:
		return false
	}
	return true
}

// pan converts motion of anchor into a pivot offset along the camera's screen axes.
// Caller must hold the mutex.
func (c *controlsImpl) pan(anchor mgl64.Vec2) {
	proj, err := projectionFor(c.cam)
	if err != nil {
		// Update reports the unsupported camera
		return
	}
	c.acc.panTo(anchor, c.cfg.PanSpeed, c.height,
		proj.targetDistance(c.cam, c.target), c.cam.MatrixColumn(0), c.cam.MatrixColumn(1))
}

// saveState records the pose restored by Reset. Caller must hold the mutex.
func (c *controlsImpl) saveState() {
	c.saved = savedState{
		target:   c.target,
		position: c.cam.Position(),
		zoom:     c.cam.Zoom(),
	}
}
