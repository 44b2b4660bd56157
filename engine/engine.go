package engine

import (
	"log"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
)

// Updater is advanced once per frame, after the frame callbacks. Orbit sessions
// (controls.Controls) satisfy it. Update reports whether the updater changed anything visible.
type Updater interface {
	Update() bool
}

// FrameRenderer draws a frame on demand.
type FrameRenderer interface {
	// Render draws and presents one frame.
	Render() error

	// Resize reconfigures the render target.
	Resize(width, height int)
}

type frameCallback struct {
	id       int
	priority int
	fn       func(deltaTime float64)
}

// engine implements the Engine interface.
// Runs the frame loop on the calling (main) thread and fans updaters out to a worker pool.
type engine struct {
	mu *sync.Mutex

	running atomic.Bool
	dirty   atomic.Bool

	window   window.Window
	renderer FrameRenderer

	profiler         *profiler.Profiler
	profilingEnabled bool

	callbacks      []frameCallback
	nextCallbackID int
	updaters       []Updater
	onResize       func(width, height int)

	updatePool    worker.DynamicWorkerPool
	updateWorkers int

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	idleInterval     time.Duration // sleep between frames that render nothing
}

// Engine drives demand-rendered frames: each frame runs frame callbacks in ascending priority,
// advances every Updater in parallel, and renders only if something called Invalidate since the
// last rendered frame.
type Engine interface {
	// Window returns the underlying window, or nil for a headless engine.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// SetRenderer sets the renderer drawn on invalidated frames.
	//
	// Parameters:
	//   - r: the renderer (nil disables drawing)
	SetRenderer(r FrameRenderer)

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// AddFrameCallback registers a function called once per frame. Callbacks run in ascending
	// priority; equal priorities run in registration order.
	//
	// Parameters:
	//   - priority: ordering key (lower runs first)
	//   - fn: function receiving the frame delta time in seconds
	//
	// Returns:
	//   - int: an id for RemoveFrameCallback
	AddFrameCallback(priority int, fn func(deltaTime float64)) int

	// RemoveFrameCallback unregisters a frame callback. Unknown ids are ignored.
	//
	// Parameters:
	//   - id: the id returned by AddFrameCallback
	RemoveFrameCallback(id int)

	// AddUpdater registers an updater advanced every frame after the frame callbacks.
	// Updaters run concurrently with each other and must not share mutable state.
	//
	// Parameters:
	//   - u: the updater
	AddUpdater(u Updater)

	// RemoveUpdater unregisters an updater.
	//
	// Parameters:
	//   - u: the updater to remove
	RemoveUpdater(u Updater)

	// SetResizeCallback registers a function called after the renderer has been resized.
	//
	// Parameters:
	//   - callback: function receiving the new framebuffer size in pixels
	SetResizeCallback(callback func(width, height int))

	// Invalidate requests a render on the next frame. Safe to call from any goroutine.
	Invalidate()

	// Step runs one frame.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous frame
	//
	// Returns:
	//   - bool: true if the frame was rendered
	Step(deltaTime float64) bool

	// Run polls window events and steps frames on the calling thread until the window closes
	// or Quit is called. The first frame always renders.
	Run()

	// Quit stops Run after the current frame. Safe to call multiple times and from any goroutine.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (window, renderer, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:            &sync.Mutex{},
		profiler:      profiler.NewProfiler(),
		updateWorkers: runtime.NumCPU(),
		idleInterval:  time.Second / 120,
	}

	for _, opt := range options {
		opt(e)
	}

	// Queue size of 256 leaves headroom for many orbit sessions per frame.
	e.updatePool = worker.NewDynamicWorkerPool(e.updateWorkers, 256, 1*time.Second)

	if e.window != nil {
		e.window.SetResizeCallback(e.resize)
	}
	e.dirty.Store(true)

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) SetRenderer(r FrameRenderer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderer = r
	e.dirty.Store(true)
}

func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderFrameLimit = frameDuration(fps)
}

func (e *engine) AddFrameCallback(priority int, fn func(deltaTime float64)) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextCallbackID++
	cb := frameCallback{id: e.nextCallbackID, priority: priority, fn: fn}
	// insert after every callback with priority <= cb.priority to keep registration order stable
	i := len(e.callbacks)
	for i > 0 && e.callbacks[i-1].priority > priority {
		i--
	}
	e.callbacks = slices.Insert(e.callbacks, i, cb)
	return cb.id
}

func (e *engine) RemoveFrameCallback(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.callbacks = slices.DeleteFunc(e.callbacks, func(cb frameCallback) bool {
		return cb.id == id
	})
}

func (e *engine) AddUpdater(u Updater) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.updaters = append(e.updaters, u)
}

func (e *engine) RemoveUpdater(u Updater) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.updaters = slices.DeleteFunc(e.updaters, func(v Updater) bool {
		return v == u
	})
}

func (e *engine) SetResizeCallback(callback func(width, height int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onResize = callback
}

func (e *engine) Invalidate() {
	e.dirty.Store(true)
}

func (e *engine) Step(deltaTime float64) bool {
	e.mu.Lock()
	callbacks := slices.Clone(e.callbacks)
	updaters := slices.Clone(e.updaters)
	renderer := e.renderer
	profiling := e.profilingEnabled
	e.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn(deltaTime)
	}

	if e.update(updaters) {
		e.dirty.Store(true)
	}

	rendered := false
	if e.dirty.Swap(false) && renderer != nil {
		if err := renderer.Render(); err != nil {
			log.Printf("[Engine] render failed: %v", err)
		} else {
			rendered = true
		}
	}

	if profiling && e.profiler != nil {
		e.profiler.Tick(rendered)
	}
	return rendered
}

func (e *engine) Run() {
	if e.window == nil {
		log.Printf("[Engine] Run called without a window")
		return
	}

	e.running.Store(true)
	e.dirty.Store(true)
	last := time.Now()

	for e.running.Load() && e.window.PollEvents() {
		frameStart := time.Now()
		dt := frameStart.Sub(last).Seconds()
		last = frameStart

		rendered := e.Step(dt)

		e.mu.Lock()
		limit := e.renderFrameLimit
		e.mu.Unlock()

		// Frame rate limiting; frames that render nothing still yield so input stays responsive.
		wait := limit
		if !rendered {
			wait = max(wait, e.idleInterval)
		}
		if remaining := wait - time.Since(frameStart); remaining > 0 {
			time.Sleep(remaining)
		}
	}
	e.running.Store(false)
}

func (e *engine) Quit() {
	e.running.Store(false)
}

// update advances every updater and reports whether any changed. With more than one updater
// the work is fanned out to the pool; a WaitGroup is the per-frame barrier.
func (e *engine) update(updaters []Updater) bool {
	switch len(updaters) {
	case 0:
		return false
	case 1:
		return updaters[0].Update()
	}

	var (
		wg      sync.WaitGroup
		changed atomic.Bool
	)
	for i, u := range updaters {
		wg.Add(1)
		e.updatePool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				if u.Update() {
					changed.Store(true)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()
	return changed.Load()
}

// resize forwards framebuffer changes to the renderer and the resize callback, then forces a
// render.
func (e *engine) resize(width, height int) {
	e.mu.Lock()
	renderer := e.renderer
	onResize := e.onResize
	e.mu.Unlock()

	if width <= 0 || height <= 0 {
		// minimized
		return
	}
	if renderer != nil {
		renderer.Resize(width, height)
	}
	if onResize != nil {
		onResize(width, height)
	}
	e.dirty.Store(true)
}

func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
