package engine

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window whose events drive Run. Without a window the engine is headless
// and frames are advanced with Step.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer drawn on invalidated frames.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r FrameRenderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithUpdater registers an updater during engine construction.
//
// Parameters:
//   - u: the updater
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithUpdater(u Updater) EngineBuilderOption {
	return func(e *engine) {
		e.updaters = append(e.updaters, u)
	}
}

// WithUpdateWorkers sets the number of pool workers that advance updaters in parallel.
// Values <= 0 keep the default (one per CPU).
//
// Parameters:
//   - n: worker count
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithUpdateWorkers(n int) EngineBuilderOption {
	return func(e *engine) {
		if n > 0 {
			e.updateWorkers = n
		}
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.renderFrameLimit = frameDuration(fps)
	}
}
