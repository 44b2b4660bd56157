package renderer

// RendererBuilderOption is a functional option applied to a renderer during construction via NewLineRenderer.
type RendererBuilderOption func(*lineRenderer)

// WithLines sets the initial line list.
//
// Parameters:
//   - lines: a line list, two vertices per segment
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithLines(lines []LineVertex) RendererBuilderOption {
	return func(r *lineRenderer) {
		r.lines = lines
	}
}

// WithForceFallbackAdapter forces the use of a fallback (software) GPU adapter when requesting
// the WebGPU adapter. Useful for headless CI machines without a GPU.
//
// Parameters:
//   - force: true to request the fallback adapter
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithForceFallbackAdapter(force bool) RendererBuilderOption {
	return func(r *lineRenderer) {
		r.forceFallbackAdapter = force
	}
}

// WithPresentMode sets the initial surface present mode.
//
// Parameters:
//   - mode: the PresentMode to use
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *lineRenderer) {
		r.presentMode = mode
	}
}

// WithMSAA sets the MSAA sample count. Defaults to MSAA4x.
//
// Parameters:
//   - count: the sample count
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *lineRenderer) {
		r.msaa = count
	}
}

// WithClearColor sets the background colour.
func WithClearColor(c ClearColor) RendererBuilderOption {
	return func(r *lineRenderer) {
		r.clearColor = &c
	}
}
