package renderer

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
)

//go:embed assets/line.wgsl
var lineShaderBody string

// lineShaderSource prepends the shared CameraUniform struct to the line shader.
func lineShaderSource() string {
	return camera.GPUCameraUniformSource + "\n" + lineShaderBody
}

// lineRenderer is the implementation of the LineRenderer interface.
type lineRenderer struct {
	mu *sync.Mutex

	camera  camera.Camera
	backend RendererBackend

	lines      []LineVertex
	linesDirty bool

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	msaa                 MSAASampleCount
	clearColor           *ClearColor
}

// LineRenderer draws a line list (grid, axes, markers) through a camera. It satisfies
// engine.FrameRenderer, so an engine only calls Render on invalidated frames.
type LineRenderer interface {
	// Render uploads the camera uniform and any pending line changes, then draws and presents.
	//
	// Returns:
	//   - error: an error if the frame could not be drawn
	Render() error

	// Resize reconfigures the surface for a new framebuffer size.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// SetLines replaces the drawn line list. Uploaded on the next Render.
	//
	// Parameters:
	//   - lines: a line list, two vertices per segment
	SetLines(lines []LineVertex)

	// SetCamera switches the camera the lines are viewed through.
	SetCamera(cam camera.Camera)

	// SetPresentMode changes the present mode. Takes effect on the next Resize.
	SetPresentMode(mode PresentMode)

	// SetClearColor changes the background colour.
	SetClearColor(c ClearColor)

	// Release frees the GPU resources.
	Release()
}

var _ LineRenderer = &lineRenderer{}

// NewLineRenderer creates a WebGPU line renderer for the window's surface.
//
// Parameters:
//   - cam: the camera the lines are viewed through
//   - win: the window providing the surface descriptor and initial size
//   - options: variadic list of RendererBuilderOption functions
//
// Returns:
//   - LineRenderer: the renderer
//   - error: an error if the GPU adapter, device or pipeline could not be created
func NewLineRenderer(cam camera.Camera, win window.Window, options ...RendererBuilderOption) (LineRenderer, error) {
	r := newLineRenderer(cam, nil, options...)

	backend, err := newWGPURendererBackend(win.SurfaceDescriptor(), win.Width(), win.Height(), r.forceFallbackAdapter, r.msaa, r.presentMode)
	if err != nil {
		return nil, fmt.Errorf("create renderer backend: %w", err)
	}
	r.backend = backend
	if r.clearColor != nil {
		backend.SetClearColor(*r.clearColor)
	}
	return r, nil
}

func newLineRenderer(cam camera.Camera, backend RendererBackend, options ...RendererBuilderOption) *lineRenderer {
	r := &lineRenderer{
		mu:          &sync.Mutex{},
		camera:      cam,
		backend:     backend,
		presentMode: PresentModeVSync,
		msaa:        MSAA4x,
	}
	for _, opt := range options {
		opt(r)
	}
	r.linesDirty = len(r.lines) > 0
	return r
}

func (r *lineRenderer) Render() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.linesDirty {
		if err := r.backend.UploadLines(MarshalLineVertices(r.lines), len(r.lines)); err != nil {
			return fmt.Errorf("upload lines: %w", err)
		}
		r.linesDirty = false
	}
	if r.camera != nil {
		uniform := r.camera.Uniform()
		r.backend.WriteCamera(uniform.Marshal())
	}
	return r.backend.DrawFrame()
}

func (r *lineRenderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *lineRenderer) SetLines(lines []LineVertex) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = lines
	r.linesDirty = true
}

func (r *lineRenderer) SetCamera(cam camera.Camera) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.camera = cam
}

func (r *lineRenderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *lineRenderer) SetClearColor(c ClearColor) {
	r.backend.SetClearColor(c)
}

func (r *lineRenderer) Release() {
	r.backend.Release()
}
