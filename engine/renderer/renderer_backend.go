package renderer

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting. This is the default;
	// demand-rendered frames are rare enough that the latency cost does not matter.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisample anti-aliasing. This is the default; thin lines alias badly without it.
	MSAA4x MSAASampleCount = 4
)

// ClearColor is the RGBA colour the frame is cleared to before drawing.
type ClearColor struct {
	R, G, B, A float64
}

// RendererBackend is the GPU API behind a LineRenderer.
type RendererBackend interface {
	// ConfigureSurface (re)creates the swapchain, MSAA and depth targets for the given size.
	ConfigureSurface(width, height int)

	// SetPresentMode changes the present mode used by the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// SetClearColor changes the colour the frame is cleared to.
	SetClearColor(c ClearColor)

	// UploadLines replaces the vertex buffer with a packed line list.
	//
	// Parameters:
	//   - data: vertices packed by MarshalLineVertices
	//   - count: number of vertices in data
	//
	// Returns:
	//   - error: an error if the buffer could not be created
	UploadLines(data []byte, count int) error

	// WriteCamera writes a packed camera uniform to the GPU.
	WriteCamera(data []byte)

	// DrawFrame acquires the swapchain texture, draws the uploaded lines and presents.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired or encoding failed
	DrawFrame() error

	// Release frees every GPU resource held by the backend.
	Release()
}
