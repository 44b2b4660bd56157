package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl64"
)

// Projection identifies the projection variant of a camera.
// All distance and zoom math in the orbit controls depends on it.
type Projection int

const (
	// ProjectionUnknown is the zero value; cameras reporting it are rejected by the controls.
	ProjectionUnknown Projection = iota
	// ProjectionPerspective is a pinhole projection parameterized by a vertical field of view.
	ProjectionPerspective
	// ProjectionOrthographic is a parallel projection parameterized by a frustum and a zoom factor.
	ProjectionOrthographic
)

// String returns a human-readable projection name.
func (p Projection) String() string {
	switch p {
	case ProjectionPerspective:
		return "perspective"
	case ProjectionOrthographic:
		return "orthographic"
	default:
		return "unknown"
	}
}

type cameraImpl struct {
	mu *sync.Mutex

	projection Projection

	position   mgl64.Vec3
	quaternion mgl64.Quat
	up         mgl64.Vec3

	// perspective
	fov    float64
	aspect float64

	near float64
	far  float64

	// orthographic, in view units at zoom 1
	left, right, top, bottom float64
	zoom                     float64
}

// Camera defines the interface for a 3D camera whose pose is driven by external controls.
// The camera owns its position, orientation and zoom; it computes view and projection
// matrices on demand from that state.
type Camera interface {
	// Projection returns the projection variant of the camera.
	//
	// Returns:
	//   - Projection: perspective or orthographic
	Projection() Projection

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl64.Vec3: world-space position
	Position() mgl64.Vec3

	// SetPosition sets the camera's world-space position. Orientation is left unchanged.
	//
	// Parameters:
	//   - p: world-space position
	SetPosition(p mgl64.Vec3)

	// Quaternion returns the camera's world-space orientation.
	//
	// Returns:
	//   - mgl64.Quat: unit quaternion
	Quaternion() mgl64.Quat

	// SetQuaternion sets the camera's world-space orientation.
	//
	// Parameters:
	//   - q: orientation, normalized on store
	SetQuaternion(q mgl64.Quat)

	// Up returns the camera's up vector, the axis the orbit controls revolve around.
	//
	// Returns:
	//   - mgl64.Vec3: up vector
	Up() mgl64.Vec3

	// SetUp sets the camera's up vector.
	//
	// Parameters:
	//   - up: up vector, normalized on store
	SetUp(up mgl64.Vec3)

	// Fov returns the vertical field of view in radians. Only meaningful for perspective cameras.
	//
	// Returns:
	//   - float64: field of view in radians
	Fov() float64

	// SetFov sets the vertical field of view in radians.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float64)

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float64: the aspect ratio
	Aspect() float64

	// SetAspect sets the aspect ratio. Orthographic cameras keep their vertical extent and
	// rescale the horizontal one.
	//
	// Parameters:
	//   - aspect: width / height
	SetAspect(aspect float64)

	// Zoom returns the zoom factor. Only meaningful for orthographic cameras; perspective cameras report 1.
	//
	// Returns:
	//   - float64: zoom factor (>1 magnifies)
	Zoom() float64

	// SetZoom sets the orthographic zoom factor. No-op for perspective cameras.
	//
	// Parameters:
	//   - zoom: zoom factor
	SetZoom(zoom float64)

	// Frustum returns the orthographic frustum planes at zoom 1.
	//
	// Returns:
	//   - left, right, top, bottom: view-space plane offsets
	Frustum() (left, right, top, bottom float64)

	// LookAt orients the camera so its -Z axis points at target, using the camera's up vector.
	//
	// Parameters:
	//   - target: world-space point to look at
	LookAt(target mgl64.Vec3)

	// MatrixColumn returns column i (0 = right, 1 = up, 2 = backward) of the camera's world
	// orientation matrix.
	//
	// Parameters:
	//   - i: column index in [0, 2]
	//
	// Returns:
	//   - mgl64.Vec3: the world-space axis
	MatrixColumn(i int) mgl64.Vec3

	// ViewMatrix returns the world-to-view matrix (column-major).
	//
	// Returns:
	//   - mgl64.Mat4: the view matrix
	ViewMatrix() mgl64.Mat4

	// ProjectionMatrix returns the projection matrix with a [0, 1] depth range (column-major).
	//
	// Returns:
	//   - mgl64.Mat4: the projection matrix
	ProjectionMatrix() mgl64.Mat4

	// ViewProjectionMatrix returns ProjectionMatrix * ViewMatrix.
	//
	// Returns:
	//   - mgl64.Mat4: the combined matrix
	ViewProjectionMatrix() mgl64.Mat4

	// Uniform returns the GPU uniform block for the current pose.
	//
	// Returns:
	//   - GPUCameraUniform: view-projection and position in float32
	Uniform() GPUCameraUniform
}

var _ Camera = &cameraImpl{}

func newCamera(projection Projection, options ...CameraBuilderOption) *cameraImpl {
	c := &cameraImpl{
		mu:         &sync.Mutex{},
		projection: projection,
		position:   mgl64.Vec3{0, 0, 10},
		quaternion: mgl64.QuatIdent(),
		up:         mgl64.Vec3{0, 1, 0},
		fov:        45.0 * (math.Pi / 180.0), // radians
		aspect:     1.0,
		near:       0.1,
		far:        1000.0,
		left:       -1,
		right:      1,
		top:        1,
		bottom:     -1,
		zoom:       1,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// NewPerspectiveCamera creates a perspective camera at (0, 0, 10) looking down -Z with a
// 45 degree vertical field of view.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewPerspectiveCamera(options ...CameraBuilderOption) Camera {
	return newCamera(ProjectionPerspective, options...)
}

// NewOrthographicCamera creates an orthographic camera at (0, 0, 10) looking down -Z with a
// [-1, 1] frustum and zoom 1.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewOrthographicCamera(options ...CameraBuilderOption) Camera {
	return newCamera(ProjectionOrthographic, options...)
}

func (c *cameraImpl) Projection() Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection
}

func (c *cameraImpl) Position() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(p mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
}

func (c *cameraImpl) Quaternion() mgl64.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quaternion
}

func (c *cameraImpl) SetQuaternion(q mgl64.Quat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quaternion = q.Normalize()
}

func (c *cameraImpl) Up() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) SetUp(up mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up.Normalize()
}

func (c *cameraImpl) Fov() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) SetFov(fov float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
}

func (c *cameraImpl) Aspect() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) SetAspect(aspect float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setAspect(aspect)
}

func (c *cameraImpl) Zoom() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.projection != ProjectionOrthographic {
		return 1
	}
	return c.zoom
}

func (c *cameraImpl) SetZoom(zoom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.projection != ProjectionOrthographic {
		return
	}
	c.zoom = zoom
}

func (c *cameraImpl) Frustum() (left, right, top, bottom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.left, c.right, c.top, c.bottom
}

func (c *cameraImpl) LookAt(target mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookAt(target)
}

func (c *cameraImpl) MatrixColumn(i int) mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var axis mgl64.Vec3
	axis[i] = 1
	return c.quaternion.Rotate(axis)
}

func (c *cameraImpl) ViewMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix()
}

func (c *cameraImpl) ProjectionMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix()
}

func (c *cameraImpl) ViewProjectionMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix().Mul4(c.viewMatrix())
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GPUCameraUniform{
		ViewProj:       common.Mat4ToFloat32(c.projectionMatrix().Mul4(c.viewMatrix())),
		CameraPosition: common.Vec3ToFloat32(c.position),
	}
}

// setAspect stores the aspect ratio and, for orthographic cameras, refits left/right around
// the vertical extent. Caller must hold the mutex.
func (c *cameraImpl) setAspect(aspect float64) {
	c.aspect = aspect
	if c.projection == ProjectionOrthographic {
		halfHeight := (c.top - c.bottom) / 2
		c.left = -halfHeight * aspect
		c.right = halfHeight * aspect
	}
}

// lookAt builds the rotation whose Z axis points from target to the eye and stores it as the
// camera quaternion. Degenerate inputs are nudged so the basis stays orthonormal.
// Caller must hold the mutex.
func (c *cameraImpl) lookAt(target mgl64.Vec3) {
	z := c.position.Sub(target)
	if z.LenSqr() == 0 {
		z[2] = 1
	}
	z = z.Normalize()

	x := c.up.Cross(z)
	if x.LenSqr() == 0 {
		// up is parallel to the view direction
		if math.Abs(c.up[2]) == 1 {
			z[0] += 0.0001
		} else {
			z[2] += 0.0001
		}
		z = z.Normalize()
		x = c.up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	rotation := mgl64.Mat4{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		0, 0, 0, 1,
	}
	c.quaternion = mgl64.Mat4ToQuat(rotation).Normalize()
}

// viewMatrix inverts the camera's world transform. Caller must hold the mutex.
func (c *cameraImpl) viewMatrix() mgl64.Mat4 {
	world := mgl64.Translate3D(c.position[0], c.position[1], c.position[2]).Mul4(c.quaternion.Mat4())
	return world.Inv()
}

// projectionMatrix builds the variant-specific projection. Caller must hold the mutex.
func (c *cameraImpl) projectionMatrix() mgl64.Mat4 {
	if c.projection == ProjectionOrthographic {
		cx := (c.right + c.left) / 2
		cy := (c.top + c.bottom) / 2
		dx := (c.right - c.left) / (2 * c.zoom)
		dy := (c.top - c.bottom) / (2 * c.zoom)
		return common.OrthographicZO(cx-dx, cx+dx, cy-dy, cy+dy, c.near, c.far)
	}
	return common.PerspectiveZO(c.fov, c.aspect, c.near, c.far)
}
