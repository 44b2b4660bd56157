package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-9

func vecNear(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}

func TestLookAtBasis(t *testing.T) {
	tests := map[string]struct {
		position mgl64.Vec3
		target   mgl64.Vec3
		right    mgl64.Vec3
		back     mgl64.Vec3
	}{
		"down -Z": {
			position: mgl64.Vec3{0, 0, 10},
			right:    mgl64.Vec3{1, 0, 0},
			back:     mgl64.Vec3{0, 0, 1},
		},
		"from +X": {
			position: mgl64.Vec3{10, 0, 0},
			right:    mgl64.Vec3{0, 0, -1},
			back:     mgl64.Vec3{1, 0, 0},
		},
		"offset target": {
			position: mgl64.Vec3{1, 2, 8},
			target:   mgl64.Vec3{1, 2, 3},
			right:    mgl64.Vec3{1, 0, 0},
			back:     mgl64.Vec3{0, 0, 1},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewPerspectiveCamera(WithPosition(tc.position[0], tc.position[1], tc.position[2]))
			c.LookAt(tc.target)

			if got := c.MatrixColumn(0); !vecNear(got, tc.right, 1e-6) {
				t.Errorf("right axis: expected %v, got %v", tc.right, got)
			}
			if got := c.MatrixColumn(2); !vecNear(got, tc.back, 1e-6) {
				t.Errorf("back axis: expected %v, got %v", tc.back, got)
			}
		})
	}
}

func TestLookAtDegenerateUp(t *testing.T) {
	c := NewPerspectiveCamera(WithPosition(0, 10, 0))
	c.LookAt(mgl64.Vec3{})

	for i := range 3 {
		axis := c.MatrixColumn(i)
		if math.IsNaN(axis.Len()) || math.Abs(axis.Len()-1) > 1e-6 {
			t.Fatalf("column %d is not a unit vector: %v", i, axis)
		}
	}
	if back := c.MatrixColumn(2); back.Dot(mgl64.Vec3{0, 1, 0}) < 0.999 {
		t.Errorf("expected back axis close to +Y, got %v", back)
	}
}

func TestViewMatrixMapsEyeToOrigin(t *testing.T) {
	c := NewPerspectiveCamera(WithPosition(3, 4, 5), WithLookAt(0, 0, 0))
	eye := c.ViewMatrix().Mul4x1(mgl64.Vec4{3, 4, 5, 1}).Vec3()
	if !vecNear(eye, mgl64.Vec3{}, 1e-9) {
		t.Errorf("expected eye at view origin, got %v", eye)
	}

	target := c.ViewMatrix().Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
	if target[2] >= 0 {
		t.Errorf("expected target in front of the camera (-Z), got %v", target)
	}
}

func TestZoomByProjection(t *testing.T) {
	tests := map[string]struct {
		camera   Camera
		setZoom  float64
		expected float64
	}{
		"perspective ignores zoom": {
			camera:   NewPerspectiveCamera(),
			setZoom:  4,
			expected: 1,
		},
		"orthographic stores zoom": {
			camera:   NewOrthographicCamera(WithZoom(2)),
			setZoom:  4,
			expected: 4,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tc.camera.SetZoom(tc.setZoom)
			if got := tc.camera.Zoom(); got != tc.expected {
				t.Errorf("expected zoom %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestOrthographicAspectRefit(t *testing.T) {
	c := NewOrthographicCamera(WithFrustum(-1, 1, 5, -5))
	c.SetAspect(2)

	left, right, top, bottom := c.Frustum()
	if left != -10 || right != 10 {
		t.Errorf("expected horizontal extent [-10, 10], got [%v, %v]", left, right)
	}
	if top != 5 || bottom != -5 {
		t.Errorf("expected vertical extent unchanged, got [%v, %v]", bottom, top)
	}
}

func TestProjectionString(t *testing.T) {
	tests := map[string]struct {
		projection Projection
		expected   string
	}{
		"perspective":  {ProjectionPerspective, "perspective"},
		"orthographic": {ProjectionOrthographic, "orthographic"},
		"unknown":      {Projection(42), "unknown"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.projection.String(); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestUniformLayout(t *testing.T) {
	c := NewPerspectiveCamera(WithPosition(1, 2, 3), WithLookAt(0, 0, 0))
	u := c.Uniform()

	if got := u.Size(); got != 80 {
		t.Fatalf("expected uniform size 80, got %d", got)
	}
	if got := len(u.Marshal()); got != 80 {
		t.Fatalf("expected marshaled size 80, got %d", got)
	}
	if u.CameraPosition != [3]float32{1, 2, 3} {
		t.Errorf("expected camera position [1 2 3], got %v", u.CameraPosition)
	}
	if GPUCameraUniformSource == "" {
		t.Error("expected embedded WGSL source")
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	c := NewPerspectiveCamera(WithNear(1), WithFar(100))
	p := c.ProjectionMatrix()

	near := p.Mul4x1(mgl64.Vec4{0, 0, -1, 1})
	far := p.Mul4x1(mgl64.Vec4{0, 0, -100, 1})

	if d := near[2] / near[3]; math.Abs(d) > tolerance {
		t.Errorf("expected near plane depth 0, got %v", d)
	}
	if d := far[2] / far[3]; math.Abs(d-1) > tolerance {
		t.Errorf("expected far plane depth 1, got %v", d)
	}
}
