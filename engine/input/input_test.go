package input

import (
	"reflect"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/controls"
)

type recorder struct {
	samples []controls.PointerSample
	wheel   []float64
}

func (r *recorder) HandlePointer(s controls.PointerSample) {
	r.samples = append(r.samples, s)
}

func (r *recorder) HandleWheel(deltaY float64) {
	r.wheel = append(r.wheel, deltaY)
}

type step struct {
	id    int
	phase controls.PointerPhase
	x, y  float64
}

func steps(samples []controls.PointerSample) []step {
	out := make([]step, 0, len(samples))
	for _, s := range samples {
		out = append(out, step{s.ID, s.Phase, s.X, s.Y})
	}
	return out
}

func TestMouseAdapter(t *testing.T) {
	tests := map[string]struct {
		drive    func(m *MouseAdapter)
		expected []step
		button   int
	}{
		"hover is ignored": {
			drive: func(m *MouseAdapter) {
				m.Move(10, 10)
				m.Move(20, 20)
			},
			expected: []step{},
		},
		"drag": {
			drive: func(m *MouseAdapter) {
				m.Button(common.MouseButtonLeft, true, 1, 2)
				m.Move(3, 4)
				m.Move(3, 4)
				m.Button(common.MouseButtonLeft, false, 5, 6)
			},
			expected: []step{
				{MousePointerID, controls.PhaseStart, 1, 2},
				{MousePointerID, controls.PhaseMove, 3, 4},
				{MousePointerID, controls.PhaseEnd, 5, 6},
			},
			button: common.MouseButtonLeft,
		},
		"second button ignored": {
			drive: func(m *MouseAdapter) {
				m.Button(common.MouseButtonRight, true, 0, 0)
				m.Button(common.MouseButtonLeft, true, 0, 0)
				m.Button(common.MouseButtonLeft, false, 0, 0)
				m.Move(1, 0)
				m.Button(common.MouseButtonRight, false, 1, 0)
			},
			expected: []step{
				{MousePointerID, controls.PhaseStart, 0, 0},
				{MousePointerID, controls.PhaseMove, 1, 0},
				{MousePointerID, controls.PhaseEnd, 1, 0},
			},
			button: common.MouseButtonRight,
		},
		"cancel": {
			drive: func(m *MouseAdapter) {
				m.Button(common.MouseButtonMiddle, true, 0, 0)
				m.Cancel()
				m.Cancel()
			},
			expected: []step{
				{MousePointerID, controls.PhaseStart, 0, 0},
				{MousePointerID, controls.PhaseCancel, 0, 0},
			},
			button: common.MouseButtonMiddle,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			r := &recorder{}
			m := NewMouseAdapter(r)
			tc.drive(m)

			if got := steps(r.samples); !reflect.DeepEqual(got, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
			for _, s := range r.samples {
				if s.Kind != controls.KindMouse || s.Button != tc.button {
					t.Errorf("expected mouse sample with button %d, got %+v", tc.button, s)
				}
			}
			if _, down := m.Pressed(); down {
				t.Error("expected no captured button at the end")
			}
		})
	}
}

func TestMouseScroll(t *testing.T) {
	r := &recorder{}
	m := NewMouseAdapter(r)
	m.Scroll(0, 1)
	m.Scroll(3, 0)
	m.Scroll(0, -2)

	if !reflect.DeepEqual(r.wheel, []float64{-1, 2}) {
		t.Errorf("expected wheel steps [-1 2], got %v", r.wheel)
	}
}

func TestTouchAdapterFrames(t *testing.T) {
	r := &recorder{}
	a := NewTouchAdapter(r)

	a.Frame([]TouchPoint{{ID: 4, X: 0, Y: 0}})
	a.Frame([]TouchPoint{{ID: 4, X: 0, Y: 0}})
	a.Frame([]TouchPoint{{ID: 4, X: 10, Y: 0}, {ID: 9, X: 50, Y: 50}})
	a.Frame([]TouchPoint{{ID: 9, X: 60, Y: 50}, {ID: 11, X: 1, Y: 1}})
	if got := a.Active(); got != 2 {
		t.Fatalf("expected 2 active contacts, got %d", got)
	}
	a.Cancel()
	a.Frame(nil)

	expected := []step{
		{4, controls.PhaseStart, 0, 0},
		{4, controls.PhaseMove, 10, 0},
		{9, controls.PhaseStart, 50, 50},
		{4, controls.PhaseEnd, 10, 0},
		{9, controls.PhaseMove, 60, 50},
		{11, controls.PhaseStart, 1, 1},
		{9, controls.PhaseCancel, 60, 50},
		{11, controls.PhaseCancel, 1, 1},
	}
	if got := steps(r.samples); !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for _, s := range r.samples {
		if s.Kind != controls.KindTouch || s.Button != common.MouseButtonNone {
			t.Errorf("expected touch sample without button, got %+v", s)
		}
	}
}

func TestTouchAdapterDrivesPinch(t *testing.T) {
	cfg := controls.DefaultConfig()
	cfg.EnablePan = false
	c, err := controls.NewControls(camera.NewPerspectiveCamera(), cfg, controls.WithViewport(800, 500))
	if err != nil {
		t.Fatalf("NewControls: %v", err)
	}
	a := NewTouchAdapter(c)

	a.Frame([]TouchPoint{{ID: 1, X: 100, Y: 250}, {ID: 2, X: 200, Y: 250}})
	a.Frame([]TouchPoint{{ID: 1, X: 100, Y: 250}, {ID: 2, X: 300, Y: 250}})
	c.Update()

	if got := c.Spherical().Radius; got < 5-1e-9 || got > 5+1e-9 {
		t.Errorf("expected radius 5 after doubling the pinch, got %v", got)
	}
}

func TestMouseAdapterDrivesWheel(t *testing.T) {
	c, err := controls.NewControls(camera.NewPerspectiveCamera(), nil)
	if err != nil {
		t.Fatalf("NewControls: %v", err)
	}
	m := NewMouseAdapter(c)
	m.Scroll(0, 1)

	if got := c.Pending().Scale; got != 0.95 {
		t.Errorf("expected wheel up to dolly in by 0.95, got %v", got)
	}
}
