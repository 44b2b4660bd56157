package engine

import (
	"errors"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/controls"
)

type countingRenderer struct {
	renders atomic.Int32
	fail    bool
	width   int
	height  int
}

func (r *countingRenderer) Render() error {
	if r.fail {
		return errors.New("device lost")
	}
	r.renders.Add(1)
	return nil
}

func (r *countingRenderer) Resize(width, height int) {
	r.width, r.height = width, height
}

type flagUpdater struct {
	changed bool
	calls   atomic.Int32
}

func (u *flagUpdater) Update() bool {
	u.calls.Add(1)
	return u.changed
}

func TestFrameCallbackOrder(t *testing.T) {
	e := NewEngine()
	var order []string
	e.AddFrameCallback(10, func(float64) { order = append(order, "late") })
	e.AddFrameCallback(-5, func(float64) { order = append(order, "first") })
	id := e.AddFrameCallback(0, func(float64) { order = append(order, "removed") })
	e.AddFrameCallback(0, func(float64) { order = append(order, "middle-a") })
	e.AddFrameCallback(0, func(float64) { order = append(order, "middle-b") })
	e.RemoveFrameCallback(id)
	e.RemoveFrameCallback(9999)

	e.Step(1.0 / 60)

	expected := []string{"first", "middle-a", "middle-b", "late"}
	if !reflect.DeepEqual(order, expected) {
		t.Errorf("expected %v, got %v", expected, order)
	}
}

func TestDemandRendering(t *testing.T) {
	r := &countingRenderer{}
	e := NewEngine(WithRenderer(r))

	if !e.Step(0) {
		t.Fatal("expected the first frame to render")
	}
	if e.Step(0) {
		t.Fatal("expected an idle frame to skip rendering")
	}

	e.Invalidate()
	e.Invalidate()
	if !e.Step(0) {
		t.Fatal("expected an invalidated frame to render")
	}
	if e.Step(0) {
		t.Fatal("expected invalidation to be consumed")
	}
	if got := r.renders.Load(); got != 2 {
		t.Errorf("expected 2 renders, got %d", got)
	}
}

func TestRenderErrorIsNotFatal(t *testing.T) {
	r := &countingRenderer{fail: true}
	e := NewEngine(WithRenderer(r))
	if e.Step(0) {
		t.Error("expected a failed render to report false")
	}
}

func TestUpdatersRunInParallelPool(t *testing.T) {
	r := &countingRenderer{}
	quiet := make([]*flagUpdater, 8)
	e := NewEngine(WithRenderer(r), WithUpdateWorkers(4))
	for i := range quiet {
		quiet[i] = &flagUpdater{}
		e.AddUpdater(quiet[i])
	}
	e.Step(0)

	if e.Step(0) {
		t.Fatal("expected no render while no updater changed")
	}
	for i, u := range quiet {
		if got := u.calls.Load(); got != 2 {
			t.Errorf("updater %d: expected 2 calls, got %d", i, got)
		}
	}

	moving := &flagUpdater{changed: true}
	e.AddUpdater(moving)
	if !e.Step(0) {
		t.Fatal("expected a changed updater to trigger a render")
	}

	e.RemoveUpdater(moving)
	if e.Step(0) {
		t.Error("expected no render after removing the changing updater")
	}
}

func TestOrbitSessionDrivesRendering(t *testing.T) {
	r := &countingRenderer{}
	e := NewEngine(WithRenderer(r))
	ctl, err := controls.NewControls(camera.NewPerspectiveCamera(), nil,
		controls.WithViewport(800, 500), controls.WithInvalidate(e.Invalidate))
	if err != nil {
		t.Fatalf("NewControls: %v", err)
	}
	e.AddUpdater(ctl)

	e.Step(0)
	e.Step(0)
	before := r.renders.Load()

	ctl.HandlePointer(controls.PointerSample{ID: 1, X: 0, Y: 0, Phase: controls.PhaseStart})
	ctl.HandlePointer(controls.PointerSample{ID: 1, X: 50, Y: 0, Phase: controls.PhaseMove})

	if !e.Step(1.0 / 60) {
		t.Fatal("expected a render after a drag")
	}
	if r.renders.Load() != before+1 {
		t.Errorf("expected one extra render, got %d", r.renders.Load()-before)
	}
}

func TestResizeForwarding(t *testing.T) {
	r := &countingRenderer{}
	e := NewEngine(WithRenderer(r)).(*engine)
	var gotW, gotH int
	e.SetResizeCallback(func(w, h int) { gotW, gotH = w, h })
	e.Step(0)

	e.resize(0, 0)
	if r.width != 0 || gotW != 0 {
		t.Fatal("expected a minimized window to be ignored")
	}

	e.resize(640, 480)
	if r.width != 640 || r.height != 480 || gotW != 640 || gotH != 480 {
		t.Errorf("expected 640x480 forwarded, got renderer %dx%d callback %dx%d", r.width, r.height, gotW, gotH)
	}
	if !e.Step(0) {
		t.Error("expected a render after resize")
	}
}

func TestRunWithoutWindowReturns(t *testing.T) {
	e := NewEngine()
	e.Run()
	e.Quit()
	e.Quit()
}
