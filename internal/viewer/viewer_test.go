package viewer_test

import (
	"errors"
	"testing"
	"time"

	"github.com/cequella/portfolio/backend-go/internal/geom"
	"github.com/cequella/portfolio/backend-go/internal/render"
	"github.com/cequella/portfolio/backend-go/internal/sketch"
	"github.com/cequella/portfolio/backend-go/internal/viewer"
)

type stub struct {
	surface  sketch.Surface
	bindings sketch.Bindings
	loop     *sketch.Loop

	events    []sketch.EventType
	windowUps int
	resizes   [][2]int
	draws     int
	destroys  int
}

func (s *stub) Setup(surface sketch.Surface) {
	s.surface = surface
	s.bindings.Bind(surface, sketch.EventClick, func(e sketch.Event) { s.events = append(s.events, e.Type) })
	s.bindings.Bind(surface, sketch.EventPointerUp, func(e sketch.Event) { s.events = append(s.events, e.Type) })
	s.bindings.Bind(surface.Window(), sketch.EventPointerUp, func(sketch.Event) { s.windowUps++ })
	s.loop = sketch.NewLoop(surface.Scheduler(), func(time.Time) {
		if c, ok := s.surface.Context(); ok {
			s.draws++
			c.SetFillStyle("#000000")
			c.FillRect(0, 0, 1, 1)
		}
	})
	s.loop.Start()
}

func (s *stub) Resize(w, h int) { s.resizes = append(s.resizes, [2]int{w, h}) }

func (s *stub) Destroy() {
	s.destroys++
	s.loop.Stop()
	s.bindings.Release()
}

type fixture struct {
	v     *viewer.Viewer
	stubs []*stub
}

func newFixture(t *testing.T, canvas sketch.Canvas) *fixture {
	t.Helper()
	f := &fixture{}
	reg := sketch.NewRegistry()
	reg.Register("stub", func() sketch.Sketch {
		s := &stub{}
		f.stubs = append(f.stubs, s)
		return s
	})
	f.v = viewer.New(reg, canvas, viewer.Options{Width: 200, Height: 100, FrameInterval: 10 * time.Millisecond})
	return f
}

func mount(t *testing.T, v *viewer.Viewer) string {
	t.Helper()
	inst, err := v.Mount("stub")
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	return inst
}

func TestMountUnknownLeavesViewerEmpty(t *testing.T) {
	f := newFixture(t, render.NewRecorder())
	mount(t, f.v)

	_, err := f.v.Mount("nope")
	if !errors.Is(err, sketch.ErrUnknownSketch) {
		t.Fatalf("err = %v, want ErrUnknownSketch", err)
	}
	if f.v.Mounted() {
		t.Error("viewer still mounted")
	}
	if f.stubs[0].destroys != 1 {
		t.Errorf("previous sketch destroyed %d times", f.stubs[0].destroys)
	}
}

func TestDestroyRunsOncePerMount(t *testing.T) {
	f := newFixture(t, render.NewRecorder())
	mount(t, f.v)
	mount(t, f.v)
	f.v.Unmount()
	f.v.Unmount()

	for i, s := range f.stubs {
		if s.destroys != 1 {
			t.Errorf("stub %d destroyed %d times", i, s.destroys)
		}
	}
	if n := f.v.Listeners(); n != 0 {
		t.Errorf("Listeners() = %d", n)
	}
	if n := f.v.Pending(); n != 0 {
		t.Errorf("Pending() = %d", n)
	}
}

func TestInstanceChecks(t *testing.T) {
	f := newFixture(t, render.NewRecorder())
	old := mount(t, f.v)
	cur := mount(t, f.v)
	if old == cur {
		t.Fatal("instances share an id")
	}

	if err := f.v.Pointer(old, sketch.EventClick, 1, 1); !errors.Is(err, viewer.ErrStaleInstance) {
		t.Errorf("stale Pointer err = %v", err)
	}
	if err := f.v.Pointer(cur, sketch.EventClick, 1, 1); err != nil {
		t.Errorf("Pointer: %v", err)
	}
	f.v.Unmount()
	if err := f.v.WindowPointerUp(cur, 0, 0); !errors.Is(err, viewer.ErrNotMounted) {
		t.Errorf("unmounted err = %v", err)
	}
}

func TestPointerUpBubblesToWindow(t *testing.T) {
	f := newFixture(t, render.NewRecorder())
	inst := mount(t, f.v)
	s := f.stubs[0]

	if err := f.v.Pointer(inst, sketch.EventPointerUp, 5, 5); err != nil {
		t.Fatal(err)
	}
	if len(s.events) != 1 || s.windowUps != 1 {
		t.Fatalf("surface events %v, window ups %d", s.events, s.windowUps)
	}

	if err := f.v.WindowPointerUp(inst, 500, 500); err != nil {
		t.Fatal(err)
	}
	if len(s.events) != 1 || s.windowUps != 2 {
		t.Errorf("surface events %v, window ups %d", s.events, s.windowUps)
	}
}

func TestFramesStopAfterUnmount(t *testing.T) {
	f := newFixture(t, render.NewRecorder())
	mount(t, f.v)
	f.v.Tick(30 * time.Millisecond)
	if got := len(f.v.Frame()); got != 3 {
		t.Fatalf("recorded %d commands, want 3", got)
	}

	f.v.Unmount()
	f.v.Tick(time.Second)
	if got := len(f.v.Frame()); got != 0 {
		t.Errorf("recorded %d commands after unmount", got)
	}
	if f.stubs[0].draws != 3 {
		t.Errorf("draws = %d", f.stubs[0].draws)
	}
}

func TestNilCanvasDrawsNothing(t *testing.T) {
	f := newFixture(t, nil)
	mount(t, f.v)
	f.v.Tick(100 * time.Millisecond)
	if f.stubs[0].draws != 0 {
		t.Errorf("draws = %d", f.stubs[0].draws)
	}
	if f.v.Frame() != nil {
		t.Error("Frame() should be nil without a recorder")
	}
}

func TestResizeAndBounds(t *testing.T) {
	f := newFixture(t, render.NewRecorder())
	mount(t, f.v)
	f.v.Resize(400, 300)

	s := f.stubs[0]
	if len(s.resizes) != 1 || s.resizes[0] != [2]int{400, 300} {
		t.Fatalf("resizes = %v", s.resizes)
	}
	if b := s.surface.Bounds(); b.Width != 400 || b.Height != 300 {
		t.Errorf("bounds did not follow size: %+v", b)
	}

	f.v.SetBounds(geom.Rect{X: 10, Y: 10, Width: 200, Height: 150})
	f.v.Resize(800, 600)
	if b := s.surface.Bounds(); b.Width != 200 {
		t.Errorf("explicit bounds overwritten: %+v", b)
	}
	sx, sy := sketch.PixelScale(s.surface)
	if sx != 4 || sy != 4 {
		t.Errorf("scale = %v,%v", sx, sy)
	}
}

func TestRasterCanvasFollowsResize(t *testing.T) {
	r := render.NewRaster(200, 100)
	defer r.Close()
	f := newFixture(t, r)
	mount(t, f.v)
	f.v.Resize(50, 40)
	if w, h := r.Size(); w != 50 || h != 40 {
		t.Errorf("raster size = %dx%d", w, h)
	}
}
