package dijkstra_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/cequella/portfolio/backend-go/internal/geom"
	"github.com/cequella/portfolio/backend-go/internal/i18n"
	"github.com/cequella/portfolio/backend-go/internal/pathfind"
	"github.com/cequella/portfolio/backend-go/internal/render"
	"github.com/cequella/portfolio/backend-go/internal/sketch"
	"github.com/cequella/portfolio/backend-go/internal/sketches/dijkstra"
	"github.com/cequella/portfolio/backend-go/internal/viewer"
)

const restartSeed = 777

type harness struct {
	v    *viewer.Viewer
	sk   *dijkstra.Sketch
	inst string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{}
	reg := sketch.NewRegistry()
	reg.Register("dijkstra", func() sketch.Sketch {
		h.sk = dijkstra.NewWithSeeds(pathfind.DefaultSeed, func() uint32 { return restartSeed })
		return h.sk
	})
	h.v = viewer.New(reg, render.NewRecorder(), viewer.Options{Width: 800, Height: 600})
	inst, err := h.v.Mount("dijkstra")
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	h.inst = inst
	return h
}

func (h *harness) node(t *testing.T, id int) geom.Point {
	t.Helper()
	p, ok := h.sk.NodeAt(id)
	if !ok {
		t.Fatalf("no node %d", id)
	}
	return p
}

func (h *harness) click(t *testing.T, p geom.Point) {
	t.Helper()
	if err := h.v.Pointer(h.inst, sketch.EventClick, p.X, p.Y); err != nil {
		t.Fatalf("Pointer: %v", err)
	}
}

func (h *harness) solve(t *testing.T, start, end int) {
	t.Helper()
	h.click(t, h.node(t, start))
	h.click(t, h.node(t, end))
}

func TestReplayAdvancesEveryStepInterval(t *testing.T) {
	h := newHarness(t)
	h.solve(t, 0, 13)

	s := h.sk.Session()
	steps := len(s.Solution().Steps)
	if steps != 39 {
		t.Fatalf("steps = %d, want 39", steps)
	}
	if !s.Visited(0) {
		t.Fatal("first step not applied on solve")
	}

	h.v.Tick(time.Duration(steps-1) * dijkstra.StepInterval)
	if s.Phase() != pathfind.Animating {
		t.Fatalf("phase = %v after last step, want animating", s.Phase())
	}
	if !s.Visited(13) {
		t.Error("end node not visited after last step")
	}

	h.v.Tick(dijkstra.StepInterval)
	if s.Phase() != pathfind.Finished {
		t.Fatalf("phase = %v, want finished", s.Phase())
	}
	if want := []int{0, 14, 7, 8, 17, 13}; !reflect.DeepEqual(s.ResultPath(), want) {
		t.Errorf("result path = %v, want %v", s.ResultPath(), want)
	}
	// only the render loop remains
	if n := h.v.Pending(); n != 1 {
		t.Errorf("Pending() = %d, want 1", n)
	}
}

func TestDestroyStopsReplay(t *testing.T) {
	h := newHarness(t)
	h.solve(t, 0, 13)
	h.v.Tick(3 * dijkstra.StepInterval)
	h.v.Frame()

	h.v.Unmount()
	if n := h.v.Pending(); n != 0 {
		t.Errorf("Pending() = %d after destroy", n)
	}
	if n := h.v.Listeners(); n != 0 {
		t.Errorf("Listeners() = %d after destroy", n)
	}

	s := h.sk.Session()
	before := s.Solution()
	h.v.Tick(10 * time.Second)
	if s.Phase() != pathfind.Animating {
		t.Errorf("phase moved to %v after destroy", s.Phase())
	}
	if s.Visited(13) {
		t.Error("replay continued after destroy")
	}
	if got := len(h.v.Frame()); got != 0 {
		t.Errorf("%d draw commands after destroy", got)
	}
	if !reflect.DeepEqual(before, s.Solution()) {
		t.Error("solution changed after destroy")
	}
}

func TestRestartAfterFinish(t *testing.T) {
	h := newHarness(t)
	h.solve(t, 0, 13)
	h.v.Tick(time.Minute)

	s := h.sk.Session()
	if s.Phase() != pathfind.Finished {
		t.Fatalf("phase = %v", s.Phase())
	}
	h.click(t, geom.Pt(1, 1))
	if s.Phase() != pathfind.PickingStart || s.Seed() != restartSeed {
		t.Errorf("phase %v seed %d after restart", s.Phase(), s.Seed())
	}
	want := pathfind.Generate(800, 600, pathfind.DefaultGenerateOptions, pathfind.NewRand(restartSeed))
	if !reflect.DeepEqual(s.Graph(), want) {
		t.Error("restart graph does not match its seed")
	}
}

func TestResizeRegeneratesWithCurrentSeed(t *testing.T) {
	h := newHarness(t)
	h.solve(t, 0, 13)
	h.v.Resize(400, 300)

	s := h.sk.Session()
	if s.Phase() != pathfind.PickingStart {
		t.Errorf("phase = %v", s.Phase())
	}
	if n := h.v.Pending(); n != 1 {
		t.Errorf("Pending() = %d, replay timer survived resize", n)
	}
	want := pathfind.Generate(400, 300, pathfind.DefaultGenerateOptions, pathfind.NewRand(pathfind.DefaultSeed))
	if !reflect.DeepEqual(s.Graph(), want) {
		t.Error("resized graph does not match seed")
	}
}

func TestPointerScaling(t *testing.T) {
	h := newHarness(t)
	// displayed at half size, offset on the page
	h.v.SetBounds(geom.Rect{X: 100, Y: 50, Width: 400, Height: 300})

	p := h.node(t, 0)
	h.click(t, geom.Pt(100+p.X/2, 50+p.Y/2))
	if start, ok := h.sk.Session().Start(); !ok || start != 0 {
		t.Errorf("start = %d, %v", start, ok)
	}
}

func TestHoverCursor(t *testing.T) {
	h := newHarness(t)
	p := h.node(t, 3)
	if err := h.v.Pointer(h.inst, sketch.EventPointerMove, p.X+10, p.Y); err != nil {
		t.Fatal(err)
	}
	if c := h.v.Cursor(); c != sketch.CursorPointer {
		t.Errorf("cursor over node = %q", c)
	}
	if err := h.v.Pointer(h.inst, sketch.EventPointerMove, 1, 1); err != nil {
		t.Fatal(err)
	}
	if c := h.v.Cursor(); c != sketch.CursorDefault {
		t.Errorf("cursor off node = %q", c)
	}
}

func bannerText(cmds []render.DrawCommand) string {
	for i := len(cmds) - 1; i >= 0; i-- {
		if cmds[i].Op == "text" {
			return cmds[i].Text
		}
	}
	return ""
}

func TestBannerIsLocalized(t *testing.T) {
	h := newHarness(t)
	h.click(t, h.node(t, 0))

	h.v.Tick(20 * time.Millisecond)
	if got := bannerText(h.v.Frame()); got != "Selecione o nó de destino" {
		t.Errorf("pt banner = %q", got)
	}

	h.v.SetLocale(i18n.EN)
	h.v.Tick(20 * time.Millisecond)
	if got := bannerText(h.v.Frame()); !strings.HasPrefix(got, "Select the target") {
		t.Errorf("en banner = %q", got)
	}
}

func TestStartNodeGlows(t *testing.T) {
	h := newHarness(t)
	h.click(t, h.node(t, 0))
	h.v.Tick(20 * time.Millisecond)

	var glowing int
	for _, c := range h.v.Frame() {
		if c.ShadowBlur == 15 {
			glowing++
			if c.ShadowColor != "#10b981" {
				t.Errorf("glow colour %q", c.ShadowColor)
			}
		}
	}
	if glowing != 1 {
		t.Errorf("%d glowing nodes, want 1", glowing)
	}
}
