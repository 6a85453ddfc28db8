package clip

import (
	"testing"

	"github.com/cequella/portfolio/backend-go/internal/geom"
)

func poly(xy ...float64) Polygon {
	p := make(Polygon, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		p = append(p, geom.Pt(xy[i], xy[i+1]))
	}
	return p
}

func equal(a, b Polygon) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// equalRotated reports whether b is a cyclic rotation of a.
func equalRotated(a, b Polygon) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	for shift := range a {
		ok := true
		for i := range a {
			if a[i] != b[(i+shift)%len(b)] {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func TestClipSquareCorner(t *testing.T) {
	subject := poly(0, 0, 10, 0, 10, 10, 0, 10)
	got := Clip(subject, Window{X: 5, Y: 5, W: 20, H: 20})
	want := poly(5, 5, 10, 5, 10, 10, 5, 10)
	if !equal(got, want) {
		t.Errorf("Clip = %v, want %v", got, want)
	}
}

func TestClipInsideIsUnchanged(t *testing.T) {
	subject := poly(30, 30, 70, 20, 80, 60, 50, 80, 20, 60)
	got := Clip(subject, Window{X: 0, Y: 0, W: 100, H: 100})
	if !equalRotated(subject, got) {
		t.Errorf("Clip = %v, want rotation of %v", got, subject)
	}
}

func TestClipOutsideIsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		subject Polygon
	}{
		{"left", poly(-30, 10, -20, 10, -20, 20)},
		{"right", poly(130, 10, 120, 10, 120, 20)},
		{"above", poly(10, -30, 20, -30, 20, -20)},
		{"below", poly(10, 130, 20, 130, 20, 120)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clip(tt.subject, Window{W: 100, H: 100}); len(got) != 0 {
				t.Errorf("Clip = %v, want empty", got)
			}
		})
	}
}

func TestClipIdempotent(t *testing.T) {
	windows := []Window{
		{X: 25, Y: 25, W: 50, H: 50},
		{X: 5, Y: 5, W: 20, H: 20},
		{X: 40, Y: 10, W: 10, H: 80},
	}
	subjects := []Polygon{
		poly(30, 30, 70, 20, 80, 60, 50, 80, 20, 60),
		poly(0, 0, 10, 0, 10, 10, 0, 10),
		poly(0, 50, 50, 0, 100, 50, 50, 100),
	}
	for _, w := range windows {
		for _, p := range subjects {
			once := Clip(p, w)
			twice := Clip(once, w)
			if !equal(once, twice) {
				t.Errorf("window %+v: Clip(Clip) = %v, Clip = %v", w, twice, once)
			}
		}
	}
}

func TestClipDegenerate(t *testing.T) {
	if got := Clip(nil, Window{W: 10, H: 10}); got == nil || len(got) != 0 {
		t.Errorf("Clip(nil) = %#v, want empty non-nil", got)
	}

	subject := poly(0, 0, 10, 0, 10, 10, 0, 10)
	got := Clip(subject, Window{X: 20, Y: 20})
	if len(got) != 0 {
		t.Errorf("zero window outside subject: %v", got)
	}

	got = Clip(subject, Window{X: 5, Y: 0, W: 0, H: 10})
	for _, p := range got {
		if p.X != 5 {
			t.Errorf("zero width window produced %v", p)
		}
	}
	if got.Drawable() && len(got) > 0 {
		area := 0.0
		for i := range got {
			j := (i + 1) % len(got)
			area += got[i].X*got[j].Y - got[j].X*got[i].Y
		}
		if area != 0 {
			t.Errorf("zero width window has area %v", area/2)
		}
	}
}

func TestClipDoesNotAliasInput(t *testing.T) {
	subject := poly(1, 1, 2, 1, 2, 2)
	got := Clip(subject, Window{W: 10, H: 10})
	got[0] = geom.Pt(99, 99)
	if subject[0] != geom.Pt(1, 1) {
		t.Error("Clip result shares storage with subject")
	}
}

func TestClipEdgeCases(t *testing.T) {
	w := Window{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		in   Polygon
		want Polygon
	}{
		{"both inside", poly(1, 1, 2, 2), poly(1, 1, 2, 2)},
		{"entering and leaving", poly(-10, 5, 5, 5), poly(0, 5, 0, 5, 5, 5)},
		{"both outside", poly(-5, 0, -3, 0), Polygon{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClipEdge(tt.in, Left, w)
			if !equal(got, tt.want) {
				t.Errorf("ClipEdge = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInsideIncludesBoundary(t *testing.T) {
	w := Window{X: 1, Y: 2, W: 3, H: 4}
	on := map[Boundary]geom.Point{
		Left:   geom.Pt(1, 3),
		Right:  geom.Pt(4, 3),
		Top:    geom.Pt(2, 2),
		Bottom: geom.Pt(2, 6),
	}
	for b, p := range on {
		if !Inside(p, b, w) {
			t.Errorf("%s: %v on boundary not inside", b, p)
		}
	}
}

func TestScenePointerDragsVertexBeforeWindow(t *testing.T) {
	s := NewScene(200, 200)
	// vertex 0 is at (60, 60), inside the window (50..150)
	if !s.PointerDown(geom.Pt(62, 61)) {
		t.Fatal("PointerDown missed vertex")
	}
	if kind, i := s.Dragging(); kind != DragVertex || i != 0 {
		t.Fatalf("Dragging = %v, %d", kind, i)
	}
	s.PointerMove(geom.Pt(70, 75))
	if s.Polygon[0] != geom.Pt(70, 75) {
		t.Errorf("vertex = %v", s.Polygon[0])
	}
	if s.Window != (Window{X: 50, Y: 50, W: 100, H: 100}) {
		t.Errorf("window moved during vertex drag: %+v", s.Window)
	}
	s.PointerUp()
	s.PointerMove(geom.Pt(0, 0))
	if s.Polygon[0] != geom.Pt(70, 75) {
		t.Error("vertex moved after PointerUp")
	}
}

func TestScenePointerDragsWindow(t *testing.T) {
	s := NewScene(200, 200)
	before := append(Polygon{}, s.Polygon...)

	if !s.PointerDown(geom.Pt(100, 120)) {
		t.Fatal("PointerDown missed window")
	}
	if kind, _ := s.Dragging(); kind != DragWindow {
		t.Fatalf("Dragging = %v", kind)
	}
	s.PointerMove(geom.Pt(110, 115))
	s.PointerMove(geom.Pt(120, 130))
	if s.Window != (Window{X: 70, Y: 60, W: 100, H: 100}) {
		t.Errorf("window = %+v", s.Window)
	}
	if !equal(before, s.Polygon) {
		t.Error("polygon changed during window drag")
	}
	s.PointerUp()
	if kind, _ := s.Dragging(); kind != DragNone {
		t.Errorf("Dragging after up = %v", kind)
	}
}

func TestScenePointerDownMiss(t *testing.T) {
	s := NewScene(200, 200)
	if s.PointerDown(geom.Pt(5, 195)) {
		t.Error("PointerDown outside everything started a drag")
	}
	s.PointerMove(geom.Pt(6, 6))
	if s.Window.X != 50 {
		t.Error("window moved without drag")
	}
}

func TestSceneWindowEdgeIsHit(t *testing.T) {
	s := NewScene(200, 200)
	s.Polygon = nil
	if !s.PointerDown(geom.Pt(150, 150)) {
		t.Error("window corner not hit")
	}
}

func TestSceneResizeDoubles(t *testing.T) {
	s := NewScene(300, 200)
	s.Resize(300, 200)
	before := append(Polygon{}, s.Polygon...)
	w := s.Window

	s.Resize(600, 400)
	for i, p := range s.Polygon {
		if p.X != before[i].X*2 || p.Y != before[i].Y*2 {
			t.Errorf("vertex %d = %v, want doubled %v", i, p, before[i])
		}
	}
	if s.Window != (Window{X: w.X * 2, Y: w.Y * 2, W: w.W * 2, H: w.H * 2}) {
		t.Errorf("window = %+v, want doubled %+v", s.Window, w)
	}
}

func TestSceneResizeFromUnknownSize(t *testing.T) {
	s := &Scene{Polygon: poly(1, 1), Window: Window{W: 1, H: 1}}
	s.Resize(100, 100)
	if s.Polygon[0] != geom.Pt(1, 1) || s.Window.W != 1 {
		t.Error("first resize rescaled geometry")
	}
	if w, h := s.Size(); w != 100 || h != 100 {
		t.Errorf("Size = %v, %v", w, h)
	}
}

func TestSceneResizeToZeroKeepsGeometry(t *testing.T) {
	s := NewScene(100, 100)
	s.Resize(0, 0)
	if w, h := s.Size(); w != 100 || h != 100 {
		t.Errorf("Size = %v, %v after zero resize", w, h)
	}
	s.Resize(100, 100)
	if s.Window != (Window{X: 25, Y: 25, W: 50, H: 50}) {
		t.Errorf("window = %+v after zero resize", s.Window)
	}
}
