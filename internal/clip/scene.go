package clip

import "github.com/cequella/portfolio/backend-go/internal/geom"

// VertexHitRadius is how close, in surface pixels, a pointer must be to a
// vertex to grab it.
const VertexHitRadius = 15

// DragKind is what the pointer is currently dragging.
type DragKind int

const (
	DragNone DragKind = iota
	DragVertex
	DragWindow
)

// Scene is the interactive clipping state: the subject polygon, the clip
// window and at most one active drag.
type Scene struct {
	Polygon Polygon
	Window  Window

	drag   DragKind
	vertex int
	last   geom.Point

	width, height float64
}

// NewScene lays out the default pentagon and a window covering the middle
// half of a width x height surface.
func NewScene(width, height float64) *Scene {
	return &Scene{
		Polygon: Polygon{
			{X: width * 0.3, Y: height * 0.3},
			{X: width * 0.7, Y: height * 0.2},
			{X: width * 0.8, Y: height * 0.6},
			{X: width * 0.5, Y: height * 0.8},
			{X: width * 0.2, Y: height * 0.6},
		},
		Window: Window{X: width * 0.25, Y: height * 0.25, W: width * 0.5, H: height * 0.5},
		width:  width,
		height: height,
	}
}

// Clipped returns the polygon clipped against the window.
func (s *Scene) Clipped() Polygon {
	return Clip(s.Polygon, s.Window)
}

// Dragging reports the active drag. The index is only meaningful for
// DragVertex.
func (s *Scene) Dragging() (DragKind, int) {
	return s.drag, s.vertex
}

// PointerDown starts a vertex drag when p is within VertexHitRadius of a
// vertex (the first such vertex wins), otherwise a window drag when p is
// inside the window. It reports whether a drag started.
func (s *Scene) PointerDown(p geom.Point) bool {
	for i, v := range s.Polygon {
		if v.Dist(p) < VertexHitRadius {
			s.drag, s.vertex = DragVertex, i
			return true
		}
	}
	if s.Window.Rect().Contains(p) {
		s.drag = DragWindow
		s.last = p
		return true
	}
	return false
}

// PointerMove moves the dragged vertex to p, or translates the window by
// the pointer delta. Without an active drag it does nothing.
func (s *Scene) PointerMove(p geom.Point) {
	switch s.drag {
	case DragVertex:
		if s.vertex < len(s.Polygon) {
			s.Polygon[s.vertex] = p
		}
	case DragWindow:
		d := p.Sub(s.last)
		s.Window.X += d.X
		s.Window.Y += d.Y
		s.last = p
	}
}

// PointerUp ends any drag.
func (s *Scene) PointerUp() {
	s.drag = DragNone
	s.vertex = 0
}

// Resize rescales every vertex and the window to a new surface size.
// An empty new size is ignored and the previous size is kept. When the
// previous size is unknown the new one is recorded without rescaling.
func (s *Scene) Resize(width, height float64) {
	oldW, oldH := s.width, s.height
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	if oldW <= 0 || oldH <= 0 {
		return
	}
	s.Rescale(width/oldW, height/oldH)
}

// Rescale multiplies every coordinate by sx on x and sy on y.
func (s *Scene) Rescale(sx, sy float64) {
	for i := range s.Polygon {
		s.Polygon[i].X *= sx
		s.Polygon[i].Y *= sy
	}
	s.Window.X *= sx
	s.Window.Y *= sy
	s.Window.W *= sx
	s.Window.H *= sy
	s.last.X *= sx
	s.last.Y *= sy
}

// Size returns the last recorded surface size.
func (s *Scene) Size() (width, height float64) {
	return s.width, s.height
}
