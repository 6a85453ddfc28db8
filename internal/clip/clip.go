// Package clip implements Sutherland–Hodgman polygon clipping against an
// axis-aligned window, plus the drag state of the interactive clipping
// scene.
package clip

import "github.com/cequella/portfolio/backend-go/internal/geom"

// Polygon is an implicitly closed sequence of vertices.
type Polygon []geom.Point

// Window is the axis-aligned clip rectangle.
type Window struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Rect returns the window as a geom.Rect.
func (w Window) Rect() geom.Rect {
	return geom.Rect{X: w.X, Y: w.Y, Width: w.W, Height: w.H}
}

// Boundary selects one of the window's four half-planes.
type Boundary int

const (
	Left Boundary = iota
	Right
	Top
	Bottom
)

// passes is the order Clip applies the half-planes in.
var passes = [...]Boundary{Left, Right, Top, Bottom}

func (b Boundary) String() string {
	switch b {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return "unknown"
}

// Inside reports whether p lies in the half-plane kept by b. Points on the
// boundary line are inside.
func Inside(p geom.Point, b Boundary, w Window) bool {
	switch b {
	case Left:
		return p.X >= w.X
	case Right:
		return p.X <= w.X+w.W
	case Top:
		return p.Y >= w.Y
	case Bottom:
		return p.Y <= w.Y+w.H
	}
	return false
}

// Intersect returns where segment s→e crosses the boundary line of b.
// Callers only ask for segments with one endpoint on each side, so the
// segment is never parallel to the line.
func Intersect(s, e geom.Point, b Boundary, w Window) geom.Point {
	switch b {
	case Left, Right:
		x := w.X
		if b == Right {
			x = w.X + w.W
		}
		return geom.Point{X: x, Y: s.Y + (e.Y-s.Y)*(x-s.X)/(e.X-s.X)}
	default:
		y := w.Y
		if b == Bottom {
			y = w.Y + w.H
		}
		return geom.Point{X: s.X + (e.X-s.X)*(y-s.Y)/(e.Y-s.Y), Y: y}
	}
}

// ClipEdge runs one Sutherland–Hodgman pass. For each edge s→e, starting
// with the closing edge from the last vertex to the first, it emits:
// e when both ends are inside; the crossing and then e when entering;
// only the crossing when leaving; nothing when both ends are outside.
func ClipEdge(in Polygon, b Boundary, w Window) Polygon {
	if len(in) == 0 {
		return Polygon{}
	}
	out := make(Polygon, 0, len(in)+1)
	s := in[len(in)-1]
	for _, e := range in {
		sIn, eIn := Inside(s, b, w), Inside(e, b, w)
		switch {
		case sIn && eIn:
			out = append(out, e)
		case !sIn && eIn:
			out = append(out, Intersect(s, e, b, w), e)
		case sIn && !eIn:
			out = append(out, Intersect(s, e, b, w))
		}
		s = e
	}
	return out
}

// Clip clips subject against the window with four passes: left, right,
// top, bottom. The result never shares storage with subject. An empty
// subject, or one entirely outside the window, yields an empty polygon.
func Clip(subject Polygon, w Window) Polygon {
	out := append(Polygon{}, subject...)
	for _, b := range passes {
		out = ClipEdge(out, b, w)
	}
	return out
}

// Drawable reports whether a polygon has enough vertices to draw edges.
func (p Polygon) Drawable() bool {
	return len(p) >= 2
}
