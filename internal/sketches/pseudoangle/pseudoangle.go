// Package pseudoangle visualises the octant pseudoangle of the pointer
// around the centre of the surface. A pseudoangle grows monotonically with
// the true angle but needs only one division to compute; it runs from 0 to
// 8 over a full turn, two units per quadrant.
package pseudoangle

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/cequella/portfolio/backend-go/internal/geom"
	"github.com/cequella/portfolio/backend-go/internal/i18n"
	"github.com/cequella/portfolio/backend-go/internal/sketch"
)

var palette = [...]string{"#FAFAFA", "#B4B4B4", "#0d0d0d", "#cc2222", "#0000FF"}

// Of returns the pseudoangle of (dx, dy) with y pointing up. The origin
// maps to 0.
func Of(dx, dy float64) float64 {
	adx, ady := math.Abs(dx), math.Abs(dy)
	code := 0
	if adx < ady {
		code = 1
	}
	if dx < 0 {
		code += 2
	}
	if dy < 0 {
		code += 4
	}
	switch code {
	case 0:
		if dx == 0 {
			return 0
		}
		return ady / adx
	case 1:
		return 2 - adx/ady
	case 3:
		return 2 + adx/ady
	case 2:
		return 4 - ady/adx
	case 6:
		return 4 + ady/adx
	case 7:
		return 6 - adx/ady
	case 5:
		return 6 + adx/ady
	case 4:
		return 8 - ady/adx
	}
	return 0
}

// Normalize folds pa into [0, 8).
func Normalize(pa float64) float64 {
	pa = math.Mod(pa, 8)
	if pa < 0 {
		pa += 8
	}
	if pa >= 8 {
		return 0
	}
	return pa
}

// Arc walks the square of half-size size around center counter-clockwise
// from its right midpoint and stops at pseudoangle pa. The first point is
// the right midpoint, the last is the point pa lands on.
func Arc(center geom.Point, size, pa float64) []geom.Point {
	cx, cy := center.X, center.Y
	corners := [8]geom.Point{
		{X: cx + size, Y: cy - size},
		{X: cx, Y: cy - size},
		{X: cx - size, Y: cy - size},
		{X: cx - size, Y: cy},
		{X: cx - size, Y: cy + size},
		{X: cx, Y: cy + size},
		{X: cx + size, Y: cy + size},
		{X: cx + size, Y: cy},
	}

	octant := int(math.Floor(pa))
	rest := size * (1 - (pa - float64(octant)))
	out := []geom.Point{{X: cx + size, Y: cy}}
	out = append(out, corners[:octant]...)

	end := corners[octant]
	switch octant {
	case 0:
		end.Y += rest
	case 1, 2:
		end.X += rest
	case 3, 4:
		end.Y -= rest
	case 5, 6:
		end.X -= rest
	case 7:
		end.Y += rest
	}
	return append(out, end)
}

type Sketch struct {
	pointer geom.Point
	center  geom.Point
	size    float64

	width, height float64

	surface  sketch.Surface
	bindings sketch.Bindings
	loop     *sketch.Loop
}

var (
	_ sketch.Sketch    = (*Sketch)(nil)
	_ sketch.Described = (*Sketch)(nil)
)

func New() *Sketch { return &Sketch{} }

func (s *Sketch) Metadata() sketch.Metadata {
	return sketch.Metadata{
		ID: "pseudoangle",
		Title: i18n.Text{
			PT: "Pseudo-ângulo",
			EN: "Pseudoangle",
		},
		Description: i18n.Text{
			PT: "Uma visualização técnica de aproximação angular em octantes, explorando geometria computacional e precisão radical.",
			EN: "A technical visualization of angular approximation in octants, exploring computational geometry and radical precision.",
		},
		Image: "/pseudoangle.svg",
	}
}

func (s *Sketch) Setup(surface sketch.Surface) {
	s.surface = surface
	w, h := surface.Size()
	s.Resize(w, h)

	s.bindings.Bind(surface, sketch.EventPointerMove, func(e sketch.Event) {
		s.pointer = sketch.PointerPosition(s.surface, e)
	})
	s.loop = sketch.NewLoop(surface.Scheduler(), func(time.Time) { s.draw() })
	s.loop.Start()
}

func (s *Sketch) Resize(width, height int) {
	s.width, s.height = float64(width), float64(height)
	s.center = geom.Pt(s.width/2, s.height/2)
	s.size = math.Min(s.width, s.height) / 6
}

func (s *Sketch) Destroy() {
	if s.loop != nil {
		s.loop.Stop()
	}
	s.bindings.Release()
}

// Angle is the pointer's current pseudoangle, before normalising.
func (s *Sketch) Angle() float64 {
	return Of(s.pointer.X-s.center.X, s.center.Y-s.pointer.Y)
}

func (s *Sketch) draw() {
	c, ok := s.surface.Context()
	if !ok {
		return
	}
	c.SetFillStyle(palette[0])
	c.FillRect(0, 0, s.width, s.height)

	dx := s.pointer.X - s.center.X
	dy := s.center.Y - s.pointer.Y

	s.drawSquare(c)
	c.SetStrokeStyle("#888")
	c.SetLineWidth(1)
	line(c, s.center, s.pointer)
	s.drawArc(c, Of(dx, dy))
	s.drawDelta(c, dx, dy)
}

func line(c sketch.Canvas, a, b geom.Point) {
	c.BeginPath()
	c.MoveTo(a.X, a.Y)
	c.LineTo(b.X, b.Y)
	c.Stroke()
}

func (s *Sketch) drawSquare(c sketch.Canvas) {
	cx, cy, sz := s.center.X, s.center.Y, s.size
	c.SetStrokeStyle(palette[1])
	c.SetLineWidth(1)
	c.StrokeRect(cx-sz, cy-sz, 2*sz, 2*sz)
	line(c, geom.Pt(cx, cy-sz), geom.Pt(cx, cy+sz))
	line(c, geom.Pt(cx-sz, cy), geom.Pt(cx+sz, cy))
}

func (s *Sketch) drawArc(c sketch.Canvas, pa float64) {
	pa = Normalize(pa)
	pts := Arc(s.center, s.size, pa)
	last := pts[len(pts)-1]

	c.SetStrokeStyle(palette[3])
	c.SetLineWidth(4)
	c.BeginPath()
	c.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.Stroke()

	c.SetStrokeStyle("#333")
	c.SetLineWidth(2)
	line(c, s.center, last)

	c.SetFillStyle(palette[3])
	c.BeginPath()
	c.Arc(last.X, last.Y, 4, 0, 2*math.Pi)
	c.Fill()

	c.SetFont(sketch.Font{Size: 14, Monospace: true})
	c.SetFillStyle("#111")
	c.SetTextAlign(sketch.AlignLeft, sketch.BaselineAlphabetic)
	c.FillText(strconv.FormatFloat(pa, 'f', 2, 64), last.X+10, last.Y)
}

func (s *Sketch) drawDelta(c sketch.Canvas, dx, dy float64) {
	c.SetFont(sketch.Font{Size: 12, Monospace: true})
	c.SetFillStyle("#666")
	c.FillText(fmt.Sprintf("|Δx| = %.0f", math.Abs(dx)), s.pointer.X+10, s.pointer.Y-20)
	c.FillText(fmt.Sprintf("|Δy| = %.0f", math.Abs(dy)), s.pointer.X+10, s.pointer.Y-5)

	// half-pixel offsets keep the 1px dashes crisp
	mx, my := math.Floor(s.pointer.X)+0.5, math.Floor(s.pointer.Y)+0.5
	cx, cy := math.Floor(s.center.X)+0.5, math.Floor(s.center.Y)+0.5

	c.SetLineDash(5, 5)
	c.SetStrokeStyle(palette[1])
	line(c, geom.Pt(mx, cy), geom.Pt(mx, my))
	line(c, geom.Pt(cx, my), geom.Pt(mx, my))
	c.SetLineDash()
}
