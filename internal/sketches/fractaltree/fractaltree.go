// Package fractaltree draws a recursive binary tree whose branching angle
// sways with time.
package fractaltree

import (
	"math"
	"time"

	"github.com/cequella/portfolio/backend-go/internal/i18n"
	"github.com/cequella/portfolio/backend-go/internal/sketch"
)

const (
	Depth = 10

	trunk  = "#cc2222"
	branch = "#e6e2d3"
)

type Sketch struct {
	width, height float64
	spread        float64

	surface sketch.Surface
	loop    *sketch.Loop
}

var (
	_ sketch.Sketch    = (*Sketch)(nil)
	_ sketch.Described = (*Sketch)(nil)
)

func New() *Sketch { return &Sketch{} }

func (s *Sketch) Metadata() sketch.Metadata {
	return sketch.Metadata{
		ID: "fractal-tree",
		Title: i18n.Text{
			PT: "Recursive Blooms",
			EN: "Recursive Blooms",
		},
		Description: i18n.Text{
			PT: "Padrões geométricos emergindo de regras recursivas simples.",
			EN: "Geometric patterns emerging from simple recursive rules.",
		},
		Image: "/fractal-tree.png",
	}
}

func (s *Sketch) Setup(surface sketch.Surface) {
	s.surface = surface
	w, h := surface.Size()
	s.Resize(w, h)
	s.loop = sketch.NewLoop(surface.Scheduler(), s.draw)
	s.loop.Start()
}

func (s *Sketch) Resize(width, height int) {
	s.width, s.height = float64(width), float64(height)
}

func (s *Sketch) Destroy() {
	if s.loop != nil {
		s.loop.Stop()
	}
}

// Spread is the angle between a branch and each of its children at t.
func Spread(t time.Time) float64 {
	return math.Pi/4 + math.Sin(float64(t.UnixMilli())*0.0005)*0.2
}

// BranchColor picks the stroke for a branch at depth. The two levels
// nearest the trunk are always red.
func BranchColor(depth int) string {
	if depth > 8 || depth%2 == 0 {
		return trunk
	}
	return branch
}

func (s *Sketch) draw(now time.Time) {
	c, ok := s.surface.Context()
	if !ok {
		return
	}
	c.SetFillStyle("#111111")
	c.FillRect(0, 0, s.width, s.height)

	s.spread = Spread(now)
	s.branch(c, s.width/2, s.height, s.height*0.25, -math.Pi/2, Depth)
}

func (s *Sketch) branch(c sketch.Canvas, x, y, length, angle float64, depth int) {
	if depth == 0 {
		return
	}
	ex := x + length*math.Cos(angle)
	ey := y + length*math.Sin(angle)

	c.BeginPath()
	c.MoveTo(x, y)
	c.LineTo(ex, ey)
	c.SetStrokeStyle(BranchColor(depth))
	c.SetLineWidth(float64(depth) * 1.5)
	c.Stroke()

	next := length * 0.75
	s.branch(c, ex, ey, next, angle-s.spread, depth-1)
	s.branch(c, ex, ey, next, angle+s.spread, depth-1)
}
