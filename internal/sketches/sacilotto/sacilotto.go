// Package sacilotto composes grids of geometric cells after Luiz
// Sacilotto's Concreções. Every composition is a pure function of its
// seed; clicking the surface draws a new seed.
package sacilotto

import (
	"math"
	"math/rand/v2"

	"github.com/cequella/portfolio/backend-go/internal/i18n"
	"github.com/cequella/portfolio/backend-go/internal/sketch"
)

// Palettes are background, figure and accent.
var Palettes = [...][3]string{
	{"#000000", "#FFFFFF", "#CC2222"},
	{"#000000", "#FFFFFF", "#2222CC"},
	{"#000000", "#FFFFFF", "#CCAA00"},
	{"#000000", "#FFFFFF", "#228822"},
}

// CellKind is the motif drawn in one cell.
type CellKind int

const (
	CellTriangle CellKind = iota
	CellStripes
	CellNested
	CellTriangleDot
)

// Cell is one grid position. Turns counts quarter turns clockwise.
type Cell struct {
	Kind  CellKind
	Turns int
}

// Composition is a square grid of cells stored column by column.
type Composition struct {
	Palette int
	Cols    int
	Cells   []Cell
}

// sinRand is the sine-hash sequence the compositions are built from.
type sinRand float64

func (s *sinRand) next() float64 {
	v := math.Sin(float64(*s)) * 10000
	*s = sinRand(v)
	return v - math.Floor(v)
}

// Compose builds the composition for seed: a palette, a grid of 2 to 4
// columns, then a kind and a rotation per cell, column-major.
func Compose(seed float64) Composition {
	r := sinRand(seed)
	comp := Composition{
		Palette: int(r.next() * float64(len(Palettes))),
		Cols:    2 + int(r.next()*3),
	}
	comp.Cells = make([]Cell, 0, comp.Cols*comp.Cols)
	for range comp.Cols * comp.Cols {
		kind := CellKind(r.next() * 4)
		comp.Cells = append(comp.Cells, Cell{Kind: kind, Turns: int(r.next() * 4)})
	}
	return comp
}

type Sketch struct {
	seed  float64
	seeds func() float64

	width, height float64

	surface  sketch.Surface
	bindings sketch.Bindings
}

var (
	_ sketch.Sketch    = (*Sketch)(nil)
	_ sketch.Described = (*Sketch)(nil)
)

// New returns a generator seeded from math/rand.
func New() *Sketch {
	return NewWithSeeds(rand.Float64)
}

// NewWithSeeds draws the first seed and every reseed from seeds.
func NewWithSeeds(seeds func() float64) *Sketch {
	return &Sketch{seed: seeds(), seeds: seeds}
}

func (s *Sketch) Metadata() sketch.Metadata {
	return sketch.Metadata{
		ID: "sacilotto-gen",
		Title: i18n.Text{
			PT: "Gerador Sacilotto",
			EN: "Sacilotto Generator",
		},
		Description: i18n.Text{
			PT: "Composições algorítmicas inspiradas nas Concreções de Luiz Sacilotto.",
			EN: "Algorithmic compositions inspired by Luiz Sacilotto's Concretions.",
		},
		Image: "/sacilotto-thumb.png",
	}
}

// Seed is the seed of the composition on screen.
func (s *Sketch) Seed() float64 { return s.seed }

func (s *Sketch) Setup(surface sketch.Surface) {
	s.surface = surface
	s.bindings.Bind(surface, sketch.EventClick, func(sketch.Event) {
		s.seed = s.seeds()
		s.draw()
	})
	w, h := surface.Size()
	s.Resize(w, h)
}

func (s *Sketch) Resize(width, height int) {
	s.width, s.height = float64(width), float64(height)
	s.draw()
}

func (s *Sketch) Destroy() {
	s.bindings.Release()
}

func (s *Sketch) draw() {
	if s.surface == nil {
		return
	}
	c, ok := s.surface.Context()
	if !ok {
		return
	}
	comp := Compose(s.seed)
	pal := Palettes[comp.Palette]

	c.SetFillStyle(pal[0])
	c.FillRect(0, 0, s.width, s.height)

	size := math.Min(s.width, s.height) * 0.8
	cell := size / float64(comp.Cols)

	c.Save()
	c.Translate((s.width-size)/2, (s.height-size)/2)
	for i := range comp.Cols {
		for j := range comp.Cols {
			drawCell(c, comp.Cells[i*comp.Cols+j], float64(i)*cell, float64(j)*cell, cell, pal)
		}
	}
	c.Restore()
}

func drawCell(c sketch.Canvas, cell Cell, x, y, size float64, pal [3]string) {
	h := size / 2
	c.SetFillStyle(pal[1])
	c.Save()
	c.Translate(x+h, y+h)
	c.Rotate(float64(cell.Turns) * math.Pi / 2)

	switch cell.Kind {
	case CellTriangle:
		c.BeginPath()
		c.MoveTo(-h, -h)
		c.LineTo(h, -h)
		c.LineTo(-h, h)
		c.ClosePath()
		c.Fill()
	case CellStripes:
		const stripes = 4
		w := size / (stripes * 2)
		for k := range stripes {
			c.FillRect(-h+float64(k)*2*w, -h, w, size)
		}
	case CellNested:
		c.FillRect(-h, -h, size, size)
		c.SetFillStyle(pal[0])
		c.FillRect(-size/4, -size/4, h, h)
		c.SetFillStyle(pal[2])
		c.FillRect(-size/8, -size/8, size/4, size/4)
	case CellTriangleDot:
		c.BeginPath()
		c.MoveTo(-h, -h)
		c.LineTo(h, h)
		c.LineTo(-h, h)
		c.ClosePath()
		c.Fill()
		c.SetFillStyle(pal[2])
		c.BeginPath()
		c.Arc(0, 0, size/4, 0, 2*math.Pi)
		c.Fill()
	}
	c.Restore()
}
