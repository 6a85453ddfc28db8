// Package sutherland is the interactive polygon clipping sketch. Vertices
// and the clip window are draggable; the clipped result is redrawn every
// frame.
package sutherland

import (
	"math"
	"time"

	"github.com/cequella/portfolio/backend-go/internal/clip"
	"github.com/cequella/portfolio/backend-go/internal/i18n"
	"github.com/cequella/portfolio/backend-go/internal/sketch"
)

const gridStep = 40

var palette = struct {
	bg, grid, polygon, clip, result, accent, text string
}{
	bg:      "#0d0d0d",
	grid:    "#1a1a1a",
	polygon: "#444444",
	clip:    "#cc2222",
	result:  "#FAFAFA",
	accent:  "#0000FF",
	text:    "#B4B4B4",
}

var instructions = []i18n.Text{
	{PT: "Arraste os pontos para modificar o polígono", EN: "Drag the points to reshape the polygon"},
	{PT: "Arraste o retângulo para mover a janela de clip", EN: "Drag the rectangle to move the clip window"},
}

type Sketch struct {
	scene *clip.Scene

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
		ID: "sutherland-hodgman",
		Title: i18n.Text{
			PT: "Sutherland–Hodgman",
			EN: "Sutherland–Hodgman",
		},
		Description: i18n.Text{
			PT: "Um algoritmo fundamental para recorte de polígonos, amplamente utilizado em computação gráfica para renderização eficiente.",
			EN: "A fundamental algorithm for polygon clipping, widely used in computer graphics for efficient rendering.",
		},
		Image: "/sutherland-hodgman.svg",
	}
}

// Scene exposes the clipping state.
func (s *Sketch) Scene() *clip.Scene { return s.scene }

func (s *Sketch) Setup(surface sketch.Surface) {
	s.surface = surface
	w, h := surface.Size()
	s.scene = clip.NewScene(float64(w), float64(h))

	s.bindings.Bind(surface, sketch.EventPointerDown, s.onPointerDown)
	s.bindings.Bind(surface, sketch.EventPointerMove, s.onPointerMove)
	s.bindings.Bind(surface.Window(), sketch.EventPointerUp, s.onPointerUp)

	s.loop = sketch.NewLoop(surface.Scheduler(), func(time.Time) { s.draw() })
	s.loop.Start()
}

// Resize scales the polygon and window with the surface. A scene laid out
// on a zero-sized surface is laid out again instead.
func (s *Sketch) Resize(width, height int) {
	if s.scene == nil {
		return
	}
	if w, h := s.scene.Size(); w <= 0 || h <= 0 {
		if width > 0 && height > 0 {
			s.scene = clip.NewScene(float64(width), float64(height))
		}
		return
	}
	s.scene.Resize(float64(width), float64(height))
}

func (s *Sketch) Destroy() {
	if s.loop != nil {
		s.loop.Stop()
	}
	s.bindings.Release()
}

func (s *Sketch) onPointerDown(e sketch.Event) {
	s.scene.PointerDown(sketch.PointerPosition(s.surface, e))
}

func (s *Sketch) onPointerMove(e sketch.Event) {
	s.scene.PointerMove(sketch.PointerPosition(s.surface, e))
}

func (s *Sketch) onPointerUp(sketch.Event) {
	s.scene.PointerUp()
}

func (s *Sketch) draw() {
	c, ok := s.surface.Context()
	if !ok {
		return
	}
	w, h := s.surface.Size()
	width, height := float64(w), float64(h)

	c.SetFillStyle(palette.bg)
	c.FillRect(0, 0, width, height)
	drawGrid(c, width, height)

	clipped := s.scene.Clipped()
	drawPolygon(c, s.scene.Polygon, palette.polygon, true, false)

	win := s.scene.Window
	c.SetStrokeStyle(palette.clip)
	c.SetLineWidth(2)
	c.SetLineDash(5, 5)
	c.StrokeRect(win.X, win.Y, win.W, win.H)
	c.SetLineDash()

	drawPolygon(c, clipped, palette.result, false, true)

	kind, idx := s.scene.Dragging()
	for i, p := range s.scene.Polygon {
		if kind == clip.DragVertex && i == idx {
			c.SetFillStyle(palette.accent)
		} else {
			c.SetFillStyle(palette.text)
		}
		c.BeginPath()
		c.Arc(p.X, p.Y, 5, 0, 2*math.Pi)
		c.Fill()
	}

	lang := s.surface.Locale()
	c.SetFont(sketch.Font{Size: 14, Monospace: true})
	c.SetFillStyle(palette.text)
	c.SetTextAlign(sketch.AlignLeft, sketch.BaselineAlphabetic)
	for i, t := range instructions {
		c.FillText(t.Get(lang), 20, float64(30+20*i))
	}
}

func drawGrid(c sketch.Canvas, width, height float64) {
	c.SetStrokeStyle(palette.grid)
	c.SetLineWidth(1)
	for x := 0.0; x < width; x += gridStep {
		c.BeginPath()
		c.MoveTo(x, 0)
		c.LineTo(x, height)
		c.Stroke()
	}
	for y := 0.0; y < height; y += gridStep {
		c.BeginPath()
		c.MoveTo(0, y)
		c.LineTo(width, y)
		c.Stroke()
	}
}

// drawPolygon outlines pts and optionally fills it with color at 20%
// opacity. Fewer than two points draw nothing.
func drawPolygon(c sketch.Canvas, pts clip.Polygon, color string, dashed, filled bool) {
	if !pts.Drawable() {
		return
	}
	c.BeginPath()
	c.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()

	if dashed {
		c.SetLineDash(5, 5)
	}
	c.SetStrokeStyle(color)
	c.SetLineWidth(2)
	c.Stroke()
	if dashed {
		c.SetLineDash()
	}
	if filled {
		c.SetFillStyle(color + "33")
		c.Fill()
	}
}
