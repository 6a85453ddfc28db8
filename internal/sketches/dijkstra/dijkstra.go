// Package dijkstra is the interactive shortest-path sketch: pick a start
// node, pick an end node, and watch the solver's recorded steps replay.
package dijkstra

import (
	"math"
	"strconv"
	"time"

	"github.com/cequella/portfolio/backend-go/internal/geom"
	"github.com/cequella/portfolio/backend-go/internal/i18n"
	"github.com/cequella/portfolio/backend-go/internal/pathfind"
	"github.com/cequella/portfolio/backend-go/internal/sketch"
)

const (
	// StepInterval is the delay between replayed solver steps.
	StepInterval = 80 * time.Millisecond

	clickRadius = 40
	hoverRadius = 30
	nodeRadius  = 16
)

var statusText = map[pathfind.Status]i18n.Text{
	pathfind.StatusPickStart: {PT: "Clique em um nó inicial", EN: "Click a start node"},
	pathfind.StatusPickEnd:   {PT: "Selecione o nó de destino", EN: "Select the target node"},
	pathfind.StatusRunning:   {PT: "Executando Dijkstra", EN: "Running Dijkstra"},
	pathfind.StatusComputing: {PT: "Calculando...", EN: "Computing..."},
	pathfind.StatusRestart:   {PT: "Clique em qualquer lugar para reiniciar", EN: "Click anywhere to restart"},
}

// Sketch wires a pathfind.Session to a surface.
type Sketch struct {
	session *pathfind.Session

	surface  sketch.Surface
	bindings sketch.Bindings
	loop     *sketch.Loop

	timer    sketch.TimerID
	timerSet bool
}

var (
	_ sketch.Sketch    = (*Sketch)(nil)
	_ sketch.Described = (*Sketch)(nil)
)

// New returns a sketch that starts from pathfind.DefaultSeed and draws
// random seeds on restart.
func New() *Sketch {
	return NewWithSeeds(pathfind.DefaultSeed, nil)
}

// NewWithSeeds fixes the first seed and the source of restart seeds.
func NewWithSeeds(seed uint32, seeds pathfind.SeedSource) *Sketch {
	return &Sketch{session: pathfind.NewSession(pathfind.DefaultGenerateOptions, seed, seeds)}
}

func (s *Sketch) Metadata() sketch.Metadata {
	return sketch.Metadata{
		ID: "dijkstra",
		Title: i18n.Text{
			PT: "Algoritmo de Dijkstra",
			EN: "Dijkstra Algorithm",
		},
		Description: i18n.Text{
			PT: "Selecione dois pontos para encontrar o caminho mais curto usando o algoritmo de Dijkstra.",
			EN: "Select two points to find the shortest path using Dijkstra algorithm.",
		},
		Image: "/dijkstra.png",
	}
}

// Session exposes the underlying state machine.
func (s *Sketch) Session() *pathfind.Session { return s.session }

func (s *Sketch) Setup(surface sketch.Surface) {
	s.surface = surface
	w, h := surface.Size()
	s.session.Generate(float64(w), float64(h))

	s.bindings.Bind(surface, sketch.EventClick, s.onClick)
	s.bindings.Bind(surface, sketch.EventPointerMove, s.onPointerMove)

	s.loop = sketch.NewLoop(surface.Scheduler(), func(time.Time) { s.draw() })
	s.loop.Start()
}

// Resize regenerates the graph for the new size with the current seed.
// Any replay in progress is abandoned.
func (s *Sketch) Resize(width, height int) {
	s.stopReplay()
	s.session.Generate(float64(width), float64(height))
}

func (s *Sketch) Destroy() {
	s.stopReplay()
	s.session.Cancel()
	if s.loop != nil {
		s.loop.Stop()
	}
	s.bindings.Release()
}

func (s *Sketch) onClick(e sketch.Event) {
	sx, _ := sketch.PixelScale(s.surface)
	p := sketch.PointerPosition(s.surface, e)
	switch s.session.Click(p, clickRadius*sx) {
	case pathfind.ClickSolved:
		s.replay(s.session.Token())
	case pathfind.ClickRestart:
		s.stopReplay()
	}
}

func (s *Sketch) onPointerMove(e sketch.Event) {
	g := s.session.Graph()
	if g == nil {
		return
	}
	sx, _ := sketch.PixelScale(s.surface)
	cursor := sketch.CursorDefault
	if _, ok := g.Nearest(sketch.PointerPosition(s.surface, e), hoverRadius*sx); ok {
		cursor = sketch.CursorPointer
	}
	s.surface.SetCursor(cursor)
}

// replay applies one step now and schedules the next while the session
// stays on token.
func (s *Sketch) replay(token uint64) {
	s.timerSet = false
	if s.session.Tick(token) != pathfind.TickContinue {
		return
	}
	s.timer = s.surface.Scheduler().SetTimeout(StepInterval, func() { s.replay(token) })
	s.timerSet = true
}

func (s *Sketch) stopReplay() {
	if s.timerSet {
		s.surface.Scheduler().ClearTimeout(s.timer)
		s.timerSet = false
	}
}

type nodeStyle struct {
	fill, stroke string
	glow         bool
}

func (s *Sketch) nodeStyle(id int) nodeStyle {
	start, _ := s.session.Start()
	end, _ := s.session.End()
	visited := s.session.Visited(id)
	st := nodeStyle{fill: "#1e293b", stroke: "#475569"}
	switch {
	case id == start:
		st = nodeStyle{fill: "#10b981", stroke: "#34d399"}
	case id == end:
		st = nodeStyle{fill: "#ef4444", stroke: "#f87171"}
	case s.session.OnResultPath(id):
		st = nodeStyle{fill: "#fbbf24", stroke: "#fcd34d"}
	case visited:
		st = nodeStyle{fill: "#3b82f6", stroke: "#60a5fa"}
	}
	st.glow = visited || id == start || id == end
	return st
}

func (s *Sketch) draw() {
	c, ok := s.surface.Context()
	if !ok {
		return
	}
	g := s.session.Graph()
	if g == nil {
		return
	}
	w, h := s.surface.Size()

	c.SetFillStyle("#0f172a")
	c.FillRect(0, 0, float64(w), float64(h))

	for i, e := range g.Edges {
		u, v := g.Nodes[e.U].Pos, g.Nodes[e.V].Pos
		c.BeginPath()
		c.MoveTo(u.X, u.Y)
		c.LineTo(v.X, v.Y)
		switch {
		case s.session.EdgeOnResultPath(e):
			c.SetStrokeStyle("#fbbf24")
			c.SetLineWidth(4)
		case s.session.Active(i):
			c.SetStrokeStyle("#3b82f6")
			c.SetLineWidth(2)
		default:
			c.SetStrokeStyle("#334155")
			c.SetLineWidth(1)
		}
		c.Stroke()

		mid := u.Mid(v)
		c.SetFillStyle("#64748b")
		c.SetFont(sketch.Font{Size: 10})
		c.SetTextAlign(sketch.AlignCenter, sketch.BaselineAlphabetic)
		c.FillText(strconv.Itoa(e.Weight), mid.X, mid.Y-5)
	}

	for _, n := range g.Nodes {
		st := s.nodeStyle(n.ID)
		c.BeginPath()
		c.Arc(n.Pos.X, n.Pos.Y, nodeRadius, 0, 2*math.Pi)
		c.SetFillStyle(st.fill)
		if st.glow {
			c.SetShadow(15, st.fill)
		}
		c.Fill()
		c.SetShadow(0, "")

		c.SetStrokeStyle(st.stroke)
		c.SetLineWidth(2)
		c.Stroke()

		c.SetFillStyle("#ffffff")
		c.SetFont(sketch.Font{Size: 11, Bold: true})
		c.SetTextAlign(sketch.AlignCenter, sketch.BaselineMiddle)
		c.FillText(strconv.Itoa(n.ID), n.Pos.X, n.Pos.Y)
	}

	s.drawBanner(c)
}

func (s *Sketch) drawBanner(c sketch.Canvas) {
	c.SetFillStyle("rgba(30, 41, 59, 0.8)")
	c.FillRect(10, 10, 240, 40)
	c.SetFillStyle("#f1f5f9")
	c.SetFont(sketch.Font{Size: 14})
	c.SetTextAlign(sketch.AlignLeft, sketch.BaselineAlphabetic)
	c.FillText(statusText[s.session.Status()].Get(s.surface.Locale()), 30, 36)
}

// NodeAt returns the surface position of node id.
func (s *Sketch) NodeAt(id int) (geom.Point, bool) {
	g := s.session.Graph()
	if g == nil || id < 0 || id >= len(g.Nodes) {
		return geom.Point{}, false
	}
	return g.Nodes[id].Pos, true
}
