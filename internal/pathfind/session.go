package pathfind

import (
	"log/slog"
	"math/rand/v2"

	"github.com/cequella/portfolio/backend-go/internal/geom"
)

// DefaultSeed is the layout shown before the first restart.
const DefaultSeed uint32 = 12345

// Phase is the session state.
type Phase int

const (
	Idle         Phase = iota // no graph yet
	PickingStart              // waiting for the first node
	PickingEnd                // start chosen, waiting for the second node
	Solving                   // both chosen, solver running
	Animating                 // replaying recorded steps
	Finished                  // replay done or no path; next click restarts
)

var phaseNames = [...]string{"idle", "picking-start", "picking-end", "solving", "animating", "finished"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Status is the banner message the session is in.
type Status int

const (
	StatusPickStart Status = iota
	StatusPickEnd
	StatusRunning
	StatusComputing
	StatusRestart
)

// Click is what a pointer click did.
type Click int

const (
	ClickIgnored Click = iota
	ClickStart         // start node chosen
	ClickSolved        // end chosen and a path exists; replay begins
	ClickNoPath        // end chosen, unreachable; session finished
	ClickRestart       // graph regenerated with a new seed
)

// Tick is the outcome of one replay step.
type Tick int

const (
	TickContinue Tick = iota // a step was applied, schedule the next
	TickDone                 // replay exhausted, session finished
	TickStale                // token no longer current, do nothing
)

// SeedSource yields seeds for regenerated graphs.
type SeedSource func() uint32

// RandomSeed draws a seed in [0, 99999).
func RandomSeed() uint32 {
	return rand.Uint32N(99999)
}

// Session is the interactive shortest-path state machine. Every graph
// regeneration and every Cancel advance its token, so a replay timer that
// captured an older token becomes a no-op.
type Session struct {
	opts  GenerateOptions
	seeds SeedSource
	seed  uint32

	width, height float64
	graph         *Graph

	phase      Phase
	token      uint64
	start, end int

	solution   Solution
	cursor     int
	visited    map[int]bool
	active     map[int]bool
	resultPath []int
}

// NewSession creates an idle session. A nil seeds uses RandomSeed.
func NewSession(opts GenerateOptions, seed uint32, seeds SeedSource) *Session {
	if seeds == nil {
		seeds = RandomSeed
	}
	return &Session{
		opts:    opts,
		seeds:   seeds,
		seed:    seed,
		start:   -1,
		end:     -1,
		visited: make(map[int]bool),
		active:  make(map[int]bool),
	}
}

// Generate lays out a new graph for a width x height surface with the
// current seed and clears all picks and replay state.
func (s *Session) Generate(width, height float64) {
	s.width, s.height = width, height
	s.graph = Generate(width, height, s.opts, NewRand(s.seed))
	s.token++
	s.phase = PickingStart
	s.start, s.end = -1, -1
	s.solution = Solution{}
	s.cursor = 0
	s.visited = make(map[int]bool)
	s.active = make(map[int]bool)
	s.resultPath = nil
	slog.Debug("graph generated", "seed", s.seed, "nodes", len(s.graph.Nodes), "edges", len(s.graph.Edges))
}

// Click handles a click at p. Nodes are hit strictly within radius, the
// nearest one wins. While solving or animating clicks are ignored; once
// finished any click regenerates the graph with a fresh seed.
func (s *Session) Click(p geom.Point, radius float64) Click {
	switch s.phase {
	case Idle, Solving, Animating:
		return ClickIgnored
	case Finished:
		s.seed = s.seeds()
		s.Generate(s.width, s.height)
		return ClickRestart
	}

	id, ok := s.graph.Nearest(p, radius)
	if !ok {
		return ClickIgnored
	}
	switch s.phase {
	case PickingStart:
		s.start = id
		s.phase = PickingEnd
		return ClickStart
	case PickingEnd:
		if id == s.start {
			return ClickIgnored
		}
		s.end = id
		return s.solve()
	}
	return ClickIgnored
}

func (s *Session) solve() Click {
	s.phase = Solving
	s.solution = Solve(s.graph, s.start, s.end)
	s.cursor = 0
	s.visited = make(map[int]bool)
	s.active = make(map[int]bool)
	s.resultPath = nil
	slog.Debug("shortest path solved",
		"start", s.start, "end", s.end,
		"found", s.solution.Found, "steps", len(s.solution.Steps))

	if !s.solution.Found {
		s.phase = Finished
		s.resultPath = []int{}
		return ClickNoPath
	}
	s.phase = Animating
	return ClickSolved
}

// Tick applies the next recorded step for the session identified by
// token. With no steps left it finishes the session and freezes the
// result path.
func (s *Session) Tick(token uint64) Tick {
	if token != s.token || s.phase != Animating {
		return TickStale
	}
	if s.cursor >= len(s.solution.Steps) {
		s.phase = Finished
		s.resultPath = append([]int{}, s.solution.Path...)
		return TickDone
	}
	st := s.solution.Steps[s.cursor]
	switch st.Kind {
	case StepVisit:
		s.visited[st.Node] = true
	case StepRelax:
		s.active[st.Edge] = true
	}
	s.cursor++
	return TickContinue
}

// Cancel invalidates the current token so pending replay ticks do
// nothing. Steps already applied stay applied.
func (s *Session) Cancel() {
	s.token++
}

// Token identifies the current graph and replay.
func (s *Session) Token() uint64 { return s.token }

func (s *Session) Phase() Phase       { return s.phase }
func (s *Session) Seed() uint32       { return s.seed }
func (s *Session) Graph() *Graph      { return s.graph }
func (s *Session) Solution() Solution { return s.solution }

// Start returns the chosen start node.
func (s *Session) Start() (int, bool) { return s.start, s.start >= 0 }

// End returns the chosen end node.
func (s *Session) End() (int, bool) { return s.end, s.end >= 0 }

// Visited reports whether the replay has reached node id.
func (s *Session) Visited(id int) bool { return s.visited[id] }

// Active reports whether the replay has relaxed edge idx.
func (s *Session) Active(idx int) bool { return s.active[idx] }

// ResultPath is the highlighted path, set once the session finishes.
func (s *Session) ResultPath() []int { return s.resultPath }

// OnResultPath reports whether node id lies on the result path.
func (s *Session) OnResultPath(id int) bool {
	for _, n := range s.resultPath {
		if n == id {
			return true
		}
	}
	return false
}

// EdgeOnResultPath reports whether e joins two consecutive result nodes.
func (s *Session) EdgeOnResultPath(e Edge) bool {
	for i := 0; i+1 < len(s.resultPath); i++ {
		a, b := s.resultPath[i], s.resultPath[i+1]
		if (a == e.U && b == e.V) || (a == e.V && b == e.U) {
			return true
		}
	}
	return false
}

// Status picks the banner message: finished first, then animating, then
// the pick prompts.
func (s *Session) Status() Status {
	switch {
	case s.phase == Finished:
		return StatusRestart
	case s.phase == Animating:
		return StatusComputing
	case s.start >= 0 && s.end < 0:
		return StatusPickEnd
	case s.start >= 0 && s.end >= 0:
		return StatusRunning
	}
	return StatusPickStart
}
