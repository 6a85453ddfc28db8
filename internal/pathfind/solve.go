package pathfind

import (
	"math"

	"github.com/emirpasic/gods/trees/binaryheap"
)

// Unreachable is the distance of nodes the solver never reached.
const Unreachable = math.MaxInt

// StepKind tags a Step.
type StepKind int

const (
	// StepVisit records a node popped from the frontier and finalised.
	StepVisit StepKind = iota
	// StepRelax records an edge that improved a neighbour's distance.
	StepRelax
)

func (k StepKind) String() string {
	if k == StepVisit {
		return "visit"
	}
	return "relax"
}

// Step is one recorded solver event. Visit steps only set Node; relax
// steps set Edge, From, To and Dist.
type Step struct {
	Kind StepKind `json:"kind"`
	Node int      `json:"node"`
	Edge int      `json:"edge"`
	From int      `json:"from"`
	To   int      `json:"to"`
	Dist int      `json:"dist"`
}

// Solution is the full record of one solve.
type Solution struct {
	Steps     []Step
	Path      []int // start..end, empty when Found is false
	Distances []int // per node, Unreachable when never reached
	Found     bool
}

// Dist returns the distance to the end node, or Unreachable.
func (s Solution) Dist() int {
	if !s.Found || len(s.Path) == 0 {
		return Unreachable
	}
	return s.Distances[s.Path[len(s.Path)-1]]
}

type entry struct {
	node int
	dist int
	seq  int
}

// byDistance orders the frontier by distance, then by push order, so the
// pop sequence is the same as a stable sort of the pending list.
func byDistance(a, b interface{}) int {
	ea, eb := a.(entry), b.(entry)
	switch {
	case ea.dist != eb.dist:
		if ea.dist < eb.dist {
			return -1
		}
		return 1
	case ea.seq < eb.seq:
		return -1
	case ea.seq > eb.seq:
		return 1
	}
	return 0
}

// Solve runs Dijkstra from start and stops once end is popped. Entries
// whose distance is worse than the best known one are skipped without a
// step.
func Solve(g *Graph, start, end int) Solution {
	n := len(g.Nodes)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
		prev[i] = -1
	}
	if start < 0 || start >= n || end < 0 || end >= n {
		return Solution{Distances: dist}
	}

	var steps []Step
	seq := 0
	pq := binaryheap.NewWith(byDistance)
	dist[start] = 0
	pq.Push(entry{node: start, dist: 0, seq: seq})

	for !pq.Empty() {
		v, _ := pq.Pop()
		cur := v.(entry)
		if cur.dist > dist[cur.node] {
			continue
		}
		steps = append(steps, Step{Kind: StepVisit, Node: cur.node})
		if cur.node == end {
			break
		}

		for _, nb := range g.Nodes[cur.node].Neighbors {
			alt := dist[cur.node] + nb.Weight
			if alt < dist[nb.Node] {
				dist[nb.Node] = alt
				prev[nb.Node] = cur.node
				seq++
				pq.Push(entry{node: nb.Node, dist: alt, seq: seq})
				steps = append(steps, Step{Kind: StepRelax, Edge: nb.Edge, From: cur.node, To: nb.Node, Dist: alt})
			}
		}
	}

	sol := Solution{Steps: steps, Distances: dist}
	if dist[end] == Unreachable {
		sol.Path = []int{}
		return sol
	}
	sol.Found = true
	for at := end; at != -1; at = prev[at] {
		sol.Path = append(sol.Path, at)
	}
	for i, j := 0, len(sol.Path)-1; i < j; i, j = i+1, j-1 {
		sol.Path[i], sol.Path[j] = sol.Path[j], sol.Path[i]
	}
	return sol
}
