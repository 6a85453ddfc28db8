// Package pathfind generates seeded random graphs, solves shortest paths
// with Dijkstra while recording every step, and replays those steps as a
// timed animation session.
package pathfind

import (
	"math"
	"sort"

	"github.com/cequella/portfolio/backend-go/internal/geom"
)

// Neighbor is one adjacency entry.
type Neighbor struct {
	Node   int `json:"node"`
	Weight int `json:"weight"`
	Edge   int `json:"edge"` // index into Graph.Edges
}

// Node is a graph vertex placed on the surface.
type Node struct {
	ID        int        `json:"id"`
	Pos       geom.Point `json:"pos"`
	Neighbors []Neighbor `json:"neighbors"`
}

// Edge is an undirected weighted edge.
type Edge struct {
	U      int `json:"u"`
	V      int `json:"v"`
	Weight int `json:"weight"`
}

// Graph is an undirected graph with at most one edge per node pair.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NewGraph creates a graph with one node per point and no edges.
func NewGraph(points ...geom.Point) *Graph {
	g := &Graph{Nodes: make([]Node, len(points))}
	for i, p := range points {
		g.Nodes[i] = Node{ID: i, Pos: p}
	}
	return g
}

// Connected reports whether u and v share an edge, in either direction.
func (g *Graph) Connected(u, v int) bool {
	for _, e := range g.Edges {
		if (e.U == u && e.V == v) || (e.U == v && e.V == u) {
			return true
		}
	}
	return false
}

// AddEdge connects u and v unless they already are, and reports whether
// an edge was added.
func (g *Graph) AddEdge(u, v, weight int) bool {
	if u == v || g.Connected(u, v) {
		return false
	}
	idx := len(g.Edges)
	g.Edges = append(g.Edges, Edge{U: u, V: v, Weight: weight})
	g.Nodes[u].Neighbors = append(g.Nodes[u].Neighbors, Neighbor{Node: v, Weight: weight, Edge: idx})
	g.Nodes[v].Neighbors = append(g.Nodes[v].Neighbors, Neighbor{Node: u, Weight: weight, Edge: idx})
	return true
}

// Weight returns the weight of the edge between u and v.
func (g *Graph) Weight(u, v int) (int, bool) {
	for _, n := range g.Nodes[u].Neighbors {
		if n.Node == v {
			return n.Weight, true
		}
	}
	return 0, false
}

// Nearest returns the node closest to p among those strictly within
// radius. Equal distances resolve to the lower id.
func (g *Graph) Nearest(p geom.Point, radius float64) (int, bool) {
	best, bestDist := -1, radius
	for _, n := range g.Nodes {
		if d := n.Pos.Dist(p); d < bestDist {
			best, bestDist = n.ID, d
		}
	}
	return best, best >= 0
}

// GenerateOptions controls Generate.
type GenerateOptions struct {
	Nodes     int     // node count
	Neighbors int     // nearest neighbours each node tries to connect to
	Padding   float64 // inset on each side, as a fraction of min(width, height)
}

// DefaultGenerateOptions matches the interactive sketch.
var DefaultGenerateOptions = GenerateOptions{Nodes: 20, Neighbors: 3, Padding: 0.15}

// Generate places opts.Nodes nodes uniformly inside the padded box and
// links every node to its opts.Neighbors nearest others. Each node draws
// its x then its y from r. Edge weight is the distance divided by 10,
// rounded half up.
func Generate(width, height float64, opts GenerateOptions, r *Rand) *Graph {
	width, height = math.Max(width, 0), math.Max(height, 0)
	pad := math.Min(width, height) * opts.Padding

	points := make([]geom.Point, opts.Nodes)
	for i := range points {
		x := pad + r.Float64()*(width-pad*2)
		y := pad + r.Float64()*(height-pad*2)
		points[i] = geom.Pt(x, y)
	}
	g := NewGraph(points...)

	type candidate struct {
		index int
		dist  float64
	}
	candidates := make([]candidate, 0, len(points))
	for i := range g.Nodes {
		candidates = candidates[:0]
		for j := range g.Nodes {
			if i == j {
				continue
			}
			candidates = append(candidates, candidate{index: j, dist: points[i].Dist(points[j])})
		}
		sort.SliceStable(candidates, func(a, b int) bool {
			return candidates[a].dist < candidates[b].dist
		})
		for k := 0; k < opts.Neighbors && k < len(candidates); k++ {
			c := candidates[k]
			g.AddEdge(i, c.index, weightFor(c.dist))
		}
	}
	return g
}

func weightFor(dist float64) int {
	return int(math.Floor(dist/10 + 0.5))
}
