// Package sketches registers every sketch the portfolio ships.
package sketches

import (
	"github.com/cequella/portfolio/backend-go/internal/sketch"
	"github.com/cequella/portfolio/backend-go/internal/sketches/dijkstra"
	"github.com/cequella/portfolio/backend-go/internal/sketches/flowfield"
	"github.com/cequella/portfolio/backend-go/internal/sketches/fractaltree"
	"github.com/cequella/portfolio/backend-go/internal/sketches/pseudoangle"
	"github.com/cequella/portfolio/backend-go/internal/sketches/sacilotto"
	"github.com/cequella/portfolio/backend-go/internal/sketches/sutherland"
)

// Default returns a registry in gallery order.
func Default() *sketch.Registry {
	r := sketch.NewRegistry()
	r.Register("flow-field", func() sketch.Sketch { return flowfield.New() })
	r.Register("fractal-tree", func() sketch.Sketch { return fractaltree.New() })
	r.Register("pseudoangle", func() sketch.Sketch { return pseudoangle.New() })
	r.Register("sutherland-hodgman", func() sketch.Sketch { return sutherland.New() })
	r.Register("dijkstra", func() sketch.Sketch { return dijkstra.New() })
	r.Register("sacilotto-gen", func() sketch.Sketch { return sacilotto.New() })
	return r
}
