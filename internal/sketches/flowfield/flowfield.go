// Package flowfield advects particles through a slowly evolving simplex
// noise field and lets their trails fade out.
package flowfield

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/ojrac/opensimplex-go"

	"github.com/cequella/portfolio/backend-go/internal/i18n"
	"github.com/cequella/portfolio/backend-go/internal/sketch"
)

const (
	Particles  = 1500
	noiseScale = 0.002
	zStep      = 0.002
	speed      = 1.5

	background = "#050505"
	trail      = "rgba(5, 5, 5, 0.05)"
)

type particle struct {
	x, y  float64
	color string
}

type Sketch struct {
	noise     opensimplex.Noise
	rng       *rand.Rand
	particles []particle
	zOff      float64

	width, height float64

	surface sketch.Surface
	loop    *sketch.Loop
}

var (
	_ sketch.Sketch    = (*Sketch)(nil)
	_ sketch.Described = (*Sketch)(nil)
)

// New returns a sketch with a random noise field.
func New() *Sketch {
	return NewSeeded(rand.Uint64())
}

// NewSeeded fixes both the noise field and particle placement.
func NewSeeded(seed uint64) *Sketch {
	return &Sketch{
		noise: opensimplex.New(int64(seed)),
		rng:   rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

func (s *Sketch) Metadata() sketch.Metadata {
	return sketch.Metadata{
		ID: "flow-field",
		Title: i18n.Text{
			PT: "Neon Flow Field",
			EN: "Neon Flow Field",
		},
		Description: i18n.Text{
			PT: "Milhares de partículas seguindo vetores de ruído em uma dança fluida.",
			EN: "Thousands of particles following Perlin noise vectors in a fluid dance.",
		},
		Image: "/flow-field.png",
	}
}

func (s *Sketch) Setup(surface sketch.Surface) {
	s.surface = surface
	w, h := surface.Size()
	s.Resize(w, h)

	s.loop = sketch.NewLoop(surface.Scheduler(), func(time.Time) { s.step() })
	s.loop.Start()
}

// Resize scatters a fresh set of particles and clears the surface.
func (s *Sketch) Resize(width, height int) {
	s.width, s.height = float64(width), float64(height)
	s.particles = s.particles[:0]
	for range Particles {
		hue := s.rng.Float64()*80 + 200
		s.particles = append(s.particles, particle{
			x:     s.rng.Float64() * s.width,
			y:     s.rng.Float64() * s.height,
			color: colorful.Hsl(hue, 0.8, 0.6).Clamped().Hex() + "cc",
		})
	}
	if s.surface == nil {
		return
	}
	if c, ok := s.surface.Context(); ok {
		c.SetFillStyle(background)
		c.FillRect(0, 0, s.width, s.height)
	}
}

func (s *Sketch) Destroy() {
	if s.loop != nil {
		s.loop.Stop()
	}
}

// Advance moves every particle one step along the field and wraps it
// around the edges.
func (s *Sketch) Advance() {
	s.zOff += zStep
	for i := range s.particles {
		p := &s.particles[i]
		angle := s.noise.Eval3(p.x*noiseScale, p.y*noiseScale, s.zOff) * math.Pi * 2
		p.x += math.Cos(angle) * speed
		p.y += math.Sin(angle) * speed

		if p.x < 0 {
			p.x = s.width
		}
		if p.x > s.width {
			p.x = 0
		}
		if p.y < 0 {
			p.y = s.height
		}
		if p.y > s.height {
			p.y = 0
		}
	}
}

func (s *Sketch) step() {
	c, ok := s.surface.Context()
	if !ok {
		return
	}
	c.SetFillStyle(trail)
	c.FillRect(0, 0, s.width, s.height)

	s.Advance()
	for _, p := range s.particles {
		c.SetFillStyle(p.color)
		c.FillRect(p.x, p.y, 2, 2)
	}
}
