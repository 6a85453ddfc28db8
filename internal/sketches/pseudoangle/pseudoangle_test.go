package pseudoangle_test

import (
	"math"
	"testing"
	"time"

	"github.com/cequella/portfolio/backend-go/internal/geom"
	"github.com/cequella/portfolio/backend-go/internal/render"
	"github.com/cequella/portfolio/backend-go/internal/sketch"
	"github.com/cequella/portfolio/backend-go/internal/sketches/pseudoangle"
	"github.com/cequella/portfolio/backend-go/internal/viewer"
)

func TestOf(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   float64
	}{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 1},
		{0, 1, 2},
		{-1, 1, 3},
		{-1, 0, 4},
		{-1, -1, 5},
		{0, -1, 6},
		{1, -1, 7},
		{2, -1, 7.5},
	}
	for _, tt := range tests {
		if got := pseudoangle.Of(tt.dx, tt.dy); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Of(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestOfIsMonotonic(t *testing.T) {
	prev := -1.0
	for deg := 0; deg < 360; deg++ {
		a := float64(deg) * math.Pi / 180
		pa := pseudoangle.Of(math.Cos(a), math.Sin(a))
		if pa < prev {
			t.Fatalf("pseudoangle fell at %d°: %v < %v", deg, pa, prev)
		}
		prev = pa
	}
}

func TestNormalize(t *testing.T) {
	for in, want := range map[float64]float64{0: 0, 7.5: 7.5, 8: 0, 9.25: 1.25, -1: 7, -8: 0} {
		if got := pseudoangle.Normalize(in); got != want {
			t.Errorf("Normalize(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestArc(t *testing.T) {
	c := geom.Pt(100, 100)
	tests := []struct {
		name string
		pa   float64
		want []geom.Point
	}{
		{"start", 0, []geom.Point{{X: 110, Y: 100}, {X: 110, Y: 100}}},
		{"first corner", 1, []geom.Point{{X: 110, Y: 100}, {X: 110, Y: 90}, {X: 110, Y: 90}}},
		{"half way", 4, []geom.Point{
			{X: 110, Y: 100}, {X: 110, Y: 90}, {X: 100, Y: 90}, {X: 90, Y: 90}, {X: 90, Y: 100}, {X: 90, Y: 100},
		}},
		{"mid octant", 6.5, []geom.Point{
			{X: 110, Y: 100}, {X: 110, Y: 90}, {X: 100, Y: 90}, {X: 90, Y: 90}, {X: 90, Y: 100},
			{X: 90, Y: 110}, {X: 100, Y: 110}, {X: 105, Y: 110},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pseudoangle.Arc(c, 10, tt.pa)
			if len(got) != len(tt.want) {
				t.Fatalf("Arc = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i].Dist(tt.want[i]) > 1e-9 {
					t.Errorf("point %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPointerDrivesAngle(t *testing.T) {
	var sk *pseudoangle.Sketch
	reg := sketch.NewRegistry()
	reg.Register("pseudoangle", func() sketch.Sketch {
		sk = pseudoangle.New()
		return sk
	})
	v := viewer.New(reg, render.NewRecorder(), viewer.Options{Width: 200, Height: 200})
	inst, err := v.Mount("pseudoangle")
	if err != nil {
		t.Fatal(err)
	}
	// straight above the centre
	if err := v.Pointer(inst, sketch.EventPointerMove, 100, 20); err != nil {
		t.Fatal(err)
	}
	if got := sk.Angle(); got != 2 {
		t.Errorf("Angle() = %v, want 2", got)
	}

	v.Tick(16 * time.Millisecond)
	var label string
	for _, c := range v.Frame() {
		if c.Op == "text" && c.Font != nil && c.Font.Size == 14 {
			label = c.Text
		}
	}
	if label != "2.00" {
		t.Errorf("label = %q", label)
	}

	v.Unmount()
	if v.Listeners() != 0 || v.Pending() != 0 {
		t.Errorf("leaked %d listeners, %d pending", v.Listeners(), v.Pending())
	}
}
