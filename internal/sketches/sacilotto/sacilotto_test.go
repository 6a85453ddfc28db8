package sacilotto_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/cequella/portfolio/backend-go/internal/render"
	"github.com/cequella/portfolio/backend-go/internal/sketch"
	"github.com/cequella/portfolio/backend-go/internal/sketches/sacilotto"
	"github.com/cequella/portfolio/backend-go/internal/viewer"
)

func TestComposeIsDeterministic(t *testing.T) {
	for _, seed := range []float64{0.1, 0.5, 0.987654} {
		a, b := sacilotto.Compose(seed), sacilotto.Compose(seed)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Compose(%v) differs between calls", seed)
		}
	}
}

func TestComposeRanges(t *testing.T) {
	for i := range 200 {
		c := sacilotto.Compose(float64(i) / 200)
		if c.Palette < 0 || c.Palette >= len(sacilotto.Palettes) {
			t.Fatalf("palette %d", c.Palette)
		}
		if c.Cols < 2 || c.Cols > 4 {
			t.Fatalf("cols %d", c.Cols)
		}
		if len(c.Cells) != c.Cols*c.Cols {
			t.Fatalf("%d cells for %d cols", len(c.Cells), c.Cols)
		}
		for _, cell := range c.Cells {
			if cell.Kind < sacilotto.CellTriangle || cell.Kind > sacilotto.CellTriangleDot || cell.Turns < 0 || cell.Turns > 3 {
				t.Fatalf("bad cell %+v", cell)
			}
		}
	}
}

func TestClickRedrawsWithNewSeed(t *testing.T) {
	seeds := []float64{0.25, 0.75}
	next := func() float64 {
		s := seeds[0]
		seeds = seeds[1:]
		return s
	}
	var sk *sacilotto.Sketch
	reg := sketch.NewRegistry()
	reg.Register("sacilotto-gen", func() sketch.Sketch {
		sk = sacilotto.NewWithSeeds(next)
		return sk
	})
	v := viewer.New(reg, render.NewRecorder(), viewer.Options{Width: 300, Height: 300})
	inst, err := v.Mount("sacilotto-gen")
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Frame()) == 0 {
		t.Fatal("setup did not draw")
	}
	// no render loop: time passing draws nothing
	v.Tick(time.Second)
	if n := len(v.Frame()); n != 0 {
		t.Errorf("%d commands without input", n)
	}

	if err := v.Pointer(inst, sketch.EventClick, 10, 10); err != nil {
		t.Fatal(err)
	}
	if sk.Seed() != 0.75 {
		t.Errorf("seed = %v", sk.Seed())
	}
	if len(v.Frame()) == 0 {
		t.Error("click did not redraw")
	}

	v.Resize(200, 100)
	if len(v.Frame()) == 0 {
		t.Error("resize did not redraw")
	}

	v.Unmount()
	if v.Listeners() != 0 {
		t.Errorf("Listeners() = %d", v.Listeners())
	}
}
