package main

import (
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/cequella/portfolio/backend-go/internal/render"
	"github.com/cequella/portfolio/backend-go/internal/sketch"
	"github.com/cequella/portfolio/backend-go/internal/viewer"
)

const upperHalf = '▀'

type terminal struct {
	screen   tcell.Screen
	raster   *render.Raster
	view     *viewer.Viewer
	interval time.Duration

	leftDown bool
	lastX    int
	lastY    int
}

// pixelSize is the raster size backing a cols x rows screen.
func pixelSize(cols, rows int) (int, int) {
	return cols, rows * 2
}

// cellCenter maps a cell to the pixel coordinates of its centre.
func cellCenter(col, row int) (float64, float64) {
	return float64(col) + 0.5, float64(row*2) + 1
}

func (t *terminal) run() {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				t.screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	last := time.Now()
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			cols, rows := ev.Size()
			t.view.Resize(pixelSize(cols, rows))
			t.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				t.view.Unmount()
				return
			}
		case *tcell.EventMouse:
			t.handleMouse(ev)
		case *tcell.EventInterrupt:
			now := time.Now()
			t.view.Tick(now.Sub(last))
			last = now
			t.draw()
		case nil:
			// Screen finalized
			return
		}
	}
}

func (t *terminal) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x, y := cellCenter(col, row)
	inst := t.view.Instance()
	down := ev.Buttons()&tcell.Button1 != 0

	if col != t.lastX || row != t.lastY {
		t.lastX, t.lastY = col, row
		t.view.Pointer(inst, sketch.EventPointerMove, x, y)
	}
	switch {
	case down && !t.leftDown:
		t.leftDown = true
		t.view.Pointer(inst, sketch.EventPointerDown, x, y)
	case !down && t.leftDown:
		t.leftDown = false
		t.view.Pointer(inst, sketch.EventPointerUp, x, y)
		t.view.Pointer(inst, sketch.EventClick, x, y)
	}
}

func (t *terminal) draw() {
	img := t.raster.Image()
	cols, rows := t.screen.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			t.screen.SetContent(col, row, upperHalf, nil, cellStyle(img, col, row))
		}
	}
	if t.view.Cursor() == sketch.CursorPointer {
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
		t.screen.ShowCursor(t.lastX, t.lastY)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
}

// cellStyle paints the upper pixel as foreground and the lower one as
// background.
func cellStyle(img image.Image, col, row int) tcell.Style {
	return tcell.StyleDefault.
		Foreground(pixelColor(img, col, row*2)).
		Background(pixelColor(img, col, row*2+1))
}

func pixelColor(img image.Image, x, y int) tcell.Color {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return tcell.ColorBlack
	}
	r, g, b, _ := img.At(x, y).RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
