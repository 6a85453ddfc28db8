package main

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestPixelSize(t *testing.T) {
	w, h := pixelSize(80, 24)
	if w != 80 || h != 48 {
		t.Errorf("pixelSize = %dx%d", w, h)
	}
	x, y := cellCenter(3, 2)
	if x != 3.5 || y != 5 {
		t.Errorf("cellCenter = %v,%v", x, y)
	}
}

func TestCellStyle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.Set(1, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 1, color.RGBA{B: 255, A: 255})

	fg, bg, _ := cellStyle(img, 1, 0).Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("cell (1,0) fg=%v bg=%v", fg, bg)
	}

	// Odd pixel height leaves the last cell's lower half outside the image.
	_, bg, _ = cellStyle(img, 0, 1).Decompose()
	if bg != tcell.ColorBlack {
		t.Errorf("out of bounds bg = %v", bg)
	}
}
