package render

import (
	"image"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/cequella/portfolio/backend-go/internal/sketch"
)

type fontSet struct {
	regular, bold, mono, monoBold *text.FontSource
}

var (
	fontsOnce sync.Once
	fonts     fontSet
	fontsErr  error
)

func loadFonts() (fontSet, error) {
	fontsOnce.Do(func() {
		load := func(data []byte) *text.FontSource {
			if fontsErr != nil {
				return nil
			}
			src, err := text.NewFontSource(data)
			if err != nil {
				fontsErr = err
			}
			return src
		}
		fonts = fontSet{
			regular:  load(goregular.TTF),
			bold:     load(gobold.TTF),
			mono:     load(gomono.TTF),
			monoBold: load(gomonobold.TTF),
		}
		if fontsErr != nil {
			slog.Warn("raster fonts unavailable, text will not be drawn", "error", fontsErr)
		}
	})
	return fonts, fontsErr
}

type rasterStyle struct {
	fill        gg.RGBA
	stroke      gg.RGBA
	lineWidth   float64
	dash        []float64
	shadowBlur  float64
	shadowColor gg.RGBA
	font        sketch.Font
	align       sketch.TextAlign
	baseline    sketch.TextBaseline
}

// Raster is a sketch.Canvas that paints into a gg.Context.
//
// Paths follow Canvas2D: Fill and Stroke keep the current path and only
// BeginPath clears it. FillRect and StrokeRect draw through the same path
// buffer, so they end the current path. Shadows are approximated by a
// translucent halo around filled shapes. Text is positioned through the
// current transform but not rotated.
type Raster struct {
	dc    *gg.Context
	st    rasterStyle
	stack []rasterStyle
	faces map[sketch.Font]text.Face
	err   error
}

var _ sketch.Canvas = (*Raster)(nil)

// NewRaster allocates a width x height canvas.
func NewRaster(width, height int) *Raster {
	black := gg.RGBA{A: 1}
	return &Raster{
		dc: gg.NewContext(width, height),
		st: rasterStyle{
			fill:      black,
			stroke:    black,
			lineWidth: 1,
			font:      sketch.Font{Size: 10},
			align:     sketch.AlignLeft,
			baseline:  sketch.BaselineAlphabetic,
		},
		faces: make(map[sketch.Font]text.Face),
	}
}

// Resize reallocates the backing image. Its content is cleared.
func (r *Raster) Resize(width, height int) error {
	return r.dc.Resize(width, height)
}

// Size returns the pixel dimensions.
func (r *Raster) Size() (int, int) {
	return r.dc.Width(), r.dc.Height()
}

// Image returns the current pixels.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the current pixels as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// Err returns the first error reported by the rasteriser, if any.
func (r *Raster) Err() error {
	return r.err
}

// Close releases the context.
func (r *Raster) Close() error {
	return r.dc.Close()
}

func (r *Raster) SetFillStyle(color string)   { r.st.fill = r.color(color) }
func (r *Raster) SetStrokeStyle(color string) { r.st.stroke = r.color(color) }
func (r *Raster) SetLineWidth(w float64)      { r.st.lineWidth = w }
func (r *Raster) SetFont(f sketch.Font)       { r.st.font = f }

func (r *Raster) SetLineDash(pattern ...float64) {
	r.st.dash = append([]float64(nil), pattern...)
}

func (r *Raster) SetShadow(blur float64, color string) {
	r.st.shadowBlur = blur
	r.st.shadowColor = r.color(color)
}

func (r *Raster) SetTextAlign(a sketch.TextAlign, b sketch.TextBaseline) {
	r.st.align = a
	r.st.baseline = b
}

func (r *Raster) BeginPath()          { r.dc.ClearPath() }
func (r *Raster) MoveTo(x, y float64) { r.dc.MoveTo(x, y) }
func (r *Raster) LineTo(x, y float64) { r.dc.LineTo(x, y) }
func (r *Raster) ClosePath()          { r.dc.ClosePath() }

// Arc is flattened in user space so rotations in the current transform
// apply to it like to any other segment.
func (r *Raster) Arc(x, y, radius, start, end float64) {
	sweep := end - start
	if sweep >= 2*math.Pi {
		sweep = 2 * math.Pi
	} else if sweep < 0 {
		sweep = math.Mod(sweep, 2*math.Pi) + 2*math.Pi
	}
	n := int(math.Ceil(sweep * math.Max(radius, 1) / 4))
	if n < 8 {
		n = 8
	}

	_, _, hasPoint := r.dc.GetCurrentPoint()
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		px, py := x+radius*math.Cos(a), y+radius*math.Sin(a)
		if i == 0 && !hasPoint {
			r.dc.MoveTo(px, py)
			continue
		}
		r.dc.LineTo(px, py)
	}
}

func (r *Raster) Fill() {
	if r.st.shadowBlur > 0 && r.st.shadowColor.A > 0 {
		halo := r.st.shadowColor
		halo.A *= 0.35
		r.dc.ClearDash()
		r.dc.SetLineWidth(r.st.shadowBlur)
		r.setColor(halo)
		r.check(r.dc.StrokePreserve())
	}
	r.setColor(r.st.fill)
	r.check(r.dc.FillPreserve())
}

func (r *Raster) Stroke() {
	if len(r.st.dash) > 0 {
		r.dc.SetDash(r.st.dash...)
	} else {
		r.dc.ClearDash()
	}
	r.dc.SetLineWidth(r.st.lineWidth)
	r.setColor(r.st.stroke)
	r.check(r.dc.StrokePreserve())
}

func (r *Raster) FillRect(x, y, w, h float64) {
	r.dc.ClearPath()
	r.dc.DrawRectangle(x, y, w, h)
	r.setColor(r.st.fill)
	r.check(r.dc.Fill())
}

func (r *Raster) StrokeRect(x, y, w, h float64) {
	r.dc.ClearPath()
	r.dc.DrawRectangle(x, y, w, h)
	r.Stroke()
	r.dc.ClearPath()
}

func (r *Raster) FillText(s string, x, y float64) {
	face := r.face(r.st.font)
	if face == nil {
		return
	}
	r.dc.SetFont(face)
	r.setColor(r.st.fill)

	var ax, ay float64
	if r.st.align == sketch.AlignCenter {
		ax = 0.5
	}
	if r.st.baseline == sketch.BaselineMiddle {
		ay = 0.35
	}
	tx, ty := r.dc.TransformPoint(x, y)
	r.dc.DrawStringAnchored(s, tx, ty, ax, ay)
}

func (r *Raster) Save() {
	saved := r.st
	saved.dash = append([]float64(nil), r.st.dash...)
	r.stack = append(r.stack, saved)
	r.dc.Push()
}

func (r *Raster) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.st = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.dc.Pop()
}

func (r *Raster) Translate(x, y float64) { r.dc.Translate(x, y) }
func (r *Raster) Rotate(radians float64) { r.dc.Rotate(radians) }

func (r *Raster) setColor(c gg.RGBA) {
	r.dc.SetRGBA(c.R, c.G, c.B, c.A)
}

func (r *Raster) color(s string) gg.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		slog.Debug("raster colour ignored", "error", err)
		return gg.RGBA{}
	}
	return c
}

func (r *Raster) check(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

func (r *Raster) face(f sketch.Font) text.Face {
	if face, ok := r.faces[f]; ok {
		return face
	}
	set, err := loadFonts()
	if err != nil {
		return nil
	}
	src := set.regular
	switch {
	case f.Monospace && f.Bold:
		src = set.monoBold
	case f.Monospace:
		src = set.mono
	case f.Bold:
		src = set.bold
	}
	face := src.Face(f.Size)
	r.faces[f] = face
	return face
}
