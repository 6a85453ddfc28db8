// Package render implements sketch.Canvas twice: a Recorder that turns
// drawing calls into JSON draw commands for a browser Canvas2D, and a
// Raster that paints into an in-memory image.
package render

import (
	"encoding/json"

	"github.com/cequella/portfolio/backend-go/internal/geom"
	"github.com/cequella/portfolio/backend-go/internal/sketch"
)

// PathCommand is a single path segment.
// Format matches Canvas2D: ["M", x, y], ["L", x, y], ["A", x, y, r, start, end], ["Z"].
type PathCommand []interface{}

// DrawCommand represents a single drawing operation for the frontend to execute.
// The frontend receives a list of these and executes them on a Canvas2D context.
type DrawCommand struct {
	Op          string        `json:"op"`                    // "path" or "text"
	Transform   []float64     `json:"transform,omitempty"`   // [a, b, c, d, e, f], omitted for identity
	Path        []PathCommand `json:"path,omitempty"`        // Path data for "path" ops
	Fill        string        `json:"fill,omitempty"`        // Fill colour
	Stroke      string        `json:"stroke,omitempty"`      // Stroke colour
	StrokeWidth float64       `json:"strokeWidth,omitempty"` // Stroke width
	Dash        []float64     `json:"dash,omitempty"`        // Line dash pattern
	ShadowBlur  float64       `json:"shadowBlur,omitempty"`
	ShadowColor string        `json:"shadowColor,omitempty"`
	Text        string        `json:"text,omitempty"`
	X           float64       `json:"x"`
	Y           float64       `json:"y"`
	Font        *sketch.Font  `json:"font,omitempty"`
	Align       string        `json:"align,omitempty"`
	Baseline    string        `json:"baseline,omitempty"`
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	if commands == nil {
		return "[]", nil
	}
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}

type style struct {
	fill        string
	stroke      string
	lineWidth   float64
	dash        []float64
	shadowBlur  float64
	shadowColor string
	font        sketch.Font
	align       sketch.TextAlign
	baseline    sketch.TextBaseline
	matrix      geom.Matrix2D
}

func defaultStyle() style {
	return style{
		fill:      "#000000",
		stroke:    "#000000",
		lineWidth: 1,
		font:      sketch.Font{Size: 10},
		align:     sketch.AlignLeft,
		baseline:  sketch.BaselineAlphabetic,
		matrix:    geom.Identity(),
	}
}

// Recorder is a sketch.Canvas that records draw commands in painter's
// order. Every command carries the full style it needs, so the frontend
// can replay a batch without tracking state between batches.
type Recorder struct {
	st    style
	stack []style
	path  []PathCommand
	out   []DrawCommand
}

var _ sketch.Canvas = (*Recorder)(nil)

// NewRecorder returns a recorder with Canvas2D default state.
func NewRecorder() *Recorder {
	return &Recorder{st: defaultStyle()}
}

// Flush returns the commands recorded since the previous Flush.
func (r *Recorder) Flush() []DrawCommand {
	out := r.out
	r.out = nil
	return out
}

// Len reports how many commands are waiting to be flushed.
func (r *Recorder) Len() int {
	return len(r.out)
}

func (r *Recorder) SetFillStyle(color string)   { r.st.fill = color }
func (r *Recorder) SetStrokeStyle(color string) { r.st.stroke = color }
func (r *Recorder) SetLineWidth(w float64)      { r.st.lineWidth = w }
func (r *Recorder) SetFont(f sketch.Font)       { r.st.font = f }

func (r *Recorder) SetLineDash(pattern ...float64) {
	r.st.dash = append([]float64(nil), pattern...)
}

func (r *Recorder) SetShadow(blur float64, color string) {
	r.st.shadowBlur = blur
	r.st.shadowColor = color
}

func (r *Recorder) SetTextAlign(a sketch.TextAlign, b sketch.TextBaseline) {
	r.st.align = a
	r.st.baseline = b
}

func (r *Recorder) BeginPath() {
	r.path = nil
}

func (r *Recorder) MoveTo(x, y float64) {
	r.path = append(r.path, PathCommand{"M", x, y})
}

func (r *Recorder) LineTo(x, y float64) {
	r.path = append(r.path, PathCommand{"L", x, y})
}

func (r *Recorder) Arc(x, y, radius, start, end float64) {
	r.path = append(r.path, PathCommand{"A", x, y, radius, start, end})
}

func (r *Recorder) ClosePath() {
	r.path = append(r.path, PathCommand{"Z"})
}

func (r *Recorder) Fill() {
	if len(r.path) == 0 {
		return
	}
	cmd := r.pathCommand(r.path)
	cmd.Fill = r.st.fill
	r.out = append(r.out, cmd)
}

func (r *Recorder) Stroke() {
	if len(r.path) == 0 {
		return
	}
	cmd := r.pathCommand(r.path)
	cmd.Stroke = r.st.stroke
	cmd.StrokeWidth = r.st.lineWidth
	cmd.Dash = r.st.dash
	r.out = append(r.out, cmd)
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	cmd := r.pathCommand(rectPath(x, y, w, h))
	cmd.Fill = r.st.fill
	r.out = append(r.out, cmd)
}

func (r *Recorder) StrokeRect(x, y, w, h float64) {
	cmd := r.pathCommand(rectPath(x, y, w, h))
	cmd.Stroke = r.st.stroke
	cmd.StrokeWidth = r.st.lineWidth
	cmd.Dash = r.st.dash
	r.out = append(r.out, cmd)
}

func (r *Recorder) FillText(s string, x, y float64) {
	font := r.st.font
	cmd := DrawCommand{
		Op:          "text",
		Transform:   r.transform(),
		Fill:        r.st.fill,
		ShadowBlur:  r.st.shadowBlur,
		ShadowColor: r.shadowColor(),
		Text:        s,
		X:           x,
		Y:           y,
		Font:        &font,
		Align:       string(r.st.align),
		Baseline:    string(r.st.baseline),
	}
	r.out = append(r.out, cmd)
}

func (r *Recorder) Save() {
	saved := r.st
	saved.dash = append([]float64(nil), r.st.dash...)
	r.stack = append(r.stack, saved)
}

func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.st = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Translate(x, y float64) {
	r.st.matrix = r.st.matrix.Multiply(geom.Translate(x, y))
}

func (r *Recorder) Rotate(radians float64) {
	r.st.matrix = r.st.matrix.Multiply(geom.Rotate(radians))
}

func (r *Recorder) pathCommand(path []PathCommand) DrawCommand {
	p := make([]PathCommand, len(path))
	copy(p, path)
	return DrawCommand{
		Op:          "path",
		Transform:   r.transform(),
		Path:        p,
		ShadowBlur:  r.st.shadowBlur,
		ShadowColor: r.shadowColor(),
	}
}

func (r *Recorder) transform() []float64 {
	if r.st.matrix.IsIdentity() {
		return nil
	}
	return r.st.matrix.ToSlice()
}

func (r *Recorder) shadowColor() string {
	if r.st.shadowBlur == 0 {
		return ""
	}
	return r.st.shadowColor
}

// rectPath generates path commands for a rectangle.
func rectPath(x, y, w, h float64) []PathCommand {
	return []PathCommand{
		{"M", x, y},
		{"L", x + w, y},
		{"L", x + w, y + h},
		{"L", x, y + h},
		{"Z"},
	}
}
