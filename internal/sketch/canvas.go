package sketch

// TextAlign is the horizontal anchor of FillText.
type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
)

// TextBaseline is the vertical anchor of FillText.
type TextBaseline string

const (
	BaselineAlphabetic TextBaseline = "alphabetic"
	BaselineMiddle     TextBaseline = "middle"
)

// Font selects the text face.
type Font struct {
	Size      float64 `json:"size"`
	Bold      bool    `json:"bold,omitempty"`
	Monospace bool    `json:"monospace,omitempty"`
}

// Canvas is the immediate-mode 2D vocabulary sketches draw with. Colours
// are CSS strings ("#rrggbb", "#rrggbbaa", "rgba(...)", "hsla(...)").
//
// Style setters persist until changed, like Canvas2D. Fill and Stroke use
// the current path without clearing it; BeginPath starts a new one.
type Canvas interface {
	SetFillStyle(color string)
	SetStrokeStyle(color string)
	SetLineWidth(w float64)
	SetLineDash(pattern ...float64)
	SetShadow(blur float64, color string)
	SetFont(f Font)
	SetTextAlign(a TextAlign, b TextBaseline)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, r, start, end float64)
	ClosePath()
	Fill()
	Stroke()

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	FillText(s string, x, y float64)

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(radians float64)
}
