package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrBadColor is returned for colour strings ParseColor does not understand.
var ErrBadColor = errors.New("unsupported colour")

// ParseColor converts the CSS colour forms sketches use into gg.RGBA:
// "#rgb", "#rrggbb", "#rrggbbaa", "rgb(r,g,b)", "rgba(r,g,b,a)" and
// "hsl(h,s%,l%)", "hsla(h,s%,l%,a)".
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case strings.HasPrefix(s, "#"):
		switch len(s) {
		case 4, 7, 9:
			return gg.Hex(s), nil
		}
	case strings.HasPrefix(s, "rgb"):
		args, err := funcArgs(s, "rgb")
		if err != nil {
			return gg.RGBA{}, err
		}
		return gg.RGBA{R: args[0] / 255, G: args[1] / 255, B: args[2] / 255, A: args[3]}, nil
	case strings.HasPrefix(s, "hsl"):
		args, err := funcArgs(s, "hsl")
		if err != nil {
			return gg.RGBA{}, err
		}
		c := colorful.Hsl(args[0], args[1]/100, args[2]/100).Clamped()
		return gg.RGBA{R: c.R, G: c.G, B: c.B, A: args[3]}, nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
}

// funcArgs parses "name(a, b, c)" or "namea(a, b, c, d)". Percent signs
// are dropped; alpha defaults to 1.
func funcArgs(s, name string) ([4]float64, error) {
	out := [4]float64{0, 0, 0, 1}
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return out, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	fn := s[:open]
	if fn != name && fn != name+"a" {
		return out, fmt.Errorf("%w: %q", ErrBadColor, s)
	}

	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) < 3 || len(parts) > 4 {
		return out, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(p), "%"), 64)
		if err != nil {
			return out, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
		}
		out[i] = v
	}
	return out, nil
}
