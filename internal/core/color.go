package core

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color is an opaque 24-bit RGB colour. Opacity is passed separately to the
// drawing calls that need it.
type Color struct {
	R, G, B uint8
}

// Palette used by the game renderer.
var (
	ColorSkyTop      = MustHex("#87CEEB")
	ColorSkyBottom   = MustHex("#98D8C8")
	ColorCloud       = MustHex("#FFFFFF")
	ColorPlayer      = MustHex("#4CAF50")
	ColorPlayerEye   = MustHex("#45A049")
	ColorPlayerFace  = MustHex("#333333")
	ColorObstacle    = MustHex("#E74C3C")
	ColorObstacleCap = MustHex("#C0392B")
	ColorText        = MustHex("#FFFFFF")
	ColorPanel       = MustHex("#222222")
	ColorBlack       = MustHex("#000000")
)

// Hex parses "#rrggbb", "rrggbb" or the short "#rgb" form.
func Hex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("core: invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid hex colour %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustHex is like Hex but panics on malformed input. Meant for literals.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HSL converts hue (degrees), saturation and lightness (both 0..1) to RGB.
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Color{R: channel(r + m), G: channel(g + m), B: channel(b + m)}
}

// Blend mixes src over c with the given opacity.
func (c Color) Blend(src Color, alpha float64) Color {
	alpha = ClampF(alpha, 0, 1)
	mix := func(a, b uint8) uint8 {
		return channel((float64(a)*(1-alpha) + float64(b)*alpha) / 255)
	}
	return Color{R: mix(c.R, src.R), G: mix(c.G, src.G), B: mix(c.B, src.B)}
}

// Lerp interpolates between c (t=0) and other (t=1).
func (c Color) Lerp(other Color, t float64) Color {
	return c.Blend(other, t)
}

// NRGBA returns the colour with the given opacity as an image/color value.
func (c Color) NRGBA(alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: channel(ClampF(alpha, 0, 1))}
}

// String returns the colour as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func channel(v float64) uint8 {
	return uint8(math.Round(ClampF(v, 0, 1) * 255))
}
