package color

import (
	stdcolor "image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
//
// Unlike the 8-bit channels of Color, HSL components are kept as floats so a
// round trip through HSL only rounds once, on the way back to RGB:
//   - H: 0-360 degrees (0=red, 120=green, 240=blue)
//   - S: 0-1 (0=gray, 1=vivid)
//   - L: 0-1 (0=black, 0.5=normal, 1=white)
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// HSL converts the color's RGB channels to HSL. Alpha is ignored; channels
// outside 0-255 are clamped first.
func (c Color) HSL() HSL {
	h, s, l := c.colorful().Hsl()
	return HSL{H: h, S: s, L: l}
}

// FromHSL converts an HSL value back to a Color with the given alpha.
//
// Each channel is rounded to the nearest 8-bit value, the same rounding
// go-colorful applies when formatting hex.
func FromHSL(v HSL, a float64) Color {
	r, g, b := colorful.Hsl(v.H, v.S, v.L).Clamped().RGB255()
	return New(int(r), int(g), int(b), a)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(clampByte(c.r)) / 255.0,
		G: float64(clampByte(c.g)) / 255.0,
		B: float64(clampByte(c.b)) / 255.0,
	}
}

// RGBA implements image/color.Color so a Color can be drawn directly.
//
// The stored channels are clamped into range for this view only; alpha is
// scaled to 0-255 and the result is alpha-premultiplied as the interface
// requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns the color as a non-premultiplied 8-bit standard color.
func (c Color) NRGBA() stdcolor.NRGBA {
	a := c.a
	if math.IsNaN(a) || a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return stdcolor.NRGBA{
		R: uint8(clampByte(c.r)),
		G: uint8(clampByte(c.g)),
		B: uint8(clampByte(c.b)),
		A: uint8(math.Round(a * 255)),
	}
}

// FromStd converts any image/color.Color into a Color. Alpha is the 8-bit
// alpha divided by 255.
func FromStd(sc stdcolor.Color) Color {
	n := stdcolor.NRGBAModel.Convert(sc).(stdcolor.NRGBA)
	return New(int(n.R), int(n.G), int(n.B), float64(n.A)/255.0)
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
