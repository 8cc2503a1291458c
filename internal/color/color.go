package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Patterns recognized by Parse, in the order they are tried.
var (
	rgbPattern  = regexp.MustCompile(`^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	rgbaPattern = regexp.MustCompile(`^rgba\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*,\s*(-?\d*\.?\d+)\s*\)$`)
	hexPattern  = regexp.MustCompile(`^#([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})$`)
	hexaPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})$`)
)

// Color is an RGBA color value.
//
// Red, green and blue are 0-255; alpha is 0.0 (transparent) to 1.0 (opaque).
// The zero value is transparent black.
type Color struct {
	r, g, b int
	a       float64
}

// Black and White are the fixed opaque extremes. They are values: callers
// that take their address and mutate them only change their own copy.
var (
	Black = New(0, 0, 0, 1.0)
	White = New(255, 255, 255, 1.0)
)

// New builds a Color from raw channels without validating them.
//
// Out-of-range values are stored as given (New(300, 0, 0, 1) reports R() ==
// 300). Use Parse or the setters when the input is not trusted.
func New(r, g, b int, a float64) Color {
	return Color{r: r, g: g, b: b, a: a}
}

// RGB is New with alpha fixed at 1.0.
func RGB(r, g, b int) Color {
	return New(r, g, b, 1.0)
}

// Parse converts a textual color into a Color.
//
// Parameters:
//   - s: one of rgb(r,g,b), rgba(r,g,b,a), #RRGGBB or #RRGGBBAA.
//
// Returns:
//   - Color: the parsed color; alpha is clamped into 0.0-1.0.
//   - error: wraps ErrInvalidFormat when s matches none of the shapes, or
//     ErrInvalidRed/ErrInvalidGreen/ErrInvalidBlue/ErrInvalidAlpha when a
//     channel token cannot be read as a number in its range.
//
// # Hex Alpha
//
// The alpha byte of #RRGGBBAA is divided by 256 (not 255) and rounded to two
// decimals, so "ff" reads as 1.0 and "80" as 0.5.
func Parse(s string) (Color, error) {
	var (
		r, g, b int
		a       = 1.0
		err     error
	)

	switch {
	case rgbPattern.MatchString(s):
		m := rgbPattern.FindStringSubmatch(s)
		if r, g, b, err = decimalChannels(m[1], m[2], m[3]); err != nil {
			return Color{}, err
		}
	case rgbaPattern.MatchString(s):
		m := rgbaPattern.FindStringSubmatch(s)
		if r, g, b, err = decimalChannels(m[1], m[2], m[3]); err != nil {
			return Color{}, err
		}
		a, err = strconv.ParseFloat(m[4], 64)
		if err != nil || math.IsNaN(a) {
			return Color{}, fmt.Errorf("color: %w {%s}", ErrInvalidAlpha, m[4])
		}
	case hexPattern.MatchString(s):
		m := hexPattern.FindStringSubmatch(s)
		r, g, b = hexByte(m[1]), hexByte(m[2]), hexByte(m[3])
	case hexaPattern.MatchString(s):
		m := hexaPattern.FindStringSubmatch(s)
		r, g, b = hexByte(m[1]), hexByte(m[2]), hexByte(m[3])
		a = math.Round(float64(hexByte(m[4]))/256*100) / 100
	default:
		return Color{}, fmt.Errorf("color: parse %q: %w", s, ErrInvalidFormat)
	}

	// Clamping only happens here; New and Set store alpha as given.
	if a > 1.0 {
		a = 1.0
	}
	if a < 0.0 {
		a = 0.0
	}

	return New(r, g, b, a), nil
}

// MustParse is like Parse but panics on error. It is meant for package-level
// color literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func decimalChannels(rs, gs, bs string) (r, g, b int, err error) {
	if r, err = decimalChannel(rs, ErrInvalidRed); err != nil {
		return 0, 0, 0, err
	}
	if g, err = decimalChannel(gs, ErrInvalidGreen); err != nil {
		return 0, 0, 0, err
	}
	if b, err = decimalChannel(bs, ErrInvalidBlue); err != nil {
		return 0, 0, 0, err
	}
	return r, g, b, nil
}

func decimalChannel(tok string, sentinel error) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil || !inByteRange(v) {
		return 0, fmt.Errorf("color: %w {%s}", sentinel, tok)
	}
	return v, nil
}

// hexByte decodes two hex digits already vetted by the patterns.
func hexByte(tok string) int {
	v, _ := strconv.ParseUint(tok, 16, 8)
	return int(v)
}

func inByteRange(v int) bool {
	return v >= 0 && v <= 255
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}

// R returns the red channel.
func (c Color) R() int { return c.r }

// G returns the green channel.
func (c Color) G() int { return c.g }

// B returns the blue channel.
func (c Color) B() int { return c.b }

// A returns the alpha channel.
func (c Color) A() float64 { return c.a }

// SetR sets the red channel. Values outside 0-255 are rejected and the color
// is left unchanged.
func (c *Color) SetR(v int) error {
	if !inByteRange(v) {
		return fmt.Errorf("color: %w {%d}", ErrInvalidRed, v)
	}
	c.r = v
	return nil
}

// SetG sets the green channel. Values outside 0-255 are rejected and the
// color is left unchanged.
func (c *Color) SetG(v int) error {
	if !inByteRange(v) {
		return fmt.Errorf("color: %w {%d}", ErrInvalidGreen, v)
	}
	c.g = v
	return nil
}

// SetB sets the blue channel. Values outside 0-255 are rejected and the color
// is left unchanged.
func (c *Color) SetB(v int) error {
	if !inByteRange(v) {
		return fmt.Errorf("color: %w {%d}", ErrInvalidBlue, v)
	}
	c.b = v
	return nil
}

// SetA sets the alpha channel. Values outside 0.0-1.0 (and NaN) are rejected
// and the color is left unchanged.
func (c *Color) SetA(v float64) error {
	if !inUnitRange(v) {
		return fmt.Errorf("color: %w {%v}", ErrInvalidAlpha, v)
	}
	c.a = v
	return nil
}

// Channels is a partial channel update for Set. Nil fields are left alone.
type Channels struct {
	R *int     `json:"r,omitempty"`
	G *int     `json:"g,omitempty"`
	B *int     `json:"b,omitempty"`
	A *float64 `json:"a,omitempty"`
}

// Set overwrites every channel present in ch and returns c for chaining.
//
// Set writes the stored channels directly and does NOT range-check them:
// Set(Channels{R: &v}) with v == 300 succeeds. A NaN alpha counts as absent.
// Use the individual setters for validated writes.
func (c *Color) Set(ch Channels) *Color {
	if ch.R != nil {
		c.r = *ch.R
	}
	if ch.G != nil {
		c.g = *ch.G
	}
	if ch.B != nil {
		c.b = *ch.B
	}
	if ch.A != nil && !math.IsNaN(*ch.A) {
		c.a = *ch.A
	}
	return c
}

// Copy returns an independent color with the same channels.
func (c Color) Copy() Color {
	return New(c.r, c.g, c.b, c.a)
}

// AdjustAlpha adds offset to alpha in place and returns c for chaining.
// The result is neither clamped nor validated.
func (c *Color) AdjustAlpha(offset float64) *Color {
	c.a += offset
	return c
}

// Equal reports whether both colors hold exactly the same channels.
func (c Color) Equal(o Color) bool {
	return c.r == o.r && c.g == o.g && c.b == o.b && c.a == o.a
}

// ToRGB formats the color as "rgb( r, g, b )".
func (c Color) ToRGB() string {
	return fmt.Sprintf("rgb( %d, %d, %d )", c.r, c.g, c.b)
}

// ToRGBA formats the color as "rgba( r, g, b, a )". Alpha uses the shortest
// decimal form that reads back to the same float (1 prints as "1").
func (c Color) ToRGBA() string {
	return fmt.Sprintf("rgba( %d, %d, %d, %s )", c.r, c.g, c.b, formatAlpha(c.a))
}

// ToHex formats the color as "#rrggbb" in lowercase.
func (c Color) ToHex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// ToHexAlpha formats the color as "#rrggbbaa".
//
// The alpha byte is alpha * 256 rounded to the nearest integer and capped to
// 0-255, mirroring the /256 used by Parse. The round trip is not exact for
// every byte value.
func (c Color) ToHexAlpha() string {
	v := math.Round(c.a * 256)
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	return c.ToHex() + fmt.Sprintf("%02x", int(v))
}

// String implements fmt.Stringer using ToRGBA.
func (c Color) String() string {
	return c.ToRGBA()
}

// MarshalText implements encoding.TextMarshaler using ToRGBA.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.ToRGBA()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse. Surrounding
// whitespace is trimmed first.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}
