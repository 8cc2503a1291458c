package color

// Formats contains one color in every textual representation this package
// produces, plus its HSL form. It is the shape tool results are returned in.
type Formats struct {
	RGB  string  `json:"rgb"`  // "rgb( r, g, b )"
	RGBA string  `json:"rgba"` // "rgba( r, g, b, a )"
	Hex  string  `json:"hex"`  // "#rrggbb"
	HexA string  `json:"hexa"` // "#rrggbbaa"
	HSL  HSL     `json:"hsl"`
	R    int     `json:"r"`
	G    int     `json:"g"`
	B    int     `json:"b"`
	A    float64 `json:"a"`
}

// Formats returns the color in every supported representation.
func (c Color) Formats() Formats {
	return Formats{
		RGB:  c.ToRGB(),
		RGBA: c.ToRGBA(),
		Hex:  c.ToHex(),
		HexA: c.ToHexAlpha(),
		HSL:  c.HSL(),
		R:    c.r,
		G:    c.g,
		B:    c.b,
		A:    c.a,
	}
}
