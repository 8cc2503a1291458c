package color

import "math"

// WCAG 2 contrast thresholds for normal-size text.
const (
	ContrastAA  = 4.5
	ContrastAAA = 7.0
)

// Comparison describes how far apart two colors are.
type Comparison struct {
	ContrastRatio float64 `json:"contrast_ratio"` // WCAG ratio, 1 to 21
	DeltaE        float64 `json:"delta_e"`        // CIEDE2000 distance, 0 = identical
	PassesAA      bool    `json:"passes_aa"`
	PassesAAA     bool    `json:"passes_aaa"`
}

// Luminance returns the WCAG relative luminance of the color's RGB channels.
// Alpha is ignored.
func (c Color) Luminance() float64 {
	r, g, b := c.colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Compare measures the contrast and perceptual distance between a and b.
// Both values are rounded to two decimals.
func Compare(a, b Color) Comparison {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	ratio := round2((la + 0.05) / (lb + 0.05))

	return Comparison{
		ContrastRatio: ratio,
		DeltaE:        round2(a.colorful().DistanceCIEDE2000(b.colorful()) * 100),
		PassesAA:      ratio >= ContrastAA,
		PassesAAA:     ratio >= ContrastAAA,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
