package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/palette"
)

// SampleResult contains the color at one pixel in every textual format.
type SampleResult struct {
	X     int           `json:"x"`               // X coordinate that was sampled
	Y     int           `json:"y"`               // Y coordinate that was sampled
	Label string        `json:"label,omitempty"` // Optional label (empty if not provided)
	Color color.Formats `json:"color"`           // The color at this location
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - color.Color: The pixel as a non-premultiplied color. Alpha is the 8-bit
//     pixel alpha divided by 255.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// # Coordinate System
//
// Coordinates are 0-based with origin at top-left:
//   - Valid X range: 0 to width-1
//   - Valid Y range: 0 to height-1
func SampleColor(img image.Image, x, y int) (color.Color, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return color.Color{}, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	return color.FromStd(img.At(x, y)), nil
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// SampleColorsMulti extracts colors at multiple pixel coordinates in a single call.
//
// Results are returned in the same order as the input points. If any point is
// outside the image no partial results are returned.
func SampleColorsMulti(img image.Image, points []LabeledPoint) ([]SampleResult, error) {
	results := make([]SampleResult, 0, len(points))

	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, SampleResult{
			X:     p.X,
			Y:     p.Y,
			Label: p.Label,
			Color: c.Formats(),
		})
	}

	return results, nil
}

// Region represents a rectangular region within an image.
//
// (X1, Y1) is the top-left corner (inclusive) and (X2, Y2) the bottom-right
// corner (exclusive).
type Region struct {
	X1 int // Left edge X coordinate (inclusive)
	Y1 int // Top edge Y coordinate (inclusive)
	X2 int // Right edge X coordinate (exclusive)
	Y2 int // Bottom edge Y coordinate (exclusive)
}

// Rect converts the region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// ColorFrequency represents a quantized color and how much of the image it covers.
type ColorFrequency struct {
	Hex        string           `json:"hex"`             // "#rrggbb" (quantized)
	Percentage float64          `json:"percentage"`      // Percentage of pixels (0-100)
	Color      color.Formats    `json:"color"`           // Quantized color in every format
	Scale      []palette.Swatch `json:"scale,omitempty"` // Tones derived from Hex, when requested
}

// DominantColors extracts the N most common colors from an image or region.
//
// Parameters:
//   - img: The source image to analyze.
//   - count: Maximum number of colors to return.
//   - region: Optional region to analyze; nil analyzes the whole image. The
//     region is intersected with the image bounds.
//
// Returns:
//   - []ColorFrequency: Colors sorted by frequency (descending). Ties are
//     broken by hex string so the order is deterministic.
//   - error: Non-nil if count is not positive or the region is empty.
//
// # Color Quantization
//
// Each 8-bit channel is rounded down to a multiple of 16 before counting, so
// #f0f0f0 and #fafafa fall in the same bucket. Alpha is ignored.
func DominantColors(img image.Image, count int, region *Region) ([]ColorFrequency, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	bounds, err := regionBounds(img, region)
	if err != nil {
		return nil, err
	}

	counts := make(map[color.Color]int)
	totalPixels := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.FromStd(img.At(x, y))
			key := color.RGB(c.R()/16*16, c.G()/16*16, c.B()/16*16)
			counts[key]++
			totalPixels++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        c.ToHex(),
			Percentage: float64(n) / float64(totalPixels) * 100,
			Color:      c.Formats(),
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return colors, nil
}

// WithScales fills in the derived palette scale of every color in place.
func WithScales(colors []ColorFrequency) error {
	for i := range colors {
		s, err := palette.New(colors[i].Hex)
		if err != nil {
			return err
		}
		tones, err := s.Tones()
		if err != nil {
			return err
		}
		colors[i].Scale = tones
	}
	return nil
}
