package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// pixelDiffThreshold is the mean per-channel difference above which two
// pixels count as different.
const pixelDiffThreshold = 10

// AreaNames lists the names accepted by NamedRegion.
var AreaNames = []string{
	"top-left", "top-right", "bottom-left", "bottom-right",
	"top-half", "bottom-half", "left-half", "right-half", "center",
}

// NamedRegion resolves a named area of bounds to a Region.
//
// Quadrants and halves split at the integer midpoint, so with odd dimensions
// the right and bottom parts are one pixel larger. "center" is the middle 50%.
func NamedRegion(bounds image.Rectangle, name string) (Region, error) {
	w, h := bounds.Dx(), bounds.Dy()
	midX, midY := w/2, h/2

	var x1, y1, x2, y2 int
	switch name {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		qW, qH := w/4, h/4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return Region{}, fmt.Errorf("unknown area: %s", name)
	}

	min := bounds.Min
	return Region{X1: min.X + x1, Y1: min.Y + y1, X2: min.X + x2, Y2: min.Y + y2}, nil
}

// regionBounds intersects region with the image bounds and rejects empty
// results. A nil region means the whole image.
func regionBounds(img image.Image, region *Region) (image.Rectangle, error) {
	bounds := img.Bounds()
	if region != nil {
		bounds = region.Rect().Intersect(bounds)
	}
	if bounds.Empty() {
		return bounds, fmt.Errorf("region (%d,%d)-(%d,%d) contains no pixels",
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return bounds, nil
}

// AverageColor returns the mean non-premultiplied color of a region.
//
// Each channel is rounded to the nearest integer; alpha is rounded to two
// decimals, the same precision Parse gives hex alpha.
func AverageColor(img image.Image, region *Region) (color.Color, error) {
	bounds, err := regionBounds(img, region)
	if err != nil {
		return color.Color{}, err
	}

	var sumR, sumG, sumB, sumA int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			p := color.FromStd(img.At(x, y)).NRGBA()
			sumR += int(p.R)
			sumG += int(p.G)
			sumB += int(p.B)
			sumA += int(p.A)
		}
	}

	n := float64(bounds.Dx() * bounds.Dy())
	avg := func(sum int) int { return int(math.Round(float64(sum) / n)) }
	a := math.Round(float64(sumA)/n/255*100) / 100

	return color.New(avg(sumR), avg(sumG), avg(sumB), a), nil
}

// CompareRegionsResult contains region comparison information.
type CompareRegionsResult struct {
	SimilarityScore float64          `json:"similarity_score"` // share of matching pixels, 0-1
	PixelsDifferent int              `json:"pixels_different"`
	TotalPixels     int              `json:"total_pixels"`
	SameSize        bool             `json:"same_size"`
	Average1        color.Formats    `json:"region1_average"`
	Average2        color.Formats    `json:"region2_average"`
	Comparison      color.Comparison `json:"comparison"` // between the two averages
}

// CompareRegions compares two regions of an image pixel by pixel and by their
// average colors.
//
// Regions of different size are compared over their common top-left aligned
// area. Both regions are clipped to the image first.
func CompareRegions(img image.Image, r1, r2 Region) (*CompareRegionsResult, error) {
	b1, err := regionBounds(img, &r1)
	if err != nil {
		return nil, fmt.Errorf("region1: %w", err)
	}
	b2, err := regionBounds(img, &r2)
	if err != nil {
		return nil, fmt.Errorf("region2: %w", err)
	}

	minW := b1.Dx()
	if b2.Dx() < minW {
		minW = b2.Dx()
	}
	minH := b1.Dy()
	if b2.Dy() < minH {
		minH = b2.Dy()
	}

	totalPixels := minW * minH
	pixelsDifferent := 0
	for dy := 0; dy < minH; dy++ {
		for dx := 0; dx < minW; dx++ {
			p1 := color.FromStd(img.At(b1.Min.X+dx, b1.Min.Y+dy)).NRGBA()
			p2 := color.FromStd(img.At(b2.Min.X+dx, b2.Min.Y+dy)).NRGBA()

			diff := float64(absDiff(p1.R, p2.R)+absDiff(p1.G, p2.G)+absDiff(p1.B, p2.B)) / 3.0
			if diff > pixelDiffThreshold {
				pixelsDifferent++
			}
		}
	}

	avg1, err := AverageColor(img, &r1)
	if err != nil {
		return nil, err
	}
	avg2, err := AverageColor(img, &r2)
	if err != nil {
		return nil, err
	}

	similarity := 1.0 - float64(pixelsDifferent)/float64(totalPixels)

	return &CompareRegionsResult{
		SimilarityScore: math.Round(similarity*1000) / 1000,
		PixelsDifferent: pixelsDifferent,
		TotalPixels:     totalPixels,
		SameSize:        b1.Size() == b2.Size(),
		Average1:        avg1.Formats(),
		Average2:        avg2.Formats(),
		Comparison:      color.Compare(avg1, avg2),
	}, nil
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
