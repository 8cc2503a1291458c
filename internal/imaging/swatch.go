package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	stdcolor "image/color"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/palette"
)

const checkerCell = 8

var (
	checkerLight = stdcolor.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	checkerDark  = stdcolor.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}
)

// ImageResult contains a rendered image encoded as base64 PNG.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	SavedTo     string `json:"saved_to,omitempty"`
}

// RenderSwatch draws a size x size square of c composited over a checkerboard,
// so partially transparent colors show their alpha.
func RenderSwatch(c color.Color, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("swatch size must be positive, got %d", size)
	}

	fg := imaging.New(size, size, c.NRGBA())
	return blend.Normal(checkerboard(size, size), fg), nil
}

// RenderScale draws the seven tones of s side by side, lightest on the left.
// Each tone occupies a size x size square.
func RenderScale(s *palette.Scale, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("swatch size must be positive, got %d", size)
	}

	tones, err := s.Tones()
	if err != nil {
		return nil, err
	}

	strip := imaging.New(size*len(tones), size, stdcolor.Transparent)
	for i, t := range tones {
		c, err := color.Parse(t.Hex)
		if err != nil {
			return nil, fmt.Errorf("tone %s: %w", t.Name, err)
		}
		cell := imaging.New(size, size, c.NRGBA())
		strip = imaging.Paste(strip, cell, image.Pt(i*size, 0))
	}
	return strip, nil
}

// EncodePNG encodes img as base64 PNG. When path is non-empty the image is
// also written there; the format follows the file extension.
func EncodePNG(img image.Image, path string) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	if path != "" {
		if err := imaging.Save(img, path); err != nil {
			return nil, fmt.Errorf("failed to save image: %w", err)
		}
	}

	return &ImageResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		SavedTo:     path,
	}, nil
}

func checkerboard(w, h int) *image.NRGBA {
	img := imaging.New(w, h, checkerLight)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/checkerCell+y/checkerCell)%2 == 1 {
				img.SetNRGBA(x, y, checkerDark)
			}
		}
	}
	return img
}
