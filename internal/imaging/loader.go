package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// ImageCache provides thread-safe caching of decoded images keyed by path.
//
// Once an image is loaded, subsequent Load calls for the same path return the
// cached copy without disk I/O. A cache built with NewImageCache(false) never
// stores anything and decodes on every call, which is useful when the files
// under inspection change between tool calls.
//
// Cached images remain in memory until Evict or Clear is called.
type ImageCache struct {
	mu      sync.RWMutex
	images  map[string]image.Image
	enabled bool
}

// NewImageCache creates an empty cache. When enabled is false every Load goes
// to disk.
func NewImageCache(enabled bool) *ImageCache {
	return &ImageCache{
		images:  make(map[string]image.Image),
		enabled: enabled,
	}
}

// Load retrieves an image from the cache or decodes it from disk.
//
// PNG, JPEG, GIF, BMP and TIFF are supported. JPEG files are rotated
// according to their EXIF orientation so sampled coordinates match what a
// viewer displays.
func (c *ImageCache) Load(path string) (image.Image, error) {
	if c.enabled {
		c.mu.RLock()
		img, ok := c.images[path]
		c.mu.RUnlock()
		if ok {
			return img, nil
		}
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	if c.enabled {
		c.mu.Lock()
		c.images[path] = img
		c.mu.Unlock()
	}

	return img, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes one image by the exact path it was loaded with.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Format        string `json:"format"`    // from the file extension
	HasAlpha      bool   `json:"has_alpha"` // true if any pixel is not fully opaque
	FileSizeBytes int64  `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through the cache and reports its metadata.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	} else if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		format = strings.ToLower(ext)
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		HasAlpha:      hasTransparency(img),
		FileSizeBytes: stat.Size(),
	}, nil
}

// hasTransparency scans for the first pixel that is not fully opaque.
func hasTransparency(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}
