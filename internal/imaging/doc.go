// Package imaging connects the color and palette packages to raster images.
//
// It samples pixel colors, extracts dominant colors, and renders colors and
// palette scales as PNG swatches for the MCP server. Pixel coordinates are
// 0-based with (0,0) at the top-left corner; regions are inclusive at the
// top-left and exclusive at the bottom-right.
//
// # Color Representation
//
// Sampled pixels are returned as color.Color values, converted from the
// image's native model to non-premultiplied 8-bit channels. Alpha is the
// pixel alpha divided by 255.
//
// # Regions
//
// NamedRegion turns area names such as "top-left" or "center" into a
// Region. AverageColor and CompareRegions summarize regions by their mean
// color; CompareRegions also counts differing pixels.
//
// # Swatches
//
// RenderSwatch composites a color over a checkerboard so that translucent
// colors are visible; RenderScale lays out the seven tones of a
// palette.Scale from lightest to darkest. EncodePNG turns either into base64
// PNG and can also write it to disk.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions are
// stateless and can run concurrently on different images.
package imaging
