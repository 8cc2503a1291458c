package server

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/palette"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_parse", "palette_scale").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	MetricToolDuration.WithLabelValues(params.Name).Observe(time.Since(start).Seconds())
	if err != nil {
		MetricToolCalls.WithLabelValues(params.Name, "error").Inc()
		if s.cfg.Debug() {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	MetricToolCalls.WithLabelValues(params.Name, "ok").Inc()

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Color Operations
	case "color_parse":
		return s.handleColorParse(args)
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_set":
		return s.handleColorSet(args)
	case "color_adjust_alpha":
		return s.handleColorAdjustAlpha(args)
	case "color_compare":
		return s.handleColorCompare(args)
	case "color_swatch":
		return s.handleColorSwatch(args)

	// Palette Operations
	case "palette_scale":
		return s.handlePaletteScale(args)
	case "palette_tone":
		return s.handlePaletteTone(args)
	case "palette_swatch":
		return s.handlePaletteSwatch(args)

	// Image Operations
	case "image_info":
		return s.handleImageInfo(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_average_color":
		return s.handleImageAverageColor(args)
	case "image_compare_regions":
		return s.handleImageCompareRegions(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// swatchSize returns size, or the configured default when size is not set.
func (s *Server) swatchSize(size int) int {
	if size == 0 {
		return s.cfg.SwatchSize
	}
	return size
}

// === Color Operation Handlers ===

type colorArgs struct {
	Color string `json:"color"`
}

func (s *Server) handleColorParse(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := color.Parse(a.Color)
	if err != nil {
		return nil, err
	}
	return c.Formats(), nil
}

type colorConvertArgs struct {
	Color  string `json:"color"`
	Format string `json:"format"`
}

// ConvertResult is the single-format output of color_convert.
type ConvertResult struct {
	Format string `json:"format"`
	Value  string `json:"value"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := color.Parse(a.Color)
	if err != nil {
		return nil, err
	}

	var v string
	switch a.Format {
	case "rgb":
		v = c.ToRGB()
	case "rgba":
		v = c.ToRGBA()
	case "hex":
		v = c.ToHex()
	case "hexa":
		v = c.ToHexAlpha()
	default:
		return nil, fmt.Errorf("unknown format: %s", a.Format)
	}
	return &ConvertResult{Format: a.Format, Value: v}, nil
}

type colorSetArgs struct {
	Color string `json:"color"`
	color.Channels
	Strict bool `json:"strict"`
}

func (s *Server) handleColorSet(args json.RawMessage) (interface{}, error) {
	var a colorSetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := color.Parse(a.Color)
	if err != nil {
		return nil, err
	}

	if !a.Strict {
		return c.Set(a.Channels).Formats(), nil
	}

	if a.R != nil {
		if err := c.SetR(*a.R); err != nil {
			return nil, err
		}
	}
	if a.G != nil {
		if err := c.SetG(*a.G); err != nil {
			return nil, err
		}
	}
	if a.B != nil {
		if err := c.SetB(*a.B); err != nil {
			return nil, err
		}
	}
	if a.A != nil {
		if err := c.SetA(*a.A); err != nil {
			return nil, err
		}
	}
	return c.Formats(), nil
}

type colorAdjustAlphaArgs struct {
	Color  string  `json:"color"`
	Offset float64 `json:"offset"`
}

func (s *Server) handleColorAdjustAlpha(args json.RawMessage) (interface{}, error) {
	var a colorAdjustAlphaArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := color.Parse(a.Color)
	if err != nil {
		return nil, err
	}
	return c.AdjustAlpha(a.Offset).Formats(), nil
}

type colorCompareArgs struct {
	Color1 string `json:"color1"`
	Color2 string `json:"color2"`
}

func (s *Server) handleColorCompare(args json.RawMessage) (interface{}, error) {
	var a colorCompareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c1, err := color.Parse(a.Color1)
	if err != nil {
		return nil, fmt.Errorf("color1: %w", err)
	}
	c2, err := color.Parse(a.Color2)
	if err != nil {
		return nil, fmt.Errorf("color2: %w", err)
	}
	return color.Compare(c1, c2), nil
}

type colorSwatchArgs struct {
	Color      string `json:"color"`
	Size       int    `json:"size"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := color.Parse(a.Color)
	if err != nil {
		return nil, err
	}
	img, err := imaging.RenderSwatch(c, s.swatchSize(a.Size))
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(img, a.OutputPath)
}

// === Palette Operation Handlers ===

type paletteArgs struct {
	Base string `json:"base"`
}

// ScaleResult is the output of palette_scale.
type ScaleResult struct {
	Base  string           `json:"base"`
	Tones []palette.Swatch `json:"tones"`
}

func (s *Server) handlePaletteScale(args json.RawMessage) (interface{}, error) {
	var a paletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sc, err := palette.New(a.Base)
	if err != nil {
		return nil, err
	}
	tones, err := sc.Tones()
	if err != nil {
		return nil, err
	}
	return &ScaleResult{Base: sc.Base(), Tones: tones}, nil
}

type paletteToneArgs struct {
	Base string `json:"base"`
	Tone string `json:"tone"`
}

func (s *Server) handlePaletteTone(args json.RawMessage) (interface{}, error) {
	var a paletteToneArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sc, err := palette.New(a.Base)
	if err != nil {
		return nil, err
	}
	tone, err := palette.ParseTone(a.Tone)
	if err != nil {
		return nil, err
	}
	hex, err := sc.Tone(tone)
	if err != nil {
		return nil, err
	}
	return &palette.Swatch{Name: tone.String(), Hex: hex}, nil
}

type paletteSwatchArgs struct {
	Base       string `json:"base"`
	Size       int    `json:"size"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handlePaletteSwatch(args json.RawMessage) (interface{}, error) {
	var a paletteSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sc, err := palette.New(a.Base)
	if err != nil {
		return nil, err
	}
	img, err := imaging.RenderScale(sc, s.swatchSize(a.Size))
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(img, a.OutputPath)
}

// === Image Operation Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	c, err := imaging.SampleColor(img, a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return &imaging.SampleResult{X: a.X, Y: a.Y, Color: c.Formats()}, nil
}

type imageSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	samples, err := imaging.SampleColorsMulti(img, points)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"samples": samples}, nil
}

// regionArgs is the JSON form of an explicit region.
type regionArgs struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

func (r regionArgs) region() imaging.Region {
	return imaging.Region{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2}
}

// resolveRegion picks the explicit region, else the named area, else nil for
// the whole image.
func resolveRegion(img image.Image, region *regionArgs, area string) (*imaging.Region, error) {
	switch {
	case region != nil:
		r := region.region()
		return &r, nil
	case area != "":
		r, err := imaging.NamedRegion(img.Bounds(), area)
		if err != nil {
			return nil, err
		}
		return &r, nil
	default:
		return nil, nil
	}
}

type imageDominantColorsArgs struct {
	Path       string      `json:"path"`
	Count      int         `json:"count"`
	Region     *regionArgs `json:"region"`
	Area       string      `json:"area"`
	WithScales bool        `json:"with_scales"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	region, err := resolveRegion(img, a.Region, a.Area)
	if err != nil {
		return nil, err
	}
	colors, err := imaging.DominantColors(img, a.Count, region)
	if err != nil {
		return nil, err
	}
	if a.WithScales {
		if err := imaging.WithScales(colors); err != nil {
			return nil, err
		}
	}
	return map[string]interface{}{"colors": colors}, nil
}

type imageAverageColorArgs struct {
	Path   string      `json:"path"`
	Region *regionArgs `json:"region"`
	Area   string      `json:"area"`
}

func (s *Server) handleImageAverageColor(args json.RawMessage) (interface{}, error) {
	var a imageAverageColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	region, err := resolveRegion(img, a.Region, a.Area)
	if err != nil {
		return nil, err
	}
	c, err := imaging.AverageColor(img, region)
	if err != nil {
		return nil, err
	}
	return c.Formats(), nil
}

type imageCompareRegionsArgs struct {
	Path    string     `json:"path"`
	Region1 regionArgs `json:"region1"`
	Region2 regionArgs `json:"region2"`
}

func (s *Server) handleImageCompareRegions(args json.RawMessage) (interface{}, error) {
	var a imageCompareRegionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CompareRegions(img, a.Region1.region(), a.Region2.region())
}
