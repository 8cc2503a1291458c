package server

import "github.com/ironsheep/color-tools-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var colorProperty = map[string]interface{}{
	"type":        "string",
	"description": "Color as rgb(r, g, b), rgba(r, g, b, a), #RRGGBB or #RRGGBBAA",
}

var baseProperty = map[string]interface{}{
	"type":        "string",
	"description": "Base color as a six digit hex string, with or without the leading '#'",
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

var regionProperty = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"x1": map[string]interface{}{"type": "integer"},
		"y1": map[string]interface{}{"type": "integer"},
		"x2": map[string]interface{}{"type": "integer"},
		"y2": map[string]interface{}{"type": "integer"},
	},
	"required": []string{"x1", "y1", "x2", "y2"},
}

var areaProperty = map[string]interface{}{
	"type":        "string",
	"enum":        imaging.AreaNames,
	"description": "Named area to analyze instead of an explicit region",
}

var sizeProperty = map[string]interface{}{
	"type":        "integer",
	"description": "Edge length of each swatch square in pixels (default from COLOR_MCP_SWATCH_SIZE, 64)",
}

var outputPathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Optional file path to also write the rendered image to",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Operations
		{
			Name:        "color_parse",
			Description: "Parse a color string and return it in every supported format (rgb, rgba, hex, hex with alpha, HSL) plus its raw channels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_convert",
			Description: "Convert a color string to one target format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"rgb", "rgba", "hex", "hexa"},
						"description": "Target format",
					},
				},
				"required": []string{"color", "format"},
			},
		},
		{
			Name:        "color_set",
			Description: "Overwrite some channels of a color. With strict=true each channel is range checked (0-255, alpha 0-1) and the call fails on the first bad value; otherwise values are written unchecked.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
					"r":     map[string]interface{}{"type": "integer", "description": "New red channel"},
					"g":     map[string]interface{}{"type": "integer", "description": "New green channel"},
					"b":     map[string]interface{}{"type": "integer", "description": "New blue channel"},
					"a":     map[string]interface{}{"type": "number", "description": "New alpha channel"},
					"strict": map[string]interface{}{
						"type":        "boolean",
						"description": "Validate every channel before writing it. Default false",
						"default":     false,
					},
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_adjust_alpha",
			Description: "Add an offset to a color's alpha. The result is not clamped, so it may fall outside 0-1.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
					"offset": map[string]interface{}{
						"type":        "number",
						"description": "Amount to add to alpha (may be negative)",
					},
				},
				"required": []string{"color", "offset"},
			},
		},
		{
			Name:        "color_compare",
			Description: "Compare two colors: WCAG contrast ratio with AA/AAA verdicts for normal text, and CIEDE2000 perceptual distance. Alpha is ignored.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color1": colorProperty,
					"color2": colorProperty,
				},
				"required": []string{"color1", "color2"},
			},
		},
		{
			Name:        "color_swatch",
			Description: "Render a color as a square PNG over a checkerboard so transparency is visible. Returns base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":       colorProperty,
					"size":        sizeProperty,
					"output_path": outputPathProperty,
				},
				"required": []string{"color"},
			},
		},

		// Palette Operations
		{
			Name:        "palette_scale",
			Description: "Derive the seven step scale (lightest, lighter, light, base, dark, darker, darkest) from a base hex color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"base": baseProperty,
				},
				"required": []string{"base"},
			},
		},
		{
			Name:        "palette_tone",
			Description: "Derive a single named tone from a base hex color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"base": baseProperty,
					"tone": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"lightest", "lighter", "light", "base", "dark", "darker", "darkest"},
						"description": "Tone to derive",
					},
				},
				"required": []string{"base", "tone"},
			},
		},
		{
			Name:        "palette_swatch",
			Description: "Render the seven tones of a base color as one PNG strip, lightest on the left. Returns base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"base":        baseProperty,
					"size":        sizeProperty,
					"output_path": outputPathProperty,
				},
				"required": []string{"base"},
			},
		},

		// Image Operations
		{
			Name:        "image_info",
			Description: "Load an image file and return its dimensions, format, transparency and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a pixel coordinate in every supported format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Sample colors at multiple points in one call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Points to sample",
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Find the most common colors in an image or region, optionally with the palette scale of each.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return (default 5)",
						"default":     5,
					},
					"region": regionProperty,
					"area":   areaProperty,
					"with_scales": map[string]interface{}{
						"type":        "boolean",
						"description": "Also derive the palette scale of every dominant color. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_average_color",
			Description: "Average color of an image, an explicit region, or a named area such as top-left or center.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty,
					"region": regionProperty,
					"area":   areaProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_compare_regions",
			Description: "Compare two regions of an image pixel by pixel and by their average colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":    pathProperty,
					"region1": regionProperty,
					"region2": regionProperty,
				},
				"required": []string{"path", "region1", "region2"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
