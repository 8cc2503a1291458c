// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes color parsing,
// palette derivation and image color sampling through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Color Operations:
//   - color_parse: Parse a color string into every format
//   - color_convert: Convert to one format
//   - color_set: Overwrite channels, checked or unchecked
//   - color_adjust_alpha: Offset alpha without clamping
//   - color_swatch: Render a color as PNG
//
// Palette Operations:
//   - palette_scale: All seven tones of a base color
//   - palette_tone: One named tone
//   - palette_swatch: Render the scale as a PNG strip
//
// Image Operations:
//   - image_info: Dimensions, format and transparency
//   - image_sample_color: Get color at pixel
//   - image_sample_colors_multi: Sample multiple points
//   - image_dominant_colors: Extract color palette
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the process unless
// COLOR_MCP_CACHE_IMAGES is false.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Metrics
//
// When COLOR_MCP_METRICS_ADDR is set, Run also serves Prometheus metrics at
// /metrics on that address.
//
// # Usage
//
//	srv := server.NewWithConfig(cfg)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
