// Package color provides the RGBA color value type shared by the palette
// engine, the imaging helpers and the MCP tools.
//
// A Color holds four channels: red, green and blue as integers in 0-255 and
// alpha as a float in 0.0-1.0. Colors are plain values; copy one with Copy
// (or by assignment) before handing it to code that mutates it.
//
// # Textual Formats
//
// Parse accepts exactly four shapes, tried in this order:
//   - rgb(r, g, b)        alpha is 1.0
//   - rgba(r, g, b, a)    alpha may be fractional and is clamped to 0.0-1.0
//   - #RRGGBB             case-insensitive, alpha is 1.0
//   - #RRGGBBAA           alpha byte / 256, rounded to two decimals
//
// Whitespace around every token inside the parentheses is ignored.
//
// Serialization produces:
//   - ToRGB:      "rgb( r, g, b )"
//   - ToRGBA:     "rgba( r, g, b, a )"
//   - ToHex:      "#rrggbb"
//   - ToHexAlpha: "#rrggbbaa"
//
// # Validation Paths
//
// There are two ways in and two ways to mutate, and they do not validate
// alike:
//   - Parse validates every channel; New stores whatever it is given.
//   - SetR/SetG/SetB/SetA reject out-of-range values and leave the color
//     untouched; Set and AdjustAlpha write the stored channels unchecked.
//
// Code that needs a guaranteed in-range color should go through Parse or the
// individual setters.
//
// # Thread Safety
//
// Color has no internal locking. Reading a Color concurrently is safe;
// mutating one that other goroutines read is not.
package color
