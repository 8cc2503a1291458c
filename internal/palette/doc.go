// Package palette derives a seven step tint/shade scale from one base color.
//
// A Scale is built from a six digit hex string and exposes the base plus six
// derived tones. Tints move HSL lightness toward white by a fraction of the
// remaining distance; shades move it toward black the same way:
//
//	lightest  tint  0.75
//	lighter   tint  0.50
//	light     tint  0.25
//	base
//	dark      shade 0.75
//	darker    shade 0.50
//	darkest   shade 0.25
//
// Every tone is computed at most once per Scale and is safe to read from
// multiple goroutines.
package palette
