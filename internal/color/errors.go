package color

import "errors"

// Sentinel errors returned (wrapped) by Parse and the channel setters.
// Use errors.Is to test for them.
var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrInvalidRed    = errors.New("invalid red value")
	ErrInvalidGreen  = errors.New("invalid green value")
	ErrInvalidBlue   = errors.New("invalid blue value")
	ErrInvalidAlpha  = errors.New("invalid alpha value")
)
