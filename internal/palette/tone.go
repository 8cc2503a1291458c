package palette

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTone is returned for a tone name or value outside the scale.
var ErrUnknownTone = errors.New("unknown tone")

// Tone names one step of a Scale.
type Tone int

// Tones in order from lightest to darkest.
const (
	Lightest Tone = iota
	Lighter
	Light
	Base
	Dark
	Darker
	Darkest

	toneCount = iota
)

// AllTones lists every tone from lightest to darkest.
var AllTones = []Tone{Lightest, Lighter, Light, Base, Dark, Darker, Darkest}

var toneNames = [toneCount]string{
	Lightest: "lightest",
	Lighter:  "lighter",
	Light:    "light",
	Base:     "base",
	Dark:     "dark",
	Darker:   "darker",
	Darkest:  "darkest",
}

func (t Tone) String() string {
	if t < 0 || int(t) >= toneCount {
		return fmt.Sprintf("Tone(%d)", int(t))
	}
	return toneNames[t]
}

// ParseTone looks up a tone by name, ignoring case and surrounding spaces.
func ParseTone(name string) (Tone, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range toneNames {
		if s == n {
			return Tone(i), nil
		}
	}
	return 0, fmt.Errorf("palette: %w %q", ErrUnknownTone, name)
}
