package palette

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// ErrInvalidMethod is returned when a tone is derived with a method other
// than tint or shade.
var ErrInvalidMethod = errors.New("invalid method")

var hexColorPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// ArgumentError reports an invalid constructor argument.
type ArgumentError struct {
	Name   string // argument name
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("palette: %s is required: %s", e.Name, e.Reason)
}

// method selects how a tone moves away from the base lightness.
type method int

const (
	tint  method = iota + 1 // toward white
	shade                   // toward black
)

// derivation is one row of the fixed tone table.
type derivation struct {
	method method
	factor float64
}

// toneTable maps each derived tone to its method and factor. The "light"
// family is the small step and "lightest" the large one.
var toneTable = map[Tone]derivation{
	Lightest: {tint, 0.75},
	Lighter:  {tint, 0.50},
	Light:    {tint, 0.25},
	Dark:     {shade, 0.75},
	Darker:   {shade, 0.50},
	Darkest:  {shade, 0.25},
}

// cell caches one derived tone. once guards the single computation.
type cell struct {
	once  sync.Once
	value string
	err   error
}

// Scale derives six tints and shades from one base color.
//
// The base is fixed at construction. Each tone is computed the first time it
// is requested and cached; concurrent first requests for the same tone block
// on that tone's cell only.
type Scale struct {
	base  string
	cells [toneCount]cell
}

// White and Black are the scales seeded from pure white and pure black.
var (
	White = MustNew("#ffffff")
	Black = MustNew("#000000")
)

// New creates a scale from a six digit hex color. The leading '#' is optional;
// the stored base is lowercased and always carries the '#'.
func New(value string) (*Scale, error) {
	digits := strings.TrimPrefix(value, "#")
	if !hexColorPattern.MatchString(digits) {
		return nil, &ArgumentError{Name: "value", Reason: "must be a valid hex color"}
	}
	return &Scale{base: "#" + strings.ToLower(digits)}, nil
}

// MustNew is like New but panics on an invalid base.
func MustNew(value string) *Scale {
	s, err := New(value)
	if err != nil {
		panic(err)
	}
	return s
}

// Base returns the base color as "#rrggbb".
func (s *Scale) Base() string { return s.base }

// String returns Base.
func (s *Scale) String() string { return s.base }

// Lightest is the base tinted 75% of the way to white.
func (s *Scale) Lightest() string { return s.mustTone(Lightest) }

// Lighter is the base tinted 50% of the way to white.
func (s *Scale) Lighter() string { return s.mustTone(Lighter) }

// Light is the base tinted 25% of the way to white.
func (s *Scale) Light() string { return s.mustTone(Light) }

// Dark is the base shaded 75% of the way to black.
func (s *Scale) Dark() string { return s.mustTone(Dark) }

// Darker is the base shaded 50% of the way to black.
func (s *Scale) Darker() string { return s.mustTone(Darker) }

// Darkest is the base shaded 25% of the way to black.
func (s *Scale) Darkest() string { return s.mustTone(Darkest) }

// Tone returns the hex string for t, computing and caching it on first use.
func (s *Scale) Tone(t Tone) (string, error) {
	if t == Base {
		return s.base, nil
	}
	d, ok := toneTable[t]
	if !ok {
		return "", fmt.Errorf("palette: %w %d", ErrUnknownTone, int(t))
	}

	c := &s.cells[t]
	c.once.Do(func() {
		c.value, c.err = deriveTone(s.base, d.method, d.factor)
	})
	return c.value, c.err
}

// mustTone backs the named accessors, whose tones are always in the table.
func (s *Scale) mustTone(t Tone) string {
	v, err := s.Tone(t)
	if err != nil {
		panic(err)
	}
	return v
}

// Swatch is one named entry of a scale.
type Swatch struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Tones returns all seven entries from lightest to darkest, base in the middle.
func (s *Scale) Tones() ([]Swatch, error) {
	out := make([]Swatch, 0, len(AllTones))
	for _, t := range AllTones {
		v, err := s.Tone(t)
		if err != nil {
			return nil, err
		}
		out = append(out, Swatch{Name: t.String(), Hex: v})
	}
	return out, nil
}

// deriveTone is swapped out by tests that count derivations.
var deriveTone = derive

// derive converts base to HSL, moves its lightness by factor and formats the
// result as lowercase hex.
func derive(base string, m method, factor float64) (string, error) {
	c, err := color.Parse(base)
	if err != nil {
		return "", err
	}
	hsl := c.HSL()

	switch m {
	case tint:
		hsl.L += (1 - hsl.L) * factor
	case shade:
		hsl.L -= hsl.L * factor
	default:
		return "", fmt.Errorf("palette: %w", ErrInvalidMethod)
	}

	return color.FromHSL(hsl, c.A()).ToHex(), nil
}
