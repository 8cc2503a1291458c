package color

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParse_Formats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		wantR int
		wantG int
		wantB int
		wantA float64
	}{
		{"rgb", "rgb(255, 0, 0)", 255, 0, 0, 1.0},
		{"rgb no spaces", "rgb(1,2,3)", 1, 2, 3, 1.0},
		{"rgb wide spaces", "rgb(  10 ,   20,30   )", 10, 20, 30, 1.0},
		{"rgb tabs", "rgb(\t10,\t20,\t30\t)", 10, 20, 30, 1.0},
		{"rgba", "rgba(10, 20, 30, 0.5)", 10, 20, 30, 0.5},
		{"rgba leading dot", "rgba( 10 , 20 , 30 , .25 )", 10, 20, 30, 0.25},
		{"rgba integer alpha", "rgba(0,0,0,1)", 0, 0, 0, 1.0},
		{"rgba zero alpha", "rgba(0,0,0,0)", 0, 0, 0, 0.0},
		{"hex lower", "#ff8040", 255, 128, 64, 1.0},
		{"hex upper", "#FF8040", 255, 128, 64, 1.0},
		{"hex mixed", "#Ff80aB", 255, 128, 171, 1.0},
		{"hexa opaque", "#00ff00ff", 0, 255, 0, 1.0},
		{"hexa half", "#00ff0080", 0, 255, 0, 0.5},
		{"hexa quarter", "#0000ff40", 0, 0, 255, 0.25},
		{"hexa eighth rounds up", "#00000020", 0, 0, 0, 0.13},
		{"hexa tiny rounds to zero", "#00000001", 0, 0, 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if c.R() != tt.wantR || c.G() != tt.wantG || c.B() != tt.wantB {
				t.Errorf("RGB: got (%d,%d,%d), want (%d,%d,%d)",
					c.R(), c.G(), c.B(), tt.wantR, tt.wantG, tt.wantB)
			}
			if c.A() != tt.wantA {
				t.Errorf("A: got %v, want %v", c.A(), tt.wantA)
			}
		})
	}
}

func TestParse_AlphaClamp(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"rgba(0,0,0,1.5)", 1.0},
		{"rgba(0,0,0,-0.3)", 0.0},
		{"rgba(0,0,0,42)", 1.0},
		{"rgba(0,0,0,0.999)", 0.999},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if c.A() != tt.want {
				t.Errorf("A: got %v, want %v", c.A(), tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrInvalidFormat},
		{"bad hex digits", "#ZZZZZZ", ErrInvalidFormat},
		{"short hex", "#fff", ErrInvalidFormat},
		{"seven hex digits", "#fffffff", ErrInvalidFormat},
		{"missing hash", "ff0000", ErrInvalidFormat},
		{"uppercase function", "RGB(1,2,3)", ErrInvalidFormat},
		{"rgb with alpha", "rgb(1,2,3,0.5)", ErrInvalidFormat},
		{"rgba without alpha", "rgba(1,2,3)", ErrInvalidFormat},
		{"negative channel", "rgb(-1,2,3)", ErrInvalidFormat},
		{"fractional channel", "rgb(1.5,2,3)", ErrInvalidFormat},
		{"trailing text", "rgb(1,2,3) ", ErrInvalidFormat},
		{"named color", "red", ErrInvalidFormat},
		{"red out of range", "rgb(256,0,0)", ErrInvalidRed},
		{"green out of range", "rgba(0,300,0,1)", ErrInvalidGreen},
		{"blue out of range", "rgb(0,0,1000)", ErrInvalidBlue},
		{"green overflow", "rgb(0,999999999999999999999999,0)", ErrInvalidGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tt.input)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error: got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParse_FormatExclusive(t *testing.T) {
	// A six digit hex string must never be read as hex-with-alpha and the
	// reverse.
	six, err := Parse("#112233")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if six.A() != 1.0 {
		t.Errorf("six digit alpha: got %v, want 1", six.A())
	}
	if hexaPattern.MatchString("#112233") {
		t.Error("hexa pattern matched a six digit string")
	}
	if hexPattern.MatchString("#11223344") {
		t.Error("hex pattern matched an eight digit string")
	}
	if rgbPattern.MatchString("rgba(1,2,3,1)") || rgbaPattern.MatchString("rgb(1,2,3)") {
		t.Error("rgb and rgba patterns overlap")
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid input")
		}
	}()
	MustParse("not a color")
}

func TestNew_NoValidation(t *testing.T) {
	c := New(300, 0, 0, 1.0)
	if c.R() != 300 {
		t.Errorf("R: got %d, want 300", c.R())
	}

	if err := c.SetR(300); err == nil {
		t.Error("SetR(300) should fail")
	}
	if c.R() != 300 {
		t.Errorf("R after rejected set: got %d, want 300", c.R())
	}
}

func TestConstants(t *testing.T) {
	if !Black.Equal(New(0, 0, 0, 1.0)) {
		t.Errorf("Black: got %v", Black)
	}
	if !White.Equal(New(255, 255, 255, 1.0)) {
		t.Errorf("White: got %v", White)
	}

	c := Black
	_ = c.SetR(10)
	if Black.R() != 0 {
		t.Error("mutating a copy of Black changed Black")
	}
}

func TestSetters_Range(t *testing.T) {
	tests := []struct {
		name    string
		set     func(c *Color) error
		wantErr error
	}{
		{"red 0", func(c *Color) error { return c.SetR(0) }, nil},
		{"red 255", func(c *Color) error { return c.SetR(255) }, nil},
		{"red 256", func(c *Color) error { return c.SetR(256) }, ErrInvalidRed},
		{"red -1", func(c *Color) error { return c.SetR(-1) }, ErrInvalidRed},
		{"green 128", func(c *Color) error { return c.SetG(128) }, nil},
		{"green 256", func(c *Color) error { return c.SetG(256) }, ErrInvalidGreen},
		{"blue 255", func(c *Color) error { return c.SetB(255) }, nil},
		{"blue -10", func(c *Color) error { return c.SetB(-10) }, ErrInvalidBlue},
		{"alpha 0", func(c *Color) error { return c.SetA(0) }, nil},
		{"alpha 1", func(c *Color) error { return c.SetA(1) }, nil},
		{"alpha 1.01", func(c *Color) error { return c.SetA(1.01) }, ErrInvalidAlpha},
		{"alpha -0.1", func(c *Color) error { return c.SetA(-0.1) }, ErrInvalidAlpha},
		{"alpha NaN", func(c *Color) error { return c.SetA(math.NaN()) }, ErrInvalidAlpha},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(1, 2, 3, 0.5)
			before := c
			err := tt.set(&c)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error: got %v, want %v", err, tt.wantErr)
			}
			if !c.Equal(before) {
				t.Errorf("rejected write changed color: got %v, want %v", c, before)
			}
		})
	}
}

func TestSetter_ErrorMessage(t *testing.T) {
	c := RGB(0, 0, 0)
	err := c.SetR(256)
	if err == nil {
		t.Fatal("SetR(256) should fail")
	}
	if err.Error() != "color: invalid red value {256}" {
		t.Errorf("message: got %q", err.Error())
	}
}

func TestSet_Partial(t *testing.T) {
	c := New(1, 2, 3, 0.5)
	g := 20
	a := 0.75

	got := c.Set(Channels{G: &g, A: &a})
	if got != &c {
		t.Error("Set should return its receiver")
	}
	if !c.Equal(New(1, 20, 3, 0.75)) {
		t.Errorf("after Set: got %v", c)
	}
}

func TestSet_BypassesValidation(t *testing.T) {
	c := RGB(0, 0, 0)
	r := 300
	b := -4
	a := 2.5

	c.Set(Channels{R: &r, B: &b, A: &a})
	if c.R() != 300 || c.B() != -4 || c.A() != 2.5 {
		t.Errorf("Set should store unchecked values, got %v", c)
	}
}

func TestSet_IgnoresNaNAlpha(t *testing.T) {
	c := New(0, 0, 0, 0.5)
	nan := math.NaN()
	c.Set(Channels{A: &nan})
	if c.A() != 0.5 {
		t.Errorf("A: got %v, want 0.5", c.A())
	}
}

func TestCopy_Independent(t *testing.T) {
	orig := New(10, 20, 30, 0.4)
	cp := orig.Copy()
	if !cp.Equal(orig) {
		t.Fatalf("copy differs: got %v, want %v", cp, orig)
	}

	if err := cp.SetR(99); err != nil {
		t.Fatal(err)
	}
	cp.AdjustAlpha(0.1)
	if orig.R() != 10 || orig.A() != 0.4 {
		t.Errorf("mutating the copy changed the original: %v", orig)
	}
}

func TestAdjustAlpha_Unclamped(t *testing.T) {
	c := New(0, 0, 0, 0.75)
	got := c.AdjustAlpha(0.5)
	if got != &c {
		t.Error("AdjustAlpha should return its receiver")
	}
	if c.A() != 1.25 {
		t.Errorf("A: got %v, want 1.25", c.A())
	}

	c.AdjustAlpha(-1.5)
	if c.A() != -0.25 {
		t.Errorf("A: got %v, want -0.25", c.A())
	}
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		wantRGB  string
		wantRGBA string
		wantHex  string
		wantHexA string
	}{
		{"red", RGB(255, 0, 0), "rgb( 255, 0, 0 )", "rgba( 255, 0, 0, 1 )", "#ff0000", "#ff0000ff"},
		{"padding", New(10, 11, 0, 0.5), "rgb( 10, 11, 0 )", "rgba( 10, 11, 0, 0.5 )", "#0a0b00", "#0a0b0080"},
		{"transparent", New(1, 2, 3, 0), "rgb( 1, 2, 3 )", "rgba( 1, 2, 3, 0 )", "#010203", "#01020300"},
		{"fraction", New(255, 255, 255, 0.25), "rgb( 255, 255, 255 )", "rgba( 255, 255, 255, 0.25 )", "#ffffff", "#ffffff40"},
		{"overflow alpha", New(0, 0, 0, 1.7), "rgb( 0, 0, 0 )", "rgba( 0, 0, 0, 1.7 )", "#000000", "#000000ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.ToRGB(); got != tt.wantRGB {
				t.Errorf("ToRGB: got %q, want %q", got, tt.wantRGB)
			}
			if got := tt.color.ToRGBA(); got != tt.wantRGBA {
				t.Errorf("ToRGBA: got %q, want %q", got, tt.wantRGBA)
			}
			if got := tt.color.ToHex(); got != tt.wantHex {
				t.Errorf("ToHex: got %q, want %q", got, tt.wantHex)
			}
			if got := tt.color.ToHexAlpha(); got != tt.wantHexA {
				t.Errorf("ToHexAlpha: got %q, want %q", got, tt.wantHexA)
			}
		})
	}
}

func TestRoundTrip_Hex(t *testing.T) {
	for _, v := range []int{0, 1, 15, 16, 127, 128, 200, 254, 255} {
		c := RGB(v, 255-v, v/2)
		back, err := Parse(c.ToHex())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", c.ToHex(), err)
		}
		if back.R() != c.R() || back.G() != c.G() || back.B() != c.B() {
			t.Errorf("hex round trip: got %v, want %v", back, c)
		}
		if back.ToHex() != c.ToHex() {
			t.Errorf("ToHex: got %s, want %s", back.ToHex(), c.ToHex())
		}
	}
}

func TestRoundTrip_RGBA(t *testing.T) {
	for _, a := range []float64{0, 0.1, 0.25, 1.0 / 3.0, 0.5, 0.99, 1} {
		c := New(12, 200, 255, a)
		back, err := Parse(c.ToRGBA())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", c.ToRGBA(), err)
		}
		if back.R() != 12 || back.G() != 200 || back.B() != 255 {
			t.Errorf("channels: got %v", back)
		}
		if math.Abs(back.A()-a) > 1e-9 {
			t.Errorf("alpha: got %v, want %v", back.A(), a)
		}
	}
}

func TestScenario_RGBToHex(t *testing.T) {
	c, err := Parse("rgb(255, 0, 0)")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.ToHex(); got != "#ff0000" {
		t.Errorf("got %s, want #ff0000", got)
	}
}

func TestText_JSON(t *testing.T) {
	type doc struct {
		Fill Color `json:"fill"`
	}

	b, err := json.Marshal(doc{Fill: New(1, 2, 3, 0.5)})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(b) != `{"fill":"rgba( 1, 2, 3, 0.5 )"}` {
		t.Errorf("Marshal: got %s", b)
	}

	var d doc
	if err := json.Unmarshal([]byte(`{"fill":" #FF0000 "}`), &d); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !d.Fill.Equal(RGB(255, 0, 0)) {
		t.Errorf("Unmarshal: got %v", d.Fill)
	}

	err = json.Unmarshal([]byte(`{"fill":"nope"}`), &d)
	if err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("Unmarshal invalid: got %v", err)
	}
}
