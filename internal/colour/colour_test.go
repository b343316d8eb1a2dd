package colour

import (
	"image/color"
	"math"
	"strings"
	"testing"

	fatihcolor "github.com/fatih/color"
)

func TestColorHex(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{name: "red", color: New(255, 0, 0), want: "#ff0000"},
		{name: "grey", color: New(128, 128, 128), want: "#808080"},
		{name: "zero value", color: Color{}, want: "#000000"},
		{name: "translucent", color: New(255, 0, 0).AdjustAlpha(0.5), want: "#ff000080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestColorStringFormats(t *testing.T) {
	c := New(255, 128, 0)
	tests := []struct {
		token string
		want  string
	}{
		{"hex", "#ff8000"},
		{"hexalpha", "#ff8000ff"},
		{"hexnohash", "ff8000"},
		{"rgb", "rgb(255, 128, 0)"},
		{"rgba", "rgba(255, 128, 0, 1.00)"},
		{"rgbdecimal", "255,128,0"},
		{"rgbadecimal", "255,128,0,1.00"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			f, ok := ParseFormat(tt.token)
			if !ok {
				t.Fatalf("ParseFormat(%q) not recognised", tt.token)
			}
			if got := c.WithFormat(f).String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
			if f.String() != tt.token {
				t.Errorf("Format.String() = %s, want %s", f.String(), tt.token)
			}
		})
	}
}

func TestIsValidFormat(t *testing.T) {
	for _, token := range FormatTokens() {
		if !IsValidFormat(token) {
			t.Errorf("IsValidFormat(%q) = false, want true", token)
		}
	}
	for _, token := range []string{"", "HEX", "lighten", "hsl"} {
		if IsValidFormat(token) {
			t.Errorf("IsValidFormat(%q) = true, want false", token)
		}
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#1e1e2e")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Hex() != "#1e1e2e" {
		t.Errorf("Hex() = %s, want #1e1e2e", c.Hex())
	}

	if _, err := ParseHex("cdd6f4"); err != nil {
		t.Errorf("expected hash-less hex to parse, got %v", err)
	}
	if _, err := ParseHex("#zzzzzz"); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestFromColorKeepsAlpha(t *testing.T) {
	c := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	if got := c.Hex(); got != "#ff000080" {
		t.Errorf("Hex() = %s, want #ff000080", got)
	}

	transparent := FromColor(color.NRGBA{})
	if transparent.Alpha() != 0 {
		t.Errorf("Alpha() = %v, want 0", transparent.Alpha())
	}
}

func TestContrast(t *testing.T) {
	black := New(0, 0, 0)
	white := New(255, 255, 255)

	if got := black.Contrast(white); math.Abs(got-21) > 0.01 {
		t.Errorf("Contrast(black, white) = %v, want 21", got)
	}
	if got := white.Contrast(black); math.Abs(got-21) > 0.01 {
		t.Errorf("Contrast should be symmetric, got %v", got)
	}
	if got := black.Contrast(black); math.Abs(got-1) > 1e-9 {
		t.Errorf("Contrast(black, black) = %v, want 1", got)
	}
}

func TestLuminance(t *testing.T) {
	if got := New(0, 0, 0).Luminance(); math.Abs(got) > 1e-6 {
		t.Errorf("Luminance(black) = %v, want 0", got)
	}
	if got := New(255, 255, 255).Luminance(); math.Abs(got-100) > 0.01 {
		t.Errorf("Luminance(white) = %v, want 100", got)
	}
	if got := New(255, 255, 255).LuminanceDifference(0); math.Abs(got-1) > 1e-3 {
		t.Errorf("LuminanceDifference(white, 0) = %v, want 1", got)
	}
}

func TestAdjustLuminance(t *testing.T) {
	grey := New(119, 119, 119)
	before := grey.Luminance()

	lighter := grey.AdjustLuminance(10)
	if got := lighter.Luminance() - before; math.Abs(got-10) > 1e-3 {
		t.Errorf("AdjustLuminance(10) moved L* by %v, want 10", got)
	}

	darker := grey.AdjustLuminance(-10)
	if got := before - darker.Luminance(); math.Abs(got-10) > 1e-3 {
		t.Errorf("AdjustLuminance(-10) moved L* by %v, want 10", got)
	}

	if got := New(250, 250, 250).AdjustLuminance(50).Luminance(); got > 100.001 {
		t.Errorf("AdjustLuminance should clamp at 100, got %v", got)
	}

	if grey.Luminance() != before {
		t.Error("AdjustLuminance modified the receiver")
	}
}

func TestAdjustMinMaxLuminance(t *testing.T) {
	dark := New(20, 20, 20)
	light := New(230, 230, 230)

	tests := []struct {
		name    string
		color   Color
		target  float64
		atLeast bool
		want    float64
	}{
		{name: "raises dark colour", color: dark, target: 80, atLeast: true, want: 80},
		{name: "keeps light colour above floor", color: light, target: 80, atLeast: true, want: light.Luminance()},
		{name: "lowers light colour", color: light, target: 10, atLeast: false, want: 10},
		{name: "keeps dark colour below ceiling", color: dark, target: 10, atLeast: false, want: dark.Luminance()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.color.AdjustMinMaxLuminance(tt.target, tt.atLeast).Luminance()
			if math.Abs(got-tt.want) > 1e-3 {
				t.Errorf("Luminance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdjustMinContrast(t *testing.T) {
	bg := New(0, 0, 0)
	c := New(40, 40, 40).AdjustMinContrast(4.5, bg, true)
	if got := c.Contrast(bg); got < 4.5 {
		t.Errorf("Contrast() = %v, want >= 4.5", got)
	}

	lightBg := New(255, 255, 255)
	d := New(220, 220, 220).AdjustContrastColor(lightBg, false)
	if got := d.Contrast(lightBg); got < MinTextContrast {
		t.Errorf("Contrast() = %v, want >= %v", got, MinTextContrast)
	}

	// Already satisfied: unchanged.
	w := New(255, 255, 255)
	if got := w.AdjustMinContrast(2, bg, true); got != w {
		t.Errorf("AdjustMinContrast changed a colour that already met the ratio: %s", got.Hex())
	}
}

func TestAdjustHue(t *testing.T) {
	green := New(255, 0, 0).AdjustHue(120)
	if got := green.Hex(); got != "#00ff00" {
		t.Errorf("AdjustHue(120) = %s, want #00ff00", got)
	}
	if got := green.Hue(); math.Abs(got-120) > 0.5 {
		t.Errorf("Hue() = %v, want 120", got)
	}

	wrapped := New(255, 0, 0).AdjustHue(-120)
	if got := wrapped.Hue(); math.Abs(got-240) > 0.5 {
		t.Errorf("Hue() = %v, want 240", got)
	}
}

func TestMultiply(t *testing.T) {
	got := New(200, 100, 50).Multiply(0.5).Hex()
	if got != "#643219" {
		t.Errorf("Multiply(0.5) = %s, want #643219", got)
	}
}

func TestMinimumDistance(t *testing.T) {
	red := New(255, 0, 0)
	if got := red.MinimumDistance(nil); got != 1 {
		t.Errorf("MinimumDistance(empty) = %v, want 1", got)
	}
	if got := red.MinimumDistance([]Color{New(0, 0, 255), red}); got != 0 {
		t.Errorf("MinimumDistance(with self) = %v, want 0", got)
	}

	near := red.MinimumDistance([]Color{New(250, 10, 10)})
	far := red.MinimumDistance([]Color{New(0, 255, 255)})
	if near >= far {
		t.Errorf("expected near (%v) < far (%v)", near, far)
	}
}

func TestProportion(t *testing.T) {
	c := New(1, 2, 3).WithProportion(0.25)
	if c.Proportion() != 0.25 {
		t.Errorf("Proportion() = %v, want 0.25", c.Proportion())
	}
	if c.AdjustLuminance(5).Proportion() != 0.25 {
		t.Error("adjustments should keep the proportion")
	}
}

func TestSwatch(t *testing.T) {
	prev := fatihcolor.NoColor
	fatihcolor.NoColor = true
	defer func() { fatihcolor.NoColor = prev }()

	if got := Swatch(New(255, 0, 0), 4); got != "    " {
		t.Errorf("Swatch() = %q, want 4 spaces", got)
	}
	if got := SwatchWithLabel(New(255, 0, 0), "red", 0); !strings.HasSuffix(got, "#ff0000") {
		t.Errorf("SwatchWithLabel() = %q, want hex suffix", got)
	}
}
