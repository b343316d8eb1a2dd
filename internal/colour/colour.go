// Package colour provides the colour value type used to build and render schemes.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// MinTextContrast is the WCAG AA contrast ratio for normal text.
	MinTextContrast = 4.5

	// contrastStep is the lightness increment (L*/100) used when pushing a colour
	// away from another until a contrast ratio is met.
	contrastStep = 0.01
)

// Color is an sRGB colour with alpha, a dominance weight and a render format.
// The zero value is opaque black rendered as hex.
//
// All adjustments return a modified copy; a Color is never changed in place.
type Color struct {
	rgb colorful.Color

	// transparency is 1-alpha so the zero value is opaque.
	transparency float64
	proportion   float64
	format       Format
}

// New creates an opaque colour from 8-bit channels.
func New(r, g, b uint8) Color {
	return Color{rgb: colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}}
}

// FromColor converts a color.Color, keeping its alpha.
func FromColor(c color.Color) Color {
	_, _, _, a := c.RGBA()
	if a == 0 {
		return Color{transparency: 1}
	}
	col, _ := colorful.MakeColor(c)
	return Color{
		rgb:          col.Clamped(),
		transparency: 1 - float64(a)/65535.0,
	}
}

// ParseHex parses "#rrggbb" or "#rgb" (the hash is optional).
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return Color{rgb: col}, nil
}

// WithProportion returns a copy carrying the given dominance weight.
func (c Color) WithProportion(p float64) Color {
	c.proportion = p
	return c
}

// Proportion returns how prevalent the colour is in its source image, in [0,1].
func (c Color) Proportion() float64 { return c.proportion }

// Alpha returns the opacity in [0,1].
func (c Color) Alpha() float64 { return 1 - c.transparency }

// Format returns the format used by String.
func (c Color) Format() Format { return c.format }

// RGBA8 returns the 8-bit channels.
func (c Color) RGBA8() (r, g, b, a uint8) {
	r, g, b = c.rgb.Clamped().RGB255()
	return r, g, b, uint8(math.Round(c.Alpha() * 255))
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := c.RGBA8()
	return color.NRGBA{R: r8, G: g8, B: b8, A: a8}.RGBA()
}

// Luminance returns the perceptual lightness L* in [0,100].
func (c Color) Luminance() float64 {
	l, _, _ := c.rgb.Lab()
	return l * 100
}

// Hue returns the HSL hue in degrees.
func (c Color) Hue() float64 {
	h, _, _ := c.rgb.Hsl()
	return h
}

// relativeLuminance is the WCAG 2.0 relative luminance in [0,1].
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func (c Color) relativeLuminance() float64 {
	r, g, b := c.rgb.Clamped().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns the WCAG 2.0 contrast ratio against other, in [1,21].
func (c Color) Contrast(other Color) float64 {
	l1 := c.relativeLuminance()
	l2 := other.relativeLuminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// LuminanceDifference returns |L*/100 - target| for a target in [0,1].
func (c Color) LuminanceDifference(target float64) float64 {
	return math.Abs(c.Luminance()/100 - target)
}

// MinimumDistance returns the smallest CIEDE2000 distance between c and any colour
// in set. An empty set yields 1 so it acts as a neutral factor in products.
func (c Color) MinimumDistance(set []Color) float64 {
	if len(set) == 0 {
		return 1
	}
	minDist := math.MaxFloat64
	for _, other := range set {
		if d := c.rgb.DistanceCIEDE2000(other.rgb); d < minDist {
			minDist = d
		}
	}
	return minDist
}

// withLightness sets L* (as a fraction) keeping the Lab chroma, clamped into gamut.
func (c Color) withLightness(l float64) Color {
	l = math.Max(0, math.Min(1, l))
	_, a, b := c.rgb.Lab()
	c.rgb = colorful.Lab(l, a, b).Clamped()
	return c
}

// AdjustLuminance shifts L* by delta (in L* units, so 10 is a tenth of the range).
func (c Color) AdjustLuminance(delta float64) Color {
	l, _, _ := c.rgb.Lab()
	return c.withLightness(l + delta/100)
}

// AdjustMinMaxLuminance clamps L* against target. With atLeast the colour is
// raised to target if darker, otherwise lowered to target if lighter.
func (c Color) AdjustMinMaxLuminance(target float64, atLeast bool) Color {
	l := c.Luminance()
	if (atLeast && l < target) || (!atLeast && l > target) {
		return c.withLightness(target / 100)
	}
	return c
}

// AdjustMinContrast moves the colour lighter (or darker) until it reaches ratio
// against other, or the lightness range is exhausted.
func (c Color) AdjustMinContrast(ratio float64, other Color, lighter bool) Color {
	l, _, _ := c.rgb.Lab()
	for c.Contrast(other) < ratio {
		if lighter {
			if l >= 1 {
				break
			}
			l = math.Min(1, l+contrastStep)
		} else {
			if l <= 0 {
				break
			}
			l = math.Max(0, l-contrastStep)
		}
		c = c.withLightness(l)
	}
	return c
}

// AdjustContrastColor makes the colour readable on other by pushing it towards
// the light or dark pole until MinTextContrast is met.
func (c Color) AdjustContrastColor(other Color, lighter bool) Color {
	return c.AdjustMinContrast(MinTextContrast, other, lighter)
}

// AdjustHue replaces the HSL hue, keeping saturation and lightness.
func (c Color) AdjustHue(degrees float64) Color {
	_, s, l := c.rgb.Hsl()
	h := math.Mod(degrees, 360)
	if h < 0 {
		h += 360
	}
	c.rgb = colorful.Hsl(h, s, l).Clamped()
	return c
}

// AdjustAlpha sets the opacity, clamped to [0,1].
func (c Color) AdjustAlpha(fraction float64) Color {
	c.transparency = 1 - math.Max(0, math.Min(1, fraction))
	return c
}

// Multiply scales every channel by factor; factors below 1 darken towards black
// without changing hue.
func (c Color) Multiply(factor float64) Color {
	c.rgb = colorful.Color{
		R: c.rgb.R * factor,
		G: c.rgb.G * factor,
		B: c.rgb.B * factor,
	}.Clamped()
	return c
}

// WithFormat returns a copy rendered with the given format.
func (c Color) WithFormat(f Format) Color {
	c.format = f
	return c
}

// Hex returns "#rrggbb", or "#rrggbbaa" when the colour is translucent.
func (c Color) Hex() string {
	r, g, b, a := c.RGBA8()
	if a < 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// String renders the colour in its selected format.
func (c Color) String() string {
	r, g, b, a := c.RGBA8()
	switch c.format {
	case FormatHexAlpha:
		return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
	case FormatHexNoHash:
		return strings.TrimPrefix(c.Hex(), "#")
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	case FormatRGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(c.Alpha()))
	case FormatRGBDecimal:
		return fmt.Sprintf("%d,%d,%d", r, g, b)
	case FormatRGBADecimal:
		return fmt.Sprintf("%d,%d,%d,%s", r, g, b, formatAlpha(c.Alpha()))
	default:
		return c.Hex()
	}
}

func formatAlpha(a float64) string {
	return fmt.Sprintf("%.2f", a)
}
