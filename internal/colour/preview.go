package colour

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const defaultSwatchWidth = 8

// Swatch returns a solid truecolor block for c, width cells wide.
// Output is plain spaces when colour output is disabled (color.NoColor).
func Swatch(c Color, width int) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}
	r, g, b, _ := c.RGBA8()
	return color.BgRGB(int(r), int(g), int(b)).Sprint(strings.Repeat(" ", width))
}

// SwatchWithLabel returns a swatch followed by a padded label and the colour's hex value.
func SwatchWithLabel(c Color, label string, width int) string {
	return fmt.Sprintf("%s  %-12s %s", Swatch(c, width), label, c.Hex())
}
