package image

import (
	"fmt"
	"image"

	"github.com/jmylchreest/wallhue/internal/colour"
)

// ThemeType represents whether a theme is light-on-dark or dark-on-light.
type ThemeType int

const (
	// ThemeAuto detects the theme type from the image's weighted lightness.
	ThemeAuto ThemeType = iota
	// ThemeDark is a dark theme (light text on dark background).
	ThemeDark
	// ThemeLight is a light theme (dark text on light background).
	ThemeLight
)

// String returns the string representation of a ThemeType.
func (t ThemeType) String() string {
	switch t {
	case ThemeDark:
		return "dark"
	case ThemeLight:
		return "light"
	case ThemeAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseThemeType parses "auto", "dark" or "light".
func ParseThemeType(s string) (ThemeType, error) {
	switch s {
	case "auto", "":
		return ThemeAuto, nil
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	default:
		return ThemeAuto, fmt.Errorf("invalid theme type: %s (valid: auto, dark, light)", s)
	}
}

// lightThreshold is the weighted mean L* above which an image reads as light.
const lightThreshold = 50.0

// Analysis is the result of analysing an image: its dominant colours and whether
// a scheme built from it should be light.
type Analysis struct {
	colours []colour.Color
	light   bool
}

// NewAnalysis builds an Analysis from already extracted colours.
// ThemeAuto classifies by the proportion-weighted mean lightness.
func NewAnalysis(colours []colour.Color, theme ThemeType) *Analysis {
	a := &Analysis{colours: colours}
	switch theme {
	case ThemeLight:
		a.light = true
	case ThemeDark:
		a.light = false
	default:
		a.light = WeightedLuminance(colours) > lightThreshold
	}
	return a
}

// Analyse extracts dominant colours from img and classifies it.
func Analyse(img image.Image, config ExtractorConfig) (*Analysis, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	extractor, err := NewExtractor(config.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to create extractor: %w", err)
	}

	colours, err := extractor.Extract(img, config.ColorCount)
	if err != nil {
		return nil, fmt.Errorf("failed to extract colours: %w", err)
	}

	return NewAnalysis(colours, config.Theme), nil
}

// IsLight reports whether the image calls for a light scheme.
func (a *Analysis) IsLight() bool {
	return a.light
}

// DominantColors returns the weighted candidate colours. The slice is a copy.
func (a *Analysis) DominantColors() []colour.Color {
	return append([]colour.Color(nil), a.colours...)
}

// WeightedLuminance returns the proportion-weighted mean L* of colours.
// Colours are weighted equally when no proportions are set.
func WeightedLuminance(colours []colour.Color) float64 {
	if len(colours) == 0 {
		return 0
	}

	total, weights := 0.0, 0.0
	for _, c := range colours {
		total += c.Luminance() * c.Proportion()
		weights += c.Proportion()
	}
	if weights > 0 {
		return total / weights
	}

	total = 0
	for _, c := range colours {
		total += c.Luminance()
	}
	return total / float64(len(colours))
}
