package scheme

import (
	"math"
	"strconv"

	"github.com/jmylchreest/wallhue/internal/colour"
)

const (
	lightBackgroundFloor = 80.0 // min L* for a light background
	darkBackgroundCeil   = 10.0 // max L* for a dark background
	lightTextFloor       = 90.0 // min L* for light text
	darkTextCeil         = 10.0 // max L* for dark text

	// slotZeroContrast keeps colour0 distinguishable from the background.
	slotZeroContrast = 2.0

	// dimFactor derives colour7 from colour15.
	dimFactor = 0.75
)

// Canonical hues (degrees) forced onto the status roles.
const (
	hueRed    = 0.0
	hueGreen  = 120.0
	hueOrange = 30.0
	hueBlue   = 240.0
)

// Generate synthesises the scheme from src in a single pass.
//
// Every pick scores candidates by their distance to all previously committed
// colours, so the steps below must run in this order. Generate is meant to be
// called once per Scheme.
func (s *Scheme) Generate(src Source) {
	s.lightTheme = src.IsLight()
	s.dominant = src.DominantColors()

	s.logger.Debug("generating scheme", "light", s.lightTheme, "candidates", len(s.dominant))
	if len(s.dominant) == 0 {
		s.logger.Warn("no candidate colours, scheme will be black")
	}

	bg := s.pickBackground(s.lightTheme)
	s.commitRole(RoleBackground, bg)

	fg := s.pickText(!s.lightTheme)
	s.commitRole(RoleForeground, fg)

	s.generateSpecialColors()

	color0 := s.pickBackground(s.lightTheme).AdjustMinContrast(slotZeroContrast, bg, !s.lightTheme)
	s.commit("color0", color0)
	s.colors[0] = color0

	for i := 1; i <= 6; i++ {
		c := s.pickContrasting(!s.lightTheme)
		s.commit(slotName(i), c)
		s.colors[i] = c
	}

	color15 := s.pickText(!s.lightTheme)
	color7 := color15.Multiply(dimFactor)
	s.commit("color7", color7)
	s.commit("color15", color15)
	s.colors[7] = color7
	s.colors[15] = color15

	s.colors[8] = color0
	for i := 9; i <= 14; i++ {
		s.colors[i] = s.colors[i-8]
	}
}

// generateSpecialColors picks accent and the four status roles. Status roles get a
// canonical hue, then have their contrast restored since the rotation can lose it.
func (s *Scheme) generateSpecialColors() {
	bg := s.Background()

	s.commitRole(RoleAccent, s.pickContrasting(!s.lightTheme))

	for _, status := range []struct {
		role Role
		hue  float64
	}{
		{RoleError, hueRed},
		{RoleGood, hueGreen},
		{RoleWarning, hueOrange},
		{RoleInfo, hueBlue},
	} {
		c := s.pickContrasting(!s.lightTheme).
			AdjustHue(status.hue).
			AdjustContrastColor(bg, !s.lightTheme)
		s.commitRole(status.role, c)
	}
}

// pickBackground favours prevalent colours far from the opposite lightness extreme.
func (s *Scheme) pickBackground(findLight bool) colour.Color {
	target, opposite := darkBackgroundCeil, 1.0
	if findLight {
		target, opposite = lightBackgroundFloor, 0.0
	}

	return s.pick(func(c colour.Color) (colour.Color, float64) {
		c = c.AdjustMinMaxLuminance(target, findLight)
		dif := c.LuminanceDifference(opposite)
		return c, c.Proportion() * math.Pow(dif, 2) * c.MinimumDistance(s.used)
	})
}

// pickText favours prevalent colours with high contrast against the background.
func (s *Scheme) pickText(findLight bool) colour.Color {
	target := darkTextCeil
	if findLight {
		target = lightTextFloor
	}
	bg := s.Background()

	return s.pick(func(c colour.Color) (colour.Color, float64) {
		c = c.AdjustMinMaxLuminance(target, findLight)
		return c, c.Proportion() * c.Contrast(bg) * c.MinimumDistance(s.used)
	})
}

// pickContrasting ignores prevalence: it wants readable colours unlike any chosen so far.
func (s *Scheme) pickContrasting(findLight bool) colour.Color {
	bg := s.Background()

	return s.pick(func(c colour.Color) (colour.Color, float64) {
		c = c.AdjustContrastColor(bg, findLight)
		return c, c.Contrast(bg) * c.MinimumDistance(s.used)
	})
}

// pick returns the adjusted candidate with the highest positive score. Ties keep
// the first candidate; with no positive score the zero colour is returned.
func (s *Scheme) pick(score func(colour.Color) (colour.Color, float64)) colour.Color {
	var best colour.Color
	maxScore := 0.0
	for _, candidate := range s.dominant {
		adjusted, sc := score(candidate)
		if sc > maxScore {
			maxScore = sc
			best = adjusted
		}
	}
	return best
}

func (s *Scheme) commitRole(role Role, c colour.Color) {
	s.roles[role] = c
	s.commit(string(role), c)
}

func (s *Scheme) commit(name string, c colour.Color) {
	s.used = append(s.used, c)
	s.logger.Trace("committed colour", "name", name, "hex", c.Hex(), "used", len(s.used))
}

func slotName(i int) string {
	return "color" + strconv.Itoa(i)
}
