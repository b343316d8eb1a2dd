package colour

// Format selects how a Color renders as text.
type Format int

const (
	FormatHex         Format = iota // #RRGGBB (#RRGGBBAA when translucent)
	FormatHexAlpha                  // #RRGGBBAA
	FormatHexNoHash                 // RRGGBB (for Hyprland)
	FormatRGB                       // rgb(r, g, b)
	FormatRGBA                      // rgba(r, g, b, a)
	FormatRGBDecimal                // r,g,b
	FormatRGBADecimal               // r,g,b,a
)

var formatTokens = map[string]Format{
	"hex":         FormatHex,
	"hexalpha":    FormatHexAlpha,
	"hexnohash":   FormatHexNoHash,
	"rgb":         FormatRGB,
	"rgba":        FormatRGBA,
	"rgbdecimal":  FormatRGBDecimal,
	"rgbadecimal": FormatRGBADecimal,
}

// ParseFormat maps a format token such as "rgba" to its Format.
func ParseFormat(token string) (Format, bool) {
	f, ok := formatTokens[token]
	return f, ok
}

// IsValidFormat reports whether token names a supported format.
func IsValidFormat(token string) bool {
	_, ok := formatTokens[token]
	return ok
}

// String returns the token for the format.
func (f Format) String() string {
	for token, format := range formatTokens {
		if format == f {
			return token
		}
	}
	return "unknown"
}

// FormatTokens lists the supported format tokens in declaration order.
func FormatTokens() []string {
	return []string{"hex", "hexalpha", "hexnohash", "rgb", "rgba", "rgbdecimal", "rgbadecimal"}
}
