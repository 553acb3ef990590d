// Package color is the colour value used by themes: RGBA components in [0,1]
// plus a blank sentinel meaning "not specified".
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// darkThreshold is the perceptual luminance below which a colour counts as dark.
const darkThreshold = 0.5

// Color is an immutable RGBA colour. A negative red component marks the blank
// value; blank is distinct from black and from transparent.
type Color struct {
	R, G, B, A float64
}

var (
	// Blank means "attribute not set".
	Blank = Color{R: -1, A: 1}
	// White and Black are the opaque extremes.
	White = Color{R: 1, G: 1, B: 1, A: 1}
	Black = Color{A: 1}
)

// RGBA builds a colour, clamping every component into [0,1].
func RGBA(r, g, b, a float64) Color {
	return Color{R: clamp(r), G: clamp(g), B: clamp(b), A: clamp(a)}
}

// RGB builds an opaque colour.
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// IsBlank reports whether the colour is the "not set" sentinel.
func (c Color) IsBlank() bool { return c.R < 0 }

// IsOpaque reports whether alpha is exactly one.
func (c Color) IsOpaque() bool { return c.A == 1 }

// Or returns c unless it is blank, in which case fallback is returned.
func (c Color) Or(fallback Color) Color {
	if c.IsBlank() {
		return fallback
	}
	return c
}

// Luminance returns the perceptual brightness of the colour in [0,1].
func (c Color) Luminance() float64 {
	if c.IsBlank() {
		return 0
	}
	return 0.30*c.R + 0.59*c.G + 0.11*c.B
}

// IsDark reports whether the colour's luminance falls below the dark threshold.
func (c Color) IsDark() bool {
	return c.Luminance() < darkThreshold
}

// Colorful converts to a go-colorful value, dropping alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// FromColorful converts back from go-colorful with the given alpha.
func FromColorful(cf colorful.Color, alpha float64) Color {
	cf = cf.Clamped()
	return RGBA(cf.R, cf.G, cf.B, alpha)
}

// Hex formats the colour as #rrggbb, or #rrggbbaa when not opaque. Blank
// colours format as the empty string.
func (c Color) Hex() string {
	if c.IsBlank() {
		return ""
	}
	hex := c.Colorful().Clamped().Hex()
	if c.IsOpaque() {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, uint8(math.Round(clamp(c.A)*255)))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if c.IsBlank() {
		return "blank"
	}
	return c.Hex()
}

// Soften keeps fraction t of c and blends the remainder toward the colour
// "toward". The alpha of c is preserved.
func Soften(c, toward Color, t float64) Color {
	if c.IsBlank() {
		return c
	}
	if toward.IsBlank() {
		return c
	}
	t = clamp(t)
	return FromColorful(toward.Colorful().BlendRgb(c.Colorful(), t), c.A)
}

// Flatten composites a translucent colour over an opaque backdrop.
func Flatten(c, over Color) Color {
	if c.IsBlank() || c.IsOpaque() || over.IsBlank() {
		return c
	}
	return FromColorful(over.Colorful().BlendRgb(c.Colorful(), c.A), 1)
}

// ParseHex parses #RGB, #RGBA, #RRGGBB or #RRGGBBAA (case-insensitive, the
// leading '#' is required).
func ParseHex(s string) (Color, error) {
	raw := strings.TrimSpace(s)
	if !strings.HasPrefix(raw, "#") {
		return Blank, fmt.Errorf("colour %q: missing '#'", s)
	}
	digits := raw[1:]
	switch len(digits) {
	case 3, 4:
		var expanded strings.Builder
		for _, r := range digits {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		digits = expanded.String()
	case 6, 8:
	default:
		return Blank, fmt.Errorf("colour %q: expected 3, 4, 6 or 8 hex digits", s)
	}

	components := [4]float64{0, 0, 0, 1}
	for i := 0; i*2 < len(digits); i++ {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return Blank, fmt.Errorf("colour %q: %w", s, err)
		}
		components[i] = float64(v) / 255
	}
	return Color{R: components[0], G: components[1], B: components[2], A: components[3]}, nil
}

// MustParseHex is ParseHex for literals; it panics on malformed input.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
