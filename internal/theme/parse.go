package theme

import (
	"strings"

	"scopestyle/internal/color"
	"scopestyle/internal/debug"
)

// ColorSpace names the colour space a theme's components are expressed in.
type ColorSpace string

const (
	ColorSpaceGenericRGB ColorSpace = "genericRGB"
	ColorSpaceSRGB       ColorSpace = "sRGB"
	ColorSpaceDisplayP3  ColorSpace = "displayP3"

	ColorSpaceDisplayP3PQ       ColorSpace = "displayP3_PQ"
	ColorSpaceExtendedDisplayP3 ColorSpace = "extendedDisplayP3"
	ColorSpaceExtendedITUR2020  ColorSpace = "extendedITUR_2020"
	ColorSpaceITUR2020PQ        ColorSpace = "itur_2020_PQ"
	ColorSpaceITUR2020SRGBGamma ColorSpace = "itur_2020_sRGBGamma"
	ColorSpaceITUR2100HLG       ColorSpace = "itur_2100_HLG"
	ColorSpaceITUR2100PQ        ColorSpace = "itur_2100_PQ"
	ColorSpaceITUR709HLG        ColorSpace = "itur_709_HLG"
	ColorSpaceITUR709PQ         ColorSpace = "itur_709_PQ"
	ColorSpaceLinearDisplayP3   ColorSpace = "linearDisplayP3"
	ColorSpaceLinearITUR2020    ColorSpace = "linearITUR_2020"
)

// colorSpaces lists every recognised name. Components are stored as given
// whatever the space; the name is informational.
var colorSpaces = []ColorSpace{
	ColorSpaceGenericRGB,
	ColorSpaceSRGB,
	ColorSpaceDisplayP3,
	ColorSpaceDisplayP3PQ,
	ColorSpaceExtendedDisplayP3,
	ColorSpaceExtendedITUR2020,
	ColorSpaceITUR2020PQ,
	ColorSpaceITUR2020SRGBGamma,
	ColorSpaceITUR2100HLG,
	ColorSpaceITUR2100PQ,
	ColorSpaceITUR709HLG,
	ColorSpaceITUR709PQ,
	ColorSpaceLinearDisplayP3,
	ColorSpaceLinearITUR2020,
}

// invisibleSelector is the reserved decoration scope under which invisibles
// colours are exposed to the cascade.
const invisibleSelector = "deco.invisible"

// InvisibleScope is the scope to query for how invisibles render.
const InvisibleScope = invisibleSelector

// RuleSet is the parsed, immutable form of a document. It is shared by every
// Theme built from the same document regardless of font.
type RuleSet struct {
	UUID       string
	Name       string
	ColorSpace ColorSpace

	// Rules[0] is always the global rule.
	Rules []Rule

	Foreground    color.Color
	Background    color.Color
	IsDark        bool
	IsTransparent bool
	Gutter        GutterPalette
}

// Parse builds a RuleSet from a document. The only fatal problem is a missing
// uuid; malformed attributes and unknown colour spaces are recovered.
func Parse(doc Document) (*RuleSet, error) {
	uuid := strings.TrimSpace(doc.UUID)
	if uuid == "" {
		return nil, invalidThemeError("missing uuid")
	}

	rs := &RuleSet{
		UUID:       uuid,
		Name:       strings.TrimSpace(doc.Name),
		ColorSpace: resolveColorSpace(doc.ColorSpaceName),
	}

	expanded := make([]Rule, 0, len(doc.Settings)+1)
	global := -1
	for _, entry := range doc.Settings {
		r := decodeRule(entry)
		r.order = len(expanded)
		if global < 0 && r.IsGlobal() {
			global = len(expanded)
		}
		expanded = append(expanded, r)

		if !r.Invisibles.IsBlank() {
			deco := newRule(appendSegment(r.Selector, invisibleSelector))
			deco.Foreground = r.Invisibles
			deco.order = len(expanded)
			expanded = append(expanded, deco)
		}
	}

	rs.Rules = make([]Rule, 0, len(expanded)+1)
	if global < 0 {
		rs.Rules = append(rs.Rules, defaultGlobalRule())
		for i := range expanded {
			expanded[i].order++
		}
		rs.Rules = append(rs.Rules, expanded...)
	} else {
		rs.Rules = append(rs.Rules, expanded[global])
		rs.Rules = append(rs.Rules, expanded[:global]...)
		rs.Rules = append(rs.Rules, expanded[global+1:]...)
	}

	rs.Foreground = rs.Rules[0].Foreground.Or(color.White)
	rs.Background = rs.Rules[0].Background.Or(color.Black)
	rs.IsDark = rs.Background.IsDark()
	rs.IsTransparent = rs.Background.A < 1
	rs.Gutter = BuildGutterPalette(rs.Foreground, rs.Background, parseGutterOverrides(doc.GutterSettings))

	debug.Logf("theme: parsed %s (%q) with %d rules, colour space %s", rs.UUID, rs.Name, len(rs.Rules), rs.ColorSpace)
	return rs, nil
}

// defaultGlobalRule stands in for documents without an unscoped entry.
func defaultGlobalRule() Rule {
	r := newRule("")
	r.Name = "default"
	r.Foreground = color.White
	r.Background = color.Black
	return r
}

func resolveColorSpace(name string) ColorSpace {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ColorSpaceGenericRGB
	}
	for _, cs := range colorSpaces {
		if strings.EqualFold(trimmed, string(cs)) {
			return cs
		}
	}
	debug.Logf("theme: %v, using %s", unknownColorSpaceError(trimmed), ColorSpaceGenericRGB)
	return ColorSpaceGenericRGB
}

// base is the style every cascade starts from.
func (rs *RuleSet) base(fontName string, fontSize float64) Style {
	return Style{
		Foreground: rs.Foreground,
		Background: rs.Background,
		Caret:      rs.Foreground,
		Selection:  color.Soften(rs.Background, rs.Foreground, 0.8),
		Invisibles: color.Soften(rs.Foreground, rs.Background, 0.4),
		FontName:   fontName,
		FontSize:   fontSize,
	}
}
