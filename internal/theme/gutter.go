package theme

import (
	"scopestyle/internal/color"
)

// GutterPalette holds the colours of the line-number gutter. Every field is
// concrete once built.
type GutterPalette struct {
	Divider         color.Color
	SelectionBorder color.Color

	Foreground   color.Color
	Background   color.Color
	Icons        color.Color
	IconsHover   color.Color
	IconsPressed color.Color

	SelectionForeground   color.Color
	SelectionBackground   color.Color
	SelectionIcons        color.Color
	SelectionIconsHover   color.Color
	SelectionIconsPressed color.Color
}

// gutterKeys maps gutterSettings keys to palette fields.
var gutterKeys = [...]struct {
	name  string
	field func(*GutterPalette) *color.Color
}{
	{"divider", func(p *GutterPalette) *color.Color { return &p.Divider }},
	{"selectionBorder", func(p *GutterPalette) *color.Color { return &p.SelectionBorder }},
	{"foreground", func(p *GutterPalette) *color.Color { return &p.Foreground }},
	{"background", func(p *GutterPalette) *color.Color { return &p.Background }},
	{"icons", func(p *GutterPalette) *color.Color { return &p.Icons }},
	{"iconsHover", func(p *GutterPalette) *color.Color { return &p.IconsHover }},
	{"iconsPressed", func(p *GutterPalette) *color.Color { return &p.IconsPressed }},
	{"selectionForeground", func(p *GutterPalette) *color.Color { return &p.SelectionForeground }},
	{"selectionBackground", func(p *GutterPalette) *color.Color { return &p.SelectionBackground }},
	{"selectionIcons", func(p *GutterPalette) *color.Color { return &p.SelectionIcons }},
	{"selectionIconsHover", func(p *GutterPalette) *color.Color { return &p.SelectionIconsHover }},
	{"selectionIconsPressed", func(p *GutterPalette) *color.Color { return &p.SelectionIconsPressed }},
}

// GutterKeys lists the recognised gutterSettings keys in palette order.
func GutterKeys() []string {
	keys := make([]string, len(gutterKeys))
	for i, key := range gutterKeys {
		keys[i] = key.name
	}
	return keys
}

// Color looks a palette colour up by its gutterSettings key.
func (p GutterPalette) Color(key string) (color.Color, bool) {
	for _, k := range gutterKeys {
		if k.name == key {
			return *k.field(&p), true
		}
	}
	return color.Blank, false
}

// BuildGutterPalette derives the gutter colours from the theme's global
// foreground and background. Overrides replace the derived value outright;
// blank overrides are ignored. Unset secondary colours then fall back along a
// fixed chain.
func BuildGutterPalette(fg, bg color.Color, overrides map[string]color.Color) GutterPalette {
	fg = fg.Or(color.White)
	bg = bg.Or(color.Black)

	p := GutterPalette{
		Divider:               color.Soften(fg, bg, 0.4),
		SelectionBorder:       color.Blank,
		Foreground:            color.Soften(fg, bg, 0.5),
		Background:            color.Soften(bg, fg, 0.87),
		Icons:                 color.Blank,
		IconsHover:            color.Blank,
		IconsPressed:          color.Blank,
		SelectionForeground:   color.Soften(fg, bg, 0.95),
		SelectionBackground:   color.Soften(bg, fg, 0.95),
		SelectionIcons:        color.Blank,
		SelectionIconsHover:   color.Blank,
		SelectionIconsPressed: color.Blank,
	}

	for _, key := range gutterKeys {
		if c, ok := overrides[key.name]; ok && !c.IsBlank() {
			*key.field(&p) = c
		}
	}

	p.SelectionBorder = p.SelectionBorder.Or(p.Divider)
	p.Icons = p.Icons.Or(p.Foreground)
	p.IconsHover = p.IconsHover.Or(p.Icons)
	p.IconsPressed = p.IconsPressed.Or(p.Icons)
	p.SelectionIcons = p.SelectionIcons.Or(p.SelectionForeground)
	p.SelectionIconsHover = p.SelectionIconsHover.Or(p.SelectionIcons)
	p.SelectionIconsPressed = p.SelectionIconsPressed.Or(p.SelectionIcons)
	return p
}

// IsTransparent reports whether the gutter background lets content show
// through.
func (p GutterPalette) IsTransparent() bool {
	return !p.Background.IsOpaque()
}

// parseGutterOverrides reads the document's gutterSettings; malformed entries
// are logged and skipped.
func parseGutterOverrides(settings Attributes) map[string]color.Color {
	if len(settings) == 0 {
		return nil
	}
	overrides := make(map[string]color.Color, len(settings))
	for _, key := range gutterKeys {
		raw, ok := settings[key.name]
		if !ok {
			continue
		}
		c, err := parseColorValue(raw)
		if err != nil {
			reportAttribute("gutterSettings", attributeParseError(key.name, raw, err))
			continue
		}
		overrides[key.name] = c
	}
	return overrides
}
