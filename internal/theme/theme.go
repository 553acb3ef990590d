// Package theme resolves the visual style a theme assigns to a lexical scope.
//
// A Document is parsed once into an immutable RuleSet. A Theme pairs that
// RuleSet with a font and a private memo of resolved styles; themes that
// differ only in font share one RuleSet. A Registry maps theme uuids to
// Themes so the same document is not parsed repeatedly.
package theme

import (
	"strings"
	"sync"
	"sync/atomic"

	"scopestyle/internal/color"
)

const (
	DefaultFontName = "monospace"
	DefaultFontSize = 12
)

// CacheStats counts style lookups served from the memo versus computed.
type CacheStats struct {
	Hits   int64
	Misses int64
}

// Theme is a RuleSet bound to a font. It is safe for concurrent use.
type Theme struct {
	rules    *RuleSet
	fontName string
	fontSize float64

	cache  sync.Map // scope path -> Style
	hits   atomic.Int64
	misses atomic.Int64
}

// New parses doc and binds it to the given font. An empty name or
// non-positive size selects the defaults.
func New(doc Document, fontName string, fontSize float64) (*Theme, error) {
	rs, err := Parse(doc)
	if err != nil {
		return nil, err
	}
	return FromRuleSet(rs, fontName, fontSize), nil
}

// FromRuleSet binds an already parsed RuleSet to a font.
func FromRuleSet(rs *RuleSet, fontName string, fontSize float64) *Theme {
	fontName = strings.TrimSpace(fontName)
	if fontName == "" {
		fontName = DefaultFontName
	}
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	return &Theme{rules: rs, fontName: fontName, fontSize: fontSize}
}

// CopyWithFontNameAndSize returns a theme sharing this theme's rules with a
// different font and an empty cache. The font is taken as given.
func (t *Theme) CopyWithFontNameAndSize(fontName string, fontSize float64) *Theme {
	return &Theme{rules: t.rules, fontName: fontName, fontSize: fontSize}
}

func (t *Theme) UUID() string        { return t.rules.UUID }
func (t *Theme) Name() string        { return t.rules.Name }
func (t *Theme) FontName() string    { return t.fontName }
func (t *Theme) FontSize() float64   { return t.fontSize }
func (t *Theme) RuleSet() *RuleSet   { return t.rules }
func (t *Theme) IsDark() bool        { return t.rules.IsDark }
func (t *Theme) IsTransparent() bool { return t.rules.IsTransparent }

func (t *Theme) ColorSpace() ColorSpace { return t.rules.ColorSpace }

// Foreground is the global text colour.
func (t *Theme) Foreground() color.Color { return t.rules.Foreground }

// Background is the global background. fileType is reserved for per-type
// overrides and currently ignored.
func (t *Theme) Background(fileType string) color.Color {
	return t.rules.Background
}

// GutterStyles returns the derived gutter palette.
func (t *Theme) GutterStyles() GutterPalette { return t.rules.Gutter }

// StylesForScope resolves the style for a scope path such as
// "source.go meta.function entity.name.function". Results are memoized by
// the exact string.
func (t *Theme) StylesForScope(scopePath string) Style {
	if cached, ok := t.cache.Load(scopePath); ok {
		t.hits.Add(1)
		return cached.(Style)
	}
	t.misses.Add(1)
	style := t.rules.Resolve(scopePath, t.fontName, t.fontSize)
	actual, _ := t.cache.LoadOrStore(scopePath, style)
	return actual.(Style)
}

// StylesForScopes resolves several scope paths in order.
func (t *Theme) StylesForScopes(scopePaths ...string) []Style {
	styles := make([]Style, len(scopePaths))
	for i, scope := range scopePaths {
		styles[i] = t.StylesForScope(scope)
	}
	return styles
}

// CacheStats reports memo hits and cascade runs so far.
func (t *Theme) CacheStats() CacheStats {
	return CacheStats{Hits: t.hits.Load(), Misses: t.misses.Load()}
}

// CachedScopes returns the number of memoized scope paths.
func (t *Theme) CachedScopes() int {
	n := 0
	t.cache.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
