package theme

import (
	"scopestyle/internal/color"
)

// Rule is one parsed style rule. Colours are blank, FontName is empty,
// FontSize is negative and flags are Unset when the rule does not set them.
type Rule struct {
	Selector string
	Name     string

	Foreground color.Color
	Background color.Color
	Caret      color.Color
	Selection  color.Color
	Invisibles color.Color

	FontName string
	FontSize float64

	Bold          Tristate
	Italic        Tristate
	Underlined    Tristate
	Strikethrough Tristate
	Misspelled    Tristate

	order    int
	compiled selector
}

func newRule(selectorText string) Rule {
	return Rule{
		Selector:   selectorText,
		Foreground: color.Blank,
		Background: color.Blank,
		Caret:      color.Blank,
		Selection:  color.Blank,
		Invisibles: color.Blank,
		FontSize:   -1,
		compiled:   compileSelector(selectorText),
	}
}

// IsGlobal reports whether the rule applies to every scope.
func (r *Rule) IsGlobal() bool {
	return r.compiled.isEmpty()
}

// Order is the rule's position in the expanded document, used to break
// specificity ties.
func (r *Rule) Order() int {
	return r.order
}

// Style is the fully resolved style for a scope. Every field is concrete.
type Style struct {
	Foreground color.Color
	Background color.Color
	Caret      color.Color
	Selection  color.Color
	Invisibles color.Color

	FontName string
	FontSize float64

	Bold          bool
	Italic        bool
	Underlined    bool
	Strikethrough bool
	Misspelled    bool
}

// colorKeys maps document keys to the matching colour fields of a rule and a
// resolved style.
var colorKeys = [...]struct {
	name  string
	rule  func(*Rule) *color.Color
	style func(*Style) *color.Color
}{
	{"foreground", func(r *Rule) *color.Color { return &r.Foreground }, func(s *Style) *color.Color { return &s.Foreground }},
	{"background", func(r *Rule) *color.Color { return &r.Background }, func(s *Style) *color.Color { return &s.Background }},
	{"caret", func(r *Rule) *color.Color { return &r.Caret }, func(s *Style) *color.Color { return &s.Caret }},
	{"selection", func(r *Rule) *color.Color { return &r.Selection }, func(s *Style) *color.Color { return &s.Selection }},
	{"invisibles", func(r *Rule) *color.Color { return &r.Invisibles }, func(s *Style) *color.Color { return &s.Invisibles }},
}

// flagKeys maps decoration flags to rule and style fields. The fontStyle
// token is the word used inside the space-separated fontStyle attribute.
var flagKeys = [...]struct {
	name      string
	fontStyle bool
	rule      func(*Rule) *Tristate
	style     func(*Style) *bool
}{
	{"bold", true, func(r *Rule) *Tristate { return &r.Bold }, func(s *Style) *bool { return &s.Bold }},
	{"italic", true, func(r *Rule) *Tristate { return &r.Italic }, func(s *Style) *bool { return &s.Italic }},
	{"underline", true, func(r *Rule) *Tristate { return &r.Underlined }, func(s *Style) *bool { return &s.Underlined }},
	{"strikethrough", true, func(r *Rule) *Tristate { return &r.Strikethrough }, func(s *Style) *bool { return &s.Strikethrough }},
	{"misspelled", false, func(r *Rule) *Tristate { return &r.Misspelled }, func(s *Style) *bool { return &s.Misspelled }},
}

// apply overwrites the attributes of s that r sets concretely.
func (s Style) apply(r *Rule) Style {
	for _, key := range colorKeys {
		if c := *key.rule(r); !c.IsBlank() {
			*key.style(&s) = c
		}
	}
	for _, key := range flagKeys {
		if f := *key.rule(r); f.IsSet() {
			*key.style(&s) = f.Bool()
		}
	}
	if r.FontName != "" {
		s.FontName = r.FontName
	}
	if r.FontSize >= 0 {
		s.FontSize = r.FontSize
	}
	return s
}
