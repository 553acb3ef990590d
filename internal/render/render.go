// Package render turns resolved theme styles into terminal output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"scopestyle/internal/color"
	appErrors "scopestyle/internal/errors"
	"scopestyle/internal/theme"
)

// Profile names accepted by ParseProfile.
const (
	ProfileAuto      = "auto"
	ProfileTrueColor = "truecolor"
	Profile256       = "256"
	Profile16        = "16"
	ProfileNone      = "none"
)

const (
	minLabelWidth = 8
	ellipsis      = "…"
	swatch        = "    "
)

// ParseProfile maps a profile name to a termenv profile. ok is false for
// "auto", meaning the output's own detection should be used.
func ParseProfile(name string) (profile termenv.Profile, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ProfileAuto:
		return termenv.Ascii, false, nil
	case ProfileTrueColor, "24bit":
		return termenv.TrueColor, true, nil
	case Profile256, "ansi256":
		return termenv.ANSI256, true, nil
	case Profile16, "ansi":
		return termenv.ANSI, true, nil
	case ProfileNone, "ascii":
		return termenv.Ascii, true, nil
	default:
		return termenv.Ascii, false, appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("unknown render profile %q", name), nil)
	}
}

// Renderer draws theme previews to one output.
type Renderer struct {
	lg *lipgloss.Renderer
}

// New creates a renderer writing to w with the named colour profile.
func New(w io.Writer, profile string) (*Renderer, error) {
	p, forced, err := ParseProfile(profile)
	if err != nil {
		return nil, err
	}
	lg := lipgloss.NewRenderer(w)
	if forced {
		lg.SetColorProfile(p)
	}
	return &Renderer{lg: lg}, nil
}

// Profile reports the colour profile in effect.
func (r *Renderer) Profile() termenv.Profile {
	return r.lg.ColorProfile()
}

// StyleFor converts a resolved style into a lipgloss style. Translucent
// colours are composited over canvas, normally the theme background.
func (r *Renderer) StyleFor(s theme.Style, canvas color.Color) lipgloss.Style {
	canvas = color.Flatten(canvas, color.Black).Or(color.Black)
	bg := color.Flatten(s.Background, canvas).Or(canvas)
	fg := color.Flatten(s.Foreground, bg)

	style := r.lg.NewStyle().
		Background(lipgloss.Color(bg.Hex())).
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underlined || s.Misspelled).
		Strikethrough(s.Strikethrough)
	if !fg.IsBlank() {
		style = style.Foreground(lipgloss.Color(fg.Hex()))
	}
	return style
}

// Preview renders one line per scope path: the scope drawn in its own style,
// then the resolved attributes. Scope labels are truncated to fit width.
func (r *Renderer) Preview(th *theme.Theme, scopes []string, width int) string {
	labelWidth := labelColumn(scopes, width)
	canvas := th.Background("")

	var b strings.Builder
	for _, scope := range scopes {
		s := th.StylesForScope(scope)
		label := scope
		if strings.TrimSpace(label) == "" {
			label = "(global)"
		}
		label = truncate.StringWithTail(label, uint(labelWidth), ellipsis)
		b.WriteString(r.StyleFor(s, canvas).Width(labelWidth).Render(label))
		b.WriteString(" ")
		b.WriteString(Describe(s))
		b.WriteString("\n")
	}
	return b.String()
}

// GutterPreview renders a swatch per gutter palette entry.
func (r *Renderer) GutterPreview(th *theme.Theme) string {
	palette := th.GutterStyles()
	canvas := color.Flatten(th.Background(""), color.Black).Or(color.Black)
	keys := theme.GutterKeys()

	keyWidth := 0
	for _, key := range keys {
		keyWidth = max(keyWidth, ansi.StringWidth(key))
	}

	var b strings.Builder
	for _, key := range keys {
		c, _ := palette.Color(key)
		flat := color.Flatten(c, canvas)
		sw := r.lg.NewStyle().Background(lipgloss.Color(flat.Hex())).Render(swatch)
		fmt.Fprintf(&b, "%s %-*s %s\n", sw, keyWidth, key, c.Hex())
	}
	return b.String()
}

// Describe summarises a resolved style as plain text.
func Describe(s theme.Style) string {
	parts := []string{
		"fg=" + s.Foreground.String(),
		"bg=" + s.Background.String(),
	}
	for _, flag := range []struct {
		on   bool
		name string
	}{
		{s.Bold, "bold"},
		{s.Italic, "italic"},
		{s.Underlined, "underline"},
		{s.Strikethrough, "strikethrough"},
		{s.Misspelled, "misspelled"},
	} {
		if flag.on {
			parts = append(parts, flag.name)
		}
	}
	if s.FontName != "" {
		parts = append(parts, fmt.Sprintf("font=%s %gpt", s.FontName, s.FontSize))
	}
	return strings.Join(parts, " ")
}

// labelColumn sizes the scope column: as wide as the longest scope but no
// more than half the available width.
func labelColumn(scopes []string, width int) int {
	longest := minLabelWidth
	for _, scope := range scopes {
		longest = max(longest, ansi.StringWidth(scope))
	}
	if width <= 0 {
		return longest
	}
	return max(minLabelWidth, min(longest, width/2))
}
