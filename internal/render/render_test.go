package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	appErrors "scopestyle/internal/errors"
	"scopestyle/internal/theme"
	"scopestyle/internal/theme/builtin"
)

func builtinTheme(t *testing.T, name string) *theme.Theme {
	t.Helper()
	doc, ok := builtin.Lookup(name)
	if !ok {
		t.Fatalf("builtin %q missing", name)
	}
	th, err := theme.New(doc, "", 0)
	if err != nil {
		t.Fatalf("theme.New returned error: %v", err)
	}
	return th
}

func trueColorSeq(t *testing.T, hex string) string {
	t.Helper()
	var rgb [3]uint64
	for i := range rgb {
		v, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			t.Fatalf("bad hex %q: %v", hex, err)
		}
		rgb[i] = v
	}
	return fmt.Sprintf("38;2;%d;%d;%d", rgb[0], rgb[1], rgb[2])
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name   string
		want   termenv.Profile
		forced bool
	}{
		{"", termenv.Ascii, false},
		{"auto", termenv.Ascii, false},
		{"TrueColor", termenv.TrueColor, true},
		{"256", termenv.ANSI256, true},
		{"16", termenv.ANSI, true},
		{"none", termenv.Ascii, true},
	}
	for _, tt := range tests {
		got, forced, err := ParseProfile(tt.name)
		if err != nil {
			t.Errorf("ParseProfile(%q) returned error: %v", tt.name, err)
			continue
		}
		if got != tt.want || forced != tt.forced {
			t.Errorf("ParseProfile(%q) = %v, %v; want %v, %v", tt.name, got, forced, tt.want, tt.forced)
		}
	}

	if _, _, err := ParseProfile("sepia"); !appErrors.IsCode(err, appErrors.CodeConfigurationError) {
		t.Errorf("expected configuration error, got %v", err)
	}
	if _, err := New(&bytes.Buffer{}, "sepia"); err == nil {
		t.Error("New should reject unknown profiles")
	}
}

func TestPreviewContent(t *testing.T) {
	th := builtinTheme(t, "dracula")
	r, err := New(&bytes.Buffer{}, ProfileNone)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	out := ansi.Strip(r.Preview(th, []string{"", "source.go comment.line", "source.go keyword.control"}, 120))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "(global)") {
		t.Errorf("global scope should be labelled, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "comment.line") || !strings.Contains(lines[1], "italic") {
		t.Errorf("comment line missing label or italic flag: %q", lines[1])
	}
	comment := th.StylesForScope("source.go comment.line")
	if !strings.Contains(lines[1], "fg="+comment.Foreground.Hex()) {
		t.Errorf("comment line missing foreground %s: %q", comment.Foreground.Hex(), lines[1])
	}
}

func TestPreviewTruncatesLabels(t *testing.T) {
	th := builtinTheme(t, "nord")
	r, err := New(&bytes.Buffer{}, ProfileNone)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	long := "source.go meta.function.declaration.go entity.name.function.go"
	out := ansi.Strip(r.Preview(th, []string{long}, 40))
	label, _, _ := strings.Cut(out, " fg=")
	if ansi.StringWidth(label) != 20 {
		t.Errorf("label width = %d, want 20: %q", ansi.StringWidth(label), label)
	}
	if !strings.HasSuffix(label, ellipsis) {
		t.Errorf("truncated label should end with an ellipsis: %q", label)
	}
}

func TestPreviewEmitsTrueColor(t *testing.T) {
	th := builtinTheme(t, "monokai")
	r, err := New(&bytes.Buffer{}, ProfileTrueColor)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if r.Profile() != termenv.TrueColor {
		t.Fatalf("profile = %v, want TrueColor", r.Profile())
	}

	out := r.Preview(th, []string{"source.js string.quoted"}, 80)
	want := trueColorSeq(t, th.StylesForScope("source.js string.quoted").Foreground.Hex())
	if !strings.Contains(out, want) {
		t.Errorf("expected %q in output %q", want, out)
	}
}

func TestStyleForFlags(t *testing.T) {
	th := builtinTheme(t, "gruvbox")
	r, err := New(&bytes.Buffer{}, ProfileTrueColor)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	heading := th.StylesForScope("text.md markup.heading.1")
	style := r.StyleFor(heading, th.Background(""))
	if !style.GetBold() {
		t.Error("heading should render bold")
	}
	if style.GetItalic() {
		t.Error("heading should not render italic")
	}

	misspelled := th.StylesForScope("text.md markup.misspelled")
	if !r.StyleFor(misspelled, th.Background("")).GetUnderline() {
		t.Error("misspelled text should render underlined")
	}
}

func TestGutterPreviewListsEveryKey(t *testing.T) {
	th := builtinTheme(t, "solarized-light")
	r, err := New(&bytes.Buffer{}, ProfileNone)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	out := ansi.Strip(r.GutterPreview(th))
	for _, key := range theme.GutterKeys() {
		c, _ := th.GutterStyles().Color(key)
		if !strings.Contains(out, key+" ") || !strings.Contains(out, c.Hex()) {
			t.Errorf("gutter preview missing %s (%s)", key, c.Hex())
		}
	}
}

func TestDescribe(t *testing.T) {
	th := builtinTheme(t, "tokyonight").CopyWithFontNameAndSize("Menlo", 13)
	got := Describe(th.StylesForScope("source.go comment"))
	for _, want := range []string{"fg=#", "bg=#", "italic", "font=Menlo 13pt"} {
		if !strings.Contains(got, want) {
			t.Errorf("Describe() = %q, missing %q", got, want)
		}
	}
	if strings.Contains(got, "bold") {
		t.Errorf("Describe() = %q, comment should not be bold", got)
	}
}
