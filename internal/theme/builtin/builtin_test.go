package builtin

import (
	"testing"

	"scopestyle/internal/color"
	"scopestyle/internal/theme"
)

// TestAllThemesRegistered verifies that all expected themes are bundled.
func TestAllThemesRegistered(t *testing.T) {
	expected := []string{
		"dracula",
		"gruvbox",
		"monokai",
		"nord",
		"solarized-dark",
		"solarized-light",
		"tokyonight",
	}

	available := Available()
	if len(available) != len(expected) {
		t.Fatalf("Available() = %v, want %v", available, expected)
	}
	for i, name := range expected {
		if available[i] != name {
			t.Errorf("Available()[%d] = %q, want %q", i, available[i], name)
		}
	}
}

// TestDocumentsParse verifies every bundled document builds a usable theme.
func TestDocumentsParse(t *testing.T) {
	seen := make(map[string]bool)
	for _, doc := range Documents() {
		th, err := theme.New(doc, "", 0)
		if err != nil {
			t.Fatalf("theme %q failed to parse: %v", doc.Name, err)
		}
		if seen[th.UUID()] {
			t.Errorf("duplicate uuid %s", th.UUID())
		}
		seen[th.UUID()] = true

		if th.ColorSpace() != theme.ColorSpaceSRGB {
			t.Errorf("theme %q: colour space %s", doc.Name, th.ColorSpace())
		}

		comment := th.StylesForScope("source.go comment.line.double-slash.go")
		if !comment.Italic {
			t.Errorf("theme %q: comments should be italic", doc.Name)
		}
		if comment.Foreground == th.Foreground() {
			t.Errorf("theme %q: comment colour should differ from the global foreground", doc.Name)
		}

		invalid := th.StylesForScope("source.go invalid.illegal")
		if invalid.Background == th.Background("") {
			t.Errorf("theme %q: invalid should stand out", doc.Name)
		}

		for _, key := range theme.GutterKeys() {
			if c, _ := th.GutterStyles().Color(key); c.IsBlank() {
				t.Errorf("theme %q: gutter %s blank", doc.Name, key)
			}
		}
	}
}

func TestDarkAndLightVariants(t *testing.T) {
	for name, wantDark := range map[string]bool{
		"solarized-dark":  true,
		"solarized-light": false,
		"dracula":         true,
	} {
		doc, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}
		th, err := theme.New(doc, "", 0)
		if err != nil {
			t.Fatalf("theme %q failed to parse: %v", name, err)
		}
		if th.IsDark() != wantDark {
			t.Errorf("%s: IsDark() = %v, want %v", name, th.IsDark(), wantDark)
		}
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	a, ok := Lookup("  Dracula ")
	if !ok {
		t.Fatal("Lookup should trim and lower-case names")
	}
	if a.UUID != UUID("dracula") {
		t.Errorf("uuid = %s, want %s", a.UUID, UUID("dracula"))
	}
	if _, ok := Lookup("nonexistent-theme"); ok {
		t.Error("Lookup of an unknown theme should fail")
	}
}

func TestUUIDIsStable(t *testing.T) {
	if UUID("nord") != UUID("nord") {
		t.Error("UUID should be deterministic")
	}
	if UUID("nord") == UUID("dracula") {
		t.Error("different themes should get different uuids")
	}
}

func TestLookupUUID(t *testing.T) {
	doc, ok := LookupUUID(UUID("monokai"))
	if !ok || doc.Name != "Monokai Pro" {
		t.Fatalf("LookupUUID(monokai) = %q, %v", doc.Name, ok)
	}
	if _, ok := LookupUUID("00000000-0000-0000-0000-000000000000"); ok {
		t.Error("unknown uuid should not resolve")
	}
}

func TestGutterOverridesApplied(t *testing.T) {
	doc, _ := Lookup("gruvbox")
	th, err := theme.New(doc, "", 0)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	p := th.GutterStyles()
	if p.Icons != color.MustParseHex(gruvbox.Yellow) {
		t.Errorf("icons = %v, want gruvbox yellow", p.Icons)
	}
	if p.IconsHover != p.Icons {
		t.Error("icons hover should follow the icons override")
	}
}

func TestDocumentsAreIndependentCopies(t *testing.T) {
	a, _ := Lookup("dracula")
	a.GutterSettings["divider"] = "#000000"
	b, _ := Lookup("dracula")
	if b.GutterSettings["divider"] == "#000000" {
		t.Error("mutating a returned document must not leak into the palette")
	}
}
