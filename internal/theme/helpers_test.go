package theme

import (
	"testing"

	"scopestyle/internal/color"
)

func entry(scope string, attrs Attributes) Entry {
	return Entry{Scope: ScopeList(scope), Settings: attrs}
}

func testDocument(uuid string, entries ...Entry) Document {
	return Document{UUID: uuid, Name: "test " + uuid, Settings: entries}
}

func mustTheme(t *testing.T, doc Document) *Theme {
	t.Helper()
	th, err := New(doc, "", 0)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return th
}

func hex(s string) color.Color {
	return color.MustParseHex(s)
}
