// Package builtin ships theme documents built from well-known editor
// palettes, so scopestyle is usable without any theme files on disk.
package builtin

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"scopestyle/internal/theme"
)

// palette names the semantic colours a bundled theme is generated from.
type palette struct {
	Title      string
	Background string
	Foreground string
	Caret      string
	Selection  string
	Invisibles string

	Comment   string
	Keyword   string
	Storage   string
	String    string
	Number    string
	Constant  string
	Function  string
	Type      string
	Parameter string
	Tag       string
	Invalid   string

	// Optional gutterSettings entries; unset keys derive from the globals.
	Gutter map[string]string
}

var palettes = map[string]palette{}

func register(name string, p palette) {
	palettes[name] = p
}

// uuidNamespace seeds the deterministic uuids of bundled themes.
var uuidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://scopestyle.dev/builtin"))

// UUID returns the stable identifier of a bundled theme.
func UUID(name string) string {
	return uuid.NewSHA1(uuidNamespace, []byte(name)).String()
}

// Available returns the names of all bundled themes in sorted order.
func Available() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the document of a bundled theme by name.
func Lookup(name string) (theme.Document, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	p, ok := palettes[key]
	if !ok {
		return theme.Document{}, false
	}
	return document(key, p), true
}

// LookupUUID returns the bundled document whose uuid is id.
func LookupUUID(id string) (theme.Document, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for name, p := range palettes {
		if UUID(name) == id {
			return document(name, p), true
		}
	}
	return theme.Document{}, false
}

// Documents returns every bundled document, ordered by name.
func Documents() []theme.Document {
	names := Available()
	docs := make([]theme.Document, 0, len(names))
	for _, name := range names {
		docs = append(docs, document(name, palettes[name]))
	}
	return docs
}

func document(name string, p palette) theme.Document {
	global := theme.Attributes{
		"foreground": p.Foreground,
		"background": p.Background,
		"caret":      p.Caret,
		"selection":  p.Selection,
	}
	if p.Invisibles != "" {
		global["invisibles"] = p.Invisibles
	}

	entries := []theme.Entry{
		{Settings: global},
		rule("Comment", "comment, punctuation.definition.comment", p.Comment, "italic"),
		rule("Keyword", "keyword, keyword.operator.word", p.Keyword, ""),
		rule("Operator", "keyword.operator", p.Foreground, ""),
		rule("Storage", "storage, storage.type", p.Storage, ""),
		rule("String", "string, punctuation.definition.string", p.String, ""),
		rule("Escape", "constant.character.escape", p.Constant, ""),
		rule("Number", "constant.numeric", p.Number, ""),
		rule("Constant", "constant.language, constant.other, support.constant", p.Constant, ""),
		rule("Function", "entity.name.function, support.function, meta.function-call entity.name", p.Function, ""),
		rule("Type", "entity.name.type, entity.name.class, support.type, support.class", p.Type, ""),
		rule("Inherited class", "entity.other.inherited-class", p.Type, "italic"),
		rule("Parameter", "variable.parameter", p.Parameter, "italic"),
		rule("Tag", "entity.name.tag", p.Tag, ""),
		rule("Attribute", "entity.other.attribute-name", p.Function, "italic"),
		rule("Heading", "markup.heading", p.Keyword, "bold"),
		rule("Emphasis", "markup.italic", "", "italic"),
		rule("Strong", "markup.bold", "", "bold"),
		rule("Underline", "markup.underline", "", "underline"),
		rule("Deleted", "markup.deleted", p.Invalid, "strikethrough"),
		rule("Inserted", "markup.inserted", p.String, ""),
		{
			Name:  "Invalid",
			Scope: "invalid",
			Settings: theme.Attributes{
				"foreground": p.Background,
				"background": p.Invalid,
			},
		},
		{
			Name:     "Misspelled",
			Scope:    "markup.misspelled, text spelling.error",
			Settings: theme.Attributes{"misspelled": true},
		},
	}

	var gutter theme.Attributes
	if len(p.Gutter) > 0 {
		gutter = make(theme.Attributes, len(p.Gutter))
		for k, v := range p.Gutter {
			gutter[k] = v
		}
	}

	return theme.Document{
		UUID:           UUID(name),
		Name:           p.Title,
		ColorSpaceName: string(theme.ColorSpaceSRGB),
		Settings:       entries,
		GutterSettings: gutter,
	}
}

func rule(name, scope, fg, fontStyle string) theme.Entry {
	attrs := theme.Attributes{}
	if fg != "" {
		attrs["foreground"] = fg
	}
	if fontStyle != "" {
		attrs["fontStyle"] = fontStyle
	}
	return theme.Entry{Name: name, Scope: theme.ScopeList(scope), Settings: attrs}
}
