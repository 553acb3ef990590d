package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
	"howett.net/plist"
)

// Format names a document serialisation.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatPlist Format = "plist"
)

// FormatFromPath guesses the serialisation from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".tmtheme", ".plist", ".xml":
		return FormatPlist, nil
	default:
		return "", fmt.Errorf("unrecognised theme file extension %q", filepath.Ext(path))
	}
}

// Decode parses raw bytes in the given format.
func Decode(data []byte, format Format) (Document, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	case FormatPlist:
		return DecodePlist(data)
	default:
		return Document{}, fmt.Errorf("unsupported theme format %q", format)
	}
}

// DecodeJSON parses a JSON theme document.
func DecodeJSON(data []byte) (Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, decodeError(FormatJSON, err)
	}
	return doc, nil
}

// DecodeYAML parses a YAML theme document.
func DecodeYAML(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, decodeError(FormatYAML, err)
	}
	return doc, nil
}

// DecodePlist parses a TextMate .tmTheme property list (XML, binary or
// OpenStep).
func DecodePlist(data []byte) (Document, error) {
	var doc Document
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		return Document{}, decodeError(FormatPlist, err)
	}
	return doc, nil
}

// EncodeJSON serialises a document; the catalog stores documents this way.
func EncodeJSON(doc Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode theme %s: %w", doc.UUID, err)
	}
	return data, nil
}
