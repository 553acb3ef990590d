package theme

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"scopestyle/internal/color"
	"scopestyle/internal/debug"
)

// decodeRule interprets the raw attributes of one settings entry. Malformed
// attributes are logged and left unset; they never fail the document.
func decodeRule(entry Entry) Rule {
	r := newRule(entry.Scope.String())
	r.Name = entry.Name
	attrs := entry.Settings

	for _, key := range colorKeys {
		raw, ok := attrs[key.name]
		if !ok {
			continue
		}
		c, err := parseColorValue(raw)
		if err != nil {
			reportAttribute(r.Selector, attributeParseError(key.name, raw, err))
			continue
		}
		*key.rule(&r) = c
	}

	if raw, ok := attrs["fontStyle"]; ok {
		applyFontStyle(&r, raw)
	}

	if raw, ok := attrs["misspelled"]; ok {
		b, err := parseBoolValue(raw)
		if err != nil {
			reportAttribute(r.Selector, attributeParseError("misspelled", raw, err))
		} else {
			r.Misspelled = TristateOf(b)
		}
	}

	if raw, ok := attrs["fontName"]; ok {
		if name, isString := raw.(string); isString && strings.TrimSpace(name) != "" {
			r.FontName = strings.TrimSpace(name)
		} else {
			reportAttribute(r.Selector, attributeParseError("fontName", raw, fmt.Errorf("expected a non-empty string")))
		}
	}

	if raw, ok := attrs["fontSize"]; ok {
		size, err := parseNumberValue(raw)
		if err != nil || size < 0 {
			if err == nil {
				err = fmt.Errorf("negative size")
			}
			reportAttribute(r.Selector, attributeParseError("fontSize", raw, err))
		} else {
			r.FontSize = size
		}
	}

	return r
}

// applyFontStyle handles the space-separated fontStyle attribute. Its presence
// makes every font style flag definite: listed ones true, the rest false.
func applyFontStyle(r *Rule, raw any) {
	text, ok := raw.(string)
	if !ok {
		reportAttribute(r.Selector, attributeParseError("fontStyle", raw, fmt.Errorf("expected a string")))
		return
	}

	present := make(map[string]bool)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		present[token] = true
	}
	for _, key := range flagKeys {
		if !key.fontStyle {
			continue
		}
		*key.rule(r) = TristateOf(present[key.name])
		delete(present, key.name)
	}
	delete(present, "plain")
	delete(present, "normal")
	for token := range present {
		reportAttribute(r.Selector, attributeParseError("fontStyle", token, fmt.Errorf("unknown font style")))
	}
}

func parseColorValue(raw any) (color.Color, error) {
	text, ok := raw.(string)
	if !ok {
		return color.Blank, fmt.Errorf("expected a colour string, got %T", raw)
	}
	return color.ParseHex(text)
}

func parseBoolValue(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(v))
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return false, err
		}
		return n != 0, nil
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case uint64:
		return v != 0, nil
	default:
		return false, fmt.Errorf("expected a boolean, got %T", raw)
	}
}

func parseNumberValue(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0, fmt.Errorf("expected a number, got %T", raw)
	}
}

func reportAttribute(selectorText string, err error) {
	if selectorText == "" {
		selectorText = "<global>"
	}
	debug.Logf("theme: ignoring %v (selector %q)", err, selectorText)
}
