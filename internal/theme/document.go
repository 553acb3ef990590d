package theme

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Document is a theme as supplied by the caller, already decoded from JSON,
// YAML or a TextMate property list.
type Document struct {
	UUID           string     `json:"uuid" yaml:"uuid" plist:"uuid"`
	Name           string     `json:"name,omitempty" yaml:"name,omitempty" plist:"name,omitempty"`
	ColorSpaceName string     `json:"colorSpaceName,omitempty" yaml:"colorSpaceName,omitempty" plist:"colorSpaceName,omitempty"`
	Settings       []Entry    `json:"settings" yaml:"settings" plist:"settings"`
	GutterSettings Attributes `json:"gutterSettings,omitempty" yaml:"gutterSettings,omitempty" plist:"gutterSettings,omitempty"`
}

// Entry is one item of the ordered settings list. An empty Scope marks an
// unscoped (global) entry.
type Entry struct {
	Name     string     `json:"name,omitempty" yaml:"name,omitempty" plist:"name,omitempty"`
	Scope    ScopeList  `json:"scope,omitempty" yaml:"scope,omitempty" plist:"scope,omitempty"`
	Settings Attributes `json:"settings" yaml:"settings" plist:"settings"`
}

// Attributes holds the raw attribute values of an entry. Values keep whatever
// type the decoder produced; the parser interprets them through its key tables.
type Attributes map[string]any

// ScopeList is a selector string. JSON and YAML documents may also spell it as
// a list of selectors, which is joined into comma alternatives.
type ScopeList string

// UnmarshalJSON accepts a string or an array of strings.
func (s *ScopeList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = ScopeList(single)
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("scope must be a string or list of strings: %w", err)
	}
	*s = ScopeList(strings.Join(many, ", "))
	return nil
}

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (s *ScopeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*s = ScopeList(value.Value)
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*s = ScopeList(strings.Join(many, ", "))
		return nil
	default:
		return fmt.Errorf("line %d: scope must be a string or list of strings", value.Line)
	}
}

// String returns the trimmed selector text.
func (s ScopeList) String() string {
	return strings.TrimSpace(string(s))
}
