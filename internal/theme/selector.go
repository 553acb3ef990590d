package theme

import (
	"strings"
)

// Specificity orders matching selectors. Components counts the dot-delimited
// components matched against the queried scope; Ancestors counts the extra
// descendant segments satisfied by outer scopes. Components always dominates.
type Specificity struct {
	Components int
	Ancestors  int
}

// Compare returns -1, 0 or +1.
func (s Specificity) Compare(o Specificity) int {
	switch {
	case s.Components != o.Components:
		if s.Components < o.Components {
			return -1
		}
		return 1
	case s.Ancestors != o.Ancestors:
		if s.Ancestors < o.Ancestors {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// selector is a compiled comma-separated list of alternatives. Each
// alternative is a list of segments, outermost first; each segment is a list
// of dot-delimited components.
type selector struct {
	alternatives [][][]string
}

func compileSelector(text string) selector {
	var sel selector
	for _, alt := range strings.Split(text, ",") {
		fields := strings.Fields(alt)
		if len(fields) == 0 {
			continue
		}
		segments := make([][]string, 0, len(fields))
		for _, f := range fields {
			segments = append(segments, splitComponents(f))
		}
		sel.alternatives = append(sel.alternatives, segments)
	}
	return sel
}

func (s selector) isEmpty() bool {
	return len(s.alternatives) == 0
}

// match reports whether the selector applies to the scope path and, if so,
// the best specificity among its alternatives. The empty selector matches
// everything with zero specificity.
func (s selector) match(path [][]string) (Specificity, bool) {
	if s.isEmpty() {
		return Specificity{}, true
	}
	if len(path) == 0 {
		return Specificity{}, false
	}

	var (
		best  Specificity
		found bool
	)
	for _, segments := range s.alternatives {
		sp, ok := matchAlternative(segments, path)
		if !ok {
			continue
		}
		if !found || sp.Compare(best) > 0 {
			best = sp
			found = true
		}
	}
	return best, found
}

// matchAlternative requires the last segment to prefix the queried scope and
// every earlier segment to prefix some ancestor, in order.
func matchAlternative(segments [][]string, path [][]string) (Specificity, bool) {
	last := len(segments) - 1
	target := len(path) - 1
	if !hasPrefix(path[target], segments[last]) {
		return Specificity{}, false
	}

	// Walk ancestors right to left; taking the nearest match greedily is
	// enough for an in-order subsequence test.
	scope := target - 1
	for seg := last - 1; seg >= 0; seg-- {
		for scope >= 0 && !hasPrefix(path[scope], segments[seg]) {
			scope--
		}
		if scope < 0 {
			return Specificity{}, false
		}
		scope--
	}
	return Specificity{Components: len(segments[last]), Ancestors: last}, true
}

func hasPrefix(scope, prefix []string) bool {
	if len(prefix) > len(scope) {
		return false
	}
	for i, component := range prefix {
		if scope[i] != component {
			return false
		}
	}
	return true
}

func splitComponents(scope string) []string {
	return strings.Split(scope, ".")
}

// splitScopePath breaks a space-separated scope path into scopes of
// dot-delimited components.
func splitScopePath(path string) [][]string {
	fields := strings.Fields(path)
	scopes := make([][]string, 0, len(fields))
	for _, f := range fields {
		scopes = append(scopes, splitComponents(f))
	}
	return scopes
}

// appendSegment adds a trailing descendant segment to every alternative of a
// selector, or returns the segment alone for an unscoped selector.
func appendSegment(selectorText, segment string) string {
	var alternatives []string
	for _, alt := range strings.Split(selectorText, ",") {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			continue
		}
		alternatives = append(alternatives, alt+" "+segment)
	}
	if len(alternatives) == 0 {
		return segment
	}
	return strings.Join(alternatives, ", ")
}
