package theme

import (
	"slices"
)

type match struct {
	rule        *Rule
	specificity Specificity
}

// Matching returns the rules that apply to a scope path, ordered from least
// to most specific; equal specificity keeps document order.
func (rs *RuleSet) Matching(scopePath string) []*Rule {
	matches := rs.match(splitScopePath(scopePath))
	rules := make([]*Rule, len(matches))
	for i, m := range matches {
		rules[i] = m.rule
	}
	return rules
}

func (rs *RuleSet) match(path [][]string) []match {
	var matches []match
	for i := range rs.Rules {
		r := &rs.Rules[i]
		sp, ok := r.compiled.match(path)
		if !ok {
			continue
		}
		matches = append(matches, match{rule: r, specificity: sp})
	}
	slices.SortStableFunc(matches, func(a, b match) int {
		if c := a.specificity.Compare(b.specificity); c != 0 {
			return c
		}
		return a.rule.order - b.rule.order
	})
	return matches
}

// Resolve runs the cascade for one scope path without any caching. Each
// matching rule, least specific first, overwrites only the attributes it
// sets.
func (rs *RuleSet) Resolve(scopePath, fontName string, fontSize float64) Style {
	style := rs.base(fontName, fontSize)
	for _, m := range rs.match(splitScopePath(scopePath)) {
		style = style.apply(m.rule)
	}
	return style
}
