package types

import (
	"regexp"
	"sort"

	"github.com/gpak-tools/textminator/pkg/errors"
)

// Rule is a single sanitization directive. A Rule is immutable once built:
// its pattern is compiled by NewRule and never changes afterwards.
type Rule struct {
	name        string
	pattern     *regexp.Regexp
	replacement string
	order       int
	enabled     bool
}

// NewRule compiles pattern and builds a Rule. An invalid pattern is a
// configuration syntax error naming the rule.
func NewRule(name, pattern, replacement string, order int, enabled bool) (*Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigSyntax, "invalid regex in rule %q", name).
			WithDetail("rule", name).
			WithDetail("regex", pattern)
	}

	return &Rule{
		name:        name,
		pattern:     re,
		replacement: replacement,
		order:       order,
		enabled:     enabled,
	}, nil
}

// Name returns the rule name, the configuration key prefix
func (r *Rule) Name() string { return r.name }

// Pattern returns the compiled pattern
func (r *Rule) Pattern() *regexp.Regexp { return r.pattern }

// Replacement returns the replacement template
func (r *Rule) Replacement() string { return r.replacement }

// Order returns the execution order
func (r *Rule) Order() int { return r.order }

// Enabled reports whether the rule takes part in sanitization
func (r *Rule) Enabled() bool { return r.enabled }

// SortRules orders rules ascending by order, then by name.
func SortRules(rules []*Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].order != rules[j].order {
			return rules[i].order < rules[j].order
		}
		return rules[i].name < rules[j].name
	})
}

// RuleNames returns the names of rules in slice order
func RuleNames(rules []*Rule) []string {
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.name)
	}
	return names
}

// CountEnabled returns the number of enabled rules
func CountEnabled(rules []*Rule) int {
	count := 0
	for _, r := range rules {
		if r.enabled {
			count++
		}
	}
	return count
}
