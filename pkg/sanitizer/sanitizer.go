// Package sanitizer applies an ordered rule list to single lines of text.
package sanitizer

import (
	"strings"

	"github.com/gpak-tools/textminator/pkg/stats"
	"github.com/gpak-tools/textminator/pkg/types"
	"github.com/rs/zerolog"
)

// Sanitizer rewrites lines with every enabled rule in order. Each rule sees
// the output of the rules before it.
type Sanitizer struct {
	rules          []*types.Rule
	stats          *stats.Collector
	suppressOutput bool
	tracer         zerolog.Logger
}

// Option configures a Sanitizer
type Option func(*Sanitizer)

// WithTraceLogger routes per-rule match tracing to logger
func WithTraceLogger(logger zerolog.Logger) Option {
	return func(s *Sanitizer) {
		s.tracer = logger
	}
}

// New returns a sanitizer for rules, which must already be sorted. Counters
// are kept when collectStats or suppressOutput is set, since a dry run only
// exists to report them.
func New(rules []*types.Rule, collectStats, suppressOutput bool, opts ...Option) *Sanitizer {
	s := &Sanitizer{
		rules:          rules,
		suppressOutput: suppressOutput,
		tracer:         zerolog.Nop(),
	}

	if collectStats || suppressOutput {
		s.stats = stats.NewCollector(types.RuleNames(rules)...)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SanitizeLine applies the rules to one line
func (s *Sanitizer) SanitizeLine(line string) types.LineResult {
	if line == "" || len(s.rules) == 0 {
		return types.LineResult{Line: line}
	}

	changed := false
	for _, rule := range s.rules {
		if !rule.Enabled() {
			continue
		}

		rewritten, matches := replace(rule, line)
		if matches == 0 {
			continue
		}

		line = rewritten
		changed = true

		s.tracer.Trace().
			Str("rule", rule.Name()).
			Int("matches", matches).
			Msg("Rule matched")

		if s.stats != nil {
			s.stats.Add(rule.Name(), int64(matches))
		}
	}

	return types.LineResult{Line: line, Changed: changed}
}

// replace substitutes every non-overlapping match of rule in line, expanding
// capture references in the replacement for each match
func replace(rule *types.Rule, line string) (string, int) {
	re := rule.Pattern()
	matches := re.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return line, 0
	}

	var b strings.Builder
	b.Grow(len(line))

	var expanded []byte
	last := 0
	for _, m := range matches {
		b.WriteString(line[last:m[0]])
		expanded = re.ExpandString(expanded[:0], rule.Replacement(), line, m)
		b.Write(expanded)
		last = m[1]
	}
	b.WriteString(line[last:])

	return b.String(), len(matches)
}

// Statistics returns the collector, or nil when statistics are off
func (s *Sanitizer) Statistics() *stats.Collector {
	return s.stats
}

// SuppressOutput reports whether sanitized lines should be discarded
func (s *Sanitizer) SuppressOutput() bool {
	return s.suppressOutput
}

// Rules returns the rule list in execution order
func (s *Sanitizer) Rules() []*types.Rule {
	return s.rules
}
