package config

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gpak-tools/textminator/pkg/errors"
	"github.com/gpak-tools/textminator/pkg/types"
	"github.com/rs/zerolog"
)

// Rule key suffixes
const (
	SuffixRegex       = ".regex"
	SuffixReplacement = ".replacement"
	SuffixOrder       = ".order"
	SuffixEnabled     = ".enabled"
)

// DefaultReplacement is used when a rule has no replacement
const DefaultReplacement = "<REPLACED>"

// ParseRules groups a flat property map into rules sorted by execution order.
// A prefix with an empty or missing regex is skipped. Missing or malformed
// order is fatal; missing replacement and enabled fall back to defaults with a
// warning.
func ParseRules(props map[string]string, logger zerolog.Logger) ([]*types.Rule, error) {
	keys := make([]string, 0, len(props))
	for k := range props {
		if strings.HasSuffix(k, SuffixRegex) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	rules := make([]*types.Rule, 0, len(keys))
	for _, key := range keys {
		name := strings.TrimSuffix(key, SuffixRegex)
		regex := props[key]
		if regex == "" {
			logger.Debug().Str("rule", name).Msg("Skipping rule without regex")
			continue
		}

		rule, err := buildRule(name, regex, props, logger)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	if len(rules) == 0 {
		return nil, errors.New(errors.ErrNoRules, "no rules found in config file")
	}

	types.SortRules(rules)
	return rules, nil
}

func buildRule(name, regex string, props map[string]string, logger zerolog.Logger) (*types.Rule, error) {
	rawOrder, ok := props[name+SuffixOrder]
	if !ok {
		return nil, errors.Newf(errors.ErrConfigSyntax, "order is missing from rule: %s", name).
			WithDetail("rule", name)
	}

	order, err := strconv.Atoi(strings.TrimSpace(rawOrder))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigSyntax, "order is not an integer in rule: %s", name).
			WithDetail("rule", name).
			WithDetail("order", rawOrder)
	}

	replacement, ok := props[name+SuffixReplacement]
	if !ok || replacement == DefaultReplacement {
		logger.Warn().
			Str("rule", name).
			Str("default", DefaultReplacement).
			Msg("Property replacement is missing")
		replacement = DefaultReplacement
	}

	enabled := true
	if rawEnabled, ok := props[name+SuffixEnabled]; ok {
		enabled = strings.EqualFold(strings.TrimSpace(rawEnabled), "true")
	} else {
		logger.Warn().
			Str("rule", name).
			Bool("default", true).
			Msg("Property enabled is missing")
	}

	return types.NewRule(name, regex, replacement, order, enabled)
}
