package config

import (
	"sort"

	"github.com/gpak-tools/textminator/pkg/errors"
	"github.com/gpak-tools/textminator/pkg/types"
	"github.com/rs/zerolog"
)

// OrderGroup lists the rules sharing one order value
type OrderGroup struct {
	Order int
	Names []string
}

// DuplicateOrders returns every order held by more than one rule, sorted by
// order. Names keep the order they have in rules.
func DuplicateOrders(rules []*types.Rule) []OrderGroup {
	byOrder := make(map[int][]string)
	for _, r := range rules {
		byOrder[r.Order()] = append(byOrder[r.Order()], r.Name())
	}

	var groups []OrderGroup
	for order, names := range byOrder {
		if len(names) > 1 {
			groups = append(groups, OrderGroup{Order: order, Names: names})
		}
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Order < groups[j].Order })
	return groups
}

// ValidateRules checks a loaded rule list before it is handed to the engine.
// Shared orders only produce warnings; the run goes on with the (order, name)
// sort.
func ValidateRules(rules []*types.Rule, logger zerolog.Logger) error {
	if len(rules) == 0 {
		return errors.New(errors.ErrNoRules, "no rules found")
	}

	if types.CountEnabled(rules) == 0 {
		return errors.New(errors.ErrAllRulesDisabled, "all rules are disabled").
			WithDetail("rules", types.RuleNames(rules))
	}

	groups := DuplicateOrders(rules)
	if len(groups) == 0 {
		return nil
	}

	logger.Warn().Int("groups", len(groups)).Msg("Multiple rules found with the same order")
	for _, g := range groups {
		logger.Warn().
			Int("order", g.Order).
			Strs("rules", g.Names).
			Msgf("%d rules have order: %d", len(g.Names), g.Order)
	}

	return nil
}
