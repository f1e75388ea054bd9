package config

import (
	"bytes"
	"testing"

	"github.com/gpak-tools/textminator/pkg/errors"
	"github.com/gpak-tools/textminator/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRule(t *testing.T, name string, order int, enabled bool) *types.Rule {
	t.Helper()
	r, err := types.NewRule(name, name, "<"+name+">", order, enabled)
	require.NoError(t, err)
	return r
}

func TestValidateRules(t *testing.T) {
	t.Run("no_rules", func(t *testing.T) {
		err := ValidateRules(nil, zerolog.Nop())
		assert.True(t, errors.IsErrorCode(err, errors.ErrNoRules))
	})

	t.Run("all_disabled_is_distinct_from_no_rules", func(t *testing.T) {
		err := ValidateRules([]*types.Rule{
			mustRule(t, "a", 1, false),
			mustRule(t, "b", 2, false),
		}, zerolog.Nop())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAllRulesDisabled))
		assert.False(t, errors.IsErrorCode(err, errors.ErrNoRules))
		assert.Contains(t, err.Error(), "all rules are disabled")
	})

	t.Run("one_enabled_is_enough", func(t *testing.T) {
		err := ValidateRules([]*types.Rule{
			mustRule(t, "a", 1, false),
			mustRule(t, "b", 2, true),
		}, zerolog.Nop())
		assert.NoError(t, err)
	})

	t.Run("duplicate_orders_warn_only", func(t *testing.T) {
		var buf bytes.Buffer
		rules := []*types.Rule{
			mustRule(t, "a", 1, true),
			mustRule(t, "b", 1, true),
			mustRule(t, "c", 2, true),
		}

		err := ValidateRules(rules, zerolog.New(&buf))
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Multiple rules found with the same order")
		assert.Contains(t, buf.String(), "2 rules have order: 1")
		assert.Contains(t, buf.String(), `"rules":["a","b"]`)
	})
}

func TestDuplicateOrders(t *testing.T) {
	rules := []*types.Rule{
		mustRule(t, "x", 5, true),
		mustRule(t, "a", 1, true),
		mustRule(t, "y", 5, true),
		mustRule(t, "b", 1, false),
		mustRule(t, "solo", 3, true),
	}

	groups := DuplicateOrders(rules)
	assert.Equal(t, []OrderGroup{
		{Order: 1, Names: []string{"a", "b"}},
		{Order: 5, Names: []string{"x", "y"}},
	}, groups)

	assert.Empty(t, DuplicateOrders(rules[:2]))
}
