package validator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestRules_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("object keeps key order", func(t *testing.T) {
		t.Parallel()
		var rules validator.Rules
		err := json.Unmarshal([]byte(`{"zeta": "required", "alpha": "email", "mid": "min:3"}`), &rules)
		require.NoError(t, err)
		assert.Equal(t, validator.Rules{
			{Field: "zeta", Rules: "required"},
			{Field: "alpha", Rules: "email"},
			{Field: "mid", Rules: "min:3"},
		}, rules)
	})

	t.Run("array form", func(t *testing.T) {
		t.Parallel()
		var rules validator.Rules
		err := json.Unmarshal([]byte(`[{"field": "b", "rules": "required"}, {"field": "a", "rules": "alpha"}]`), &rules)
		require.NoError(t, err)
		assert.Equal(t, validator.Rules{{Field: "b", Rules: "required"}, {Field: "a", Rules: "alpha"}}, rules)
	})

	t.Run("null yields nil", func(t *testing.T) {
		t.Parallel()
		rules := validator.Rules{{Field: "x", Rules: "required"}}
		require.NoError(t, json.Unmarshal([]byte(`null`), &rules))
		assert.Nil(t, rules)
	})

	t.Run("non-string rule is rejected", func(t *testing.T) {
		t.Parallel()
		var rules validator.Rules
		err := json.Unmarshal([]byte(`{"age": 18}`), &rules)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrInvalidRules)
	})

	t.Run("scalar is rejected", func(t *testing.T) {
		t.Parallel()
		var rules validator.Rules
		err := json.Unmarshal([]byte(`"required"`), &rules)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrInvalidRules)
	})

	t.Run("nested in a struct", func(t *testing.T) {
		t.Parallel()
		var req struct {
			Rules validator.Rules `json:"rules"`
			Data  validator.Data  `json:"data"`
		}
		err := json.Unmarshal([]byte(`{"rules": {"b": "required", "a": "required"}, "data": {"a": "1"}}`), &req)
		require.NoError(t, err)
		assert.Equal(t, "b", req.Rules[0].Field)
		assert.Equal(t, "a", req.Rules[1].Field)
		assert.Equal(t, validator.Data{"a": "1"}, req.Data)
	})
}

func TestRulesFromMap(t *testing.T) {
	t.Parallel()

	rules := validator.RulesFromMap(map[string]string{"c": "email", "a": "required", "b": "min:1"})
	assert.Equal(t, validator.Rules{
		{Field: "a", Rules: "required"},
		{Field: "b", Rules: "min:1"},
		{Field: "c", Rules: "email"},
	}, rules)
	assert.Equal(t, map[string]string{"c": "email", "a": "required", "b": "min:1"}, rules.Map())
}
