package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	t.Run("failing rule returns false without error", func(t *testing.T) {
		t.Parallel()
		ok, err := validator.Check("abc123", "alpha")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("passing rules", func(t *testing.T) {
		t.Parallel()
		ok, err := validator.Check("john@example.com", "required|email|max:50")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unknown rule is an error", func(t *testing.T) {
		t.Parallel()
		ok, err := validator.Check("abc", "bogus_rule")
		assert.False(t, ok)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrUnknownRule)

		var unknown *validator.UnknownRuleError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, "bogus_rule", unknown.Rule)
	})

	t.Run("unknown rule is reported even after known ones", func(t *testing.T) {
		t.Parallel()
		_, err := validator.Check("abc", "alpha|nope")
		assert.ErrorIs(t, err, validator.ErrUnknownRule)
	})

	t.Run("empty rule name does not resolve", func(t *testing.T) {
		t.Parallel()
		_, err := validator.Check("abc", "alpha||")
		assert.ErrorIs(t, err, validator.ErrUnknownRule)
	})

	t.Run("name rule is accepted", func(t *testing.T) {
		t.Parallel()
		ok, err := validator.Check("abc", "name:Label|alpha")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("does not touch the session", func(t *testing.T) {
		t.Parallel()
		v := validator.New()
		v.SetRules(validator.Rules{{Field: "a", Rules: "required"}}).SetData(validator.Data{"a": "x"})

		ok, err := v.Check("", "notNull")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v.Errors())
		assert.True(t, v.IsValid())
	})

	t.Run("uses the validator registry", func(t *testing.T) {
		t.Parallel()
		v := validator.New(validator.WithRule("yes", func(f validator.Field, _ string) bool {
			return f.Key == validator.CheckField && f.Value == "yes"
		}, ""))
		ok, err := v.Check("yes", "yes")
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = validator.Check("yes", "yes")
		assert.ErrorIs(t, err, validator.ErrUnknownRule)
	})
}
