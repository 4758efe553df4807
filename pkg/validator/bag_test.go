package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestBag(t *testing.T) {
	t.Parallel()

	t.Run("overwrite keeps the first position", func(t *testing.T) {
		t.Parallel()
		b := validator.NewBag()
		b.Put("a", "min", "first a")
		b.Put("b", "max", "b")
		b.Put("a", "numeric", "second a")

		assert.Equal(t, []string{"second a", "b"}, b.Messages())
		assert.Equal(t, []string{"a", "b"}, b.Fields())
		msg, ok := b.Get("a")
		assert.True(t, ok)
		assert.Equal(t, "second a", msg)
		assert.Equal(t, "numeric", b.Entries()[0].Rule)
	})

	t.Run("unkeyed messages append", func(t *testing.T) {
		t.Parallel()
		b := validator.NewBag()
		b.Append("one")
		b.Put("a", "", "keyed")
		b.Append("two")

		assert.Equal(t, []string{"one", "two"}, b.Unkeyed())
		assert.Equal(t, map[string]string{"a": "keyed"}, b.Map())
		assert.Equal(t, "one|keyed|two", b.Join("|"))
		assert.Equal(t, 3, b.Len())
		assert.False(t, b.Has("one"))
	})

	t.Run("zero value is usable", func(t *testing.T) {
		t.Parallel()
		var b validator.Bag
		assert.True(t, b.Empty())
		b.Put("a", "", "x")
		assert.True(t, b.Has("a"))
		assert.NoError(t, validator.NewBag().Err())
	})
}

func TestValidator_ErrorSink(t *testing.T) {
	t.Parallel()

	t.Run("ErrorsString joins in insertion order", func(t *testing.T) {
		t.Parallel()
		v := validator.New(validator.WithCatalog(validator.Catalog{
			"required": "%s is required",
			"numeric":  "%s must be numeric",
		}))
		v.Validate(validator.Rules{
			{Field: "name", Rules: "name:Name|required"},
			{Field: "age", Rules: "name:Age|numeric"},
		}, validator.Data{"age": "abc"})

		assert.Equal(t, map[string]string{"name": "Name is required", "age": "Age must be numeric"}, v.Errors())
		assert.Equal(t, "Name is required<br>Age must be numeric", v.ErrorsString("<br>"))
		assert.Equal(t, "Name is required<br>Age must be numeric", v.ErrorsString())
		assert.Equal(t, "Name is required, Age must be numeric", v.ErrorsString(", "))
	})

	t.Run("custom default separator", func(t *testing.T) {
		t.Parallel()
		v := validator.New(validator.WithSeparator("\n"))
		v.AddError("one")
		v.AddError("two")
		assert.Equal(t, "one\ntwo", v.ErrorsString())
	})

	t.Run("added errors fail the pass and survive it", func(t *testing.T) {
		t.Parallel()
		v := validator.New()
		v.AddError("Something went wrong")
		v.AddError("Email is already taken", "email")

		assert.Equal(t, map[string]string{"email": "Email is already taken"}, v.Errors())
		assert.Equal(t, []string{"Something went wrong"}, v.Unkeyed())

		ok := v.Validate(validator.Rules{{Field: "email", Rules: "required|email"}}, validator.Data{"email": "john@example.com"})
		assert.False(t, ok)
		msg, has := v.FieldError("email")
		assert.True(t, has)
		assert.Equal(t, "Email is already taken", msg)
		assert.Equal(t, "Something went wrong<br>Email is already taken", v.ErrorsString())
	})

	t.Run("rule failure overwrites an added error", func(t *testing.T) {
		t.Parallel()
		v := validator.New()
		v.AddError("custom", "email")
		v.Validate(validator.Rules{{Field: "email", Rules: "email"}}, validator.Data{"email": "bad"})
		msg, _ := v.FieldError("email")
		assert.Equal(t, "The email field must be a valid email address", msg)
	})

	t.Run("Err returns translatable validation errors", func(t *testing.T) {
		t.Parallel()
		v := validator.New()
		v.Validate(validator.Rules{{Field: "age", Rules: "numeric"}}, validator.Data{"age": "x"})
		v.AddError("general")

		err := v.Err()
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
		assert.True(t, validator.IsValidationError(fmt.Errorf("wrapped: %w", err)))

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "age", verrs[0].Field)
		assert.Equal(t, "numeric", verrs[0].Rule)
		assert.Equal(t, "validation.numeric", verrs[0].TranslationKey)
		assert.Equal(t, map[string]any{"field": "age"}, verrs[0].TranslationValues)
		assert.Nil(t, verrs[1].TranslationValues)
		assert.Equal(t, "", verrs[1].TranslationKey)

		assert.True(t, verrs.Has("age"))
		assert.Equal(t, "The age field must be numeric", verrs.Get("age"))
		assert.Equal(t, []string{"age"}, verrs.Fields())
		assert.Equal(t, map[string][]string{"age": {"The age field must be numeric"}, "": {"general"}}, verrs.Details())
		assert.Equal(t, "validation failed: age: The age field must be numeric; general", err.Error())
	})

	t.Run("translation values carry label and parameter", func(t *testing.T) {
		t.Parallel()
		v := validator.New()
		v.Validate(validator.Rules{
			{Field: "pass", Rules: "name:Password|required"},
			{Field: "nick", Rules: "name:Nickname|min:3"},
			{Field: "confirm", Rules: "same:pass"},
		}, validator.Data{"pass": "secret", "nick": "ab", "confirm": "other"})

		verrs := validator.ExtractValidationErrors(v.Err())
		require.Len(t, verrs, 2)
		assert.Equal(t, "nick", verrs[0].Field)
		assert.Equal(t, map[string]any{"field": "Nickname", "param": "3"}, verrs[0].TranslationValues)
		assert.Equal(t, "confirm", verrs[1].Field)
		assert.Equal(t, map[string]any{"field": "confirm", "param": "Password"}, verrs[1].TranslationValues)

		entries := v.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "Nickname", entries[0].Label)
		assert.Equal(t, "3", entries[0].Param)
	})

	t.Run("extract helpers handle nil and foreign errors", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("x")))
		assert.False(t, validator.IsValidationError(nil))
		assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())
	})
}
