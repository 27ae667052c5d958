package form_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func userSchema() *form.Schema {
	return form.NewSchema(
		form.WithField("first_name", form.String{Base: form.Base{NotEmpty: true}}),
		form.WithField("last_name", form.String{}),
		form.WithField("email", form.Email{}),
		form.WithField("username", form.String{Max: 10}),
		form.WithField("subscribe", form.Bool{}),
	)
}

func passwordSchema() *form.Schema {
	return form.NewSchema(
		form.WithField("email", form.Email{Base: form.Base{NotEmpty: true}}),
		form.WithField("password", form.SecurePassword{}),
		form.WithField("password_confirm", form.String{}),
		form.WithChained(form.FieldsMatch("password", "password_confirm")),
	)
}

func validationErrors(t *testing.T, err error) validator.ValidationErrors {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, validator.ErrValidationFailed)
	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs, "expected validator.ValidationErrors, got %T", err)
	return verrs
}

func TestSchemaConvertMap(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		out, err := userSchema().ConvertMap(map[string]any{
			"first_name": "Karl",
			"last_name":  "Shouler",
			"email":      "karl@monetate.com",
			"username":   "kmano8",
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"first_name": "Karl",
			"last_name":  "Shouler",
			"email":      "karl@monetate.com",
			"username":   "kmano8",
			"subscribe":  false,
		}, out)
	})

	t.Run("reports every failing field", func(t *testing.T) {
		_, err := userSchema().ConvertMap(map[string]any{
			"first_name": "",
			"last_name":  "Shouler",
			"email":      "karlmonetate",
			"username":   "Follow where you lead",
			"subscribe":  "on",
		})
		verrs := validationErrors(t, err)
		assert.Equal(t, []string{"first_name", "email", "username"}, verrs.Fields())
		assert.Equal(t, []string{"Please enter a value"}, verrs.Get("first_name"))
		assert.Equal(t, []string{"An email address must contain a single @"}, verrs.Get("email"))
		assert.Equal(t, []string{"Enter a value less than 10 characters long"}, verrs.Get("username"))

		fe := verrs.GetErrors("username")
		require.Len(t, fe, 1)
		assert.Equal(t, "username", fe[0].TranslationValues["field"])
		assert.Equal(t, 10, fe[0].TranslationValues["max"])
	})

	t.Run("missing keys", func(t *testing.T) {
		_, err := userSchema().ConvertMap(map[string]any{"first_name": "Karl"})
		verrs := validationErrors(t, err)
		assert.Equal(t, []string{"last_name", "email", "username"}, verrs.Fields())
		assert.Equal(t, []string{"Missing value"}, verrs.Get("email"))
		assert.False(t, verrs.Has("subscribe"))
	})

	t.Run("unexpected keys", func(t *testing.T) {
		_, err := userSchema().ConvertMap(map[string]any{
			"first_name": "Karl",
			"last_name":  "Shouler",
			"email":      "karl@monetate.com",
			"username":   "kmano8",
			"zeta":       "1",
			"alpha":      "2",
		})
		verrs := validationErrors(t, err)
		assert.Equal(t, []string{"alpha", "zeta"}, verrs.Fields())
		assert.Equal(t, []string{"The input field alpha was not expected."}, verrs.Get("alpha"))
	})

	t.Run("nil input", func(t *testing.T) {
		_, err := form.NewSchema(form.WithField("name", form.String{})).ConvertMap(nil)
		verrs := validationErrors(t, err)
		assert.Equal(t, []string{"Missing value"}, verrs.Get("name"))
	})
}

func TestSchemaExtraFields(t *testing.T) {
	input := map[string]any{"name": "Karl", "utm_source": "newsletter"}

	t.Run("allow copies", func(t *testing.T) {
		s := form.NewSchema(form.WithField("name", form.String{}), form.AllowExtraFields())
		out, err := s.ConvertMap(input)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "Karl", "utm_source": "newsletter"}, out)
	})

	t.Run("filter drops", func(t *testing.T) {
		s := form.NewSchema(form.WithField("name", form.String{}), form.FilterExtraFields())
		out, err := s.ConvertMap(input)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "Karl"}, out)
	})
}

func TestSchemaMissingValues(t *testing.T) {
	t.Run("optional field uses if missing", func(t *testing.T) {
		s := form.NewSchema(
			form.WithField("plan", form.OneOf{Values: []string{"free", "pro"}, Base: form.Base{Optional: true, IfMissing: "free"}}),
			form.WithField("nickname", form.String{Base: form.Base{Optional: true}}),
		)
		out, err := s.ConvertMap(map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"plan": "free", "nickname": nil}, out)
	})

	t.Run("ignore key missing", func(t *testing.T) {
		s := form.NewSchema(
			form.WithField("name", form.String{}),
			form.WithField("age", form.Int{}),
			form.IgnoreKeyMissing(),
		)
		out, err := s.ConvertMap(map[string]any{"age": "30"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"age": 30}, out)
	})
}

func TestSchemaChained(t *testing.T) {
	t.Run("matching passwords", func(t *testing.T) {
		out, err := passwordSchema().ConvertMap(map[string]any{
			"email":            "karl@monetate.com",
			"password":         "abcdefg1",
			"password_confirm": "abcdefg1",
		})
		require.NoError(t, err)
		assert.Equal(t, "abcdefg1", out["password"])
	})

	t.Run("mismatch is reported on the second field", func(t *testing.T) {
		_, err := passwordSchema().ConvertMap(map[string]any{
			"email":            "karl@monetate.com",
			"password":         "abcdefg1",
			"password_confirm": "abcdefg2",
		})
		verrs := validationErrors(t, err)
		assert.Equal(t, []string{"password_confirm"}, verrs.Fields())
		assert.Equal(t, []string{"Fields do not match"}, verrs.Get("password_confirm"))
	})

	t.Run("partial validation alongside field errors", func(t *testing.T) {
		_, err := passwordSchema().ConvertMap(map[string]any{
			"email":            "karlmonetate",
			"password":         "abcdefg1",
			"password_confirm": "nope",
		})
		verrs := validationErrors(t, err)
		assert.Equal(t, []string{"email", "password_confirm"}, verrs.Fields())
		assert.Equal(t, []string{"Fields do not match"}, verrs.Get("password_confirm"))
	})

	t.Run("skipped when a compared field failed", func(t *testing.T) {
		_, err := passwordSchema().ConvertMap(map[string]any{
			"email":            "karl@monetate.com",
			"password":         "short",
			"password_confirm": "other",
		})
		verrs := validationErrors(t, err)
		assert.Equal(t, []string{"password"}, verrs.Fields())
		assert.Equal(t, []string{"Your password must be at least 8 characters"}, verrs.Get("password"))
	})

	t.Run("chained func runs only when fields converted", func(t *testing.T) {
		calls := 0
		s := form.NewSchema(
			form.WithField("name", form.String{Base: form.Base{NotEmpty: true}}),
			form.WithChained(form.ChainedFunc(func(values map[string]any) error {
				calls++
				if values["name"] == "root" {
					return errors.New("That name is reserved")
				}
				return nil
			})),
		)

		_, err := s.ConvertMap(map[string]any{"name": ""})
		validationErrors(t, err)
		assert.Equal(t, 0, calls)

		_, err = s.ConvertMap(map[string]any{"name": "root"})
		verrs := validationErrors(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, []string{"That name is reserved"}, verrs.Get(form.FormErrorField))
	})

	t.Run("require if present", func(t *testing.T) {
		s := form.NewSchema(
			form.WithField("password", form.String{}),
			form.WithField("password_confirm", form.String{}),
			form.WithChained(form.RequireIfPresent("password_confirm", "password")),
		)

		_, err := s.ConvertMap(map[string]any{"password": "secret", "password_confirm": ""})
		verrs := validationErrors(t, err)
		assert.Equal(t, []string{"Please enter a value"}, verrs.Get("password_confirm"))

		_, err = s.ConvertMap(map[string]any{"password": "", "password_confirm": ""})
		assert.NoError(t, err)
	})

	t.Run("fields match needs two names", func(t *testing.T) {
		assert.Panics(t, func() { form.FieldsMatch("password") })
	})
}

func TestSchemaPreValidators(t *testing.T) {
	lowerKeys := func(input map[string]any) (map[string]any, error) {
		out := make(map[string]any, len(input))
		for k, v := range input {
			out[strings.ToLower(k)] = v
		}
		return out, nil
	}

	s := form.NewSchema(
		form.WithField("email", form.Email{}),
		form.WithPreValidators(lowerKeys),
	)
	out, err := s.ConvertMap(map[string]any{"EMAIL": "karl@monetate.com"})
	require.NoError(t, err)
	assert.Equal(t, "karl@monetate.com", out["email"])

	failing := s.Extend(form.WithPreValidators(func(map[string]any) (map[string]any, error) {
		return nil, errors.New("Form is closed")
	}))
	_, err = failing.ConvertMap(map[string]any{"email": "karl@monetate.com"})
	verrs := validationErrors(t, err)
	assert.Equal(t, []string{"Form is closed"}, verrs.Get(form.FormErrorField))
}

func TestSchemaPreValidatorsKeepInput(t *testing.T) {
	s := form.NewSchema(
		form.WithField("email", form.Email{}),
		form.WithPreValidators(func(input map[string]any) (map[string]any, error) {
			input["email"] = strings.TrimSpace(input["email"].(string))
			delete(input, "referrer")
			return input, nil
		}),
	)

	input := map[string]any{"email": "  karl@monetate.com ", "referrer": "ad"}
	out, err := s.ConvertMap(input)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"email": "karl@monetate.com"}, out)
	assert.Equal(t, map[string]any{"email": "  karl@monetate.com ", "referrer": "ad"}, input)
}

func TestSchemaNested(t *testing.T) {
	address := form.NewSchema(
		form.WithField("city", form.String{Base: form.Base{NotEmpty: true}}),
		form.WithField("zip", form.String{Max: 5}),
	)
	s := form.NewSchema(
		form.WithField("name", form.String{}),
		form.WithField("address", address),
	)

	out, err := s.ConvertMap(map[string]any{
		"name":    "Karl",
		"address": map[string]any{"city": "Philadelphia", "zip": "19103"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"city": "Philadelphia", "zip": "19103"}, out["address"])

	_, err = s.ConvertMap(map[string]any{
		"name":    "Karl",
		"address": map[string]any{"city": "", "zip": "191034"},
	})
	verrs := validationErrors(t, err)
	assert.Equal(t, []string{"address.city", "address.zip"}, verrs.Fields())
	assert.Equal(t, []string{"Please enter a value"}, verrs.Get("address.city"))

	_, err = s.ConvertMap(map[string]any{"name": "Karl", "address": "Philadelphia"})
	verrs = validationErrors(t, err)
	assert.Equal(t, []string{"The input must be a mapping (not string)"}, verrs.Get("address"))
}

func TestSchemaConvert(t *testing.T) {
	s := form.NewSchema(form.WithField("name", form.String{}), form.WithField("tags", form.Check(func(any) error { return nil })))

	out, err := s.Convert(url.Values{"name": {"Karl"}, "tags": {"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Karl", "tags": []string{"a", "b"}}, out)

	out, err = s.Convert(map[string]string{"name": "Karl", "tags": "a"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Karl", "tags": "a"}, out)

	_, err = s.Convert(42)
	requireInvalid(t, err, "The input must be a mapping (not int)")
}

func TestSchemaOptions(t *testing.T) {
	s := form.NewSchema(
		form.WithField("a", form.String{}),
		form.WithField("b", form.String{}),
		form.WithField("a", form.Int{}),
	)
	assert.Equal(t, []string{"a", "b"}, s.Fields())

	out, err := s.ConvertMap(map[string]any{"a": "1", "b": "x"})
	require.NoError(t, err)
	assert.Equal(t, 1, out["a"])

	extended := s.Extend(form.WithField("c", form.Bool{}))
	assert.Equal(t, []string{"a", "b", "c"}, extended.Fields())
	assert.Equal(t, []string{"a", "b"}, s.Fields())

	assert.Panics(t, func() { form.WithField("", form.String{}) })
	assert.Panics(t, func() { form.WithField("x", nil) })
}

func TestValidationErrorsMessage(t *testing.T) {
	_, err := userSchema().ConvertMap(map[string]any{
		"first_name": "Karl",
		"last_name":  "",
		"email":      "karl",
		"username":   "k",
	})
	require.Error(t, err)
	assert.Equal(t, "validation failed: email: An email address must contain a single @", err.Error())
}
