package validation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authform/pkg/validation"
)

func fieldsOf(rules []validation.FieldValidation) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Field()
	}
	return out
}

func TestBuilder_Required(t *testing.T) {
	t.Parallel()

	rules := validation.Field("any_field").Required().Build()
	require.Len(t, rules, 1)
	assert.Equal(t, validation.Required("any_field"), rules[0])
}

func TestBuilder_SameAs(t *testing.T) {
	t.Parallel()

	rules := validation.Field("passwordConfirmation").SameAs("password").Build()
	require.Len(t, rules, 1)
	assert.Equal(t, validation.SameAs("passwordConfirmation", "password"), rules[0])
}

func TestBuilder_ChainKeepsOrder(t *testing.T) {
	t.Parallel()

	email := validation.CheckerFunc(func(string) bool { return true })
	rules := validation.Field("email").Required().Email(email).Min(5).Build()
	require.Len(t, rules, 3)

	input := validation.Input{"email": ""}
	assert.ErrorIs(t, rules[0].Validate(input), validation.ErrFieldRequired)
	assert.NoError(t, rules[1].Validate(input))
	assert.NoError(t, rules[2].Validate(input))
	assert.ErrorIs(t, rules[2].Validate(validation.Input{"email": "a@b"}), validation.ErrFieldInvalid)
}

func TestBuilder_BuildResets(t *testing.T) {
	t.Parallel()

	b := validation.Field("name").Required()
	first := b.Build()
	second := b.Min(3).Build()

	assert.Len(t, first, 1)
	require.Len(t, second, 1, "rules from the first Build must not leak into the second")
	assert.ErrorIs(t, second[0].Validate(validation.Input{"name": "Jo"}), validation.ErrFieldInvalid)
	assert.Empty(t, b.Build())
}

func TestBuilder_PasswordPolicy(t *testing.T) {
	t.Parallel()

	policy := validation.CheckerFunc(func(v string) bool { return len(v) >= 5 })
	sut := validation.NewComposite(validation.Field("password").Required().Password(policy).Build()...)

	assert.Equal(t, "field password is invalid", sut.Validate("password", validation.Input{"password": "ab"}))
	assert.Equal(t, "field is required", sut.Validate("password", validation.Input{}))
	assert.Empty(t, sut.Validate("password", validation.Input{"password": "abcdef"}))
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	rules := validation.Flatten(
		validation.Field("name").Required().Build(),
		validation.Field("email").Required().Email(validation.CheckerFunc(func(string) bool { return true })).Build(),
		nil,
		validation.Field("passwordConfirmation").Required().SameAs("password").Build(),
	)

	want := []string{"name", "email", "email", "passwordConfirmation", "passwordConfirmation"}
	if diff := cmp.Diff(want, fieldsOf(rules)); diff != "" {
		t.Errorf("Flatten() field order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_CallOrderDecidesWinner(t *testing.T) {
	t.Parallel()

	reject := validation.CheckerFunc(func(string) bool { return false })
	input := validation.Input{"password": "ab", "passwordConfirmation": "abc"}

	policyFirst := validation.NewComposite(
		validation.Field("passwordConfirmation").Password(reject).SameAs("password").Build()...,
	).WithMessages(func(_ string, err error) string {
		if validation.IsInvalid(err) {
			return "invalid"
		}
		return err.Error()
	})
	assert.Equal(t, "invalid", policyFirst.Validate("passwordConfirmation", input))

	tagged := func(tag string, rule validation.FieldValidation) validation.FieldValidation {
		return taggedRule{FieldValidation: rule, tag: tag}
	}
	a := validation.NewComposite(
		tagged("policy", validation.Password("passwordConfirmation", reject)),
		tagged("same", validation.SameAs("passwordConfirmation", "password")),
	)
	b := validation.NewComposite(
		tagged("same", validation.SameAs("passwordConfirmation", "password")),
		tagged("policy", validation.Password("passwordConfirmation", reject)),
	)

	assert.Equal(t, "policy", a.Validate("passwordConfirmation", input))
	assert.Equal(t, "same", b.Validate("passwordConfirmation", input))
}

type taggedRule struct {
	validation.FieldValidation
	tag string
}

func (r taggedRule) Validate(input validation.Input) error {
	if err := r.FieldValidation.Validate(input); err != nil {
		return tagError(r.tag)
	}
	return nil
}

type tagError string

func (e tagError) Error() string { return string(e) }
