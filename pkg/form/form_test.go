package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authform/pkg/form"
	"github.com/dmitrymomot/authform/pkg/validation"
)

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("validates empty fields on creation", func(t *testing.T) {
		t.Parallel()

		spy := &validationSpy{message: "field is required"}
		f := form.New(spy, "name", "email")

		assert.Equal(t, "field is required", f.Error("name"))
		assert.Equal(t, "field is required", f.Error("email"))
		assert.False(t, f.IsValid())
		assert.Equal(t, validation.Input{"name": "", "email": ""}, f.Values())
		assert.Empty(t, f.MainError())
	})

	t.Run("validates the changed field with the full snapshot", func(t *testing.T) {
		t.Parallel()

		spy := &validationSpy{}
		f := form.New(spy, "email", "password")
		f.Set("password", "secret")

		spy.setMessage("field email is invalid")
		msg := f.Set("email", "not-an-email")

		assert.Equal(t, "field email is invalid", msg)
		call := spy.last()
		assert.Equal(t, "email", call.field)
		assert.Equal(t, validation.Input{"email": "not-an-email", "password": "secret"}, call.input)
		assert.Equal(t, map[string]string{"email": "field email is invalid"}, f.Errors())
		assert.False(t, f.IsValid())
	})

	t.Run("becomes valid when every field passes", func(t *testing.T) {
		t.Parallel()

		spy := &validationSpy{message: "field is required"}
		f := form.New(spy, "email")
		spy.setMessage("")
		f.Set("email", "user@example.com")

		assert.True(t, f.IsValid())
		assert.Equal(t, "user@example.com", f.Value("email"))
	})

	t.Run("set all revalidates every field", func(t *testing.T) {
		t.Parallel()

		spy := &validationSpy{}
		f := form.New(spy, "a", "b")
		spy.setMessage("bad")
		f.SetAll(map[string]string{"a": "1"})

		assert.Equal(t, "bad", f.Error("a"))
		assert.Equal(t, "bad", f.Error("b"))
	})

	t.Run("values is a copy", func(t *testing.T) {
		t.Parallel()

		f := form.New(&validationSpy{}, "a")
		v := f.Values()
		v["a"] = "changed"
		assert.Empty(t, f.Value("a"))
	})

	t.Run("panics without validator", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { form.New(nil, "a") })
	})
}
