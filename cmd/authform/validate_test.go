package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestValidateCmd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "invalid email",
			args: []string{"validate", "--form", "signup", "--field", "email", "email=foo"},
			want: "Invalid email",
		},
		{
			name: "missing value is required",
			args: []string{"validate", "--form", "signup", "--field", "name"},
			want: "This field is required",
		},
		{
			name: "matching confirmation",
			args: []string{"validate", "--form", "signup", "--field", "passwordConfirmation", "password=Secret1!", "passwordConfirmation=Secret1!"},
			want: "ok",
		},
		{
			name: "value containing equals sign",
			args: []string{"validate", "--field", "password", "password=a=b=c"},
			want: "ok",
		},
		{
			name: "portuguese",
			args: []string{"validate", "--form", "login", "--field", "password", "--lang", "pt-BR", "password=123"},
			want: "Campo senha inválido",
		},
		{
			name: "all fields sorted by name",
			args: []string{"validate", "--form", "signup", "--all", "name=Ann", "email=foo", "password=Secret1!", "passwordConfirmation=Secret2!"},
			want: "email: Invalid email\npasswordConfirmation: Invalid password confirmation",
		},
		{
			name: "all fields valid",
			args: []string{"validate", "--form", "login", "--all", "email=ann@example.com", "password=12345"},
			want: "ok",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := runCmd(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestValidateCmd_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown form", []string{"validate", "--form", "reset", "--field", "email"}, `unknown form "reset", expected one of login, signup`},
		{"unknown field", []string{"validate", "--form", "login", "--field", "name"}, `form login has no field "name"`},
		{"malformed pair", []string{"validate", "--field", "email", "email"}, `invalid input "email"`},
		{"missing field flag", []string{"validate", "email=a@b.co"}, `at least one of the flags in the group [field all] is required`},
		{"field with all", []string{"validate", "--field", "email", "--all"}, `if any flags in the group [field all] are set none of the others can be`},
		{"all with unknown form", []string{"validate", "--form", "reset", "--all"}, `unknown form "reset"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := runCmd(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseInput(t *testing.T) {
	t.Parallel()

	input, err := parseInput([]string{"email=a@b.co", "password=x=y", "name="})
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", input["email"])
	assert.Equal(t, "x=y", input["password"])
	assert.Equal(t, "", input["name"])

	_, err = parseInput([]string{"=value"})
	assert.Error(t, err)
}
