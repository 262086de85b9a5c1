package main

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authform/modules/authform"
	"github.com/dmitrymomot/authform/pkg/validation"
)

func newValidateCmd() *cobra.Command {
	var (
		formName, field, lang string
		all                   bool
	)

	cmd := &cobra.Command{
		Use:   "validate key=value...",
		Short: "Validate one field or every field of a form",
		Example: `  authform validate --form signup --field email email=foo
  authform validate --form signup --all name=Ann email=ann@example.com
  authform validate --form signup --field passwordConfirmation password=Secret1! passwordConfirmation=Secret1!
  authform validate --form login --field password --lang pt-BR password=123`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := parseInput(args)
			if err != nil {
				return err
			}
			if all {
				return printFailures(cmd, formName, lang, input)
			}
			msg, err := validateField(cmd.Context(), formName, field, lang, input)
			if err != nil {
				return err
			}
			if msg == "" {
				msg = "ok"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), msg)
			return err
		},
	}

	cmd.Flags().StringVar(&formName, "form", authform.FormLogin, "form to validate: login or signup")
	cmd.Flags().StringVar(&field, "field", "", "field to validate")
	cmd.Flags().StringVar(&lang, "lang", "en", "message language")
	cmd.Flags().BoolVar(&all, "all", false, "validate every field of the form")
	cmd.MarkFlagsOneRequired("field", "all")
	cmd.MarkFlagsMutuallyExclusive("field", "all")

	return cmd
}

// parseInput reads key=value pairs. Values may contain '='.
func parseInput(args []string) (validation.Input, error) {
	input := make(validation.Input, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid input %q: expected key=value", arg)
		}
		input[key] = value
	}
	return input, nil
}

// printFailures writes one "field: message" line per failing field in field
// name order, or "ok" when the whole input is valid.
func printFailures(cmd *cobra.Command, formName, lang string, input validation.Input) error {
	v, err := localizedForm(cmd.Context(), formName, lang)
	if err != nil {
		return err
	}
	failures := v.ValidateAll(input)
	if len(failures) == 0 {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return err
	}
	for _, field := range slices.Sorted(maps.Keys(failures)) {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", field, failures[field]); err != nil {
			return err
		}
	}
	return nil
}

func validateField(ctx context.Context, formName, field, lang string, input validation.Input) (string, error) {
	v, err := localizedForm(ctx, formName, lang)
	if err != nil {
		return "", err
	}
	if !slices.Contains(v.Fields(), field) {
		return "", fmt.Errorf("form %s has no field %q, expected one of %s",
			formName, field, strings.Join(v.Fields(), ", "))
	}
	return v.Validate(field, input), nil
}

func localizedForm(ctx context.Context, formName, lang string) (*validation.Composite, error) {
	validations := authform.Validations()
	v, ok := validations[formName]
	if !ok {
		return nil, fmt.Errorf("unknown form %q, expected one of %s",
			formName, strings.Join(slices.Sorted(maps.Keys(validations)), ", "))
	}

	translator, err := authform.NewTranslator(ctx, "", nil)
	if err != nil {
		return nil, err
	}
	return v.WithMessages(authform.ValidationMessages(translator, translator.Match(lang))), nil
}
