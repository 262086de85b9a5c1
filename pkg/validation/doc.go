// Package validation implements the per-field rule engine behind the login and
// signup forms.
//
// A form is described by an ordered list of FieldValidation values. Each one is
// scoped to a single field and inspects the full form snapshot (Input), which
// lets cross-field rules such as SameAs live next to single-field rules.
// Composite evaluates the rules of one field in insertion order and reports the
// message of the first failure, or an empty string when the field is valid.
//
// # Building rules
//
// Rules are normally assembled with the fluent Builder and concatenated with
// Flatten before being handed to the composite:
//
//	composite := validation.NewComposite(validation.Flatten(
//	    validation.Field("name").Required().Build(),
//	    validation.Field("email").Required().Email(emailChecker).Build(),
//	    validation.Field("password").Required().Password(passwordChecker).Build(),
//	    validation.Field("passwordConfirmation").Required().SameAs("password").Build(),
//	)...)
//
//	msg := composite.Validate("email", validation.Input{"email": "john@"})
//	// msg == "field email is invalid"
//
// # Error Handling
//
// Validators return errors as values: ErrFieldRequired for missing values and
// InvalidFieldError for values that do not pass a format or policy check. Both
// can be matched with errors.Is (InvalidFieldError matches ErrFieldInvalid).
// The composite never returns an error itself; it reduces the first failure to
// a display string, optionally through a MessageFunc for localization.
//
// Constructors panic on programmer errors (empty field names, nil checkers,
// non-positive lengths). Misconfigured rules are a build-time bug, not a
// runtime condition.
//
// # Concurrency
//
// Validators and composites hold no mutable state after construction and are
// safe for concurrent use. Builder is not; use one builder per goroutine.
package validation
