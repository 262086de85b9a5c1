package form

import (
	"maps"
	"sync"

	"github.com/dmitrymomot/authform/pkg/validation"
)

// Validator returns the first failing message for a field, or "".
// *validation.Composite satisfies it.
type Validator interface {
	Validate(field string, input validation.Input) string
}

// Form is the state of one form instance: a value and an error message per
// field plus a form-wide main error. It is safe for concurrent use.
type Form struct {
	mu        sync.RWMutex
	validator Validator
	fields    []string
	values    validation.Input
	errors    map[string]string
	mainError string
}

// New tracks fields and validates their empty values, so a fresh form
// reports its required fields straight away.
func New(v Validator, fields ...string) *Form {
	if v == nil {
		panic("form: validator cannot be nil")
	}
	f := &Form{
		validator: v,
		fields:    fields,
		values:    make(validation.Input, len(fields)),
		errors:    make(map[string]string, len(fields)),
	}
	for _, field := range fields {
		f.values[field] = ""
	}
	f.validateAll()
	return f
}

// Set stores value and returns the field's new error message.
func (f *Form) Set(field, value string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[field] = value
	msg := f.validator.Validate(field, f.values)
	f.errors[field] = msg
	return msg
}

// SetAll stores every value then re-validates all tracked fields.
func (f *Form) SetAll(values map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	maps.Copy(f.values, values)
	f.validateAll()
}

// Revalidate refreshes every tracked field against the current values.
// Rules that compare fields go stale when only the other field changes.
func (f *Form) Revalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.validateAll()
}

func (f *Form) validateAll() {
	for _, field := range f.fields {
		f.errors[field] = f.validator.Validate(field, f.values)
	}
}

// Error returns the current message of field, "" when valid.
func (f *Form) Error(field string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.errors[field]
}

// Errors returns the failing fields only.
func (f *Form) Errors() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make(map[string]string)
	for field, msg := range f.errors {
		if msg != "" {
			out[field] = msg
		}
	}
	return out
}

// Value returns the current value of field.
func (f *Form) Value(field string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.values[field]
}

// Values returns a copy of the current snapshot.
func (f *Form) Values() validation.Input {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return maps.Clone(f.values)
}

// IsValid reports whether no field currently has an error.
func (f *Form) IsValid() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, msg := range f.errors {
		if msg != "" {
			return false
		}
	}
	return true
}

// MainError returns the message of the last failed submit.
func (f *Form) MainError() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.mainError
}

func (f *Form) setMainError(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mainError = msg
}
