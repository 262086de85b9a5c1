package validation

// Builder accumulates validators for a single field.
//
//	rules := validation.Field("email").Required().Email(checker).Build()
type Builder struct {
	field      string
	validators []FieldValidation
}

// Field starts a new rule group for the named field.
func Field(name string) *Builder {
	mustField(name)
	return &Builder{field: name}
}

// Required appends a Required rule.
func (b *Builder) Required() *Builder {
	b.validators = append(b.validators, Required(b.field))
	return b
}

// Min appends a MinLength rule.
func (b *Builder) Min(length int) *Builder {
	b.validators = append(b.validators, MinLength(b.field, length))
	return b
}

// Email appends an Email rule backed by checker.
func (b *Builder) Email(checker EmailValidator) *Builder {
	b.validators = append(b.validators, Email(b.field, checker))
	return b
}

// Password appends a Password rule backed by checker.
func (b *Builder) Password(checker PasswordValidator) *Builder {
	b.validators = append(b.validators, Password(b.field, checker))
	return b
}

// SameAs appends a rule requiring the field to equal other.
func (b *Builder) SameAs(other string) *Builder {
	b.validators = append(b.validators, SameAs(b.field, other))
	return b
}

// Build returns the accumulated rules and resets the group, so the builder can
// be reused for the same field without leaking earlier rules.
func (b *Builder) Build() []FieldValidation {
	out := make([]FieldValidation, len(b.validators))
	copy(out, b.validators)
	b.validators = nil
	return out
}

// Flatten concatenates rule groups preserving their order.
func Flatten(groups ...[]FieldValidation) []FieldValidation {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]FieldValidation, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
