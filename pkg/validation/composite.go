package validation

// MessageFunc renders a validator error for display. It receives the field the
// error belongs to so translations can interpolate it.
type MessageFunc func(field string, err error) string

func defaultMessage(_ string, err error) string {
	return err.Error()
}

// Composite evaluates an ordered list of field validations.
// Zero value has no rules and reports every field as valid.
type Composite struct {
	validators []FieldValidation
	message    MessageFunc
}

// NewComposite returns a composite over validators in the given order.
// Nil entries are skipped.
func NewComposite(validators ...FieldValidation) *Composite {
	list := make([]FieldValidation, 0, len(validators))
	for _, v := range validators {
		if v != nil {
			list = append(list, v)
		}
	}
	return &Composite{validators: list, message: defaultMessage}
}

// Build is NewComposite for a prepared slice, typically the result of Flatten.
func Build(validators []FieldValidation) *Composite {
	return NewComposite(validators...)
}

// WithMessages returns a copy of the composite that renders errors through fn.
// A nil fn restores the default err.Error() rendering.
func (c *Composite) WithMessages(fn MessageFunc) *Composite {
	if fn == nil {
		fn = defaultMessage
	}
	return &Composite{validators: c.validators, message: fn}
}

// Err returns the first error produced by the validators scoped to field, in
// insertion order, or nil when all of them pass.
func (c *Composite) Err(field string, input Input) error {
	if c == nil {
		return nil
	}
	for _, v := range c.validators {
		if v.Field() != field {
			continue
		}
		if err := v.Validate(input); err != nil {
			return err
		}
	}
	return nil
}

// Validate returns the message of the first failing rule for field, or an
// empty string when the field is valid.
func (c *Composite) Validate(field string, input Input) string {
	err := c.Err(field, input)
	if err == nil {
		return ""
	}
	msg := c.message
	if msg == nil {
		msg = defaultMessage
	}
	return msg(field, err)
}

// ValidateAll validates every field that has at least one rule and returns the
// failing ones mapped to their first message. The map is empty when the whole
// input is valid.
func (c *Composite) ValidateAll(input Input) map[string]string {
	result := make(map[string]string)
	for _, field := range c.Fields() {
		if msg := c.Validate(field, input); msg != "" {
			result[field] = msg
		}
	}
	return result
}

// Fields returns the distinct field names in the order they were first seen.
func (c *Composite) Fields() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(c.validators))
	fields := make([]string, 0, len(c.validators))
	for _, v := range c.validators {
		if _, ok := seen[v.Field()]; ok {
			continue
		}
		seen[v.Field()] = struct{}{}
		fields = append(fields, v.Field())
	}
	return fields
}

// Len returns the number of rules held by the composite.
func (c *Composite) Len() int {
	if c == nil {
		return 0
	}
	return len(c.validators)
}
