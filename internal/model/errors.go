package model

import (
	"fmt"
	"strings"
)

// Validation rule identifiers carried by ValidationError.
const (
	RuleRequired   = "required"
	RuleTRNFormat  = "trn_format"
	RuleDecimals   = "decimals"
	RuleDigitsOnly = "digits_only"
	RuleDateFormat = "date_format"
)

// ValidationError represents a single field format violation
type ValidationError struct {
	Field   string
	Value   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("validation failed on %s: %s (value=%q, rule=%s)", e.Field, e.Message, e.Value, e.Rule)
	}
	return fmt.Sprintf("validation failed on %s: %s (rule=%s)", e.Field, e.Message, e.Rule)
}

// NewValidationError creates a new validation error
func NewValidationError(field, value, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// ValidationErrors aggregates every format violation found in one
// validation pass. The full list is reported, not just the first.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	return fmt.Sprintf("%d validation error(s): %s", len(e), strings.Join(e.Messages(), "; "))
}

// Messages returns the individual violation messages in check order.
func (e ValidationErrors) Messages() []string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Message
	}
	return msgs
}

// MissingFieldsError reports every field that is empty after trimming.
// It is raised before any format rule runs and carries the missing names
// in payload tag order.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// AsValidationErrors renders the missing names as per-field violations
// under the required rule, for consumers that want one uniform error
// list instead of a separate missing-fields case.
func (e *MissingFieldsError) AsValidationErrors() ValidationErrors {
	errs := make(ValidationErrors, len(e.Fields))
	for i, name := range e.Fields {
		errs[i] = NewValidationError(name, "", RuleRequired, name+" is required")
	}
	return errs
}

// EncodingError reports a value whose UTF-8 form does not fit single-byte
// TLV length framing. It signals a caller bug rather than bad user input:
// encoding aborts instead of truncating or wrapping the length byte.
type EncodingError struct {
	Tag        byte
	Field      string
	ByteLength int
	Max        int
}

func (e *EncodingError) Error() string {
	name := e.Field
	if name == "" {
		name = fmt.Sprintf("tag %d", e.Tag)
	}
	return fmt.Sprintf("cannot encode %s: value is %d bytes, length framing allows at most %d", name, e.ByteLength, e.Max)
}
