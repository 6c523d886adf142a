// Package processor wires date normalization, field validation, and TLV
// encoding into the one-shot pipeline behind the CLI, the HTTP API, and
// the public library surface.
package processor

import (
	"github.com/abdalrahmangwish/qr/internal/dates"
	"github.com/abdalrahmangwish/qr/internal/model"
	"github.com/abdalrahmangwish/qr/internal/tlv"
	"github.com/abdalrahmangwish/qr/internal/validation"
)

// Pipeline runs the encode flow: normalize the invoice date, gate on
// field presence, collect format violations, then TLV-encode and render
// base64. A Pipeline is stateless apart from its options and safe for
// concurrent use.
type Pipeline struct {
	strictDates bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithStrictDates turns unrecognized invoice date shapes into a
// validation failure. By default they pass through to the payload
// untouched, matching what scanners historically tolerated.
func WithStrictDates() Option {
	return func(p *Pipeline) { p.strictDates = true }
}

// NewPipeline creates a processing pipeline.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result carries the outcome of one encode run. On failure Error is set
// and Payload and Base64 stay empty. Fields always holds the normalized
// values so callers can report what was actually checked.
type Result struct {
	Fields  model.Fields
	Payload []byte
	Base64  string
	Error   error
}

// Validate normalizes the invoice date, then runs the presence gate and
// the format rules without encoding anything. The returned fields carry
// the normalized date. A missing-fields failure reports alone; format
// violations aggregate.
func (p *Pipeline) Validate(f model.Fields) (model.Fields, error) {
	f.InvoiceDate = dates.Normalize(f.InvoiceDate)

	if missing := validation.MissingFields(f); len(missing) > 0 {
		return f, &model.MissingFieldsError{Fields: missing}
	}

	errs := validation.CollectFormatErrors(f)
	if p.strictDates && !dates.HasTimestamp(f.InvoiceDate) {
		errs = append(errs, model.NewValidationError(model.FieldInvoiceDate, f.InvoiceDate, model.RuleDateFormat,
			"Invoice Date must be YYYY-MM-DD, YYYY-MM-DD HH:mm, or an ISO-8601 timestamp"))
	}
	if len(errs) > 0 {
		return f, errs
	}
	return f, nil
}

// Process runs the full pipeline over one set of fields.
func (p *Pipeline) Process(f model.Fields) *Result {
	normalized, err := p.Validate(f)
	result := &Result{Fields: normalized}
	if err != nil {
		result.Error = err
		return result
	}

	payload, err := tlv.Payload(normalized)
	if err != nil {
		result.Error = err
		return result
	}

	result.Payload = payload
	result.Base64 = tlv.ToBase64(payload)
	return result
}
