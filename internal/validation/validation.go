// Package validation implements the field format rules a phase-1
// simplified invoice QR payload must satisfy before encoding.
package validation

import (
	"strings"

	"github.com/abdalrahmangwish/qr/internal/model"
)

// TRNLength is the digit count of a tax registration number.
const TRNLength = 15

// trnBoundary is the digit a TRN must both start and end with.
const trnBoundary = '3'

// MissingFields returns the names of every field that is empty after
// trimming, in payload tag order. A non-empty result gates the pipeline:
// format checks must not run until presence passes.
func MissingFields(f model.Fields) []string {
	names := model.Names()
	var missing []string
	for i, value := range f.Ordered() {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, names[i])
		}
	}
	return missing
}

// CheckTRN reports whether value is a well-formed tax registration
// number: exactly 15 ASCII digits, starting and ending with '3'. Any
// violation yields the same single error, never one message per sub-rule.
func CheckTRN(value string) *model.ValidationError {
	v := strings.TrimSpace(value)
	if len(v) != TRNLength || !digitsOnly(v) || v[0] != trnBoundary || v[len(v)-1] != trnBoundary {
		return model.NewValidationError(model.FieldSellerTRN, v, model.RuleTRNFormat,
			"Seller TRN must be exactly 15 digits starting and ending with 3")
	}
	return nil
}

// CheckWholeAmount reports whether value is a whole-unit amount: ASCII
// digits with no decimal point or separator. The decimal check runs
// before the digits check so "12.5" reports decimals specifically while
// "12a" falls through to the generic digits message.
func CheckWholeAmount(value, label string) *model.ValidationError {
	v := strings.TrimSpace(value)
	if strings.ContainsAny(v, ".,") {
		return model.NewValidationError(label, v, model.RuleDecimals,
			label+" must be a whole number with no decimals")
	}
	if !digitsOnly(v) {
		return model.NewValidationError(label, v, model.RuleDigitsOnly,
			label+" must contain only digits")
	}
	return nil
}

// CollectFormatErrors runs every format rule and gathers all violations,
// never stopping at the first. Seller name and the normalized invoice
// date carry no format rule beyond presence.
func CollectFormatErrors(f model.Fields) model.ValidationErrors {
	var errs model.ValidationErrors
	if err := CheckTRN(f.SellerTRN); err != nil {
		errs = append(errs, err)
	}
	if err := CheckWholeAmount(f.InvoiceTotal, model.FieldInvoiceTotal); err != nil {
		errs = append(errs, err)
	}
	if err := CheckWholeAmount(f.VATTotal, model.FieldVATTotal); err != nil {
		errs = append(errs, err)
	}
	return errs
}

// Check gates presence before format rules, mirroring the encode
// pipeline: a missing-fields failure reports alone and format violations
// aggregate. Returns nil when all rules pass.
func Check(f model.Fields) error {
	if missing := MissingFields(f); len(missing) > 0 {
		return &model.MissingFieldsError{Fields: missing}
	}
	if errs := CollectFormatErrors(f); len(errs) > 0 {
		return errs
	}
	return nil
}

// digitsOnly reports whether s is one or more ASCII digits. The byte
// range check deliberately rejects non-ASCII digit runes.
func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
