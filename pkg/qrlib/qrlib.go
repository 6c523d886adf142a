// Package qrlib provides a public API for building simplified tax
// invoice QR payloads.
//
// The encoder validates the five mandatory fields, normalizes the
// invoice date to Saudi local time, TLV-encodes the values under tags
// 1 through 5, and renders the payload as base64 text ready for a QR
// image.
//
// Example usage:
//
//	b64, err := qrlib.Encode(qrlib.Fields{
//	    SellerName:   "Acme Co",
//	    SellerTRN:    "300000000000003",
//	    InvoiceDate:  "2026-02-23",
//	    InvoiceTotal: "115",
//	    VATTotal:     "15",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(b64)
package qrlib

import (
	"github.com/abdalrahmangwish/qr/internal/barcode"
	"github.com/abdalrahmangwish/qr/internal/model"
)

// Re-export core types for public API
type (
	Fields = model.Fields
)

// Re-export field display names
const (
	FieldSellerName   = model.FieldSellerName
	FieldSellerTRN    = model.FieldSellerTRN
	FieldInvoiceDate  = model.FieldInvoiceDate
	FieldInvoiceTotal = model.FieldInvoiceTotal
	FieldVATTotal     = model.FieldVATTotal
)

// Re-export validation rule identifiers
const (
	RuleRequired   = model.RuleRequired
	RuleTRNFormat  = model.RuleTRNFormat
	RuleDecimals   = model.RuleDecimals
	RuleDigitsOnly = model.RuleDigitsOnly
	RuleDateFormat = model.RuleDateFormat
)

// Re-export error types
type (
	ValidationError    = model.ValidationError
	ValidationErrors   = model.ValidationErrors
	MissingFieldsError = model.MissingFieldsError
	EncodingError      = model.EncodingError
)

// Level selects QR error-correction strength for rendered images
type Level = barcode.Level

// Re-export QR error-correction levels
const (
	LevelLow     = barcode.LevelLow
	LevelMedium  = barcode.LevelMedium
	LevelHigh    = barcode.LevelHigh
	LevelHighest = barcode.LevelHighest
)

// DefaultImageSize is the default QR image edge in pixels
const DefaultImageSize = barcode.DefaultSize
