package server

import (
	"fmt"
	"strings"

	"github.com/abdalrahmangwish/qr/internal/amount"
	"github.com/abdalrahmangwish/qr/internal/model"
)

// EncodeRequest carries the invoice fields for encode and validate
// endpoints. When vat_rate is set and vat_total is empty, the VAT field
// is derived from the tax-inclusive invoice_total.
type EncodeRequest struct {
	SellerName   string `json:"seller_name"`
	SellerTRN    string `json:"seller_trn"`
	InvoiceDate  string `json:"invoice_date"`
	InvoiceTotal string `json:"invoice_total"`
	VATTotal     string `json:"vat_total"`
	VATRate      int    `json:"vat_rate,omitempty"`
	StrictDates  bool   `json:"strict_dates,omitempty"`
}

func (r EncodeRequest) fields() (model.Fields, error) {
	f := model.Fields{
		SellerName:   r.SellerName,
		SellerTRN:    r.SellerTRN,
		InvoiceDate:  r.InvoiceDate,
		InvoiceTotal: r.InvoiceTotal,
		VATTotal:     r.VATTotal,
	}

	if r.VATRate > 0 && strings.TrimSpace(r.VATTotal) == "" && strings.TrimSpace(r.InvoiceTotal) != "" {
		total, err := amount.FromString(strings.TrimSpace(r.InvoiceTotal))
		if err != nil {
			return f, fmt.Errorf("cannot derive VAT from invoice_total: %w", err)
		}
		f.VATTotal = amount.VATPortion(total, r.VATRate).String()
	}

	return f, nil
}

// ImageRequest is an encode request plus QR rendering parameters
type ImageRequest struct {
	EncodeRequest
	Level string `json:"level,omitempty"`
	Size  int    `json:"size,omitempty"`
}

// EncodeResponse is the response for the encode endpoint
type EncodeResponse struct {
	Base64      string       `json:"base64"`
	PayloadSize int          `json:"payload_size"`
	Fields      model.Fields `json:"fields"`
}

// ValidateResponse is the response for the validate endpoint
type ValidateResponse struct {
	Valid   bool         `json:"valid"`
	Missing []string     `json:"missing,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError is a single field rule violation in API responses
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}
