package model

// Field display names, in payload tag order. They appear in error reports
// and CLI prompts exactly as the tax authority labels them.
const (
	FieldSellerName   = "Seller Name"
	FieldSellerTRN    = "Seller TRN"
	FieldInvoiceDate  = "Invoice Date"
	FieldInvoiceTotal = "Invoice Total"
	FieldVATTotal     = "VAT Total"
)

// Fields holds the five mandatory values of a phase-1 simplified tax
// invoice QR payload. Values are kept exactly as supplied: validation
// trims only while evaluating rules and the encoder emits the bytes as
// given, so a Fields value never mutates after construction.
type Fields struct {
	SellerName   string `json:"seller_name"`
	SellerTRN    string `json:"seller_trn"`
	InvoiceDate  string `json:"invoice_date"`
	InvoiceTotal string `json:"invoice_total"`
	VATTotal     string `json:"vat_total"`
}

// Ordered returns the field values in payload tag order (tags 1 through 5).
// The order is part of the wire contract and must match Names.
func (f Fields) Ordered() [5]string {
	return [5]string{f.SellerName, f.SellerTRN, f.InvoiceDate, f.InvoiceTotal, f.VATTotal}
}

// Names returns the field display names in payload tag order.
func Names() [5]string {
	return [5]string{FieldSellerName, FieldSellerTRN, FieldInvoiceDate, FieldInvoiceTotal, FieldVATTotal}
}
