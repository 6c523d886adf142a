package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdalrahmangwish/qr/internal/model"
	"github.com/abdalrahmangwish/qr/internal/processor"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check invoice fields without encoding",
	Long: `Validate invoice fields against the payload rules.

Checks performed:
  - All five fields present
  - TRN is exactly 15 digits starting and ending with 3
  - Totals are whole numbers with no decimals
  - With --strict-dates, the date normalizes to ISO-8601

Examples:
  qr validate --seller "Acme Co" --trn 300000000000003 --date 2026-02-23 --total 115 --vat 15
  qr validate --trn 200000000000003 -f json`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	addFieldFlags(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	fields := model.Fields{
		SellerName:   sellerName,
		SellerTRN:    sellerTRN,
		InvoiceDate:  invoiceDate,
		InvoiceTotal: invoiceTotal,
		VATTotal:     vatTotal,
	}

	var opts []processor.Option
	if strictDates {
		opts = append(opts, processor.WithStrictDates())
	}

	normalized, err := processor.NewPipeline(opts...).Validate(fields)

	result := &ValidationResult{
		Valid:  err == nil,
		Fields: normalized,
	}
	if err != nil {
		var missing *model.MissingFieldsError
		var violations model.ValidationErrors
		switch {
		case errors.As(err, &missing):
			result.Missing = missing.Fields
		case errors.As(err, &violations):
			result.Errors = violations.Messages()
		default:
			result.Errors = []string{err.Error()}
		}
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	} else {
		printValidationResult(result)
	}

	if !result.Valid {
		return fmt.Errorf("validation failed")
	}

	return nil
}

func printValidationResult(r *ValidationResult) {
	if r.Valid {
		fmt.Println("✓ VALID")
		return
	}

	fmt.Println("✗ INVALID")
	for _, name := range r.Missing {
		fmt.Printf("  - missing %s\n", name)
	}
	for _, msg := range r.Errors {
		fmt.Printf("  - %s\n", msg)
	}
}

// ValidationResult holds the result of checking one set of fields
type ValidationResult struct {
	Valid   bool         `json:"valid"`
	Fields  model.Fields `json:"fields"`
	Missing []string     `json:"missing,omitempty"`
	Errors  []string     `json:"errors,omitempty"`
}
