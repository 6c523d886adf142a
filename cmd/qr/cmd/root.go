package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "qr",
	Short: "Generate simplified tax invoice QR payloads",
	Long: `qr builds the base64 TLV payload embedded in simplified tax invoice
QR codes and renders it as a scannable PNG.

The payload carries five fields:
  1. Seller name
  2. Seller TRN (15 digits, starts and ends with 3)
  3. Invoice date (ISO-8601, Saudi local time)
  4. Invoice total including VAT, whole units
  5. VAT total, whole units

Examples:
  # Encode an invoice
  qr generate --seller "Acme Co" --trn 300000000000003 --date 2026-02-23 --total 115 --vat 15

  # Prompt for any field left unset
  qr generate --interactive

  # Write a scannable PNG next to the base64 text
  qr generate --seller "Acme Co" --trn 300000000000003 --date 2026-02-23 --total 115 --vat 15 --out invoice.png

  # Check fields without encoding
  qr validate --trn 200000000000003`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "text", "Output format (text, json, table)")
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
