package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abdalrahmangwish/qr/internal/amount"
	"github.com/abdalrahmangwish/qr/internal/barcode"
	"github.com/abdalrahmangwish/qr/internal/model"
	"github.com/abdalrahmangwish/qr/internal/processor"
)

var (
	// Field flags shared by generate and validate
	sellerName   string
	sellerTRN    string
	invoiceDate  string
	invoiceTotal string
	vatTotal     string
	strictDates  bool

	netTotal    string
	vatRate     int
	interactive bool
	outPath     string
	imageSize   int
	imageLevel  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Encode invoice fields into a QR payload",
	Long: `Encode the five invoice fields into the base64 TLV payload carried by
a simplified invoice QR code, optionally rendering it as a PNG.

Amounts can be derived instead of spelled out:
  - --net with --vat-rate computes the VAT and the inclusive total
  - --total with --vat-rate extracts the VAT contained in the total

Examples:
  qr generate --seller "Acme Co" --trn 300000000000003 --date 2026-02-23 --total 115 --vat 15
  qr generate --seller "Acme Co" --trn 300000000000003 --date "2026-02-23 18:30" --net 100 --vat-rate 15
  qr generate --interactive --out invoice.png
  qr generate --seller "Acme Co" --trn 300000000000003 --date 2026-02-23 --total 115 --vat 15 -f json`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	addFieldFlags(generateCmd)
	generateCmd.Flags().StringVar(&netTotal, "net", "", "Net amount before VAT; needs --vat-rate")
	generateCmd.Flags().IntVar(&vatRate, "vat-rate", 0, "VAT rate percent for deriving amounts")
	generateCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for fields left unset")
	generateCmd.Flags().StringVarP(&outPath, "out", "o", "", "Write a QR PNG to this file")
	generateCmd.Flags().IntVar(&imageSize, "size", barcode.DefaultSize, "QR image size in pixels")
	generateCmd.Flags().StringVar(&imageLevel, "level", "m", "QR error-correction level (l, m, q, h)")
}

func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sellerName, "seller", "", "Seller name")
	cmd.Flags().StringVar(&sellerTRN, "trn", "", "Seller tax registration number (15 digits)")
	cmd.Flags().StringVar(&invoiceDate, "date", "", `Invoice date (YYYY-MM-DD, "YYYY-MM-DD HH:mm", or ISO-8601)`)
	cmd.Flags().StringVar(&invoiceTotal, "total", "", "Invoice total including VAT, whole units")
	cmd.Flags().StringVar(&vatTotal, "vat", "", "VAT total, whole units")
	cmd.Flags().BoolVar(&strictDates, "strict-dates", false, "Reject dates that do not normalize to ISO-8601")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	fields, err := gatherFields(cmd)
	if err != nil {
		return err
	}

	var opts []processor.Option
	if strictDates {
		opts = append(opts, processor.WithStrictDates())
	}

	result := processor.NewPipeline(opts...).Process(fields)
	if result.Error != nil {
		return result.Error
	}

	printVerbose("Encoded %d payload bytes\n", len(result.Payload))

	genResult := &GenerateResult{
		Fields:      result.Fields,
		PayloadSize: len(result.Payload),
		Base64:      result.Base64,
	}

	if outPath != "" {
		level, err := barcode.ParseLevel(imageLevel)
		if err != nil {
			return err
		}
		if err := barcode.WriteFile(result.Base64, level, imageSize, outPath); err != nil {
			return err
		}
		genResult.Image = outPath
		printVerbose("Wrote QR image to %s\n", outPath)
	}

	return outputGenerateResult(genResult)
}

func gatherFields(cmd *cobra.Command) (model.Fields, error) {
	f := model.Fields{
		SellerName:   sellerName,
		SellerTRN:    sellerTRN,
		InvoiceDate:  invoiceDate,
		InvoiceTotal: invoiceTotal,
		VATTotal:     vatTotal,
	}

	if vatRate > 0 {
		if err := deriveAmounts(&f); err != nil {
			return f, err
		}
	}

	if interactive {
		if err := promptMissing(cmd, &f); err != nil {
			return f, err
		}
	}

	return f, nil
}

func deriveAmounts(f *model.Fields) error {
	switch {
	case netTotal != "":
		net, err := amount.FromString(netTotal)
		if err != nil {
			return fmt.Errorf("invalid net amount: %w", err)
		}
		if f.VATTotal == "" {
			f.VATTotal = amount.VATOnNet(net, vatRate).String()
		}
		if f.InvoiceTotal == "" {
			f.InvoiceTotal = amount.AddVAT(net, vatRate).String()
		}

	case f.InvoiceTotal != "" && f.VATTotal == "":
		total, err := amount.FromString(f.InvoiceTotal)
		if err != nil {
			return fmt.Errorf("invalid total amount: %w", err)
		}
		f.VATTotal = amount.VATPortion(total, vatRate).String()
	}

	return nil
}

func promptMissing(cmd *cobra.Command, f *model.Fields) error {
	reader := bufio.NewReader(cmd.InOrStdin())

	prompts := []struct {
		label string
		dst   *string
	}{
		{model.FieldSellerName, &f.SellerName},
		{model.FieldSellerTRN, &f.SellerTRN},
		{model.FieldInvoiceDate, &f.InvoiceDate},
		{model.FieldInvoiceTotal, &f.InvoiceTotal},
		{model.FieldVATTotal, &f.VATTotal},
	}

	for _, p := range prompts {
		if strings.TrimSpace(*p.dst) != "" {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ", p.label)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read %s: %w", p.label, err)
		}
		*p.dst = strings.TrimSpace(line)
	}

	return nil
}

func outputGenerateResult(r *GenerateResult) error {
	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(r)

	case "table":
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "FIELD\tVALUE")
		fmt.Fprintln(tw, "-----\t-----")
		names := model.Names()
		for i, v := range r.Fields.Ordered() {
			fmt.Fprintf(tw, "%s\t%s\n", names[i], v)
		}
		fmt.Fprintf(tw, "Payload bytes\t%d\n", r.PayloadSize)
		fmt.Fprintf(tw, "Base64\t%s\n", r.Base64)
		if r.Image != "" {
			fmt.Fprintf(tw, "Image\t%s\n", r.Image)
		}
		return tw.Flush()

	case "text":
		fmt.Println(r.Base64)
		if r.Image != "" {
			fmt.Fprintf(os.Stderr, "QR image written to %s\n", r.Image)
		}
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

// GenerateResult holds the outcome of one encode run
type GenerateResult struct {
	Fields      model.Fields `json:"fields"`
	PayloadSize int          `json:"payload_size"`
	Base64      string       `json:"base64"`
	Image       string       `json:"image,omitempty"`
}
