package processor_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdalrahmangwish/qr/internal/model"
	"github.com/abdalrahmangwish/qr/internal/processor"
)

const goldenBase64 = "AQdBY21lIENvAg8zMDAwMDAwMDAwMDAwMDMDGTIwMjYtMDItMjNUMTg6MzA6MDArMDM6MDAEAzExNQUCMTU="

func sampleFields() model.Fields {
	return model.Fields{
		SellerName:   "Acme Co",
		SellerTRN:    "300000000000003",
		InvoiceDate:  "2026-02-23 18:30",
		InvoiceTotal: "115",
		VATTotal:     "15",
	}
}

func TestNewPipeline(t *testing.T) {
	p := processor.NewPipeline()
	require.NotNil(t, p)
}

func TestNewPipeline_WithOptions(t *testing.T) {
	p := processor.NewPipeline(
		processor.WithStrictDates(),
	)
	require.NotNil(t, p)
}

func TestProcess_EndToEnd(t *testing.T) {
	p := processor.NewPipeline()

	result := p.Process(sampleFields())
	require.Nil(t, result.Error)

	// The plain date+time input must reach the payload in normalized
	// ISO form, producing the reference encoding.
	assert.Equal(t, "2026-02-23T18:30:00+03:00", result.Fields.InvoiceDate)
	assert.Equal(t, goldenBase64, result.Base64)
	assert.Len(t, result.Payload, 62)
	assert.Equal(t, []byte{0x01, 0x07, 'A'}, result.Payload[:3])
}

func TestProcess_MissingFieldsGateFormatChecks(t *testing.T) {
	p := processor.NewPipeline()

	f := sampleFields()
	f.SellerName = "   "
	f.SellerTRN = "bogus" // must not be reported while presence fails

	result := p.Process(f)
	require.NotNil(t, result.Error)
	assert.Empty(t, result.Base64)
	assert.Nil(t, result.Payload)

	var missing *model.MissingFieldsError
	require.ErrorAs(t, result.Error, &missing)
	assert.Equal(t, []string{model.FieldSellerName}, missing.Fields)
}

func TestProcess_AggregatesFormatErrors(t *testing.T) {
	p := processor.NewPipeline()

	f := sampleFields()
	f.SellerTRN = "200000000000003"
	f.InvoiceTotal = "115.00"

	result := p.Process(f)
	require.NotNil(t, result.Error)

	var errs model.ValidationErrors
	require.ErrorAs(t, result.Error, &errs)
	require.Len(t, errs, 2)
	assert.Equal(t, model.RuleTRNFormat, errs[0].Rule)
	assert.Equal(t, model.RuleDecimals, errs[1].Rule)
}

func TestProcess_UnrecognizedDatePassesThroughByDefault(t *testing.T) {
	p := processor.NewPipeline()

	f := sampleFields()
	f.InvoiceDate = "23/02/2026"

	result := p.Process(f)
	require.Nil(t, result.Error)
	assert.Equal(t, "23/02/2026", result.Fields.InvoiceDate)
	assert.Contains(t, string(result.Payload), "23/02/2026")
}

func TestProcess_StrictDatesRejectsUnrecognized(t *testing.T) {
	p := processor.NewPipeline(processor.WithStrictDates())

	f := sampleFields()
	f.InvoiceDate = "23/02/2026"

	result := p.Process(f)
	require.NotNil(t, result.Error)

	var errs model.ValidationErrors
	require.ErrorAs(t, result.Error, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, model.RuleDateFormat, errs[0].Rule)
	assert.Equal(t, model.FieldInvoiceDate, errs[0].Field)
}

func TestProcess_StrictDatesAcceptsRecognizedShapes(t *testing.T) {
	p := processor.NewPipeline(processor.WithStrictDates())

	for _, date := range []string{"2026-02-23", "2026-02-23 18:30", "2026-02-23T09:00:00+03:00"} {
		f := sampleFields()
		f.InvoiceDate = date

		result := p.Process(f)
		require.Nil(t, result.Error, "date %q should pass strict checking", date)
	}
}

func TestProcess_EncodingAbortsOnOversizedValue(t *testing.T) {
	p := processor.NewPipeline()

	f := sampleFields()
	f.SellerName = strings.Repeat("x", 300)

	result := p.Process(f)
	require.NotNil(t, result.Error)
	assert.Nil(t, result.Payload)
	assert.Empty(t, result.Base64)

	var encErr *model.EncodingError
	require.ErrorAs(t, result.Error, &encErr)
	assert.Equal(t, model.FieldSellerName, encErr.Field)
}

func TestValidate_ReturnsNormalizedFields(t *testing.T) {
	p := processor.NewPipeline()

	f := sampleFields()
	f.InvoiceDate = "2026-02-23"

	normalized, err := p.Validate(f)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-23T00:00:00+03:00", normalized.InvoiceDate)
}

func TestProcess_FieldsCarryNormalizedDateOnFailure(t *testing.T) {
	p := processor.NewPipeline()

	f := sampleFields()
	f.InvoiceDate = "2026-02-23"
	f.SellerTRN = "bad"

	result := p.Process(f)
	require.NotNil(t, result.Error)
	assert.Equal(t, "2026-02-23T00:00:00+03:00", result.Fields.InvoiceDate)
}
