package tlv_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdalrahmangwish/qr/internal/model"
	"github.com/abdalrahmangwish/qr/internal/tlv"
)

// Reference payloads, worked out by hand from the wire layout.
const (
	goldenBase64 = "AQdBY21lIENvAg8zMDAwMDAwMDAwMDAwMDMDGTIwMjYtMDItMjNUMTg6MzA6MDArMDM6MDAEAzExNQUCMTU="
	arabicBase64 = "ARHYtNix2YPYqSDYo9mD2YXZigIPMzEwMTIyMzkzNTAwMDAzAxkyMDI2LTAyLTIzVDAwOjAwOjAwKzAzOjAwBAMyMDAFAjI2"
)

func goldenFields() model.Fields {
	return model.Fields{
		SellerName:   "Acme Co",
		SellerTRN:    "300000000000003",
		InvoiceDate:  "2026-02-23T18:30:00+03:00",
		InvoiceTotal: "115",
		VATTotal:     "15",
	}
}

func arabicFields() model.Fields {
	return model.Fields{
		SellerName:   "شركة أكمي",
		SellerTRN:    "310122393500003",
		InvoiceDate:  "2026-02-23T00:00:00+03:00",
		InvoiceTotal: "200",
		VATTotal:     "26",
	}
}

func TestAppendRecord(t *testing.T) {
	buf, err := tlv.AppendRecord(nil, tlv.TagSellerName, "Acme Co")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x07, 'A', 'c', 'm', 'e', ' ', 'C', 'o'}, buf)
}

func TestAppendRecord_ExtendsDst(t *testing.T) {
	buf, err := tlv.AppendRecord([]byte{0xAA}, tlv.TagVATTotal, "15")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0x05, 0x02, '1', '5'}, buf)
}

func TestAppendRecord_EmptyValue(t *testing.T) {
	buf, err := tlv.AppendRecord(nil, tlv.TagInvoiceDate, "")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x00}, buf)
}

func TestAppendRecord_ValueTooLong(t *testing.T) {
	long := strings.Repeat("x", tlv.MaxValueLen+1)

	buf, err := tlv.AppendRecord([]byte{0xAA}, tlv.TagSellerName, long)
	require.Error(t, err)
	assert.Equal(t, []byte{0xAA}, buf, "dst must be untouched on abort")

	var encErr *model.EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, tlv.TagSellerName, encErr.Tag)
	assert.Equal(t, 256, encErr.ByteLength)
	assert.Equal(t, tlv.MaxValueLen, encErr.Max)
}

func TestAppendRecord_MaxLenValueFits(t *testing.T) {
	max := strings.Repeat("x", tlv.MaxValueLen)

	buf, err := tlv.AppendRecord(nil, tlv.TagSellerName, max)
	require.NoError(t, err)
	assert.Len(t, buf, 2+tlv.MaxValueLen)
	assert.Equal(t, byte(0xFF), buf[1])
}

func TestPayload_TagWalk(t *testing.T) {
	f := goldenFields()
	payload, err := tlv.Payload(f)
	require.NoError(t, err)

	// Hand-decode: tags 1..5 in order, each length byte matching the
	// value it frames.
	values := f.Ordered()
	pos := 0
	for i, want := range values {
		require.Less(t, pos+1, len(payload))
		assert.Equal(t, byte(i+1), payload[pos], "tag at record %d", i+1)
		length := int(payload[pos+1])
		assert.Equal(t, len(want), length, "length byte at record %d", i+1)
		assert.Equal(t, want, string(payload[pos+2:pos+2+length]))
		pos += 2 + length
	}
	assert.Equal(t, len(payload), pos, "no trailing bytes")
}

func TestPayload_ByteAccounting(t *testing.T) {
	f := goldenFields()
	payload, err := tlv.Payload(f)
	require.NoError(t, err)

	size := 0
	for _, v := range f.Ordered() {
		size += 2 + len(v)
	}
	assert.Len(t, payload, size)
	assert.Len(t, payload, 62)
}

func TestPayload_UTF8LengthIsBytes(t *testing.T) {
	payload, err := tlv.Payload(arabicFields())
	require.NoError(t, err)

	// The Arabic seller name is 9 runes but 17 UTF-8 bytes; the length
	// byte must count bytes.
	assert.Equal(t, byte(0x11), payload[1])
	assert.Len(t, payload, 72)
}

func TestPayload_ValueTooLong(t *testing.T) {
	f := goldenFields()
	f.SellerName = strings.Repeat("y", 300)

	payload, err := tlv.Payload(f)
	assert.Nil(t, payload)

	var encErr *model.EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, model.FieldSellerName, encErr.Field)
	assert.Equal(t, tlv.TagSellerName, encErr.Tag)
	assert.Equal(t, 300, encErr.ByteLength)
}

func TestEncode_Golden(t *testing.T) {
	got, err := tlv.Encode(goldenFields())
	require.NoError(t, err)
	assert.Equal(t, goldenBase64, got)
}

func TestEncode_GoldenArabic(t *testing.T) {
	got, err := tlv.Encode(arabicFields())
	require.NoError(t, err)
	assert.Equal(t, arabicBase64, got)
}

func TestEncode_Deterministic(t *testing.T) {
	first, err := tlv.Encode(goldenFields())
	require.NoError(t, err)
	second, err := tlv.Encode(goldenFields())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncode_RoundTripsThroughBase64(t *testing.T) {
	encoded, err := tlv.Encode(goldenFields())
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	payload, err := tlv.Payload(goldenFields())
	require.NoError(t, err)
	assert.Equal(t, payload, raw)
}

func BenchmarkPayload(b *testing.B) {
	f := goldenFields()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := tlv.Payload(f); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	f := goldenFields()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := tlv.Encode(f); err != nil {
			b.Fatal(err)
		}
	}
}
