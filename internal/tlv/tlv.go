// Package tlv encodes the five simplified-invoice fields into the
// tag-length-value byte stream a phase-1 QR code carries. Each record
// is one tag byte, one length byte, then the value's UTF-8 bytes, and
// the single length byte caps every value at 255 bytes. Decoding is a
// scanner concern and is not implemented here.
package tlv

import (
	"encoding/base64"
	"errors"

	"github.com/abdalrahmangwish/qr/internal/model"
)

// Tags assigned by the tax authority. Records appear in the payload in
// tag order; reordering them breaks scanners.
const (
	TagSellerName   byte = 1
	TagSellerTRN    byte = 2
	TagInvoiceDate  byte = 3
	TagInvoiceTotal byte = 4
	TagVATTotal     byte = 5
)

// MaxValueLen is the largest value size a one-byte length field can frame.
const MaxValueLen = 255

// AppendRecord appends a single record to dst and returns the extended
// slice. A value longer than MaxValueLen aborts with an EncodingError
// and leaves dst untouched; the length byte is never wrapped and the
// value is never truncated.
func AppendRecord(dst []byte, tag byte, value string) ([]byte, error) {
	if len(value) > MaxValueLen {
		return dst, &model.EncodingError{Tag: tag, ByteLength: len(value), Max: MaxValueLen}
	}
	dst = append(dst, tag, byte(len(value)))
	return append(dst, value...), nil
}

// Payload encodes the five fields as consecutive records, tags 1
// through 5. Field values are written byte-for-byte as supplied.
func Payload(f model.Fields) ([]byte, error) {
	values := f.Ordered()
	names := model.Names()

	size := 0
	for _, v := range values {
		size += 2 + len(v)
	}

	buf := make([]byte, 0, size)
	for i, value := range values {
		next, err := AppendRecord(buf, byte(i+1), value)
		if err != nil {
			var encErr *model.EncodingError
			if errors.As(err, &encErr) {
				encErr.Field = names[i]
			}
			return nil, err
		}
		buf = next
	}
	return buf, nil
}

// ToBase64 renders payload bytes as standard padded base64, the text
// form embedded in the QR image.
func ToBase64(payload []byte) string {
	return base64.StdEncoding.EncodeToString(payload)
}

// Encode is the one-call form: fields in, base64 text out.
func Encode(f model.Fields) (string, error) {
	payload, err := Payload(f)
	if err != nil {
		return "", err
	}
	return ToBase64(payload), nil
}
