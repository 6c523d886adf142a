// Package dates normalizes invoice date strings into the ISO-8601 form
// embedded in the QR payload. The tax authority expects timestamps in
// Saudi local time, so the offset is the fixed literal +03:00 rather
// than anything derived from a timezone database.
package dates

import (
	"regexp"
	"strings"
)

// Offset is appended to every normalized timestamp.
const Offset = "+03:00"

var (
	dateOnly     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateWithTime = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s+(\d{2}:\d{2})$`)
)

// Normalize coerces the two common plain-date shapes into full ISO-8601
// timestamps. Empty input stays empty, values already carrying a T
// separator pass through untouched, and anything unrecognized is
// returned as-is so callers decide how forgiving to be. No calendar
// validation happens here.
func Normalize(value string) string {
	if value == "" {
		return ""
	}
	if strings.Contains(value, "T") {
		return value
	}
	if dateOnly.MatchString(value) {
		return value + "T00:00:00" + Offset
	}
	if m := dateWithTime.FindStringSubmatch(value); m != nil {
		return m[1] + "T" + m[2] + ":00" + Offset
	}
	return value
}

// HasTimestamp reports whether a value carries a time component.
// Values Normalize could not coerce still lack the T separator, which
// is what strict date checking keys on.
func HasTimestamp(value string) bool {
	return strings.Contains(value, "T")
}
