// Package amount holds the whole-unit VAT arithmetic behind the
// generate conveniences. Derived values round to whole units because
// payload amounts carry no fraction digits.
package amount

import (
	"github.com/shopspring/decimal"
)

// FromString parses a decimal amount from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// IsWhole reports whether d has no fractional part
func IsWhole(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(0))
}

// VATOnNet computes the VAT charged on a net amount: net * (rate/100)
// Rounds to whole units
func VATOnNet(net decimal.Decimal, ratePercent int) decimal.Decimal {
	if ratePercent <= 0 {
		return decimal.Zero
	}
	rate := decimal.NewFromInt(int64(ratePercent))
	hundred := decimal.NewFromInt(100)
	return net.Mul(rate).Div(hundred).Round(0)
}

// AddVAT returns the tax-inclusive total for a net amount
func AddVAT(net decimal.Decimal, ratePercent int) decimal.Decimal {
	return net.Round(0).Add(VATOnNet(net, ratePercent))
}

// VATPortion extracts the VAT contained in a tax-inclusive total:
// total * rate / (100 + rate)
// Rounds to whole units
func VATPortion(total decimal.Decimal, ratePercent int) decimal.Decimal {
	if ratePercent <= 0 {
		return decimal.Zero
	}
	rate := decimal.NewFromInt(int64(ratePercent))
	hundred := decimal.NewFromInt(100)
	return total.Mul(rate).Div(hundred.Add(rate)).Round(0)
}
