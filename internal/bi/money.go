package bi

import (
	"github.com/shopspring/decimal"
)

var centsPerUnit = decimal.NewFromInt(100)

// FormatMinorUnits renders integer minor units as a dollar string with exactly
// two decimal places, e.g. 1050 -> "$10.50", -500 -> "-$5.00". Decimal math
// only; amounts never pass through floats.
func FormatMinorUnits(minor int64) string {
	d := decimal.NewFromInt(minor).Div(centsPerUnit)
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}
