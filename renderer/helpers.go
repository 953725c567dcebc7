package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatAmount renders a decimal amount with the currency's symbol and
// grouping, e.g. "¥700.00". The decimal carries the value exactly; the
// go-money formatter only supplies currency metadata and layout.
func formatAmount(code string, value decimal.Decimal) string {
	// the Money constructor is the only way to get a never-nil currency
	cur := *money.New(0, code).Currency()
	shifted := value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(shifted.IntPart())
}

// formatSigned renders an amount with an explicit sign prefix. Zero renders
// as "-" to read as break-even in tables.
func formatSigned(code string, value decimal.Decimal) string {
	if value.IsZero() {
		return "-"
	}
	if value.IsPositive() {
		return "+" + formatAmount(code, value)
	}
	return "-" + formatAmount(code, value.Abs())
}

// formatBalance renders a plain two-decimal balance without currency symbol.
func formatBalance(value decimal.Decimal) string {
	return value.StringFixed(2)
}
