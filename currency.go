package assets

import "fmt"

// Currency is one of the closed set of currencies the tracker understands.
// Values are compared by identity; external string codes are parsed with
// ParseCurrency and unknown codes are rejected rather than defaulted.
type Currency int

const (
	// USD is the United States dollar.
	USD Currency = iota
	// HKD is the Hong Kong dollar.
	HKD
	// CNY is the Chinese yuan, the default reporting currency.
	CNY
)

// DefaultReportingCurrency is the currency all profit/loss figures are
// normalized to unless the service is configured otherwise.
const DefaultReportingCurrency = CNY

// String returns the ISO 4217 code of the currency.
func (c Currency) String() string {
	switch c {
	case USD:
		return "USD"
	case HKD:
		return "HKD"
	case CNY:
		return "CNY"
	default:
		return "unknown"
	}
}

// DisplayName returns a human readable name for the currency.
func (c Currency) DisplayName() string {
	switch c {
	case USD:
		return "US Dollar"
	case HKD:
		return "Hong Kong Dollar"
	case CNY:
		return "Chinese Yuan"
	default:
		return "unknown"
	}
}

// ParseCurrency parses an ISO 4217 code into a Currency.
func ParseCurrency(code string) (Currency, error) {
	switch code {
	case "USD":
		return USD, nil
	case "HKD":
		return HKD, nil
	case "CNY":
		return CNY, nil
	default:
		return 0, fmt.Errorf("unknown currency code: %q", code)
	}
}

// Currencies returns all supported currencies, in declaration order.
func Currencies() []Currency {
	return []Currency{USD, HKD, CNY}
}
