package assets

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RateProvider supplies a full exchange rate table in one batch. Keys use the
// "FROM->TO" form (e.g. "USD->CNY"). A provider may return a partial table;
// missing pairs surface later as *UnsupportedPairError, never as a crash.
//
// Pairs are directed: "USD->CNY" and "CNY->USD" are independent entries, and
// providers quote both sides explicitly since market buy/sell spreads make
// them non-reciprocal.
type RateProvider interface {
	FetchAllRates() (map[string]decimal.Decimal, error)
}

// UnsupportedPairError reports a conversion request for a currency pair the
// rate table has no entry for.
type UnsupportedPairError struct {
	From, To Currency
}

func (e *UnsupportedPairError) Error() string {
	return fmt.Sprintf("unsupported currency pair %s->%s", e.From, e.To)
}

// InvalidRateError reports a stored exchange rate that is not positive.
type InvalidRateError struct {
	From, To Currency
	Rate     decimal.Decimal
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("invalid exchange rate %s for %s->%s", e.Rate, e.From, e.To)
}

// ratePair is the directed key of the rate table.
type ratePair struct {
	from, to Currency
}

// RateKey formats the provider key for a directed currency pair.
func RateKey(from, to Currency) string {
	return from.String() + "->" + to.String()
}

// parseRateKey parses a "FROM->TO" provider key.
func parseRateKey(key string) (ratePair, error) {
	from, to, ok := strings.Cut(key, "->")
	if !ok {
		return ratePair{}, fmt.Errorf("malformed rate key %q", key)
	}
	f, err := ParseCurrency(from)
	if err != nil {
		return ratePair{}, fmt.Errorf("rate key %q: %w", key, err)
	}
	t, err := ParseCurrency(to)
	if err != nil {
		return ratePair{}, fmt.Errorf("rate key %q: %w", key, err)
	}
	return ratePair{from: f, to: t}, nil
}

// RateTable holds directed exchange rates, populated once from a provider and
// treated as read-mostly for the remainder of the run. Same-currency pairs
// are implicitly rate 1 and never stored.
type RateTable struct {
	provider RateProvider
	rates    map[ratePair]decimal.Decimal
}

// NewRateTable fetches the full rate table from the provider. A fetch failure
// is fatal to construction; unparseable keys and same-currency pairs in the
// provider output are dropped.
func NewRateTable(provider RateProvider) (*RateTable, error) {
	t := &RateTable{provider: provider}
	if err := t.Refresh(); err != nil {
		return nil, err
	}
	return t, nil
}

// Refresh re-fetches the rate table from the provider. On failure the
// previous table is kept.
func (t *RateTable) Refresh() error {
	fetched, err := t.provider.FetchAllRates()
	if err != nil {
		return fmt.Errorf("could not load exchange rates: %w", err)
	}
	rates := make(map[ratePair]decimal.Decimal, len(fetched))
	for key, rate := range fetched {
		pair, err := parseRateKey(key)
		if err != nil {
			continue
		}
		if pair.from == pair.to {
			continue
		}
		rates[pair] = rate
	}
	t.rates = rates
	return nil
}

// Rate returns the exchange rate for the directed pair. Identical currencies
// always rate 1. A missing pair fails with *UnsupportedPairError and a stored
// non-positive rate with *InvalidRateError.
func (t *RateTable) Rate(from, to Currency) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	rate, ok := t.rates[ratePair{from: from, to: to}]
	if !ok {
		return decimal.Decimal{}, &UnsupportedPairError{From: from, To: to}
	}
	if !rate.IsPositive() {
		return decimal.Decimal{}, &InvalidRateError{From: from, To: to, Rate: rate}
	}
	return rate, nil
}

// Convert converts an amount between currencies. Identical currencies return
// the amount unchanged. Otherwise the result is amount times the stored rate,
// rounded half-up to 2 decimal places; this rounding happens per conversion,
// before any aggregation, so summed totals intentionally reflect the rounded
// per-asset values.
func (t *RateTable) Convert(from, to Currency, amount decimal.Decimal) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	rate, err := t.Rate(from, to)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return amount.Mul(rate).Round(balanceScale), nil
}

// IsSupported reports whether a conversion for the directed pair would
// succeed a lookup. The reverse pair is never consulted.
func (t *RateTable) IsSupported(from, to Currency) bool {
	if from == to {
		return true
	}
	_, ok := t.rates[ratePair{from: from, to: to}]
	return ok
}

// Currencies returns the distinct currencies appearing in the stored table,
// in declaration order.
func (t *RateTable) Currencies() []Currency {
	present := make(map[Currency]bool)
	for pair := range t.rates {
		present[pair.from] = true
		present[pair.to] = true
	}
	var list []Currency
	for _, c := range Currencies() {
		if present[c] {
			list = append(list, c)
		}
	}
	return list
}
