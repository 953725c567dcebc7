package assets

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// StaticRateProvider serves a fixed rate table, for offline runs and tests.
type StaticRateProvider struct {
	rates map[string]decimal.Decimal
}

// NewStaticRateProvider creates a provider around a fixed "FROM->TO" keyed
// rate table.
func NewStaticRateProvider(rates map[string]decimal.Decimal) *StaticRateProvider {
	copied := make(map[string]decimal.Decimal, len(rates))
	for k, v := range rates {
		copied[k] = v
	}
	return &StaticRateProvider{rates: copied}
}

// FetchAllRates returns a copy of the fixed table.
func (p *StaticRateProvider) FetchAllRates() (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal, len(p.rates))
	for k, v := range p.rates {
		rates[k] = v
	}
	return rates, nil
}

// ParseRateSpec parses a comma separated list of "FROM->TO=rate" entries,
// e.g. "USD->CNY=7.20,HKD->CNY=0.92", into a provider rate table.
func ParseRateSpec(spec string) (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal)
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("malformed rate entry %q", entry)
		}
		if _, err := parseRateKey(key); err != nil {
			return nil, err
		}
		rate, err := ParseAmount(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("malformed rate in entry %q: %w", entry, err)
		}
		rates[strings.TrimSpace(key)] = rate
	}
	return rates, nil
}
