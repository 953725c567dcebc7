package assets

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Asset is a single holding: a named balance in one currency, together with
// the balance observed at the end of the previous month. An Asset is a value;
// transformations return a new Asset and never mutate in place.
type Asset struct {
	name      string
	assetType AssetType
	currency  Currency
	current   decimal.Decimal
	previous  decimal.Decimal
}

// InvalidAmountError reports a balance that cannot be part of an asset.
type InvalidAmountError struct {
	Name   string
	Field  string
	Amount decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("asset %q: %s balance cannot be negative: %s", e.Name, e.Field, e.Amount)
}

// NewAsset validates and creates an Asset. The name must be non-empty after
// trimming and both balances must be non-negative.
func NewAsset(name string, assetType AssetType, currency Currency, current, previous decimal.Decimal) (Asset, error) {
	if strings.TrimSpace(name) == "" {
		return Asset{}, fmt.Errorf("asset name cannot be empty")
	}
	if current.IsNegative() {
		return Asset{}, &InvalidAmountError{Name: name, Field: "current", Amount: current}
	}
	if previous.IsNegative() {
		return Asset{}, &InvalidAmountError{Name: name, Field: "previous", Amount: previous}
	}
	return Asset{
		name:      name,
		assetType: assetType,
		currency:  currency,
		current:   current,
		previous:  previous,
	}, nil
}

func (a Asset) Name() string                     { return a.name }
func (a Asset) Type() AssetType                  { return a.assetType }
func (a Asset) Currency() Currency               { return a.currency }
func (a Asset) CurrentBalance() decimal.Decimal  { return a.current }
func (a Asset) PreviousBalance() decimal.Decimal { return a.previous }

// ProfitLoss returns the change against the previous month, in the asset's
// own currency. It may be negative.
func (a Asset) ProfitLoss() decimal.Decimal { return a.current.Sub(a.previous) }

// HasProfit reports whether the asset gained value this month.
func (a Asset) HasProfit() bool { return a.ProfitLoss().IsPositive() }

// HasLoss reports whether the asset lost value this month.
func (a Asset) HasLoss() bool { return a.ProfitLoss().IsNegative() }

// IsCreditCard reports whether the asset follows the credit-card roll-forward
// policy.
func (a Asset) IsCreditCard() bool { return a.assetType == CreditCard }

// Equal reports whether two assets hold the same values. Balances compare
// numerically, so 0 and 0.00 are equal.
func (a Asset) Equal(b Asset) bool {
	return a.name == b.name &&
		a.assetType == b.assetType &&
		a.currency == b.currency &&
		a.current.Equal(b.current) &&
		a.previous.Equal(b.previous)
}

// PrepareForNextMonth derives the asset's starting point for next month.
// Credit cards carry both balances over unchanged; every other type moves the
// current balance into the previous slot and starts the new month at zero.
func (a Asset) PrepareForNextMonth() Asset {
	if a.IsCreditCard() {
		return a
	}
	return Asset{
		name:      a.name,
		assetType: a.assetType,
		currency:  a.currency,
		current:   decimal.Zero,
		previous:  a.current,
	}
}

func (a Asset) String() string {
	return fmt.Sprintf("Asset(name=%s, type=%s, currency=%s, balance=%s)",
		a.name, a.assetType.DisplayName(), a.currency, a.current)
}
