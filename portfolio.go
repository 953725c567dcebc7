package assets

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DuplicateNameError reports two assets sharing the same name within one
// portfolio. Names are compared case-sensitively.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("portfolio contains duplicate asset name %q", e.Name)
}

// Portfolio is a collection of uniquely named assets. Like Asset it is a
// value: roll-forward produces a brand new Portfolio.
type Portfolio struct {
	assets []Asset
}

// NewPortfolio creates a portfolio from a list of assets. It fails with a
// *DuplicateNameError when two assets share a name.
func NewPortfolio(list []Asset) (*Portfolio, error) {
	seen := make(map[string]bool, len(list))
	for _, a := range list {
		if seen[a.Name()] {
			return nil, &DuplicateNameError{Name: a.Name()}
		}
		seen[a.Name()] = true
	}
	assets := make([]Asset, len(list))
	copy(assets, list)
	return &Portfolio{assets: assets}, nil
}

// Assets returns a copy of the asset list, in load order.
func (p *Portfolio) Assets() []Asset {
	list := make([]Asset, len(p.assets))
	copy(list, p.assets)
	return list
}

// Size returns the number of assets in the portfolio.
func (p *Portfolio) Size() int { return len(p.assets) }

// IsEmpty reports whether the portfolio holds no assets.
func (p *Portfolio) IsEmpty() bool { return len(p.assets) == 0 }

// ByName returns the asset with the given name, if present.
func (p *Portfolio) ByName(name string) (Asset, bool) {
	for _, a := range p.assets {
		if a.Name() == name {
			return a, true
		}
	}
	return Asset{}, false
}

// AssetsOfType returns all assets of the given type, in load order.
func (p *Portfolio) AssetsOfType(t AssetType) []Asset {
	var list []Asset
	for _, a := range p.assets {
		if a.Type() == t {
			list = append(list, a)
		}
	}
	return list
}

// AssetsInCurrency returns all assets denominated in the given currency.
func (p *Portfolio) AssetsInCurrency(c Currency) []Asset {
	var list []Asset
	for _, a := range p.assets {
		if a.Currency() == c {
			list = append(list, a)
		}
	}
	return list
}

// AssetTypes returns the distinct asset types present, in deterministic
// declaration order.
func (p *Portfolio) AssetTypes() []AssetType {
	var types []AssetType
	for _, t := range allAssetTypes {
		if p.HasAssetsOfType(t) {
			types = append(types, t)
		}
	}
	return types
}

// HasAssetsOfType reports whether any asset of the given type is present.
func (p *Portfolio) HasAssetsOfType(t AssetType) bool {
	for _, a := range p.assets {
		if a.Type() == t {
			return true
		}
	}
	return false
}

// GroupByAssetType groups all assets by their type, preserving load order
// within each group.
func (p *Portfolio) GroupByAssetType() map[AssetType][]Asset {
	grouped := make(map[AssetType][]Asset)
	for _, a := range p.assets {
		grouped[a.Type()] = append(grouped[a.Type()], a)
	}
	return grouped
}

// TotalCurrentBalance sums all current balances without any currency
// conversion.
func (p *Portfolio) TotalCurrentBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.assets {
		total = total.Add(a.CurrentBalance())
	}
	return total
}

// TotalProfitLoss sums all profit/loss values without any currency
// conversion.
func (p *Portfolio) TotalProfitLoss() decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.assets {
		total = total.Add(a.ProfitLoss())
	}
	return total
}

// PrepareNextMonth rolls every asset forward and returns the resulting
// portfolio. Names are preserved by the roll-forward, but the result is
// re-validated all the same.
func (p *Portfolio) PrepareNextMonth() (*Portfolio, error) {
	next := make([]Asset, len(p.assets))
	for i, a := range p.assets {
		next[i] = a.PrepareForNextMonth()
	}
	return NewPortfolio(next)
}

func (p *Portfolio) String() string {
	return fmt.Sprintf("Portfolio(assets=%d, types=%d)", p.Size(), len(p.AssetTypes()))
}
