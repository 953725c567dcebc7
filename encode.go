package assets

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// AssetRecord is the boundary form of an asset as persisted in the
// configuration file. Balances are plain floats at this boundary; the field
// names are fixed by the file format and must round-trip exactly.
type AssetRecord struct {
	Name            string  `yaml:"name"`
	MoneyCode       string  `yaml:"money_code"`
	CurrentBalance  float64 `yaml:"current_account_balance"`
	PreviousBalance float64 `yaml:"last_month_account_balance"`
}

// newAssetRecord converts a domain asset to its persisted form.
func newAssetRecord(a Asset) AssetRecord {
	return AssetRecord{
		Name:            a.Name(),
		MoneyCode:       a.Currency().String(),
		CurrentBalance:  a.CurrentBalance().InexactFloat64(),
		PreviousBalance: a.PreviousBalance().InexactFloat64(),
	}
}

// Asset converts a persisted record back to a validated domain asset.
func (r AssetRecord) Asset(t AssetType) (Asset, error) {
	currency, err := ParseCurrency(r.MoneyCode)
	if err != nil {
		return Asset{}, fmt.Errorf("asset %q: %w", r.Name, err)
	}
	return NewAsset(r.Name, t, currency, D(r.CurrentBalance), D(r.PreviousBalance))
}

// NextMonthData is the serializable shape of a portfolio: one record list per
// asset-type code. It is what the repository persists and what template
// generation returns for caller-side statistics.
type NextMonthData map[string][]AssetRecord

// NextMonthDataFrom projects a portfolio into its serializable shape.
func NextMonthDataFrom(p *Portfolio) NextMonthData {
	data := make(NextMonthData)
	for t, list := range p.GroupByAssetType() {
		records := make([]AssetRecord, 0, len(list))
		for _, a := range list {
			records = append(records, newAssetRecord(a))
		}
		data[t.Code()] = records
	}
	return data
}

// TotalAssets counts the records across all types.
func (d NextMonthData) TotalAssets() int {
	n := 0
	for _, records := range d {
		n += len(records)
	}
	return n
}

// MarshalYAML emits the type sections in deterministic asset-type order so
// the generated files are stable run over run.
func (d NextMonthData) MarshalYAML() (any, error) {
	codes := make([]string, 0, len(d))
	for code := range d {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	sort.SliceStable(codes, func(i, j int) bool { return typeOrder(codes[i]) < typeOrder(codes[j]) })

	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, code := range codes {
		var key, value yaml.Node
		key.SetString(code)
		if err := value.Encode(d[code]); err != nil {
			return nil, fmt.Errorf("could not encode assets of type %q: %w", code, err)
		}
		root.Content = append(root.Content, &key, &value)
	}
	return root, nil
}

// typeOrder ranks known type codes by declaration order; unknown codes rank
// last and keep their alphabetical order.
func typeOrder(code string) int {
	for i, t := range allAssetTypes {
		if t.Code() == code {
			return i
		}
	}
	return len(allAssetTypes)
}
