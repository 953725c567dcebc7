package assets

import "fmt"

// AssetType categorizes a holding. The category determines how assets are
// grouped in reports and which roll-forward policy applies at month end.
type AssetType int

const (
	Stock AssetType = iota
	Fund
	ConservativeWealthManagement
	BankDeposit
	CashEquivalent
	PensionFund
	// CreditCard balances are liabilities and carry over unchanged when the
	// portfolio is rolled into the next month.
	CreditCard
)

// allAssetTypes lists every type in declaration order, which is also the
// deterministic iteration order used by reports and serialized templates.
var allAssetTypes = []AssetType{
	Stock,
	Fund,
	ConservativeWealthManagement,
	BankDeposit,
	CashEquivalent,
	PensionFund,
	CreditCard,
}

// Code returns the machine code used in configuration files.
func (t AssetType) Code() string {
	switch t {
	case Stock:
		return "stock"
	case Fund:
		return "fund"
	case ConservativeWealthManagement:
		return "conservative_wealth_management"
	case BankDeposit:
		return "bank_deposit"
	case CashEquivalent:
		return "cash_equivalent"
	case PensionFund:
		return "pension_fund"
	case CreditCard:
		return "credit_card"
	default:
		return "unknown"
	}
}

// DisplayName returns a human readable name for the asset type.
func (t AssetType) DisplayName() string {
	switch t {
	case Stock:
		return "Stock"
	case Fund:
		return "Fund"
	case ConservativeWealthManagement:
		return "Conservative Wealth Management"
	case BankDeposit:
		return "Bank Deposit"
	case CashEquivalent:
		return "Cash Equivalent"
	case PensionFund:
		return "Pension Fund"
	case CreditCard:
		return "Credit Card"
	default:
		return "unknown"
	}
}

func (t AssetType) String() string { return t.Code() }

// ParseAssetType parses a machine code into an AssetType.
func ParseAssetType(code string) (AssetType, error) {
	for _, t := range allAssetTypes {
		if t.Code() == code {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown asset type: %q", code)
}

// AllAssetTypes returns every asset type in deterministic order.
func AllAssetTypes() []AssetType {
	types := make([]AssetType, len(allAssetTypes))
	copy(types, allAssetTypes)
	return types
}
