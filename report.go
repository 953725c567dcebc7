package assets

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ProfitLossInfo is the per-asset line of a report. ProfitLoss is expressed
// in the report's reporting currency, already rounded by the conversion.
type ProfitLossInfo struct {
	Name            string
	Currency        Currency
	PreviousBalance decimal.Decimal
	CurrentBalance  decimal.Decimal
	ProfitLoss      decimal.Decimal
}

// AssetTypeSummary aggregates one asset type. Total always equals the sum of
// the individually converted detail values, never a conversion of their sum.
type AssetTypeSummary struct {
	Type    AssetType
	Total   decimal.Decimal
	Details []ProfitLossInfo
}

// HasProfit reports whether this asset type gained value overall.
func (s AssetTypeSummary) HasProfit() bool { return s.Total.IsPositive() }

// HasLoss reports whether this asset type lost value overall.
func (s AssetTypeSummary) HasLoss() bool { return s.Total.IsNegative() }

// ProfitLossReport is the result of a full portfolio analysis, with every
// amount normalized to the reporting currency.
type ProfitLossReport struct {
	GeneratedAt       time.Time
	ReportingCurrency Currency
	Summaries         []AssetTypeSummary
	Total             decimal.Decimal
}

// HasProfit reports whether the portfolio gained value overall. Break-even
// is neither profit nor loss.
func (r *ProfitLossReport) HasProfit() bool { return r.Total.IsPositive() }

// HasLoss reports whether the portfolio lost value overall.
func (r *ProfitLossReport) HasLoss() bool { return r.Total.IsNegative() }

// SummaryByType returns the summary for the given asset type.
func (r *ProfitLossReport) SummaryByType(t AssetType) (AssetTypeSummary, error) {
	for _, s := range r.Summaries {
		if s.Type == t {
			return s, nil
		}
	}
	return AssetTypeSummary{}, fmt.Errorf("no summary found for asset type %s", t)
}

// ProfitableAssetTypes returns the types whose own total is positive,
// regardless of the grand total.
func (r *ProfitLossReport) ProfitableAssetTypes() []AssetType {
	var types []AssetType
	for _, s := range r.Summaries {
		if s.HasProfit() {
			types = append(types, s.Type)
		}
	}
	return types
}

// LossAssetTypes returns the types whose own total is negative.
func (r *ProfitLossReport) LossAssetTypes() []AssetType {
	var types []AssetType
	for _, s := range r.Summaries {
		if s.HasLoss() {
			types = append(types, s.Type)
		}
	}
	return types
}

// Status classifies the report by the sign of its total.
func (r *ProfitLossReport) Status() string {
	switch {
	case r.HasProfit():
		return "profit"
	case r.HasLoss():
		return "loss"
	default:
		return "break_even"
	}
}

// Dict projects the report into a plain structure for machine consumption.
// Amounts become floats at the boundary; the values are exactly the model's
// decimals, no re-rounding happens here.
func (r *ProfitLossReport) Dict() map[string]any {
	summaries := make([]map[string]any, 0, len(r.Summaries))
	for _, s := range r.Summaries {
		details := make([]map[string]any, 0, len(s.Details))
		for _, d := range s.Details {
			details = append(details, map[string]any{
				"name":                  d.Name,
				"money_code":            d.Currency.String(),
				"last_month_balance":    d.PreviousBalance.InexactFloat64(),
				"current_month_balance": d.CurrentBalance.InexactFloat64(),
				"profit_loss":           d.ProfitLoss.InexactFloat64(),
			})
		}
		summaries = append(summaries, map[string]any{
			"asset_type":        s.Type.Code(),
			"display_name":      s.Type.DisplayName(),
			"total_profit_loss": s.Total.InexactFloat64(),
			"details":           details,
		})
	}
	return map[string]any{
		"generated_at":       r.GeneratedAt.Format(time.RFC3339),
		"reporting_currency": r.ReportingCurrency.String(),
		"status":             r.Status(),
		"total_profit_loss":  r.Total.InexactFloat64(),
		"asset_types":        summaries,
	}
}
