package renderer

import (
	assets "github.com/Lcx29/simple-financial-instruments"
)

// reportView is the renderer-local projection of a ProfitLossReport, with all
// amounts preformatted so templates stay purely structural.
type reportView struct {
	GeneratedAt string
	Currency    string
	Status      string
	Total       string
	TypeCount   int
	ProfitCount int
	LossCount   int
	Types       []typeView
}

type typeView struct {
	Name     string
	Code     string
	Currency string
	Total    string
	Status   string
	Rows     []rowView
}

type rowView struct {
	Name       string
	Currency   string
	Previous   string
	Current    string
	ProfitLoss string
	Status     string
}

func statusWord(hasProfit, hasLoss bool) string {
	switch {
	case hasProfit:
		return "profit"
	case hasLoss:
		return "loss"
	default:
		return "break-even"
	}
}

func newReportView(r *assets.ProfitLossReport) *reportView {
	reporting := r.ReportingCurrency.String()
	view := &reportView{
		GeneratedAt: r.GeneratedAt.Format("2006-01-02 15:04:05"),
		Currency:    reporting,
		Status:      statusWord(r.HasProfit(), r.HasLoss()),
		Total:       formatSigned(reporting, r.Total),
		TypeCount:   len(r.Summaries),
		ProfitCount: len(r.ProfitableAssetTypes()),
		LossCount:   len(r.LossAssetTypes()),
	}
	for _, s := range r.Summaries {
		tv := typeView{
			Name:     s.Type.DisplayName(),
			Code:     s.Type.Code(),
			Currency: reporting,
			Total:    formatSigned(reporting, s.Total),
			Status:   statusWord(s.HasProfit(), s.HasLoss()),
		}
		for _, d := range s.Details {
			tv.Rows = append(tv.Rows, rowView{
				Name:       d.Name,
				Currency:   d.Currency.String(),
				Previous:   formatBalance(d.PreviousBalance),
				Current:    formatBalance(d.CurrentBalance),
				ProfitLoss: formatSigned(reporting, d.ProfitLoss),
				Status:     statusWord(d.ProfitLoss.IsPositive(), d.ProfitLoss.IsNegative()),
			})
		}
		view.Types = append(view.Types, tv)
	}
	return view
}
