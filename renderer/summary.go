package renderer

import (
	assets "github.com/Lcx29/simple-financial-instruments"
)

type summaryView struct {
	TotalAssets int
	AssetTypes  int
	Rows        []summaryRow
}

type summaryRow struct {
	Name  string
	Count int
}

// SummaryMarkdown renders the portfolio composition summary to markdown.
func SummaryMarkdown(s *assets.PortfolioSummary) string {
	view := summaryView{
		TotalAssets: s.TotalAssets,
		AssetTypes:  s.AssetTypes,
	}
	for _, t := range assets.AllAssetTypes() {
		if count, ok := s.Breakdown[t]; ok {
			view.Rows = append(view.Rows, summaryRow{Name: t.DisplayName(), Count: count})
		}
	}
	return renderTemplate("summary", "summary.md", nil, view)
}

type templateStatsView struct {
	TotalAssets int
	AssetTypes  int
	Rows        []summaryRow
}

// TemplateMarkdown renders the statistics of a generated next-month template.
func TemplateMarkdown(data assets.NextMonthData) string {
	view := templateStatsView{
		TotalAssets: data.TotalAssets(),
		AssetTypes:  len(data),
	}
	for _, t := range assets.AllAssetTypes() {
		if records, ok := data[t.Code()]; ok {
			view.Rows = append(view.Rows, summaryRow{Name: t.DisplayName(), Count: len(records)})
		}
	}
	return renderTemplate("template_stats", "template_stats.md", nil, view)
}
