package renderer

import (
	assets "github.com/Lcx29/simple-financial-instruments"
)

// ReportMarkdown renders the profit/loss report to a markdown string.
func ReportMarkdown(r *assets.ProfitLossReport) string {
	partials := map[string]string{
		"report_title":      "report_title.md",
		"report_asset_type": "report_asset_type.md",
	}
	return renderTemplate("report", "report.md", partials, newReportView(r))
}
