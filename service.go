package assets

import (
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Service orchestrates the monthly portfolio workflow: profit/loss analysis
// normalized to a single reporting currency, next-month template generation,
// and read-only summaries.
type Service struct {
	repo      Repository
	rates     *RateTable
	reporting Currency
	log       zerolog.Logger
}

// NewService creates a service. The rate table may be nil for callers that
// only use read-only projections like Summary.
func NewService(repo Repository, rates *RateTable, reporting Currency, log zerolog.Logger) *Service {
	return &Service{repo: repo, rates: rates, reporting: reporting, log: log}
}

// ReportingCurrency returns the currency all report amounts are normalized to.
func (s *Service) ReportingCurrency() Currency { return s.reporting }

// AnalyzeProfitLoss loads the portfolio and produces the full profit/loss
// report. Repository failures propagate unchanged. Per-asset conversion
// failures are downgraded to a warning with the unconverted amount as
// fallback, so one bad rate never voids the whole report.
func (s *Service) AnalyzeProfitLoss() (*ProfitLossReport, error) {
	portfolio, err := s.repo.LoadPortfolio()
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("assets", portfolio.Size()).Msg("analyzing profit/loss")

	grouped := portfolio.GroupByAssetType()
	types := make([]AssetType, 0, len(grouped))
	for t := range grouped {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	summaries := make([]AssetTypeSummary, 0, len(types))
	total := decimal.Zero
	for _, t := range types {
		summary := s.analyzeAssetType(t, grouped[t])
		summaries = append(summaries, summary)
		total = total.Add(summary.Total)
		s.log.Info().
			Str("asset_type", t.Code()).
			Str("total", summary.Total.StringFixed(balanceScale)).
			Msg("asset type analyzed")
	}

	report := &ProfitLossReport{
		GeneratedAt:       time.Now(),
		ReportingCurrency: s.reporting,
		Summaries:         summaries,
		Total:             total,
	}
	s.log.Info().Str("total", total.StringFixed(balanceScale)).Str("status", report.Status()).Msg("portfolio analyzed")
	return report, nil
}

// analyzeAssetType computes one type's summary. The total is the sum of the
// individually converted (and rounded) per-asset values, never a conversion
// of a pre-summed total.
func (s *Service) analyzeAssetType(t AssetType, list []Asset) AssetTypeSummary {
	details := make([]ProfitLossInfo, 0, len(list))
	total := decimal.Zero
	for _, a := range list {
		converted := s.toReportingCurrency(a.ProfitLoss(), a.Currency())
		details = append(details, ProfitLossInfo{
			Name:            a.Name(),
			Currency:        a.Currency(),
			PreviousBalance: a.PreviousBalance(),
			CurrentBalance:  a.CurrentBalance(),
			ProfitLoss:      converted,
		})
		total = total.Add(converted)
	}
	return AssetTypeSummary{Type: t, Total: total, Details: details}
}

// toReportingCurrency converts an amount into the reporting currency. On
// conversion failure it logs a warning and returns the unconverted amount;
// this soft-fail is deliberate and mirrors the reference behavior, even
// though it reports a foreign-currency amount as if it were converted.
func (s *Service) toReportingCurrency(amount decimal.Decimal, from Currency) decimal.Decimal {
	if from == s.reporting {
		return amount
	}
	converted, err := s.rates.Convert(from, s.reporting, amount)
	if err != nil {
		s.log.Warn().
			Str("from", from.String()).
			Str("to", s.reporting.String()).
			Err(err).
			Msg("conversion failed, using unconverted amount")
		return amount
	}
	return converted
}

// GenerateNextMonthTemplate rolls the portfolio forward, persists the
// resulting template through the repository, and returns the serialized
// structure for caller-side statistics. A persistence failure propagates as
// an error.
func (s *Service) GenerateNextMonthTemplate() (NextMonthData, error) {
	portfolio, err := s.repo.LoadPortfolio()
	if err != nil {
		return nil, err
	}
	next, err := portfolio.PrepareNextMonth()
	if err != nil {
		return nil, err
	}
	data := NextMonthDataFrom(next)
	if err := s.repo.SaveNextMonthPortfolio(data); err != nil {
		return nil, err
	}
	s.log.Info().Int("asset_types", len(data)).Int("assets", data.TotalAssets()).Msg("generated next month template")
	return data, nil
}

// PortfolioSummary is a read-only projection of the portfolio's composition.
type PortfolioSummary struct {
	TotalAssets int
	AssetTypes  int
	Breakdown   map[AssetType]int
}

// Summary returns portfolio composition statistics. No conversion is
// involved, so the service's rate table is not consulted.
func (s *Service) Summary() (*PortfolioSummary, error) {
	portfolio, err := s.repo.LoadPortfolio()
	if err != nil {
		return nil, err
	}
	breakdown := make(map[AssetType]int)
	for _, a := range portfolio.Assets() {
		breakdown[a.Type()]++
	}
	return &PortfolioSummary{
		TotalAssets: portfolio.Size(),
		AssetTypes:  len(breakdown),
		Breakdown:   breakdown,
	}, nil
}
