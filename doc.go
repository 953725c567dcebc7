// Package assets tracks a personal multi-currency asset portfolio month over
// month. It is designed to be local-first: the whole state lives in flat YAML
// files the user owns and edits.
//
// The core functionalities include:
//   - Asset & Portfolio model: immutable holdings grouped by asset type, with
//     per-asset profit/loss against the previous month and a roll-forward
//     transformation that turns this month's ending balances into next
//     month's starting point (credit cards carry over unchanged).
//   - Exchange Rate Table: a directed (from, to) -> rate mapping populated
//     once per run from a rate provider, converting amounts into the single
//     reporting currency with per-asset rounding before aggregation.
//   - Asset Management Service: the analysis pipeline that loads the
//     portfolio, groups it by type, normalizes every profit/loss figure to
//     the reporting currency, aggregates hierarchically and stamps a report;
//     and the template generator that rolls the portfolio into next month's
//     starting configuration.
//   - Repository: YAML-backed persistence with tolerant per-record ingestion,
//     so one malformed entry never voids the whole portfolio.
//
// This package serves as the foundational logic for the `sfi` command-line
// tool.
package assets
