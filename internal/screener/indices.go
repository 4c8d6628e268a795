package screener

import (
	"github.com/rs/zerolog/log"

	"MarketScout/internal/calculator"
	"MarketScout/internal/collector"
	"MarketScout/internal/model"
)

// Benchmark is one reference index shown at the top of the report.
type Benchmark struct {
	Symbol string
	Name   string
	// Volatility indices display their level and 1-day change only.
	Volatility bool
}

// DefaultBenchmarks are the indices shown in every report.
var DefaultBenchmarks = []Benchmark{
	{Symbol: "^GSPC", Name: "S&P 500"},
	{Symbol: "^IXIC", Name: "Nasdaq"},
	{Symbol: "^DJI", Name: "Dow 30"},
	{Symbol: "^RUT", Name: "Russell 2000"},
	{Symbol: "^VIX", Name: "VIX", Volatility: true},
}

// SnapshotAggregator computes multi-horizon returns for benchmark indices,
// independent of any pass/fail thresholds.
type SnapshotAggregator struct {
	Market collector.MarketData
}

// NewSnapshotAggregator creates a SnapshotAggregator.
func NewSnapshotAggregator(market collector.MarketData) *SnapshotAggregator {
	return &SnapshotAggregator{Market: market}
}

// Snapshot fetches each benchmark and computes its changes. Individual
// failures are logged and skipped; the remaining benchmarks still report.
func (a *SnapshotAggregator) Snapshot(benchmarks []Benchmark) []*model.IndexSnapshot {
	var out []*model.IndexSnapshot
	for _, b := range benchmarks {
		series, err := a.Market.FetchDailyBars(b.Symbol, lookbackDays)
		if err != nil {
			log.Warn().Str("symbol", b.Symbol).Err(err).Msg("index fetch failed, skipping")
			continue
		}
		if series.Len() < 2 {
			log.Warn().Str("symbol", b.Symbol).Int("observations", series.Len()).Msg("index series too short, skipping")
			continue
		}
		ch := calculator.Changes(series.Closes())
		out = append(out, &model.IndexSnapshot{
			Symbol:     b.Symbol,
			Name:       b.Name,
			Price:      round(series.Last().Close, 2),
			Day:        round2(ch.Day),
			Week:       round2(ch.Week),
			Month:      round2(ch.Month),
			SixMonth:   round2(ch.SixMonth),
			Year:       round2(ch.Year),
			ThreeYear:  round2(ch.ThreeYear),
			Volatility: b.Volatility,
		})
	}
	return out
}
