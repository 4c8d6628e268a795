package screener

import (
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"MarketScout/internal/calculator"
	"MarketScout/internal/collector"
	"MarketScout/internal/model"
)

const (
	// minObservations is the shortest series worth screening.
	minObservations = 5
	// lookbackDays covers five trading years so the 3-year horizon is
	// computable with full history.
	lookbackDays = 1260
)

// SkipReason explains why an instrument produced no result. Empty means
// the instrument was accepted.
type SkipReason string

const (
	SkipFetchFailed   SkipReason = "fetch failed"
	SkipShortSeries   SkipReason = "fewer than 5 observations"
	SkipNoShortChange SkipReason = "1D or 1W change unavailable"
	SkipBelowMinPrice SkipReason = "below minimum price"
	SkipIlliquid      SkipReason = "liquidity gate not met"
	SkipQuiet         SkipReason = "no horizon threshold met"
)

// Screener evaluates one instrument at a time against asset-class rules.
type Screener struct {
	Market collector.MarketData
	// Meta enriches stocks with display name and sector; may be nil.
	Meta collector.Metadata
}

// NewScreener creates a Screener over the given providers.
func NewScreener(market collector.MarketData, meta collector.Metadata) *Screener {
	return &Screener{Market: market, Meta: meta}
}

// Screen fetches the instrument's history and decides pass/fail. On accept
// it returns a fully populated result; on skip the result is nil and the
// reason says why. The error is non-nil only for provider failures, which
// are also a skip.
func (s *Screener) Screen(symbol, name string, rules Rules) (*model.ScreeningResult, SkipReason, error) {
	series, err := s.Market.FetchDailyBars(symbol, lookbackDays)
	if err != nil {
		return nil, SkipFetchFailed, err
	}
	if series.Len() < minObservations {
		return nil, SkipShortSeries, nil
	}

	ch := calculator.Changes(series.Closes())
	if !ch.Day.Valid || !ch.Week.Valid {
		return nil, SkipNoShortChange, nil
	}

	last := series.Last()
	price, volume := last.Close, last.Volume

	th := rules.Thresholds
	switch rules.Gate {
	case GateDollarVolume:
		if price*volume < th.MinDollarVolume {
			return nil, SkipIlliquid, nil
		}
	case GateContractVolume:
		if volume < th.MinVolumeContracts {
			return nil, SkipIlliquid, nil
		}
	}
	if rules.Class == model.AssetStock && price < th.MinPrice {
		return nil, SkipBelowMinPrice, nil
	}

	passDay := math.Abs(ch.Day.Pct) >= th.OneDayPctAbs
	passWeek := math.Abs(ch.Week.Pct) >= th.OneWeekPctAbs
	passMonth := ch.Month.Valid && math.Abs(ch.Month.Pct) >= th.OneMonthPctAbs
	if !passDay && !passWeek && !passMonth {
		return nil, SkipQuiet, nil
	}

	sector := ""
	if rules.Class == model.AssetStock {
		name, sector = s.stockInfo(symbol)
	}
	if name == "" {
		name = symbol
	}

	return &model.ScreeningResult{
		Symbol:    symbol,
		Name:      name,
		Class:     rules.Class,
		Sector:    sector,
		Price:     round(price, rules.PriceDecimals),
		Volume:    volume,
		Day:       round2(ch.Day),
		Week:      round2(ch.Week),
		Month:     round2(ch.Month),
		SixMonth:  round2(ch.SixMonth),
		Year:      round2(ch.Year),
		ThreeYear: round2(ch.ThreeYear),
		PassDay:   passDay,
		PassWeek:  passWeek,
		PassMonth: passMonth,
		Series:    series,
	}, "", nil
}

// stockInfo looks up display name and sector, falling back to the symbol
// and "Other". A metadata failure never rejects the instrument.
func (s *Screener) stockInfo(symbol string) (name, sector string) {
	name, sector = symbol, "Other"
	if s.Meta == nil {
		return
	}
	info, err := s.Meta.FetchInfo(symbol)
	if err != nil {
		log.Debug().Str("symbol", symbol).Err(err).Msg("metadata lookup failed")
		return
	}
	if info.Name != "" {
		name = info.Name
	}
	if sec := strings.TrimSpace(info.Sector); sec != "" {
		sector = sec
	}
	return
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func round2(c model.Change) model.Change {
	if !c.Valid {
		return c
	}
	return model.PctOf(round(c.Pct, 2))
}
