package screener

import (
	"github.com/rs/zerolog/log"

	"MarketScout/internal/config"
	"MarketScout/internal/model"
	"MarketScout/internal/universe"
)

// Orchestrator walks every configured universe, deduplicates symbols and
// collects passing results in first-seen order.
type Orchestrator struct {
	Screener *Screener
	Universe universe.Provider
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(s *Screener, u universe.Provider) *Orchestrator {
	return &Orchestrator{Screener: s, Universe: u}
}

// RunConfig selects the universes and per-asset-class rules for one run.
type RunConfig struct {
	Exchanges []string
	Stock     Rules
	Crypto    Rules
	Forex     Rules
	Commodity Rules
	ETF       Rules

	CryptoList    []config.Instrument
	ForexList     []config.Instrument
	CommodityList []config.Instrument
	ETFList       []config.Instrument

	// StocksOnly restricts the run to exchange universes.
	StocksOnly bool
}

// RunConfigFrom maps loaded configuration onto a RunConfig.
func RunConfigFrom(cfg *config.Config) RunConfig {
	return RunConfig{
		Exchanges:     cfg.Exchanges,
		Stock:         StockRules(cfg.Thresholds),
		Crypto:        CryptoRules(cfg.CryptoThresholds),
		Forex:         ForexRules(cfg.ForexThresholds),
		Commodity:     CommodityRules(cfg.CommodityThresholds),
		ETF:           ETFRules(cfg.ETFThresholds),
		CryptoList:    cfg.Crypto,
		ForexList:     cfg.Forex,
		CommodityList: cfg.Commodities,
		ETFList:       cfg.ETFs,
		StocksOnly:    cfg.StocksOnly,
	}
}

// Run screens every universe sequentially. A single seen-symbol set spans
// the whole run, so a symbol present in several universes is screened once
// and the first occurrence wins. Per-symbol failures are logged and never
// abort the run.
func (o *Orchestrator) Run(rc RunConfig) []*model.ScreeningResult {
	seen := make(map[string]bool)
	var results []*model.ScreeningResult

	for _, exchange := range rc.Exchanges {
		symbols := o.exchangeSymbols(exchange)
		log.Info().Str("exchange", exchange).Int("symbols", len(symbols)).Msg("scanning exchange")
		for _, symbol := range symbols {
			results = o.screenOne(results, seen, symbol, "", "", rc.Stock)
		}
	}
	if rc.StocksOnly {
		return results
	}

	log.Info().Msg("scanning crypto")
	for _, inst := range rc.CryptoList {
		results = o.screenOne(results, seen, inst.Symbol, inst.Name, "", rc.Crypto)
	}
	log.Info().Msg("scanning forex")
	for _, inst := range rc.ForexList {
		results = o.screenOne(results, seen, inst.Symbol, inst.Name, "", rc.Forex)
	}
	log.Info().Msg("scanning commodities")
	for _, inst := range rc.CommodityList {
		results = o.screenOne(results, seen, inst.Symbol, inst.Name, "", rc.Commodity)
	}
	log.Info().Msg("scanning ETFs")
	for _, inst := range rc.ETFList {
		assetClass := inst.AssetClass
		if assetClass == "" {
			assetClass = "Other"
		}
		results = o.screenOne(results, seen, inst.Symbol, inst.Name, assetClass, rc.ETF)
	}
	return results
}

// exchangeSymbols lists an exchange universe, falling back to the static
// built-in list on failure or an empty listing.
func (o *Orchestrator) exchangeSymbols(exchange string) []string {
	symbols, err := o.Universe.ListSymbols(exchange)
	if err != nil {
		log.Warn().Str("exchange", exchange).Err(err).Msg("universe fetch failed, using fallback list")
		return universe.Fallback(exchange)
	}
	if len(symbols) == 0 {
		log.Warn().Str("exchange", exchange).Msg("empty universe listing, using fallback list")
		return universe.Fallback(exchange)
	}
	return symbols
}

func (o *Orchestrator) screenOne(results []*model.ScreeningResult, seen map[string]bool, symbol, name, etfAssetClass string, rules Rules) []*model.ScreeningResult {
	if symbol == "" || seen[symbol] {
		return results
	}
	seen[symbol] = true

	res, skip, err := o.Screener.Screen(symbol, name, rules)
	if err != nil {
		log.Warn().Str("symbol", symbol).Err(err).Msg("screen failed, skipping")
		return results
	}
	if res == nil {
		log.Debug().Str("symbol", symbol).Str("reason", string(skip)).Msg("skipped")
		return results
	}
	if res.Class == model.AssetETF {
		res.ETFAssetClass = etfAssetClass
	}
	log.Info().
		Str("symbol", symbol).
		Str("class", string(res.Class)).
		Float64("one_day_pct", res.Day.Pct).
		Msg("match")
	return append(results, res)
}
