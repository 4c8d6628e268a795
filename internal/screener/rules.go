package screener

import (
	"MarketScout/internal/config"
	"MarketScout/internal/model"
)

// Gate selects the liquidity-gate shape for an asset class.
type Gate int

const (
	// GateNone always passes (crypto, forex).
	GateNone Gate = iota
	// GateDollarVolume requires price × volume >= MinDollarVolume
	// (stocks, ETFs).
	GateDollarVolume
	// GateContractVolume requires raw contract volume >=
	// MinVolumeContracts (commodity futures).
	GateContractVolume
)

// Rules bundles one asset class's thresholds with its gate shape and
// rendering precision. Immutable once built; shared read-only across all
// screening calls in a run.
type Rules struct {
	Class         model.AssetClass
	Thresholds    config.Thresholds
	Gate          Gate
	PriceDecimals int
}

// StockRules builds screening rules for exchange-listed stocks.
func StockRules(t config.Thresholds) Rules {
	return Rules{Class: model.AssetStock, Thresholds: t, Gate: GateDollarVolume, PriceDecimals: 2}
}

// CryptoRules builds screening rules for crypto pairs (no liquidity gate).
func CryptoRules(t config.Thresholds) Rules {
	return Rules{Class: model.AssetCrypto, Thresholds: t, Gate: GateNone, PriceDecimals: 2}
}

// ForexRules builds screening rules for forex pairs (no liquidity gate,
// four-decimal prices).
func ForexRules(t config.Thresholds) Rules {
	return Rules{Class: model.AssetForex, Thresholds: t, Gate: GateNone, PriceDecimals: 4}
}

// CommodityRules builds screening rules for commodity futures.
func CommodityRules(t config.Thresholds) Rules {
	return Rules{Class: model.AssetCommodity, Thresholds: t, Gate: GateContractVolume, PriceDecimals: 2}
}

// ETFRules builds screening rules for ETFs.
func ETFRules(t config.Thresholds) Rules {
	return Rules{Class: model.AssetETF, Thresholds: t, Gate: GateDollarVolume, PriceDecimals: 2}
}
