package model

// Change is a percentage move over one horizon. Valid is false when the
// series was too short for the horizon or the reference price was zero.
type Change struct {
	Pct   float64
	Valid bool
}

// PctOf wraps a computed percentage in a valid Change.
func PctOf(pct float64) Change {
	return Change{Pct: pct, Valid: true}
}

// AssetClass tags a screening result with its instrument category.
type AssetClass string

const (
	AssetStock     AssetClass = "Stocks"
	AssetCrypto    AssetClass = "Crypto"
	AssetForex     AssetClass = "Forex"
	AssetCommodity AssetClass = "Commodities"
	AssetETF       AssetClass = "ETFs"
)

// ScreeningResult is one instrument that cleared its asset class gates.
// Created once per instrument per run and immutable afterward.
type ScreeningResult struct {
	Symbol string
	Name   string
	Class  AssetClass

	// Sector is set for stocks only; "Other" when metadata lookup failed.
	Sector string
	// ETFAssetClass is set for ETFs only; "Other" when not configured.
	ETFAssetClass string

	Price  float64
	Volume float64

	Day       Change
	Week      Change
	Month     Change
	SixMonth  Change
	Year      Change
	ThreeYear Change

	PassDay   bool
	PassWeek  bool
	PassMonth bool

	// Series backs chart generation only; formatting never reads it.
	Series *PriceSeries
}

// DisplayName returns the name to sort and render by, falling back to the
// symbol when no display name is known.
func (r *ScreeningResult) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Symbol
}

// IndexSnapshot is a reference benchmark reading. Unlike ScreeningResult it
// carries no pass/fail semantics and is always displayed when fetchable.
type IndexSnapshot struct {
	Symbol string
	Name   string
	Price  float64

	Day       Change
	Week      Change
	Month     Change
	SixMonth  Change
	Year      Change
	ThreeYear Change

	// Volatility marks a VIX-style index displayed with its level and
	// 1-day change only.
	Volatility bool
}
