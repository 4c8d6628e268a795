package collector

import "MarketScout/internal/model"

// MarketData retrieves historical daily price/volume series.
type MarketData interface {
	// FetchDailyBars returns up to days observations ending at the most
	// recent trading day, oldest first.
	FetchDailyBars(symbol string, days int) (*model.PriceSeries, error)
	Name() string
}

// Info is best-effort instrument metadata.
type Info struct {
	Name   string
	Sector string
}

// Metadata looks up display name and sector classification for a symbol.
// Lookups are best effort; callers fall back to the symbol and "Other".
type Metadata interface {
	FetchInfo(symbol string) (Info, error)
}
