package collector

import (
	"fmt"
	"time"

	"MarketScout/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series  map[string]*model.PriceSeries
	Infos   map[string]Info
	Errs    map[string]error
	InfoErr error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(symbol string, days int) (*model.PriceSeries, error) {
	if err, ok := m.Errs[symbol]; ok {
		return nil, err
	}
	if s, ok := m.Series[symbol]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("mock: no data for %s", symbol)
}

func (m *MockFetcher) FetchInfo(symbol string) (Info, error) {
	if m.InfoErr != nil {
		return Info{}, m.InfoErr
	}
	if info, ok := m.Infos[symbol]; ok {
		return info, nil
	}
	return Info{}, fmt.Errorf("mock: no info for %s", symbol)
}

// SeriesFromCloses builds a daily series from close prices, one bar per
// trading day ending today, all carrying the given volume.
func SeriesFromCloses(symbol string, closes []float64, volume float64) *model.PriceSeries {
	bars := make([]model.Bar, len(closes))
	for i, c := range closes {
		bars[i] = model.Bar{
			Time:   time.Now().AddDate(0, 0, -(len(closes) - 1 - i)),
			Close:  c,
			Volume: volume,
		}
	}
	return &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}
}
