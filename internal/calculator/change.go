package calculator

import "MarketScout/internal/model"

// Observation counts per display horizon, in trading days.
const (
	HorizonDay       = 1
	HorizonWeek      = 5
	HorizonMonth     = 20
	HorizonSixMonth  = 126
	HorizonYear      = 252
	HorizonThreeYear = 756
)

// PercentChange returns the percentage change between the latest close and
// the close n observations earlier. The result is unavailable when the
// series has fewer than n+1 observations or the reference close is zero.
func PercentChange(closes []float64, n int) model.Change {
	if n <= 0 || len(closes) < n+1 {
		return model.Change{}
	}
	ref := closes[len(closes)-1-n]
	if ref == 0 {
		return model.Change{}
	}
	latest := closes[len(closes)-1]
	return model.PctOf((latest - ref) / ref * 100)
}

// clamped shortens the horizon to the oldest available observation so that
// short series still yield a best-effort approximate change.
func clamped(closes []float64, n int) model.Change {
	if m := len(closes) - 1; m < n {
		n = m
	}
	return PercentChange(closes, n)
}

// ChangeSet holds the percentage change over every display horizon.
type ChangeSet struct {
	Day       model.Change
	Week      model.Change
	Month     model.Change
	SixMonth  model.Change
	Year      model.Change
	ThreeYear model.Change
}

// Changes computes all six horizons from a close series. Day and week never
// clamp: a series too short for them yields an unavailable change and the
// caller rejects the instrument. The longer horizons are informational only
// and degrade to the span of the series instead.
func Changes(closes []float64) ChangeSet {
	return ChangeSet{
		Day:       PercentChange(closes, HorizonDay),
		Week:      PercentChange(closes, HorizonWeek),
		Month:     clamped(closes, HorizonMonth),
		SixMonth:  clamped(closes, HorizonSixMonth),
		Year:      clamped(closes, HorizonYear),
		ThreeYear: clamped(closes, HorizonThreeYear),
	}
}
