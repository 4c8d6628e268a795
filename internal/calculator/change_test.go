package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
		n      int
		want   float64
		valid  bool
	}{
		{"one day up", []float64{100, 106}, 1, 6.0, true},
		{"one day down", []float64{100, 94}, 1, -6.0, true},
		{"five day", []float64{100, 101, 102, 103, 104, 110}, 5, 10.0, true},
		{"exactly enough", []float64{50, 55}, 1, 10.0, true},
		{"series too short", []float64{100}, 1, 0, false},
		{"short for week", []float64{100, 101, 102}, 5, 0, false},
		{"empty", nil, 1, 0, false},
		{"zero reference price", []float64{0, 100}, 1, 0, false},
		{"zero horizon", []float64{100, 106}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentChange(tt.closes, tt.n)
			assert.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				assert.InDelta(t, tt.want, got.Pct, 1e-9)
			}
		})
	}
}

func TestPercentChangeShortSeriesAlwaysUnavailable(t *testing.T) {
	// Any series with fewer than n+1 observations must be unavailable.
	closes := []float64{100, 101, 102, 103}
	for n := len(closes); n < len(closes)+10; n++ {
		assert.False(t, PercentChange(closes, n).Valid, "n=%d", n)
	}
}

func TestChangesMandatoryVsClamped(t *testing.T) {
	// 10 observations: day and week computable, month and longer clamp to
	// the full span of the series.
	closes := make([]float64, 10)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	ch := Changes(closes)

	require.True(t, ch.Day.Valid)
	require.True(t, ch.Week.Valid)
	assert.InDelta(t, (109.0-108.0)/108.0*100, ch.Day.Pct, 1e-9)
	assert.InDelta(t, (109.0-104.0)/104.0*100, ch.Week.Pct, 1e-9)

	span := (109.0 - 100.0) / 100.0 * 100
	for _, c := range []struct {
		name string
		got  float64
		ok   bool
	}{
		{"month", ch.Month.Pct, ch.Month.Valid},
		{"six month", ch.SixMonth.Pct, ch.SixMonth.Valid},
		{"year", ch.Year.Pct, ch.Year.Valid},
		{"three year", ch.ThreeYear.Pct, ch.ThreeYear.Valid},
	} {
		require.True(t, c.ok, c.name)
		assert.InDelta(t, span, c.got, 1e-9, c.name)
	}
}

func TestChangesDayWeekNeverClamp(t *testing.T) {
	// Four observations: day is computable, week is not. Week must come
	// back unavailable rather than clamped to the series span.
	ch := Changes([]float64{100, 101, 102, 103})
	assert.True(t, ch.Day.Valid)
	assert.False(t, ch.Week.Valid)
	// Long horizons still degrade gracefully.
	assert.True(t, ch.Month.Valid)
	assert.InDelta(t, 3.0, ch.Month.Pct, 1e-9)
}

func TestChangesFullHistory(t *testing.T) {
	// 757 observations allow the unclamped 3-year horizon.
	closes := make([]float64, HorizonThreeYear+1)
	for i := range closes {
		closes[i] = 100
	}
	closes[0] = 50
	closes[len(closes)-1] = 100
	ch := Changes(closes)
	require.True(t, ch.ThreeYear.Valid)
	assert.InDelta(t, 100.0, ch.ThreeYear.Pct, 1e-9)
	require.True(t, ch.Year.Valid)
	assert.InDelta(t, 0.0, ch.Year.Pct, 1e-9)
}
