package charts

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketScout/internal/model"
)

func testResult(symbol string, closes []float64) *model.ScreeningResult {
	bars := make([]model.Bar, len(closes))
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.Bar{Time: day.AddDate(0, 0, i), Close: c, Volume: 1e6}
	}
	return &model.ScreeningResult{
		Symbol: symbol,
		Name:   symbol + " Test",
		Series: &model.PriceSeries{Symbol: symbol, Bars: bars},
	}
}

func TestRenderWritesPNG(t *testing.T) {
	r := NewRenderer(t.TempDir())
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	path, err := r.Render(testResult("AAPL", closes))
	require.NoError(t, err)
	assert.Equal(t, "AAPL_chart.png", filepath.Base(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderRejectsShortSeries(t *testing.T) {
	r := NewRenderer(t.TempDir())
	_, err := r.Render(testResult("XYZ", []float64{100}))
	assert.Error(t, err)

	_, err = r.Render(&model.ScreeningResult{Symbol: "NIL"})
	assert.Error(t, err)
}

func TestRenderAllSkipsFailures(t *testing.T) {
	r := NewRenderer(t.TempDir())
	results := []*model.ScreeningResult{
		testResult("AAPL", []float64{100, 101, 102, 103, 104, 105}),
		testResult("BAD", []float64{100}),
		testResult("MSFT", []float64{200, 199, 198, 197, 196, 195}),
	}
	paths := r.RenderAll(results)
	require.Len(t, paths, 2)
	assert.Contains(t, filepath.Base(paths[0]), "AAPL")
	assert.Contains(t, filepath.Base(paths[1]), "MSFT")
}
