// Package charts renders small price charts for screening results so the
// report can ship a visual alongside the numbers.
package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"MarketScout/internal/model"
)

const (
	// chartBars is roughly one trading month of daily closes.
	chartBars = 22

	chartWidth  = 800
	chartHeight = 400
)

var (
	upColor     = drawing.ColorFromHex("2ecc71")
	downColor   = drawing.ColorFromHex("e74c3c")
	volumeColor = drawing.ColorFromHex("3498db").WithAlpha(150)
)

// Renderer writes PNG price charts into Dir.
type Renderer struct {
	Dir string
}

func NewRenderer(dir string) *Renderer {
	return &Renderer{Dir: dir}
}

// Render draws the recent close history of one result and returns the
// path of the written PNG.
func (r *Renderer) Render(res *model.ScreeningResult) (string, error) {
	if res.Series == nil || res.Series.Len() < 2 {
		return "", fmt.Errorf("chart %s: not enough price history", res.Symbol)
	}
	bars := res.Series.Bars
	if len(bars) > chartBars {
		bars = bars[len(bars)-chartBars:]
	}

	xs := make([]time.Time, len(bars))
	ys := make([]float64, len(bars))
	vols := make([]float64, len(bars))
	hasVolume := false
	for i, bar := range bars {
		xs[i] = bar.Time
		ys[i] = bar.Close
		vols[i] = bar.Volume / 1e6
		if bar.Volume > 0 {
			hasVolume = true
		}
	}

	color := upColor
	if ys[len(ys)-1] < ys[0] {
		color = downColor
	}

	series := chart.TimeSeries{
		Name: res.Symbol,
		Style: chart.Style{
			StrokeColor: color,
			StrokeWidth: 2.0,
			FillColor:   color.WithAlpha(40),
		},
		XValues: xs,
		YValues: ys,
	}
	graph := chart.Chart{
		Title:  fmt.Sprintf("%s (1M)", res.DisplayName()),
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("01-02"),
		},
		YAxis: chart.YAxis{
			ValueFormatter: chart.FloatValueFormatter,
		},
		Series: []chart.Series{
			series,
			chart.LastValueAnnotationSeries(series),
		},
	}
	if hasVolume {
		// Volume in millions on the secondary axis, same panel.
		graph.YAxisSecondary = chart.YAxis{
			ValueFormatter: chart.FloatValueFormatter,
		}
		graph.Series = append(graph.Series, chart.TimeSeries{
			Name:  "Volume (M)",
			YAxis: chart.YAxisSecondary,
			Style: chart.Style{
				StrokeColor: volumeColor,
				StrokeWidth: 1.0,
			},
			XValues: xs,
			YValues: vols,
		})
	}

	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create charts dir: %w", err)
	}
	path := filepath.Join(r.Dir, res.Symbol+"_chart.png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("render chart %s: %w", res.Symbol, err)
	}
	return path, nil
}

// RenderAll draws a chart per result, skipping and logging any that fail.
func (r *Renderer) RenderAll(results []*model.ScreeningResult) []string {
	paths := make([]string, 0, len(results))
	for _, res := range results {
		path, err := r.Render(res)
		if err != nil {
			log.Warn().Str("symbol", res.Symbol).Err(err).Msg("chart render failed")
			continue
		}
		paths = append(paths, path)
	}
	return paths
}
