package notifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketScout/internal/model"
)

func fullChanges(pct float64) [6]model.Change {
	return [6]model.Change{
		model.PctOf(pct), model.PctOf(pct), model.PctOf(pct),
		model.PctOf(pct), model.PctOf(pct), model.PctOf(pct),
	}
}

func stockResult(symbol, name, sector string, price, volume float64) *model.ScreeningResult {
	ch := fullChanges(6)
	return &model.ScreeningResult{
		Symbol: symbol, Name: name, Class: model.AssetStock, Sector: sector,
		Price: price, Volume: volume,
		Day: ch[0], Week: ch[1], Month: ch[2],
		SixMonth: ch[3], Year: ch[4], ThreeYear: ch[5],
		PassDay: true,
	}
}

func TestFormatReportNothingFound(t *testing.T) {
	page1, page2 := FormatReport(nil, nil, nil)
	assert.Equal(t, "📊 <b>MarketScout Scan</b>\n\nNo stocks, crypto, forex, commodities, or ETFs found matching criteria.", page1)
	assert.Empty(t, page2)
}

func TestFormatReportIndicesOnly(t *testing.T) {
	indices := []*model.IndexSnapshot{
		{
			Symbol: "^GSPC", Name: "S&P 500", Price: 5432.10,
			Day: model.PctOf(1), Week: model.PctOf(2), Month: model.PctOf(3),
			SixMonth: model.PctOf(8), Year: model.PctOf(15), ThreeYear: model.PctOf(40),
		},
		{
			Symbol: "^VIX", Name: "VIX", Price: 16.5, Volatility: true,
			Day: model.PctOf(-17.5),
		},
	}
	page1, page2 := FormatReport(nil, indices, nil)

	assert.Contains(t, page1, "Indices snapshot:")
	assert.Contains(t, page1, "<b>🌍 Indices</b>")
	assert.Contains(t, page1, "<b>S&amp;P 500 (^GSPC)</b> 5432.10\n  1D: +1.00% | 1W: +2.00% | 1M: +3.00% | 6M: +8.00% | 1Y: +15.00% | 3Y: +40.00%")
	assert.Contains(t, page1, "<b>VIX (^VIX)</b> 16.50  1D: -17.50%")
	// A volatility index never gets the full horizon line.
	assert.NotContains(t, page1, "(^VIX)</b> 16.50\n")
	assert.Empty(t, page2)
}

func TestFormatReportStockSectorOrdering(t *testing.T) {
	results := []*model.ScreeningResult{
		stockResult("ZZZ", "Zeta Corp", "Utilities", 50, 30e6),
		stockResult("MISC", "Misc Co", "", 20, 25e6),
		stockResult("AAPL", "Apple Inc.", "Technology", 234.56, 10e6),
		stockResult("ACME", "acme corp", "Technology", 12, 90e6),
	}
	page1, _ := FormatReport(results, nil, nil)

	assert.Contains(t, page1, "Found 4 stock(s) matching criteria:")
	assert.Contains(t, page1, "<b>📈 Stocks</b>")

	// Sectors alphabetical, the catch-all last.
	tech := strings.Index(page1, "▸ Technology")
	util := strings.Index(page1, "▸ Utilities")
	other := strings.Index(page1, "▸ Other")
	require.True(t, tech >= 0 && util >= 0 && other >= 0)
	assert.Less(t, tech, util)
	assert.Less(t, util, other)

	// Within a sector instruments sort case-insensitively by name.
	acme := strings.Index(page1, "acme corp (ACME)")
	apple := strings.Index(page1, "Apple Inc. (AAPL)")
	require.True(t, acme >= 0 && apple >= 0)
	assert.Less(t, acme, apple)

	// Only the flagged horizon is bold.
	assert.Contains(t, page1, "<b>1D: +6.00%</b> | 1W: +6.00% | 1M: +6.00%")
	assert.Contains(t, page1, "<b>Apple Inc. (AAPL)</b> $234.56\n")
	assert.Contains(t, page1, "  Vol: 10.00M ($2345.6M)\n")
}

func TestFormatReportMissingHorizons(t *testing.T) {
	r := stockResult("NEW", "New Listing", "Technology", 15, 80e6)
	r.Year = model.Change{}
	r.ThreeYear = model.Change{}
	page1, _ := FormatReport([]*model.ScreeningResult{r}, nil, nil)
	assert.Contains(t, page1, "| 1Y: — | 3Y: —")
}

func TestFormatReportPageTwoSections(t *testing.T) {
	results := []*model.ScreeningResult{
		{
			Symbol: "BTC-USD", Name: "Bitcoin", Class: model.AssetCrypto,
			Price: 64250.50, Volume: 30e6,
			Day: model.PctOf(4), Week: model.PctOf(9), Month: model.PctOf(12),
			SixMonth: model.PctOf(30), Year: model.PctOf(90), ThreeYear: model.PctOf(250),
			PassDay: true, PassWeek: true, PassMonth: true,
		},
		{
			Symbol: "CL=F", Name: "Crude Oil", Class: model.AssetCommodity,
			Price: 80, Volume: 250000,
			Day: model.PctOf(2.5), Week: model.PctOf(6), Month: model.PctOf(11),
			SixMonth: model.PctOf(14), Year: model.PctOf(-3), ThreeYear: model.PctOf(20),
			PassDay: true,
		},
		{
			Symbol: "EURUSD=X", Name: "EUR/USD", Class: model.AssetForex,
			Price: 1.0856, Volume: 0,
			Day: model.PctOf(0.6), Week: model.PctOf(1.2), Month: model.PctOf(2),
			SixMonth: model.PctOf(3), Year: model.PctOf(4), ThreeYear: model.PctOf(5),
			PassDay: true, PassWeek: true,
		},
	}
	page1, page2 := FormatReport(results, nil, nil)

	assert.Contains(t, page1, "Found 1 crypto + 1 forex + 1 commodities matching criteria:")
	require.True(t, strings.HasPrefix(page2, "📊 <b>MarketScout Scan (2/2)</b>\n\n"))

	crypto := strings.Index(page2, "<b>🪙 Crypto</b>")
	commodities := strings.Index(page2, "<b>🌾 Commodities</b>")
	forex := strings.Index(page2, "<b>💵 Forex</b>")
	require.True(t, crypto >= 0 && commodities >= 0 && forex >= 0)
	assert.Less(t, crypto, commodities)
	assert.Less(t, commodities, forex)

	// Forex prices carry four decimals, no dollar sign, no dollar volume.
	assert.Contains(t, page2, "<b>EUR/USD (EURUSD=X)</b> 1.0856\n")
	assert.NotContains(t, page2, "$1.0856")

	// Futures volume in contracts with a notional dollar equivalent.
	assert.Contains(t, page2, "  Vol: 250.0K contracts ($20000.0M)\n")

	assert.Contains(t, page2, "  Vol: 30.00M ($1927515.0M)\n")
}

func TestFormatReportETFAssetClassOrdering(t *testing.T) {
	etf := func(symbol, name, assetClass string) *model.ScreeningResult {
		r := stockResult(symbol, name, "", 100, 20e6)
		r.Class = model.AssetETF
		r.ETFAssetClass = assetClass
		return r
	}
	results := []*model.ScreeningResult{
		etf("GLD", "SPDR Gold Shares", "Commodities"),
		etf("SPY", "SPDR S&P 500", "Equity"),
		etf("ARKX", "Space ETF", "Thematic"),
		etf("XYZ", "Unclassified Fund", ""),
	}
	_, page2 := FormatReport(results, nil, []string{"Equity", "Commodities"})

	assert.Contains(t, page2, "<b>⚖️ ETFs</b>")
	equity := strings.Index(page2, "▸ Equity")
	commodities := strings.Index(page2, "▸ Commodities")
	other := strings.Index(page2, "▸ Other")
	thematic := strings.Index(page2, "▸ Thematic")
	require.True(t, equity >= 0 && commodities >= 0 && other >= 0 && thematic >= 0)
	// Configured classes first in order, leftovers appended alphabetically.
	assert.Less(t, equity, commodities)
	assert.Less(t, commodities, other)
	assert.Less(t, other, thematic)
}

func TestFormatReportEscapesDisplayNames(t *testing.T) {
	r := stockResult("T", "AT&T <Inc>", "Communication Services", 19.5, 40e6)
	page1, _ := FormatReport([]*model.ScreeningResult{r}, nil, nil)
	assert.Contains(t, page1, "<b>AT&amp;T &lt;Inc&gt; (T)</b>")
	assert.NotContains(t, page1, "AT&T <Inc>")
}

func TestFormatReportCountsIncludeAllClasses(t *testing.T) {
	results := []*model.ScreeningResult{
		stockResult("AAPL", "Apple Inc.", "Technology", 234.56, 10e6),
	}
	e := stockResult("SPY", "SPDR S&P 500", "", 550, 60e6)
	e.Class = model.AssetETF
	e.ETFAssetClass = "Equity"
	results = append(results, e)

	page1, _ := FormatReport(results, nil, nil)
	assert.Contains(t, page1, "Found 1 stock(s) + 1 ETF(s) matching criteria:")
}
