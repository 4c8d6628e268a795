package notifier

import (
	"fmt"
	"sort"
	"strings"

	"MarketScout/internal/model"
)

const (
	reportTitle      = "📊 <b>MarketScout Scan</b>"
	reportTitlePage2 = "📊 <b>MarketScout Scan (2/2)</b>"
	emDash           = "—"
)

// htmlEscaper covers the characters that break Telegram's HTML parse mode.
// Only these three are escaped so the plain-text fallback can reverse them.
var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// commodityContractSize maps futures symbols to units per contract, used
// for the displayed dollar-volume equivalent.
var commodityContractSize = map[string]float64{
	"CL=F":  1000,   // Crude Oil: 1000 barrels
	"BZ=F":  1000,   // Brent: 1000 barrels
	"NG=F":  10000,  // Natural Gas: 10,000 mmBtu
	"RB=F":  1000,   // RBOB Gasoline: 1000 barrels
	"HO=F":  1000,   // Heating Oil: 1000 barrels
	"GC=F":  100,    // Gold: 100 oz
	"SI=F":  5000,   // Silver: 5000 oz
	"HG=F":  25000,  // Copper: 25,000 lb
	"PL=F":  100,    // Platinum: 100 oz
	"PA=F":  100,    // Palladium: 100 oz
	"ZC=F":  5000,   // Corn: 5000 bu
	"ZS=F":  5000,   // Soybeans: 5000 bu
	"ZW=F":  5000,   // Wheat: 5000 bu
	"KE=F":  5000,   // KC Wheat: 5000 bu
	"CT=F":  50000,  // Cotton: 50,000 lb
	"CC=F":  10,     // Cocoa: 10 metric tons
	"KC=F":  37500,  // Coffee: 37,500 lb
	"SB=F":  112000, // Sugar: 112,000 lb
	"OJ=F":  15000,  // Orange Juice: 15,000 lb
	"ZO=F":  5000,   // Oats: 5000 bu
	"LE=F":  40000,  // Live Cattle: 40,000 lb
	"HE=F":  40000,  // Lean Hogs: 40,000 lb
	"LBS=F": 110000, // Lumber: 110,000 board feet
}

var defaultETFOrder = []string{
	"Equity", "Fixed Income", "Commodities", "Currency",
	"Asset Location", "Alternatives",
}

// FormatReport renders screening results and the indices snapshot into two
// pages: (1) indices and stocks by sector, (2) crypto, commodities, forex
// and ETFs. Page two is empty when none of its sections have results.
func FormatReport(results []*model.ScreeningResult, indices []*model.IndexSnapshot, etfOrder []string) (string, string) {
	if len(results) == 0 && len(indices) == 0 {
		return reportTitle + "\n\nNo stocks, crypto, forex, commodities, or ETFs found matching criteria.", ""
	}

	var stocks, crypto, forex, commodities, etfs []*model.ScreeningResult
	for _, r := range results {
		switch r.Class {
		case model.AssetCrypto:
			crypto = append(crypto, r)
		case model.AssetForex:
			forex = append(forex, r)
		case model.AssetCommodity:
			commodities = append(commodities, r)
		case model.AssetETF:
			etfs = append(etfs, r)
		default:
			stocks = append(stocks, r)
		}
	}

	var b1 strings.Builder
	b1.WriteString(reportTitle + "\n")
	writeCountsLine(&b1, len(stocks), len(etfs), len(crypto), len(forex), len(commodities), len(indices))
	writeIndices(&b1, indices)
	writeStocks(&b1, stocks)
	page1 := strings.TrimSpace(b1.String())

	var b2 strings.Builder
	writeSection(&b2, "Crypto", "🪙", crypto)
	writeSection(&b2, "Commodities", "🌾", commodities)
	writeSection(&b2, "Forex", "💵", forex)
	writeETFSection(&b2, etfs, etfOrder)
	page2 := strings.TrimSpace(b2.String())
	if page2 != "" {
		page2 = reportTitlePage2 + "\n\n" + page2
	}
	return page1, page2
}

func writeCountsLine(b *strings.Builder, stocks, etfs, crypto, forex, commodities, indices int) {
	var parts []string
	if stocks > 0 {
		parts = append(parts, fmt.Sprintf("%d stock(s)", stocks))
	}
	if etfs > 0 {
		parts = append(parts, fmt.Sprintf("%d ETF(s)", etfs))
	}
	if crypto > 0 {
		parts = append(parts, fmt.Sprintf("%d crypto", crypto))
	}
	if forex > 0 {
		parts = append(parts, fmt.Sprintf("%d forex", forex))
	}
	if commodities > 0 {
		parts = append(parts, fmt.Sprintf("%d commodities", commodities))
	}
	switch {
	case len(parts) > 0:
		fmt.Fprintf(b, "Found %s matching criteria:\n\n", strings.Join(parts, " + "))
	case indices > 0:
		b.WriteString("Indices snapshot:\n\n")
	default:
		b.WriteString("\n")
	}
}

func writeIndices(b *strings.Builder, indices []*model.IndexSnapshot) {
	if len(indices) == 0 {
		return
	}
	b.WriteString("<b>🌍 Indices</b>\n")
	for _, idx := range indices {
		name := htmlEscaper.Replace(idx.Name)
		if idx.Volatility {
			// Level and 1D only: longer horizons are not informative
			// for a volatility index.
			change := ""
			if idx.Day.Valid {
				change = fmt.Sprintf("  1D: %+.2f%%", idx.Day.Pct)
			}
			fmt.Fprintf(b, "<b>%s (%s)</b> %.2f%s\n\n", name, idx.Symbol, idx.Price, change)
			continue
		}
		fmt.Fprintf(b, "<b>%s (%s)</b> %.2f\n", name, idx.Symbol, idx.Price)
		segments := []string{
			pctSegment("1D", idx.Day, false),
			pctSegment("1W", idx.Week, false),
			pctSegment("1M", idx.Month, false),
			pctSegment("6M", idx.SixMonth, false),
			pctSegment("1Y", idx.Year, false),
			pctSegment("3Y", idx.ThreeYear, false),
		}
		fmt.Fprintf(b, "  %s\n\n", strings.Join(segments, " | "))
	}
	b.WriteString("\n")
}

func writeStocks(b *strings.Builder, stocks []*model.ScreeningResult) {
	if len(stocks) == 0 {
		return
	}
	bySector := make(map[string][]*model.ScreeningResult)
	for _, r := range stocks {
		sector := r.Sector
		if sector == "" {
			sector = "Other"
		}
		bySector[sector] = append(bySector[sector], r)
	}
	sectors := make([]string, 0, len(bySector))
	for sector := range bySector {
		sectors = append(sectors, sector)
	}
	sortSectors(sectors)

	b.WriteString("<b>📈 Stocks</b>\n")
	for _, sector := range sectors {
		items := bySector[sector]
		sortByDisplayName(items)
		fmt.Fprintf(b, "  <b>▸ %s</b>\n", sector)
		for _, r := range items {
			writeInstrument(b, r)
		}
		b.WriteString("\n")
	}
}

func writeSection(b *strings.Builder, title, emoji string, items []*model.ScreeningResult) {
	if len(items) == 0 {
		return
	}
	sortByDisplayName(items)
	fmt.Fprintf(b, "<b>%s %s</b>\n", emoji, title)
	for _, r := range items {
		writeInstrument(b, r)
	}
	b.WriteString("\n")
}

func writeETFSection(b *strings.Builder, etfs []*model.ScreeningResult, order []string) {
	if len(etfs) == 0 {
		return
	}
	if len(order) == 0 {
		order = defaultETFOrder
	}
	byAssetClass := make(map[string][]*model.ScreeningResult)
	for _, r := range etfs {
		ac := r.ETFAssetClass
		if ac == "" {
			ac = "Other"
		}
		byAssetClass[ac] = append(byAssetClass[ac], r)
	}

	b.WriteString("<b>⚖️ ETFs</b>\n")
	ordered := make(map[string]bool, len(order))
	for _, ac := range order {
		ordered[ac] = true
		writeETFAssetClass(b, ac, byAssetClass[ac])
	}
	// Asset classes outside the configured order append alphabetically.
	var leftovers []string
	for ac := range byAssetClass {
		if !ordered[ac] {
			leftovers = append(leftovers, ac)
		}
	}
	sort.Strings(leftovers)
	for _, ac := range leftovers {
		writeETFAssetClass(b, ac, byAssetClass[ac])
	}
}

func writeETFAssetClass(b *strings.Builder, assetClass string, items []*model.ScreeningResult) {
	if len(items) == 0 {
		return
	}
	sortByDisplayName(items)
	fmt.Fprintf(b, "  <b>▸ %s</b>\n", assetClass)
	for _, r := range items {
		writeInstrument(b, r)
	}
	b.WriteString("\n")
}

func writeInstrument(b *strings.Builder, r *model.ScreeningResult) {
	name := htmlEscaper.Replace(r.DisplayName())
	if r.Class == model.AssetForex {
		// Forex rates carry four decimals and no currency symbol.
		fmt.Fprintf(b, "<b>%s (%s)</b> %.4f\n", name, r.Symbol, r.Price)
	} else {
		fmt.Fprintf(b, "<b>%s (%s)</b> $%.2f\n", name, r.Symbol, r.Price)
	}
	segments := []string{
		pctSegment("1D", r.Day, r.PassDay),
		pctSegment("1W", r.Week, r.PassWeek),
		pctSegment("1M", r.Month, r.PassMonth),
		pctSegment("6M", r.SixMonth, false),
		pctSegment("1Y", r.Year, false),
		pctSegment("3Y", r.ThreeYear, false),
	}
	fmt.Fprintf(b, "  %s\n", strings.Join(segments, " | "))
	writeVolume(b, r)
}

func writeVolume(b *strings.Builder, r *model.ScreeningResult) {
	if r.Volume <= 0 {
		b.WriteString("\n")
		return
	}
	switch r.Class {
	case model.AssetForex:
		fmt.Fprintf(b, "  Vol: %.2fM\n\n", r.Volume/1e6)
	case model.AssetCommodity:
		size, ok := commodityContractSize[r.Symbol]
		if !ok {
			size = 1
		}
		dollarVol := r.Volume * r.Price * size / 1e6
		fmt.Fprintf(b, "  Vol: %.1fK contracts ($%.1fM)\n\n", r.Volume/1e3, dollarVol)
	default:
		fmt.Fprintf(b, "  Vol: %.2fM ($%.1fM)\n\n", r.Volume/1e6, r.Volume*r.Price/1e6)
	}
}

// pctSegment renders one horizon, bold when its pass flag is set and an
// em-dash placeholder when the change is unavailable.
func pctSegment(label string, c model.Change, bold bool) string {
	if !c.Valid {
		return label + ": " + emDash
	}
	s := fmt.Sprintf("%s: %+.2f%%", label, c.Pct)
	if bold {
		return "<b>" + s + "</b>"
	}
	return s
}

// sortSectors orders sectors alphabetically case-insensitively with the
// catch-all "Other" always last.
func sortSectors(sectors []string) {
	sort.Slice(sectors, func(i, j int) bool {
		si, sj := sectors[i], sectors[j]
		if (si == "Other") != (sj == "Other") {
			return sj == "Other"
		}
		return strings.ToUpper(si) < strings.ToUpper(sj)
	})
}

func sortByDisplayName(items []*model.ScreeningResult) {
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToUpper(items[i].DisplayName()) < strings.ToUpper(items[j].DisplayName())
	})
}
