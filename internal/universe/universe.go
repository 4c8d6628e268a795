package universe

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Provider lists candidate stock symbols for an exchange.
type Provider interface {
	ListSymbols(exchange string) ([]string, error)
}

// NasdaqTrader fetches exchange listings from the NASDAQ Trader symbol
// directory (nasdaqlisted.txt for NASDAQ, otherlisted.txt for NYSE).
type NasdaqTrader struct {
	Client *http.Client
}

// NewNasdaqTrader creates a listing provider with optional proxy support.
func NewNasdaqTrader(proxyURL string) *NasdaqTrader {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &NasdaqTrader{
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

// ListSymbols returns common stock symbols for the exchange, excluding
// ETFs, test issues and NextShares. Unknown exchanges yield an empty list.
func (p *NasdaqTrader) ListSymbols(exchange string) ([]string, error) {
	switch exchange {
	case "NASDAQ":
		body, err := p.fetch("https://www.nasdaqtrader.com/dynamic/SymDir/nasdaqlisted.txt")
		if err != nil {
			return nil, err
		}
		return ParseNasdaqListed(body), nil
	case "NYSE":
		body, err := p.fetch("https://www.nasdaqtrader.com/dynamic/SymDir/otherlisted.txt")
		if err != nil {
			return nil, err
		}
		return ParseOtherListedNYSE(body), nil
	default:
		return nil, nil
	}
}

func (p *NasdaqTrader) fetch(u string) (string, error) {
	resp, err := p.Client.Get(u)
	if err != nil {
		return "", fmt.Errorf("fetch symbol directory: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("symbol directory: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read symbol directory: %w", err)
	}
	return string(body), nil
}

// ParseNasdaqListed extracts common stock symbols from nasdaqlisted.txt.
// Pipe-delimited columns: Symbol|Security Name|Market Category|Test Issue|
// Financial Status|Round Lot Size|ETF|NextShares.
func ParseNasdaqListed(body string) []string {
	var symbols []string
	seen := make(map[string]bool)
	lines := strings.Split(strings.TrimSpace(body), "\n")
	for _, line := range lines[1:] { // skip header
		parts := strings.Split(line, "|")
		if len(parts) < 8 {
			continue
		}
		symbol := strings.TrimSpace(parts[0])
		testIssue := strings.TrimSpace(parts[3])
		etf := strings.TrimSpace(parts[6])
		nextShares := strings.TrimSpace(parts[7])
		if etf != "N" || testIssue != "N" || nextShares != "N" {
			continue
		}
		if symbol == "" || strings.Contains(symbol, "$") {
			continue
		}
		if !seen[symbol] {
			seen[symbol] = true
			symbols = append(symbols, symbol)
		}
	}
	return symbols
}

// ParseOtherListedNYSE extracts NYSE common stock symbols from
// otherlisted.txt. Pipe-delimited columns: ACT Symbol|Security Name|
// Exchange|CQS Symbol|ETF|Round Lot Size|Test Issue|NASDAQ Symbol.
func ParseOtherListedNYSE(body string) []string {
	var symbols []string
	seen := make(map[string]bool)
	lines := strings.Split(strings.TrimSpace(body), "\n")
	for _, line := range lines[1:] {
		parts := strings.Split(line, "|")
		if len(parts) < 8 {
			continue
		}
		actSymbol := strings.TrimSpace(parts[0])
		exchange := strings.TrimSpace(parts[2])
		etf := strings.TrimSpace(parts[4])
		testIssue := strings.TrimSpace(parts[6])
		nasdaqSymbol := strings.TrimSpace(parts[7])
		if exchange != "N" {
			continue
		}
		if etf != "N" || testIssue != "N" {
			continue
		}
		if strings.Contains(actSymbol, "$") {
			continue
		}
		symbol := nasdaqSymbol
		if symbol == "" {
			symbol = actSymbol
		}
		if symbol == "" {
			continue
		}
		if !seen[symbol] {
			seen[symbol] = true
			symbols = append(symbols, symbol)
		}
	}
	return symbols
}

// Fallback returns a static ticker list used when the symbol directory
// fetch fails or comes back empty.
func Fallback(exchange string) []string {
	switch exchange {
	case "NYSE":
		return []string{
			"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "META", "NVDA", "JPM",
			"V", "JNJ", "WMT", "PG", "MA", "UNH", "HD", "DIS", "BAC", "XOM",
			"CVX", "ABBV", "PFE", "KO", "AVGO", "COST", "MRK", "PEP", "TMO",
			"CSCO", "ABT", "ACN", "NFLX", "ADBE", "CMCSA", "NKE", "TXN",
			"HOOD", "COIN", "RIVN", "PLTR", "SOFI", "LCID", "RBLX", "SNOW",
			"DDOG", "NET", "ZM", "UPST", "AFRM", "NIO", "XPEV", "LI",
			"BABA", "JD", "PDD", "BILI", "DKNG",
		}
	case "NASDAQ":
		return []string{
			"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "META", "NVDA", "AVGO",
			"COST", "NFLX", "ADBE", "CMCSA", "INTC", "AMD", "QCOM", "AMGN",
			"ISRG", "BKNG", "REGN", "VRTX", "ADI", "SNPS", "CDNS", "KLAC",
			"MCHP", "CTSH", "FTNT", "PAYX", "FAST", "CTAS", "WBD", "LRCX",
			"HOOD", "COIN", "RIVN", "PLTR", "SOFI", "LCID", "RBLX", "SNOW",
			"DDOG", "NET", "ZM", "UPST", "AFRM", "NIO", "XPEV", "DKNG",
		}
	}
	return nil
}
