package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Thresholds holds the pass criteria for one asset class. The percentage
// fields are minimum absolute moves; the liquidity fields apply only where
// the asset class has a gate of that shape.
type Thresholds struct {
	OneDayPctAbs       float64 `yaml:"one_day_pct_abs"`
	OneWeekPctAbs      float64 `yaml:"one_week_pct_abs"`
	OneMonthPctAbs     float64 `yaml:"one_month_pct_abs"`
	MinDollarVolume    float64 `yaml:"min_dollar_volume"`
	MinVolumeContracts float64 `yaml:"min_volume_contracts"`
	MinPrice           float64 `yaml:"min_price"`
}

// Instrument is one configured symbol with an optional display name and,
// for ETFs, an asset class. In YAML it may be a bare symbol string or a
// mapping with symbol/name/asset_class keys.
type Instrument struct {
	Symbol     string `yaml:"symbol"`
	Name       string `yaml:"name"`
	AssetClass string `yaml:"asset_class"`
}

// UnmarshalYAML accepts either a scalar symbol or a full mapping.
func (i *Instrument) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		i.Symbol = strings.TrimSpace(value.Value)
		return nil
	}
	type plain Instrument
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*i = Instrument(p)
	return nil
}

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`

	DryRun    bool     `yaml:"dry_run"`
	Exchanges []string `yaml:"exchanges"`

	Thresholds          Thresholds `yaml:"thresholds"`
	CryptoThresholds    Thresholds `yaml:"crypto_thresholds"`
	ForexThresholds     Thresholds `yaml:"forex_thresholds"`
	CommodityThresholds Thresholds `yaml:"commodity_thresholds"`
	ETFThresholds       Thresholds `yaml:"etf_thresholds"`

	Crypto      []Instrument `yaml:"crypto"`
	Forex       []Instrument `yaml:"forex"`
	Commodities []Instrument `yaml:"commodities"`
	ETFs        []Instrument `yaml:"etfs"`

	ETFAssetClassOrder []string `yaml:"etf_asset_class_order"`

	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`

	Paths struct {
		ChartsDir  string `yaml:"charts_dir"`
		ReportsDir string `yaml:"reports_dir"`
	} `yaml:"paths"`

	Proxy string `yaml:"proxy"`

	// StocksOnly skips indices and the non-stock asset classes. Set via
	// the MARKETSCOUT_STOCKS_ONLY environment variable only.
	StocksOnly bool `yaml:"-"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = strings.TrimSpace(v)
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = strings.TrimSpace(v)
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Schedule.Cron = v
	}
	if envBool("MARKETSCOUT_DRY_RUN") {
		cfg.DryRun = true
	}
	if envBool("MARKETSCOUT_STOCKS_ONLY") {
		cfg.StocksOnly = true
	}

	applyDefaults(cfg)
	return cfg, nil
}

func envBool(name string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(name))) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func applyDefaults(cfg *Config) {
	if len(cfg.Exchanges) == 0 {
		cfg.Exchanges = []string{"NASDAQ", "NYSE"}
	}
	// MinPrice has no default; the gate is inert unless configured.
	defaultThresholds(&cfg.Thresholds, Thresholds{
		OneDayPctAbs: 5, OneWeekPctAbs: 10, OneMonthPctAbs: 20,
		MinDollarVolume: 1_000_000_000,
	})
	defaultThresholds(&cfg.CryptoThresholds, Thresholds{
		OneDayPctAbs: 3, OneWeekPctAbs: 5, OneMonthPctAbs: 10,
	})
	defaultThresholds(&cfg.ForexThresholds, Thresholds{
		OneDayPctAbs: 0.5, OneWeekPctAbs: 1, OneMonthPctAbs: 3,
	})
	defaultThresholds(&cfg.CommodityThresholds, Thresholds{
		OneDayPctAbs: 2, OneWeekPctAbs: 5, OneMonthPctAbs: 10,
		MinVolumeContracts: 100_000,
	})
	defaultThresholds(&cfg.ETFThresholds, Thresholds{
		OneDayPctAbs: 3, OneWeekPctAbs: 5, OneMonthPctAbs: 10,
		MinDollarVolume: 1_000_000_000,
	})

	if len(cfg.Crypto) == 0 {
		cfg.Crypto = []Instrument{
			{Symbol: "BTC-USD", Name: "Bitcoin"},
			{Symbol: "ETH-USD", Name: "Ethereum"},
			{Symbol: "SOL-USD", Name: "Solana"},
		}
	}
	if len(cfg.Forex) == 0 {
		cfg.Forex = []Instrument{
			{Symbol: "EURUSD=X", Name: "Euro / US Dollar"},
			{Symbol: "USDJPY=X", Name: "US Dollar / Japanese Yen"},
			{Symbol: "GBPUSD=X", Name: "British Pound / US Dollar"},
			{Symbol: "AUDUSD=X", Name: "Australian Dollar / US Dollar"},
			{Symbol: "USDCAD=X", Name: "US Dollar / Canadian Dollar"},
			{Symbol: "USDCHF=X", Name: "US Dollar / Swiss Franc"},
		}
	}
	if len(cfg.Commodities) == 0 {
		cfg.Commodities = []Instrument{
			{Symbol: "CL=F", Name: "Crude Oil"},
			{Symbol: "BZ=F", Name: "Brent Crude"},
			{Symbol: "NG=F", Name: "Natural Gas"},
			{Symbol: "GC=F", Name: "Gold"},
			{Symbol: "SI=F", Name: "Silver"},
			{Symbol: "HG=F", Name: "Copper"},
			{Symbol: "ZC=F", Name: "Corn"},
			{Symbol: "ZW=F", Name: "Wheat"},
			{Symbol: "ZS=F", Name: "Soybeans"},
		}
	}
	if len(cfg.ETFs) == 0 {
		cfg.ETFs = []Instrument{
			{Symbol: "SPY", Name: "SPDR S&P 500 ETF", AssetClass: "Equity"},
			{Symbol: "QQQ", Name: "Invesco QQQ Trust", AssetClass: "Equity"},
			{Symbol: "IWM", Name: "iShares Russell 2000 ETF", AssetClass: "Equity"},
			{Symbol: "EEM", Name: "iShares MSCI Emerging Markets ETF", AssetClass: "Equity"},
			{Symbol: "TLT", Name: "iShares 20+ Year Treasury Bond ETF", AssetClass: "Fixed Income"},
			{Symbol: "HYG", Name: "iShares iBoxx High Yield Corporate Bond ETF", AssetClass: "Fixed Income"},
			{Symbol: "GLD", Name: "SPDR Gold Shares", AssetClass: "Commodities"},
			{Symbol: "SLV", Name: "iShares Silver Trust", AssetClass: "Commodities"},
			{Symbol: "USO", Name: "United States Oil Fund", AssetClass: "Commodities"},
			{Symbol: "UUP", Name: "Invesco DB US Dollar Index Bullish Fund", AssetClass: "Currency"},
			{Symbol: "FXE", Name: "Invesco CurrencyShares Euro Trust", AssetClass: "Currency"},
		}
	}
	if len(cfg.ETFAssetClassOrder) == 0 {
		cfg.ETFAssetClassOrder = []string{
			"Equity", "Fixed Income", "Commodities", "Currency",
			"Asset Location", "Alternatives",
		}
	}
	if cfg.Paths.ChartsDir == "" {
		cfg.Paths.ChartsDir = "charts"
	}
	if cfg.Paths.ReportsDir == "" {
		cfg.Paths.ReportsDir = "."
	}
}

func defaultThresholds(t *Thresholds, def Thresholds) {
	if t.OneDayPctAbs == 0 {
		t.OneDayPctAbs = def.OneDayPctAbs
	}
	if t.OneWeekPctAbs == 0 {
		t.OneWeekPctAbs = def.OneWeekPctAbs
	}
	if t.OneMonthPctAbs == 0 {
		t.OneMonthPctAbs = def.OneMonthPctAbs
	}
	if t.MinDollarVolume == 0 {
		t.MinDollarVolume = def.MinDollarVolume
	}
	if t.MinVolumeContracts == 0 {
		t.MinVolumeContracts = def.MinVolumeContracts
	}
	if t.MinPrice == 0 {
		t.MinPrice = def.MinPrice
	}
}

// Validate checks that all required fields are set. Missing Telegram
// credentials are fatal unless the run is a dry run.
func (c *Config) Validate() error {
	if !c.DryRun {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required")
		}
		if c.Telegram.ChatID == "" {
			return fmt.Errorf("telegram.chat_id is required")
		}
		if !numericChatID(c.Telegram.ChatID) {
			return fmt.Errorf("telegram.chat_id must be numeric (e.g. 123456789, or -1001234567890 for groups)")
		}
	}
	for name, t := range map[string]Thresholds{
		"thresholds":           c.Thresholds,
		"crypto_thresholds":    c.CryptoThresholds,
		"forex_thresholds":     c.ForexThresholds,
		"commodity_thresholds": c.CommodityThresholds,
		"etf_thresholds":       c.ETFThresholds,
	} {
		if t.OneDayPctAbs <= 0 || t.OneWeekPctAbs <= 0 || t.OneMonthPctAbs <= 0 {
			return fmt.Errorf("%s: percentage thresholds must be positive", name)
		}
	}
	return nil
}

func numericChatID(id string) bool {
	id = strings.TrimPrefix(id, "-")
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
