package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"StockInsight/internal/indicator"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Watchlist  []string `yaml:"watchlist"`
	DataSource struct {
		Range string `yaml:"range"` // history range expression, e.g. "1y"
	} `yaml:"data_source"`
	Indicators struct {
		SMAShort         int     `yaml:"sma_short"`
		SMALong          int     `yaml:"sma_long"`
		RSIWindow        int     `yaml:"rsi_window"`
		BollingerWindow  int     `yaml:"bollinger_window"`
		BollingerStdDev  float64 `yaml:"bollinger_std_dev"`
		VolatilityWindow int     `yaml:"volatility_window"`
	} `yaml:"indicators"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
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
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.Watchlist = nil
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Watchlist = append(cfg.Watchlist, strings.ToUpper(s))
			}
		}
	}
	if v := os.Getenv("HISTORY_RANGE"); v != "" {
		cfg.DataSource.Range = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if len(cfg.Watchlist) == 0 {
		cfg.Watchlist = []string{"AAPL"}
	}
	if cfg.DataSource.Range == "" {
		cfg.DataSource.Range = "1y"
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 30 22 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stock_insight.db"
	}
	defaults := indicator.DefaultWindows()
	if cfg.Indicators.SMAShort == 0 {
		cfg.Indicators.SMAShort = defaults.SMAShort
	}
	if cfg.Indicators.SMALong == 0 {
		cfg.Indicators.SMALong = defaults.SMALong
	}
	if cfg.Indicators.RSIWindow == 0 {
		cfg.Indicators.RSIWindow = defaults.RSI
	}
	if cfg.Indicators.BollingerWindow == 0 {
		cfg.Indicators.BollingerWindow = defaults.Bollinger
	}
	if cfg.Indicators.BollingerStdDev == 0 {
		cfg.Indicators.BollingerStdDev = defaults.BandWidth
	}
	if cfg.Indicators.VolatilityWindow == 0 {
		cfg.Indicators.VolatilityWindow = defaults.Volatility
	}

	return cfg, nil
}

// Validate checks that all required fields are set and sane.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if len(c.Watchlist) == 0 {
		return fmt.Errorf("watchlist must not be empty")
	}
	if c.Indicators.SMAShort <= 0 || c.Indicators.SMALong <= 0 ||
		c.Indicators.RSIWindow <= 0 || c.Indicators.BollingerWindow <= 0 ||
		c.Indicators.VolatilityWindow <= 0 {
		return fmt.Errorf("indicator windows must be positive")
	}
	if c.Indicators.BollingerStdDev < 0 {
		return fmt.Errorf("indicators.bollinger_std_dev must be non-negative")
	}
	return nil
}

// Windows maps the configured lookbacks into engine parameters.
func (c *Config) Windows() indicator.Windows {
	return indicator.Windows{
		SMAShort:   c.Indicators.SMAShort,
		SMALong:    c.Indicators.SMALong,
		RSI:        c.Indicators.RSIWindow,
		Bollinger:  c.Indicators.BollingerWindow,
		BandWidth:  c.Indicators.BollingerStdDev,
		Volatility: c.Indicators.VolatilityWindow,
	}
}
