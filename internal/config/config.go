package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BotToken       string `envconfig:"BOT_TOKEN"`
	DownloadDir    string `envconfig:"DOWNLOAD_DIR" default:"downloads"`
	CookiesFile    string `envconfig:"COOKIES_FILE" default:"cookies.txt"`
	RequireCookies bool   `envconfig:"REQUIRE_COOKIES" default:"true"`
	DefaultLang    string `envconfig:"DEFAULT_LANG" default:"en"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	HistoryDBPath  string `envconfig:"HISTORY_DB_PATH"`
	WebhookURL     string `envconfig:"WEBHOOK_URL"`
	ListenPort     int    `envconfig:"PORT" default:"8000"`

	FetchSettings FetchConfig
}

type FetchConfig struct {
	MaxConcurrentFetches   int           `envconfig:"MAX_CONCURRENT_FETCHES" default:"3"`
	FetchTimeout           time.Duration `envconfig:"FETCH_TIMEOUT" default:"0s"`
	ProgressUpdateInterval time.Duration `envconfig:"PROGRESS_UPDATE_INTERVAL" default:"1s"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if cfg.HistoryDBPath == "" {
		cfg.HistoryDBPath = filepath.Join(cfg.DownloadDir, "history.db")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if err := c.validateRequiredFields(); err != nil {
		return err
	}
	return c.validateFetchSettings()
}

func (c *Config) validateRequiredFields() error {
	var missingFields []string

	if c.BotToken == "" {
		missingFields = append(missingFields, "BOT_TOKEN")
	}
	if c.DownloadDir == "" {
		missingFields = append(missingFields, "DOWNLOAD_DIR")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func (c *Config) validateFetchSettings() error {
	if c.FetchSettings.MaxConcurrentFetches <= 0 {
		return fmt.Errorf("max concurrent fetches must be positive")
	}
	if c.FetchSettings.FetchTimeout < 0 {
		return fmt.Errorf("fetch timeout cannot be negative")
	}
	if c.FetchSettings.ProgressUpdateInterval <= 0 {
		return fmt.Errorf("progress update interval must be positive")
	}
	return nil
}

func (c *Config) GetFetchSettings() FetchConfig {
	return c.FetchSettings
}
