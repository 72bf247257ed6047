package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Local persistence
	SQLitePath string

	// Exchange-rate lookup
	RatesURL          string
	RatesBaseCurrency string
	RatesFetchTimeout time.Duration

	// API surface
	APIRateLimit    string // ulule/limiter formatted rate, e.g. "120-M"
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SQLITE_PATH", "./data/expense_tracker.db")
	viper.SetDefault("RATES_URL", "https://api.exchangerate.host")
	viper.SetDefault("RATES_BASE_CURRENCY", "USD")
	viper.SetDefault("RATES_FETCH_TIMEOUT", "10s")
	viper.SetDefault("API_RATE_LIMIT", "120-M")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	// Environment variables override defaults (and .env file values).
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "./data/expense_tracker.db"
		log.Printf("Warning: SQLITE_PATH not set. Defaulting to %s\n", cfg.SQLitePath)
	}

	cfg.RatesURL = viper.GetString("RATES_URL")
	if cfg.RatesURL == "" {
		log.Println("Warning: RATES_URL not set. Static fallback rates will be used.")
	}

	cfg.RatesBaseCurrency = viper.GetString("RATES_BASE_CURRENCY")
	if cfg.RatesBaseCurrency == "" {
		cfg.RatesBaseCurrency = "USD"
	}

	// Fetch timeout, e.g. "10s"
	timeoutStr := viper.GetString("RATES_FETCH_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 10 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for RATES_FETCH_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.RatesFetchTimeout = timeout

	cfg.APIRateLimit = viper.GetString("API_RATE_LIMIT")
	if cfg.APIRateLimit == "" {
		cfg.APIRateLimit = "120-M"
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	return cfg, nil
}
