package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Store    StoreConfig
	Tax      TaxConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	CORSOrigins []string
}

// StoreConfig bounds every record store call
type StoreConfig struct {
	Timeout       time.Duration
	MaxRetries    int
	RetryInterval time.Duration
}

type TaxConfig struct {
	// RatesEffectiveByPeriod drops rates that only take effect after the
	// period end. Off by default, so every open-ended rate applies.
	RatesEffectiveByPeriod bool
}

// LoadEnvFile loads a dotenv file into the process environment. The file is
// optional; the returned error only tells the caller it was not read.
func LoadEnvFile(path string) error {
	return godotenv.Load(path)
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		Name:     getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://127.0.0.1:5173"}),
	}

	timeout, err := time.ParseDuration(getEnv("STORE_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_TIMEOUT: %w", err)
	}
	retries, err := strconv.Atoi(getEnv("STORE_MAX_RETRIES", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_MAX_RETRIES: %w", err)
	}
	interval, err := time.ParseDuration(getEnv("STORE_RETRY_INTERVAL", "100ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_RETRY_INTERVAL: %w", err)
	}

	config.Store = StoreConfig{
		Timeout:       timeout,
		MaxRetries:    retries,
		RetryInterval: interval,
	}

	byPeriod, err := strconv.ParseBool(getEnv("TAX_RATES_EFFECTIVE_BY_PERIOD", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid TAX_RATES_EFFECTIVE_BY_PERIOD: %w", err)
	}
	config.Tax = TaxConfig{RatesEffectiveByPeriod: byPeriod}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Port <= 0 {
		return fmt.Errorf("DB_PORT must be positive")
	}
	if c.App.Port <= 0 {
		return fmt.Errorf("APP_PORT must be positive")
	}
	if c.Store.Timeout <= 0 {
		return fmt.Errorf("STORE_TIMEOUT must be positive")
	}
	if c.Store.MaxRetries < 0 {
		return fmt.Errorf("STORE_MAX_RETRIES must not be negative")
	}
	if c.Store.RetryInterval <= 0 {
		return fmt.Errorf("STORE_RETRY_INTERVAL must be positive")
	}
	return nil
}

// DSN builds the PostgreSQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
