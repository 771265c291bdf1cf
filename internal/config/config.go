package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Server   ServerConfig
	Upload   UploadConfig
	Currency CurrencyConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type UploadConfig struct {
	SheetName          string
	MaxUploadBytes     int64
	RateLimitPerMinute int
	RateLimitBurst     int
}

type CurrencyConfig struct {
	Locale       string
	Code         string
	USDToILSRate float64
}

// Load загружает конфигурацию приложения из окружения и .env.
func Load() (Config, error) {
	cfg := Config{}

	if err := loadEnv(); err != nil {
		return cfg, err
	}

	cfg.Env = getEnv("APP_ENV", "local")

	serverPort, err := parseIntEnv("SERVER_PORT", 8080)
	if err != nil {
		return cfg, err
	}

	readTimeout, err := parseDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second)
	if err != nil {
		return cfg, err
	}

	writeTimeout, err := parseDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return cfg, err
	}

	idleTimeout, err := parseDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second)
	if err != nil {
		return cfg, err
	}

	cfg.Server = ServerConfig{
		Host:         getEnv("SERVER_HOST", "0.0.0.0"),
		Port:         serverPort,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	maxUploadBytes, err := parseIntEnv("UPLOAD_MAX_BYTES", 10*1024*1024)
	if err != nil {
		return cfg, err
	}

	rateLimitPerMinute, err := parseIntEnv("UPLOAD_RATE_LIMIT_PER_MINUTE", 12)
	if err != nil {
		return cfg, err
	}

	rateLimitBurst, err := parseIntEnv("UPLOAD_RATE_LIMIT_BURST", 3)
	if err != nil {
		return cfg, err
	}

	cfg.Upload = UploadConfig{
		SheetName:          getEnv("SHEET_NAME", "Detailed Transactions"),
		MaxUploadBytes:     int64(maxUploadBytes),
		RateLimitPerMinute: rateLimitPerMinute,
		RateLimitBurst:     rateLimitBurst,
	}

	usdToILSRate, err := parseFloatEnv("USD_TO_ILS_RATE", 3.5)
	if err != nil {
		return cfg, err
	}

	cfg.Currency = CurrencyConfig{
		Locale:       getEnv("DISPLAY_LOCALE", "he-IL"),
		Code:         getEnv("DISPLAY_CURRENCY", "ILS"),
		USDToILSRate: usdToILSRate,
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("SERVER_PORT must be greater than 0")
	}

	if c.Upload.SheetName == "" {
		return fmt.Errorf("SHEET_NAME is required")
	}

	if c.Upload.MaxUploadBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be greater than 0")
	}

	if c.Upload.RateLimitPerMinute <= 0 {
		return fmt.Errorf("UPLOAD_RATE_LIMIT_PER_MINUTE must be greater than 0")
	}

	if c.Upload.RateLimitBurst <= 0 {
		return fmt.Errorf("UPLOAD_RATE_LIMIT_BURST must be greater than 0")
	}

	if c.Currency.Locale == "" {
		return fmt.Errorf("DISPLAY_LOCALE is required")
	}

	if c.Currency.Code == "" {
		return fmt.Errorf("DISPLAY_CURRENCY is required")
	}

	if c.Currency.USDToILSRate <= 0 {
		return fmt.Errorf("USD_TO_ILS_RATE must be greater than 0")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}

	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func parseFloatEnv(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}

	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}

	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func loadEnv() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}
