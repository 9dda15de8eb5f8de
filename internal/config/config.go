package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction      bool
	ProdOrigins       string
	HTTPAddr          string
	DBDSN             string
	JWTSecret         string
	JWTAccessTokenTTL time.Duration
	BcryptCost        int

	// Booking policy
	SlotGranularity time.Duration  // grid step for availability, e.g. 30m
	ClosedWeekdays  []time.Weekday // days on which facilities take no bookings

	// Loan policy
	LoanPeriodDays int
	FinePerDay     float64
	SweepInterval  time.Duration

	// Uploads
	UploadDir string

	// Logging
	LogEngine string
	LogLevel  string

	// Telegram notifications (optional)
	TelegramBotToken string
	TelegramChatID   int64
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	// JWT secret is required for signing tokens
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// JWT access token TTL, parse as time.Duration (e.g. "15m", "1h").
	cfg.JWTAccessTokenTTL, err = getEnvAsDuration("JWT_ACCESS_TOKEN_TTL", "15m")
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_TTL: %w", err)
	}

	// Bcrypt cost for password hashing (default: 12)
	cfg.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	// Availability grid step. The web client renders half-hour slots,
	// the mobile client hourly ones; both are configurations of this.
	cfg.SlotGranularity, err = getEnvAsDuration("SLOT_GRANULARITY", "30m")
	if err != nil {
		return nil, fmt.Errorf("invalid SLOT_GRANULARITY: %w", err)
	}
	if cfg.SlotGranularity < time.Minute {
		return nil, fmt.Errorf("SLOT_GRANULARITY must be at least 1m")
	}

	// Comma-separated weekday numbers, 0=Sunday .. 6=Saturday.
	cfg.ClosedWeekdays, err = getEnvAsWeekdays("CLOSED_WEEKDAYS", "")
	if err != nil {
		return nil, fmt.Errorf("invalid CLOSED_WEEKDAYS: %w", err)
	}

	cfg.LoanPeriodDays, err = getEnvAsInt("LOAN_PERIOD_DAYS", 14)
	if err != nil {
		return nil, fmt.Errorf("invalid LOAN_PERIOD_DAYS: %w", err)
	}

	cfg.FinePerDay, err = getEnvAsFloat("FINE_PER_DAY", 0.50)
	if err != nil {
		return nil, fmt.Errorf("invalid FINE_PER_DAY: %w", err)
	}

	cfg.SweepInterval, err = getEnvAsDuration("SWEEP_INTERVAL", "1h")
	if err != nil {
		return nil, fmt.Errorf("invalid SWEEP_INTERVAL: %w", err)
	}

	cfg.UploadDir = getEnv("UPLOAD_DIR", "./uploads")

	cfg.LogEngine = getEnv("LOG_ENGINE", "zerolog")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	cfg.TelegramBotToken = getEnv("TELEGRAM_BOT_TOKEN", "")
	chatID, err := getEnvAsInt("TELEGRAM_CHAT_ID", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}
	cfg.TelegramChatID = int64(chatID)

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Return 0 and a wrapped error to provide context
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}

// getEnvAsFloat retrieves an environment variable as a float64.
func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid number: %w", key, valStr, err)
	}

	return val, nil
}

// getEnvAsDuration retrieves an environment variable as a time.Duration.
func getEnvAsDuration(key, defaultValue string) (time.Duration, error) {
	valStr := getEnv(key, defaultValue)

	val, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid duration: %w", key, valStr, err)
	}

	return val, nil
}

// getEnvAsWeekdays parses a comma-separated list of weekday numbers
// (0=Sunday .. 6=Saturday) into time.Weekday values.
func getEnvAsWeekdays(key, defaultValue string) ([]time.Weekday, error) {
	valStr := getEnv(key, defaultValue)
	if strings.TrimSpace(valStr) == "" {
		return nil, nil
	}

	var days []time.Weekday
	for _, part := range strings.Split(valStr, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("env %s value %q is not a valid weekday list", key, valStr)
		}
		days = append(days, time.Weekday(n))
	}
	return days, nil
}
