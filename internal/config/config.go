package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	JWT      JWTConfig
	Sweeper  SweeperConfig
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
	Timezone    string
	FrontendURL string
}

// JWTConfig holds JWT configuration for the admin API
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// SweeperConfig controls the daily absence sweeper.
//
// Target decides which date the sweep closes: "yesterday" (default, a day that
// can no longer receive check-ins) or "today". AbsentStatus decides what an
// unrecorded day is marked as: "alpa" (default) or "libur".
type SweeperConfig struct {
	Hour         int
	Target       string
	AbsentStatus string
}

const (
	SweepTargetYesterday = "yesterday"
	SweepTargetToday     = "today"
)

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "presensi_magang"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "5001"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Timezone:    getEnv("TIMEZONE", "Asia/Jakarta"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	sweepHour, err := strconv.Atoi(getEnv("SWEEP_HOUR", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid SWEEP_HOUR: %w", err)
	}

	config.Sweeper = SweeperConfig{
		Hour:         sweepHour,
		Target:       getEnv("SWEEP_TARGET", SweepTargetYesterday),
		AbsentStatus: getEnv("SWEEP_ABSENT_STATUS", "alpa"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.App.Timezone, err)
	}
	if c.Sweeper.Hour < 0 || c.Sweeper.Hour > 23 {
		return fmt.Errorf("SWEEP_HOUR must be between 0 and 23")
	}
	if c.Sweeper.Target != SweepTargetYesterday && c.Sweeper.Target != SweepTargetToday {
		return fmt.Errorf("SWEEP_TARGET must be %q or %q", SweepTargetYesterday, SweepTargetToday)
	}
	if c.Sweeper.AbsentStatus != "alpa" && c.Sweeper.AbsentStatus != "libur" {
		return fmt.Errorf("SWEEP_ABSENT_STATUS must be \"alpa\" or \"libur\"")
	}
	return nil
}

// Location returns the time zone every date/time computation runs in.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.App.Timezone)
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
