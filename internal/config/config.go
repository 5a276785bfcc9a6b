package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Display  DisplayConfig
	Calendar CalendarConfig

	// DemoMode seeds "Demo: " assets on startup
	DemoMode bool
}

// ServerConfig holds gRPC server configuration
type ServerConfig struct {
	Addr     string
	APIToken string
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	ConnStr  string // takes precedence over the individual fields when set
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Pretty bool
}

// DisplayConfig holds money display preferences
type DisplayConfig struct {
	CurrencyCode string
	Anonymize    bool
}

// CalendarConfig holds the calendar charts are binned with
type CalendarConfig struct {
	Timezone  string
	WeekStart string
}

// Load reads configuration from environment variables and .env file
func Load() *Config {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Addr:     getEnv("GRPC_ADDR", ":8080"),
			APIToken: getEnv("API_TOKEN", "dev-token"),
		},
		Database: DatabaseConfig{
			ConnStr:  getEnv("DB_CONN_STR", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "networth"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Display: DisplayConfig{
			CurrencyCode: strings.ToUpper(getEnv("CURRENCY_CODE", money.USD)),
			Anonymize:    getEnvBool("ANONYMIZE", false),
		},
		Calendar: CalendarConfig{
			Timezone:  getEnv("TIMEZONE", "Local"),
			WeekStart: getEnv("WEEK_START", "monday"),
		},
		DemoMode: getEnvBool("DEMO_MODE", false),
	}
}

// DSN returns the Postgres connection string
func (c DatabaseConfig) DSN() string {
	if c.ConnStr != "" {
		return c.ConnStr
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

// Location loads the configured timezone
func (c CalendarConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// FirstWeekday parses the configured first day of the week
func (c CalendarConfig) FirstWeekday() (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(c.WeekStart)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return time.Monday, fmt.Errorf("invalid week start '%s': must be sunday, monday or saturday", c.WeekStart)
	}
}

// Validate validates the configuration and returns an error listing every problem found
func (c *Config) Validate() error {
	var errors []string

	if c.Server.Addr == "" {
		errors = append(errors, "gRPC address cannot be empty")
	}
	if c.Server.APIToken == "" {
		errors = append(errors, "API token cannot be empty")
	}

	if c.Database.ConnStr == "" {
		if c.Database.Host == "" || c.Database.Name == "" {
			errors = append(errors, "database host and name are required when DB_CONN_STR is not set")
		}
		if port, err := strconv.Atoi(c.Database.Port); err != nil || port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("invalid database port '%s': must be between 1 and 65535", c.Database.Port))
		}
	}

	if money.GetCurrency(c.Display.CurrencyCode) == nil {
		errors = append(errors, fmt.Sprintf("unknown currency code '%s'", c.Display.CurrencyCode))
	}

	if _, err := c.Calendar.Location(); err != nil {
		errors = append(errors, fmt.Sprintf("invalid timezone '%s': %v", c.Calendar.Timezone, err))
	}
	if _, err := c.Calendar.FirstWeekday(); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
