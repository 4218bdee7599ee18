package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all application configuration.
type Config struct {
	Database  DatabaseConfig
	GRPC      GRPCConfig
	HTTP      HTTPConfig
	Auth      AuthConfig
	Shifts    ShiftConfig
	Bootstrap BootstrapConfig
}

// DatabaseConfig contains database-related settings.
type DatabaseConfig struct {
	Driver string // "sqlite3" or "mysql"
	DSN    string // SQLite file path or mysql DSN
}

// GRPCConfig contains gRPC server settings.
type GRPCConfig struct {
	Address string // gRPC server listen address (e.g., ":50051")
}

// HTTPConfig contains settings of the /add_shift intake server.
type HTTPConfig struct {
	Address     string
	RequireAuth bool
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// ShiftConfig holds scheduling defaults.
type ShiftConfig struct {
	DefaultHourlyRate decimal.Decimal
}

// BootstrapConfig seeds the first manager when the employees table is empty.
type BootstrapConfig struct {
	Login    string
	Password string
}

// Load loads configuration from environment variables (and an optional .env file)
// with sensible defaults. JWT_SECRET is required.
func Load() (*Config, error) {
	cfg, err := load("")
	if err != nil {
		return nil, err
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set; required for production")
	}
	return cfg, nil
}

// LoadWithDefaults is like Load but uses a safe default for JWT_SECRET in development.
// WARNING: Only use in development! Use Load() in production.
func LoadWithDefaults() (*Config, error) {
	return load("dev-secret-change-me")
}

func load(defaultSecret string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}

	ttlHours, err := getEnvInt("JWT_TTL_HOURS", 12)
	if err != nil {
		return nil, err
	}
	requireAuth, err := getEnvBool("HTTP_REQUIRE_AUTH", true)
	if err != nil {
		return nil, err
	}
	rate, err := getEnvDecimal("DEFAULT_HOURLY_RATE", decimal.NewFromInt(200))
	if err != nil {
		return nil, err
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("DEFAULT_HOURLY_RATE must not be negative")
	}
	driver := strings.ToLower(getEnv("DB_DRIVER", "sqlite3"))
	if driver != "sqlite3" && driver != "mysql" {
		return nil, fmt.Errorf("DB_DRIVER must be sqlite3 or mysql, got %q", driver)
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Driver: driver,
			DSN:    getEnv("DB_DSN", "coffeeshop.db"),
		},
		GRPC: GRPCConfig{
			Address: getEnv("GRPC_ADDRESS", ":50051"),
		},
		HTTP: HTTPConfig{
			Address:     getEnv("HTTP_ADDRESS", ":5000"),
			RequireAuth: requireAuth,
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", defaultSecret),
			TokenTTL:  time.Duration(ttlHours) * time.Hour,
		},
		Shifts: ShiftConfig{
			DefaultHourlyRate: rate,
		},
		Bootstrap: BootstrapConfig{
			Login:    getEnv("BOOTSTRAP_LOGIN", ""),
			Password: getEnv("BOOTSTRAP_PASSWORD", ""),
		},
	}
	return cfg, nil
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// getEnvInt retrieves an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultVal int) (int, error) {
	if value, exists := os.LookupEnv(key); exists {
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
		}
		return intVal, nil
	}
	return defaultVal, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	if value, exists := os.LookupEnv(key); exists {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid boolean for %s: %w", key, err)
		}
		return b, nil
	}
	return defaultVal, nil
}

func getEnvDecimal(key string, defaultVal decimal.Decimal) (decimal.Decimal, error) {
	if value, exists := os.LookupEnv(key); exists {
		d, err := decimal.NewFromString(strings.ReplaceAll(value, ",", "."))
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid decimal for %s: %w", key, err)
		}
		return d, nil
	}
	return defaultVal, nil
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	dsn := c.Database.DSN
	if c.Database.Driver == "mysql" {
		dsn = "*** (masked) ***"
	}
	return fmt.Sprintf("Config{DB: %s %s, gRPC: %s, HTTP: %s (auth=%t), Auth: *** (masked) ***}",
		c.Database.Driver, dsn, c.GRPC.Address, c.HTTP.Address, c.HTTP.RequireAuth)
}
