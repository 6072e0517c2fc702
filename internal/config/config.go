package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
	Device     DeviceConfig
	Admin      AdminConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds assertion signing configuration
type JWTConfig struct {
	Secret     string
	Expiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AttendanceConfig holds the accounting policy: the expected daily work
// duration used as the overtime threshold, and the clock-in cutoff that
// separates on-time from late arrivals.
type AttendanceConfig struct {
	StandardShiftMinutes int
	OnTimeCutoff         string // "HH:MM"
}

// DeviceConfig holds kiosk device authentication
type DeviceConfig struct {
	APIKey         string
	FingerprintKey string
}

// AdminConfig holds the bootstrap primary admin account seeded at startup
type AdminConfig struct {
	Username string
	Password string
}

func Load() (*Config, error) {
	// Missing .env is fine in production; env vars may come from the host.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "fptrack"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:     getEnv("JWT_SECRET_KEY", ""),
		Expiration: getEnv("JWT_EXPIRATION_TIME", "24h"),
	}

	// Attendance policy
	shiftMinutes, err := strconv.Atoi(getEnv("STANDARD_SHIFT_MINUTES", "480"))
	if err != nil {
		return nil, fmt.Errorf("invalid STANDARD_SHIFT_MINUTES: %w", err)
	}

	config.Attendance = AttendanceConfig{
		StandardShiftMinutes: shiftMinutes,
		OnTimeCutoff:         getEnv("ON_TIME_CUTOFF", "09:00"),
	}

	// Device configuration
	config.Device = DeviceConfig{
		APIKey:         getEnv("DEVICE_API_KEY", ""),
		FingerprintKey: getEnv("FINGERPRINT_DIGEST_KEY", ""),
	}

	// Bootstrap primary admin
	config.Admin = AdminConfig{
		Username: getEnv("ADMIN_USERNAME", "admin"),
		Password: getEnv("ADMIN_PASSWORD", ""),
	}

	// Validate required fields
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
	if c.Device.APIKey == "" {
		return fmt.Errorf("DEVICE_API_KEY is required")
	}
	if c.Device.FingerprintKey == "" {
		return fmt.Errorf("FINGERPRINT_DIGEST_KEY is required")
	}
	if c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	if c.Attendance.StandardShiftMinutes <= 0 {
		return fmt.Errorf("STANDARD_SHIFT_MINUTES must be positive")
	}
	return nil
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
