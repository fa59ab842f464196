package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret string
	JWTExpiry time.Duration

	// OTP / pending signups
	OTPTTL        time.Duration
	OTPStore      string // memory | redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Email
	ResendAPIKey string
	EmailFrom    string

	// Non-production switches
	MockOTP        bool
	MockFileUpload bool

	// Logging
	LogRetentionDays int

	// Server
	Port        string
	CORSOrigins string

	// MetricsAddr is the internal listener for /metrics. Empty disables it.
	MetricsAddr string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to read .env file", "error", err)
	}

	cfg := &Config{
		Env: strings.ToLower(getEnv("APP_ENV", EnvDevelopment)),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "pixisphere"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "168h"), 168*time.Hour),

		OTPTTL:        parseDuration(getEnv("OTP_TTL", "5m"), 5*time.Minute),
		OTPStore:      strings.ToLower(getEnv("OTP_STORE", "memory")),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       parseInt(getEnv("REDIS_DB", "0"), 0),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		EmailFrom:    getEnv("EMAIL_FROM", "onboarding@resend.dev"),

		MockOTP:        parseBool(getEnv("MOCK_OTP_ENABLED", "false")),
		MockFileUpload: parseBool(getEnv("MOCK_FILE_UPLOAD", "false")),

		LogRetentionDays: parseInt(getEnv("LOG_RETENTION_DAYS", "30"), 30),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		MetricsAddr: os.Getenv("METRICS_ADDR"),
	}
	if _, set := os.LookupEnv("METRICS_ADDR"); !set {
		cfg.MetricsAddr = "127.0.0.1:9090"
	}

	cfg.enforceProductionSafety()
	return cfg
}

// enforceProductionSafety turns the mock switches off in production.
func (c *Config) enforceProductionSafety() {
	if !c.IsProduction() {
		return
	}
	if c.MockOTP {
		slog.Warn("MOCK_OTP_ENABLED ignored in production")
		c.MockOTP = false
	}
	if c.MockFileUpload {
		slog.Warn("MOCK_FILE_UPLOAD ignored in production")
		c.MockFileUpload = false
	}
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable is required")
	}
	if !c.IsProduction() {
		return nil
	}
	if c.DBPassword == "" {
		return errors.New("DB_PASSWORD environment variable is required")
	}
	// Mock OTP is forced off in production, so codes can only reach users by email.
	if c.ResendAPIKey == "" {
		return errors.New("RESEND_API_KEY environment variable is required in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}
