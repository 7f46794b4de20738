package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Host        string `json:"host"`
	Environment string `json:"environment"`

	// Database configuration
	DBDriver   string `json:"db_driver"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBName     string `json:"db_name"`
	DBSSLMode  string `json:"db_ssl_mode"`
	DBPath     string `json:"db_path"`

	// Security configuration
	JWTSecret string `json:"jwt_secret"`

	// Cross-origin policy: explicit allow-list plus one trusted deployment
	// domain whose subdomains are always allowed
	AllowedOrigins []string `json:"allowed_origins"`
	TrustedDomain  string   `json:"trusted_domain"`

	// Notification email configuration
	SMTPHost   string `json:"smtp_host"`
	SMTPPort   int    `json:"smtp_port"`
	SMTPUser   string `json:"smtp_user"`
	SMTPPass   string `json:"smtp_pass"`
	FromEmail  string `json:"from_email"`
	AdminEmail string `json:"admin_email"`

	// Mock-mode admin credentials, used only when the database is unreachable
	MockAdminEmail    string `json:"mock_admin_email"`
	MockAdminPassword string `json:"mock_admin_password"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, DBDriver: %s, DBHost: %s, DBName: %s, DBPath: %s, JWTSecret: [REDACTED], AllowedOrigins: %v, TrustedDomain: %s, SMTPHost: %s, SMTPUser: %s, SMTPPass: [REDACTED], AdminEmail: %s}",
		c.Port, c.Host, c.Environment, c.DBDriver, c.DBHost, c.DBName, c.DBPath, c.AllowedOrigins, c.TrustedDomain, c.SMTPHost, c.SMTPUser, c.AdminEmail)
}

// IsDevelopment reports whether the app runs in development mode. Error
// details are only exposed to clients in development.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// LoadConfig reads the configuration from environment variables and returns a Config struct.
// Returns an error if any required environment variable is missing or invalid.
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	jwtSecret := GetEnvWithDefault("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	config := &Config{
		Port:        port,
		Host:        GetEnvWithDefault("APP_HOST", "0.0.0.0"),
		Environment: GetEnvWithDefault("APP_ENV", "development"),

		DBDriver:   GetEnvWithDefault("DB_DRIVER", "sqlite"),
		DBHost:     GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:     GetEnvWithDefault("DB_PORT", "5432"),
		DBUser:     GetEnvWithDefault("DB_USER", "portfolio"),
		DBPassword: GetEnvWithDefault("DB_PASSWORD", ""),
		DBName:     GetEnvWithDefault("DB_NAME", "portfolio"),
		DBSSLMode:  GetEnvWithDefault("DB_SSL_MODE", "disable"),
		DBPath:     GetEnvWithDefault("DB_PATH", "portfolio.sqlite"),

		JWTSecret: jwtSecret,

		AllowedOrigins: splitOrigins(GetEnvWithDefault("ALLOWED_ORIGINS", "http://localhost:5173")),
		TrustedDomain:  GetEnvWithDefault("TRUSTED_DOMAIN", ""),

		SMTPHost:   GetEnvWithDefault("SMTP_HOST", ""),
		SMTPPort:   GetEnvAsType("SMTP_PORT", 587),
		SMTPUser:   GetEnvWithDefault("SMTP_USER", ""),
		SMTPPass:   GetEnvWithDefault("SMTP_PASS", ""),
		FromEmail:  GetEnvWithDefault("FROM_EMAIL", "noreply@localhost"),
		AdminEmail: GetEnvWithDefault("ADMIN_EMAIL", ""),

		MockAdminEmail:    GetEnvWithDefault("MOCK_ADMIN_EMAIL", ""),
		MockAdminPassword: GetEnvWithDefault("MOCK_ADMIN_PASSWORD", ""),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// splitOrigins parses the comma-separated ALLOWED_ORIGINS value
func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value", key)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
