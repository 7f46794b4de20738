package config

import (
	"os"
	"strings"
	"testing"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			} else {
				os.Unsetenv(tt.key)
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	setTestEnv := func() {
		os.Setenv("APP_PORT", "9000")
		os.Setenv("APP_HOST", "127.0.0.1")
		os.Setenv("JWT_SECRET", "super_secret_jwt_key")
		os.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, https://example.com")
		os.Setenv("TRUSTED_DOMAIN", "vercel.app")
	}

	cleanupTestEnv := func() {
		vars := []string{
			"APP_PORT", "APP_HOST", "APP_ENV", "JWT_SECRET",
			"ALLOWED_ORIGINS", "TRUSTED_DOMAIN", "SMTP_PORT",
		}
		for _, v := range vars {
			os.Unsetenv(v)
		}
	}

	t.Run("successful config load with all env vars", func(t *testing.T) {
		setTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}

		if config.Port != 9000 {
			t.Errorf("Port = %d, expected 9000", config.Port)
		}
		if config.Host != "127.0.0.1" {
			t.Errorf("Host = %s, expected 127.0.0.1", config.Host)
		}
		if len(config.AllowedOrigins) != 2 {
			t.Fatalf("AllowedOrigins = %v, expected 2 entries", config.AllowedOrigins)
		}
		if config.AllowedOrigins[1] != "https://example.com" {
			t.Errorf("AllowedOrigins[1] = %s, expected https://example.com", config.AllowedOrigins[1])
		}
		if config.TrustedDomain != "vercel.app" {
			t.Errorf("TrustedDomain = %s, expected vercel.app", config.TrustedDomain)
		}
	})

	t.Run("should fail without JWT_SECRET", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when JWT_SECRET is missing")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("APP_PORT", "not_a_number")
		os.Setenv("JWT_SECRET", "super_secret_jwt_key")
		defer cleanupTestEnv()

		_, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when APP_PORT is invalid")
		}
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("JWT_SECRET", "super_secret_jwt_key")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err != nil {
			t.Fatalf("LoadConfig() returned unexpected error: %v", err)
		}

		if config.Port != 5000 {
			t.Errorf("Port = %d, expected default 5000", config.Port)
		}
		if config.DBDriver != "sqlite" {
			t.Errorf("DBDriver = %s, expected default sqlite", config.DBDriver)
		}
		if config.SMTPPort != 587 {
			t.Errorf("SMTPPort = %d, expected default 587", config.SMTPPort)
		}
	})
}

func TestConfigStringMasksSecrets(t *testing.T) {
	config := &Config{
		JWTSecret:  "super_secret",
		SMTPPass:   "mail_secret",
		DBPassword: "db_secret",
	}

	out := config.String()
	for _, secret := range []string{"super_secret", "mail_secret", "db_secret"} {
		if strings.Contains(out, secret) {
			t.Errorf("Config.String() leaked secret %q: %s", secret, out)
		}
	}
}
