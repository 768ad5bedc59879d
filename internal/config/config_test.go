package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoad_MissingBotToken(t *testing.T) {
	// Save original env
	originalBotToken := os.Getenv("BOT_TOKEN")

	// Clean up after test
	defer func() {
		if originalBotToken != "" {
			os.Setenv("BOT_TOKEN", originalBotToken)
		} else {
			os.Unsetenv("BOT_TOKEN")
		}
	}()

	os.Unsetenv("BOT_TOKEN")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_WithDefaults(t *testing.T) {
	// Save original env
	originalBotToken := os.Getenv("BOT_TOKEN")
	originalAPIBaseURL := os.Getenv("API_BASE_URL")
	originalUsersFile := os.Getenv("USERS_FILE")
	originalHealthAddr := os.Getenv("HEALTH_ADDR")

	// Clean up after test
	defer func() {
		if originalBotToken != "" {
			os.Setenv("BOT_TOKEN", originalBotToken)
		} else {
			os.Unsetenv("BOT_TOKEN")
		}
		if originalAPIBaseURL != "" {
			os.Setenv("API_BASE_URL", originalAPIBaseURL)
		} else {
			os.Unsetenv("API_BASE_URL")
		}
		if originalUsersFile != "" {
			os.Setenv("USERS_FILE", originalUsersFile)
		} else {
			os.Unsetenv("USERS_FILE")
		}
		if originalHealthAddr != "" {
			os.Setenv("HEALTH_ADDR", originalHealthAddr)
		} else {
			os.Unsetenv("HEALTH_ADDR")
		}
	}()

	// Set required fields
	os.Setenv("BOT_TOKEN", "test_token")

	// Unset optional fields to test defaults
	os.Unsetenv("API_BASE_URL")
	os.Unsetenv("USERS_FILE")
	os.Unsetenv("HEALTH_ADDR")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "https://amipumpkin.space", cfg.APIBaseURL)
	assert.Equal(t, "users.json", cfg.UsersFile)
	assert.Equal(t, ":8000", cfg.HealthAddr)
}

func TestLoad_OverridesFromEnv(t *testing.T) {
	// Save original env
	originalBotToken := os.Getenv("BOT_TOKEN")
	originalAPIBaseURL := os.Getenv("API_BASE_URL")
	originalUsersFile := os.Getenv("USERS_FILE")

	// Clean up after test
	defer func() {
		if originalBotToken != "" {
			os.Setenv("BOT_TOKEN", originalBotToken)
		} else {
			os.Unsetenv("BOT_TOKEN")
		}
		if originalAPIBaseURL != "" {
			os.Setenv("API_BASE_URL", originalAPIBaseURL)
		} else {
			os.Unsetenv("API_BASE_URL")
		}
		if originalUsersFile != "" {
			os.Setenv("USERS_FILE", originalUsersFile)
		} else {
			os.Unsetenv("USERS_FILE")
		}
	}()

	os.Setenv("BOT_TOKEN", "test_token")
	os.Setenv("API_BASE_URL", "http://localhost:5000")
	os.Setenv("USERS_FILE", "/tmp/users.json")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:5000", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/users.json", cfg.UsersFile)
}
