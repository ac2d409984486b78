package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"PORT", "ENV", "LOG_LEVEL", "STORE_DRIVER", "DATA_FILE", "MONGO_URI", "MONGO_DATABASE",
	"GEMINI_API_KEY", "GEMINI_MODEL", "CURRENCY_CODE", "THINKING_MIN_MS", "THINKING_MAX_MS",
	"HISTORY_LIMIT", "CHAT_RATE_PER_MINUTE", "CHAT_RATE_BURST", "CORS_ORIGINS",
}

func clearEnv(t *testing.T) {
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		check       func(t *testing.T, c *Config)
		errContains string
	}{
		{
			name: "defaults",
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "8080", c.Port)
				assert.Equal(t, DriverMemory, c.StoreDriver)
				assert.Equal(t, "USD", c.CurrencyCode)
				assert.Equal(t, 6, c.HistoryLimit)
				assert.Equal(t, []string{"*"}, c.CORSOrigins)
				assert.Zero(t, c.ThinkingMax)
				assert.True(t, c.Development())
			},
		},
		{
			name: "custom values",
			env: map[string]string{
				"PORT":            "9090",
				"ENV":             "production",
				"STORE_DRIVER":    "Mongo",
				"CURRENCY_CODE":   "eur",
				"THINKING_MIN_MS": "200",
				"THINKING_MAX_MS": "800",
				"HISTORY_LIMIT":   "10",
				"CORS_ORIGINS":    "http://a.test, http://b.test,",
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "9090", c.Port)
				assert.Equal(t, DriverMongo, c.StoreDriver)
				assert.Equal(t, "EUR", c.CurrencyCode)
				assert.Equal(t, 200*time.Millisecond, c.ThinkingMin)
				assert.Equal(t, 800*time.Millisecond, c.ThinkingMax)
				assert.Equal(t, 10, c.HistoryLimit)
				assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.CORSOrigins)
				assert.False(t, c.Development())
			},
		},
		{name: "bad integer", env: map[string]string{"HISTORY_LIMIT": "six"}, errContains: "HISTORY_LIMIT"},
		{name: "unknown driver", env: map[string]string{"STORE_DRIVER": "redis"}, errContains: "STORE_DRIVER"},
		{name: "unknown currency", env: map[string]string{"CURRENCY_CODE": "XYZ"}, errContains: "CURRENCY_CODE"},
		{name: "inverted delay", env: map[string]string{"THINKING_MIN_MS": "500", "THINKING_MAX_MS": "100"}, errContains: "THINKING_MIN_MS"},
		{name: "zero burst", env: map[string]string{"CHAT_RATE_BURST": "0"}, errContains: "CHAT_RATE_BURST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
