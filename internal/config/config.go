package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"golang.org/x/text/currency"
)

const (
	DriverMemory = "memory"
	DriverMongo  = "mongo"
)

type Config struct {
	Port     string
	Env      string // "development" enables the development logger and gin debug mode
	LogLevel string

	StoreDriver   string // memory | mongo
	DataFile      string // memory driver only; empty keeps data in RAM
	MongoURI      string
	MongoDatabase string

	GeminiAPIKey string // empty disables the Gemini planner
	GeminiModel  string

	CurrencyCode string
	ThinkingMin  time.Duration
	ThinkingMax  time.Duration
	HistoryLimit int

	ChatRatePerMinute int
	ChatRateBurst     int
	CORSOrigins       []string
}

// Load reads .env files when present, then the environment.
func Load(files ...string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load(files...)

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", DriverMemory)),
		DataFile:      getEnv("DATA_FILE", "data/trips.json"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "triply"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash-lite"),
		CurrencyCode:  strings.ToUpper(getEnv("CURRENCY_CODE", "USD")),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "*")),
	}

	var err error
	ints := []struct {
		key  string
		def  int
		dest *int
	}{
		{"HISTORY_LIMIT", 6, &cfg.HistoryLimit},
		{"CHAT_RATE_PER_MINUTE", 30, &cfg.ChatRatePerMinute},
		{"CHAT_RATE_BURST", 5, &cfg.ChatRateBurst},
	}
	for _, v := range ints {
		if *v.dest, err = getEnvInt(v.key, v.def); err != nil {
			return nil, err
		}
	}

	minMS, err := getEnvInt("THINKING_MIN_MS", 0)
	if err != nil {
		return nil, err
	}
	maxMS, err := getEnvInt("THINKING_MAX_MS", 0)
	if err != nil {
		return nil, err
	}
	cfg.ThinkingMin = time.Duration(minMS) * time.Millisecond
	cfg.ThinkingMax = time.Duration(maxMS) * time.Millisecond

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT cannot be empty")
	}
	switch c.StoreDriver {
	case DriverMemory:
	case DriverMongo:
		if c.MongoURI == "" {
			return errors.New("MONGO_URI is required for the mongo store")
		}
	default:
		return errors.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if _, err := currency.ParseISO(c.CurrencyCode); err != nil {
		return errors.Wrapf(err, "invalid CURRENCY_CODE %q", c.CurrencyCode)
	}
	if c.ThinkingMin < 0 || c.ThinkingMax < c.ThinkingMin {
		return errors.New("THINKING_MIN_MS must be >= 0 and <= THINKING_MAX_MS")
	}
	if c.HistoryLimit <= 0 {
		return errors.New("HISTORY_LIMIT must be positive")
	}
	if c.ChatRatePerMinute <= 0 || c.ChatRateBurst <= 0 {
		return errors.New("CHAT_RATE_PER_MINUTE and CHAT_RATE_BURST must be positive")
	}
	return nil
}

func (c *Config) Development() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
