package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	OpenWeatherAPIKey string
	GeocoderAPIKey    string

	// DataDir holds the flat-file series cache.
	DataDir string

	// CacheMaxAgeDays is the freshness window for cached series.
	CacheMaxAgeDays int

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration

	// FallbackCity is the fixed reference location for the last live tier.
	FallbackCity string

	// SyntheticSeed makes synthetic series reproducible across runs.
	SyntheticSeed int64

	// DefaultDays is the history window used when a request omits one.
	DefaultDays int

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	cfg.DataDir = getenvDefault("DATA_DIR", "data/raw")
	cfg.CacheMaxAgeDays = getenvInt("CACHE_MAX_AGE_DAYS", 1)
	cfg.FallbackCity = getenvDefault("FALLBACK_CITY", "Delhi")
	cfg.DefaultDays = getenvInt("HISTORY_DAYS", 30)
	cfg.Port = getenvDefault("PORT", "8080")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.SyntheticSeed = int64(getenvInt("SYNTHETIC_SEED", 42))

	if cfg.CacheMaxAgeDays <= 0 {
		return nil, fmt.Errorf("CACHE_MAX_AGE_DAYS must be positive")
	}
	if cfg.DefaultDays <= 0 {
		return nil, fmt.Errorf("HISTORY_DAYS must be positive")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
