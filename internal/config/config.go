package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the full runtime configuration for both the server and the
// dataset collector.
type AppConfig struct {
	OpenWeatherAPIKey string
	Port              string

	// Outbound HTTP timeout for provider calls.
	HTTPTimeout time.Duration

	// Collector settings.
	CollectorInterval  time.Duration
	CollectorCities    []string // empty means the built-in default list
	CollectorRateLimit float64  // outbound requests per second
	DatasetPath        string
}

// collectorFile is the optional TOML file overriding collector settings.
type collectorFile struct {
	Collector struct {
		Cities    []string `toml:"cities"`
		Interval  string   `toml:"interval"`
		Dataset   string   `toml:"dataset"`
		RateLimit float64  `toml:"rate_limit"`
	} `toml:"collector"`
}

// Load reads configuration from environment with sensible defaults, then
// applies the optional collector TOML file named by COLLECTOR_CONFIG.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.Port = getenvDefault("PORT", "8080")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	intervalStr := getenvDefault("COLLECT_INTERVAL", "60m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid COLLECT_INTERVAL: %w", err)
	}
	cfg.CollectorInterval = interval

	if cities := os.Getenv("COLLECTOR_CITIES"); cities != "" {
		cfg.CollectorCities = splitCities(cities)
	}
	cfg.CollectorRateLimit = getenvFloat("COLLECTOR_RATE_LIMIT", 1.0)
	cfg.DatasetPath = getenvDefault("DATASET_PATH", "data/weather_dataset_live.csv")

	if path := os.Getenv("COLLECTOR_CONFIG"); path != "" {
		if err := cfg.applyCollectorFile(path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c *AppConfig) applyCollectorFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read collector config: %w", err)
	}

	var file collectorFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse collector config: %w", err)
	}

	if len(file.Collector.Cities) > 0 {
		c.CollectorCities = file.Collector.Cities
	}
	if file.Collector.Interval != "" {
		interval, err := time.ParseDuration(file.Collector.Interval)
		if err != nil {
			return fmt.Errorf("invalid collector interval %q: %w", file.Collector.Interval, err)
		}
		c.CollectorInterval = interval
	}
	if file.Collector.Dataset != "" {
		c.DatasetPath = file.Collector.Dataset
	}
	if file.Collector.RateLimit > 0 {
		c.CollectorRateLimit = file.Collector.RateLimit
	}
	return nil
}

func splitCities(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if city := strings.TrimSpace(part); city != "" {
			out = append(out, city)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
