package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.OpenWeatherAPIKey != "test-key" {
		t.Errorf("api key = %q", cfg.OpenWeatherAPIKey)
	}
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", cfg.HTTPTimeout)
	}
	if cfg.CollectorInterval != 60*time.Minute {
		t.Errorf("interval = %v, want 60m", cfg.CollectorInterval)
	}
	if cfg.CollectorRateLimit != 1.0 {
		t.Errorf("rate limit = %v, want 1.0", cfg.CollectorRateLimit)
	}
	if cfg.DatasetPath != "data/weather_dataset_live.csv" {
		t.Errorf("dataset path = %q", cfg.DatasetPath)
	}
	if len(cfg.CollectorCities) != 0 {
		t.Errorf("cities should default to empty, got %v", cfg.CollectorCities)
	}
}

func TestLoadCitiesFromEnv(t *testing.T) {
	t.Setenv("COLLECTOR_CITIES", "London, Tokyo ,Mumbai,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := []string{"London", "Tokyo", "Mumbai"}
	if len(cfg.CollectorCities) != len(want) {
		t.Fatalf("cities = %v, want %v", cfg.CollectorCities, want)
	}
	for i := range want {
		if cfg.CollectorCities[i] != want[i] {
			t.Errorf("cities[%d] = %q, want %q", i, cfg.CollectorCities[i], want[i])
		}
	}
}

func TestLoadInvalidInterval(t *testing.T) {
	t.Setenv("COLLECT_INTERVAL", "often")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid COLLECT_INTERVAL")
	}
}

func TestCollectorFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collector.toml")
	content := `[collector]
cities = ["Oslo", "Bergen"]
interval = "30m"
dataset = "/tmp/custom.csv"
rate_limit = 0.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("COLLECTOR_CONFIG", path)
	t.Setenv("COLLECT_INTERVAL", "60m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(cfg.CollectorCities) != 2 || cfg.CollectorCities[0] != "Oslo" {
		t.Errorf("cities = %v", cfg.CollectorCities)
	}
	if cfg.CollectorInterval != 30*time.Minute {
		t.Errorf("interval = %v, want file value 30m", cfg.CollectorInterval)
	}
	if cfg.DatasetPath != "/tmp/custom.csv" {
		t.Errorf("dataset = %q", cfg.DatasetPath)
	}
	if cfg.CollectorRateLimit != 0.5 {
		t.Errorf("rate limit = %v, want 0.5", cfg.CollectorRateLimit)
	}
}

func TestCollectorFileMissing(t *testing.T) {
	t.Setenv("COLLECTOR_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing collector config file")
	}
}
