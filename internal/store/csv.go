// Package store persists collected observations to the tabular CSV dataset
// consumed by the offline model-training job.
package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"weatherguide/internal/weather"
)

// datasetHeader is the fixed column layout of the training dataset. The
// training job depends on these exact names.
var datasetHeader = []string{
	"City", "Country", "Timestamp",
	"Temp", "MinTemp", "MaxTemp",
	"Humidity", "Pressure",
	"WindSpeed(km/h)", "WindDir",
	"Clouds(%)", "Visibility(m)",
	"WeatherMain", "WeatherDescription",
}

// DatasetStore appends observation rows to a CSV file, creating it with a
// header on first use. Safe for concurrent appends within one process.
type DatasetStore struct {
	mu   sync.Mutex
	path string
}

// NewDatasetStore creates a store writing to path.
func NewDatasetStore(path string) *DatasetStore {
	return &DatasetStore{path: path}
}

// Path returns the dataset file location.
func (s *DatasetStore) Path() string {
	return s.path
}

// Append writes one observation row, stamped with at in local dataset time.
func (s *DatasetStore) Append(obs weather.Observation, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create dataset directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat dataset: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(datasetHeader); err != nil {
			return fmt.Errorf("write dataset header: %w", err)
		}
	}

	if err := w.Write(row(obs, at)); err != nil {
		return fmt.Errorf("write dataset row: %w", err)
	}
	w.Flush()
	return w.Error()
}

func row(obs weather.Observation, at time.Time) []string {
	return []string{
		obs.City,
		obs.Country,
		at.Format("2006-01-02 15:04:05"),
		formatReading(obs.Temp),
		formatReading(obs.TempMin),
		formatReading(obs.TempMax),
		formatReading(obs.Humidity),
		formatReading(obs.Pressure),
		fmt.Sprintf("%.2f", obs.WindSpeedKmh),
		fmt.Sprintf("%g", obs.WindDeg),
		fmt.Sprintf("%g", obs.CloudsPct),
		fmt.Sprintf("%d", obs.VisibilityM),
		orUnknown(obs.Category),
		orUnknown(obs.Description),
	}
}

func formatReading(v *float64) string {
	if v == nil {
		return "0"
	}
	return fmt.Sprintf("%g", *v)
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
