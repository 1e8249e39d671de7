package weather

import "context"

// Provider abstracts the external weather data source. Current resolves a
// city name; the coordinate-based calls depend on it having succeeded.
type Provider interface {
	Name() string
	Current(ctx context.Context, city string) (Observation, error)
	Forecast(ctx context.Context, lat, lon float64) ([]ForecastSample, error)
	PM25(ctx context.Context, lat, lon float64) (*float64, error)
}
