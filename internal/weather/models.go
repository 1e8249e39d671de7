package weather

import (
	"errors"

	"weatherguide/internal/narrative"
)

var (
	// ErrCityRequired is returned when the request carries no city name.
	ErrCityRequired = errors.New("city is required")

	// ErrCityNotFound is returned when the provider does not know the city.
	ErrCityNotFound = errors.New("city not found")
)

// Observation is the normalized current-conditions view for one city,
// constructed per request from the provider payload and discarded after the
// response is built. Optional readings are pointers so downstream
// classifiers can substitute defaults.
type Observation struct {
	City    string
	Country string

	ObservedAt     int64 // unix seconds, UTC
	TimezoneOffset int   // seconds east of UTC

	Temp      *float64 // °C
	FeelsLike *float64 // °C
	Humidity  *float64 // percent
	Pressure  *float64 // hPa

	WindSpeedKmh float64
	WindDeg      float64

	Category    string // provider's coarse group, e.g. "Rain"
	Description string // title-cased free text

	Lat float64
	Lon float64

	// Extra readings kept for the dataset collector.
	TempMin     *float64
	TempMax     *float64
	CloudsPct   float64
	VisibilityM int
}

// ForecastSample is one raw 3-hourly forecast entry.
type ForecastSample struct {
	Dt          int64
	DtTxt       string // "YYYY-MM-DD HH:MM:SS" in city-local time
	TempC       float64
	Description string
}

// ForecastPoint is one day of the condensed daily forecast: the sample
// closest to local midday, one per calendar day.
type ForecastPoint struct {
	Day         string  `json:"day"`
	Temp        float64 `json:"temp"`
	Description string  `json:"description"`
}

// HourlyPoint is one entry of the short-term hourly preview.
type HourlyPoint struct {
	Dt   int64   `json:"dt"`
	Temp float64 `json:"temp"`
}

// AirQuality carries the raw PM2.5 reading and the derived index.
// AQI is null when the concentration is missing or outside the scale.
type AirQuality struct {
	AQI   *int     `json:"aqi"`
	Label string   `json:"label"`
	PM25  *float64 `json:"pm25"`
}

// Report is the aggregate response for GET /weather.
type Report struct {
	City           string          `json:"city"`
	Country        string          `json:"country"`
	LocalTime      string          `json:"local_time"`
	Temp           *float64        `json:"temp"`
	FeelsLike      *float64        `json:"feels_like"`
	Description    string          `json:"description"`
	Humidity       *float64        `json:"humidity"`
	Pressure       *float64        `json:"pressure"`
	WindSpeed      float64         `json:"wind_speed"`
	WindMood       string          `json:"wind_mood"`
	AirQuality     AirQuality      `json:"air_quality"`
	Forecast       []ForecastPoint `json:"forecast"`
	Hourly         []HourlyPoint   `json:"hourly"`
	TimezoneOffset int             `json:"timezone_offset"`
	AIGuide        narrative.Guide `json:"ai_guide"`
}
