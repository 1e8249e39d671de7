package weather

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"weatherguide/internal/aqi"
	"weatherguide/internal/climate"
	"weatherguide/internal/conditions"
	"weatherguide/internal/narrative"
)

const (
	// middaySlot is the local time-of-day sample used for the daily forecast.
	middaySlot = "12:00:00"

	// maxForecastDays caps the condensed daily forecast.
	maxForecastDays = 3

	// hourlyPreviewLen is how many raw forecast samples feed the hourly view.
	hourlyPreviewLen = 8
)

// Service orchestrates the provider calls and derived-metric pipeline for
// one weather request.
type Service struct {
	provider Provider
	composer *narrative.Composer
}

// NewService creates a new Service.
func NewService(provider Provider, composer *narrative.Composer) *Service {
	return &Service{
		provider: provider,
		composer: composer,
	}
}

// Report builds the aggregate weather report for a city.
//
// The current-conditions call is mandatory: an unknown city surfaces as
// ErrCityNotFound and any other failure aborts the request. The forecast and
// pollution calls degrade gracefully; when either fails the report is still
// returned with empty forecast/hourly sections or a null AQI.
func (s *Service) Report(ctx context.Context, city string) (*Report, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrCityRequired
	}

	obs, err := s.provider.Current(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("current conditions for %q: %w", city, err)
	}

	samples, err := s.provider.Forecast(ctx, obs.Lat, obs.Lon)
	if err != nil {
		log.Printf("forecast fetch failed for %s: %v", obs.City, err)
		samples = nil
	}

	pm25, err := s.provider.PM25(ctx, obs.Lat, obs.Lon)
	if err != nil {
		log.Printf("air pollution fetch failed for %s: %v", obs.City, err)
		pm25 = nil
	}

	var aqiValue *int
	if pm25 != nil {
		if v, ok := aqi.FromPM25(*pm25); ok {
			aqiValue = &v
		}
	}

	tag := climate.Resolve(obs.City, obs.Country)
	guide := s.composer.Compose(narrative.Inputs{
		City:        obs.City,
		Country:     obs.Country,
		Temp:        obs.Temp,
		FeelsLike:   obs.FeelsLike,
		Humidity:    obs.Humidity,
		Pressure:    obs.Pressure,
		WindKmh:     obs.WindSpeedKmh,
		Category:    obs.Category,
		Description: obs.Description,
		ClimateTag:  tag,
		AQI:         aqiValue,
	})

	return &Report{
		City:        obs.City,
		Country:     obs.Country,
		LocalTime:   LocalTime(obs.ObservedAt, obs.TimezoneOffset),
		Temp:        obs.Temp,
		FeelsLike:   obs.FeelsLike,
		Description: obs.Description,
		Humidity:    obs.Humidity,
		Pressure:    obs.Pressure,
		WindSpeed:   math.Round(obs.WindSpeedKmh*10) / 10,
		WindMood:    conditions.WindMood(obs.WindSpeedKmh),
		AirQuality: AirQuality{
			AQI:   aqiValue,
			Label: aqi.Label(aqiValue),
			PM25:  pm25,
		},
		Forecast:       DailyForecast(samples),
		Hourly:         HourlyPreview(samples),
		TimezoneOffset: obs.TimezoneOffset,
		AIGuide:        guide,
	}, nil
}

// LocalTime renders a provider timestamp in the city's local time by
// shifting the unix instant with the provider's UTC offset.
func LocalTime(unix int64, offsetSeconds int) string {
	return time.Unix(unix+int64(offsetSeconds), 0).UTC().Format("2006-01-02 15:04")
}

// DailyForecast condenses the raw 3-hourly series into at most three daily
// points, keeping the first midday sample of each calendar day.
func DailyForecast(samples []ForecastSample) []ForecastPoint {
	daysSeen := make(map[string]bool)
	points := make([]ForecastPoint, 0, maxForecastDays)

	for _, s := range samples {
		date, clock, ok := strings.Cut(s.DtTxt, " ")
		if ok && clock == middaySlot && !daysSeen[date] {
			points = append(points, ForecastPoint{
				Day:         date,
				Temp:        s.TempC,
				Description: s.Description,
			})
			daysSeen[date] = true
		}
		if len(points) >= maxForecastDays {
			break
		}
	}
	return points
}

// HourlyPreview returns the first eight raw samples verbatim.
func HourlyPreview(samples []ForecastSample) []HourlyPoint {
	n := len(samples)
	if n > hourlyPreviewLen {
		n = hourlyPreviewLen
	}
	points := make([]HourlyPoint, 0, n)
	for _, s := range samples[:n] {
		points = append(points, HourlyPoint{Dt: s.Dt, Temp: s.TempC})
	}
	return points
}
