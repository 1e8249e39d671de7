package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"weatherguide/internal/narrative"
	"weatherguide/internal/weather"
)

type stubProvider struct {
	current    weather.Observation
	currentErr error
	samples    []weather.ForecastSample
	pm25       *float64
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Current(ctx context.Context, city string) (weather.Observation, error) {
	return s.current, s.currentErr
}

func (s *stubProvider) Forecast(ctx context.Context, lat, lon float64) ([]weather.ForecastSample, error) {
	return s.samples, nil
}

func (s *stubProvider) PM25(ctx context.Context, lat, lon float64) (*float64, error) {
	return s.pm25, nil
}

func newTestApp(p weather.Provider) *fiber.App {
	app := fiber.New()
	svc := weather.NewService(p, narrative.NewComposer(rand.New(rand.NewSource(1))))
	RegisterRoutes(app, svc)
	return app
}

func bodyJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("decode body %s: %v", raw, err)
	}
	return m
}

func TestWeatherRequiresCity(t *testing.T) {
	app := newTestApp(&stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/weather", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}

	body := bodyJSON(t, resp)
	if body["error"] != "City is required" {
		t.Errorf(`body error = %v, want "City is required"`, body["error"])
	}
}

func TestWeatherCityNotFound(t *testing.T) {
	app := newTestApp(&stubProvider{currentErr: weather.ErrCityNotFound})

	req := httptest.NewRequest(http.MethodGet, "/weather?city=Lundon", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body := bodyJSON(t, resp)
	if body["error"] != "city_not_found" {
		t.Errorf("body error = %v, want city_not_found", body["error"])
	}
	if _, ok := body["ai_guide"]; ok {
		t.Error("city_not_found response must not carry ai_guide")
	}
	if _, ok := body["suggestions"].([]any); !ok {
		t.Errorf("suggestions missing or not an array: %v", body["suggestions"])
	}
}

func TestWeatherSuccessShape(t *testing.T) {
	temp := 15.0
	feels := 13.0
	humidity := 70.0
	pressure := 1012.0
	pm := 30.0

	app := newTestApp(&stubProvider{
		current: weather.Observation{
			City:         "London",
			Country:      "GB",
			ObservedAt:   1700000000,
			Temp:         &temp,
			FeelsLike:    &feels,
			Humidity:     &humidity,
			Pressure:     &pressure,
			WindSpeedKmh: 18.0,
			Category:     "Clouds",
			Description:  "Overcast Clouds",
			Lat:          51.5,
			Lon:          -0.1,
		},
		samples: []weather.ForecastSample{
			{Dt: 1, DtTxt: "2023-11-15 12:00:00", TempC: 14, Description: "Light Rain"},
		},
		pm25: &pm,
	})

	req := httptest.NewRequest(http.MethodGet, "/weather?city=London", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body := bodyJSON(t, resp)
	for _, field := range []string{
		"city", "country", "local_time", "temp", "feels_like", "description",
		"humidity", "pressure", "wind_speed", "wind_mood", "air_quality",
		"forecast", "hourly", "timezone_offset", "ai_guide",
	} {
		if _, ok := body[field]; !ok {
			t.Errorf("response missing field %q", field)
		}
	}

	if body["wind_mood"] != "Breezy" {
		t.Errorf("wind_mood = %v, want Breezy", body["wind_mood"])
	}

	air, ok := body["air_quality"].(map[string]any)
	if !ok {
		t.Fatalf("air_quality is not an object: %v", body["air_quality"])
	}
	if air["label"] != "Moderate" {
		t.Errorf("aqi label = %v, want Moderate", air["label"])
	}

	guide, ok := body["ai_guide"].(map[string]any)
	if !ok {
		t.Fatalf("ai_guide is not an object: %v", body["ai_guide"])
	}
	for _, field := range []string{
		"summary", "morning", "afternoon", "evening",
		"clothing", "activities", "safety", "insight",
	} {
		if guide[field] == "" || guide[field] == nil {
			t.Errorf("ai_guide missing field %q", field)
		}
	}
}

func TestWeatherUpstreamFailure(t *testing.T) {
	app := newTestApp(&stubProvider{currentErr: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/weather?city=London", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadGateway)
	}
}

func TestSuggestEndpoint(t *testing.T) {
	app := newTestApp(&stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/suggest?query=lond", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body := bodyJSON(t, resp)
	if body["query"] != "lond" {
		t.Errorf("query = %v, want lond", body["query"])
	}
	suggestions, ok := body["suggestions"].([]any)
	if !ok || len(suggestions) == 0 {
		t.Fatalf("expected suggestions, got %v", body["suggestions"])
	}
	if suggestions[0] != "London" {
		t.Errorf("first suggestion = %v, want London", suggestions[0])
	}
}

func TestSuggestEmptyQuery(t *testing.T) {
	app := newTestApp(&stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/suggest", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := bodyJSON(t, resp)
	suggestions, ok := body["suggestions"].([]any)
	if !ok {
		t.Fatalf("suggestions should be an empty array, got %v", body["suggestions"])
	}
	if len(suggestions) != 0 {
		t.Errorf("expected no suggestions, got %v", suggestions)
	}
}

func TestSuggestLimitValidation(t *testing.T) {
	app := newTestApp(&stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/suggest?query=lo&limit=50", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}
