package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weatherguide/internal/weather"
)

const (
	openWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

	weatherEndpoint   = "/weather"
	forecastEndpoint  = "/forecast"
	pollutionEndpoint = "/air_pollution"

	defaultTimeout = 10 * time.Second
	userAgent      = "weatherguide/1.0"

	// Provider wind speeds arrive in m/s; the service works in km/h.
	msToKmh = 3.6
)

// OpenWeatherProvider implements weather.Provider against the OpenWeather
// data/2.5 endpoints. Outbound calls get resty's retry/backoff handling plus
// a circuit breaker shared across the three endpoints.
type OpenWeatherProvider struct {
	name    string
	client  *resty.Client
	apiKey  string
	circuit *gobreaker.CircuitBreaker
	titler  cases.Caser
}

// NewOpenWeatherProvider creates a provider with sane retry and timeout
// defaults. baseURL overrides the production endpoint when non-empty, which
// the tests use to point at a local fake.
func NewOpenWeatherProvider(apiKey, baseURL string) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = openWeatherBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetTimeout(defaultTimeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second)

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeatherProvider{
		name:    "openweathermap",
		client:  client,
		apiKey:  apiKey,
		circuit: cb,
		titler:  cases.Title(language.English),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// SetTimeout overrides the outbound HTTP timeout.
func (p *OpenWeatherProvider) SetTimeout(d time.Duration) {
	p.client.SetTimeout(d)
}

// APIError is a non-2xx answer from OpenWeather.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openweather api error (status %d): %s", e.StatusCode, e.Message)
}

// currentPayload mirrors the current-conditions response. Optional readings
// decode into pointers so a missing field stays distinguishable from zero.
type currentPayload struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		TempMin   *float64 `json:"temp_min"`
		TempMax   *float64 `json:"temp_max"`
		Humidity  *float64 `json:"humidity"`
		Pressure  *float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Visibility int `json:"visibility"`
	Coord      struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
	Dt       int64  `json:"dt"`
	Timezone int    `json:"timezone"`
	Name     string `json:"name"`
}

// Current fetches and normalizes current conditions for a city.
func (p *OpenWeatherProvider) Current(ctx context.Context, city string) (weather.Observation, error) {
	var payload currentPayload

	err := p.get(ctx, weatherEndpoint, map[string]string{
		"q":     city,
		"units": "metric",
	}, &payload)
	if err != nil {
		return weather.Observation{}, err
	}

	obs := weather.Observation{
		City:           payload.Name,
		Country:        payload.Sys.Country,
		ObservedAt:     payload.Dt,
		TimezoneOffset: payload.Timezone,
		Temp:           payload.Main.Temp,
		FeelsLike:      payload.Main.FeelsLike,
		TempMin:        payload.Main.TempMin,
		TempMax:        payload.Main.TempMax,
		Humidity:       payload.Main.Humidity,
		Pressure:       payload.Main.Pressure,
		WindSpeedKmh:   payload.Wind.Speed * msToKmh,
		WindDeg:        payload.Wind.Deg,
		CloudsPct:      payload.Clouds.All,
		VisibilityM:    payload.Visibility,
		Lat:            payload.Coord.Lat,
		Lon:            payload.Coord.Lon,
	}
	if len(payload.Weather) > 0 {
		obs.Category = payload.Weather[0].Main
		obs.Description = p.titler.String(payload.Weather[0].Description)
	}
	return obs, nil
}

// Forecast fetches the 5-day/3-hour series for a coordinate pair.
func (p *OpenWeatherProvider) Forecast(ctx context.Context, lat, lon float64) ([]weather.ForecastSample, error) {
	var payload struct {
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
			Weather []struct {
				Description string `json:"description"`
			} `json:"weather"`
			DtTxt string `json:"dt_txt"`
		} `json:"list"`
	}

	err := p.get(ctx, forecastEndpoint, map[string]string{
		"lat":   fmt.Sprintf("%f", lat),
		"lon":   fmt.Sprintf("%f", lon),
		"units": "metric",
	}, &payload)
	if err != nil {
		return nil, err
	}

	samples := make([]weather.ForecastSample, 0, len(payload.List))
	for _, item := range payload.List {
		sample := weather.ForecastSample{
			Dt:    item.Dt,
			DtTxt: item.DtTxt,
			TempC: item.Main.Temp,
		}
		if len(item.Weather) > 0 {
			sample.Description = p.titler.String(item.Weather[0].Description)
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

// PM25 fetches the fine-particulate concentration for a coordinate pair.
// A nil result with nil error means the provider returned no reading.
func (p *OpenWeatherProvider) PM25(ctx context.Context, lat, lon float64) (*float64, error) {
	var payload struct {
		List []struct {
			Components struct {
				PM25 *float64 `json:"pm2_5"`
			} `json:"components"`
		} `json:"list"`
	}

	err := p.get(ctx, pollutionEndpoint, map[string]string{
		"lat": fmt.Sprintf("%f", lat),
		"lon": fmt.Sprintf("%f", lon),
	}, &payload)
	if err != nil {
		return nil, err
	}

	if len(payload.List) == 0 {
		return nil, nil
	}
	return payload.List[0].Components.PM25, nil
}

// get runs one API call through the circuit breaker and decodes the result.
// Only transport failures, rate limiting, and 5xx answers count against the
// breaker; client-level errors such as an unknown city do not trip it.
func (p *OpenWeatherProvider) get(ctx context.Context, endpoint string, params map[string]string, out any) error {
	result, err := p.circuit.Execute(func() (interface{}, error) {
		resp, err := p.client.R().
			SetContext(ctx).
			SetQueryParam("appid", p.apiKey).
			SetQueryParams(params).
			SetResult(out).
			Get(endpoint)
		if err != nil {
			return nil, fmt.Errorf("openweather request failed: %w", err)
		}
		if resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() >= 500 {
			return nil, parseAPIError(resp)
		}
		return resp, nil
	})
	if err != nil {
		return err
	}

	resp := result.(*resty.Response)
	if !resp.IsSuccess() {
		return parseAPIError(resp)
	}
	return nil
}

// parseAPIError converts a non-2xx response into a typed error, mapping the
// provider's city-unknown answer onto the domain sentinel.
func parseAPIError(resp *resty.Response) error {
	var body struct {
		Cod     json.Number `json:"cod"`
		Message string      `json:"message"`
	}
	msg := fmt.Sprintf("request failed with status %d", resp.StatusCode())
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		msg = body.Message
	}

	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%w: %s", weather.ErrCityNotFound, msg)
	}
	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    msg,
	}
}
