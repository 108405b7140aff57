package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"newsboard/internal/apperror"
)

const defaultWeatherTimeout = 10 * time.Second

// WeatherConfig points at the external API. Timeout is configurable: the
// original blocked indefinitely on a hanging upstream.
type WeatherConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// WeatherReport is what the demo endpoint forwards to clients.
type WeatherReport struct {
	Town string         `json:"town"`
	Code any            `json:"code"`
	Icon string         `json:"icon"`
	Temp float64        `json:"temp"`
	Data map[string]any `json:"data"`
}

type WeatherService struct {
	cfg    WeatherConfig
	client *http.Client
}

func NewWeatherService(cfg WeatherConfig) *WeatherService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultWeatherTimeout
	}
	return &WeatherService{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

var _ Weather = (*WeatherService)(nil)

// Current fetches the current weather for a city, metric units.
func (s *WeatherService) Current(ctx context.Context, city string) (WeatherReport, error) {
	params := url.Values{}
	params.Set("APPID", s.cfg.APIKey)
	params.Set("q", city)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL+"?"+params.Encode(), nil)
	if err != nil {
		return WeatherReport{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return WeatherReport{}, apperror.Wrap(apperror.External, "weather API unreachable", err)
	}
	defer resp.Body.Close()

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return WeatherReport{}, apperror.Wrap(apperror.External, "malformed weather response", err)
	}

	report := WeatherReport{Town: city, Code: raw["cod"], Data: raw}

	if list, ok := raw["weather"].([]any); ok && len(list) > 0 {
		if first, ok := list[0].(map[string]any); ok {
			report.Icon, _ = first["icon"].(string)
		}
	}
	if main, ok := raw["main"].(map[string]any); ok {
		report.Temp, _ = main["temp"].(float64)
	}

	return report, nil
}
