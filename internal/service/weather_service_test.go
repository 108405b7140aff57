package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newsboard/internal/apperror"
)

func TestWeatherService_Current(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("APPID") != "test-key" || q.Get("q") != "London" || q.Get("units") != "metric" {
			t.Errorf("unexpected query: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cod": 200,
			"weather": [{"icon": "04d", "description": "clouds"}],
			"main": {"temp": 17.5}
		}`))
	}))
	defer srv.Close()

	svc := NewWeatherService(WeatherConfig{URL: srv.URL, APIKey: "test-key", Timeout: 2 * time.Second})

	report, err := svc.Current(context.Background(), "London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Town != "London" {
		t.Fatalf("expected town London, got %q", report.Town)
	}
	if report.Icon != "04d" {
		t.Fatalf("expected icon 04d, got %q", report.Icon)
	}
	if report.Temp != 17.5 {
		t.Fatalf("expected temp 17.5, got %v", report.Temp)
	}
	if report.Data["cod"] == nil {
		t.Fatal("raw payload not forwarded")
	}
}

func TestWeatherService_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	svc := NewWeatherService(WeatherConfig{URL: srv.URL, APIKey: "k", Timeout: 2 * time.Second})

	_, err := svc.Current(context.Background(), "London")
	if !apperror.IsKind(err, apperror.External) {
		t.Fatalf("expected external error, got %v", err)
	}
}

func TestWeatherService_Unreachable(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	svc := NewWeatherService(WeatherConfig{URL: url, APIKey: "k", Timeout: time.Second})

	_, err := svc.Current(context.Background(), "London")
	if !apperror.IsKind(err, apperror.External) {
		t.Fatalf("expected external error, got %v", err)
	}
}
