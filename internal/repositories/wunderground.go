package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"weather-station/internal/models"
	"weather-station/pkg/observe"
)

const (
	WundergroundBaseURL = "http://api.wunderground.com/api"
)

// ConditionsURL builds the conditions endpoint from the credential and the
// region/locality pair. Pure string composition; callers recompute it per
// cycle rather than caching it.
func ConditionsURL(apiKey, stateCode, cityName string) string {
	return conditionsURLAt(WundergroundBaseURL, apiKey, stateCode, cityName)
}

func conditionsURLAt(base, apiKey, stateCode, cityName string) string {
	return fmt.Sprintf("%s/%s/conditions/q/%s/%s.json", base, apiKey, stateCode, cityName)
}

// ConditionsRepository is the source of conditions snapshots for a station.
type ConditionsRepository interface {
	Name() string
	FetchConditions(ctx context.Context) (models.Snapshot, error)
}

type WundergroundRepository struct {
	APIKey     string
	StateCode  string
	CityName   string
	baseURL    string
	httpClient HTTPClient
	circuit    *gobreaker.CircuitBreaker
	l          *observe.Logger
}

func NewWundergroundRepository(apiKey, stateCode, cityName string, l *observe.Logger, httpClient HTTPClient) *WundergroundRepository {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "wunderground",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &WundergroundRepository{
		APIKey:     apiKey,
		StateCode:  stateCode,
		CityName:   cityName,
		baseURL:    WundergroundBaseURL,
		httpClient: httpClient,
		circuit:    cb,
		l:          l,
	}
}

func (w *WundergroundRepository) Name() string {
	return "wunderground"
}

// FetchConditions performs one retrieval of the current conditions document.
// The caller bounds the attempt through ctx; a tripped circuit breaker
// surfaces as an ordinary fetch error.
func (w *WundergroundRepository) FetchConditions(ctx context.Context) (models.Snapshot, error) {
	url := conditionsURLAt(w.baseURL, w.APIKey, w.StateCode, w.CityName)

	w.l.Debug("making wunderground conditions request", map[string]any{
		"state": w.StateCode,
		"city":  w.CityName,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to create request: %w", err)
	}

	result, err := w.circuit.Execute(func() (interface{}, error) {
		return w.httpClient.Do(req)
	})
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to do request: %w", err)
	}
	resp := result.(*http.Response)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.Snapshot{}, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return snapshot, nil
}
