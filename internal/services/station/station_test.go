package station_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-station/internal/models"
	"weather-station/internal/services/station"
	"weather-station/pkg/observe"
)

type fetchResult struct {
	snapshot models.Snapshot
	err      error
}

// scriptedRepository plays back a fixed sequence of fetch outcomes; the last
// entry repeats once the script is exhausted.
type scriptedRepository struct {
	mu      sync.Mutex
	results []fetchResult
	delay   time.Duration
	calls   int
}

func (r *scriptedRepository) Name() string {
	return "scripted"
}

func (r *scriptedRepository) FetchConditions(ctx context.Context) (models.Snapshot, error) {
	r.mu.Lock()
	idx := r.calls
	if idx >= len(r.results) {
		idx = len(r.results) - 1
	}
	r.calls++
	result := r.results[idx]
	delay := r.delay
	r.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return models.Snapshot{}, ctx.Err()
		case <-time.After(delay):
		}
	}

	if ctx.Err() != nil {
		return models.Snapshot{}, ctx.Err()
	}

	return result.snapshot, result.err
}

func (r *scriptedRepository) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func floatPtr(v float64) *float64 {
	return &v
}

func snapshotOf(temp, pressure, wind float64) models.Snapshot {
	return models.Snapshot{
		CurrentObservation: &models.Observation{
			TempF:      floatPtr(temp),
			PressureIn: floatPtr(pressure),
			WindMPH:    floatPtr(wind),
		},
	}
}

func newTestStation(repo *scriptedRepository, timeout time.Duration) (*station.Station, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := observe.NewZapLogger("test-station", &buf)
	return station.New("my_weatherstation", "a weather station", timeout, repo, logger), &buf
}

func propertyValues(s *station.Station) map[string]float64 {
	values := make(map[string]float64)
	for _, p := range s.Properties() {
		values[p.Name] = p.Value
	}
	return values
}

func criticalCount(buf *bytes.Buffer) int {
	return strings.Count(buf.String(), `"severity":"critical"`)
}

func TestRefresh_FallbackSequence(t *testing.T) {
	repo := &scriptedRepository{results: []fetchResult{
		{snapshot: snapshotOf(54.3, 29.92, 7.0)},
		{err: errors.New("connection refused")},
		{err: errors.New("connection refused")},
		{snapshot: snapshotOf(61.1, 30.05, 12.5)},
	}}
	s, _ := newTestStation(repo, time.Second)

	ctx := context.Background()

	expected := []struct {
		outcome station.Outcome
		temp    float64
	}{
		{station.OutcomeAccepted, 54.3},
		{station.OutcomeSubstituted, 54.3},
		{station.OutcomeSubstituted, 54.3},
		{station.OutcomeAccepted, 61.1},
	}

	for i, want := range expected {
		outcome, err := s.Refresh(ctx)
		require.NoError(t, err, "cycle %d", i)
		assert.Equal(t, want.outcome, outcome, "cycle %d", i)
		assert.Equal(t, want.temp, propertyValues(s)[station.PropertyTemperature], "cycle %d", i)
	}

	values := propertyValues(s)
	assert.Equal(t, 30.05, values[station.PropertyPressure])
	assert.Equal(t, 12.5, values[station.PropertyWindSpeed])
}

func TestRefresh_FirstCycleFailureKeepsDefaults(t *testing.T) {
	repo := &scriptedRepository{results: []fetchResult{
		{err: errors.New("no such host")},
	}}
	s, buf := newTestStation(repo, time.Second)

	outcome, err := s.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, station.OutcomeSubstituted, outcome)

	values := propertyValues(s)
	assert.Equal(t, 0.0, values[station.PropertyTemperature])
	assert.Equal(t, 30.0, values[station.PropertyPressure])
	assert.Equal(t, 30.0, values[station.PropertyWindSpeed])

	assert.Equal(t, 1, criticalCount(buf))
}

func TestRefresh_TimeoutBehavesLikeTransportError(t *testing.T) {
	transportRepo := &scriptedRepository{results: []fetchResult{
		{snapshot: snapshotOf(54.3, 29.92, 7.0)},
		{err: errors.New("connection refused")},
	}}
	transportStation, _ := newTestStation(transportRepo, time.Second)

	slowRepo := &scriptedRepository{
		results: []fetchResult{
			{snapshot: snapshotOf(54.3, 29.92, 7.0)},
		},
		delay: 0,
	}
	timeoutStation, _ := newTestStation(slowRepo, 20*time.Millisecond)

	ctx := context.Background()

	_, err := transportStation.Refresh(ctx)
	require.NoError(t, err)
	_, err = timeoutStation.Refresh(ctx)
	require.NoError(t, err)

	// Second cycle: one station hits a transport error, the other a timeout.
	slowRepo.mu.Lock()
	slowRepo.delay = 200 * time.Millisecond
	slowRepo.mu.Unlock()

	transportOutcome, err := transportStation.Refresh(ctx)
	require.NoError(t, err)
	timeoutOutcome, err := timeoutStation.Refresh(ctx)
	require.NoError(t, err)

	assert.Equal(t, station.OutcomeSubstituted, transportOutcome)
	assert.Equal(t, timeoutOutcome, transportOutcome)
	assert.Equal(t, propertyValues(transportStation), propertyValues(timeoutStation))
	assert.Equal(t, 54.3, propertyValues(timeoutStation)[station.PropertyTemperature])
}

func TestRefresh_CancellationLeavesPropertiesUntouched(t *testing.T) {
	repo := &scriptedRepository{results: []fetchResult{
		{snapshot: snapshotOf(54.3, 29.92, 7.0)},
		{err: errors.New("unused")},
		{err: errors.New("connection refused")},
	}}
	s, buf := newTestStation(repo, time.Second)

	_, err := s.Refresh(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := s.Refresh(ctx)
	assert.Equal(t, station.OutcomeCancelled, outcome)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 54.3, propertyValues(s)[station.PropertyTemperature])

	// Cancellation is not a fetch failure: nothing was logged critical
	// beyond what earlier cycles produced.
	assert.Equal(t, 0, criticalCount(buf))

	// The fallback slot was not rotated by the cancelled cycle: a later
	// ordinary failure still restores the last accepted values.
	outcome, err = s.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, station.OutcomeSubstituted, outcome)
	assert.Equal(t, 54.3, propertyValues(s)[station.PropertyTemperature])
}

func TestRefresh_SchemaMismatchContainment(t *testing.T) {
	missingWind := models.Snapshot{
		CurrentObservation: &models.Observation{
			TempF:      floatPtr(70.0),
			PressureIn: floatPtr(29.5),
		},
	}
	repo := &scriptedRepository{results: []fetchResult{
		{snapshot: snapshotOf(54.3, 29.92, 7.0)},
		{snapshot: missingWind},
	}}
	s, buf := newTestStation(repo, time.Second)

	_, err := s.Refresh(context.Background())
	require.NoError(t, err)

	outcome, err := s.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, station.OutcomeSubstituted, outcome)

	// No partial update: all three values still come from the first cycle.
	values := propertyValues(s)
	assert.Equal(t, 54.3, values[station.PropertyTemperature])
	assert.Equal(t, 29.92, values[station.PropertyPressure])
	assert.Equal(t, 7.0, values[station.PropertyWindSpeed])

	assert.Equal(t, 1, criticalCount(buf))
	assert.Contains(t, buf.String(), "wind_mph")
}

func TestMetadataStableAcrossCycles(t *testing.T) {
	repo := &scriptedRepository{results: []fetchResult{
		{snapshot: snapshotOf(54.3, 29.92, 7.0)},
		{err: errors.New("connection refused")},
	}}
	s, _ := newTestStation(repo, time.Second)

	metadataOf := func() []models.PropertyMetadata {
		var metas []models.PropertyMetadata
		for _, p := range s.Properties() {
			metas = append(metas, p.PropertyMetadata)
		}
		return metas
	}

	before := metadataOf()
	require.Len(t, before, 3)
	assert.Equal(t, "℉", before[0].Unit)
	assert.Equal(t, "the temperature in ℉", before[0].Description)
	assert.Equal(t, "in", before[1].Unit)
	assert.Equal(t, "mph", before[2].Unit)

	for i := 0; i < 3; i++ {
		_, err := s.Refresh(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, before, metadataOf())
}

func TestReadProperty_TemperatureDrivesRefresh(t *testing.T) {
	repo := &scriptedRepository{results: []fetchResult{
		{snapshot: snapshotOf(54.3, 29.92, 7.0)},
	}}
	s, _ := newTestStation(repo, time.Second)

	value, err := s.ReadProperty(context.Background(), station.PropertyTemperature)
	require.NoError(t, err)
	assert.Equal(t, 54.3, value.Value)
	assert.Equal(t, 1, repo.callCount())

	// Passive properties reflect the refresh without triggering one.
	value, err = s.ReadProperty(context.Background(), station.PropertyWindSpeed)
	require.NoError(t, err)
	assert.Equal(t, 7.0, value.Value)
	assert.Equal(t, 1, repo.callCount())
}

func TestReadProperty_DrivingCancellation(t *testing.T) {
	repo := &scriptedRepository{
		results: []fetchResult{{snapshot: snapshotOf(54.3, 29.92, 7.0)}},
		delay:   time.Second,
	}
	s, _ := newTestStation(repo, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := s.ReadProperty(ctx, station.PropertyTemperature)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadProperty_Unknown(t *testing.T) {
	repo := &scriptedRepository{results: []fetchResult{
		{snapshot: snapshotOf(54.3, 29.92, 7.0)},
	}}
	s, _ := newTestStation(repo, time.Second)

	_, err := s.ReadProperty(context.Background(), "humidity")
	assert.ErrorIs(t, err, station.ErrUnknownProperty)
}
