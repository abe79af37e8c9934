package station

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"weather-station/internal/models"
	"weather-station/internal/repositories"
	"weather-station/pkg/observe"
)

const (
	PropertyTemperature = "temperature"
	PropertyPressure    = "barometric_pressure"
	PropertyWindSpeed   = "wind_speed"
)

// Outcome is the result of one poll cycle.
type Outcome int

const (
	// OutcomeAccepted means the fetch and projection succeeded and the
	// properties carry fresh values.
	OutcomeAccepted Outcome = iota
	// OutcomeSubstituted means the attempt failed and the properties kept
	// the values of the last successful cycle.
	OutcomeSubstituted
	// OutcomeCancelled means the caller cancelled the cycle; nothing was
	// mutated and the cause is returned to the caller.
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeSubstituted:
		return "substituted"
	case OutcomeCancelled:
		return "cancelled"
	}
	return "unknown"
}

// ErrUnknownProperty is returned when an observer asks for a property the
// station does not expose.
var ErrUnknownProperty = errors.New("unknown property")

// Station polls a conditions repository and exposes the readings as three
// typed properties. Reading the temperature property drives a refresh; the
// other two reflect whatever the last refresh produced.
type Station struct {
	id          uuid.UUID
	name        string
	description string
	repo        repositories.ConditionsRepository
	timeout     time.Duration
	l           *observe.Logger

	metadata []models.PropertyMetadata

	mu       sync.Mutex
	current  models.Snapshot
	fallback models.Snapshot

	temperature float64
	pressure    float64
	windSpeed   float64
}

func New(name, description string, timeout time.Duration, repo repositories.ConditionsRepository, l *observe.Logger) *Station {
	initial := models.DefaultSnapshot()
	obs := initial.CurrentObservation

	return &Station{
		id:          uuid.New(),
		name:        name,
		description: description,
		repo:        repo,
		timeout:     timeout,
		l:           l,
		metadata: []models.PropertyMetadata{
			{Name: PropertyTemperature, Description: "the temperature in ℉", Unit: "℉"},
			{Name: PropertyPressure, Description: "the air pressure in inches", Unit: "in"},
			{Name: PropertyWindSpeed, Description: "the wind speed in mph", Unit: "mph"},
		},
		current:     initial,
		fallback:    initial,
		temperature: *obs.TempF,
		pressure:    *obs.PressureIn,
		windSpeed:   *obs.WindMPH,
	}
}

func (s *Station) ID() string {
	return s.id.String()
}

// Refresh runs one poll cycle: rotate the fallback, attempt a timed fetch,
// then commit either the fresh snapshot or the rotated one. Ordinary fetch
// and parse failures never surface as errors; the only returned error is
// the caller's own cancellation.
func (s *Station) Refresh(ctx context.Context) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Rotation value captured before the attempt; committed below so a
	// cancelled cycle leaves both slots untouched.
	rotated := s.current

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	snapshot, err := s.repo.FetchConditions(fetchCtx)
	if err != nil {
		if ctx.Err() != nil && fetchCtx.Err() != context.DeadlineExceeded {
			return OutcomeCancelled, ctx.Err()
		}

		s.l.Critical(errors.Wrap(err, "loading weather data fails"), map[string]any{
			"station": s.name,
			"source":  s.repo.Name(),
		})

		s.fallback = rotated
		s.current = rotated
		return OutcomeSubstituted, nil
	}

	projected, projErr := project(snapshot)
	if projErr != nil {
		s.l.Critical(errors.Wrap(projErr, "loading weather data fails"), map[string]any{
			"station": s.name,
			"source":  s.repo.Name(),
		})

		s.fallback = rotated
		s.current = rotated
		return OutcomeSubstituted, nil
	}

	s.fallback = rotated
	s.current = snapshot
	s.temperature = projected.temperature
	s.pressure = projected.pressure
	s.windSpeed = projected.windSpeed

	return OutcomeAccepted, nil
}

// ReadProperty returns one property value. Reading the temperature property
// triggers a refresh first; a cancelled refresh propagates to the caller
// without touching the properties.
func (s *Station) ReadProperty(ctx context.Context, name string) (models.PropertyValue, error) {
	if name == PropertyTemperature {
		if outcome, err := s.Refresh(ctx); outcome == OutcomeCancelled {
			return models.PropertyValue{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, meta := range s.metadata {
		if meta.Name == name {
			return models.PropertyValue{PropertyMetadata: meta, Value: s.valueLocked(name)}, nil
		}
	}

	return models.PropertyValue{}, errors.Wrap(ErrUnknownProperty, name)
}

// Properties returns read-only copies of all three property values.
func (s *Station) Properties() []models.PropertyValue {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := make([]models.PropertyValue, 0, len(s.metadata))
	for _, meta := range s.metadata {
		values = append(values, models.PropertyValue{PropertyMetadata: meta, Value: s.valueLocked(meta.Name)})
	}
	return values
}

func (s *Station) Describe() models.ThingDescription {
	return models.ThingDescription{
		ID:          s.id.String(),
		Name:        s.name,
		Type:        "thing",
		Description: s.description,
		Properties:  s.metadata,
		Href:        "/things/" + s.id.String(),
	}
}

func (s *Station) valueLocked(name string) float64 {
	switch name {
	case PropertyTemperature:
		return s.temperature
	case PropertyPressure:
		return s.pressure
	case PropertyWindSpeed:
		return s.windSpeed
	}
	return 0
}

type projection struct {
	temperature float64
	pressure    float64
	windSpeed   float64
}

// project extracts the three observation fields. It either yields all three
// or fails, so a schema mismatch can never partially update the properties.
func project(snapshot models.Snapshot) (projection, error) {
	obs := snapshot.CurrentObservation
	if obs == nil {
		return projection{}, &MalformedSnapshotError{Path: "current_observation"}
	}
	if obs.TempF == nil {
		return projection{}, &MalformedSnapshotError{Path: "current_observation.temp_f"}
	}
	if obs.PressureIn == nil {
		return projection{}, &MalformedSnapshotError{Path: "current_observation.pressure_in"}
	}
	if obs.WindMPH == nil {
		return projection{}, &MalformedSnapshotError{Path: "current_observation.wind_mph"}
	}

	return projection{
		temperature: *obs.TempF,
		pressure:    *obs.PressureIn,
		windSpeed:   *obs.WindMPH,
	}, nil
}
