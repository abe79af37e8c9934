package things

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"weather-station/config"
	"weather-station/internal/models"
	"weather-station/internal/repositories"
	"weather-station/internal/services/station"
	"weather-station/pkg/observe"
)

// Thing is one served device: a description, a set of readable properties,
// and a refresh cycle the scheduler drives.
type Thing interface {
	ID() string
	Describe() models.ThingDescription
	Properties() []models.PropertyValue
	ReadProperty(ctx context.Context, name string) (models.PropertyValue, error)
	Refresh(ctx context.Context) (station.Outcome, error)
}

// Registry holds the served things in declaration order.
type Registry struct {
	byID  map[string]Thing
	order []Thing
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Thing)}
}

func (r *Registry) Add(t Thing) {
	if _, ok := r.byID[t.ID()]; ok {
		return
	}
	r.byID[t.ID()] = t
	r.order = append(r.order, t)
}

func (r *Registry) Get(id string) (Thing, bool) {
	t, ok := r.byID[id]
	return t, ok
}

func (r *Registry) All() []Thing {
	return r.order
}

// InitThings constructs every configured thing. Kinds are static
// identifiers resolved here, never type names resolved at runtime.
func InitThings(cfg *config.Config, httpClient repositories.HTTPClient, l *observe.Logger) (*Registry, error) {
	registry := NewRegistry()

	for _, tc := range cfg.Things {
		switch tc.Kind {
		case "weather-station":
			repo := repositories.NewWundergroundRepository(tc.APIKey, tc.StateCode, tc.CityName, l, httpClient)
			timeout := time.Duration(tc.TimeoutSeconds) * time.Second
			registry.Add(station.New(tc.Name, tc.Description, timeout, repo, l))
			// Add more cases here to serve new thing kinds.
		default:
			return nil, errors.Errorf("unknown thing kind %q", tc.Kind)
		}
	}

	return registry, nil
}
