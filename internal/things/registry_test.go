package things_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-station/config"
	"weather-station/internal/things"
	"weather-station/pkg/observe"
)

func testConfig(kind string) *config.Config {
	return &config.Config{
		Things: []config.ThingConfig{
			{
				Kind:           kind,
				Name:           "my_weatherstation",
				Description:    "a weather station",
				APIKey:         "test-key",
				StateCode:      "OR",
				CityName:       "Corvallis",
				TimeoutSeconds: 10,
			},
		},
	}
}

func TestInitThings(t *testing.T) {
	logger := observe.NewZapLogger("test-app")

	registry, err := things.InitThings(testConfig("weather-station"), http.DefaultClient, logger)
	require.NoError(t, err)

	all := registry.All()
	require.Len(t, all, 1)

	desc := all[0].Describe()
	assert.Equal(t, "my_weatherstation", desc.Name)
	assert.Equal(t, "thing", desc.Type)
	assert.Len(t, desc.Properties, 3)

	got, ok := registry.Get(all[0].ID())
	require.True(t, ok)
	assert.Equal(t, all[0], got)

	_, ok = registry.Get("missing")
	assert.False(t, ok)
}

func TestInitThingsUnknownKind(t *testing.T) {
	logger := observe.NewZapLogger("test-app")

	_, err := things.InitThings(testConfig("toaster"), http.DefaultClient, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toaster")
}
