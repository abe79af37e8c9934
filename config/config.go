package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "config/config.yaml"

type Config struct {
	AppName     string        `envconfig:"APP_NAME" default:"weather-station"`
	AppVersion  string        `envconfig:"APP_VERSION" default:"1.0.0"`
	Port        string        `envconfig:"PORT" default:"8080"`
	PollSeconds int           `envconfig:"POLL_SECONDS" default:"300" validate:"gt=0"`
	SentryDSN   string        `envconfig:"SENTRY_DSN"`
	SentryDebug bool          `envconfig:"SENTRY_DEBUG"`
	Things      []ThingConfig `yaml:"things" validate:"required,min=1,dive"`
}

// ThingConfig declares one served thing. Kind selects the constructor in the
// thing factory; the remaining fields parameterize the weather station.
type ThingConfig struct {
	Kind           string `yaml:"kind" validate:"required"`
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	APIKey         string `yaml:"api_key" validate:"required"`
	StateCode      string `yaml:"state_code" validate:"required"`
	CityName       string `yaml:"city_name" validate:"required"`
	TimeoutSeconds int    `yaml:"timeout_seconds" validate:"gt=0"`
}

// NewConfig loads configuration from the default YAML file, overridden by
// environment variables (optionally from .env).
func NewConfig() (*Config, error) {
	return NewConfigFromFile(DefaultConfigFile)
}

func NewConfigFromFile(path string) (*Config, error) {
	_ = godotenv.Load()

	var cnf Config

	// YAML file first, environment on top.
	if yamlData, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	applyDefaults(&cnf)

	if err := validator.New().Struct(&cnf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cnf, nil
}

func applyDefaults(cnf *Config) {
	for i := range cnf.Things {
		t := &cnf.Things[i]
		if t.Name == "" {
			t.Name = "my_weatherstation"
		}
		if t.Description == "" {
			t.Description = "a weather station"
		}
		if t.TimeoutSeconds == 0 {
			t.TimeoutSeconds = 10
		}
	}
}
