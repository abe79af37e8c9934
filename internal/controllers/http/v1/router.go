package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "weather-station/docs"
	"weather-station/internal/things"
	"weather-station/pkg/observe"
)

type routes struct {
	registry *things.Registry
	l        *observe.Logger
}

func NewRouter(
	app *fiber.App,
	registry *things.Registry,
	l *observe.Logger,
) {
	r := &routes{
		registry: registry,
		l:        l,
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.New(swagger.Config{
		DeepLinking: true,
	}))

	// API routes
	app.Get("/things", r.handleListThings)
	app.Get("/things/:thingID/properties", r.handleListProperties)
	app.Get("/things/:thingID/properties/:propertyName", r.handleReadProperty)
}
