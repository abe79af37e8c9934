package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"weather-station/internal/models"
	"weather-station/internal/services/station"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Unknown thing"`
}

// ListThings godoc
// @Summary List served things
// @Description Returns the descriptions of all served things with their property metadata
// @Tags Things
// @Produce json
// @Success 200 {array} models.ThingDescription "Successful response"
// @Router /things [get]
func (r *routes) handleListThings(c *fiber.Ctx) error {
	all := r.registry.All()

	descriptions := make([]models.ThingDescription, 0, len(all))
	for _, t := range all {
		descriptions = append(descriptions, t.Describe())
	}

	return c.JSON(descriptions)
}

// ListProperties godoc
// @Summary Read all property values of a thing
// @Description Returns read-only copies of every property value with its metadata
// @Tags Things
// @Produce json
// @Param thingID path string true "Thing identifier"
// @Success 200 {array} models.PropertyValue "Successful response"
// @Failure 404 {object} ErrorResponse "Unknown thing"
// @Router /things/{thingID}/properties [get]
func (r *routes) handleListProperties(c *fiber.Ctx) error {
	t, ok := r.registry.Get(c.Params("thingID"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Unknown thing",
		})
	}

	return c.JSON(t.Properties())
}

// ReadProperty godoc
// @Summary Read one property value
// @Description Returns a single property value; reading the temperature property refreshes the reading first
// @Tags Things
// @Produce json
// @Param thingID path string true "Thing identifier"
// @Param propertyName path string true "Property name" Enums(temperature, barometric_pressure, wind_speed)
// @Success 200 {object} models.PropertyValue "Successful response"
// @Failure 404 {object} ErrorResponse "Unknown thing or property"
// @Failure 503 {object} ErrorResponse "Refresh cancelled"
// @Router /things/{thingID}/properties/{propertyName} [get]
func (r *routes) handleReadProperty(c *fiber.Ctx) error {
	t, ok := r.registry.Get(c.Params("thingID"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Unknown thing",
		})
	}

	value, err := t.ReadProperty(c.Context(), c.Params("propertyName"))
	if err != nil {
		if errors.Is(err, station.ErrUnknownProperty) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "Unknown property",
			})
		}

		// The only other failure mode is a cancelled refresh.
		r.l.Warning("property read cancelled", map[string]any{
			"thing":    c.Params("thingID"),
			"property": c.Params("propertyName"),
			"err":      err.Error(),
		})

		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Error: "Refresh cancelled",
		})
	}

	return c.JSON(value)
}
