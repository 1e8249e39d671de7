package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"weatherguide/internal/suggest"
	"weatherguide/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	app.Get("/weather", func(c *fiber.Ctx) error {
		city := c.Query("city")

		report, err := service.Report(c.Context(), city)
		switch {
		case err == nil:
			return c.JSON(report)
		case errors.Is(err, weather.ErrCityRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "City is required",
			})
		case errors.Is(err, weather.ErrCityNotFound):
			// Deliberately a 200: the request itself was fine, the city
			// just did not resolve. Suggestions help the client recover.
			return c.JSON(fiber.Map{
				"error":       "city_not_found",
				"suggestions": suggestionsOrEmpty(city, suggest.DefaultLimit),
			})
		default:
			return fiber.NewError(fiber.StatusBadGateway, "weather provider unavailable")
		}
	})

	app.Get("/suggest", func(c *fiber.Ctx) error {
		var q suggestQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(fiber.Map{
			"query":       q.Query,
			"suggestions": suggestionsOrEmpty(q.Query, q.Limit),
		})
	})
}

// suggestionsOrEmpty keeps the JSON field an array rather than null.
func suggestionsOrEmpty(query string, limit int) []string {
	s := suggest.Cities(query, limit)
	if s == nil {
		return []string{}
	}
	return s
}

// suggestQuery holds query parameters for the suggestion endpoint.
type suggestQuery struct {
	Query string
	Limit int `validate:"omitempty,min=1,max=10"`
}

func (q *suggestQuery) bind(c *fiber.Ctx) error {
	q.Query = c.Query("query")

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return errors.New("limit must be an integer")
		}
		q.Limit = n
	}

	return validate.Struct(q)
}
