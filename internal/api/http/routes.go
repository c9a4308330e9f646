package httpapi

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/weatherlab/weather-dashboard/internal/features"
	"github.com/weatherlab/weather-dashboard/internal/geo"
	"github.com/weatherlab/weather-dashboard/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, registry *geo.Registry, defaultDays int) {
	v1 := app.Group("/api/v1")

	v1.Get("/cities", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"cities": registry.Names()})
	})

	v1.Get("/weather/history", func(c *fiber.Ctx) error {
		req, err := parseHistoryQuery(c, defaultDays)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		series, err := service.History(c.UserContext(), req.City, req.Days)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(series)
	})

	v1.Get("/weather/history.csv", func(c *fiber.Ctx) error {
		req, err := parseHistoryQuery(c, defaultDays)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		series, err := service.History(c.UserContext(), req.City, req.Days)
		if err != nil {
			return mapServiceError(err)
		}

		body, err := seriesCSV(series)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render csv")
		}

		filename := fmt.Sprintf("%s_%ddays.csv", geo.Normalize(req.City), req.Days)
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
		c.Set("X-Data-Provenance", string(series.Provenance))
		c.Set("X-Data-Source", series.Source)
		return c.Send(body)
	})

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		city := c.Query("city")
		if city == "" {
			return fiber.NewError(fiber.StatusBadRequest, "city query parameter is required")
		}

		conditions, err := service.Current(c.UserContext(), city)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(conditions)
	})

	v1.Get("/weather/features", func(c *fiber.Ctx) error {
		req, err := parseFeaturesQuery(c, defaultDays)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		series, err := service.History(c.UserContext(), req.City, req.Days)
		if err != nil {
			return mapServiceError(err)
		}

		table, err := features.Engineer(series, req.Target)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(fiber.Map{
			"city":       series.City,
			"provenance": series.Provenance,
			"source":     series.Source,
			"target":     req.Target,
			"table":      table,
		})
	})
}

// historyQuery holds query parameters for the history endpoints.
type historyQuery struct {
	City string `validate:"required"`
	Days int    `validate:"required,min=1,max=365"`
}

func parseHistoryQuery(c *fiber.Ctx, defaultDays int) (historyQuery, error) {
	q := historyQuery{
		City: c.Query("city"),
		Days: defaultDays,
	}
	if daysStr := c.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return q, fmt.Errorf("invalid days parameter")
		}
		q.Days = days
	}
	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

// featuresQuery holds query parameters for the feature-engineering endpoint.
type featuresQuery struct {
	historyQuery
	Target string `validate:"required,oneof=tavg tmin tmax prcp wspd pres"`
}

func parseFeaturesQuery(c *fiber.Ctx, defaultDays int) (featuresQuery, error) {
	hq, err := parseHistoryQuery(c, defaultDays)
	if err != nil {
		return featuresQuery{}, err
	}
	q := featuresQuery{
		historyQuery: hq,
		Target:       c.Query("target", "tavg"),
	}
	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

func mapServiceError(err error) error {
	if errors.Is(err, geo.ErrCityNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "failed to acquire weather data")
}

// seriesCSV renders a cleaned series in the same column layout as the file
// cache; provenance travels in response headers.
func seriesCSV(series weather.DailySeries) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"date", "tavg", "tmin", "tmax", "prcp", "wspd", "pres"}); err != nil {
		return nil, err
	}
	for _, o := range series.Observations {
		row := []string{
			o.Date.Format("2006-01-02"),
			strconv.FormatFloat(o.Tavg, 'f', 1, 64),
			strconv.FormatFloat(o.Tmin, 'f', 1, 64),
			strconv.FormatFloat(o.Tmax, 'f', 1, 64),
			strconv.FormatFloat(o.Prcp, 'f', 1, 64),
			strconv.FormatFloat(o.Wspd, 'f', 1, 64),
			strconv.FormatFloat(o.Pres, 'f', 1, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
