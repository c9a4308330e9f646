package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/weatherlab/weather-dashboard/internal/api/http"
	"github.com/weatherlab/weather-dashboard/internal/config"
	"github.com/weatherlab/weather-dashboard/internal/geo"
	"github.com/weatherlab/weather-dashboard/internal/store"
	"github.com/weatherlab/weather-dashboard/internal/weather"
	"github.com/weatherlab/weather-dashboard/internal/weather/providers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	cache, err := store.NewFileCache(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to init file cache: %v", err)
	}

	registry := geo.DefaultRegistry()
	if cfg.GeocoderAPIKey != "" {
		registry = registry.WithGeocoder(cfg.GeocoderAPIKey)
	}

	// Current conditions need an API key; without one the service serves
	// estimated values so the dashboard still renders.
	var current weather.CurrentSource
	if cfg.OpenWeatherAPIKey != "" {
		current = providers.NewOpenWeatherCurrent(httpClient, cfg.OpenWeatherAPIKey)
	} else {
		log.Printf("INFO: OPENWEATHER_API_KEY not set; current conditions will be estimated")
	}

	service := weather.NewService(weather.ServiceOptions{
		Cache:           cache,
		Source:          providers.NewOpenMeteoArchive(httpClient),
		Current:         current,
		Locator:         registry,
		Classifier:      geo.DefaultClassifier(),
		FallbackCity:    cfg.FallbackCity,
		CacheMaxAgeDays: cfg.CacheMaxAgeDays,
		SyntheticSeed:   cfg.SyntheticSeed,
	})

	app := fiber.New(fiber.Config{
		AppName:               "weather-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-dashboard",
		})
	})

	httpapi.RegisterRoutes(app, service, registry, cfg.DefaultDays)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
