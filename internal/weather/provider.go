package weather

import (
	"context"
	"time"
)

// HistoricalSource abstracts a query-by-coordinate daily weather archive
// (e.g. the Open-Meteo ERA5 archive). Implementations return one observation
// per covered calendar day in [start, end]; partial coverage is allowed and
// an empty slice means the source has no data for the point.
type HistoricalSource interface {
	Name() string
	FetchDaily(ctx context.Context, pt GeoPoint, start, end time.Time) ([]DailyObservation, error)
}

// CurrentSource abstracts a real-time current-conditions provider.
type CurrentSource interface {
	Name() string
	FetchCurrent(ctx context.Context, pt GeoPoint) (CurrentConditions, error)
}

// Cache gates acquisition on a persisted series with a freshness window.
// Lookup reports absent for stale or unreadable entries; Store overwrites any
// prior entry wholesale.
type Cache interface {
	Lookup(key string, days, maxAgeDays int) (DailySeries, bool)
	Store(key string, days int, series DailySeries) error
}

// Locator resolves a city name to its canonical key and coordinates.
// An unknown name is fatal to the acquisition call.
type Locator interface {
	Locate(name string) (key string, pt GeoPoint, err error)
}

// ClimateClassifier assigns the climate profile that parameterizes synthetic
// generation for a location.
type ClimateClassifier interface {
	Classify(key string, pt GeoPoint) ClimateProfile
}
