package weather

import (
	"math"
	"time"
)

// Provenance records which acquisition tier produced a series, so downstream
// consumers can disclose data origin to the end user.
type Provenance string

const (
	ProvenanceCache        Provenance = "cache"
	ProvenanceLive         Provenance = "live"
	ProvenanceLiveNearby   Provenance = "live-nearby"
	ProvenanceLiveFallback Provenance = "live-fallback-location"
	ProvenanceSynthetic    Provenance = "synthetic"
)

// GeoPoint is a geographic coordinate in signed degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DailyObservation holds per-day aggregate metrics for a single calendar day.
// A metric absent from the raw source data is represented as NaN until the
// fill policy runs; a cleaned series contains only finite values.
type DailyObservation struct {
	Date time.Time `json:"date"`
	Tavg float64   `json:"tavg"` // average temperature, °C
	Tmin float64   `json:"tmin"` // minimum temperature, °C
	Tmax float64   `json:"tmax"` // maximum temperature, °C
	Prcp float64   `json:"prcp"` // precipitation, mm
	Wspd float64   `json:"wspd"` // wind speed, km/h
	Pres float64   `json:"pres"` // atmospheric pressure, hPa
}

// IsMissing reports whether a raw metric value is absent.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// DailySeries is an ordered-by-date sequence of daily observations for one
// city, tagged with the tier that produced it and a human-readable source
// description. A series is constructed once per acquisition and not mutated
// afterwards.
type DailySeries struct {
	City         string             `json:"city"`
	Provenance   Provenance         `json:"provenance"`
	Source       string             `json:"source"`
	Observations []DailyObservation `json:"observations"`
}

// Len returns the number of observations in the series.
func (s DailySeries) Len() int {
	return len(s.Observations)
}
