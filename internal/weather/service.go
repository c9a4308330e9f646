package weather

import (
	"context"
	"fmt"
	"log"
	"time"
)

// nearbyOffsets is the fixed nearby-station search pattern, tried strictly in
// order so provenance stays deterministic.
var nearbyOffsets = []GeoPoint{
	{Lat: 0.5, Lon: 0.5},
	{Lat: 0.5, Lon: -0.5},
	{Lat: 1.0, Lon: 1.0},
	{Lat: 1.0, Lon: -1.0},
}

// ServiceOptions bundles the collaborators and knobs for a Service.
type ServiceOptions struct {
	Cache      Cache
	Source     HistoricalSource
	Current    CurrentSource
	Locator    Locator
	Classifier ClimateClassifier

	// FallbackCity is the fixed reference location tried after the nearby
	// search is exhausted.
	FallbackCity string

	// CacheMaxAgeDays is the freshness window for cached series.
	CacheMaxAgeDays int

	// SyntheticSeed makes synthetic series reproducible.
	SyntheticSeed int64
}

// Service orchestrates the tiered historical acquisition: file cache, live
// source at the exact point, nearby offsets, a fixed reference city, and
// finally synthetic generation. It also serves real-time current conditions.
type Service struct {
	opts ServiceOptions
}

// NewService creates a new Service.
func NewService(opts ServiceOptions) *Service {
	if opts.FallbackCity == "" {
		opts.FallbackCity = "Delhi"
	}
	if opts.CacheMaxAgeDays <= 0 {
		opts.CacheMaxAgeDays = 1
	}
	return &Service{opts: opts}
}

// History returns a cleaned daily series of up to days observations ending
// today for the named city. The returned series always carries a provenance
// tag and source description. Unknown city names are fatal; every other
// failure falls through to the next tier, ending at the synthetic generator
// which cannot fail.
func (s *Service) History(ctx context.Context, city string, days int) (DailySeries, error) {
	if days <= 0 {
		return DailySeries{}, fmt.Errorf("days must be greater than zero")
	}

	key, pt, err := s.opts.Locator.Locate(city)
	if err != nil {
		return DailySeries{}, err
	}

	if s.opts.Cache != nil {
		if series, ok := s.opts.Cache.Lookup(key, days, s.opts.CacheMaxAgeDays); ok {
			series.City = city
			series.Provenance = ProvenanceCache
			series.Source = fmt.Sprintf("file cache: %s", city)
			return series, nil
		}
	}

	end := time.Now().UTC()
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -(days - 1))

	series, ok := s.acquireLive(ctx, city, pt, start, end)
	if !ok {
		log.Printf("WARN: no live data for %s; generating synthetic series", city)
		profile := s.opts.Classifier.Classify(key, pt)
		series = DailySeries{
			City:         city,
			Provenance:   ProvenanceSynthetic,
			Source:       fmt.Sprintf("synthetic estimate for %s (%s profile)", city, profile.Zone),
			Observations: GenerateSynthetic(profile, start, days, s.opts.SyntheticSeed),
		}
	}

	if s.opts.Cache != nil {
		if err := s.opts.Cache.Store(key, days, series); err != nil {
			// Acquisition already succeeded; a failed cache write is not fatal.
			log.Printf("WARN: failed to cache series for %s: %v", city, err)
		}
	}

	return series, nil
}

// acquireLive runs the live tiers in order and short-circuits on the first
// non-empty result. Transport failures and empty results are equivalent: both
// advance to the next tier.
func (s *Service) acquireLive(ctx context.Context, city string, pt GeoPoint, start, end time.Time) (DailySeries, bool) {
	name := s.opts.Source.Name()

	obs, err := s.opts.Source.FetchDaily(ctx, pt, start, end)
	if err != nil {
		log.Printf("WARN: %s query failed at (%.2f, %.2f): %v", name, pt.Lat, pt.Lon, err)
	}
	if len(obs) > 0 {
		source := fmt.Sprintf("%s: %s (%.2f, %.2f)", name, city, pt.Lat, pt.Lon)
		return s.cleanLive(city, ProvenanceLive, source, obs), true
	}

	for _, off := range nearbyOffsets {
		nearby := GeoPoint{Lat: pt.Lat + off.Lat, Lon: pt.Lon + off.Lon}
		obs, err = s.opts.Source.FetchDaily(ctx, nearby, start, end)
		if err != nil {
			log.Printf("WARN: %s query failed at (%.2f, %.2f): %v", name, nearby.Lat, nearby.Lon, err)
			continue
		}
		if len(obs) > 0 {
			log.Printf("WARN: no data for %s at exact point; using nearby station (%.2f, %.2f)", city, nearby.Lat, nearby.Lon)
			source := fmt.Sprintf("%s: nearby station (%.2f, %.2f)", name, nearby.Lat, nearby.Lon)
			return s.cleanLive(city, ProvenanceLiveNearby, source, obs), true
		}
	}

	_, fbPt, err := s.opts.Locator.Locate(s.opts.FallbackCity)
	if err != nil {
		log.Printf("ERROR: fallback city %q not resolvable: %v", s.opts.FallbackCity, err)
		return DailySeries{}, false
	}
	obs, err = s.opts.Source.FetchDaily(ctx, fbPt, start, end)
	if err != nil {
		log.Printf("WARN: %s query failed at fallback %s: %v", name, s.opts.FallbackCity, err)
	}
	if len(obs) > 0 {
		log.Printf("WARN: no data near %s; using %s as fallback", city, s.opts.FallbackCity)
		source := fmt.Sprintf("%s: %s fallback (%.2f, %.2f)", name, s.opts.FallbackCity, fbPt.Lat, fbPt.Lon)
		return s.cleanLive(city, ProvenanceLiveFallback, source, obs), true
	}

	return DailySeries{}, false
}

func (s *Service) cleanLive(city string, prov Provenance, source string, obs []DailyObservation) DailySeries {
	return DailySeries{
		City:         city,
		Provenance:   prov,
		Source:       source,
		Observations: FillMissing(obs),
	}
}

// Current returns real-time conditions for the named city, falling back to
// estimated values when no live provider is configured or the fetch fails.
func (s *Service) Current(ctx context.Context, city string) (CurrentConditions, error) {
	_, pt, err := s.opts.Locator.Locate(city)
	if err != nil {
		return CurrentConditions{}, err
	}

	if s.opts.Current == nil {
		return MockCurrent(city, s.opts.SyntheticSeed), nil
	}

	cc, err := s.opts.Current.FetchCurrent(ctx, pt)
	if err != nil {
		log.Printf("WARN: could not fetch current conditions for %s: %v; using estimated values", city, err)
		return MockCurrent(city, s.opts.SyntheticSeed), nil
	}
	cc.City = city
	return cc, nil
}
