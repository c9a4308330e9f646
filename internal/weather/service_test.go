package weather

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"
)

// fakeLocator resolves a fixed set of city names.
type fakeLocator map[string]GeoPoint

func (f fakeLocator) Locate(name string) (string, GeoPoint, error) {
	key := strings.ToLower(name)
	pt, ok := f[key]
	if !ok {
		return "", GeoPoint{}, fmt.Errorf("%w: %q", errUnknownCity, name)
	}
	return key, pt, nil
}

var errUnknownCity = errors.New("unknown city")

// fakeSource records queried points and answers via fn.
type fakeSource struct {
	calls []GeoPoint
	fn    func(pt GeoPoint) ([]DailyObservation, error)
}

func (f *fakeSource) Name() string { return "fake-archive" }

func (f *fakeSource) FetchDaily(_ context.Context, pt GeoPoint, start, end time.Time) ([]DailyObservation, error) {
	f.calls = append(f.calls, pt)
	return f.fn(pt)
}

type fixedClassifier struct {
	profile ClimateProfile
}

func (f fixedClassifier) Classify(string, GeoPoint) ClimateProfile { return f.profile }

// memCache is a minimal in-memory Cache for service tests.
type memCache struct {
	entries   map[string]DailySeries
	failStore bool
}

func newMemCache() *memCache { return &memCache{entries: make(map[string]DailySeries)} }

func (m *memCache) Lookup(key string, days, maxAgeDays int) (DailySeries, bool) {
	s, ok := m.entries[fmt.Sprintf("%s_%d", key, days)]
	return s, ok
}

func (m *memCache) Store(key string, days int, series DailySeries) error {
	if m.failStore {
		return errors.New("disk full")
	}
	m.entries[fmt.Sprintf("%s_%d", key, days)] = series
	return nil
}

func sampleObservations(n int) []DailyObservation {
	obs := make([]DailyObservation, n)
	for i := range obs {
		obs[i] = DailyObservation{
			Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Tavg: 30, Tmin: 25, Tmax: 35, Prcp: 1, Wspd: 12, Pres: 1009,
		}
	}
	return obs
}

var testPoints = fakeLocator{
	"testville": {Lat: 10.0, Lon: 60.0},
	"delhi":     {Lat: 28.7041, Lon: 77.1025},
}

func newTestService(src *fakeSource, cache Cache) *Service {
	return NewService(ServiceOptions{
		Cache:           cache,
		Source:          src,
		Locator:         testPoints,
		Classifier:      fixedClassifier{profile: coastalProfile},
		FallbackCity:    "Delhi",
		CacheMaxAgeDays: 1,
		SyntheticSeed:   42,
	})
}

func TestHistoryUnknownCityIsFatal(t *testing.T) {
	src := &fakeSource{fn: func(GeoPoint) ([]DailyObservation, error) { return sampleObservations(5), nil }}
	svc := newTestService(src, nil)

	_, err := svc.History(context.Background(), "Atlantis", 5)
	if !errors.Is(err, errUnknownCity) {
		t.Fatalf("expected unknown-city error, got %v", err)
	}
	if len(src.calls) != 0 {
		t.Fatal("no tier should run before the location resolves")
	}
}

func TestHistoryExactPoint(t *testing.T) {
	src := &fakeSource{fn: func(GeoPoint) ([]DailyObservation, error) { return sampleObservations(5), nil }}
	svc := newTestService(src, nil)

	series, err := svc.History(context.Background(), "Testville", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Provenance != ProvenanceLive {
		t.Fatalf("provenance = %s, want %s", series.Provenance, ProvenanceLive)
	}
	if len(src.calls) != 1 {
		t.Fatalf("expected a single query, got %d", len(src.calls))
	}
}

func TestHistoryNearbyOffsetOrder(t *testing.T) {
	// Empty at the exact point, data at the second offset.
	target := GeoPoint{Lat: 10.5, Lon: 59.5}
	src := &fakeSource{fn: func(pt GeoPoint) ([]DailyObservation, error) {
		if pt == target {
			return sampleObservations(5), nil
		}
		return nil, nil
	}}
	svc := newTestService(src, nil)

	series, err := svc.History(context.Background(), "Testville", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Provenance != ProvenanceLiveNearby {
		t.Fatalf("provenance = %s, want %s", series.Provenance, ProvenanceLiveNearby)
	}
	// Exact point, offset 1, offset 2 - deterministic order.
	if len(src.calls) != 3 {
		t.Fatalf("expected 3 queries, got %d", len(src.calls))
	}
	if src.calls[2] != target {
		t.Fatalf("third query hit %+v, want %+v", src.calls[2], target)
	}
}

func TestHistoryFallbackLocation(t *testing.T) {
	delhi := testPoints["delhi"]
	src := &fakeSource{fn: func(pt GeoPoint) ([]DailyObservation, error) {
		if pt == delhi {
			return sampleObservations(5), nil
		}
		return nil, nil
	}}
	svc := newTestService(src, nil)

	series, err := svc.History(context.Background(), "Testville", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Provenance != ProvenanceLiveFallback {
		t.Fatalf("provenance = %s, want %s", series.Provenance, ProvenanceLiveFallback)
	}
	// Exact point + 4 offsets + fallback location.
	if len(src.calls) != 6 {
		t.Fatalf("expected 6 queries, got %d", len(src.calls))
	}
}

func TestHistorySyntheticWhenAllTiersFail(t *testing.T) {
	src := &fakeSource{fn: func(GeoPoint) ([]DailyObservation, error) {
		return nil, errors.New("connection refused")
	}}
	svc := newTestService(src, nil)

	series, err := svc.History(context.Background(), "Testville", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Provenance != ProvenanceSynthetic {
		t.Fatalf("provenance = %s, want %s", series.Provenance, ProvenanceSynthetic)
	}
	if series.Len() != 30 {
		t.Fatalf("synthetic series length = %d, want 30", series.Len())
	}

	var sum float64
	for _, o := range series.Observations {
		sum += o.Tavg
	}
	mean := sum / float64(series.Len())
	lo := coastalProfile.BaseTemp - coastalProfile.TempAmplitude - 2
	hi := coastalProfile.BaseTemp + coastalProfile.TempAmplitude + 2
	if mean < lo || mean > hi {
		t.Fatalf("mean temperature %.1f outside coastal range [%.1f, %.1f]", mean, lo, hi)
	}
}

func TestHistoryCachesResult(t *testing.T) {
	src := &fakeSource{fn: func(GeoPoint) ([]DailyObservation, error) { return sampleObservations(5), nil }}
	cache := newMemCache()
	svc := newTestService(src, cache)

	if _, err := svc.History(context.Background(), "Testville", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	series, err := svc.History(context.Background(), "Testville", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Provenance != ProvenanceCache {
		t.Fatalf("second acquisition provenance = %s, want %s", series.Provenance, ProvenanceCache)
	}
	if len(src.calls) != 1 {
		t.Fatalf("cache hit should not query the source again, got %d calls", len(src.calls))
	}
}

func TestHistoryCacheWriteFailureIsNonFatal(t *testing.T) {
	src := &fakeSource{fn: func(GeoPoint) ([]DailyObservation, error) { return sampleObservations(5), nil }}
	cache := newMemCache()
	cache.failStore = true
	svc := newTestService(src, cache)

	series, err := svc.History(context.Background(), "Testville", 5)
	if err != nil {
		t.Fatalf("cache write failure must not fail acquisition: %v", err)
	}
	if series.Provenance != ProvenanceLive {
		t.Fatalf("provenance = %s, want %s", series.Provenance, ProvenanceLive)
	}
}

func TestHistoryCleansLiveResult(t *testing.T) {
	obs := sampleObservations(3)
	obs[1].Prcp = math.NaN()
	obs[1].Tavg = math.NaN()
	src := &fakeSource{fn: func(GeoPoint) ([]DailyObservation, error) { return obs, nil }}
	svc := newTestService(src, nil)

	series, err := svc.History(context.Background(), "Testville", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Observations[1].Prcp != 0 {
		t.Fatalf("missing precipitation should be zero after cleanup, got %v", series.Observations[1].Prcp)
	}
	if IsMissing(series.Observations[1].Tavg) {
		t.Fatal("missing temperature should be filled after cleanup")
	}
}

func TestHistoryRejectsNonPositiveDays(t *testing.T) {
	svc := newTestService(&fakeSource{fn: func(GeoPoint) ([]DailyObservation, error) { return nil, nil }}, nil)
	if _, err := svc.History(context.Background(), "Testville", 0); err == nil {
		t.Fatal("expected error for days = 0")
	}
}

func TestCurrentFallsBackToMock(t *testing.T) {
	svc := newTestService(&fakeSource{fn: func(GeoPoint) ([]DailyObservation, error) { return nil, nil }}, nil)

	cc, err := svc.Current(context.Background(), "Testville")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cc.City != "Testville" {
		t.Fatalf("city = %q, want Testville", cc.City)
	}
	if cc.Temperature < 20 || cc.Temperature > 30 {
		t.Fatalf("mock temperature %.1f outside plausible band", cc.Temperature)
	}

	// Mock conditions are stable per (city, seed).
	again, _ := svc.Current(context.Background(), "Testville")
	if again.Temperature != cc.Temperature || again.Description != cc.Description {
		t.Fatal("mock conditions should be deterministic per city and seed")
	}
}
