package store

import (
	"os"
	"testing"
	"time"

	"github.com/weatherlab/weather-dashboard/internal/weather"
)

func touch(path string, ts time.Time) error {
	return os.Chtimes(path, ts, ts)
}

func sampleSeries(n int) weather.DailySeries {
	obs := make([]weather.DailyObservation, n)
	for i := range obs {
		obs[i] = weather.DailyObservation{
			Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Tavg: 30.5, Tmin: 25.1, Tmax: 35.9,
			Prcp: float64(i), Wspd: 12.0, Pres: 1009.3,
		}
	}
	return weather.DailySeries{
		City:         "testville",
		Provenance:   weather.ProvenanceLive,
		Source:       "test",
		Observations: obs,
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := sampleSeries(7)
	if err := cache.Store("testville", 7, in); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	out, ok := cache.Lookup("testville", 7, 1)
	if !ok {
		t.Fatal("expected cache hit immediately after store")
	}
	if out.Provenance != weather.ProvenanceCache {
		t.Fatalf("provenance = %s, want %s", out.Provenance, weather.ProvenanceCache)
	}
	if len(out.Observations) != len(in.Observations) {
		t.Fatalf("got %d observations, want %d", len(out.Observations), len(in.Observations))
	}
	for i, o := range out.Observations {
		want := in.Observations[i]
		if !o.Date.Equal(want.Date) {
			t.Fatalf("observation %d date = %v, want %v", i, o.Date, want.Date)
		}
		if o.Tavg != want.Tavg || o.Tmin != want.Tmin || o.Tmax != want.Tmax ||
			o.Prcp != want.Prcp || o.Wspd != want.Wspd || o.Pres != want.Pres {
			t.Fatalf("observation %d = %+v, want %+v", i, o, want)
		}
	}
}

func TestFileCacheKeyedByWindowLength(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := cache.Store("testville", 7, sampleSeries(7)); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if _, ok := cache.Lookup("testville", 30, 1); ok {
		t.Fatal("a 7-day entry must not satisfy a 30-day lookup")
	}
}

func TestFileCacheStaleEntryIsAbsent(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := cache.Store("testville", 7, sampleSeries(7)); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	// Age the entry past the freshness window.
	old := time.Now().Add(-48 * time.Hour)
	if err := touch(cache.path("testville", 7), old); err != nil {
		t.Fatalf("failed to age cache file: %v", err)
	}

	if _, ok := cache.Lookup("testville", 7, 1); ok {
		t.Fatal("stale entry should report absent")
	}
}

func TestFileCacheOverwrites(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := cache.Store("testville", 7, sampleSeries(7)); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	replacement := sampleSeries(3)
	if err := cache.Store("testville", 7, replacement); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	out, ok := cache.Lookup("testville", 7, 1)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(out.Observations) != 3 {
		t.Fatalf("entry should be replaced wholesale, got %d observations", len(out.Observations))
	}
}

func TestFileCacheMissingEntry(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cache.Lookup("nowhere", 7, 1); ok {
		t.Fatal("lookup of a never-stored key should miss")
	}
}
