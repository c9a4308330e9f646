package store

import (
	"encoding/csv"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/weatherlab/weather-dashboard/internal/weather"
)

const dateLayout = "2006-01-02"

var csvHeader = []string{"date", "tavg", "tmin", "tmax", "prcp", "wspd", "pres"}

// FileCache persists one daily series per (location key, window length) as a
// flat CSV file. Entries are valid for a freshness window measured from the
// file's last-modified time; stale entries count as misses regardless of
// content. Files are read and written without locking: this is a single-user
// local tool and last-writer-wins is acceptable.
type FileCache struct {
	dir string
}

// NewFileCache creates the cache directory if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FileCache{dir: dir}, nil
}

func (c *FileCache) path(key string, days int) string {
	return filepath.Join(c.dir, fmt.Sprintf("%s_%ddays.csv", key, days))
}

// Lookup returns the cached series for (key, days) if its age in whole days
// is strictly less than maxAgeDays. Missing, stale or unreadable entries all
// report absent.
func (c *FileCache) Lookup(key string, days, maxAgeDays int) (weather.DailySeries, bool) {
	path := c.path(key, days)

	info, err := os.Stat(path)
	if err != nil {
		return weather.DailySeries{}, false
	}
	ageDays := int(time.Since(info.ModTime()).Hours() / 24)
	if ageDays >= maxAgeDays {
		return weather.DailySeries{}, false
	}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("WARN: cache open failed for %s: %v", path, err)
		return weather.DailySeries{}, false
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		log.Printf("WARN: cache parse failed for %s: %v", path, err)
		return weather.DailySeries{}, false
	}
	if len(rows) < 2 {
		return weather.DailySeries{}, false
	}

	obs := make([]weather.DailyObservation, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(csvHeader) {
			continue
		}
		date, err := time.Parse(dateLayout, row[0])
		if err != nil {
			continue
		}
		obs = append(obs, weather.DailyObservation{
			Date: date,
			Tavg: parseMetric(row[1]),
			Tmin: parseMetric(row[2]),
			Tmax: parseMetric(row[3]),
			Prcp: parseMetric(row[4]),
			Wspd: parseMetric(row[5]),
			Pres: parseMetric(row[6]),
		})
	}
	if len(obs) == 0 {
		return weather.DailySeries{}, false
	}

	return weather.DailySeries{
		City:         key,
		Provenance:   weather.ProvenanceCache,
		Source:       fmt.Sprintf("file cache: %s", key),
		Observations: obs,
	}, true
}

// Store persists the full series for (key, days), overwriting any prior
// entry unconditionally.
func (c *FileCache) Store(key string, days int, series weather.DailySeries) error {
	f, err := os.Create(c.path(key, days))
	if err != nil {
		return fmt.Errorf("create cache file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, o := range series.Observations {
		row := []string{
			o.Date.Format(dateLayout),
			formatMetric(o.Tavg),
			formatMetric(o.Tmin),
			formatMetric(o.Tmax),
			formatMetric(o.Prcp),
			formatMetric(o.Wspd),
			formatMetric(o.Pres),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// parseMetric maps empty or malformed cells to the missing marker.
func parseMetric(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func formatMetric(v float64) string {
	if weather.IsMissing(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
