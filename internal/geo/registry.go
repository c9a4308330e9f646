package geo

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/kelvins/geocoder"

	"github.com/weatherlab/weather-dashboard/internal/weather"
)

// ErrCityNotFound is returned when a name does not resolve to coordinates.
var ErrCityNotFound = errors.New("city not found")

// City is one registry entry: a canonical key, display name and coordinates.
type City struct {
	Key   string           `json:"key"`
	Name  string           `json:"name"`
	State string           `json:"state"`
	Point weather.GeoPoint `json:"point"`
}

// Registry maps canonical city keys to coordinates. It is built once at
// startup and read-only afterwards.
type Registry struct {
	byKey       map[string]City
	geocoderKey string
}

// NewRegistry builds a registry from a city table. Both the declared key and
// the normalized display name index each entry.
func NewRegistry(cities []City) *Registry {
	r := &Registry{byKey: make(map[string]City, len(cities)*2)}
	for _, c := range cities {
		c.Key = Normalize(c.Key)
		r.byKey[c.Key] = c
		if nameKey := Normalize(c.Name); nameKey != c.Key {
			r.byKey[nameKey] = c
		}
	}
	return r
}

// DefaultRegistry returns a registry over the built-in Indian city table.
func DefaultRegistry() *Registry {
	return NewRegistry(IndianCities())
}

// WithGeocoder enables a Google-geocoding fallback for names missing from the
// registry. Resolution still always yields explicit coordinates; nothing is
// silently defaulted.
func (r *Registry) WithGeocoder(apiKey string) *Registry {
	r.geocoderKey = apiKey
	return r
}

// Normalize returns the canonical lookup key for a city name: lowercased with
// spaces and hyphens removed.
func Normalize(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

// Resolve maps a city name to its registry entry.
func (r *Registry) Resolve(name string) (City, error) {
	key := Normalize(name)
	if c, ok := r.byKey[key]; ok {
		return c, nil
	}

	if r.geocoderKey != "" {
		if c, err := r.geocode(name, key); err == nil {
			return c, nil
		} else {
			log.Printf("WARN: geocoding failed for %q: %v", name, err)
		}
	}

	return City{}, fmt.Errorf("%w: %q", ErrCityNotFound, name)
}

// Locate satisfies the weather.Locator contract.
func (r *Registry) Locate(name string) (string, weather.GeoPoint, error) {
	c, err := r.Resolve(name)
	if err != nil {
		return "", weather.GeoPoint{}, err
	}
	return c.Key, c.Point, nil
}

// Names returns the sorted display names of all registered cities.
func (r *Registry) Names() []string {
	seen := make(map[string]struct{}, len(r.byKey))
	names := make([]string, 0, len(r.byKey))
	for _, c := range r.byKey {
		if _, ok := seen[c.Name]; ok {
			continue
		}
		seen[c.Name] = struct{}{}
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) geocode(name, key string) (City, error) {
	geocoder.ApiKey = r.geocoderKey
	loc, err := geocoder.Geocoding(geocoder.Address{City: name, Country: "India"})
	if err != nil {
		return City{}, err
	}
	return City{
		Key:   key,
		Name:  name,
		Point: weather.GeoPoint{Lat: loc.Latitude, Lon: loc.Longitude},
	}, nil
}
