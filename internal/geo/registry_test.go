package geo

import (
	"errors"
	"sort"
	"testing"
)

// TestNormalize pins the canonical key behavior: lowercase with spaces and
// hyphens removed.
func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Mumbai", "mumbai"},
		{"Port Blair", "portblair"},
		{"port-blair", "portblair"},
		{"Yumthang Valley", "yumthangvalley"},
		{"Mount Abu", "mountabu"},
		{"  ", ""},
		{"MOUNT-ABU", "mountabu"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveKnownCity(t *testing.T) {
	r := DefaultRegistry()

	c, err := r.Resolve("Mumbai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Point.Lat != 19.0760 || c.Point.Lon != 72.8777 {
		t.Fatalf("unexpected coordinates for Mumbai: %+v", c.Point)
	}

	// Spaced, hyphenated and cased variants resolve to the same entry.
	for _, name := range []string{"port blair", "Port-Blair", "PORTBLAIR"} {
		c, err := r.Resolve(name)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", name, err)
		}
		if c.Name != "Port Blair" {
			t.Fatalf("Resolve(%q) = %q, want Port Blair", name, c.Name)
		}
	}
}

func TestResolveUnknownCity(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.Resolve("Atlantis")
	if !errors.Is(err, ErrCityNotFound) {
		t.Fatalf("expected ErrCityNotFound, got %v", err)
	}
}

func TestNamesSorted(t *testing.T) {
	names := DefaultRegistry().Names()
	if len(names) < 100 {
		t.Fatalf("expected at least 100 cities, got %d", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Fatal("city names are not sorted")
	}
}
