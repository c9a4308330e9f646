package geo

import (
	"testing"

	"github.com/weatherlab/weather-dashboard/internal/weather"
)

func classify(t *testing.T, name string) weather.ClimateProfile {
	t.Helper()
	r := DefaultRegistry()
	c, err := r.Resolve(name)
	if err != nil {
		t.Fatalf("Resolve(%q): %v", name, err)
	}
	return DefaultClassifier().Classify(c.Key, c.Point)
}

func TestClassifyZones(t *testing.T) {
	cases := []struct {
		city string
		zone weather.Zone
	}{
		{"Shimla", weather.ZoneHillStation},
		{"Leh", weather.ZoneHillStation},
		{"Mumbai", weather.ZoneCoastal},
		{"Chennai", weather.ZoneCoastal},
		{"Jodhpur", weather.ZoneArid},
		{"Delhi", weather.ZoneLatitudeBand},
		{"Nagpur", weather.ZoneLatitudeBand},
	}
	for _, tc := range cases {
		if p := classify(t, tc.city); p.Zone != tc.zone {
			t.Errorf("%s: zone = %s, want %s", tc.city, p.Zone, tc.zone)
		}
	}
}

func TestHillStationAltitudeBands(t *testing.T) {
	// High altitude (lat > 32) is the coldest band.
	leh := classify(t, "Leh")
	if leh.BaseTemp != 10 || leh.TempAmplitude != 12 {
		t.Fatalf("Leh profile = (%v, %v), want (10, 12)", leh.BaseTemp, leh.TempAmplitude)
	}
	// Southern hills stay mild year-round.
	ooty := classify(t, "Ooty")
	if ooty.BaseTemp != 20 || ooty.TempAmplitude != 6 {
		t.Fatalf("Ooty profile = (%v, %v), want (20, 6)", ooty.BaseTemp, ooty.TempAmplitude)
	}
	// Elevation lowers base pressure.
	if leh.BasePressure != 950 {
		t.Fatalf("Leh base pressure = %v, want 950", leh.BasePressure)
	}
	if classify(t, "Delhi").BasePressure != 1013 {
		t.Fatal("plains city should sit at sea-level pressure")
	}
}

func TestMonsoonTiers(t *testing.T) {
	extreme := classify(t, "Cherrapunji")
	coastal := classify(t, "Mumbai")
	plains := classify(t, "Delhi")

	if extreme.MonsoonHigh != 3.0 {
		t.Fatalf("extreme-rain multiplier = %v, want 3.0", extreme.MonsoonHigh)
	}
	if coastal.MonsoonHigh != 1.5 {
		t.Fatalf("coastal multiplier = %v, want 1.5", coastal.MonsoonHigh)
	}
	if plains.MonsoonHigh != 1.0 {
		t.Fatalf("default multiplier = %v, want 1.0", plains.MonsoonHigh)
	}
	for _, p := range []weather.ClimateProfile{extreme, coastal, plains} {
		if p.MonsoonHigh <= p.MonsoonLow {
			t.Fatalf("monsoon multiplier must exceed dry-season multiplier: %+v", p)
		}
	}
}

// TestClassifySubstringHeuristic covers hill towns matched by key substring
// rather than set membership.
func TestClassifySubstringHeuristic(t *testing.T) {
	p := DefaultClassifier().Classify("mcleodganj", weather.GeoPoint{Lat: 32.24, Lon: 76.32})
	if p.Zone != weather.ZoneHillStation {
		t.Fatalf("ganj suffix should classify as hill station, got %s", p.Zone)
	}
}

// The zero-value classifier falls back to latitude bands only.
func TestZeroClassifier(t *testing.T) {
	var c Classifier
	p := c.Classify("mumbai", weather.GeoPoint{Lat: 19.0760, Lon: 72.8777})
	if p.Zone != weather.ZoneLatitudeBand {
		t.Fatalf("zero classifier should use latitude bands, got %s", p.Zone)
	}
	// lat < 20 still gets the wetter monsoon tier.
	if p.MonsoonHigh != 1.5 {
		t.Fatalf("southern latitude multiplier = %v, want 1.5", p.MonsoonHigh)
	}
}
