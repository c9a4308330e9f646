package weather

import (
	"testing"
	"time"
)

var coastalProfile = ClimateProfile{
	Zone:          ZoneCoastal,
	BaseTemp:      28,
	TempAmplitude: 4,
	MonsoonHigh:   1.5,
	MonsoonLow:    0.3,
	BasePressure:  1013,
}

func TestGenerateSyntheticLengthAndCompleteness(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for _, days := range []int{1, 7, 30, 365} {
		obs := GenerateSynthetic(coastalProfile, start, days, 42)
		if len(obs) != days {
			t.Fatalf("expected %d observations, got %d", days, len(obs))
		}
		for i, o := range obs {
			want := start.AddDate(0, 0, i)
			if !o.Date.Equal(want) {
				t.Fatalf("observation %d has date %v, want %v", i, o.Date, want)
			}
			for name, v := range map[string]float64{
				"tavg": o.Tavg, "tmin": o.Tmin, "tmax": o.Tmax,
				"prcp": o.Prcp, "wspd": o.Wspd, "pres": o.Pres,
			} {
				if IsMissing(v) {
					t.Fatalf("observation %d has missing %s", i, name)
				}
			}
		}
	}
}

func TestGenerateSyntheticDeterministic(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	a := GenerateSynthetic(coastalProfile, start, 60, 42)
	b := GenerateSynthetic(coastalProfile, start, 60, 42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("series diverge at observation %d: %+v vs %+v", i, a[i], b[i])
		}
	}

	c := GenerateSynthetic(coastalProfile, start, 60, 7)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical series")
	}
}

func TestSyntheticPhysicalInvariants(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	obs := GenerateSynthetic(coastalProfile, start, 366, 42)

	for i, o := range obs {
		if o.Prcp < 0 || o.Prcp > 150 {
			t.Fatalf("observation %d precipitation %.1f out of [0, 150]", i, o.Prcp)
		}
		if o.Tmin >= o.Tavg || o.Tavg >= o.Tmax {
			t.Fatalf("observation %d violates tmin < tavg < tmax: %+v", i, o)
		}
		if o.Wspd < 5 || o.Wspd > 25 {
			t.Fatalf("observation %d wind %.1f out of [5, 25]", i, o.Wspd)
		}
	}
}

func TestSyntheticMonsoonContrast(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	profile := ClimateProfile{
		Zone:          ZoneLatitudeBand,
		BaseTemp:      25,
		TempAmplitude: 12,
		MonsoonHigh:   1.0,
		MonsoonLow:    0.2,
		BasePressure:  1013,
	}
	obs := GenerateSynthetic(profile, start, 366, 42)

	var monsoonSum, drySum float64
	var monsoonN, dryN int
	for _, o := range obs {
		if m := o.Date.Month(); m >= time.June && m <= time.September {
			monsoonSum += o.Prcp
			monsoonN++
		} else {
			drySum += o.Prcp
			dryN++
		}
	}

	monsoonMean := monsoonSum / float64(monsoonN)
	dryMean := drySum / float64(dryN)
	if monsoonMean <= dryMean {
		t.Fatalf("monsoon mean %.2f should exceed dry-season mean %.2f", monsoonMean, dryMean)
	}
}
