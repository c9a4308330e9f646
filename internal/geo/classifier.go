package geo

import (
	"github.com/weatherlab/weather-dashboard/internal/common"
	"github.com/weatherlab/weather-dashboard/internal/weather"
)

// Classifier assigns climate profiles from configurable membership sets over
// known location keys, with a latitude-band fallback for everything else. The
// zero value classifies purely by latitude.
type Classifier struct {
	HillStations map[string]struct{}
	Coastal      map[string]struct{}
	AridHotDry   map[string]struct{}
	// ExtremeRain marks locations that get the highest monsoon multiplier
	// tier (Cherrapunji-class rainfall).
	ExtremeRain map[string]struct{}
}

// DefaultClassifier returns the classifier with the built-in membership sets.
func DefaultClassifier() Classifier {
	return Classifier{
		HillStations: toSet(
			"shimla", "manali", "kullu", "dalhousie", "dharamshala", "mcleodganj",
			"dehradun", "mussoorie", "nainital", "almora", "ranikhet",
			"ooty", "kodaikanal", "munnar", "darjeeling", "gangtok",
			"shillong", "cherrapunji", "mawsynram", "tawang", "aizawl",
			"mahabaleshwar", "lonavala", "panchgani", "coorg", "wayanad",
			"gulmarg", "pahalgam", "sonamarg", "leh", "kargil",
			"spiti", "keylong", "auli", "kedarnath", "badrinath",
			"sandakphu", "yumthang", "chamba", "mountabu",
		),
		Coastal: toSet(
			"mumbai", "goa", "kochi", "thiruvananthapuram", "kozhikode",
			"mangalore", "udupi", "karwar", "ratnagiri", "alibag",
			"chennai", "visakhapatnam", "puducherry", "pondicherry",
			"mahabalipuram", "portblair", "panaji", "kannur", "alappuzha",
			"kollam", "puri",
		),
		AridHotDry: toSet(
			"jaisalmer", "bikaner", "jodhpur", "ajmer", "udaipur",
			"ahmedabad", "rajkot", "surat", "vadodara",
		),
		ExtremeRain: toSet("cherrapunji", "mawsynram"),
	}
}

// Classify picks the climate profile for a location key and coordinate.
// Membership sets take precedence over the latitude bands; hill stations are
// also matched by key substring so unregistered "-ganj" hill towns classify
// sensibly.
func (c Classifier) Classify(key string, pt weather.GeoPoint) weather.ClimateProfile {
	lat := pt.Lat

	var p weather.ClimateProfile
	switch {
	case c.has(c.HillStations, key) || common.HasAny(key, "hill", "ganj"):
		p.Zone = weather.ZoneHillStation
		p.BasePressure = 950 // elevation
		switch {
		case lat > 32: // high altitude (Leh, Kargil)
			p.BaseTemp, p.TempAmplitude = 10, 12
		case lat > 28: // medium altitude (Shimla, Dehradun)
			p.BaseTemp, p.TempAmplitude = 18, 10
		default: // southern hills (Ooty, Munnar)
			p.BaseTemp, p.TempAmplitude = 20, 6
		}
	case c.has(c.Coastal, key):
		p.Zone = weather.ZoneCoastal
		p.BaseTemp, p.TempAmplitude = 28, 4
		p.BasePressure = 1013
	case c.has(c.AridHotDry, key):
		p.Zone = weather.ZoneArid
		p.BaseTemp, p.TempAmplitude = 32, 14
		p.BasePressure = 1013
	default:
		p.Zone = weather.ZoneLatitudeBand
		p.BasePressure = 1013
		switch {
		case lat > 30: // northern regions
			p.BaseTemp, p.TempAmplitude = 15, 15
		case lat > 25: // northern plains
			p.BaseTemp, p.TempAmplitude = 25, 12
		case lat > 20: // central
			p.BaseTemp, p.TempAmplitude = 28, 8
		case lat > 15: // south central
			p.BaseTemp, p.TempAmplitude = 27, 6
		default: // deep south
			p.BaseTemp, p.TempAmplitude = 28, 5
		}
	}

	switch {
	case c.has(c.ExtremeRain, key):
		p.MonsoonHigh, p.MonsoonLow = 3.0, 0.5
	case c.has(c.Coastal, key) || lat < 20:
		p.MonsoonHigh, p.MonsoonLow = 1.5, 0.3
	default:
		p.MonsoonHigh, p.MonsoonLow = 1.0, 0.2
	}

	return p
}

func (c Classifier) has(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

func toSet(keys ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}
