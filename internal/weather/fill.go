package weather

// Physical defaults used when a metric is absent for the whole window.
const (
	defaultTempC    = 25.0   // neutral climate default
	defaultWindKmh  = 10.0   // light breeze
	defaultPressure = 1013.0 // standard sea-level pressure, hPa
)

// FillMissing applies the missing-value policy to a raw series and returns
// the cleaned observations. Missing precipitation becomes zero. Other
// metrics are linearly interpolated between the nearest valid neighbors and
// carried outward at the edges; a metric with no valid value in the whole
// window falls back to a fixed physical default.
func FillMissing(obs []DailyObservation) []DailyObservation {
	if len(obs) == 0 {
		return obs
	}

	out := make([]DailyObservation, len(obs))
	copy(out, obs)

	for i := range out {
		if IsMissing(out[i].Prcp) {
			out[i].Prcp = 0
		}
	}

	fillColumn(out, func(o *DailyObservation) *float64 { return &o.Tavg }, defaultTempC)
	fillColumn(out, func(o *DailyObservation) *float64 { return &o.Tmin }, defaultTempC)
	fillColumn(out, func(o *DailyObservation) *float64 { return &o.Tmax }, defaultTempC)
	fillColumn(out, func(o *DailyObservation) *float64 { return &o.Wspd }, defaultWindKmh)
	fillColumn(out, func(o *DailyObservation) *float64 { return &o.Pres }, defaultPressure)

	return out
}

// fillColumn interpolates and edge-fills one metric across the series.
func fillColumn(obs []DailyObservation, field func(*DailyObservation) *float64, fallback float64) {
	var known []int
	for i := range obs {
		if !IsMissing(*field(&obs[i])) {
			known = append(known, i)
		}
	}

	if len(known) == 0 {
		for i := range obs {
			*field(&obs[i]) = fallback
		}
		return
	}

	first, last := known[0], known[len(known)-1]
	for i := 0; i < first; i++ {
		*field(&obs[i]) = *field(&obs[first])
	}
	for i := last + 1; i < len(obs); i++ {
		*field(&obs[i]) = *field(&obs[last])
	}

	for k := 0; k+1 < len(known); k++ {
		lo, hi := known[k], known[k+1]
		loVal, hiVal := *field(&obs[lo]), *field(&obs[hi])
		for i := lo + 1; i < hi; i++ {
			frac := float64(i-lo) / float64(hi-lo)
			*field(&obs[i]) = loVal + (hiVal-loVal)*frac
		}
	}
}
