package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/weatherlab/weather-dashboard/internal/weather"
)

const archiveDateLayout = "2006-01-02"

// OpenMeteoArchive serves historical daily aggregates from the Open-Meteo
// ERA5 archive. No API key is required.
type OpenMeteoArchive struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoArchive(client *http.Client) *OpenMeteoArchive {
	return &OpenMeteoArchive{
		name:    "open-meteo",
		baseURL: "https://archive-api.open-meteo.com/v1/archive",
		client:  client,
		circuit: newBreaker("open-meteo"),
	}
}

func (p *OpenMeteoArchive) Name() string {
	return p.name
}

// FetchDaily queries per-day aggregates for [start, end] at the given point.
// Days where the archive reports no metric at all are dropped, so a point
// with no station coverage comes back as an empty slice rather than a run of
// blank rows.
func (p *OpenMeteoArchive) FetchDaily(ctx context.Context, pt weather.GeoPoint, start, end time.Time) ([]weather.DailyObservation, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", pt.Lat))
		values.Set("longitude", fmt.Sprintf("%f", pt.Lon))
		values.Set("start_date", start.Format(archiveDateLayout))
		values.Set("end_date", end.Format(archiveDateLayout))
		values.Set("daily", "temperature_2m_mean,temperature_2m_min,temperature_2m_max,precipitation_sum,wind_speed_10m_max,surface_pressure_mean")
		values.Set("wind_speed_unit", "kmh")
		values.Set("timezone", "UTC")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.client, p.circuit, defaultBackoff, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Daily struct {
			Time     []string   `json:"time"`
			TempMean []*float64 `json:"temperature_2m_mean"`
			TempMin  []*float64 `json:"temperature_2m_min"`
			TempMax  []*float64 `json:"temperature_2m_max"`
			Precip   []*float64 `json:"precipitation_sum"`
			WindMax  []*float64 `json:"wind_speed_10m_max"`
			Pressure []*float64 `json:"surface_pressure_mean"`
		} `json:"daily"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	var obs []weather.DailyObservation
	for i, ts := range payload.Daily.Time {
		date, err := time.Parse(archiveDateLayout, ts)
		if err != nil {
			continue
		}
		o := weather.DailyObservation{
			Date: date,
			Tavg: metricAt(payload.Daily.TempMean, i),
			Tmin: metricAt(payload.Daily.TempMin, i),
			Tmax: metricAt(payload.Daily.TempMax, i),
			Prcp: metricAt(payload.Daily.Precip, i),
			Wspd: metricAt(payload.Daily.WindMax, i),
			Pres: metricAt(payload.Daily.Pressure, i),
		}
		if allMissing(o) {
			continue
		}
		obs = append(obs, o)
	}
	return obs, nil
}

// metricAt maps a null or absent archive cell to the missing marker.
func metricAt(vals []*float64, i int) float64 {
	if i >= len(vals) || vals[i] == nil {
		return math.NaN()
	}
	return *vals[i]
}

func allMissing(o weather.DailyObservation) bool {
	return weather.IsMissing(o.Tavg) && weather.IsMissing(o.Tmin) && weather.IsMissing(o.Tmax) &&
		weather.IsMissing(o.Prcp) && weather.IsMissing(o.Wspd) && weather.IsMissing(o.Pres)
}
