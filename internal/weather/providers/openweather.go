package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/sony/gobreaker"

	"github.com/weatherlab/weather-dashboard/internal/weather"
)

// OpenWeatherCurrent serves real-time conditions from OpenWeatherMap.
type OpenWeatherCurrent struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherCurrent(client *http.Client, apiKey string) *OpenWeatherCurrent {
	return &OpenWeatherCurrent{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
		client:  client,
		circuit: newBreaker("openweathermap"),
	}
}

func (p *OpenWeatherCurrent) Name() string {
	return p.name
}

// FetchCurrent returns normalized current conditions at the given point.
// Temperature is the actual reading, not feels-like; wind is converted from
// m/s to km/h and visibility from meters to km.
func (p *OpenWeatherCurrent) FetchCurrent(ctx context.Context, pt weather.GeoPoint) (weather.CurrentConditions, error) {
	if p.apiKey == "" {
		return weather.CurrentConditions{}, fmt.Errorf("openweather api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", fmt.Sprintf("%f", pt.Lat))
		values.Set("lon", fmt.Sprintf("%f", pt.Lon))
		values.Set("appid", p.apiKey)
		values.Set("units", "metric")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.client, p.circuit, defaultBackoff, buildRequest)
	if err != nil {
		return weather.CurrentConditions{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  float64 `json:"humidity"`
			Pressure  float64 `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Clouds struct {
			All float64 `json:"all"`
		} `json:"clouds"`
		Visibility *float64 `json:"visibility"`
		Weather    []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.CurrentConditions{}, err
	}

	ts := time.Unix(payload.Dt, 0).UTC()
	if payload.Dt == 0 {
		ts = time.Now().UTC()
	}

	visibilityM := 10000.0
	if payload.Visibility != nil {
		visibilityM = *payload.Visibility
	}

	var description, icon string
	if len(payload.Weather) > 0 {
		description = titleCase(payload.Weather[0].Description)
		icon = payload.Weather[0].Icon
	}

	return weather.CurrentConditions{
		Temperature:  round1(payload.Main.Temp),
		FeelsLike:    round1(payload.Main.FeelsLike),
		Humidity:     payload.Main.Humidity,
		Pressure:     payload.Main.Pressure,
		WindKmh:      round1(payload.Wind.Speed * 3.6),
		Description:  description,
		Icon:         icon,
		IconURL:      fmt.Sprintf("https://openweathermap.org/img/wn/%s@2x.png", icon),
		Emoji:        weather.EmojiForIcon(icon),
		CloudsPct:    payload.Clouds.All,
		VisibilityKm: visibilityM / 1000,
		Timestamp:    ts,
		Source:       fmt.Sprintf("OpenWeatherMap API (%.2f, %.2f)", pt.Lat, pt.Lon),
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// titleCase capitalizes each word of an API description ("light rain" ->
// "Light Rain").
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
