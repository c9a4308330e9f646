package weather

import (
	"hash/fnv"
	"math/rand"
	"time"
)

// CurrentConditions is a normalized real-time weather reading for a city.
type CurrentConditions struct {
	City         string    `json:"city"`
	Temperature  float64   `json:"temperatureC"`
	FeelsLike    float64   `json:"feelsLikeC"`
	Humidity     float64   `json:"humidityPercent"`
	Pressure     float64   `json:"pressureHpa"`
	WindKmh      float64   `json:"windKmh"`
	Description  string    `json:"description"`
	Icon         string    `json:"icon"`
	IconURL      string    `json:"iconUrl"`
	Emoji        string    `json:"emoji"`
	CloudsPct    float64   `json:"cloudsPercent"`
	VisibilityKm float64   `json:"visibilityKm"`
	Timestamp    time.Time `json:"timestamp"`
	Source       string    `json:"source"`
}

// weatherEmoji maps OpenWeatherMap icon codes to display emojis.
var weatherEmoji = map[string]string{
	"01d": "☀️", "01n": "🌙",
	"02d": "🌤️", "02n": "🌙",
	"03d": "☁️", "03n": "☁️",
	"04d": "☁️", "04n": "☁️",
	"09d": "🌧️", "09n": "🌧️",
	"10d": "🌧️", "10n": "🌧️",
	"11d": "⛈️", "11n": "⛈️",
	"13d": "❄️", "13n": "❄️",
	"50d": "🌫️", "50n": "🌫️",
}

// EmojiForIcon returns the display emoji for an OpenWeatherMap icon code.
func EmojiForIcon(icon string) string {
	if e, ok := weatherEmoji[icon]; ok {
		return e
	}
	return "🌤️"
}

var mockDescriptions = []string{"Clear Sky", "Partly Cloudy", "Light Rain", "Haze"}

// MockCurrent returns estimated current conditions for a city when no live
// provider is available. Values are plausible for a temperate-to-tropical
// city and deterministic per (city, seed) pair.
func MockCurrent(city string, seed int64) CurrentConditions {
	h := fnv.New64a()
	h.Write([]byte(city))
	rng := rand.New(rand.NewSource(seed ^ int64(h.Sum64())))

	return CurrentConditions{
		City:         city,
		Temperature:  round1(25 + rng.Float64()*10 - 5),
		FeelsLike:    round1(26 + rng.Float64()*10 - 5),
		Humidity:     float64(40 + rng.Intn(41)),
		Pressure:     float64(1008 + rng.Intn(11)),
		WindKmh:      round1(5 + rng.Float64()*15),
		Description:  mockDescriptions[rng.Intn(len(mockDescriptions))],
		Icon:         "01d",
		IconURL:      "https://openweathermap.org/img/wn/01d@2x.png",
		Emoji:        EmojiForIcon("01d"),
		CloudsPct:    float64(rng.Intn(51)),
		VisibilityKm: round1(5 + rng.Float64()*5),
		Timestamp:    time.Now().UTC(),
		Source:       "estimated (no live provider)",
	}
}
