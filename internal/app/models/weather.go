package models

import "time"

// ForecastDay is a single daily forecast record as supplied by a weather provider adapter.
type ForecastDay struct {
	Date                     time.Time `json:"date"`
	MinTemp                  float64   `json:"min_temp"`                  // Celsius
	MaxTemp                  float64   `json:"max_temp"`                  // Celsius
	PrecipitationMM          float64   `json:"precipitation_mm"`          // millimetres
	PrecipitationProbability float64   `json:"precipitation_probability"` // percentage
	WindSpeedKmh             float64   `json:"wind_speed_kmh"`
	Humidity                 float64   `json:"humidity"` // percentage
	Icon                     string    `json:"icon"`
}

// WeatherSummary is the condensed forecast window consumed by the packing rules.
type WeatherSummary struct {
	AvgTemp  float64 `json:"avg_temp"`
	MinTemp  float64 `json:"min_temp"`
	MaxTemp  float64 `json:"max_temp"`
	HasRain  bool    `json:"has_rain"`
	HasSnow  bool    `json:"has_snow"`
	IsWindy  bool    `json:"is_windy"`
	Humidity float64 `json:"humidity"`
}
