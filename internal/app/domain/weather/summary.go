// Package weather condenses daily forecasts into the summary used by the packing rules.
package weather

import (
	"math"
	"strings"

	"github.com/FACorreiaa/loci-travelkit/internal/app/models"
)

const (
	windyThresholdKmh      = 30.0
	rainProbabilityPercent = 50.0
	rainAmountThresholdMM  = 1.0
)

var (
	rainIcons = []string{"rain", "drizzle", "shower", "thunder"}
	snowIcons = []string{"snow", "sleet"}
)

// Summarize reduces a forecast window to a WeatherSummary. It returns nil for an empty window
// so callers can skip weather rules entirely.
func Summarize(days []models.ForecastDay) *models.WeatherSummary {
	if len(days) == 0 {
		return nil
	}

	summary := &models.WeatherSummary{
		MinTemp: math.Inf(1),
		MaxTemp: math.Inf(-1),
	}

	var sumTemp, sumHumidity float64
	for _, d := range days {
		sumTemp += (d.MinTemp + d.MaxTemp) / 2
		sumHumidity += d.Humidity

		if d.MinTemp < summary.MinTemp {
			summary.MinTemp = d.MinTemp
		}
		if d.MaxTemp > summary.MaxTemp {
			summary.MaxTemp = d.MaxTemp
		}

		icon := strings.ToLower(d.Icon)
		snowy := containsAny(icon, snowIcons)
		if snowy {
			summary.HasSnow = true
		}
		if containsAny(icon, rainIcons) ||
			(!snowy && d.PrecipitationProbability >= rainProbabilityPercent && d.PrecipitationMM >= rainAmountThresholdMM) {
			summary.HasRain = true
		}
		if d.WindSpeedKmh >= windyThresholdKmh {
			summary.IsWindy = true
		}
	}

	n := float64(len(days))
	summary.AvgTemp = round1(sumTemp / n)
	summary.Humidity = round1(sumHumidity / n)

	return summary
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
