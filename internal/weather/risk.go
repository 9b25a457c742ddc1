package weather

import (
	"fmt"
	"math"
	"strings"

	"github.com/appengine-ltd/exodus-road/internal/game"
)

// RiskFrom converts conditions into the risk modifiers the event engine
// consumes. Thresholds are tuned so ordinary weather stays at zero and
// only genuinely dangerous readings shape event selection.
func RiskFrom(conditions Conditions, ok bool) game.WeatherRisk {
	if !ok {
		return game.WeatherRisk{}
	}

	var risk game.WeatherRisk

	if conditions.Temp > 95 {
		risk.Heat = (conditions.Temp - 95) / 30
		risk.Severity += 0.3
	}
	if conditions.Temp > 110 {
		risk.Wildfire += 0.3
	}

	if conditions.Humidity < 20 {
		risk.Wildfire += 0.5
	}
	if conditions.Humidity > 80 && conditions.Temp > 75 {
		risk.Hurricane += 0.2
	}

	if conditions.Wind > 30 {
		risk.Tornado += (conditions.Wind - 30) / 20
		risk.Severity += 0.2
	}
	if conditions.Wind > 50 {
		risk.Hurricane += 0.4
	}

	if strings.Contains(conditions.Condition, "rain") || strings.Contains(conditions.Condition, "drizzle") {
		risk.Flood += 0.3
	}
	if strings.Contains(conditions.Condition, "thunder") || strings.Contains(conditions.Condition, "storm") {
		risk.Flood += 0.5
		risk.Tornado += 0.3
		risk.Severity += 0.3
	}

	risk.EventBoost = math.Min(0.2, risk.Severity*0.15)
	return risk
}

// Narrative builds a short flavor line about notable conditions, empty
// when the weather is unremarkable.
func Narrative(conditions Conditions, ok bool) string {
	if !ok {
		return ""
	}

	var parts []string
	switch {
	case conditions.Temp > 100:
		parts = append(parts, fmt.Sprintf("The thermometer reads %.0f°F.", conditions.Temp))
	case conditions.Temp > 90:
		parts = append(parts, fmt.Sprintf("It's a sweltering %.0f°F.", conditions.Temp))
	case conditions.Temp < 32:
		parts = append(parts, fmt.Sprintf("A bitter %.0f°F freeze grips the road.", conditions.Temp))
	}

	if conditions.Wind > 30 {
		parts = append(parts, fmt.Sprintf("Winds gust at %.0f mph.", conditions.Wind))
	}

	if strings.Contains(conditions.Condition, "storm") || strings.Contains(conditions.Condition, "thunder") {
		parts = append(parts, "Thunder rolls in the distance.")
	} else if strings.Contains(conditions.Condition, "rain") {
		parts = append(parts, "Rain streaks the windshield.")
	}

	return strings.Join(parts, " ")
}
