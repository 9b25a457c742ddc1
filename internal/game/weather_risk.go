package game

// WeatherRisk is the per-waypoint risk snapshot supplied by the weather
// collaborator. A zero value means no modifiers, which is also the
// degraded form used when a lookup fails.
type WeatherRisk struct {
	Heat       float64 `json:"heat"`
	Flood      float64 `json:"flood"`
	Wildfire   float64 `json:"wildfire"`
	Tornado    float64 `json:"tornado"`
	Hurricane  float64 `json:"hurricane"`
	Severity   float64 `json:"severity"`
	EventBoost float64 `json:"event_boost"`
}

// CategoryBoost returns the risk scalar matching a peril category, zero
// for categories weather does not influence.
func (w WeatherRisk) CategoryBoost(peril PerilType) float64 {
	switch peril {
	case PerilHeat:
		return w.Heat
	case PerilFlood:
		return w.Flood
	case PerilWildfire:
		return w.Wildfire
	case PerilTornado:
		return w.Tornado
	case PerilHurricane:
		return w.Hurricane
	default:
		return 0
	}
}
