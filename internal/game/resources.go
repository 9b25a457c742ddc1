package game

// Resource identifies one of the five journey gauges.
type Resource string

const (
	ResourceFuel   Resource = "fuel"
	ResourceWater  Resource = "water"
	ResourceFood   Resource = "food"
	ResourceHealth Resource = "health"
	ResourceMorale Resource = "morale"
)

// AllResources returns the gauges in terminal-failure priority order.
func AllResources() []Resource {
	return []Resource{ResourceFuel, ResourceWater, ResourceFood, ResourceHealth, ResourceMorale}
}

// Delta is a set of per-resource adjustments, negative for consumption.
type Delta map[Resource]float64

func (d Delta) Clone() Delta {
	out := make(Delta, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Merge adds other's values onto d, key by key.
func (d Delta) Merge(other Delta) {
	for k, v := range other {
		d[k] += v
	}
}

// Resources holds the five journey gauges. Every value stays in [0,100].
type Resources struct {
	Fuel   float64 `json:"fuel" yaml:"fuel"`
	Water  float64 `json:"water" yaml:"water"`
	Food   float64 `json:"food" yaml:"food"`
	Health float64 `json:"health" yaml:"health"`
	Morale float64 `json:"morale" yaml:"morale"`
}

// FullResources returns all gauges at 100.
func FullResources() Resources {
	return Resources{Fuel: 100, Water: 100, Food: 100, Health: 100, Morale: 100}
}

func (r *Resources) Get(res Resource) float64 {
	switch res {
	case ResourceFuel:
		return r.Fuel
	case ResourceWater:
		return r.Water
	case ResourceFood:
		return r.Food
	case ResourceHealth:
		return r.Health
	case ResourceMorale:
		return r.Morale
	default:
		return 0
	}
}

func (r *Resources) set(res Resource, value float64) {
	value = clampFloat(value, 0, 100)
	switch res {
	case ResourceFuel:
		r.Fuel = value
	case ResourceWater:
		r.Water = value
	case ResourceFood:
		r.Food = value
	case ResourceHealth:
		r.Health = value
	case ResourceMorale:
		r.Morale = value
	}
}

// Adjust applies a single delta with clamping.
func (r *Resources) Adjust(res Resource, delta float64) {
	r.set(res, r.Get(res)+delta)
}

// Apply applies every entry of the delta map with clamping.
func (r *Resources) Apply(d Delta) {
	for res, value := range d {
		r.Adjust(res, value)
	}
}

// Average returns the mean of the five gauges.
func (r Resources) Average() float64 {
	return (r.Fuel + r.Water + r.Food + r.Health + r.Morale) / 5
}

var failureReasons = map[Resource]string{
	ResourceFuel:   "Out of fuel. Stranded on the road.",
	ResourceWater:  "No water left. Dehydration takes hold.",
	ResourceFood:   "Starvation. The family can go no further.",
	ResourceHealth: "Too sick and injured to continue.",
	ResourceMorale: "Despair wins. The family gives up the journey.",
}

// FailureReason reports the first depleted gauge, checked in fixed
// priority order, with its terminal reason string.
func (r Resources) FailureReason() (string, bool) {
	for _, res := range AllResources() {
		if r.Get(res) <= 0 {
			return failureReasons[res], true
		}
	}
	return "", false
}

func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
