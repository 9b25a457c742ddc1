package game

// Base burn rates per day of travel.
var baseRates = Delta{
	ResourceFuel:   -4,
	ResourceWater:  -3,
	ResourceFood:   -3,
	ResourceHealth: -1,
	ResourceMorale: -1.5,
}

const (
	baseMilesPerDay = 120

	// Event trigger base probability per travel tick.
	eventBaseChance = 0.30

	// Roadside encounter probability when no event fired.
	encounterChance = 0.18
)

// DayResult records what a single simulated day did to the journey.
type DayResult struct {
	Arrived         bool
	Changes         Delta
	TriggerEvent    bool
	Encounter       *EncounterDefinition
	ReachedWaypoint bool
	WaypointName    string
	Terrain         Terrain
	Miles           float64
	FailureReason   string
}

// TravelTick advances exactly one simulated day in place: burns resources
// by terrain and passives, advances distance, rolls for events and
// encounters, and reports any terminal condition.
func TravelTick(s *JourneyState) DayResult {
	current := s.CurrentWaypoint()
	next := s.NextWaypoint()
	if next == nil {
		return DayResult{Arrived: true}
	}

	terrain := current.Terrain
	terrainMod := TerrainModifier(terrain)
	familyPassives := FamilyPassives(s.Family)
	itemPassives := MergeItemPassives(s.Inventory)

	changes := Delta{}
	for _, res := range AllResources() {
		rate := baseRates[res]
		rate *= terrainMod[res]

		switch res {
		case ResourceFuel:
			rate *= familyPassives.FuelDrain
		case ResourceHealth:
			rate *= familyPassives.HealthDrain
		}

		// Item drain dampeners only; flat bonuses are handled below.
		if factor, ok := itemPassives[string(res)]; ok && factor < 1 {
			rate *= factor
		}

		if s.WeatherRisk.Severity > 0 {
			rate *= 1 + s.WeatherRisk.Severity*0.2
		}

		changes[res] = rate
		s.Resources.Adjust(res, rate)
	}

	// Flat per-day item bonuses, e.g. the solar panel's morale trickle.
	if bonus, ok := itemPassives[string(ResourceMorale)]; ok && bonus >= 1 {
		s.Resources.Adjust(ResourceMorale, bonus)
	}

	miles := baseMilesPerDay * familyPassives.TravelSpeed * PacePenalty(terrain)

	s.MilesToday = miles
	s.DistanceToNext -= miles
	s.DistanceTraveled += miles
	s.Day++

	result := DayResult{
		Changes:      changes,
		Terrain:      terrain,
		Miles:        miles,
		WaypointName: current.Name,
	}

	if s.DistanceToNext <= 0 {
		s.WaypointIndex++
		result.ReachedWaypoint = true
		result.WaypointName = next.Name

		if further := s.NextWaypoint(); further != nil {
			s.DistanceToNext = further.Dist
		} else {
			result.Arrived = true
			return result
		}
	}

	chance := eventBaseChance + s.WeatherRisk.EventBoost
	if itemPassives[PassivePositiveBoost] > 0 {
		// Better intel dampens every event trigger, not only negative
		// ones. The positive-weight boost lives in SelectEvent.
		chance *= 0.9
	}
	result.TriggerEvent = s.rng.Float64() < chance

	if !result.TriggerEvent && s.rng.Float64() < encounterChance {
		if encounter := selectEncounter(s.Encounters, terrain, s.rng); encounter != nil {
			s.Resources.Apply(encounter.Effects)
			result.Encounter = encounter
		}
	}

	if reason, failed := s.Resources.FailureReason(); failed {
		result.FailureReason = reason
	}

	return result
}
