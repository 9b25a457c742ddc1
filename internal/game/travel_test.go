package game

import (
	"math"
	"testing"
)

func testState(t *testing.T, route []Waypoint) *JourneyState {
	t.Helper()
	s := &JourneyState{
		Phase:     PhaseTraveling,
		Route:     route,
		TotalDist: TotalDistance(route),
		Day:       1,
		Resources: FullResources(),
		Family: []FamilyMember{
			{Name: "Harper", Alive: true, IsLeader: true, Health: 100},
			{Name: "Riley", Alive: true, Health: 100},
		},
		Events:     builtinEvents(),
		Encounters: builtinEncounters(),
		rng:        seededRNG(42),
	}
	if len(route) > 1 {
		s.DistanceToNext = route[1].Dist
	}
	return s
}

func TestTravelTickDesertBurn(t *testing.T) {
	s := testState(t, []Waypoint{
		{Name: "Phoenix, AZ", Terrain: TerrainDesert},
		{Name: "Flagstaff, AZ", Terrain: TerrainMountain, Dist: 400},
	})

	result := TravelTick(s)

	checks := []struct {
		res  Resource
		want float64
	}{
		{ResourceFuel, 100 - 4*1.1},
		{ResourceWater, 100 - 3*1.8},
		{ResourceFood, 100 - 3*1.0},
		{ResourceHealth, 100 - 1*1.3},
		{ResourceMorale, 100 - 1.5*1.3},
	}
	for _, c := range checks {
		if got := s.Resources.Get(c.res); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", c.res, got, c.want)
		}
	}

	wantMiles := 120 * 0.85
	if math.Abs(result.Miles-wantMiles) > 1e-9 {
		t.Errorf("Miles = %v, want %v", result.Miles, wantMiles)
	}
	if math.Abs(s.DistanceToNext-(400-wantMiles)) > 1e-9 {
		t.Errorf("DistanceToNext = %v, want %v", s.DistanceToNext, 400-wantMiles)
	}
	if s.Day != 2 {
		t.Errorf("Day = %d, want 2", s.Day)
	}
	if result.Terrain != TerrainDesert {
		t.Errorf("Terrain = %v, want desert", result.Terrain)
	}
}

func TestTravelTickNavigatorSpeedsTravel(t *testing.T) {
	s := testState(t, []Waypoint{
		{Name: "A", Terrain: TerrainPlains},
		{Name: "B", Terrain: TerrainPlains, Dist: 1000},
	})
	s.Family[0].Trait = TraitNavigator

	result := TravelTick(s)

	wantMiles := 120.0 * 1.15
	if math.Abs(result.Miles-wantMiles) > 1e-9 {
		t.Errorf("Miles = %v, want %v", result.Miles, wantMiles)
	}

	wantFuel := 100 - 4*0.9*0.85
	if math.Abs(s.Resources.Fuel-wantFuel) > 1e-9 {
		t.Errorf("Fuel = %v, want %v", s.Resources.Fuel, wantFuel)
	}
}

func TestTravelTickItemDrainDampener(t *testing.T) {
	s := testState(t, []Waypoint{
		{Name: "A", Terrain: TerrainPlains},
		{Name: "B", Terrain: TerrainPlains, Dist: 1000},
	})
	purifier, _ := findItem(builtinItems(), ItemWaterPurifier)
	s.Inventory = []ItemDefinition{purifier}

	TravelTick(s)

	wantWater := 100 - 3*1.1*0.8
	if math.Abs(s.Resources.Water-wantWater) > 1e-9 {
		t.Errorf("Water = %v, want %v", s.Resources.Water, wantWater)
	}
}

func TestTravelTickSolarPanelMoraleTrickle(t *testing.T) {
	s := testState(t, []Waypoint{
		{Name: "A", Terrain: TerrainPlains},
		{Name: "B", Terrain: TerrainPlains, Dist: 1000},
	})
	panel, _ := findItem(builtinItems(), ItemSolarPanel)
	s.Inventory = []ItemDefinition{panel}

	TravelTick(s)

	wantMorale := 100 - 1.5 + 1
	if math.Abs(s.Resources.Morale-wantMorale) > 1e-9 {
		t.Errorf("Morale = %v, want %v", s.Resources.Morale, wantMorale)
	}
}

func TestTravelTickReachesWaypointAndArrives(t *testing.T) {
	s := testState(t, []Waypoint{
		{Name: "A", Terrain: TerrainPlains},
		{Name: "B", Terrain: TerrainPlains, Dist: 60},
	})

	result := TravelTick(s)

	if !result.ReachedWaypoint {
		t.Error("expected waypoint reached")
	}
	if !result.Arrived {
		t.Error("expected arrival at final waypoint")
	}
	if result.WaypointName != "B" {
		t.Errorf("WaypointName = %q, want B", result.WaypointName)
	}
}

func TestTravelTickReportsFailure(t *testing.T) {
	s := testState(t, []Waypoint{
		{Name: "A", Terrain: TerrainPlains},
		{Name: "B", Terrain: TerrainPlains, Dist: 1000},
	})
	s.Resources.Fuel = 2

	result := TravelTick(s)

	if result.FailureReason != "Out of fuel. Stranded on the road." {
		t.Errorf("FailureReason = %q, want out-of-fuel reason", result.FailureReason)
	}
}

func TestTravelTickWeatherSeverityRaisesDrain(t *testing.T) {
	calm := testState(t, []Waypoint{
		{Name: "A", Terrain: TerrainPlains},
		{Name: "B", Terrain: TerrainPlains, Dist: 1000},
	})
	harsh := testState(t, []Waypoint{
		{Name: "A", Terrain: TerrainPlains},
		{Name: "B", Terrain: TerrainPlains, Dist: 1000},
	})
	harsh.WeatherRisk = WeatherRisk{Severity: 0.5}

	TravelTick(calm)
	TravelTick(harsh)

	if harsh.Resources.Fuel >= calm.Resources.Fuel {
		t.Errorf("harsh fuel %v should drain faster than calm %v", harsh.Resources.Fuel, calm.Resources.Fuel)
	}
}
