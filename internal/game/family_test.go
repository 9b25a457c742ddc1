package game

import (
	"math"
	"testing"
)

func TestCreateFamily(t *testing.T) {
	rng := seededRNG(7)
	family := CreateFamily("Harper", TraitMedic, 5, rng)

	if len(family) != 5 {
		t.Fatalf("family size = %d, want 5", len(family))
	}
	if !family[0].IsLeader || family[0].Name != "Harper" || family[0].Trait != TraitMedic {
		t.Errorf("leader = %+v, want Harper leading with medic trait", family[0])
	}

	seen := map[string]bool{}
	for _, member := range family {
		if seen[member.Name] {
			t.Errorf("duplicate member name %q", member.Name)
		}
		seen[member.Name] = true
		if !member.Alive {
			t.Errorf("member %q created dead", member.Name)
		}
		if member.Health != 100 {
			t.Errorf("member %q health = %v, want 100", member.Name, member.Health)
		}
	}

	for _, member := range family[1:] {
		if member.IsLeader || member.Trait != "" {
			t.Errorf("non-leader %+v carries leader fields", member)
		}
	}
}

func TestFamilyPassives(t *testing.T) {
	family := []FamilyMember{
		{Name: "A", Alive: true, Trait: TraitNavigator, IsLeader: true},
		{Name: "B", Alive: true},
		{Name: "C", Alive: true, Trait: TraitMechanic},
	}

	p := FamilyPassives(family)
	wantFuel := 0.85 * 0.9
	if math.Abs(p.FuelDrain-wantFuel) > 1e-9 {
		t.Errorf("FuelDrain = %v, want %v", p.FuelDrain, wantFuel)
	}
	if math.Abs(p.TravelSpeed-1.15) > 1e-9 {
		t.Errorf("TravelSpeed = %v, want 1.15", p.TravelSpeed)
	}

	// Dead members stop contributing.
	family[0].Alive = false
	p = FamilyPassives(family)
	if math.Abs(p.FuelDrain-0.9) > 1e-9 {
		t.Errorf("FuelDrain after death = %v, want 0.9", p.FuelDrain)
	}
	if p.TravelSpeed != 1 {
		t.Errorf("TravelSpeed after death = %v, want 1", p.TravelSpeed)
	}
}

func TestAliveCount(t *testing.T) {
	family := []FamilyMember{
		{Name: "A", Alive: true},
		{Name: "B", Alive: false},
		{Name: "C", Alive: true},
	}
	if got := AliveCount(family); got != 2 {
		t.Errorf("AliveCount = %d, want 2", got)
	}
}

func TestMergeItemPassives(t *testing.T) {
	items := []ItemDefinition{
		{ID: "a", Passive: map[string]float64{string(ResourceHealth): 0.7}},
		{ID: "b", Passive: map[string]float64{string(ResourceHealth): 0.85}},
		{ID: "c", Passive: map[string]float64{string(ResourceMorale): 1}},
		{ID: "d", Passive: map[string]float64{string(ResourceMorale): 1}},
	}

	merged := MergeItemPassives(items)

	wantHealth := 0.7 * 0.85
	if math.Abs(merged[string(ResourceHealth)]-wantHealth) > 1e-9 {
		t.Errorf("health factor = %v, want %v (multiplicative)", merged[string(ResourceHealth)], wantHealth)
	}
	if merged[string(ResourceMorale)] != 2 {
		t.Errorf("morale bonus = %v, want 2 (additive)", merged[string(ResourceMorale)])
	}
}
