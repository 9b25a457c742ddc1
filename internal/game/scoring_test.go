package game

import "testing"

func scoreTestState(phase Phase) *JourneyState {
	return &JourneyState{
		Phase:     phase,
		TotalDist: 1200,
		Day:       12,
		Resources: Resources{Fuel: 50, Water: 50, Food: 50, Health: 50, Morale: 50},
		Family: []FamilyMember{
			{Name: "A", Alive: true, IsLeader: true},
			{Name: "B", Alive: true},
			{Name: "C", Alive: true},
			{Name: "D", Alive: true},
		},
		EventCount: 3,
	}
}

func TestComputeScoreVictory(t *testing.T) {
	s := scoreTestState(PhaseWin)
	s.DistanceTraveled = 1200

	score := ComputeScore(s)

	// 500 destination + 50 supplies + 83 speed (10 ideal days over 12)
	// + 200 survivors + 45 hardships.
	if score.Total != 878 {
		t.Errorf("Total = %d, want 878", score.Total)
	}

	labels := map[string]int{}
	for _, line := range score.Breakdown {
		labels[line.Label] = line.Points
	}
	if labels["Reached destination"] != 500 {
		t.Errorf("destination points = %d, want 500", labels["Reached destination"])
	}
	if labels["Speed bonus"] != 83 {
		t.Errorf("speed bonus = %d, want 83", labels["Speed bonus"])
	}
	if labels["Family survived"] != 200 {
		t.Errorf("survivor points = %d, want 200", labels["Family survived"])
	}
}

func TestComputeScoreDefeat(t *testing.T) {
	s := scoreTestState(PhaseLose)
	s.DistanceTraveled = 600
	s.Resources = Resources{}
	s.EventCount = 0
	for i := range s.Family {
		s.Family[i].Alive = i == 0
	}

	score := ComputeScore(s)

	// 100 for half the road + 50 for the surviving leader. Empty gauges,
	// zero events, and the win-only bonuses contribute no lines.
	if score.Total != 150 {
		t.Errorf("Total = %d, want 150", score.Total)
	}
	for _, line := range score.Breakdown {
		if line.Points == 0 {
			t.Errorf("zero-point line %q should be omitted", line.Label)
		}
		if line.Label == "Reached destination" || line.Label == "Speed bonus" {
			t.Errorf("win-only line %q present on defeat", line.Label)
		}
	}
}

func TestComputeScorePure(t *testing.T) {
	s := scoreTestState(PhaseWin)
	first := ComputeScore(s)
	second := ComputeScore(s)
	if first.Total != second.Total || len(first.Breakdown) != len(second.Breakdown) {
		t.Errorf("ComputeScore mutated state: %d then %d", first.Total, second.Total)
	}
}
