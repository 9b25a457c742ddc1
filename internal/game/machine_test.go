package game

import (
	"strings"
	"testing"
)

func TestTravelOnlyWhileTraveling(t *testing.T) {
	s, _ := NewJourney(validConfig())
	s.Phase = PhaseEvent

	out := s.Travel()
	if out.Narrative != "" || out.Won || out.Lost {
		t.Errorf("Travel() off-phase = %+v, want zero outcome", out)
	}
	if s.Day != 1 {
		t.Errorf("Day = %d, ticking must not happen off-phase", s.Day)
	}
}

func TestTravelToDefeat(t *testing.T) {
	s, _ := NewJourney(validConfig())
	s.Resources.Fuel = 1

	out := s.Travel()

	if !out.Lost {
		t.Fatal("expected loss when fuel bottoms out")
	}
	if out.LoseText != "Out of fuel. Stranded on the road." {
		t.Errorf("LoseText = %q", out.LoseText)
	}
	if s.Phase != PhaseLose {
		t.Errorf("Phase = %v, want lose", s.Phase)
	}
	if !strings.Contains(s.Journal[len(s.Journal)-1], "Out of fuel") {
		t.Errorf("journal tail = %q, want failure entry", s.Journal[len(s.Journal)-1])
	}
}

func TestTravelToVictory(t *testing.T) {
	s, _ := NewJourney(validConfig())
	// Collapse the remaining road so the next tick arrives.
	s.WaypointIndex = len(s.Route) - 2
	s.DistanceToNext = 10

	out := s.Travel()

	if !out.Won {
		t.Fatal("expected arrival to win")
	}
	if s.Phase != PhaseWin {
		t.Errorf("Phase = %v, want win", s.Phase)
	}
	if !strings.Contains(s.Journal[len(s.Journal)-1], "made it") {
		t.Errorf("journal tail = %q, want arrival entry", s.Journal[len(s.Journal)-1])
	}
}

func TestTravelEventTransition(t *testing.T) {
	// Seed hunting is fine here; the trigger roll is deterministic per seed.
	for seed := int64(0); seed < 64; seed++ {
		cfg := validConfig()
		cfg.Seed = seed
		s, _ := NewJourney(cfg)

		s.Travel()
		if s.Phase != PhaseEvent {
			continue
		}

		if s.CurrentEvent == nil {
			t.Fatalf("seed %d: event phase with no current event", seed)
		}
		if s.EventCount != 1 {
			t.Errorf("seed %d: EventCount = %d, want 1", seed, s.EventCount)
		}
		if len(s.RecentPerils) != 1 || s.RecentPerils[0] != s.CurrentEvent.PerilType {
			t.Errorf("seed %d: RecentPerils = %v, want the triggered peril", seed, s.RecentPerils)
		}
		return
	}
	t.Fatal("no event triggered across 64 seeds, trigger roll looks broken")
}

func TestMakeChoiceResolvesAndContinues(t *testing.T) {
	s, _ := NewJourney(validConfig())
	event := EventDefinition{
		ID:        "test_storm",
		Name:      "Test Storm",
		PerilType: PerilFlood,
		Choices: []Choice{{
			Text:    "Push through",
			Outcome: Outcome{Effects: Delta{ResourceFuel: -5}, Narrative: "You push through."},
		}},
	}
	s.CurrentEvent = &event
	s.Phase = PhaseEvent

	result, resolved := s.MakeChoice(0)
	if !resolved {
		t.Fatal("plain choice should resolve immediately")
	}
	if result.Narrative != "You push through." {
		t.Errorf("narrative = %q", result.Narrative)
	}
	if s.Resources.Fuel != 95 {
		t.Errorf("Fuel = %v, want 95", s.Resources.Fuel)
	}
	if s.Phase != PhaseResult {
		t.Errorf("Phase = %v, want result", s.Phase)
	}
	if s.CurrentEvent != nil {
		t.Error("CurrentEvent should clear after resolution")
	}

	s.ContinueJourney()
	if s.Phase != PhaseTraveling {
		t.Errorf("Phase after continue = %v, want traveling", s.Phase)
	}
}

func TestMakeChoiceOffPhase(t *testing.T) {
	s, _ := NewJourney(validConfig())
	if _, resolved := s.MakeChoice(0); resolved {
		t.Error("MakeChoice outside event phase should be a no-op")
	}
}

func TestMiniGameSuspendAndResolve(t *testing.T) {
	s, _ := NewJourney(validConfig())
	event := EventDefinition{
		ID:        "test_blockade",
		Name:      "Test Blockade",
		PerilType: PerilSocial,
		Choices: []Choice{
			{Text: "Wait", Outcome: Outcome{Effects: Delta{ResourceMorale: -5}, Narrative: "You wait."}},
			{Text: "Run it", MiniGame: MiniGameBarricade},
		},
	}
	s.CurrentEvent = &event
	s.Phase = PhaseEvent

	_, resolved := s.MakeChoice(1)
	if resolved {
		t.Fatal("arcade choice must suspend, not resolve")
	}
	if s.Phase != PhaseMiniGame {
		t.Fatalf("Phase = %v, want minigame", s.Phase)
	}
	if s.PendingMiniGame() != MiniGameBarricade {
		t.Errorf("PendingMiniGame = %v, want barricade", s.PendingMiniGame())
	}

	result := s.ResolveMiniGame(MiniGameResult{
		Survived:  true,
		Narrative: "You punch through the barricade.",
		Effects:   Delta{ResourceMorale: 8, ResourceHealth: -5},
	})

	if result.Narrative != "You punch through the barricade." {
		t.Errorf("narrative = %q", result.Narrative)
	}
	if s.Resources.Morale != 100 {
		t.Errorf("Morale = %v, want clamped at 100", s.Resources.Morale)
	}
	if s.Resources.Health != 95 {
		t.Errorf("Health = %v, want 95", s.Resources.Health)
	}
	if s.Phase != PhaseResult {
		t.Errorf("Phase = %v, want result", s.Phase)
	}
	if s.PendingMiniGame() != MiniGameNone {
		t.Error("PendingMiniGame should clear after resolution")
	}
}

func TestMiniGameDefeatCanKill(t *testing.T) {
	deaths := 0
	for seed := int64(0); seed < 64; seed++ {
		cfg := validConfig()
		cfg.Seed = seed
		s, _ := NewJourney(cfg)
		event := EventDefinition{ID: "x", PerilType: PerilWildfire, Choices: []Choice{{Text: "Hide", MiniGame: MiniGameShelter}}}
		s.CurrentEvent = &event
		s.Phase = PhaseEvent
		s.MakeChoice(0)

		result := s.ResolveMiniGame(MiniGameResult{
			Narrative: "The fire finds you.",
			Effects:   Delta{ResourceHealth: -40},
		})
		if result.Death != nil {
			deaths++
			if s.Deaths != 1 {
				t.Errorf("seed %d: Deaths = %d, want 1", seed, s.Deaths)
			}
		}
	}
	if deaths == 0 {
		t.Error("no deaths across 64 seeds after a severe arcade loss")
	}
}

func TestFinishEventChecksFailure(t *testing.T) {
	s, _ := NewJourney(validConfig())
	event := EventDefinition{
		ID:        "drain",
		PerilType: PerilHeat,
		Choices: []Choice{{
			Text:    "Endure",
			Outcome: Outcome{Effects: Delta{ResourceWater: -200}, Narrative: "The heat takes everything."},
		}},
	}
	s.CurrentEvent = &event
	s.Phase = PhaseEvent

	s.MakeChoice(0)

	if s.Phase != PhaseLose {
		t.Errorf("Phase = %v, want lose when a gauge bottoms out", s.Phase)
	}
}
