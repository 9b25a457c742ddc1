package arcade

import (
	"testing"

	"github.com/appengine-ltd/exodus-road/internal/game"
)

func TestShelterDashAlwaysTerminates(t *testing.T) {
	for seed := uint64(0); seed < 8; seed++ {
		s := NewShelterDash(0.5, game.WeatherRisk{Heat: 0.5}, testRNG(seed))

		var got *game.MiniGameResult
		for i := 0; i < terminationSteps; i++ {
			if result := s.Step(Input{Left: i%2 == 0}, 0.05); result != nil {
				got = result
				break
			}
		}
		if got == nil {
			t.Fatalf("seed %d: no result within %d steps", seed, terminationSteps)
		}
		if got.Survived != (s.Outcome() != ShelterCollapsed) {
			t.Errorf("seed %d: Survived = %v with outcome %v", seed, got.Survived, s.Outcome())
		}
		if got.Narrative == "" {
			t.Errorf("seed %d: empty narrative", seed)
		}
	}
}

func TestShelterFieldGeneration(t *testing.T) {
	for seed := uint64(0); seed < 16; seed++ {
		s := NewShelterDash(0, game.WeatherRisk{}, testRNG(seed))

		if len(s.Shelters) == 0 {
			t.Fatalf("seed %d: no shelters placed", seed)
		}
		if len(s.Shelters) > s.params.ShelterCount {
			t.Fatalf("seed %d: %d shelters, want at most %d", seed, len(s.Shelters), s.params.ShelterCount)
		}

		for i, shelter := range s.Shelters {
			if shelter.Col < shelterPlayMinCol || shelter.Col+shelter.Size > shelterPlayMaxCol ||
				shelter.Row < shelterPlayMinRow || shelter.Row+shelter.Size > shelterPlayMaxRow {
				t.Errorf("seed %d: shelter %d out of bounds: %+v", seed, i, shelter)
			}
			for j := i + 1; j < len(s.Shelters); j++ {
				other := s.Shelters[j]
				if shelter.Col < other.Col+other.Size && shelter.Col+shelter.Size > other.Col &&
					shelter.Row < other.Row+other.Size && shelter.Row+shelter.Size > other.Row {
					t.Errorf("seed %d: shelters %d and %d overlap", seed, i, j)
				}
			}
		}
	}
}

func TestShelterExposureDrainsFasterThanShelter(t *testing.T) {
	s := NewShelterDash(0, game.WeatherRisk{}, testRNG(4))
	for s.Phase() == PhaseCountdown {
		s.Step(Input{}, 0.05)
	}

	// Park the player inside the first shelter and tick once.
	shelter := s.Shelters[0]
	s.PlayerCol = float64(shelter.Col) + 1
	s.PlayerRow = float64(shelter.Row) + 1
	before := s.Health
	s.Step(Input{}, 0.05)
	if !s.InShelter {
		t.Fatal("player parked inside a shelter not detected as sheltered")
	}
	shelteredDrain := before - s.Health

	// Move to open ground far from any shelter and tick again.
	s.PlayerCol = shelterPlayMaxCol
	s.PlayerRow = shelterPlayMaxRow
	before = s.Health
	s.Step(Input{}, 0.05)
	exposedDrain := before - s.Health

	if exposedDrain <= shelteredDrain {
		t.Errorf("exposed drain %v should exceed sheltered drain %v", exposedDrain, shelteredDrain)
	}
}

func TestShelterCollapseOnZeroHealth(t *testing.T) {
	s := NewShelterDash(1.0, game.WeatherRisk{}, testRNG(7))
	for s.Phase() == PhaseCountdown {
		s.Step(Input{}, 0.05)
	}

	// Pin the player in the open corner; max-difficulty exposure damage
	// empties 100 health well before the timer does.
	s.PlayerCol = shelterPlayMaxCol
	s.PlayerRow = shelterPlayMaxRow
	for i := 0; i < terminationSteps && s.Phase() == PhaseActive; i++ {
		s.Step(Input{Down: true, Right: true}, 0.05)
	}

	if s.Outcome() != ShelterCollapsed {
		t.Errorf("outcome = %v, want collapsed under constant exposure", s.Outcome())
	}
	if s.Health != 0 {
		t.Errorf("Health = %v, want drained to 0", s.Health)
	}
}

func TestPerilLabel(t *testing.T) {
	tests := []struct {
		name string
		risk game.WeatherRisk
		want string
	}{
		{"wildfire dominates", game.WeatherRisk{Wildfire: 0.4, Heat: 0.9}, "SMOKE"},
		{"heat", game.WeatherRisk{Heat: 0.3}, "HEAT"},
		{"flood", game.WeatherRisk{Flood: 0.2}, "FLOOD"},
		{"tornado", game.WeatherRisk{Tornado: 0.5}, "STORM"},
		{"hurricane", game.WeatherRisk{Hurricane: 0.5}, "STORM"},
		{"calm", game.WeatherRisk{}, "HAZARD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PerilLabel(tt.risk); got != tt.want {
				t.Errorf("PerilLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCountdownLabel(t *testing.T) {
	tests := []struct {
		remaining float64
		want      string
	}{
		{1.4, "3"},
		{0.9, "2"},
		{0.3, "1"},
		{0, "GO!"},
		{-0.1, "GO!"},
	}
	for _, tt := range tests {
		if got := CountdownLabel(tt.remaining); got != tt.want {
			t.Errorf("CountdownLabel(%v) = %q, want %q", tt.remaining, got, tt.want)
		}
	}
}
