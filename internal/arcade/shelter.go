package arcade

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/appengine-ltd/exodus-road/internal/game"
)

const (
	shelterPlayMinRow = 2
	shelterPlayMaxRow = 16
	shelterPlayMinCol = 1
	shelterPlayMaxCol = 68

	shelterSceneDuration = 1.2

	shelterMoveSpeed = 14

	// Residual damage per second even inside a shelter.
	shelterLeakDamage = 1
)

type shelterParams struct {
	Duration       float64
	ExposureDamage float64
	ShelterCount   int
	ShelterSize    int
	PerilDensity   float64
}

func shelterDifficulty(progress float64) shelterParams {
	t := clamp(progress, 0, 1)
	return shelterParams{
		Duration:       lerp(15, 12, t),
		ExposureDamage: lerp(8, 16, t),
		ShelterCount:   int(math.Round(lerp(6, 4, t))),
		ShelterSize:    3,
		PerilDensity:   lerp(0.02, 0.05, t),
	}
}

// PerilLabel names the hazard dominating the current weather, for the
// HUD and narrative lines.
func PerilLabel(risk game.WeatherRisk) string {
	switch {
	case risk.Wildfire > 0:
		return "SMOKE"
	case risk.Heat > 0:
		return "HEAT"
	case risk.Flood > 0:
		return "FLOOD"
	case risk.Tornado > 0 || risk.Hurricane > 0:
		return "STORM"
	default:
		return "HAZARD"
	}
}

// Shelter is a 3x3 safe zone on the field.
type Shelter struct {
	Col  int
	Row  int
	Size int
}

// ShelterOutcome is how the dash ended.
type ShelterOutcome int

const (
	ShelterRunning ShelterOutcome = iota
	ShelterSurvived
	ShelterBarely
	ShelterCollapsed
)

// ShelterDash is the survival mini-game. The field hurts; shelters
// don't, mostly. Outlive the timer.
type ShelterDash struct {
	params shelterParams
	rng    *rand.Rand
	peril  string

	PlayerCol float64
	PlayerRow float64
	Health    float64

	Shelters  []Shelter
	InShelter bool

	TimeInShelter float64
	TimeExposed   float64

	phase            Phase
	countdownElapsed float64
	elapsed          float64
	sceneElapsed     float64
	outcome          ShelterOutcome
}

// NewShelterDash builds a run scaled to journey progress, themed by the
// active weather risk.
func NewShelterDash(progress float64, risk game.WeatherRisk, rng *rand.Rand) *ShelterDash {
	s := &ShelterDash{
		params:    shelterDifficulty(progress),
		rng:       rng,
		peril:     PerilLabel(risk),
		PlayerCol: GridWidth / 2,
		PlayerRow: GridHeight / 2,
		Health:    100,
		phase:     PhaseCountdown,
	}
	s.generateField()
	return s
}

// generateField scatters non-overlapping shelters, giving up on a
// placement after a bounded number of attempts so generation always
// finishes even on crowded fields.
func (s *ShelterDash) generateField() {
	size := s.params.ShelterSize
	for i := 0; i < s.params.ShelterCount; i++ {
		for attempt := 0; attempt < 50; attempt++ {
			col := shelterPlayMinCol + 2 + s.rng.IntN(shelterPlayMaxCol-shelterPlayMinCol-size-4)
			row := shelterPlayMinRow + 1 + s.rng.IntN(shelterPlayMaxRow-shelterPlayMinRow-size-2)

			overlaps := false
			for _, existing := range s.Shelters {
				if col < existing.Col+existing.Size+2 && col+size+2 > existing.Col &&
					row < existing.Row+existing.Size+2 && row+size+2 > existing.Row {
					overlaps = true
					break
				}
			}
			if !overlaps {
				s.Shelters = append(s.Shelters, Shelter{Col: col, Row: row, Size: size})
				break
			}
		}
	}
}

func (s *ShelterDash) Phase() Phase { return s.phase }

func (s *ShelterDash) Outcome() ShelterOutcome { return s.outcome }

func (s *ShelterDash) Peril() string { return s.peril }

func (s *ShelterDash) CountdownRemaining() float64 {
	return countdownDuration - s.countdownElapsed
}

// TimeLeft reports seconds until the timer expires.
func (s *ShelterDash) TimeLeft() float64 {
	return math.Max(0, s.params.Duration-s.elapsed)
}

// PerilDensity is the particle fill rate for the renderer.
func (s *ShelterDash) PerilDensity() float64 { return s.params.PerilDensity }

// Step advances the simulation by dt seconds. Returns the journey-facing
// result exactly once, after the outcome card has shown.
func (s *ShelterDash) Step(in Input, dt float64) *game.MiniGameResult {
	dt = math.Min(dt, maxStepDelta)

	switch s.phase {
	case PhaseCountdown:
		s.countdownElapsed += dt
		if s.countdownElapsed >= countdownDuration {
			s.phase = PhaseActive
		}
	case PhaseActive:
		s.update(in, dt)
	case PhaseScene:
		s.sceneElapsed += dt
		if s.sceneElapsed >= shelterSceneDuration {
			s.phase = PhaseDone
			return s.buildResult()
		}
	}
	return nil
}

func (s *ShelterDash) update(in Input, dt float64) {
	s.elapsed += dt

	speed := shelterMoveSpeed * dt
	if in.Left {
		s.PlayerCol -= speed
	}
	if in.Right {
		s.PlayerCol += speed
	}
	if in.Up {
		s.PlayerRow -= speed
	}
	if in.Down {
		s.PlayerRow += speed
	}
	s.PlayerCol = clamp(s.PlayerCol, shelterPlayMinCol, shelterPlayMaxCol)
	s.PlayerRow = clamp(s.PlayerRow, shelterPlayMinRow, shelterPlayMaxRow)

	pCol := int(math.Round(s.PlayerCol))
	pRow := int(math.Round(s.PlayerRow))
	s.InShelter = false
	for _, shelter := range s.Shelters {
		if pCol >= shelter.Col && pCol < shelter.Col+shelter.Size &&
			pRow >= shelter.Row && pRow < shelter.Row+shelter.Size {
			s.InShelter = true
			break
		}
	}

	if s.InShelter {
		s.TimeInShelter += dt
		s.Health = math.Max(0, s.Health-shelterLeakDamage*dt)
	} else {
		s.TimeExposed += dt
		s.Health = math.Max(0, s.Health-s.params.ExposureDamage*dt)
	}

	if s.Health <= 0 {
		s.endGame(ShelterCollapsed)
		return
	}
	if s.elapsed >= s.params.Duration {
		if s.Health > 20 {
			s.endGame(ShelterSurvived)
		} else {
			s.endGame(ShelterBarely)
		}
	}
}

func (s *ShelterDash) endGame(outcome ShelterOutcome) {
	s.outcome = outcome
	s.phase = PhaseScene
	s.sceneElapsed = 0
}

func (s *ShelterDash) buildResult() *game.MiniGameResult {
	peril := strings.ToLower(s.peril)

	switch s.outcome {
	case ShelterSurvived:
		return &game.MiniGameResult{
			Survived:  true,
			Narrative: fmt.Sprintf("You found shelter from the %s and rode it out. Shaken but alive.", peril),
			Effects:   game.Delta{game.ResourceMorale: 5, game.ResourceHealth: -5},
		}
	case ShelterBarely:
		return &game.MiniGameResult{
			Survived:  true,
			Narrative: fmt.Sprintf("The %s battered you between shelters. You made it, but barely.", peril),
			Effects:   game.Delta{game.ResourceMorale: -3, game.ResourceHealth: -12},
		}
	default:
		return &game.MiniGameResult{
			Survived:  false,
			Narrative: fmt.Sprintf("The %s was too intense. Exposed for too long, the family collapsed before reaching safety.", peril),
			Effects:   game.Delta{game.ResourceHealth: -20, game.ResourceMorale: -10},
		}
	}
}
