// Package arcade holds the real-time mini-game engines. Engines are pure
// simulations stepped by the caller's frame loop; rendering and input
// sampling live with the caller.
package arcade

import "github.com/appengine-ltd/exodus-road/internal/game"

// Grid dimensions shared by both engines.
const (
	GridWidth  = 70
	GridHeight = 18
)

const (
	countdownDuration = 1.5

	// Frame deltas are capped so a stalled frame cannot teleport the
	// player or skip collision checks.
	maxStepDelta = 0.1
)

// Input is the sampled movement state for one frame.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Phase tracks engine lifecycle within a single play.
type Phase int

const (
	PhaseCountdown Phase = iota
	PhaseActive
	PhaseScene
	PhaseDone
)

// Engine is the common contract both mini-games satisfy. Step returns a
// non-nil result exactly once, when the scene card has finished showing.
type Engine interface {
	Step(in Input, dt float64) *game.MiniGameResult
	Phase() Phase
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// CountdownLabel maps remaining countdown time to the 3-2-1-GO display.
func CountdownLabel(remaining float64) string {
	switch {
	case remaining > 1.0:
		return "3"
	case remaining > 0.5:
		return "2"
	case remaining > 0.0:
		return "1"
	default:
		return "GO!"
	}
}
