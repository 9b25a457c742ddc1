package game

import "math"

// ScoreLine is one labeled component of the final tally.
type ScoreLine struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// Score is the end-of-journey tally with its breakdown.
type Score struct {
	Total     int         `json:"total"`
	Breakdown []ScoreLine `json:"breakdown"`
}

// ComputeScore tallies a finished journey. Pure over the state; calling
// it twice yields the same result.
func ComputeScore(s *JourneyState) Score {
	var score Score
	add := func(label string, points int) {
		if points == 0 {
			return
		}
		score.Breakdown = append(score.Breakdown, ScoreLine{Label: label, Points: points})
		score.Total += points
	}

	won := s.Phase == PhaseWin
	if won {
		add("Reached destination", 500)
	} else {
		add("Distance covered", int(math.Round(s.Progress()*200)))
	}

	add("Supplies remaining", int(math.Round(s.Resources.Average())))

	if won && s.Day > 0 {
		idealDays := math.Ceil(s.TotalDist / baseMilesPerDay)
		add("Speed bonus", int(math.Round(idealDays/float64(s.Day)*100)))
	}

	add("Family survived", AliveCount(s.Family)*50)
	add("Hardships endured", s.EventCount*15)

	return score
}
