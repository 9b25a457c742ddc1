package game

import "fmt"

// TravelOutcome is what one call to Travel produced, for rendering.
type TravelOutcome struct {
	Day       DayResult
	Narrative string
	Won       bool
	Lost      bool
	LoseText  string
}

// Travel advances one day. Legal only while traveling; any other phase
// returns a zero outcome.
func (s *JourneyState) Travel() TravelOutcome {
	if s.Phase != PhaseTraveling {
		return TravelOutcome{}
	}

	day := TravelTick(s)
	out := TravelOutcome{Day: day}
	out.Narrative = RandomTravelNarrative(day.Terrain, s.rng)

	if day.ReachedWaypoint && !day.Arrived {
		s.addJournal(fmt.Sprintf("Day %d: Reached %s. %s", s.Day, day.WaypointName, RandomArrivalNarrative(s.rng)))
	}

	if day.FailureReason != "" {
		s.Phase = PhaseLose
		out.Lost = true
		out.LoseText = day.FailureReason
		s.addJournal(fmt.Sprintf("Day %d: %s", s.Day, day.FailureReason))
		return out
	}

	if day.Arrived {
		s.Phase = PhaseWin
		out.Won = true
		s.addJournal(fmt.Sprintf("Day %d: %s. The family made it. A new life begins.", s.Day, s.Destination.Name))
		return out
	}

	if day.Encounter != nil {
		s.addJournal(fmt.Sprintf("Day %d: %s", s.Day, day.Encounter.Text))
	}

	if day.TriggerEvent {
		event := SelectEvent(s.Events, day.Terrain, s.WeatherRisk, s.Inventory, s.RecentPerils, s.rng)
		s.CurrentEvent = &event
		s.EventCount++
		s.recordPeril(event.PerilType)
		s.Phase = PhaseEvent
		s.addJournal(fmt.Sprintf("Day %d: %s", s.Day, event.Name))
	}

	return out
}

// MakeChoice resolves the pending event's chosen option. If the choice
// launches a mini-game, the journey suspends in PhaseMiniGame and the
// caller must feed the arcade result back through ResolveMiniGame.
func (s *JourneyState) MakeChoice(choiceIndex int) (ChoiceResult, bool) {
	if s.Phase != PhaseEvent || s.CurrentEvent == nil {
		return ChoiceResult{}, false
	}

	if choiceIndex >= 0 && choiceIndex < len(s.CurrentEvent.Choices) {
		if s.CurrentEvent.Choices[choiceIndex].MiniGame != MiniGameNone {
			s.pendingIdx = choiceIndex
			s.Phase = PhaseMiniGame
			return ChoiceResult{}, false
		}
	}

	result := ResolveChoice(s, *s.CurrentEvent, choiceIndex)
	s.finishEvent(result)
	return result, true
}

// PendingMiniGame reports which arcade engine the suspended choice needs.
func (s *JourneyState) PendingMiniGame() MiniGameKind {
	if s.Phase != PhaseMiniGame || s.CurrentEvent == nil {
		return MiniGameNone
	}
	return s.CurrentEvent.Choices[s.pendingIdx].MiniGame
}

// ResolveMiniGame folds an arcade result back into the journey. The
// arcade effects replace the suspended choice's baseline outcome; the
// death roll still applies to whatever health damage came back.
func (s *JourneyState) ResolveMiniGame(result MiniGameResult) ChoiceResult {
	if s.Phase != PhaseMiniGame || s.CurrentEvent == nil {
		return ChoiceResult{}
	}

	effects := result.Effects.Clone()
	s.Resources.Apply(effects)

	out := ChoiceResult{Narrative: result.Narrative, Effects: effects}
	if death := resolveDeath(s, s.CurrentEvent.PerilType, effects[ResourceHealth]); death != nil {
		out.Death = death
	}

	s.finishEvent(out)
	return out
}

// finishEvent journals the result, tallies deaths, and moves to the
// result phase or straight to defeat if a gauge bottomed out.
func (s *JourneyState) finishEvent(result ChoiceResult) {
	s.addJournal(fmt.Sprintf("Day %d: %s", s.Day, result.Narrative))
	if result.Death != nil {
		s.Deaths++
		s.addJournal(fmt.Sprintf("Day %d: %s", s.Day, result.Death.Message))
	}

	s.CurrentEvent = nil
	s.pendingIdx = 0

	if reason, failed := s.Resources.FailureReason(); failed {
		s.Phase = PhaseLose
		s.addJournal(fmt.Sprintf("Day %d: %s", s.Day, reason))
		return
	}
	s.Phase = PhaseResult
}

// ContinueJourney leaves the result screen and resumes travel.
func (s *JourneyState) ContinueJourney() {
	if s.Phase != PhaseResult {
		return
	}
	s.Phase = PhaseTraveling
}
