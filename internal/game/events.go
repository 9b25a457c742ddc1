package game

import (
	"math"
	"math/rand/v2"
)

// PerilType is the thematic bucket of an event, used for selection
// weighting and death-narrative lookup.
type PerilType string

const (
	PerilWildfire       PerilType = "wildfire"
	PerilHurricane      PerilType = "hurricane"
	PerilFlood          PerilType = "flood"
	PerilHeat           PerilType = "heat"
	PerilTornado        PerilType = "tornado"
	PerilInfrastructure PerilType = "infrastructure"
	PerilHealth         PerilType = "health"
	PerilMechanical     PerilType = "mechanical"
	PerilSocial         PerilType = "social"
	PerilPositive       PerilType = "positive"
)

// MiniGameKind marks a choice that hands control to an arcade engine
// instead of resolving immediately.
type MiniGameKind string

const (
	MiniGameNone      MiniGameKind = ""
	MiniGameBarricade MiniGameKind = "BARRICADE"
	MiniGameShelter   MiniGameKind = "SHELTER"
)

// Outcome describes what a choice does to the journey. ItemRequired names
// an inventory item that, when held, merges ItemBonus onto Effects and
// swaps the narrative for ItemNarrative.
type Outcome struct {
	Effects       Delta  `yaml:"effects"`
	ItemRequired  ItemID `yaml:"item_required,omitempty"`
	ItemBonus     Delta  `yaml:"item_bonus,omitempty"`
	Narrative     string `yaml:"narrative"`
	ItemNarrative string `yaml:"item_narrative,omitempty"`
}

type Choice struct {
	Text     string       `yaml:"text"`
	MiniGame MiniGameKind `yaml:"minigame,omitempty"`
	Outcome  Outcome      `yaml:"outcome"`
}

// EventDefinition is static content describing a peril or reward.
type EventDefinition struct {
	ID              string    `yaml:"id"`
	Name            string    `yaml:"name"`
	PerilType       PerilType `yaml:"peril_type"`
	BaseProbability float64   `yaml:"base_probability"`
	TerrainBonus    []Terrain `yaml:"terrain_bonus"`
	Description     string    `yaml:"description"`
	Choices         []Choice  `yaml:"choices"`
}

// MiniGameResult is the common contract both arcade engines report back.
// It is folded into resources exactly like an event outcome.
type MiniGameResult struct {
	Survived  bool   `json:"survived"`
	Narrative string `json:"narrative"`
	Effects   Delta  `json:"effects"`
}

// Recency suppression factors: most recent repeat of a peril type is
// suppressed hardest, tapering across the rolling history window.
func recencyFactor(recent []PerilType, peril PerilType) float64 {
	lastIdx := -1
	for i, p := range recent {
		if p == peril {
			lastIdx = i
		}
	}
	if lastIdx == -1 {
		return 1
	}
	switch len(recent) - lastIdx {
	case 1:
		return 0.05
	case 2:
		return 0.3
	default:
		return 0.6
	}
}

// SelectEvent performs weighted sampling over the definition list.
// Weights start from base probability and are shaped by peril recency,
// terrain affinity, per-category weather risk, and the radio intel bonus
// for positive events. Falls back to the first definition if the
// cumulative roll leaves no remainder.
func SelectEvent(defs []EventDefinition, terrain Terrain, risk WeatherRisk, inventory []ItemDefinition, recent []PerilType, rng *rand.Rand) EventDefinition {
	if len(defs) == 0 {
		return EventDefinition{}
	}

	weights := make([]float64, len(defs))
	total := 0.0
	intel := hasItem(inventory, ItemRadio)

	for i, def := range defs {
		weight := def.BaseProbability
		weight *= recencyFactor(recent, def.PerilType)
		if terrainListContains(def.TerrainBonus, terrain) {
			weight *= 1.8
		}
		if boost := risk.CategoryBoost(def.PerilType); boost > 0 {
			weight *= 1 + boost
		}
		if intel && def.PerilType == PerilPositive {
			weight *= 1.3
		}
		weights[i] = weight
		total += weight
	}

	roll := rng.Float64() * total
	for i, weight := range weights {
		roll -= weight
		if roll <= 0 {
			return defs[i]
		}
	}
	return defs[0]
}

// DeathReport describes a party-member death produced by an outcome.
type DeathReport struct {
	Member  string `json:"member"`
	Message string `json:"message"`
}

// ChoiceResult is the resolved form of an event choice.
type ChoiceResult struct {
	Narrative string       `json:"narrative"`
	Effects   Delta        `json:"effects"`
	Death     *DeathReport `json:"death,omitempty"`
}

// Health damage beyond this threshold puts a non-leader member at risk.
const deathHealthThreshold = -15

const deathMoralePenalty = -10

// ResolveChoice applies the chosen outcome to the journey state. An
// invalid index resolves to a neutral no-op rather than an error.
func ResolveChoice(s *JourneyState, event EventDefinition, choiceIndex int) ChoiceResult {
	if choiceIndex < 0 || choiceIndex >= len(event.Choices) {
		return ChoiceResult{Narrative: "Nothing happens.", Effects: Delta{}}
	}

	outcome := event.Choices[choiceIndex].Outcome
	effects := outcome.Effects.Clone()
	narrative := outcome.Narrative

	if outcome.ItemRequired != "" && hasItem(s.Inventory, outcome.ItemRequired) {
		effects.Merge(outcome.ItemBonus)
		if outcome.ItemNarrative != "" {
			narrative = outcome.ItemNarrative
		}
	}

	// Resourceful leaders squeeze more out of reward events. Only positive
	// deltas scale; penalties are never amplified.
	if event.PerilType == PerilPositive {
		if bonus := FamilyPassives(s.Family).SupplyBonus; bonus > 1 {
			for res, value := range effects {
				if value > 0 {
					effects[res] = math.Round(value * bonus)
				}
			}
		}
	}

	s.Resources.Apply(effects)

	result := ChoiceResult{Narrative: narrative, Effects: effects}
	if death := resolveDeath(s, event.PerilType, effects[ResourceHealth]); death != nil {
		result.Death = death
	}
	return result
}

// resolveDeath rolls for a party-member death after a severe health hit.
// The leader is never selected and the last living member is spared, so
// the party can always limp on.
func resolveDeath(s *JourneyState, peril PerilType, healthDelta float64) *DeathReport {
	if healthDelta >= deathHealthThreshold {
		return nil
	}
	if AliveCount(s.Family) <= 1 {
		return nil
	}

	severity := deathHealthThreshold - healthDelta // positive beyond threshold
	probability := clampFloat(severity/50, 0, 0.85)
	if s.rng.Float64() >= probability {
		return nil
	}

	candidates := make([]int, 0, len(s.Family))
	for i, member := range s.Family {
		if member.Alive && !member.IsLeader {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	victim := &s.Family[candidates[s.rng.IntN(len(candidates))]]
	victim.Alive = false
	victim.Health = 0
	s.Resources.Adjust(ResourceMorale, deathMoralePenalty)

	return &DeathReport{
		Member:  victim.Name,
		Message: deathNarrative(peril, victim.Name, s.rng),
	}
}
