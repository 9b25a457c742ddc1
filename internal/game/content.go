package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ContentPack is an optional YAML overlay for the builtin event and
// encounter tables. Empty sections keep the builtins.
type ContentPack struct {
	Events     []EventDefinition     `yaml:"events"`
	Encounters []EncounterDefinition `yaml:"encounters"`
}

// LoadContentPack reads and validates a YAML content pack.
func LoadContentPack(path string) (*ContentPack, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content pack: %w", err)
	}

	var pack ContentPack
	if err := yaml.Unmarshal(raw, &pack); err != nil {
		return nil, fmt.Errorf("parse content pack: %w", err)
	}
	if err := pack.Validate(); err != nil {
		return nil, err
	}
	return &pack, nil
}

// Validate rejects packs that would break selection or resolution.
// Bad content fails at load time, not mid-journey.
func (p *ContentPack) Validate() error {
	seen := map[string]bool{}
	for i, event := range p.Events {
		if event.ID == "" {
			return fmt.Errorf("event %d: missing id", i)
		}
		if seen[event.ID] {
			return fmt.Errorf("event %q: duplicate id", event.ID)
		}
		seen[event.ID] = true

		if event.BaseProbability <= 0 {
			return fmt.Errorf("event %q: base_probability must be positive", event.ID)
		}
		if len(event.Choices) == 0 {
			return fmt.Errorf("event %q: needs at least one choice", event.ID)
		}
		for j, choice := range event.Choices {
			if choice.Text == "" {
				return fmt.Errorf("event %q choice %d: missing text", event.ID, j)
			}
			switch choice.MiniGame {
			case MiniGameNone, MiniGameBarricade, MiniGameShelter:
			default:
				return fmt.Errorf("event %q choice %d: unknown minigame %q", event.ID, j, choice.MiniGame)
			}
			if choice.Outcome.ItemBonus != nil && choice.Outcome.ItemRequired == "" {
				return fmt.Errorf("event %q choice %d: item_bonus without item_required", event.ID, j)
			}
		}
	}

	for i, enc := range p.Encounters {
		if enc.Text == "" {
			return fmt.Errorf("encounter %d: missing text", i)
		}
	}
	return nil
}

// Apply overlays non-empty pack sections onto a journey's content tables.
func (p *ContentPack) Apply(s *JourneyState) {
	if len(p.Events) > 0 {
		s.Events = p.Events
	}
	if len(p.Encounters) > 0 {
		s.Encounters = p.Encounters
	}
}
