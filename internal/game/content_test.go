package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestContentPackValidate(t *testing.T) {
	good := EventDefinition{
		ID:              "dust_devil",
		Name:            "Dust Devil",
		BaseProbability: 0.2,
		Choices:         []Choice{{Text: "Drive around", Outcome: Outcome{Narrative: "ok"}}},
	}

	tests := []struct {
		name    string
		pack    ContentPack
		wantErr string
	}{
		{"valid", ContentPack{Events: []EventDefinition{good}}, ""},
		{
			"missing id",
			ContentPack{Events: []EventDefinition{{BaseProbability: 0.2, Choices: good.Choices}}},
			"missing id",
		},
		{
			"duplicate id",
			ContentPack{Events: []EventDefinition{good, good}},
			"duplicate id",
		},
		{
			"zero probability",
			ContentPack{Events: []EventDefinition{{ID: "x", Choices: good.Choices}}},
			"base_probability",
		},
		{
			"no choices",
			ContentPack{Events: []EventDefinition{{ID: "x", BaseProbability: 0.2}}},
			"at least one choice",
		},
		{
			"choice without text",
			ContentPack{Events: []EventDefinition{{ID: "x", BaseProbability: 0.2, Choices: []Choice{{}}}}},
			"missing text",
		},
		{
			"unknown minigame",
			ContentPack{Events: []EventDefinition{{ID: "x", BaseProbability: 0.2, Choices: []Choice{{Text: "go", MiniGame: "PINBALL"}}}}},
			"unknown minigame",
		},
		{
			"bonus without requirement",
			ContentPack{Events: []EventDefinition{{ID: "x", BaseProbability: 0.2, Choices: []Choice{{Text: "go", Outcome: Outcome{ItemBonus: Delta{ResourceFuel: 5}}}}}}},
			"item_bonus without item_required",
		},
		{
			"encounter without text",
			ContentPack{Encounters: []EncounterDefinition{{}}},
			"missing text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pack.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadContentPack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	raw := `events:
  - id: ash_rain
    name: Ash Rain
    peril_type: wildfire
    base_probability: 0.25
    terrain_bonus: [forest]
    description: Grey flakes settle on the windshield.
    choices:
      - text: Keep driving
        outcome:
          effects:
            health: -5
          narrative: You breathe through rags and keep moving.
      - text: Shelter until it passes
        minigame: SHELTER
encounters:
  - text: A burned-out school bus lists on the shoulder.
    effects:
      morale: -2
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	pack, err := LoadContentPack(path)
	if err != nil {
		t.Fatalf("LoadContentPack() error = %v", err)
	}

	if len(pack.Events) != 1 {
		t.Fatalf("events = %d, want 1", len(pack.Events))
	}
	event := pack.Events[0]
	if event.ID != "ash_rain" || event.PerilType != PerilWildfire {
		t.Errorf("event = %+v", event)
	}
	if !terrainListContains(event.TerrainBonus, TerrainForest) {
		t.Errorf("terrain bonus = %v, want forest", event.TerrainBonus)
	}
	if event.Choices[0].Outcome.Effects[ResourceHealth] != -5 {
		t.Errorf("effects = %v", event.Choices[0].Outcome.Effects)
	}
	if event.Choices[1].MiniGame != MiniGameShelter {
		t.Errorf("minigame = %v, want shelter", event.Choices[1].MiniGame)
	}
	if len(pack.Encounters) != 1 || pack.Encounters[0].Effects[ResourceMorale] != -2 {
		t.Errorf("encounters = %+v", pack.Encounters)
	}
}

func TestLoadContentPackRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	if err := os.WriteFile(path, []byte("events: {not a list"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadContentPack(path); err == nil {
		t.Error("malformed YAML should fail to load")
	}
}

func TestLoadContentPackMissingFile(t *testing.T) {
	if _, err := LoadContentPack(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file should fail to load")
	}
}

func TestContentPackApply(t *testing.T) {
	s, _ := NewJourney(validConfig())
	builtinEventCount := len(s.Events)
	builtinEncounterCount := len(s.Encounters)

	custom := ContentPack{
		Events: []EventDefinition{{
			ID:              "only",
			BaseProbability: 1,
			Choices:         []Choice{{Text: "go"}},
		}},
	}
	custom.Apply(s)

	if len(s.Events) != 1 || s.Events[0].ID != "only" {
		t.Errorf("events after apply = %d, want the overlay", len(s.Events))
	}
	if len(s.Encounters) != builtinEncounterCount {
		t.Error("empty encounter section must keep the builtins")
	}

	empty := ContentPack{}
	fresh, _ := NewJourney(validConfig())
	empty.Apply(fresh)
	if len(fresh.Events) != builtinEventCount {
		t.Error("empty pack must not clear builtin events")
	}
}
