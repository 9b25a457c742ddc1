package game

import "testing"

func TestSelectEncounterRespectsTerrain(t *testing.T) {
	defs := []EncounterDefinition{
		{Text: "anywhere", Terrain: []Terrain{}},
		{Text: "desert only", Terrain: []Terrain{TerrainDesert}},
		{Text: "wetland only", Terrain: []Terrain{TerrainWetland}},
	}
	rng := seededRNG(5)

	for i := 0; i < 50; i++ {
		enc := selectEncounter(defs, TerrainDesert, rng)
		if enc == nil {
			t.Fatal("eligible pool should never come up empty")
		}
		if enc.Text == "wetland only" {
			t.Fatal("picked an encounter outside its terrain")
		}
	}
}

func TestSelectEncounterEmptyPool(t *testing.T) {
	defs := []EncounterDefinition{
		{Text: "urban only", Terrain: []Terrain{TerrainUrban}},
	}
	if enc := selectEncounter(defs, TerrainDesert, seededRNG(1)); enc != nil {
		t.Errorf("encounter = %+v, want nil when nothing is eligible", enc)
	}
}

func TestBuiltinEncountersWellFormed(t *testing.T) {
	for i, enc := range builtinEncounters() {
		if enc.Text == "" {
			t.Errorf("encounter %d has no text", i)
		}
	}
}

func TestBuiltinContentPassesValidation(t *testing.T) {
	pack := ContentPack{Events: builtinEvents(), Encounters: builtinEncounters()}
	if err := pack.Validate(); err != nil {
		t.Errorf("builtin content failed its own validation: %v", err)
	}
}
