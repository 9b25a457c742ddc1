package game

import "math/rand/v2"

// EncounterDefinition is the lightweight non-modal variant of an event:
// flavor text and a small immediate delta, no choices. An empty terrain
// list means the encounter can fire anywhere.
type EncounterDefinition struct {
	Text    string    `yaml:"text"`
	Effects Delta     `yaml:"effects,omitempty"`
	Terrain []Terrain `yaml:"terrain"`
}

func builtinEncounters() []EncounterDefinition {
	return []EncounterDefinition{
		// Positive finds
		{Text: "Found a half-full jerry can wedged under a wrecked truck.", Effects: Delta{ResourceFuel: 3}, Terrain: []Terrain{}},
		{Text: "A hand-painted sign points to a spring. The water tests clean.", Effects: Delta{ResourceWater: 4}, Terrain: []Terrain{TerrainMountain, TerrainHills, TerrainForest}},
		{Text: "Canned goods in an overturned delivery van. Still sealed.", Effects: Delta{ResourceFood: 3}, Terrain: []Terrain{}},
		{Text: "A roadside chapel offers shade and silence. Everyone breathes easier.", Effects: Delta{ResourceMorale: 4}, Terrain: []Terrain{TerrainPlains, TerrainDesert, TerrainHills}},
		{Text: "Wildflowers push through the cracked highway median. Life persists.", Effects: Delta{ResourceMorale: 3}, Terrain: []Terrain{TerrainPlains, TerrainValley, TerrainHills}},
		{Text: "An abandoned pharmacy — a few blister packs of aspirin left on the shelf.", Effects: Delta{ResourceHealth: 3}, Terrain: []Terrain{TerrainUrban}},
		{Text: "Solar panels still working on a deserted house. You charge your batteries.", Effects: Delta{ResourceMorale: 2}, Terrain: []Terrain{TerrainDesert, TerrainPlains}},
		{Text: "A friendly dog joins the family for a few miles. Morale improves.", Effects: Delta{ResourceMorale: 5}, Terrain: []Terrain{}},

		// Negative encounters
		{Text: "A pothole buckles the rim. You lose time hammering it back into shape.", Effects: Delta{ResourceFuel: -2}, Terrain: []Terrain{}},
		{Text: "Bad smell from the water jug. You dump a portion just to be safe.", Effects: Delta{ResourceWater: -3}, Terrain: []Terrain{}},
		{Text: "Rats got into the food bag overnight. Some of it is ruined.", Effects: Delta{ResourceFood: -3}, Terrain: []Terrain{TerrainUrban, TerrainWetland}},
		{Text: "A stretch of road with no shade. The heat saps everyone.", Effects: Delta{ResourceHealth: -2}, Terrain: []Terrain{TerrainDesert, TerrainPlains}},
		{Text: "Graffiti on an overpass: \"TURN BACK.\" Nobody talks for a while.", Effects: Delta{ResourceMorale: -3}, Terrain: []Terrain{TerrainUrban}},
		{Text: "Detour around a collapsed overpass costs extra fuel.", Effects: Delta{ResourceFuel: -3}, Terrain: []Terrain{TerrainUrban, TerrainMountain}},
		{Text: "A dust devil coats everything in grit. Eyes sting, tempers flare.", Effects: Delta{ResourceMorale: -2, ResourceHealth: -1}, Terrain: []Terrain{TerrainDesert, TerrainPlains}},
		{Text: "Mosquito swarm at a rest stop. Everyone itches and nobody sleeps.", Effects: Delta{ResourceHealth: -2, ResourceMorale: -1}, Terrain: []Terrain{TerrainWetland, TerrainCoastal}},

		// Neutral / atmospheric
		{Text: "Passed a convoy heading the other direction. They didn't stop.", Effects: Delta{}, Terrain: []Terrain{}},
		{Text: "An old radio tower blinks red in the dark. No signal, just light.", Effects: Delta{}, Terrain: []Terrain{TerrainPlains, TerrainHills}},
		{Text: "Mile marker 404. Someone scratched \"NOT FOUND\" underneath.", Effects: Delta{ResourceMorale: 1}, Terrain: []Terrain{}},
		{Text: "A child spots a hawk circling overhead. First wildlife in days.", Effects: Delta{ResourceMorale: 2}, Terrain: []Terrain{TerrainMountain, TerrainHills, TerrainValley}},
	}
}

// selectEncounter picks uniformly among terrain-eligible encounters.
func selectEncounter(defs []EncounterDefinition, terrain Terrain, rng *rand.Rand) *EncounterDefinition {
	pool := make([]int, 0, len(defs))
	for i, def := range defs {
		if len(def.Terrain) == 0 || terrainListContains(def.Terrain, terrain) {
			pool = append(pool, i)
		}
	}
	if len(pool) == 0 {
		return nil
	}
	chosen := defs[pool[rng.IntN(len(pool))]]
	return &chosen
}
