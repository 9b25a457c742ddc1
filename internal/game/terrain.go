package game

// Terrain tags drive burn-rate modifiers, pace penalties and
// event/encounter eligibility.
type Terrain string

const (
	TerrainCoastal  Terrain = "coastal"
	TerrainWetland  Terrain = "wetland"
	TerrainForest   Terrain = "forest"
	TerrainPlains   Terrain = "plains"
	TerrainDesert   Terrain = "desert"
	TerrainMountain Terrain = "mountain"
	TerrainHills    Terrain = "hills"
	TerrainUrban    Terrain = "urban"
	TerrainValley   Terrain = "valley"
)

// Burn-rate multipliers per terrain. Higher is harsher.
var terrainModifiers = map[Terrain]map[Resource]float64{
	TerrainCoastal:  {ResourceFuel: 1.0, ResourceWater: 1.2, ResourceFood: 1.0, ResourceHealth: 1.0, ResourceMorale: 1.0},
	TerrainWetland:  {ResourceFuel: 1.3, ResourceWater: 0.8, ResourceFood: 1.0, ResourceHealth: 1.2, ResourceMorale: 1.1},
	TerrainForest:   {ResourceFuel: 1.1, ResourceWater: 0.9, ResourceFood: 0.8, ResourceHealth: 1.0, ResourceMorale: 0.8},
	TerrainPlains:   {ResourceFuel: 0.9, ResourceWater: 1.1, ResourceFood: 1.0, ResourceHealth: 1.0, ResourceMorale: 1.0},
	TerrainDesert:   {ResourceFuel: 1.1, ResourceWater: 1.8, ResourceFood: 1.0, ResourceHealth: 1.3, ResourceMorale: 1.3},
	TerrainMountain: {ResourceFuel: 1.4, ResourceWater: 1.0, ResourceFood: 1.1, ResourceHealth: 1.1, ResourceMorale: 0.9},
	TerrainHills:    {ResourceFuel: 1.2, ResourceWater: 1.0, ResourceFood: 1.0, ResourceHealth: 1.0, ResourceMorale: 0.9},
	TerrainUrban:    {ResourceFuel: 1.2, ResourceWater: 1.0, ResourceFood: 0.9, ResourceHealth: 0.9, ResourceMorale: 1.2},
	TerrainValley:   {ResourceFuel: 0.9, ResourceWater: 1.0, ResourceFood: 0.9, ResourceHealth: 1.0, ResourceMorale: 0.9},
}

// TerrainModifier returns the burn multiplier table for a terrain,
// defaulting to plains for unknown tags.
func TerrainModifier(t Terrain) map[Resource]float64 {
	if mods, ok := terrainModifiers[t]; ok {
		return mods
	}
	return terrainModifiers[TerrainPlains]
}

// PacePenalty returns the miles-per-day multiplier for the slower terrains.
func PacePenalty(t Terrain) float64 {
	switch t {
	case TerrainMountain:
		return 0.7
	case TerrainDesert:
		return 0.85
	case TerrainWetland:
		return 0.8
	default:
		return 1.0
	}
}

func terrainListContains(list []Terrain, t Terrain) bool {
	for _, candidate := range list {
		if candidate == t {
			return true
		}
	}
	return false
}
