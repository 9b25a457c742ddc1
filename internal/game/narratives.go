package game

import (
	"fmt"
	"math/rand/v2"
)

var travelNarratives = map[Terrain][]string{
	TerrainCoastal: {
		"Salt wind off the water. Abandoned beach houses lean into the dunes.",
		"The highway hugs a coastline that has moved inland since the maps were printed.",
		"Gulls wheel over a drowned marina. You keep the windows up against the brine.",
	},
	TerrainWetland: {
		"Cypress knees poke through water that covers the old shoulder lane.",
		"The air is thick enough to chew. Frogs drone from both sides of the causeway.",
		"Mile after mile of flooded fields, fence posts marking where farms used to be.",
	},
	TerrainForest: {
		"Green tunnel. The canopy closes over the road and the temperature drops.",
		"Burn scars alternate with living forest. Some stretches smell of char, some of pine.",
		"A deer watches from the tree line, unbothered. The woods are reclaiming things.",
	},
	TerrainPlains: {
		"Horizon to horizon of grass bending in the wind. The road runs straight as a ruler.",
		"Grain elevators stand like sentinels over towns that emptied years ago.",
		"Big sky country. You can see weather coming from fifty miles out.",
	},
	TerrainDesert: {
		"Heat shimmer turns the blacktop liquid. Nothing moves but the dust.",
		"Saguaro shadows stretch long across the road. The thermometer keeps climbing.",
		"A billboard bleached white by the sun advertises a lake that no longer exists.",
	},
	TerrainMountain: {
		"Switchbacks climb into thin air. The engine labors on every grade.",
		"Snowmelt streams cut silver lines down the rock faces above the road.",
		"A runaway truck ramp, a guardrail bent outward, a long way down. You drive carefully.",
	},
	TerrainHills: {
		"The road rolls like a slow sea. Each crest reveals another valley of farms.",
		"Kudzu has swallowed a barn whole. Green shapes where buildings used to be.",
		"Low fog pools in the hollows. You drive in and out of cloud all morning.",
	},
	TerrainUrban: {
		"Empty towers glitter in the sun. Traffic lights cycle for nobody.",
		"You thread between stalled cars on the interstate loop. Somebody got out in a hurry.",
		"Graffiti covers the sound barriers. Most of it is directions. Some of it is goodbye.",
	},
	TerrainValley: {
		"Orchard rows flick past, some tended, most gone wild.",
		"The valley floor is a quilt of brown and green, rationed water deciding which is which.",
		"Irrigation rigs stand frozen mid-rotation over dead fields.",
	},
}

var arrivalNarratives = []string{
	"Checkpoint lights ahead. A volunteer waves you through with a tired smile.",
	"The town is intact. Children on bicycles. It takes a moment to remember this is normal.",
	"You roll past a water tower with fresh paint. Somebody here still believes in maintenance.",
}

var gameOverNarratives = []string{
	"The journey ends here, short of safety. Not every road leads home.",
	"You did everything you could. The road asked for more than anyone had.",
	"Somewhere behind you, the life you left. Ahead, nothing you can reach.",
}

// RandomTravelNarrative picks flavor text for a day of driving through the
// given terrain, falling back to plains lines for unknown terrain.
func RandomTravelNarrative(terrain Terrain, rng *rand.Rand) string {
	pool, ok := travelNarratives[terrain]
	if !ok {
		pool = travelNarratives[TerrainPlains]
	}
	return pool[rng.IntN(len(pool))]
}

// RandomArrivalNarrative picks flavor text for reaching a waypoint.
func RandomArrivalNarrative(rng *rand.Rand) string {
	return arrivalNarratives[rng.IntN(len(arrivalNarratives))]
}

// RandomGameOverNarrative picks a closing line for a failed journey.
func RandomGameOverNarrative(rng *rand.Rand) string {
	return gameOverNarratives[rng.IntN(len(gameOverNarratives))]
}

var deathNarratives = map[PerilType][]string{
	PerilWildfire: {
		"%s breathed too much smoke in the chaos. There was nothing anyone could do.",
		"The fire moved faster than %s. The family drives on with one empty seat.",
	},
	PerilHurricane: {
		"Flying debris found %s in the storm. The family buries them at the roadside.",
		"The water took %s before anyone could reach them.",
	},
	PerilFlood: {
		"The current pulled %s under. The river gives nothing back.",
		"%s slipped on the crossing. By the time hands found them, it was too late.",
	},
	PerilHeat: {
		"The heat took %s quietly, in their sleep. Nobody heard a thing.",
		"%s collapsed in the sun and never woke. The desert keeps its own count.",
	},
	PerilTornado: {
		"The funnel passed within yards. %s was not fast enough to the ditch.",
	},
	PerilHealth: {
		"The fever never broke. %s slipped away in the back seat before dawn.",
		"Without real medicine, %s's condition won. The family marks the mile.",
	},
	PerilSocial: {
		"The confrontation turned violent. %s didn't make it back to the car.",
	},
	PerilMechanical: {
		"The accident happened fast. %s was gone before the dust settled.",
	},
}

var genericDeathNarratives = []string{
	"The road claimed %s. The family carries their memory the rest of the way.",
	"%s didn't survive the day. Grief rides along in silence.",
}

// deathNarrative formats a death line for the peril category, substituting
// the member's name, with a generic pool for categories lacking lines.
func deathNarrative(peril PerilType, name string, rng *rand.Rand) string {
	pool, ok := deathNarratives[peril]
	if !ok || len(pool) == 0 {
		pool = genericDeathNarratives
	}
	return fmt.Sprintf(pool[rng.IntN(len(pool))], name)
}
