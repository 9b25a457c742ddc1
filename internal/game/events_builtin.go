package game

// Built-in event content. Numbers here are game balance; treat edits as
// balance changes, not refactors.
func builtinEvents() []EventDefinition {
	return []EventDefinition{
		{
			ID:              "wildfire",
			Name:            "Wildfire",
			PerilType:       PerilWildfire,
			BaseProbability: 0.12,
			TerrainBonus:    []Terrain{TerrainForest, TerrainValley, TerrainMountain},
			Description:     "A wall of orange light crests the ridge ahead. Smoke fills the cabin and the road disappears in haze.",
			Choices: []Choice{
				{
					Text: "Drive through the smoke",
					Outcome: Outcome{
						Effects:   Delta{ResourceHealth: -22, ResourceFuel: -12},
						Narrative: "You gun it through the flames. The heat cracks the windshield but you make it through, coughing and shaken.",
					},
				},
				{
					Text: "Detour around the fire",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: -20, ResourceFood: -5},
						Narrative: "You backtrack 40 miles on dirt roads. It costs fuel and time, but everyone is safe.",
					},
				},
				{
					Text:     "Wait for the fire to pass",
					MiniGame: MiniGameShelter,
					Outcome: Outcome{
						Effects:   Delta{ResourceWater: -10, ResourceFood: -8, ResourceMorale: -10},
						Narrative: "You shelter in a concrete underpass for two days. Supplies dwindle but the fire moves on.",
					},
				},
			},
		},
		{
			ID:              "hurricane",
			Name:            "Hurricane",
			PerilType:       PerilHurricane,
			BaseProbability: 0.08,
			TerrainBonus:    []Terrain{TerrainCoastal, TerrainWetland},
			Description:     "The sky turns green-black. Wind shrieks through the vehicle. A hurricane is making landfall.",
			Choices: []Choice{
				{
					Text:     "Shelter in a sturdy building",
					MiniGame: MiniGameShelter,
					Outcome: Outcome{
						Effects:       Delta{ResourceFood: -10, ResourceWater: -8},
						ItemRequired:  ItemTarpShelter,
						ItemBonus:     Delta{ResourceFood: 5, ResourceMorale: 8},
						Narrative:     "You find an old fire station and ride out the storm. Two days lost, but the family is safe.",
						ItemNarrative: "The tarp seals the broken windows. Your shelter kit turns the fire station into a proper camp. Morale holds.",
					},
				},
				{
					Text: "Try to outrun it",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: -30, ResourceHealth: -18},
						Narrative: "You floor it north. Flying debris dents the car and fuel burns fast, but you escape the eye.",
					},
				},
			},
		},
		{
			ID:              "flood",
			Name:            "Flash Flood",
			PerilType:       PerilFlood,
			BaseProbability: 0.1,
			TerrainBonus:    []Terrain{TerrainWetland, TerrainCoastal, TerrainPlains},
			Description:     "Brown water surges across the highway. The road ahead is submerged — and rising.",
			Choices: []Choice{
				{
					Text: "Ford the water slowly",
					Outcome: Outcome{
						Effects:   Delta{ResourceHealth: -18, ResourceFuel: -8},
						Narrative: "Water reaches the doors. The engine sputters but holds. You crawl through, soaked and rattled.",
					},
				},
				{
					Text:     "Find higher ground and wait",
					MiniGame: MiniGameShelter,
					Outcome: Outcome{
						Effects:   Delta{ResourceFood: -10, ResourceWater: -5, ResourceMorale: -8},
						Narrative: "You camp on a hill for a day. The waters recede by morning, revealing a mud-caked road.",
					},
				},
				{
					Text: "Search for an alternate bridge",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: -15},
						Narrative: "A local points you to an old railroad bridge. It holds. You cross safely but burn extra fuel.",
					},
				},
			},
		},
		{
			ID:              "drought",
			Name:            "Drought Zone",
			PerilType:       PerilHeat,
			BaseProbability: 0.1,
			TerrainBonus:    []Terrain{TerrainDesert, TerrainPlains},
			Description:     "The landscape is cracked and dead. Every gas station is dry. Water prices are scrawled in desperate handwriting.",
			Choices: []Choice{
				{
					Text: "Trade fuel for water",
					Outcome: Outcome{
						Effects:       Delta{ResourceFuel: -15, ResourceWater: 10},
						ItemRequired:  ItemWaterPurifier,
						ItemBonus:     Delta{ResourceWater: 10, ResourceFuel: 8},
						Narrative:     "A roadside trader takes your fuel at a brutal exchange rate, but your canteens are full again.",
						ItemNarrative: "You purify creek water on-site instead. The trader sees the purifier and offers fuel for a turn with it. Fair deal.",
					},
				},
				{
					Text: "Push through without stopping",
					Outcome: Outcome{
						Effects:   Delta{ResourceWater: -25, ResourceHealth: -12},
						Narrative: "You ration sips and drive in silence. By nightfall, lips are cracked and heads are pounding.",
					},
				},
			},
		},
		{
			ID:              "heatwave",
			Name:            "Extreme Heatwave",
			PerilType:       PerilHeat,
			BaseProbability: 0.12,
			TerrainBonus:    []Terrain{TerrainDesert, TerrainUrban, TerrainPlains},
			Description:     "The dashboard thermometer reads 122°F. The asphalt shimmers. Air conditioning died an hour ago.",
			Choices: []Choice{
				{
					Text: "Drive at night only",
					Outcome: Outcome{
						Effects:   Delta{ResourceMorale: -5, ResourceFood: -5},
						Narrative: "You park under an overpass until sunset. Night driving is eerie but cool. Progress is slow.",
					},
				},
				{
					Text: "Keep driving — push through",
					Outcome: Outcome{
						Effects:   Delta{ResourceHealth: -22, ResourceWater: -18},
						Narrative: "Someone faints in the back seat. You pour precious water over their neck. The heat is relentless.",
					},
				},
				{
					Text:     "Find shade and rest",
					MiniGame: MiniGameShelter,
					Outcome: Outcome{
						Effects:       Delta{ResourceWater: -8, ResourceFood: -8},
						ItemRequired:  ItemInsulation,
						ItemBonus:     Delta{ResourceWater: 6, ResourceHealth: 5},
						Narrative:     "An abandoned warehouse provides shelter. You lose a day but avoid heat stroke.",
						ItemNarrative: "The thermal insulation keeps the cabin cool even parked. You barely touch the water reserves.",
					},
				},
			},
		},
		{
			ID:              "tornado",
			Name:            "Tornado Warning",
			PerilType:       PerilTornado,
			BaseProbability: 0.07,
			TerrainBonus:    []Terrain{TerrainPlains},
			Description:     "The radio crackles a warning. A funnel cloud touches down a mile east. The ground trembles.",
			Choices: []Choice{
				{
					Text:     "Take shelter in a ditch",
					MiniGame: MiniGameShelter,
					Outcome: Outcome{
						Effects:       Delta{ResourceHealth: -5, ResourceMorale: -10},
						ItemRequired:  ItemTarpShelter,
						ItemBonus:     Delta{ResourceMorale: 10, ResourceHealth: 5},
						Narrative:     "You lie flat in a drainage ditch, arms over your heads. The roar passes. You're alive but shaken.",
						ItemNarrative: "You stake the tarp over the ditch. Debris bounces off the cover. Everyone walks away unscratched.",
					},
				},
				{
					Text: "Drive perpendicular to its path",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: -12},
						Narrative: "You cut west at full speed. The funnel drifts east. Heart pounding, you watch it recede in the mirror.",
					},
				},
			},
		},
		{
			ID:              "toxic_air",
			Name:            "Toxic Air Quality",
			PerilType:       PerilWildfire,
			BaseProbability: 0.09,
			TerrainBonus:    []Terrain{TerrainUrban, TerrainValley, TerrainForest},
			Description:     "The air quality index reads \"Hazardous.\" Breathing outside for more than minutes brings coughing fits.",
			Choices: []Choice{
				{
					Text: "Use gas masks and keep moving",
					Outcome: Outcome{
						Effects:      Delta{ResourceHealth: -5},
						ItemRequired: ItemGasMask,
						ItemBonus:    Delta{ResourceHealth: 5},
						Narrative:    "The masks help, but eyes still sting. You press forward through the brown haze.",
					},
				},
				{
					Text: "Seal the car and drive fast",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: -10, ResourceHealth: -8},
						Narrative: "Windows up, vents closed. The cabin grows stuffy but you clear the worst zone in an hour.",
					},
				},
			},
		},
		{
			ID:              "power_outage",
			Name:            "Regional Power Outage",
			PerilType:       PerilInfrastructure,
			BaseProbability: 0.08,
			TerrainBonus:    []Terrain{TerrainUrban},
			Description:     "The grid is down for 200 miles. Gas pumps don't work. Traffic lights are dark. Stores are shuttered.",
			Choices: []Choice{
				{
					Text: "Conserve fuel and coast through",
					Outcome: Outcome{
						Effects:       Delta{ResourceFuel: -5, ResourceFood: -8},
						ItemRequired:  ItemSolarPanel,
						ItemBonus:     Delta{ResourceFuel: 8, ResourceMorale: 5},
						Narrative:     "You hypermile through silent towns. No gas, no food resupply. But the road is clear.",
						ItemNarrative: "The solar panel trickle-charges the battery as you coast. You barely touch the fuel reserves. Smart packing.",
					},
				},
				{
					Text: "Wait for power restoration",
					Outcome: Outcome{
						Effects:   Delta{ResourceFood: -12, ResourceWater: -8, ResourceMorale: -5},
						Narrative: "You camp in a school parking lot for two days. Power returns. You fill up and move on.",
					},
				},
			},
		},
		{
			ID:              "supply_cache",
			Name:            "Abandoned Supply Cache",
			PerilType:       PerilPositive,
			BaseProbability: 0.1,
			TerrainBonus:    []Terrain{},
			Description:     "Behind a boarded-up gas station, you spot crates. Someone left supplies — maybe in a hurry.",
			Choices: []Choice{
				{
					Text: "Take everything you can carry",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: 12, ResourceWater: 10, ResourceFood: 12},
						Narrative: "Canned food, bottled water, and a few gallons of gas. A lucky find.",
					},
				},
				{
					Text: "Take only what you need",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: 5, ResourceWater: 5, ResourceFood: 5, ResourceMorale: 8},
						Narrative: "You take modest supplies and leave the rest for others. The family feels good about it.",
					},
				},
			},
		},
		{
			ID:              "friendly_settlement",
			Name:            "Friendly Settlement",
			PerilType:       PerilPositive,
			BaseProbability: 0.08,
			TerrainBonus:    []Terrain{TerrainPlains, TerrainForest, TerrainHills},
			Description:     "A small community has set up a refugee waystation. A hand-painted sign reads \"REST STOP — ALL WELCOME.\"",
			Choices: []Choice{
				{
					Text: "Stay and rest for a day",
					Outcome: Outcome{
						Effects:   Delta{ResourceHealth: 12, ResourceMorale: 15, ResourceFood: -5},
						Narrative: "Hot meals, clean water, and kind faces. You share your food supply as thanks. Morale soars.",
					},
				},
				{
					Text: "Trade supplies and move on",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: 8, ResourceWater: 8, ResourceFood: -8},
						Narrative: "You barter canned goods for gas and water. Quick but fair. Back on the road within the hour.",
					},
				},
			},
		},
		{
			ID:              "abandoned_station",
			Name:            "Abandoned Gas Station",
			PerilType:       PerilPositive,
			BaseProbability: 0.09,
			TerrainBonus:    []Terrain{TerrainDesert, TerrainPlains},
			Description:     "A dusty gas station, doors hanging open. The pumps are dead but the shelves aren't empty.",
			Choices: []Choice{
				{
					Text: "Search thoroughly",
					Outcome: Outcome{
						Effects:   Delta{ResourceFood: 8, ResourceWater: 5},
						Narrative: "Behind the counter: canned soup, crackers, and a jug of water. Small wins matter out here.",
					},
				},
				{
					Text: "Siphon the underground tanks",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: 15, ResourceHealth: -5},
						Narrative: "A mouthful of fumes later, you've got fuel. Your throat burns but the tank is fuller.",
					},
				},
			},
		},
		{
			ID:              "road_washout",
			Name:            "Road Washout",
			PerilType:       PerilFlood,
			BaseProbability: 0.08,
			TerrainBonus:    []Terrain{TerrainMountain, TerrainHills, TerrainWetland},
			Description:     "The road drops away into a muddy chasm. Recent rains carved a 30-foot gap in the highway.",
			Choices: []Choice{
				{
					Text: "Find an off-road bypass",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: -12, ResourceHealth: -5},
						Narrative: "A dirt track through a farmer's field gets you around. Bumpy and slow, but passable.",
					},
				},
				{
					Text: "Backtrack to the last junction",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: -18},
						Narrative: "Thirty miles back to the fork, then a longer route. Hours lost. Gas tank hurting.",
					},
				},
			},
		},
		{
			ID:              "bridge_collapse",
			Name:            "Bridge Collapse",
			PerilType:       PerilInfrastructure,
			BaseProbability: 0.06,
			TerrainBonus:    []Terrain{TerrainMountain, TerrainHills},
			Description:     "The bridge ahead is a twisted mass of concrete and rebar, dropped into the river below.",
			Choices: []Choice{
				{
					Text: "Search for a shallow crossing",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: -8, ResourceHealth: -10},
						Narrative: "You find a rocky ford downstream. The car scrapes bottom but you cross. Undercarriage damage.",
					},
				},
				{
					Text: "Take the long detour",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: -22, ResourceFood: -5},
						Narrative: "A 60-mile detour through back roads. Safe but costly in fuel and time.",
					},
				},
			},
		},
		{
			ID:              "dust_storm",
			Name:            "Dust Storm",
			PerilType:       PerilHeat,
			BaseProbability: 0.08,
			TerrainBonus:    []Terrain{TerrainDesert, TerrainPlains},
			Description:     "A brown wall rolls across the horizon. Within minutes, visibility drops to zero.",
			Choices: []Choice{
				{
					Text: "Pull over and wait it out",
					Outcome: Outcome{
						Effects:   Delta{ResourceMorale: -8, ResourceFood: -5},
						Narrative: "Sand blasts the paint. You huddle inside for hours. When it passes, the road is buried.",
					},
				},
				{
					Text: "Crawl forward at low speed",
					Outcome: Outcome{
						Effects:       Delta{ResourceFuel: -10, ResourceHealth: -8},
						ItemRequired:  ItemGasMask,
						ItemBonus:     Delta{ResourceHealth: 8},
						Narrative:     "Navigating by GPS alone, you inch through the storm. Sand clogs the air filter. But you gain ground.",
						ItemNarrative: "Masks on, you inch through the wall of sand. Lungs stay clear. The air filter takes a beating but you don't.",
					},
				},
			},
		},
		{
			ID:              "medical_emergency",
			Name:            "Medical Emergency",
			PerilType:       PerilHealth,
			BaseProbability: 0.07,
			TerrainBonus:    []Terrain{},
			Description:     "Someone in the back seat is burning up with fever. They need help — now.",
			Choices: []Choice{
				{
					Text: "Use your first aid supplies",
					Outcome: Outcome{
						Effects:      Delta{ResourceHealth: 5},
						ItemRequired: ItemFirstAid,
						ItemBonus:    Delta{ResourceHealth: 10},
						Narrative:    "Antibiotics and rest. By morning, the fever breaks. Your med kit is lighter but it worked.",
					},
				},
				{
					Text: "Search for a clinic",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: -12, ResourceHealth: -5},
						Narrative: "You drive 30 miles to a shuttered urgent care. A retired nurse helps from her porch. It's enough.",
					},
				},
				{
					Text: "Push on and hope for the best",
					Outcome: Outcome{
						Effects:   Delta{ResourceHealth: -25, ResourceMorale: -18},
						Narrative: "The fever spikes. Delirium sets in. By the time it breaks, everyone is scared and exhausted.",
					},
				},
			},
		},
		{
			ID:              "vehicle_breakdown",
			Name:            "Vehicle Breakdown",
			PerilType:       PerilMechanical,
			BaseProbability: 0.08,
			TerrainBonus:    []Terrain{TerrainMountain, TerrainDesert},
			Description:     "The engine coughs, sputters, and dies. Steam rises from under the hood.",
			Choices: []Choice{
				{
					Text: "Attempt repairs",
					Outcome: Outcome{
						Effects:      Delta{ResourceFuel: -5},
						ItemRequired: ItemToolKit,
						ItemBonus:    Delta{ResourceFuel: 5},
						Narrative:    "With the toolkit, you patch the radiator hose. Ugly but functional. Back on the road.",
					},
				},
				{
					Text: "Walk to the nearest town",
					Outcome: Outcome{
						Effects:   Delta{ResourceHealth: -15, ResourceWater: -15, ResourceFood: -8},
						Narrative: "A brutal 8-mile walk to find a mechanic. He charges in fuel. But the car runs again.",
					},
				},
			},
		},
		{
			ID:              "refugee_camp",
			Name:            "Refugee Camp",
			PerilType:       PerilSocial,
			BaseProbability: 0.07,
			TerrainBonus:    []Terrain{TerrainUrban, TerrainPlains},
			Description:     "Rows of tents stretch along the highway. Thousands of people, all heading the same direction you are.",
			Choices: []Choice{
				{
					Text: "Share supplies and rest",
					Outcome: Outcome{
						Effects:   Delta{ResourceFood: -10, ResourceWater: -8, ResourceMorale: 15, ResourceHealth: 5},
						Narrative: "You share what you can. In return: information about the road ahead, and a renewed sense of purpose.",
					},
				},
				{
					Text: "Drive past without stopping",
					Outcome: Outcome{
						Effects:   Delta{ResourceMorale: -22},
						Narrative: "Eyes follow your car. A child waves. You keep driving. Nobody speaks for an hour.",
					},
				},
				{
					Text: "Trade for information",
					Outcome: Outcome{
						Effects:   Delta{ResourceFood: -5, ResourceMorale: 5},
						Narrative: "A former trucker draws you a map of open roads. Worth every calorie you traded.",
					},
				},
			},
		},
		{
			ID:              "water_contamination",
			Name:            "Water Contamination",
			PerilType:       PerilHealth,
			BaseProbability: 0.07,
			TerrainBonus:    []Terrain{TerrainWetland, TerrainUrban},
			Description:     "A hand-lettered sign at the creek: \"DON'T DRINK — CHEMICAL SPILL.\" Your water supply tastes off.",
			Choices: []Choice{
				{
					Text: "Purify with your filter",
					Outcome: Outcome{
						Effects:      Delta{ResourceWater: -5},
						ItemRequired: ItemWaterPurifier,
						ItemBonus:    Delta{ResourceWater: 10},
						Narrative:    "The purifier catches the worst of it. Water tastes metallic but tests safe. Filter is wearing thin.",
					},
				},
				{
					Text: "Dump the suspect water",
					Outcome: Outcome{
						Effects:   Delta{ResourceWater: -20},
						Narrative: "Better safe than sick. You dump your reserves and drive on, hoping to find clean water soon.",
					},
				},
				{
					Text: "Risk drinking it",
					Outcome: Outcome{
						Effects:   Delta{ResourceHealth: -22, ResourceMorale: -10},
						Narrative: "Stomach cramps hit within the hour. It's a miserable night, but you keep your water supply.",
					},
				},
			},
		},
		{
			ID:              "clear_skies",
			Name:            "Clear Skies",
			PerilType:       PerilPositive,
			BaseProbability: 0.1,
			TerrainBonus:    []Terrain{},
			Description:     "Blue sky from horizon to horizon. The road is open. For the first time in days, things feel... normal.",
			Choices: []Choice{
				{
					Text: "Make good time while you can",
					Outcome: Outcome{
						Effects:   Delta{ResourceMorale: 10, ResourceFuel: -5},
						Narrative: "You cover extra ground. Music on the radio. Windows down. Almost feels like the old days.",
					},
				},
				{
					Text: "Take a break and enjoy it",
					Outcome: Outcome{
						Effects:   Delta{ResourceMorale: 15, ResourceHealth: 8},
						Narrative: "A roadside picnic. The kids play in a field. Everyone breathes easier. These moments matter.",
					},
				},
			},
		},
		{
			ID:              "swollen_river",
			Name:            "River Crossing",
			PerilType:       PerilFlood,
			BaseProbability: 0.08,
			TerrainBonus:    []Terrain{TerrainValley, TerrainHills},
			Description:     "The bridge is gone. Just rebar jutting like broken teeth over brown water churning mud and debris.",
			Choices: []Choice{
				{
					Text: "Ford the shallows aggressively",
					Outcome: Outcome{
						Effects:   Delta{ResourceHealth: -15, ResourceMorale: -10},
						Narrative: "Water floods the floorboards. The engine chokes, sputters, but drags you onto the far bank wet and shaking.",
					},
				},
				{
					Text: "Reinforce chassis and float",
					Outcome: Outcome{
						Effects:      Delta{ResourceFuel: -5, ResourceMorale: 5},
						ItemRequired: ItemToolKit,
						ItemBonus:    Delta{ResourceMorale: 10},
						Narrative:    "You seal the intakes. The vehicle bobs like a cork, drifting downstream before tires find traction.",
					},
				},
				{
					Text: "Find a narrow point upstream",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: -20, ResourceWater: -5},
						Narrative: "Hours burned navigating the mud. You cross safely, but the fuel gauge drops significantly.",
					},
				},
			},
		},
		{
			ID:              "armored_caravan",
			Name:            "The Iron Caravan",
			PerilType:       PerilSocial,
			BaseProbability: 0.06,
			TerrainBonus:    []Terrain{TerrainPlains, TerrainDesert},
			Description:     "Three semi-trucks welded with scrap metal circle up. A gunner tracks you from a turret. They aren't raiding — they're trading.",
			Choices: []Choice{
				{
					Text: "Trade fuel for clean water",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: -15, ResourceWater: 15},
						Narrative: "The exchange is tense. Hands on holsters. They toss the jerry cans and peel out into the dust.",
					},
				},
				{
					Text: "Hail them on the frequency",
					Outcome: Outcome{
						Effects:      Delta{ResourceMorale: 10, ResourceFood: 5},
						ItemRequired: ItemRadio,
						ItemBonus:    Delta{ResourceFood: 8},
						Narrative:    "You speak their code. The gunner waves. They toss a crate of MREs as a gesture of road solidarity.",
					},
				},
				{
					Text: "Keep driving, head down",
					Outcome: Outcome{
						Effects:   Delta{ResourceMorale: -5},
						Narrative: "You pass in silence. The opportunity for supplies vanishes in the rearview mirror.",
					},
				},
			},
		},
		{
			ID:              "flash_freeze",
			Name:            "Flash Freeze",
			PerilType:       PerilMechanical,
			BaseProbability: 0.07,
			TerrainBonus:    []Terrain{TerrainMountain, TerrainHills},
			Description:     "Temperature plummets thirty degrees in an hour. Rain turns to black ice. The road is a sheet of glass.",
			Choices: []Choice{
				{
					Text: "Keep moving at a crawl",
					Outcome: Outcome{
						Effects:       Delta{ResourceFuel: -25, ResourceHealth: -5},
						ItemRequired:  ItemInsulation,
						ItemBonus:     Delta{ResourceFuel: 12, ResourceHealth: 5},
						Narrative:     "Heater blasting, wheels spinning. You burn a tank of gas to move ten miles without sliding off the edge.",
						ItemNarrative: "The thermal insulation holds cabin heat without running the heater at full blast. You save fuel and keep warm.",
					},
				},
				{
					Text: "Stop and build a fire",
					Outcome: Outcome{
						Effects:   Delta{ResourceFood: -10, ResourceMorale: -5},
						Narrative: "You huddle for warmth. Frost coats the interior. You survive the night, but hunger gnaws at you.",
					},
				},
			},
		},
		{
			ID:              "grey_famine",
			Name:            "The Blight",
			PerilType:       PerilHealth,
			BaseProbability: 0.09,
			TerrainBonus:    []Terrain{TerrainValley, TerrainPlains},
			Description:     "Miles of corn turned to black slime. The smell of rot is thick. Gaunt locals watch your vehicle with hollow eyes.",
			Choices: []Choice{
				{
					Text: "Share supplies with locals",
					Outcome: Outcome{
						Effects:   Delta{ResourceFood: -20, ResourceMorale: 15},
						Narrative: "You hand over cans of beans. They weep. It hurts your stock, but you feel human again.",
					},
				},
				{
					Text: "Speed through the zone",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: -10, ResourceMorale: -10},
						Narrative: "You don't look back. The guilt sits heavy in the silence of the cab.",
					},
				},
				{
					Text: "Scavenge the farmhouses",
					Outcome: Outcome{
						Effects:       Delta{ResourceHealth: -15, ResourceWater: 10},
						ItemRequired:  ItemGasMask,
						ItemBonus:     Delta{ResourceHealth: 12},
						Narrative:     "You find some bottled water, but inhale spores of the black rot. Your lungs burn for days.",
						ItemNarrative: "Masks on, you pick through the farmhouses. Bottled water, canned goods — and your lungs stay clean.",
					},
				},
			},
		},
		{
			ID:              "king_tide",
			Name:            "Storm Surge",
			PerilType:       PerilFlood,
			BaseProbability: 0.10,
			TerrainBonus:    []Terrain{TerrainCoastal, TerrainWetland},
			Description:     "The Atlantic is reclaiming the highway. Saltwater breaches the levees, grey foam snapping at the tires.",
			Choices: []Choice{
				{
					Text: "Race the rising water",
					Outcome: Outcome{
						Effects:   Delta{ResourceHealth: -10, ResourceFuel: -10},
						Narrative: "Salt spray blinds the windshield. You hydroplane through the surge, rust forming before the metal even dries.",
					},
				},
				{
					Text: "Retreat to high ground",
					Outcome: Outcome{
						Effects:   Delta{ResourceFood: -15, ResourceFuel: -5},
						Narrative: "You lose a day waiting on a ridge. The ocean swallows the road below. You have to backtrack.",
					},
				},
			},
		},
		{
			ID:              "human_bottleneck",
			Name:            "Refugee Checkpoint",
			PerilType:       PerilSocial,
			BaseProbability: 0.11,
			TerrainBonus:    []Terrain{TerrainUrban, TerrainValley},
			Description:     "Concrete barriers block the interstate. Thousands of desperate souls pressed against chain-link, begging for entry.",
			Choices: []Choice{
				{
					Text: "Bribe the border guards",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: -20, ResourceMorale: -5},
						Narrative: "They take the jerry cans without a word and open the gate. The crowd screams as you pass.",
					},
				},
				{
					Text:     "Ram the side barricade",
					MiniGame: MiniGameBarricade,
					Outcome: Outcome{
						Effects:   Delta{ResourceHealth: -20, ResourceFuel: -5},
						Narrative: "Metal screeches. You smash through the fencing. The vehicle takes a beating, but you are free.",
					},
				},
				{
					Text: "Navigate the service roads",
					Outcome: Outcome{
						Effects:       Delta{ResourceWater: -10, ResourceFood: -5},
						ItemRequired:  ItemRadio,
						ItemBonus:     Delta{ResourceWater: 8, ResourceFood: 5},
						Narrative:     "Hours navigating back alleys to bypass the crush. Supplies consumed in the wait.",
						ItemNarrative: "The emergency radio picks up a trucker frequency with real-time route intel. You thread through in half the time.",
					},
				},
			},
		},
		{
			ID:              "silent_array",
			Name:            "Solar Farm",
			PerilType:       PerilPositive,
			BaseProbability: 0.06,
			TerrainBonus:    []Terrain{TerrainDesert, TerrainPlains},
			Description:     "A sea of mirrors shimmering in the heat. Abandoned, but the charge indicators on the storage banks still blink green.",
			Choices: []Choice{
				{
					Text: "Siphon power for batteries",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: 15},
						Narrative: "You hook up the jumper cables. The hum of electricity fills the air. The tank is saved.",
					},
				},
				{
					Text: "Loot panels for trade",
					Outcome: Outcome{
						Effects:      Delta{ResourceMorale: 10, ResourceFuel: 5},
						ItemRequired: ItemToolKit,
						ItemBonus:    Delta{ResourceFuel: 10},
						Narrative:    "You unbolt a pristine photovoltaic cell. Worth its weight in gold at the next settlement.",
					},
				},
			},
		},
		{
			ID:              "quarantine_zone",
			Name:            "Abandoned Hospital",
			PerilType:       PerilHealth,
			BaseProbability: 0.07,
			TerrainBonus:    []Terrain{TerrainUrban},
			Description:     "Biohazard tape flutters from the awning. The windows are dark. It smells of copper and old sickness.",
			Choices: []Choice{
				{
					Text: "Raid the pharmacy",
					Outcome: Outcome{
						Effects:      Delta{ResourceHealth: 15, ResourceMorale: 5},
						ItemRequired: ItemGasMask,
						ItemBonus:    Delta{ResourceHealth: 10},
						Narrative:    "Mask on, you step over the bodies. You find a stash of untouched antibiotics in a locked cabinet.",
					},
				},
				{
					Text: "Search the cafeteria",
					Outcome: Outcome{
						Effects:   Delta{ResourceFood: 10, ResourceHealth: -10},
						Narrative: "You find canned peaches, but cut your hand on rusted metal. The wound throbs immediately.",
					},
				},
				{
					Text: "Too risky — drive on",
					Outcome: Outcome{
						Effects:   Delta{ResourceFuel: -5},
						Narrative: "You leave the house of the dead behind. Better hungry than infected.",
					},
				},
			},
		},
		{
			ID:              "bandits",
			Name:            "Road Bandits",
			PerilType:       PerilSocial,
			BaseProbability: 0.06,
			TerrainBonus:    []Terrain{TerrainDesert, TerrainMountain},
			Description:     "A makeshift roadblock. Armed figures emerge from behind wrecked cars. They want your supplies.",
			Choices: []Choice{
				{
					Text: "Negotiate and share",
					Outcome: Outcome{
						Effects:   Delta{ResourceFood: -12, ResourceFuel: -8},
						Narrative: "You hand over supplies with steady hands. They take what they want and wave you through.",
					},
				},
				{
					Text:     "Floor it through the barricade",
					MiniGame: MiniGameBarricade,
					Outcome: Outcome{
						Effects:   Delta{ResourceHealth: -18, ResourceFuel: -8},
						Narrative: "Tires scream. Something hits the trunk. A window shatters. But you're through and gone.",
					},
				},
				{
					Text: "Reverse and find another route",
					Outcome: Outcome{
						Effects:       Delta{ResourceFuel: -18},
						ItemRequired:  ItemRadio,
						ItemBonus:     Delta{ResourceFuel: 10},
						Narrative:     "You back up a mile, then cut down a side road. Hours lost, but nothing else.",
						ItemNarrative: "The radio crackles with a trucker warning about this stretch. You reroute early, saving fuel and nerves.",
					},
				},
			},
		},
	}
}
