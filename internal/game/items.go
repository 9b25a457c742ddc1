package game

// Item passive keys. Resource-named keys are per-day drain factors when
// below 1 and flat per-day bonuses otherwise; PassivePositiveBoost dampens
// the overall event trigger roll and boosts positive-event weight.
const (
	PassivePositiveBoost = "positiveBoost"
)

type ItemID string

const (
	ItemExtraFuel     ItemID = "extra_fuel"
	ItemWaterPurifier ItemID = "water_purifier"
	ItemFirstAid      ItemID = "first_aid"
	ItemSolarPanel    ItemID = "solar_panel"
	ItemInsulation    ItemID = "insulation"
	ItemCannedFood    ItemID = "canned_food"
	ItemToolKit       ItemID = "tool_kit"
	ItemGasMask       ItemID = "gas_mask"
	ItemTarpShelter   ItemID = "tarp_shelter"
	ItemRadio         ItemID = "radio"
)

// ItemDefinition is static content. Effect is the flat delta applied by
// event bonuses; Passive is an open-ended modifier bag merged by
// MergeItemPassives.
type ItemDefinition struct {
	ID          ItemID             `yaml:"id"`
	Name        string             `yaml:"name"`
	Cost        int                `yaml:"cost"`
	Weight      int                `yaml:"weight"`
	Description string             `yaml:"description"`
	Effect      Delta              `yaml:"effect,omitempty"`
	Passive     map[string]float64 `yaml:"passive,omitempty"`
}

func builtinItems() []ItemDefinition {
	return []ItemDefinition{
		{
			ID:          ItemExtraFuel,
			Name:        "Extra Fuel Can",
			Cost:        15,
			Weight:      3,
			Description: "+20 fuel when used",
			Effect:      Delta{ResourceFuel: 20},
		},
		{
			ID:          ItemWaterPurifier,
			Name:        "Water Purifier",
			Cost:        20,
			Weight:      2,
			Description: "Passive: reduces water drain. Bonus in contamination events.",
			Passive:     map[string]float64{string(ResourceWater): 0.8},
		},
		{
			ID:          ItemFirstAid,
			Name:        "First Aid Kit",
			Cost:        18,
			Weight:      2,
			Description: "+15 health when used. Bonus in medical events.",
			Effect:      Delta{ResourceHealth: 15},
		},
		{
			ID:          ItemSolarPanel,
			Name:        "Portable Solar Panel",
			Cost:        25,
			Weight:      3,
			Description: "Passive: +1 morale per day from creature comforts.",
			Passive:     map[string]float64{string(ResourceMorale): 1},
		},
		{
			ID:          ItemInsulation,
			Name:        "Thermal Insulation",
			Cost:        15,
			Weight:      2,
			Description: "Passive: reduces health drain in extreme heat/cold.",
			Passive:     map[string]float64{string(ResourceHealth): 0.7},
		},
		{
			ID:          ItemCannedFood,
			Name:        "Canned Food Supply",
			Cost:        12,
			Weight:      4,
			Description: "+20 food when used.",
			Effect:      Delta{ResourceFood: 20},
		},
		{
			ID:          ItemToolKit,
			Name:        "Mechanic's Tool Kit",
			Cost:        20,
			Weight:      3,
			Description: "Bonus in vehicle breakdown events. Passive: -10% fuel drain.",
			Passive:     map[string]float64{string(ResourceFuel): 0.9},
		},
		{
			ID:          ItemGasMask,
			Name:        "Gas Masks",
			Cost:        22,
			Weight:      1,
			Description: "Bonus in toxic air events. Passive: reduces health drain in bad air.",
			Passive:     map[string]float64{string(ResourceHealth): 0.85},
		},
		{
			ID:          ItemTarpShelter,
			Name:        "Tarp & Shelter Kit",
			Cost:        10,
			Weight:      3,
			Description: "Passive: reduces morale drain when waiting out events.",
			Passive:     map[string]float64{string(ResourceMorale): 0.7},
		},
		{
			ID:          ItemRadio,
			Name:        "Emergency Radio",
			Cost:        15,
			Weight:      1,
			Description: "Passive: +5% chance of positive events (better intel).",
			Passive:     map[string]float64{PassivePositiveBoost: 0.05},
		},
	}
}

// AllItems lists the purchasable supplies in display order.
func AllItems() []ItemDefinition {
	return builtinItems()
}

func findItem(items []ItemDefinition, id ItemID) (ItemDefinition, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return ItemDefinition{}, false
}

func hasItem(items []ItemDefinition, id ItemID) bool {
	_, ok := findItem(items, id)
	return ok
}

// InventoryCost sums item costs for the setup budget check.
func InventoryCost(items []ItemDefinition) int {
	total := 0
	for _, item := range items {
		total += item.Cost
	}
	return total
}

// MergeItemPassives folds every item passive bag into one map. The merge
// rule is asymmetric on purpose: factors below 1 (drain reducers) combine
// multiplicatively, everything else combines additively. Changing this to
// a uniform rule would silently shift game balance.
func MergeItemPassives(items []ItemDefinition) map[string]float64 {
	passives := map[string]float64{}
	for _, item := range items {
		for key, value := range item.Passive {
			if existing, ok := passives[key]; ok {
				if value < 1 {
					passives[key] = existing * value
				} else {
					passives[key] = existing + value
				}
			} else {
				passives[key] = value
			}
		}
	}
	return passives
}
