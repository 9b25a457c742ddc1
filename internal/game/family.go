package game

import "math/rand/v2"

type TraitID string

const (
	TraitResilient   TraitID = "resilient"
	TraitResourceful TraitID = "resourceful"
	TraitMedic       TraitID = "medic"
	TraitMechanic    TraitID = "mechanic"
	TraitNavigator   TraitID = "navigator"
)

// TraitPassives is the fixed-shape bundle of trait multipliers. A value of
// 1 means no effect; drain factors below 1 reduce drain.
type TraitPassives struct {
	HealthDrain float64
	FuelDrain   float64
	SupplyBonus float64
	HealBonus   float64
	TravelSpeed float64
}

func neutralTraitPassives() TraitPassives {
	return TraitPassives{HealthDrain: 1, FuelDrain: 1, SupplyBonus: 1, HealBonus: 1, TravelSpeed: 1}
}

type Trait struct {
	ID          TraitID
	Name        string
	Description string
	Passive     TraitPassives
}

var traits = map[TraitID]Trait{
	TraitResilient: {
		ID:          TraitResilient,
		Name:        "Resilient",
		Description: "Takes less health damage from events.",
		Passive:     TraitPassives{HealthDrain: 0.7, FuelDrain: 1, SupplyBonus: 1, HealBonus: 1, TravelSpeed: 1},
	},
	TraitResourceful: {
		ID:          TraitResourceful,
		Name:        "Resourceful",
		Description: "Finds more supplies in positive events.",
		Passive:     TraitPassives{HealthDrain: 1, FuelDrain: 1, SupplyBonus: 1.3, HealBonus: 1, TravelSpeed: 1},
	},
	TraitMedic: {
		ID:          TraitMedic,
		Name:        "Medic",
		Description: "Medical events are less severe.",
		Passive:     TraitPassives{HealthDrain: 0.8, FuelDrain: 1, SupplyBonus: 1, HealBonus: 1.5, TravelSpeed: 1},
	},
	TraitMechanic: {
		ID:          TraitMechanic,
		Name:        "Mechanic",
		Description: "Vehicle events are less severe. Fuel efficiency +10%.",
		Passive:     TraitPassives{HealthDrain: 1, FuelDrain: 0.9, SupplyBonus: 1, HealBonus: 1, TravelSpeed: 1},
	},
	TraitNavigator: {
		ID:          TraitNavigator,
		Name:        "Navigator",
		Description: "Better fuel efficiency. Faster travel.",
		Passive:     TraitPassives{HealthDrain: 1, FuelDrain: 0.85, SupplyBonus: 1, HealBonus: 1, TravelSpeed: 1.15},
	},
}

// AllTraits lists the selectable leader traits.
func AllTraits() []Trait {
	out := []Trait{
		traits[TraitResilient],
		traits[TraitResourceful],
		traits[TraitMedic],
		traits[TraitMechanic],
		traits[TraitNavigator],
	}
	return out
}

func GetTrait(id TraitID) (Trait, bool) {
	trait, ok := traits[id]
	return trait, ok
}

// FamilyMember is created once at setup. Only Alive and Health change
// afterwards, via death resolution.
type FamilyMember struct {
	Name     string  `json:"name"`
	Age      int     `json:"age"`
	Health   float64 `json:"health"`
	Alive    bool    `json:"alive"`
	Trait    TraitID `json:"trait,omitempty"`
	IsLeader bool    `json:"is_leader"`
}

var memberNames = []string{
	"Alex", "Jordan", "Casey", "Morgan", "Riley",
	"Quinn", "Avery", "Taylor", "Reese", "Dakota",
	"Sam", "Jamie", "Charlie", "Pat", "Robin",
	"Eli", "Sage", "River", "Finley", "Rowan",
}

// CreateFamily builds the leader plus size-1 generated members with
// non-colliding names. The trait attaches to the leader only.
func CreateFamily(leaderName string, leaderTrait TraitID, size int, rng *rand.Rand) []FamilyMember {
	used := map[string]bool{leaderName: true}
	members := []FamilyMember{{
		Name:     leaderName,
		Age:      30 + rng.IntN(15),
		Health:   100,
		Alive:    true,
		Trait:    leaderTrait,
		IsLeader: true,
	}}

	for i := 1; i < size; i++ {
		var name string
		for {
			name = memberNames[rng.IntN(len(memberNames))]
			if !used[name] {
				break
			}
		}
		used[name] = true

		age := 5 + rng.IntN(15)
		if i == 1 {
			// Partner or other adult.
			age = 25 + rng.IntN(20)
		}

		members = append(members, FamilyMember{
			Name:   name,
			Age:    age,
			Health: 100,
			Alive:  true,
		})
	}

	return members
}

// FamilyPassives folds the trait bundles of living members into one
// multiplicative set. Recomputed from scratch on every call.
func FamilyPassives(family []FamilyMember) TraitPassives {
	passives := neutralTraitPassives()
	for _, member := range family {
		if !member.Alive || member.Trait == "" {
			continue
		}
		trait, ok := traits[member.Trait]
		if !ok {
			continue
		}
		passives.HealthDrain *= trait.Passive.HealthDrain
		passives.FuelDrain *= trait.Passive.FuelDrain
		passives.SupplyBonus *= trait.Passive.SupplyBonus
		passives.HealBonus *= trait.Passive.HealBonus
		passives.TravelSpeed *= trait.Passive.TravelSpeed
	}
	return passives
}

// AliveCount reports living members.
func AliveCount(family []FamilyMember) int {
	count := 0
	for _, member := range family {
		if member.Alive {
			count++
		}
	}
	return count
}
