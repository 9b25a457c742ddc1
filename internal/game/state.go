package game

import (
	"fmt"
	"math/rand/v2"
)

// Phase is the journey lifecycle tag. Transitions happen only through the
// JourneyState methods; writing the field directly skips terminal checks.
type Phase string

const (
	PhaseTitle     Phase = "title"
	PhaseSetup     Phase = "setup"
	PhaseTraveling Phase = "traveling"
	PhaseEvent     Phase = "event"
	PhaseResult    Phase = "result"
	PhaseMiniGame  Phase = "minigame"
	PhaseWin       Phase = "win"
	PhaseLose      Phase = "lose"
)

// SetupBudget caps total item cost at departure.
const SetupBudget = 100

const (
	journalMax     = 500
	recentPerilMax = 5
)

// JourneyConfig is everything the setup screen collects before departure.
type JourneyConfig struct {
	Seed        int64   `yaml:"seed"`
	LeaderName  string  `yaml:"leader_name"`
	LeaderTrait TraitID `yaml:"leader_trait"`
	FamilySize  int     `yaml:"family_size"`
	OriginID    string  `yaml:"origin"`
	DestID      string  `yaml:"destination"`
	Items       []ItemID `yaml:"items"`
}

// Validate checks a config against the builtin content tables.
func (c JourneyConfig) Validate() error {
	if c.LeaderName == "" {
		return fmt.Errorf("leader name is required")
	}
	if _, ok := GetTrait(c.LeaderTrait); !ok {
		return fmt.Errorf("unknown leader trait %q", c.LeaderTrait)
	}
	if c.FamilySize < 1 || c.FamilySize > 6 {
		return fmt.Errorf("family size %d out of range [1,6]", c.FamilySize)
	}
	if _, ok := findCity(Origins(), c.OriginID); !ok {
		return fmt.Errorf("unknown origin %q", c.OriginID)
	}
	if _, ok := findCity(Destinations(), c.DestID); !ok {
		return fmt.Errorf("unknown destination %q", c.DestID)
	}
	if _, ok := RouteBetween(c.OriginID, c.DestID); !ok {
		return fmt.Errorf("no route from %q to %q", c.OriginID, c.DestID)
	}

	cost := 0
	for _, id := range c.Items {
		item, ok := findItem(builtinItems(), id)
		if !ok {
			return fmt.Errorf("unknown item %q", id)
		}
		cost += item.Cost
	}
	if cost > SetupBudget {
		return fmt.Errorf("inventory cost %d exceeds budget %d", cost, SetupBudget)
	}
	return nil
}

// JourneyState is the single mutable aggregate for one playthrough. It is
// not safe for concurrent use; the caller serializes access.
type JourneyState struct {
	Config JourneyConfig `json:"config"`
	Phase  Phase         `json:"phase"`

	Origin      City       `json:"origin"`
	Destination City       `json:"destination"`
	Route       []Waypoint `json:"route"`

	WaypointIndex    int     `json:"waypoint_index"`
	DistanceToNext   float64 `json:"distance_to_next"`
	TotalDist        float64 `json:"total_distance"`
	DistanceTraveled float64 `json:"distance_traveled"`
	MilesToday       float64 `json:"miles_today"`
	Day              int     `json:"day"`

	Resources Resources        `json:"resources"`
	Family    []FamilyMember   `json:"family"`
	Inventory []ItemDefinition `json:"inventory"`

	Events     []EventDefinition     `json:"-"`
	Encounters []EncounterDefinition `json:"-"`

	CurrentEvent *EventDefinition `json:"current_event,omitempty"`
	pendingIdx   int

	WeatherRisk  WeatherRisk `json:"weather_risk"`
	RecentPerils []PerilType `json:"recent_perils"`
	EventCount   int         `json:"event_count"`
	Deaths       int         `json:"deaths"`

	Journal []string `json:"journal"`

	rng *rand.Rand
}

// NewJourney validates the config and builds a ready-to-travel state.
// Content tables default to the builtins; callers that loaded a content
// pack overwrite Events and Encounters before the first tick.
func NewJourney(cfg JourneyConfig) (*JourneyState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	origin, _ := findCity(Origins(), cfg.OriginID)
	dest, _ := findCity(Destinations(), cfg.DestID)
	route, _ := RouteBetween(cfg.OriginID, cfg.DestID)

	rng := seededRNG(cfg.Seed)

	inventory := make([]ItemDefinition, 0, len(cfg.Items))
	for _, id := range cfg.Items {
		item, _ := findItem(builtinItems(), id)
		inventory = append(inventory, item)
	}

	s := &JourneyState{
		Config:      cfg,
		Phase:       PhaseTraveling,
		Origin:      origin,
		Destination: dest,
		Route:       route,
		TotalDist:   TotalDistance(route),
		Day:         1,
		Resources:   FullResources(),
		Family:      CreateFamily(cfg.LeaderName, cfg.LeaderTrait, cfg.FamilySize, rng),
		Inventory:   inventory,
		Events:      builtinEvents(),
		Encounters:  builtinEncounters(),
		rng:         rng,
	}
	if len(route) > 1 {
		s.DistanceToNext = route[1].Dist
	}

	s.addJournal(fmt.Sprintf("Day 1: The %s family departs %s, bound for %s. %.0f miles of uncertain road ahead.",
		cfg.LeaderName, origin.Name, dest.Name, s.TotalDist))
	return s, nil
}

// CurrentWaypoint is the last waypoint reached. Index is clamped so a
// finished route still reports its destination.
func (s *JourneyState) CurrentWaypoint() Waypoint {
	idx := s.WaypointIndex
	if idx >= len(s.Route) {
		idx = len(s.Route) - 1
	}
	return s.Route[idx]
}

// NextWaypoint returns nil once the destination is reached.
func (s *JourneyState) NextWaypoint() *Waypoint {
	if s.WaypointIndex+1 >= len(s.Route) {
		return nil
	}
	wp := s.Route[s.WaypointIndex+1]
	return &wp
}

// Progress reports journey completion in [0,1].
func (s *JourneyState) Progress() float64 {
	if s.TotalDist <= 0 {
		return 0
	}
	return clampFloat(s.DistanceTraveled/s.TotalDist, 0, 1)
}

// Finished reports whether the journey reached a terminal phase.
func (s *JourneyState) Finished() bool {
	return s.Phase == PhaseWin || s.Phase == PhaseLose
}

// RNG exposes the journey's deterministic random stream so mini-games
// spawned from events share the seed.
func (s *JourneyState) RNG() *rand.Rand {
	return s.rng
}

func (s *JourneyState) addJournal(entry string) {
	s.Journal = append(s.Journal, entry)
	if len(s.Journal) > journalMax {
		s.Journal = s.Journal[len(s.Journal)-journalMax:]
	}
}

func (s *JourneyState) recordPeril(p PerilType) {
	s.RecentPerils = append(s.RecentPerils, p)
	if len(s.RecentPerils) > recentPerilMax {
		s.RecentPerils = s.RecentPerils[len(s.RecentPerils)-recentPerilMax:]
	}
}
