package gui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/exodus-road/internal/game"
)

type setupRow int

const (
	rowLeaderName setupRow = iota
	rowTrait
	rowFamilySize
	rowOrigin
	rowDestination
	rowItems
	rowDepart
	setupRowCount
)

type setupState struct {
	Cursor setupRow
	Seed   int64

	Name        string
	EditingName bool

	TraitIdx   int
	FamilySize int

	OriginIdx  int
	DestIdx    int
	CitySearch string
	Searching  bool

	ItemCursor int
	Selected   map[game.ItemID]bool

	Status string
}

func newSetupState(seed int64) setupState {
	return setupState{
		Seed:       seed,
		Name:       "Harper",
		FamilySize: 4,
		Selected:   map[game.ItemID]bool{},
	}
}

func (s *setupState) journeyConfig() game.JourneyConfig {
	traits := game.AllTraits()
	origins := game.Origins()
	dests := game.Destinations()

	var items []game.ItemID
	for _, item := range game.AllItems() {
		if s.Selected[item.ID] {
			items = append(items, item.ID)
		}
	}

	return game.JourneyConfig{
		Seed:        s.Seed,
		LeaderName:  strings.TrimSpace(s.Name),
		LeaderTrait: traits[wrapIndex(s.TraitIdx, len(traits))].ID,
		FamilySize:  s.FamilySize,
		OriginID:    origins[wrapIndex(s.OriginIdx, len(origins))].ID,
		DestID:      dests[wrapIndex(s.DestIdx, len(dests))].ID,
		Items:       items,
	}
}

func (s *setupState) budgetSpent() int {
	total := 0
	for _, item := range game.AllItems() {
		if s.Selected[item.ID] {
			total += item.Cost
		}
	}
	return total
}

func (ui *journeyUI) updateSetup() {
	s := &ui.setup

	if s.EditingName {
		captureTextInput(&s.Name, 16)
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyEscape) {
			s.EditingName = false
		}
		return
	}

	if s.Searching {
		captureTextInput(&s.CitySearch, 24)
		if rl.IsKeyPressed(rl.KeyEscape) {
			s.Searching = false
			s.CitySearch = ""
		}
		if rl.IsKeyPressed(rl.KeyEnter) {
			ui.applyCitySearch()
		}
		return
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.screen = screenTitle
		return
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		s.Cursor = setupRow(wrapIndex(int(s.Cursor)+1, int(setupRowCount)))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		s.Cursor = setupRow(wrapIndex(int(s.Cursor)-1, int(setupRowCount)))
	}

	left := rl.IsKeyPressed(rl.KeyLeft)
	right := rl.IsKeyPressed(rl.KeyRight)

	switch s.Cursor {
	case rowLeaderName:
		if rl.IsKeyPressed(rl.KeyEnter) {
			s.EditingName = true
		}
	case rowTrait:
		traits := game.AllTraits()
		if right {
			s.TraitIdx = wrapIndex(s.TraitIdx+1, len(traits))
		}
		if left {
			s.TraitIdx = wrapIndex(s.TraitIdx-1, len(traits))
		}
	case rowFamilySize:
		if right {
			s.FamilySize = clampInt(s.FamilySize+1, 1, 6)
		}
		if left {
			s.FamilySize = clampInt(s.FamilySize-1, 1, 6)
		}
	case rowOrigin:
		origins := game.Origins()
		if right {
			s.OriginIdx = wrapIndex(s.OriginIdx+1, len(origins))
		}
		if left {
			s.OriginIdx = wrapIndex(s.OriginIdx-1, len(origins))
		}
		if rl.IsKeyPressed(rl.KeySlash) {
			s.Searching = true
			s.CitySearch = ""
		}
	case rowDestination:
		dests := game.Destinations()
		if right {
			s.DestIdx = wrapIndex(s.DestIdx+1, len(dests))
		}
		if left {
			s.DestIdx = wrapIndex(s.DestIdx-1, len(dests))
		}
		if rl.IsKeyPressed(rl.KeySlash) {
			s.Searching = true
			s.CitySearch = ""
		}
	case rowItems:
		items := game.AllItems()
		if right {
			s.ItemCursor = wrapIndex(s.ItemCursor+1, len(items))
		}
		if left {
			s.ItemCursor = wrapIndex(s.ItemCursor-1, len(items))
		}
		if rl.IsKeyPressed(rl.KeyEnter) {
			item := items[s.ItemCursor]
			if s.Selected[item.ID] {
				delete(s.Selected, item.ID)
			} else if s.budgetSpent()+item.Cost <= game.SetupBudget {
				s.Selected[item.ID] = true
			} else {
				s.Status = "Not enough budget for that."
			}
		}
	case rowDepart:
		if rl.IsKeyPressed(rl.KeyEnter) {
			ui.beginJourney()
		}
	}
}

// applyCitySearch fuzzy-matches the typed text against whichever city
// list the cursor sits on.
func (ui *journeyUI) applyCitySearch() {
	s := &ui.setup
	s.Searching = false

	if s.Cursor == rowOrigin {
		if idx := matchCity(s.CitySearch, game.Origins()); idx >= 0 {
			s.OriginIdx = idx
			s.Status = ""
		} else {
			s.Status = fmt.Sprintf("No origin city matches %q.", s.CitySearch)
		}
	} else if s.Cursor == rowDestination {
		if idx := matchCity(s.CitySearch, game.Destinations()); idx >= 0 {
			s.DestIdx = idx
			s.Status = ""
		} else {
			s.Status = fmt.Sprintf("No destination matches %q.", s.CitySearch)
		}
	}
	s.CitySearch = ""
}

func (ui *journeyUI) drawSetup() {
	s := &ui.setup
	traits := game.AllTraits()
	origins := game.Origins()
	dests := game.Destinations()
	items := game.AllItems()

	trait := traits[wrapIndex(s.TraitIdx, len(traits))]
	origin := origins[wrapIndex(s.OriginIdx, len(origins))]
	dest := dests[wrapIndex(s.DestIdx, len(dests))]

	headRect := rl.NewRectangle(20, 20, float32(ui.width-40), 70)
	drawPanel(headRect, "Prepare the Journey")
	drawTextCentered("Up/Down rows, Left/Right values, Enter edit/toggle, / to search cities", headRect, 38, 18, colorDim)

	formRect := rl.NewRectangle(20, 110, float32(ui.width)/2-30, float32(ui.height-190))
	drawPanel(formRect, "Family & Route")

	rowY := func(i int) int32 { return int32(formRect.Y) + 56 + int32(i)*66 }
	drawRow := func(i int, label, value, detail string) {
		y := rowY(i)
		clr := colorText
		if setupRow(i) == s.Cursor {
			clr = colorAccent
			rl.DrawText(">", int32(formRect.X)+14, y, 22, colorAccent)
		}
		rl.DrawText(label, int32(formRect.X)+34, y, 20, colorDim)
		rl.DrawText(value, int32(formRect.X)+240, y, 22, clr)
		if detail != "" {
			rl.DrawText(detail, int32(formRect.X)+34, y+28, 16, colorDim)
		}
	}

	nameValue := s.Name
	if s.EditingName {
		nameValue += "_"
	}
	drawRow(0, "Leader", nameValue, "")
	drawRow(1, "Trait", trait.Name, trait.Description)
	drawRow(2, "Family size", fmt.Sprintf("%d", s.FamilySize), "Leader plus family members")
	drawRow(3, "Leaving", origin.Name, origin.Description)
	drawRow(4, "Bound for", dest.Name, dest.Description)

	if s.Searching {
		searchY := rowY(5)
		rl.DrawText("Search:", int32(formRect.X)+34, searchY, 20, colorWarn)
		rl.DrawText(s.CitySearch+"_", int32(formRect.X)+140, searchY, 22, colorText)
	}

	departY := rowY(6)
	departClr := colorText
	if s.Cursor == rowDepart {
		departClr = colorAccent
		rl.DrawText(">", int32(formRect.X)+14, departY, 22, colorAccent)
	}
	rl.DrawText("HIT THE ROAD", int32(formRect.X)+34, departY, 26, departClr)

	itemRect := rl.NewRectangle(float32(ui.width)/2+10, 110, float32(ui.width)/2-30, float32(ui.height-190))
	drawPanel(itemRect, fmt.Sprintf("Supplies  (budget %d/%d)", s.budgetSpent(), game.SetupBudget))
	for i, item := range items {
		y := int32(itemRect.Y) + 52 + int32(i)*44
		marker := "[ ]"
		clr := colorText
		if s.Selected[item.ID] {
			marker = "[x]"
			clr = colorGood
		}
		if s.Cursor == rowItems && i == s.ItemCursor {
			rl.DrawText(">", int32(itemRect.X)+10, y, 20, colorAccent)
			clr = colorAccent
		}
		rl.DrawText(fmt.Sprintf("%s %s ($%d)", marker, item.Name, item.Cost), int32(itemRect.X)+30, y, 19, clr)
		rl.DrawText(item.Description, int32(itemRect.X)+30, y+22, 14, colorDim)
	}

	if s.Status != "" {
		statusRect := rl.NewRectangle(20, float32(ui.height-64), float32(ui.width-40), 40)
		drawTextCentered(s.Status, statusRect, 8, 18, colorWarn)
	}
}
