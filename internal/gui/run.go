package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/exodus-road/internal/export"
	"github.com/appengine-ltd/exodus-road/internal/game"
)

func (ui *journeyUI) updateTravel(delta time.Duration) {
	j := ui.journey
	if j == nil {
		ui.screen = screenTitle
		return
	}

	if rl.IsKeyPressed(rl.KeyQ) {
		ui.quit = true
		return
	}

	paused := rl.IsKeyDown(rl.KeySpace)
	if !paused {
		ui.dayTimer += delta.Seconds()
	}

	for ui.dayTimer >= travelDaySeconds && j.Phase == game.PhaseTraveling {
		ui.dayTimer -= travelDaySeconds
		ui.lastTravel = j.Travel()

		if ui.lastTravel.Day.ReachedWaypoint {
			ui.requestWeather()
		}

		switch j.Phase {
		case game.PhaseEvent:
			ui.eventCursor = 0
			ui.screen = screenEvent
			return
		case game.PhaseWin, game.PhaseLose:
			ui.finishJourney()
			return
		}
	}
}

func (ui *journeyUI) drawTravel() {
	j := ui.journey
	if j == nil {
		return
	}

	headRect := rl.NewRectangle(20, 20, float32(ui.width-40), 84)
	drawPanel(headRect, fmt.Sprintf("Day %d  |  %s to %s", j.Day, j.Origin.Name, j.Destination.Name))
	progressTrack := rl.NewRectangle(headRect.X+16, headRect.Y+46, headRect.Width-32, 14)
	rl.DrawRectangleRec(progressTrack, rl.Fade(colorBG, 0.8))
	rl.DrawRectangleRec(rl.NewRectangle(progressTrack.X+1, progressTrack.Y+1,
		(progressTrack.Width-2)*float32(j.Progress()), progressTrack.Height-2), colorAccent)
	rl.DrawRectangleLinesEx(progressTrack, 1, colorBorder)
	rl.DrawText(fmt.Sprintf("%.0f / %.0f mi", j.DistanceTraveled, j.TotalDist),
		int32(progressTrack.X)+6, int32(progressTrack.Y)-22, 17, colorDim)

	gaugeRect := rl.NewRectangle(20, 120, 330, 260)
	drawPanel(gaugeRect, "Supplies")
	gaugeX := int32(gaugeRect.X) + 16
	gaugeW := int32(gaugeRect.Width) - 32
	drawGaugeBar("Fuel", j.Resources.Fuel, gaugeX, int32(gaugeRect.Y)+44, gaugeW)
	drawGaugeBar("Water", j.Resources.Water, gaugeX, int32(gaugeRect.Y)+86, gaugeW)
	drawGaugeBar("Food", j.Resources.Food, gaugeX, int32(gaugeRect.Y)+128, gaugeW)
	drawGaugeBar("Health", j.Resources.Health, gaugeX, int32(gaugeRect.Y)+170, gaugeW)
	drawGaugeBar("Morale", j.Resources.Morale, gaugeX, int32(gaugeRect.Y)+212, gaugeW)

	familyRect := rl.NewRectangle(20, 396, 330, float32(ui.height-460))
	drawPanel(familyRect, "Family")
	for i, member := range j.Family {
		y := int32(familyRect.Y) + 44 + int32(i)*30
		clr := colorText
		status := ""
		if member.IsLeader {
			status = " (leader)"
		}
		if !member.Alive {
			clr = colorDim
			status = " (lost)"
		}
		rl.DrawText(fmt.Sprintf("%s, %d%s", member.Name, member.Age, status), int32(familyRect.X)+16, y, 18, clr)
	}

	roadRect := rl.NewRectangle(366, 120, float32(ui.width-386), 150)
	wp := j.CurrentWaypoint()
	drawPanel(roadRect, fmt.Sprintf("On the road  |  %s country", wp.Terrain))
	roadLine := fmt.Sprintf("Last waypoint: %s", wp.Name)
	if next := j.NextWaypoint(); next != nil {
		roadLine = fmt.Sprintf("%s    Next: %s (%.0f mi)", roadLine, next.Name, j.DistanceToNext)
	}
	rl.DrawText(roadLine, int32(roadRect.X)+16, int32(roadRect.Y)+44, 19, colorText)
	if ui.weatherNote != "" {
		rl.DrawText(ui.weatherNote, int32(roadRect.X)+16, int32(roadRect.Y)+74, 18, colorWarn)
	}
	if ui.lastTravel.Narrative != "" {
		drawWrappedText(ui.lastTravel.Narrative, roadRect, 104, 18, colorDim)
	}

	journalRect := rl.NewRectangle(366, 286, float32(ui.width-386), float32(ui.height-350))
	drawPanel(journalRect, "Journal")
	maxLines := int(journalRect.Height-60) / 26
	start := len(j.Journal) - maxLines
	if start < 0 {
		start = 0
	}
	for i, entry := range j.Journal[start:] {
		y := int32(journalRect.Y) + 44 + int32(i)*26
		rl.DrawText(entry, int32(journalRect.X)+16, y, 17, colorText)
	}

	hintRect := rl.NewRectangle(20, float32(ui.height-56), float32(ui.width-40), 40)
	drawTextCentered("Hold Space to rest at the wheel, Q to quit", hintRect, 4, 17, colorDim)
}

func (ui *journeyUI) updateEvent() {
	j := ui.journey
	if j == nil || j.CurrentEvent == nil {
		ui.screen = screenTravel
		return
	}
	choices := j.CurrentEvent.Choices

	if rl.IsKeyPressed(rl.KeyDown) {
		ui.eventCursor = wrapIndex(ui.eventCursor+1, len(choices))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.eventCursor = wrapIndex(ui.eventCursor-1, len(choices))
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		result, resolved := j.MakeChoice(ui.eventCursor)
		if !resolved && j.Phase == game.PhaseMiniGame {
			ui.startMiniGame()
			return
		}
		ui.lastResult = result
		switch j.Phase {
		case game.PhaseLose:
			ui.finishJourney()
		default:
			ui.screen = screenResult
		}
	}
}

func (ui *journeyUI) drawEvent() {
	j := ui.journey
	if j == nil || j.CurrentEvent == nil {
		return
	}
	event := j.CurrentEvent

	eventRect := rl.NewRectangle(float32(ui.width/2-420), 80, 840, 230)
	drawPanel(eventRect, fmt.Sprintf("Day %d  |  %s", j.Day, event.Name))
	drawWrappedText(event.Description, eventRect, 52, 20, colorText)

	choiceRect := rl.NewRectangle(float32(ui.width/2-420), 330, 840, float32(56+len(event.Choices)*72))
	drawPanel(choiceRect, "What do you do?")
	for i, choice := range event.Choices {
		y := int32(choiceRect.Y) + 52 + int32(i)*72
		r := rl.NewRectangle(choiceRect.X+24, float32(y), choiceRect.Width-48, 56)
		label := choice.Text
		if choice.MiniGame != game.MiniGameNone {
			label += "  [arcade]"
		}
		if hasBonus(j, choice) {
			label += "  *"
		}
		if i == ui.eventCursor {
			rl.DrawRectangleRounded(r, 0.3, 8, rl.Fade(colorAccent, 0.2))
			rl.DrawRectangleRoundedLinesEx(r, 0.3, 8, 2, colorAccent)
			rl.DrawText(label, int32(r.X)+18, y+16, 22, colorAccent)
		} else {
			rl.DrawRectangleRounded(r, 0.3, 8, rl.Fade(colorPanel, 0.7))
			rl.DrawRectangleRoundedLinesEx(r, 0.3, 8, 1.5, colorBorder)
			rl.DrawText(label, int32(r.X)+18, y+16, 22, colorText)
		}
	}

	hintRect := rl.NewRectangle(20, float32(ui.height-56), float32(ui.width-40), 40)
	drawTextCentered("Up/Down to choose, Enter to commit. * marks options your gear improves.", hintRect, 4, 17, colorDim)
}

// hasBonus reports whether the party carries the item that improves this
// choice's outcome.
func hasBonus(j *game.JourneyState, choice game.Choice) bool {
	required := choice.Outcome.ItemRequired
	if required == "" {
		return false
	}
	for _, item := range j.Inventory {
		if item.ID == required {
			return true
		}
	}
	return false
}

func (ui *journeyUI) updateResult() {
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
		ui.journey.ContinueJourney()
		ui.screen = screenTravel
	}
}

func (ui *journeyUI) drawResult() {
	j := ui.journey
	if j == nil {
		return
	}

	resultRect := rl.NewRectangle(float32(ui.width/2-420), 120, 840, 300)
	drawPanel(resultRect, fmt.Sprintf("Day %d", j.Day))
	drawWrappedText(ui.lastResult.Narrative, resultRect, 52, 21, colorText)

	y := int32(160)
	for _, res := range game.AllResources() {
		value, ok := ui.lastResult.Effects[res]
		if !ok || value == 0 {
			continue
		}
		clr := colorGood
		sign := "+"
		if value < 0 {
			clr = colorDanger
			sign = ""
		}
		rl.DrawText(fmt.Sprintf("%s %s%.0f", res, sign, value), int32(resultRect.X)+24, int32(resultRect.Y)+y, 20, clr)
		y += 28
	}

	if ui.lastResult.Death != nil {
		deathRect := rl.NewRectangle(float32(ui.width/2-420), 440, 840, 120)
		drawPanel(deathRect, "A loss")
		drawWrappedText(ui.lastResult.Death.Message, deathRect, 48, 20, colorDanger)
	}

	hintRect := rl.NewRectangle(20, float32(ui.height-56), float32(ui.width-40), 40)
	drawTextCentered("Enter to keep driving", hintRect, 4, 17, colorDim)
}

// finishJourney computes the score once and shows the ending screen.
func (ui *journeyUI) finishJourney() {
	score := game.ComputeScore(ui.journey)
	ui.score = &score
	ui.exportStatus = ""
	ui.screen = screenEnding
}

func (ui *journeyUI) updateEnding() {
	if rl.IsKeyPressed(rl.KeyE) && ui.exportStatus == "" {
		path, err := export.JournalPDF(ui.cfg.Runtime.ExportDir, ui.journey, *ui.score)
		if err != nil {
			ui.exportStatus = fmt.Sprintf("Export failed: %v", err)
		} else {
			ui.exportStatus = fmt.Sprintf("Journal saved to %s", path)
		}
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		ui.journey = nil
		ui.screen = screenTitle
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		ui.quit = true
	}
}

func (ui *journeyUI) drawEnding() {
	j := ui.journey
	if j == nil || ui.score == nil {
		return
	}

	won := j.Phase == game.PhaseWin
	title := "JOURNEY'S END"
	line := fmt.Sprintf("The %s family reached %s in %d days.", j.Config.LeaderName, j.Destination.Name, j.Day)
	clr := colorGood
	if !won {
		title = "THE ROAD WINS"
		line = fmt.Sprintf("The journey ended after %d days, %.0f miles from safety.", j.Day, j.TotalDist-j.DistanceTraveled)
		clr = colorDanger
	}

	headRect := rl.NewRectangle(float32(ui.width/2-420), 60, 840, 150)
	drawPanel(headRect, "")
	drawTextCentered(title, headRect, 34, 44, clr)
	drawTextCentered(line, headRect, 96, 20, colorText)

	scoreRect := rl.NewRectangle(float32(ui.width/2-420), 230, 840, float32(90+len(ui.score.Breakdown)*30))
	drawPanel(scoreRect, fmt.Sprintf("Score: %d", ui.score.Total))
	for i, entry := range ui.score.Breakdown {
		y := int32(scoreRect.Y) + 52 + int32(i)*30
		rl.DrawText(entry.Label, int32(scoreRect.X)+24, y, 20, colorText)
		rl.DrawText(fmt.Sprintf("%+d", entry.Points), int32(scoreRect.X+scoreRect.Width)-120, y, 20, colorAccent)
	}

	statusY := scoreRect.Y + scoreRect.Height + 20
	if ui.exportStatus != "" {
		statusRect := rl.NewRectangle(float32(ui.width/2-420), statusY, 840, 40)
		drawTextCentered(ui.exportStatus, statusRect, 4, 18, colorWarn)
	}

	hintRect := rl.NewRectangle(20, float32(ui.height-56), float32(ui.width-40), 40)
	drawTextCentered("E to export the journal as PDF, Enter for title screen, Q to quit", hintRect, 4, 17, colorDim)
}
