package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/exodus-road/internal/arcade"
	"github.com/appengine-ltd/exodus-road/internal/game"
)

// Cell size for the arcade grid rendering.
const (
	arcadeCellW = 14
	arcadeCellH = 26
)

func (ui *journeyUI) startMiniGame() {
	j := ui.journey
	rng := j.RNG()

	switch j.PendingMiniGame() {
	case game.MiniGameBarricade:
		ui.barricade = arcade.NewBarricade(j.Progress(), rng)
		ui.shelter = nil
	case game.MiniGameShelter:
		ui.shelter = arcade.NewShelterDash(j.Progress(), j.WeatherRisk, rng)
		ui.barricade = nil
	default:
		// No engine to run; resolve as a neutral survival.
		ui.lastResult = j.ResolveMiniGame(game.MiniGameResult{Survived: true, Narrative: "You press on."})
		ui.screen = screenResult
		return
	}
	ui.screen = screenMiniGame
}

func sampleInput() arcade.Input {
	return arcade.Input{
		Up:    rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyW),
		Down:  rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyS),
		Left:  rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA),
		Right: rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD),
	}
}

func (ui *journeyUI) updateMiniGame(delta time.Duration) {
	j := ui.journey
	if j == nil {
		ui.screen = screenTitle
		return
	}

	in := sampleInput()
	dt := delta.Seconds()

	var result *game.MiniGameResult
	if ui.barricade != nil {
		result = ui.barricade.Step(in, dt)
	} else if ui.shelter != nil {
		result = ui.shelter.Step(in, dt)
	} else {
		ui.screen = screenTravel
		return
	}

	if result != nil {
		ui.barricade = nil
		ui.shelter = nil
		ui.lastResult = j.ResolveMiniGame(*result)
		if j.Phase == game.PhaseLose {
			ui.finishJourney()
			return
		}
		ui.screen = screenResult
	}
}

func (ui *journeyUI) drawMiniGame() {
	if ui.barricade != nil {
		ui.drawBarricade()
	} else if ui.shelter != nil {
		ui.drawShelter()
	}
}

// arcadeOrigin centers the grid in the window.
func (ui *journeyUI) arcadeOrigin() (int32, int32) {
	x := (ui.width - arcade.GridWidth*arcadeCellW) / 2
	y := (ui.height - arcade.GridHeight*arcadeCellH) / 2
	return x, y
}

func (ui *journeyUI) drawArcadeFrame(title string) (int32, int32) {
	ox, oy := ui.arcadeOrigin()
	frame := rl.NewRectangle(float32(ox-16), float32(oy-46), arcade.GridWidth*arcadeCellW+32, arcade.GridHeight*arcadeCellH+62)
	drawPanel(frame, title)
	return ox, oy
}

func cellPos(ox, oy int32, col, row float64) (int32, int32) {
	return ox + int32(col*arcadeCellW), oy + int32(row*arcadeCellH)
}

func (ui *journeyUI) drawBarricade() {
	b := ui.barricade
	ox, oy := ui.drawArcadeFrame("CRASH THE BARRICADE")

	if b.Phase() == arcade.PhaseCountdown {
		mid := rl.NewRectangle(float32(ox), float32(oy), arcade.GridWidth*arcadeCellW, arcade.GridHeight*arcadeCellH)
		drawTextCentered(arcade.CountdownLabel(b.CountdownRemaining()), mid, int32(mid.Height/2-30), 60, colorAccent)
		drawTextCentered("W/A/S/D to dodge. Keep your speed up to break free!", mid, int32(mid.Height/2+50), 20, colorDim)
		return
	}

	if b.Phase() == arcade.PhaseScene {
		mid := rl.NewRectangle(float32(ox), float32(oy), arcade.GridWidth*arcadeCellW, arcade.GridHeight*arcadeCellH)
		if b.Outcome() == arcade.BarricadeEscaped {
			drawTextCentered("YOU ESCAPED!", mid, int32(mid.Height/2-30), 52, colorGood)
			drawTextCentered("The barricade shrinks in the rearview mirror.", mid, int32(mid.Height/2+40), 20, colorText)
		} else {
			drawTextCentered("CAUGHT!", mid, int32(mid.Height/2-30), 52, colorDanger)
			drawTextCentered("The raiders surround the car.", mid, int32(mid.Height/2+40), 20, colorText)
		}
		return
	}

	// Road lanes
	for row := 3; row <= 10; row++ {
		y := oy + int32(row*arcadeCellH)
		rl.DrawRectangle(ox, y, arcade.GridWidth*arcadeCellW, arcadeCellH, rl.Fade(colorPanel, 0.5))
	}
	offset := int32(b.GroundOffset())
	for col := int32(0); col < arcade.GridWidth; col++ {
		if (col+offset)%4 < 2 {
			y := oy + int32(7*arcadeCellH)
			rl.DrawRectangle(ox+col*arcadeCellW+2, y+arcadeCellH/2, arcadeCellW-4, 3, rl.Fade(colorDim, 0.5))
		}
	}

	obstacleChars := []string{"#", "X", "=", "/"}
	for _, o := range b.Obstacles {
		x, y := cellPos(ox, oy, o.Col, o.Row)
		rl.DrawText(obstacleChars[int(o.Kind)], x, y, arcadeCellH, colorDanger)
	}
	for _, p := range b.Pickups {
		x, y := cellPos(ox, oy, p.Col, p.Row)
		if p.Kind == arcade.PickupNitro {
			rl.DrawText(">", x, y, arcadeCellH, colorAccent)
		} else {
			rl.DrawText("$", x, y, arcadeCellH, colorGood)
		}
	}

	px, py := cellPos(ox, oy, b.PlayerCol, b.PlayerRow)
	playerClr := colorGood
	if b.HitFlash > 0 {
		playerClr = colorDanger
	}
	rl.DrawText("@", px, py, arcadeCellH, playerClr)

	hud := fmt.Sprintf("Speed %3.0f%%   Escape %3.0f%%   Supplies %d",
		b.SpeedFraction()*100, b.EscapeFraction()*100, b.SuppliesCollected)
	rl.DrawText(hud, ox, oy-30, 20, colorText)
}

func (ui *journeyUI) drawShelter() {
	s := ui.shelter
	ox, oy := ui.drawArcadeFrame(fmt.Sprintf("SHELTER DASH  |  %s WARNING", s.Peril()))

	if s.Phase() == arcade.PhaseCountdown {
		mid := rl.NewRectangle(float32(ox), float32(oy), arcade.GridWidth*arcadeCellW, arcade.GridHeight*arcadeCellH)
		drawTextCentered(arcade.CountdownLabel(s.CountdownRemaining()), mid, int32(mid.Height/2-30), 60, colorAccent)
		drawTextCentered("W/A/S/D to move. Get under cover and survive the timer!", mid, int32(mid.Height/2+50), 20, colorDim)
		return
	}

	if s.Phase() == arcade.PhaseScene {
		mid := rl.NewRectangle(float32(ox), float32(oy), arcade.GridWidth*arcadeCellW, arcade.GridHeight*arcadeCellH)
		switch s.Outcome() {
		case arcade.ShelterSurvived:
			drawTextCentered("YOU SURVIVED!", mid, int32(mid.Height/2-30), 52, colorGood)
		case arcade.ShelterBarely:
			drawTextCentered("BARELY MADE IT", mid, int32(mid.Height/2-30), 52, colorWarn)
		default:
			drawTextCentered("COLLAPSED", mid, int32(mid.Height/2-30), 52, colorDanger)
		}
		return
	}

	// Hazard particles fill exposed ground; positions hash off the clock
	// so the field shimmers without engine state.
	frame := int(rl.GetTime() * 12)
	for row := 2; row <= 16; row++ {
		for col := 1; col <= 68; col++ {
			hash := (row*131 + col*997 + frame*37) % 1000
			if float64(hash)/1000 < s.PerilDensity() {
				x, y := cellPos(ox, oy, float64(col), float64(row))
				rl.DrawText("*", x, y, arcadeCellH, rl.Fade(colorDanger, 0.8))
			}
		}
	}

	for _, shelter := range s.Shelters {
		for dr := 0; dr < shelter.Size; dr++ {
			for dc := 0; dc < shelter.Size; dc++ {
				x, y := cellPos(ox, oy, float64(shelter.Col+dc), float64(shelter.Row+dr))
				switch {
				case dr == 0:
					rl.DrawText("^", x, y, arcadeCellH, colorAccent)
				case dc == 0 || dc == shelter.Size-1:
					rl.DrawText("|", x, y, arcadeCellH, colorAccent)
				default:
					rl.DrawRectangle(x, y, arcadeCellW, arcadeCellH, rl.Fade(colorPanel, 0.9))
				}
			}
		}
	}

	px, py := cellPos(ox, oy, s.PlayerCol, s.PlayerRow)
	playerClr := colorDanger
	if s.InShelter {
		playerClr = colorGood
	}
	rl.DrawText("@", px, py, arcadeCellH, playerClr)

	status := "EXPOSED!"
	if s.InShelter {
		status = "SHELTERED"
	}
	hud := fmt.Sprintf("Health %3.0f%%   Time %4.1fs   %s", s.Health, s.TimeLeft(), status)
	rl.DrawText(hud, ox, oy-30, 20, colorText)
}
