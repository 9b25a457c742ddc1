package gui

import (
	"context"
	"fmt"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/exodus-road/internal/arcade"
	"github.com/appengine-ltd/exodus-road/internal/config"
	"github.com/appengine-ltd/exodus-road/internal/game"
	"github.com/appengine-ltd/exodus-road/internal/weather"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Seed      int64
	Runtime   config.Config
	Content   *game.ContentPack
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	ui := newJourneyUI(a.cfg)
	return ui.Run()
}

type screen int

const (
	screenTitle screen = iota
	screenSetup
	screenTravel
	screenEvent
	screenMiniGame
	screenResult
	screenEnding
)

// Seconds of real time per simulated travel day.
const travelDaySeconds = 1.5

type weatherUpdate struct {
	risk      game.WeatherRisk
	narrative string
	waypoint  string
}

type journeyUI struct {
	cfg AppConfig

	width  int32
	height int32
	quit   bool

	screen screen

	setup setupState

	journey *game.JourneyState

	dayTimer     float64
	eventCursor  int
	lastResult   game.ChoiceResult
	lastTravel   game.TravelOutcome
	score        *game.Score
	exportStatus string

	barricade *arcade.Barricade
	shelter   *arcade.ShelterDash

	weatherClient *weather.Client
	weatherCh     chan weatherUpdate
	weatherNote   string
	lastWaypoint  string

	lastTick time.Time
}

var (
	colorBG     = rl.NewColor(16, 12, 8, 255)
	colorPanel  = rl.NewColor(32, 24, 16, 255)
	colorBorder = rl.NewColor(196, 120, 40, 255)
	colorText   = rl.NewColor(242, 226, 198, 255)
	colorDim    = rl.NewColor(168, 140, 104, 255)
	colorAccent = rl.NewColor(255, 164, 58, 255)
	colorWarn   = rl.NewColor(255, 198, 96, 255)
	colorDanger = rl.NewColor(226, 74, 58, 255)
	colorGood   = rl.NewColor(118, 196, 98, 255)
)

func newJourneyUI(cfg AppConfig) *journeyUI {
	var opts []weather.Option
	if cfg.Runtime.WeatherBaseURL != "" {
		opts = append(opts, weather.WithBaseURL(cfg.Runtime.WeatherBaseURL))
	}

	ui := &journeyUI{
		cfg:           cfg,
		width:         int32(cfg.Runtime.WindowWidth),
		height:        int32(cfg.Runtime.WindowHeight),
		screen:        screenTitle,
		setup:         newSetupState(cfg.Seed),
		weatherClient: weather.NewClient(cfg.Runtime.WeatherAPIKey, opts...),
		weatherCh:     make(chan weatherUpdate, 4),
	}
	ui.lastTick = time.Now()
	return ui
}

func (ui *journeyUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "exodus-road")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(delta)

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

func (ui *journeyUI) update(delta time.Duration) {
	ui.pollWeather()

	switch ui.screen {
	case screenTitle:
		ui.updateTitle()
	case screenSetup:
		ui.updateSetup()
	case screenTravel:
		ui.updateTravel(delta)
	case screenEvent:
		ui.updateEvent()
	case screenMiniGame:
		ui.updateMiniGame(delta)
	case screenResult:
		ui.updateResult()
	case screenEnding:
		ui.updateEnding()
	}
}

func (ui *journeyUI) draw() {
	switch ui.screen {
	case screenTitle:
		ui.drawTitle()
	case screenSetup:
		ui.drawSetup()
	case screenTravel:
		ui.drawTravel()
	case screenEvent:
		ui.drawEvent()
	case screenMiniGame:
		ui.drawMiniGame()
	case screenResult:
		ui.drawResult()
	case screenEnding:
		ui.drawEnding()
	}
}

func (ui *journeyUI) updateTitle() {
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
		ui.setup = newSetupState(ui.cfg.Seed)
		ui.screen = screenSetup
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		ui.quit = true
	}
}

func (ui *journeyUI) drawTitle() {
	titleRect := rl.NewRectangle(20, 20, float32(ui.width-40), 200)
	drawPanel(titleRect, "")
	drawTextCentered("EXODUS ROAD", titleRect, 48, 64, colorAccent)
	drawTextCentered("A climate migration journey", titleRect, 124, 22, colorDim)
	drawTextCentered(fmt.Sprintf("v%s (%s) %s", ui.cfg.Version, ui.cfg.Commit, ui.cfg.BuildDate), titleRect, 158, 17, colorDim)

	bodyRect := rl.NewRectangle(float32(ui.width/2-360), 260, 720, 300)
	drawPanel(bodyRect, "The Road North")
	drawWrappedText("The coasts are drowning, the west is burning, and the middle of the country "+
		"bakes under a sun that no longer relents. Pack the car, gather your family, and drive "+
		"for one of the last livable cities. Fuel, water, food, health, and hope are all you have. "+
		"Lose any one of them and the road wins.", bodyRect, 56, 20, colorText)

	hintRect := rl.NewRectangle(20, float32(ui.height-64), float32(ui.width-40), 40)
	drawTextCentered("Enter to begin, Q to quit", hintRect, 8, 18, colorDim)
}

// beginJourney builds the journey from the setup selections and moves to
// the travel screen.
func (ui *journeyUI) beginJourney() {
	cfg := ui.setup.journeyConfig()
	journey, err := game.NewJourney(cfg)
	if err != nil {
		ui.setup.Status = err.Error()
		return
	}
	if ui.cfg.Content != nil {
		ui.cfg.Content.Apply(journey)
	}

	ui.journey = journey
	ui.dayTimer = 0
	ui.score = nil
	ui.exportStatus = ""
	ui.weatherNote = ""
	ui.lastWaypoint = ""
	ui.requestWeather()
	ui.screen = screenTravel
}

// requestWeather kicks off a background lookup for the current waypoint.
// Results arrive on weatherCh; a failed lookup simply never reports.
func (ui *journeyUI) requestWeather() {
	if ui.journey == nil {
		return
	}
	wp := ui.journey.CurrentWaypoint()
	if wp.Name == ui.lastWaypoint {
		return
	}
	ui.lastWaypoint = wp.Name

	client := ui.weatherClient
	ch := ui.weatherCh
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		conditions, ok := client.Fetch(ctx, wp.Lat, wp.Lon)
		ch <- weatherUpdate{
			risk:      weather.RiskFrom(conditions, ok),
			narrative: weather.Narrative(conditions, ok),
			waypoint:  wp.Name,
		}
	}()
}

func (ui *journeyUI) pollWeather() {
	for {
		select {
		case update := <-ui.weatherCh:
			if ui.journey != nil && update.waypoint == ui.lastWaypoint {
				ui.journey.WeatherRisk = update.risk
				ui.weatherNote = update.narrative
			}
		default:
			return
		}
	}
}

// ---------------------------------------------------------------------------
// Shared draw helpers
// ---------------------------------------------------------------------------

func drawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, 0.04, 8, colorPanel)
	rl.DrawRectangleRoundedLinesEx(rect, 0.04, 8, 2, colorBorder)
	if title != "" {
		rl.DrawText(title, int32(rect.X)+12, int32(rect.Y)+8, 20, colorAccent)
	}
}

func drawTextCentered(text string, rect rl.Rectangle, yOffset int32, fontSize int32, clr rl.Color) {
	width := rl.MeasureText(text, fontSize)
	x := int32(rect.X + (rect.Width-float32(width))/2)
	rl.DrawText(text, x, int32(rect.Y)+yOffset, fontSize, clr)
}

func drawWrappedText(text string, rect rl.Rectangle, y int32, size int32, clr rl.Color) {
	maxWidth := int32(rect.Width) - 26
	lines := wrapText(text, size, maxWidth)
	for i, line := range lines {
		rl.DrawText(line, int32(rect.X)+14, int32(rect.Y)+y+int32(i)*(size+6), size, clr)
	}
}

func wrapText(text string, size int32, maxWidth int32) []string {
	words := strings.Fields(text)
	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if rl.MeasureText(candidate, size) > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// drawGaugeBar renders one resource gauge with warn/danger coloring.
func drawGaugeBar(label string, value float64, x, y int32, width int32) {
	v := clampInt(int(value), 0, 100)
	fill := colorGood
	if v <= 20 {
		fill = colorDanger
	} else if v <= 40 {
		fill = colorWarn
	}

	rl.DrawText(fmt.Sprintf("%s %d%%", label, v), x, y, 17, colorDim)
	track := rl.NewRectangle(float32(x), float32(y+22), float32(width), 10)
	rl.DrawRectangleRec(track, rl.Fade(colorPanel, 0.9))
	if v > 0 {
		rl.DrawRectangleRec(rl.NewRectangle(track.X+1, track.Y+1, (track.Width-2)*float32(v)/100, track.Height-2), fill)
	}
	rl.DrawRectangleLinesEx(track, 1, rl.Fade(colorBorder, 0.95))
}

func captureTextInput(target *string, maxLen int) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 && len(*target) < maxLen {
			*target += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(*target) > 0 {
		*target = (*target)[:len(*target)-1]
	}
}

func wrapIndex(i int, size int) int {
	if size <= 0 {
		return 0
	}
	for i < 0 {
		i += size
	}
	for i >= size {
		i -= size
	}
	return i
}

func clampInt(v int, min int, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
