package arcade

import (
	"math"
	"math/rand/v2"

	"github.com/appengine-ltd/exodus-road/internal/game"
)

// Barricade play area bounds within the grid.
const (
	barricadePlayMinRow = 3
	barricadePlayMaxRow = 10
	barricadePlayMinCol = 2
	barricadePlayMaxCol = 65

	barricadeStartCol = 8
	barricadeStartRow = 6

	barricadeSceneDuration = 2.0
)

type barricadeParams struct {
	Duration       float64
	HazardRate     float64
	HazardSpeedMin float64
	HazardSpeedMax float64
	PickupRate     float64
	BaseSpeed      float64
	SpeedDrain     float64
	SpeedRecovery  float64
	StallThreshold float64
	EscapeDistance float64
}

// barricadeDifficulty scales the run by journey progress. Early journeys
// get a fast car and sparse hazards; late journeys the opposite.
func barricadeDifficulty(progress float64) barricadeParams {
	t := clamp(progress, 0, 1)
	return barricadeParams{
		Duration:       lerp(18, 15, t),
		HazardRate:     lerp(2.0, 5.0, t),
		HazardSpeedMin: lerp(8, 12, t),
		HazardSpeedMax: lerp(14, 21, t),
		PickupRate:     lerp(0.5, 0.8, t),
		BaseSpeed:      lerp(14, 10, t),
		SpeedDrain:     lerp(3.5, 5.0, t),
		SpeedRecovery:  lerp(1.5, 1.0, t),
		StallThreshold: 1.0,
		EscapeDistance: lerp(180, 220, t),
	}
}

// ObstacleKind indexes the sprite table used by the renderer.
type ObstacleKind int

const (
	ObstacleBarricade ObstacleKind = iota
	ObstacleWreckage
	ObstacleBarrier
	ObstacleDebris
	obstacleKindCount
)

// PickupKind distinguishes speed boosts from supply crates.
type PickupKind int

const (
	PickupNitro PickupKind = iota
	PickupSupplies
	pickupKindCount
)

type Mover struct {
	Col   float64
	Row   float64
	Speed float64
}

type Obstacle struct {
	Mover
	Kind ObstacleKind
}

type Pickup struct {
	Mover
	Kind PickupKind
}

// BarricadeOutcome is how the run ended.
type BarricadeOutcome int

const (
	BarricadeRunning BarricadeOutcome = iota
	BarricadeEscaped
	BarricadeCaught
)

// Barricade is the breakout-driving mini-game. The car auto-scrolls
// forward; obstacles drain speed on contact and the run ends when speed
// stalls out (caught) or escape distance is covered. Hitting the time
// limit with the car still moving also counts as an escape, so the run
// always terminates.
type Barricade struct {
	params barricadeParams
	rng    *rand.Rand

	PlayerCol float64
	PlayerRow float64

	Speed            float64
	DistanceTraveled float64

	Obstacles []Obstacle
	Pickups   []Pickup

	SuppliesCollected int
	HitFlash          int

	phase            Phase
	countdownElapsed float64
	elapsed          float64
	sceneElapsed     float64
	outcome          BarricadeOutcome

	obstacleAccum float64
	pickupAccum   float64
	groundOffset  float64
}

// NewBarricade builds a run scaled to journey progress in [0,1].
func NewBarricade(progress float64, rng *rand.Rand) *Barricade {
	params := barricadeDifficulty(progress)
	return &Barricade{
		params:    params,
		rng:       rng,
		PlayerCol: barricadeStartCol,
		PlayerRow: barricadeStartRow,
		Speed:     params.BaseSpeed,
		phase:     PhaseCountdown,
	}
}

func (b *Barricade) Phase() Phase { return b.phase }

// Outcome is valid once the phase reaches PhaseScene.
func (b *Barricade) Outcome() BarricadeOutcome { return b.outcome }

// CountdownRemaining reports seconds until the run goes live.
func (b *Barricade) CountdownRemaining() float64 {
	return countdownDuration - b.countdownElapsed
}

// SpeedFraction reports current speed against base, for the HUD bar.
func (b *Barricade) SpeedFraction() float64 {
	return math.Max(0, b.Speed/b.params.BaseSpeed)
}

// EscapeFraction reports distance progress in [0,1], for the HUD bar.
func (b *Barricade) EscapeFraction() float64 {
	return math.Min(1, b.DistanceTraveled/b.params.EscapeDistance)
}

// GroundOffset drives the scrolling road texture.
func (b *Barricade) GroundOffset() float64 { return b.groundOffset }

// Step advances the simulation by dt seconds. Returns the journey-facing
// result exactly once, after the scene card has run its course.
func (b *Barricade) Step(in Input, dt float64) *game.MiniGameResult {
	dt = math.Min(dt, maxStepDelta)

	switch b.phase {
	case PhaseCountdown:
		b.countdownElapsed += dt
		if b.countdownElapsed >= countdownDuration {
			b.phase = PhaseActive
		}
	case PhaseActive:
		b.update(in, dt)
	case PhaseScene:
		b.sceneElapsed += dt
		if b.sceneElapsed >= barricadeSceneDuration {
			b.phase = PhaseDone
			return b.buildResult()
		}
	}
	return nil
}

func (b *Barricade) update(in Input, dt float64) {
	b.elapsed += dt

	if b.Speed < b.params.BaseSpeed {
		b.Speed = math.Min(b.params.BaseSpeed, b.Speed+b.params.SpeedRecovery*dt)
	}

	b.DistanceTraveled += b.Speed * dt
	b.groundOffset = math.Mod(b.groundOffset+b.Speed*dt, GridWidth)

	// Forward motion is automatic; input only dodges.
	vSpeed := 8 * dt
	hSpeed := 6 * dt
	if in.Up {
		b.PlayerRow -= vSpeed
	}
	if in.Down {
		b.PlayerRow += vSpeed
	}
	if in.Left {
		b.PlayerCol -= hSpeed
	}
	if in.Right {
		b.PlayerCol += hSpeed
	}
	b.PlayerCol = clamp(b.PlayerCol, barricadePlayMinCol, barricadePlayMaxCol)
	b.PlayerRow = clamp(b.PlayerRow, barricadePlayMinRow, barricadePlayMaxRow)

	b.spawn(dt)
	b.advanceMovers(dt)
	b.collide()

	if b.HitFlash > 0 {
		b.HitFlash--
	}

	if b.Speed <= b.params.StallThreshold {
		b.endGame(BarricadeCaught)
		return
	}
	if b.DistanceTraveled >= b.params.EscapeDistance || b.elapsed >= b.params.Duration {
		b.endGame(BarricadeEscaped)
	}
}

func (b *Barricade) spawn(dt float64) {
	b.obstacleAccum += b.params.HazardRate * dt
	for b.obstacleAccum >= 1 {
		b.obstacleAccum--
		b.Obstacles = append(b.Obstacles, Obstacle{
			Mover: Mover{
				Col:   GridWidth - 1,
				Row:   float64(barricadePlayMinRow + b.rng.IntN(barricadePlayMaxRow-barricadePlayMinRow+1)),
				Speed: b.params.HazardSpeedMin + b.rng.Float64()*(b.params.HazardSpeedMax-b.params.HazardSpeedMin),
			},
			Kind: ObstacleKind(b.rng.IntN(int(obstacleKindCount))),
		})
	}

	b.pickupAccum += b.params.PickupRate * dt
	for b.pickupAccum >= 1 {
		b.pickupAccum--
		b.Pickups = append(b.Pickups, Pickup{
			Mover: Mover{
				Col:   GridWidth - 1,
				Row:   float64(barricadePlayMinRow + b.rng.IntN(barricadePlayMaxRow-barricadePlayMinRow+1)),
				Speed: 8 + b.rng.Float64()*4,
			},
			Kind: PickupKind(b.rng.IntN(int(pickupKindCount))),
		})
	}
}

func (b *Barricade) advanceMovers(dt float64) {
	live := b.Obstacles[:0]
	for i := range b.Obstacles {
		b.Obstacles[i].Col -= b.Obstacles[i].Speed * dt
		if b.Obstacles[i].Col > -2 {
			live = append(live, b.Obstacles[i])
		}
	}
	b.Obstacles = live

	keep := b.Pickups[:0]
	for i := range b.Pickups {
		b.Pickups[i].Col -= b.Pickups[i].Speed * dt
		if b.Pickups[i].Col > -2 {
			keep = append(keep, b.Pickups[i])
		}
	}
	b.Pickups = keep
}

func (b *Barricade) collide() {
	pCol := math.Round(b.PlayerCol)
	pRow := math.Round(b.PlayerRow)

	remaining := b.Obstacles[:0]
	for _, o := range b.Obstacles {
		if math.Round(o.Row) == pRow && math.Abs(math.Round(o.Col)-pCol) <= 1 {
			b.Speed = math.Max(0, b.Speed-b.params.SpeedDrain)
			b.HitFlash = 4
			continue
		}
		remaining = append(remaining, o)
	}
	b.Obstacles = remaining

	left := b.Pickups[:0]
	for _, p := range b.Pickups {
		if math.Round(p.Row) == pRow && math.Abs(math.Round(p.Col)-pCol) <= 1 {
			if p.Kind == PickupNitro {
				b.Speed = math.Min(b.params.BaseSpeed*1.5, b.Speed+5)
			} else {
				b.SuppliesCollected++
			}
			continue
		}
		left = append(left, p)
	}
	b.Pickups = left
}

func (b *Barricade) endGame(outcome BarricadeOutcome) {
	b.outcome = outcome
	b.phase = PhaseScene
	b.sceneElapsed = 0
}

func (b *Barricade) buildResult() *game.MiniGameResult {
	if b.outcome == BarricadeEscaped {
		effects := game.Delta{
			game.ResourceMorale: 8,
			game.ResourceHealth: -5,
		}
		supplies := []game.Resource{game.ResourceFuel, game.ResourceWater, game.ResourceFood}
		for i := 0; i < b.SuppliesCollected; i++ {
			effects[supplies[b.rng.IntN(len(supplies))]] += 3
		}
		return &game.MiniGameResult{
			Survived:  true,
			Narrative: "Metal screeches as you smash through the barricade. The family cheers. You're free!",
			Effects:   effects,
		}
	}

	return &game.MiniGameResult{
		Survived:  false,
		Narrative: "The wreckage stalls the vehicle. Armed figures surround you, taking what they want.",
		Effects: game.Delta{
			game.ResourceHealth: -20,
			game.ResourceFuel:   -15,
			game.ResourceMorale: -12,
			game.ResourceFood:   -10,
		},
	}
}
