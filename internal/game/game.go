package game

import (
	"math/rand"

	"github.com/maxvk/flapmax/internal/config"
	"github.com/maxvk/flapmax/internal/core"
)

// Entities fully left of this world-space x are recycled. Chosen safely
// off-screen so nothing visible ever pops out of existence.
const recycleBoundary = -4.0

// State is the observable per-tick game state.
type State struct {
	MainScore   int
	CoinScore   int
	BurgerScore int
	Stamina     float64
	GameOver    bool
	Reason      GameOverReason
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State State
}

// GameOverEvent carries the terminal result of a session, passed by
// value to the host's callback exactly once per session.
type GameOverEvent struct {
	Reason      GameOverReason
	MainScore   int
	CoinScore   int
	BurgerScore int
}

// Game is the per-session orchestrator. It owns the hero, both
// spawners and their pools, and advances everything one fixed tick at a
// time. Single-threaded by design: the host calls Step once per display
// frame and nothing else mutates game state.
type Game struct {
	cfg        config.GameConfig
	runtime    core.RuntimeConfig
	worldW     float64
	worldH     float64
	unit       float64
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	hero         *Hero
	obstacles    *ObstacleSpawner
	collectibles *CollectibleSpawner

	cues       CueSink
	onGameOver func(GameOverEvent)

	mainScore   int
	coinScore   int
	burgerScore int
	gameOver    bool
	reason      GameOverReason
	tickCount   int
	floorOffset float64 // Visual floor scroll phase
	err         error   // First pool-protocol violation, kept for the host
}

// Option configures a Game at construction.
type Option func(*Game)

// WithCueSink routes audio cues to the given sink.
func WithCueSink(s CueSink) Option {
	return func(g *Game) {
		if s != nil {
			g.cues = s
		}
	}
}

// WithGameOverFunc registers the host callback fired once per session
// when the game reaches a terminal state.
func WithGameOverFunc(fn func(GameOverEvent)) Option {
	return func(g *Game) { g.onGameOver = fn }
}

// New creates a game session for the given configuration and screen.
// It fails when the configuration is invalid or the world is too short
// for the configured gap and margins; the session must not start in
// that case.
func New(cfg config.GameConfig, rc core.RuntimeConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	worldW := float64(rc.ScreenW)
	worldH := float64(rc.ScreenH)
	unit := cfg.Devices.Unit(config.Classify(rc.ScreenW, rc.ScreenH))
	rng := rand.New(rand.NewSource(rc.Seed))

	obstacles, err := NewObstacleSpawner(cfg.Obstacles, worldH, rng)
	if err != nil {
		return nil, err
	}
	collectibles, err := NewCollectibleSpawner(cfg.Collectibles, unit, rng)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:          cfg,
		runtime:      rc,
		worldW:       worldW,
		worldH:       worldH,
		unit:         unit,
		rng:          rng,
		difficulty:   config.NewDifficultyManager(cfg.Difficulty),
		hero:         &Hero{},
		obstacles:    obstacles,
		collectibles: collectibles,
		cues:         NopCueSink{},
	}
	for _, opt := range opts {
		opt(g)
	}

	g.Reset(rc.Seed)
	return g, nil
}

// Reset starts a fresh session with the given seed. All pooled entities
// are recycled, never discarded.
func (g *Game) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	if err := g.obstacles.Reset(g.rng); err != nil && g.err == nil {
		g.err = err
	}
	if err := g.collectibles.Reset(g.rng); err != nil && g.err == nil {
		g.err = err
	}

	g.hero.Pos = core.Vec2{X: g.cfg.Hero.X + g.cfg.Hero.Width/2, Y: g.worldH / 2}
	g.hero.Vel = 0
	g.hero.W = g.cfg.Hero.Width
	g.hero.H = g.cfg.Hero.Height
	g.hero.Restore(g.cfg.Stamina.Max)

	g.mainScore = 0
	g.coinScore = 0
	g.burgerScore = 0
	g.gameOver = false
	g.reason = ReasonNone
	g.tickCount = 0
	g.floorOffset = 0

	g.cues.Play(CueStart)
}

// Step advances the simulation by one tick. Within a tick the order is
// fixed: integrate, scroll, recycle, deplete, spawn, collide. Recycle
// must run before spawn so this tick's freed capacity is reusable, and
// collision resolution must see this tick's final positions.
func (g *Game) Step(in core.InputFrame) StepResult {
	if g.gameOver {
		return StepResult{State: g.State()}
	}

	g.tickCount++

	if in.Has(core.ActionFlap) {
		if g.hero.Flap(g.cfg.Physics.FlapImpulse, g.cfg.Stamina.FlapCost) {
			g.cues.Play(CueFlap)
		}
	}

	g.hero.Integrate(g.cfg.Physics.Gravity, g.cfg.Physics.MaxFallSpeed)
	g.hero.ClampCeiling(g.worldH)

	speed := g.difficulty.Speed(g.cfg.Physics.ScrollSpeed, g.mainScore, g.tickCount)
	g.obstacles.Scroll(speed)
	g.collectibles.Scroll(speed)
	g.floorOffset += speed

	if _, err := g.obstacles.RecycleOffscreen(recycleBoundary); err != nil && g.err == nil {
		g.err = err
	}
	if _, err := g.collectibles.RecycleOffscreen(recycleBoundary); err != nil && g.err == nil {
		g.err = err
	}

	if g.hero.Deplete(g.cfg.Stamina.DepletePerTick) <= 0 {
		g.finish(ReasonOutOfEnergy)
		return StepResult{State: g.State()}
	}

	spacing := g.difficulty.Spacing(g.cfg.Obstacles.Spacing, g.mainScore, g.tickCount)
	if x, due := g.obstacles.NextSpawnX(g.worldW, spacing); due {
		ps := g.obstacles.SpawnAt(x)
		g.collectibles.PlaceForSegment(ps.GapCenter(), g.obstacles.PoleCount())
	}

	if err := g.routeContacts(g.detectContacts()); err != nil && g.err == nil {
		g.err = err
	}

	return StepResult{State: g.State()}
}

// finish transitions to the terminal state and notifies the host.
func (g *Game) finish(reason GameOverReason) {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.reason = reason
	if reason == ReasonCollision {
		g.cues.Play(CueCollision)
	}
	if g.onGameOver != nil {
		g.onGameOver(GameOverEvent{
			Reason:      reason,
			MainScore:   g.mainScore,
			CoinScore:   g.coinScore,
			BurgerScore: g.burgerScore,
		})
	}
}

// State returns the current observable state.
func (g *Game) State() State {
	return State{
		MainScore:   g.mainScore,
		CoinScore:   g.coinScore,
		BurgerScore: g.burgerScore,
		Stamina:     g.hero.Stamina,
		GameOver:    g.gameOver,
		Reason:      g.reason,
	}
}

// Hero exposes the hero for the platform layer and tests.
func (g *Game) Hero() *Hero {
	return g.hero
}

// Obstacles exposes the obstacle spawner for the platform layer and tests.
func (g *Game) Obstacles() *ObstacleSpawner {
	return g.obstacles
}

// Collectibles exposes the collectible spawner for the platform layer and tests.
func (g *Game) Collectibles() *CollectibleSpawner {
	return g.collectibles
}

// Unit returns the device-derived pattern unit scale for this session.
func (g *Game) Unit() float64 {
	return g.unit
}

// TickCount returns the number of ticks since the last reset.
func (g *Game) TickCount() int {
	return g.tickCount
}

// Err returns the first pool-protocol violation observed, if any.
// Such a violation is a programming error; the session keeps running
// but the host may want to log it.
func (g *Game) Err() error {
	return g.err
}
