// internal/app/game.go
package app

import (
	"edge-arena/internal/component"
	"edge-arena/internal/config"
	"edge-arena/internal/defs"
	"edge-arena/internal/entity"
	"edge-arena/internal/event"
	"edge-arena/internal/system"
	"edge-arena/internal/utils"
	"log"
	"math"
	"time"
)

// Options configures a new Game. Zero values fall back to defaults.
type Options struct {
	Tuning *config.Tuning
	Defs   *defs.Library
	Seed   int64
	Clock  Clock
	NoBot  bool
}

// LoadOptions reads tuning and definitions from optional YAML files.
// An empty path keeps the built-in defaults.
func LoadOptions(tuningPath, defsPath string, seed int64) (Options, error) {
	opts := Options{Seed: seed}
	if tuningPath != "" {
		t, err := config.Load(tuningPath)
		if err != nil {
			return opts, err
		}
		opts.Tuning = &t
	}
	if defsPath != "" {
		lib, err := defs.LoadDefinitions(defsPath)
		if err != nil {
			return opts, err
		}
		opts.Defs = lib
	}
	return opts, nil
}

// Game holds the simulation and the systems that advance it.
type Game struct {
	tuning config.Tuning
	defs   *defs.Library
	clock  Clock
	noBot  bool

	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher

	state            *entity.State
	MovementSystem   *system.MovementSystem
	ScoreSystem      *system.ScoreSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	PickupSystem     *system.PickupSystem
	PlayerSystem     *system.PlayerSystem
	EnemyAISystem    *system.EnemyAISystem
	BotAISystem      *system.BotAISystem
	SpawnSystem      *system.SpawnSystem

	isPaused  bool
	lastFrame time.Time
	frames    int
}

// NewGame creates a game and resets it.
func NewGame(opts Options) *Game {
	tuning := config.Default()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	lib := opts.Defs
	if lib == nil {
		lib = defs.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock
	}

	g := &Game{
		tuning:          tuning,
		defs:            lib,
		clock:           clock,
		noBot:           opts.NoBot,
		Rng:             utils.NewPRNGService(opts.Seed),
		EventDispatcher: event.NewDispatcher(),
	}
	g.Reset()
	return g
}

// State exposes the simulation container. Callers must not mutate it while a tick runs.
func (g *Game) State() *entity.State { return g.state }

// Defs returns the definition library the game was built with.
func (g *Game) Defs() *defs.Library { return g.defs }

// Seed returns the seed that Reset replays.
func (g *Game) Seed() int64 { return g.Rng.Seed() }

// Reset rebuilds the world, obstacles, fighters, enemies and timers from the seed.
func (g *Game) Reset() {
	if g.SpawnSystem != nil {
		g.EventDispatcher.Unsubscribe(event.BossDefeated, g.SpawnSystem)
	}
	g.Rng.Reseed(g.Rng.Seed())
	g.EventDispatcher.Drain()

	st := entity.NewState(g.tuning, g.defs, g.Rng, g.EventDispatcher)
	g.state = st
	g.MovementSystem = system.NewMovementSystem(st)
	g.ScoreSystem = system.NewScoreSystem(st)
	g.CombatSystem = system.NewCombatSystem(st, g.ScoreSystem)
	g.ProjectileSystem = system.NewProjectileSystem(st, g.CombatSystem)
	g.PickupSystem = system.NewPickupSystem(st, g.ScoreSystem)
	g.PlayerSystem = system.NewPlayerSystem(st, g.MovementSystem)
	g.EnemyAISystem = system.NewEnemyAISystem(st, g.MovementSystem, g.PickupSystem)
	g.BotAISystem = system.NewBotAISystem(st, g.MovementSystem, g.ProjectileSystem)
	g.SpawnSystem = system.NewSpawnSystem(st, g.EventDispatcher)

	system.GenerateObstacles(st)
	home := st.SpawnPoint()
	st.Player = system.NewFighter(st, component.TagPlayer, home)
	if !g.noBot {
		st.Bot = system.NewFighter(st, component.TagBot, home.Add(utils.Vec2{X: g.tuning.BotSpawnOffset}))
	}
	g.SpawnSystem.Populate()

	g.frames = 0
	g.lastFrame = g.clock.Now()
	log.Printf("Game reset: seed %d, %d obstacles, %d enemies", g.Rng.Seed(), len(st.Obstacles), len(st.Enemies))
}

// Frame derives dt from the clock and runs one tick. It does nothing while paused.
func (g *Game) Frame(in Input) {
	if in.Pause {
		g.TogglePause()
	}
	if g.isPaused {
		return
	}
	now := g.clock.Now()
	dt := now.Sub(g.lastFrame).Seconds()
	g.lastFrame = now
	g.Tick(dt, in)
}

// Tick advances the simulation by dt seconds, clamped to config.MaxDeltaTime.
// Order: spawns, player, bot, enemies, boss, projectiles.
func (g *Game) Tick(dt float64, in Input) {
	dt = utils.Clamp(dt, 0, config.MaxDeltaTime)
	st := g.state
	st.Now += dt

	// 1. Таймеры появления
	g.SpawnSystem.Update()

	// 2. Игрок
	player := st.Player
	g.PlayerSystem.Steer(player, in.Move, in.Dash, dt)
	system.Regenerate(player, dt)
	g.PickupSystem.CollectFighter(player)
	g.CombatSystem.MeleeAll(player)
	if in.Wave {
		g.ProjectileSystem.Cast(player)
	}

	// 3. Бот
	if bot := st.Bot; bot != nil {
		g.BotAISystem.Update(bot, dt)
		system.Regenerate(bot, dt)
		g.PickupSystem.CollectFighter(bot)
		g.CombatSystem.MeleeAll(bot)
	}

	// 4-5. Враги и босс
	for _, e := range st.Enemies {
		g.EnemyAISystem.UpdateEnemy(e, dt)
	}
	g.EnemyAISystem.UpdateBoss(dt)

	// 6. Волны
	g.ProjectileSystem.Update(dt)
	g.frames++
}

// Pause stops ticking.
func (g *Game) Pause() { g.isPaused = true }

// Resume restarts ticking without a catch-up delta.
func (g *Game) Resume() {
	g.isPaused = false
	g.lastFrame = g.clock.Now()
}

// TogglePause flips between paused and running.
func (g *Game) TogglePause() {
	if g.isPaused {
		g.Resume()
	} else {
		g.Pause()
	}
}

// IsPaused reports whether the game is paused.
func (g *Game) IsPaused() bool { return g.isPaused }

// Frames returns the number of ticks since the last reset.
func (g *Game) Frames() int { return g.frames }

// Drain returns and clears the events produced since the previous call.
func (g *Game) Drain() []event.Event {
	return g.EventDispatcher.Drain()
}

// HUD projects the player's stats for display.
func (g *Game) HUD() HUD {
	st := g.state
	p := st.Player
	h := HUD{
		Edges:     p.Edges,
		Attack:    p.Attack,
		Defense:   p.Defense,
		Plasma:    p.Plasma,
		Wave:      p.Wave,
		Health:    int(math.Ceil(p.Health)),
		MaxHealth: p.MaxHealth,
		Kills:     st.Kills,
		Parts:     p.PartsCollected,
		Score:     p.Score,
		Banner:    st.Banner(),

		EdgeParts:      p.EdgeParts,
		PartsPerEdge:   g.tuning.PartsPerEdge,
		PlasmaParts:    p.PlasmaParts,
		PartsPerPlasma: g.tuning.PartsPerPlasma,
		WaveParts:      p.WaveParts,
		PartsPerWave:   g.tuning.PartsPerWave,
		PlasmaMax:      g.tuning.PlasmaMax,
		WaveMax:        g.tuning.WaveMax,

		DashReady: st.Now >= p.DashReadyAt,
		WaveReady: p.Wave > 0 && st.Now >= p.WaveReadyAt,
		Paused:    g.isPaused,
	}
	if st.Bot != nil {
		h.BotScore = st.Bot.Score
	}
	if st.Boss != nil {
		h.BossHealth = st.Boss.HealthRatio()
	}
	return h
}
