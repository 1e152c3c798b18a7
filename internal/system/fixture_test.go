package system

import (
	"edge-arena/internal/component"
	"edge-arena/internal/config"
	"edge-arena/internal/defs"
	"edge-arena/internal/entity"
	"edge-arena/internal/event"
	"edge-arena/internal/utils"
	"testing"
)

// fixture wires every system over an empty world: no obstacles, no enemies, no parts.
type fixture struct {
	st         *entity.State
	events     *event.Dispatcher
	movement   *MovementSystem
	score      *ScoreSystem
	combat     *CombatSystem
	projectile *ProjectileSystem
	pickup     *PickupSystem
	player     *PlayerSystem
	enemyAI    *EnemyAISystem
	botAI      *BotAISystem
	spawn      *SpawnSystem
}

func newFixture(t *testing.T, tweak func(*config.Tuning)) *fixture {
	t.Helper()
	tuning := config.Default()
	if tweak != nil {
		tweak(&tuning)
	}
	events := event.NewDispatcher()
	st := entity.NewState(tuning, defs.Default(), utils.NewPRNGService(7), events)
	st.Now = 10

	f := &fixture{st: st, events: events}
	f.movement = NewMovementSystem(st)
	f.score = NewScoreSystem(st)
	f.combat = NewCombatSystem(st, f.score)
	f.projectile = NewProjectileSystem(st, f.combat)
	f.pickup = NewPickupSystem(st, f.score)
	f.player = NewPlayerSystem(st, f.movement)
	f.enemyAI = NewEnemyAISystem(st, f.movement, f.pickup)
	f.botAI = NewBotAISystem(st, f.movement, f.projectile)
	f.spawn = NewSpawnSystem(st, events)

	st.Player = NewFighter(st, component.TagPlayer, st.SpawnPoint())
	return f
}

// withBot adds the companion at the usual offset from the player.
func (f *fixture) withBot() *component.Fighter {
	home := f.st.SpawnPoint().Add(utils.Vec2{X: f.st.Tuning.BotSpawnOffset})
	f.st.Bot = NewFighter(f.st, component.TagBot, home)
	return f.st.Bot
}

// enemyAt places a wild chaser at pos with its rolled stats.
func (f *fixture) enemyAt(pos utils.Vec2) *component.Enemy {
	e := NewEnemy(f.st, defs.VariantChaser)
	e.Pos = pos
	f.st.Enemies = append(f.st.Enemies, e)
	return e
}

// touching returns a point where a circle of radius r just touches f.
func touching(f *component.Fighter, r float64) utils.Vec2 {
	return f.Pos.Add(utils.Vec2{X: f.Radius + r + 1})
}

func eventsOf(evs []event.Event, t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range evs {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
