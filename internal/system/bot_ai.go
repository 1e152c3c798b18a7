// internal/system/bot_ai.go
package system

import (
	"edge-arena/internal/component"
	"edge-arena/internal/entity"
	"edge-arena/internal/utils"
	"math"
)

// BotMode is the companion's behaviour for the current tick.
type BotMode int

const (
	BotSeek BotMode = iota
	BotKite
	BotEscape
)

func (m BotMode) String() string {
	switch m {
	case BotKite:
		return "kite"
	case BotEscape:
		return "escape"
	default:
		return "seek"
	}
}

// BotAISystem управляет ботом-компаньоном: сбор предметов, следование за игроком,
// уход от босса и выход из застревания.
type BotAISystem struct {
	state      *entity.State
	movement   *MovementSystem
	projectile *ProjectileSystem
}

func NewBotAISystem(state *entity.State, movement *MovementSystem, projectile *ProjectileSystem) *BotAISystem {
	return &BotAISystem{state: state, movement: movement, projectile: projectile}
}

// Mode picks the behaviour for this tick.
func (s *BotAISystem) Mode(bot *component.Fighter) BotMode {
	st := s.state
	if bot.Escaping(st.Now) {
		return BotEscape
	}
	if st.Boss != nil && bot.Pos.Dist(st.Boss.Pos) < st.Tuning.BotKiteRange {
		return BotKite
	}
	return BotSeek
}

// Update steers, moves and runs stuck detection for the bot.
func (s *BotAISystem) Update(bot *component.Fighter, deltaTime float64) BotMode {
	st := s.state
	t := st.Tuning

	mode := s.Mode(bot)
	desired := s.desired(bot, mode)

	blend := math.Min(1, t.BotSteerRate*deltaTime)
	bot.Vel = utils.LerpVec(bot.Vel, desired, blend)
	if bot.Vel.Len() > t.BotMoveIntentThreshold && mode != BotKite {
		bot.Aim = bot.Vel.Normalize(utils.UnitX)
	}

	speed := t.FighterSpeed * t.BotSpeedFactor
	before := bot.Pos
	s.movement.Move(&bot.Body, bot.Vel, speed, deltaTime)
	bot.Angle += fighterSpin * deltaTime
	s.DetectStuck(bot, before)
	return mode
}

func (s *BotAISystem) desired(bot *component.Fighter, mode BotMode) utils.Vec2 {
	st := s.state
	t := st.Tuning

	switch mode {
	case BotEscape:
		return bot.EscapeDir
	case BotKite:
		toBoss := st.Boss.Pos.Sub(bot.Pos).Normalize(utils.UnitX)
		if st.Rng.Chance(t.BotKiteCastChance) {
			bot.Aim = toBoss
			s.projectile.Cast(bot)
		}
		return toBoss.Scale(-1)
	}

	if st.Rng.Chance(t.BotSeekCastChance) {
		s.projectile.Cast(bot)
	}
	if p := NearestPart(st, bot.Pos, 0); p != nil {
		return p.Pos.Sub(bot.Pos).Normalize(utils.Vec2{})
	}
	if bot.Pos.Dist(st.Player.Pos) < t.BotSpawnOffset {
		return utils.Vec2{}
	}
	goal := st.Player.Pos.Add(utils.Vec2{
		X: st.Rng.Jitter(t.BotFollowJitter),
		Y: st.Rng.Jitter(t.BotFollowJitter),
	})
	return goal.Sub(bot.Pos).Normalize(utils.Vec2{})
}

// DetectStuck counts frames where the bot meant to move but barely did.
// Good frames decay the counter; a long enough run starts an escape.
func (s *BotAISystem) DetectStuck(bot *component.Fighter, before utils.Vec2) {
	st := s.state
	t := st.Tuning

	moved := bot.Pos.Dist(before)
	if bot.Vel.Len() > t.BotMoveIntentThreshold && moved < t.BotStuckEpsilon {
		bot.Stuck++
	} else {
		bot.Stuck = utils.ClampInt(bot.Stuck-t.BotStuckDecay, 0, bot.Stuck)
	}

	if bot.Stuck > t.BotStuckFrames {
		bot.EscapeDir = st.Rng.Direction()
		bot.EscapeUntil = st.Now + t.BotEscapeBase + st.Rng.Float64()*t.BotEscapeJitter
		bot.Stuck = 0
	}
}
