// internal/system/utils.go
package system

import (
	"edge-arena/internal/component"
	"edge-arena/internal/config"
	"edge-arena/internal/utils"
	"math"
)

// RollDamage рассчитывает урон одного удара с учётом защиты, разброса и множителя.
// Урон никогда не бывает меньше t.MinDamage.
func RollDamage(t config.Tuning, rng *utils.PRNGService, attack, defense int, mult float64) int {
	raw := float64(attack) - float64(defense)*t.DefenseFactor
	dmg := int(math.Round((raw + rng.Jitter(t.DamageJitter)) * mult))
	if dmg < t.MinDamage {
		dmg = t.MinDamage
	}
	return dmg
}

// Combatant is a tagged reference to either a fighter or an enemy (boss included).
// Exactly one field is set.
type Combatant struct {
	Fighter *component.Fighter
	Enemy   *component.Enemy
}

func FighterRef(f *component.Fighter) Combatant { return Combatant{Fighter: f} }
func EnemyRef(e *component.Enemy) Combatant     { return Combatant{Enemy: e} }

func (c Combatant) body() *component.Body {
	if c.Fighter != nil {
		return &c.Fighter.Body
	}
	return &c.Enemy.Body
}

func (c Combatant) stats() *component.Stats {
	if c.Fighter != nil {
		return &c.Fighter.Stats
	}
	return &c.Enemy.Stats
}

func (c Combatant) same(o Combatant) bool {
	return c.Fighter == o.Fighter && c.Enemy == o.Enemy
}

// Name identifies the combatant in events.
func (c Combatant) Name() string {
	switch {
	case c.Fighter != nil:
		return c.Fighter.Tag.String()
	case c.Enemy.IsBoss:
		return "boss"
	default:
		return c.Enemy.Variant.String()
	}
}
