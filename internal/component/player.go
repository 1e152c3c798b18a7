// internal/component/player.go
package component

import "edge-arena/internal/utils"

// FighterTag identifies which of the two fighters an entity is.
type FighterTag int

const (
	TagPlayer FighterTag = iota
	TagBot
)

func (t FighterTag) String() string {
	if t == TagBot {
		return "bot"
	}
	return "player"
}

// Fighter — игрок или бот-компаньон.
type Fighter struct {
	Body
	Stats
	Tag  FighterTag
	Home utils.Vec2

	// Накопленные части
	EdgeParts      int
	PlasmaParts    int
	WaveParts      int
	RegenParts     int
	PartsCollected int

	Plasma    int
	Wave      int
	RegenRate float64 // здоровье в секунду

	DashUntil   float64
	DashReadyAt float64
	WaveReadyAt float64

	Primed    bool
	LastHitAt float64
	Aim       utils.Vec2
	Score     int

	InvulnUntil float64

	// Только для бота
	Stuck       int
	EscapeDir   utils.Vec2
	EscapeUntil float64
}

// IsBot reports whether the fighter is AI controlled.
func (f *Fighter) IsBot() bool { return f.Tag == TagBot }

// Dashing reports whether a dash is active at now.
func (f *Fighter) Dashing(now float64) bool { return now < f.DashUntil }

// Invulnerable reports whether the fighter ignores hits at now.
func (f *Fighter) Invulnerable(now float64) bool { return now < f.InvulnUntil }

// Escaping reports whether the bot's stuck recovery is active at now.
func (f *Fighter) Escaping(now float64) bool { return now < f.EscapeUntil }
