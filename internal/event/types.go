// internal/event/types.go
package event

// Визуальные запросы для рендерера
const (
	DamageTextShown EventType = "DamageText"
	ScoreTextShown  EventType = "ScoreText"
	BurstSpawned    EventType = "Burst"
	ShakeRequested  EventType = "Shake"
	FlashRequested  EventType = "Flash"
	BannerShown     EventType = "Banner"
)

// Игровые уведомления
const (
	EnemyKilled       EventType = "EnemyKilled"
	BossSpawned       EventType = "BossSpawned"
	BossDefeated      EventType = "BossDefeated"
	FighterEliminated EventType = "FighterEliminated"
	PartCollected     EventType = "PartCollected"
	WaveCast          EventType = "WaveCast"
	EdgeUp            EventType = "EdgeUp"
)
