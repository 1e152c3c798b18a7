// internal/config/tuning.go
package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds every gameplay number the simulation reads.
// Times are in seconds, distances in world pixels, speeds in pixels per second.
type Tuning struct {
	// Мир
	WorldWidth             float64 `yaml:"world_width"`
	WorldHeight            float64 `yaml:"world_height"`
	ObstacleCount          int     `yaml:"obstacle_count"`
	ObstacleAttemptsPer    int     `yaml:"obstacle_attempts_per"`
	ObstacleMinSize        float64 `yaml:"obstacle_min_size"`
	ObstacleMaxSize        float64 `yaml:"obstacle_max_size"`
	ObstaclePadding        float64 `yaml:"obstacle_padding"`
	ObstacleSpawnClearance float64 `yaml:"obstacle_spawn_clearance"`
	CollisionMargin        float64 `yaml:"collision_margin"`

	// Прогрессия
	BaseEdges             int     `yaml:"base_edges"`
	PlayerEdgeCap         int     `yaml:"player_edge_cap"`
	EnemyEdgeCap          int     `yaml:"enemy_edge_cap"`
	PlasmaMax             int     `yaml:"plasma_max"`
	WaveMax               int     `yaml:"wave_max"`
	AttackPerEdge         float64 `yaml:"attack_per_edge"`
	DefensePerEdge        float64 `yaml:"defense_per_edge"`
	HealthPerEdge         float64 `yaml:"health_per_edge"`
	AttackPerPlasma       int     `yaml:"attack_per_plasma"`
	PartsPerEdge          int     `yaml:"parts_per_edge"`
	PartsPerPlasma        int     `yaml:"parts_per_plasma"`
	PartsPerWave          int     `yaml:"parts_per_wave"`
	LevelUpHealFraction   float64 `yaml:"level_up_heal_fraction"`
	RegenPartHealFraction float64 `yaml:"regen_part_heal_fraction"`
	RegenBase             float64 `yaml:"regen_base"`
	RegenPerPart          float64 `yaml:"regen_per_part"`
	RegenMax              float64 `yaml:"regen_max"`

	// Игрок и движение
	FighterRadius        float64 `yaml:"fighter_radius"`
	FighterSpeed         float64 `yaml:"fighter_speed"`
	DashDuration         float64 `yaml:"dash_duration"`
	DashCooldown         float64 `yaml:"dash_cooldown"`
	DashSpeedMultiplier  float64 `yaml:"dash_speed_multiplier"`
	BotSpawnOffset       float64 `yaml:"bot_spawn_offset"`
	SpawnInvulnerability float64 `yaml:"spawn_invulnerability"`
	BossSpawnClearance   float64 `yaml:"boss_spawn_clearance"`
	PickupPadding        float64 `yaml:"pickup_padding"`

	// Бой
	HitRange         float64 `yaml:"hit_range"`
	MeleeCooldown    float64 `yaml:"melee_cooldown"`
	DefenseFactor    float64 `yaml:"defense_factor"`
	MinDamage        int     `yaml:"min_damage"`
	DamageJitter     float64 `yaml:"damage_jitter"`
	PrimedMultiplier float64 `yaml:"primed_multiplier"`
	PrimeWindow      float64 `yaml:"prime_window"`
	ShakeOnHit       float64 `yaml:"shake_on_hit"`

	// Волна
	WaveCooldown           float64 `yaml:"wave_cooldown"`
	WaveSpeed              float64 `yaml:"wave_speed"`
	WaveRange              float64 `yaml:"wave_range"`
	WaveWidth              float64 `yaml:"wave_width"`
	WaveLength             float64 `yaml:"wave_length"`
	WaveBaseMultiplier     float64 `yaml:"wave_base_multiplier"`
	WavePerLevelMultiplier float64 `yaml:"wave_per_level_multiplier"`

	// Враги и босс
	EnemyCount              int     `yaml:"enemy_count"`
	EnemyRetargetMin        float64 `yaml:"enemy_retarget_min"`
	EnemyRetargetMax        float64 `yaml:"enemy_retarget_max"`
	EnemyTargetJitter       float64 `yaml:"enemy_target_jitter"`
	EnemySpeedPerEdge       float64 `yaml:"enemy_speed_per_edge"`
	EnemyPartHeal           int     `yaml:"enemy_part_heal"`
	EnemyRespawnMinDistance float64 `yaml:"enemy_respawn_min_distance"`
	EnemyRerollChance       float64 `yaml:"enemy_reroll_chance"`
	BossEdges               int     `yaml:"boss_edges"`
	BossRadius              float64 `yaml:"boss_radius"`
	BossSpeed               float64 `yaml:"boss_speed"`
	BossStatScale           float64 `yaml:"boss_stat_scale"`
	BossTimerMin            float64 `yaml:"boss_timer_min"`
	BossTimerMax            float64 `yaml:"boss_timer_max"`
	BossSpawnMinDistance    float64 `yaml:"boss_spawn_min_distance"`
	BannerDuration          float64 `yaml:"banner_duration"`

	// Бот
	BotSpeedFactor         float64 `yaml:"bot_speed_factor"`
	BotSteerRate           float64 `yaml:"bot_steer_rate"`
	BotMoveIntentThreshold float64 `yaml:"bot_move_intent_threshold"`
	BotStuckEpsilon        float64 `yaml:"bot_stuck_epsilon"`
	BotStuckFrames         int     `yaml:"bot_stuck_frames"`
	BotStuckDecay          int     `yaml:"bot_stuck_decay"`
	BotEscapeBase          float64 `yaml:"bot_escape_base"`
	BotEscapeJitter        float64 `yaml:"bot_escape_jitter"`
	BotKiteRange           float64 `yaml:"bot_kite_range"`
	BotKiteCastChance      float64 `yaml:"bot_kite_cast_chance"`
	BotSeekCastChance      float64 `yaml:"bot_seek_cast_chance"`
	BotFollowJitter        float64 `yaml:"bot_follow_jitter"`

	// Предметы и очки
	PartRadius         float64 `yaml:"part_radius"`
	PartSpawnInterval  float64 `yaml:"part_spawn_interval"`
	PartCapacity       int     `yaml:"part_capacity"`
	PartSpawnMinRadius float64 `yaml:"part_spawn_min_radius"`
	PartSpawnMaxRadius float64 `yaml:"part_spawn_max_radius"`
	InitialParts       int     `yaml:"initial_parts"`
	ScoreEdgePart      int     `yaml:"score_edge_part"`
	ScoreRegenPart     int     `yaml:"score_regen_part"`
	ScoreWavePart      int     `yaml:"score_wave_part"`
	EnemyKillScore     int     `yaml:"enemy_kill_score"`
	BossKillScore      int     `yaml:"boss_kill_score"`
	PvPKillScore       int     `yaml:"pvp_kill_score"`
	PvPDropFraction    float64 `yaml:"pvp_drop_fraction"`
	ScoreOrbChunk      int     `yaml:"score_orb_chunk"`
	ScoreOrbMin        int     `yaml:"score_orb_min"`
	ScoreOrbMax        int     `yaml:"score_orb_max"`
	ScoreOrbRing       float64 `yaml:"score_orb_ring"`
	ScoreOrbLifetime   float64 `yaml:"score_orb_lifetime"`
}

// Default returns the built-in tuning.
func Default() Tuning {
	return Tuning{
		WorldWidth:             2400,
		WorldHeight:            1600,
		ObstacleCount:          14,
		ObstacleAttemptsPer:    20,
		ObstacleMinSize:        60,
		ObstacleMaxSize:        220,
		ObstaclePadding:        40,
		ObstacleSpawnClearance: 220,
		CollisionMargin:        1,

		BaseEdges:             4,
		PlayerEdgeCap:         12,
		EnemyEdgeCap:          16,
		PlasmaMax:             5,
		WaveMax:               5,
		AttackPerEdge:         3,
		DefensePerEdge:        2,
		HealthPerEdge:         15,
		AttackPerPlasma:       2,
		PartsPerEdge:          3,
		PartsPerPlasma:        3,
		PartsPerWave:          2,
		LevelUpHealFraction:   0.25,
		RegenPartHealFraction: 0.15,
		RegenBase:             0.5,
		RegenPerPart:          0.25,
		RegenMax:              6,

		FighterRadius:        18,
		FighterSpeed:         240,
		DashDuration:         0.18,
		DashCooldown:         1.2,
		DashSpeedMultiplier:  2.6,
		BotSpawnOffset:       70,
		SpawnInvulnerability: 1.5,
		BossSpawnClearance:   360,
		PickupPadding:        2,

		HitRange:         6,
		MeleeCooldown:    0.45,
		DefenseFactor:    0.58,
		MinDamage:        2,
		DamageJitter:     2,
		PrimedMultiplier: 3,
		PrimeWindow:      2.5,
		ShakeOnHit:       6,

		WaveCooldown:           1.6,
		WaveSpeed:              620,
		WaveRange:              520,
		WaveWidth:              22,
		WaveLength:             46,
		WaveBaseMultiplier:     1.4,
		WavePerLevelMultiplier: 0.15,

		EnemyCount:              10,
		EnemyRetargetMin:        0.65,
		EnemyRetargetMax:        1.2,
		EnemyTargetJitter:       60,
		EnemySpeedPerEdge:       0.04,
		EnemyPartHeal:           12,
		EnemyRespawnMinDistance: 500,
		EnemyRerollChance:       0.35,
		BossEdges:               14,
		BossRadius:              48,
		BossSpeed:               120,
		BossStatScale:           2.2,
		BossTimerMin:            45,
		BossTimerMax:            90,
		BossSpawnMinDistance:    600,
		BannerDuration:          2.5,

		BotSpeedFactor:         0.92,
		BotSteerRate:           6,
		BotMoveIntentThreshold: 0.2,
		BotStuckEpsilon:        0.6,
		BotStuckFrames:         24,
		BotStuckDecay:          2,
		BotEscapeBase:          0.6,
		BotEscapeJitter:        0.5,
		BotKiteRange:           320,
		BotKiteCastChance:      0.03,
		BotSeekCastChance:      0.01,
		BotFollowJitter:        80,

		PartRadius:         8,
		PartSpawnInterval:  0.9,
		PartCapacity:       40,
		PartSpawnMinRadius: 140,
		PartSpawnMaxRadius: 520,
		InitialParts:       12,
		ScoreEdgePart:      2,
		ScoreRegenPart:     1,
		ScoreWavePart:      4,
		EnemyKillScore:     25,
		BossKillScore:      250,
		PvPKillScore:       60,
		PvPDropFraction:    0.35,
		ScoreOrbChunk:      10,
		ScoreOrbMin:        2,
		ScoreOrbMax:        8,
		ScoreOrbRing:       36,
		ScoreOrbLifetime:   12,
	}
}

// Load reads a YAML tuning file. Keys absent from the file keep their defaults.
func Load(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning file: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning file %s: %w", path, err)
	}
	log.Printf("Loaded tuning from %s", path)
	return t, nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Tuning, error) {
	t := Default()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects tunings the simulation cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.WorldWidth <= 0 || t.WorldHeight <= 0:
		return fmt.Errorf("world size must be positive, got %.0fx%.0f", t.WorldWidth, t.WorldHeight)
	case t.ObstacleMinSize > t.ObstacleMaxSize:
		return fmt.Errorf("obstacle size range is inverted: [%.0f, %.0f]", t.ObstacleMinSize, t.ObstacleMaxSize)
	case t.BaseEdges < 3:
		return fmt.Errorf("base edges must be at least 3, got %d", t.BaseEdges)
	case t.PlayerEdgeCap < t.BaseEdges || t.EnemyEdgeCap < t.BaseEdges:
		return fmt.Errorf("edge caps (%d, %d) must not be below base edges %d", t.PlayerEdgeCap, t.EnemyEdgeCap, t.BaseEdges)
	case t.PlasmaMax < 0 || t.WaveMax < 0:
		return fmt.Errorf("plasma and wave caps must be non-negative")
	case t.PartsPerEdge <= 0 || t.PartsPerPlasma <= 0 || t.PartsPerWave <= 0:
		return fmt.Errorf("parts-per-level counters must be positive")
	case t.MeleeCooldown <= 0 || t.WaveCooldown <= 0:
		return fmt.Errorf("cooldowns must be positive")
	case t.WaveSpeed <= 0:
		return fmt.Errorf("wave speed must be positive, got %.1f", t.WaveSpeed)
	case t.EnemyRetargetMin > t.EnemyRetargetMax:
		return fmt.Errorf("enemy retarget range is inverted: [%.2f, %.2f]", t.EnemyRetargetMin, t.EnemyRetargetMax)
	case t.BossTimerMin <= 0 || t.BossTimerMin > t.BossTimerMax:
		return fmt.Errorf("boss timer range must be positive and ordered: [%.1f, %.1f]", t.BossTimerMin, t.BossTimerMax)
	case t.PartSpawnMinRadius > t.PartSpawnMaxRadius:
		return fmt.Errorf("part spawn annulus is inverted: [%.0f, %.0f]", t.PartSpawnMinRadius, t.PartSpawnMaxRadius)
	case t.PartSpawnInterval <= 0:
		return fmt.Errorf("part spawn interval must be positive")
	case t.PvPDropFraction < 0 || t.PvPDropFraction > 1:
		return fmt.Errorf("pvp drop fraction %.2f outside [0, 1]", t.PvPDropFraction)
	case t.ScoreOrbChunk <= 0 || t.ScoreOrbMin <= 0 || t.ScoreOrbMin > t.ScoreOrbMax:
		return fmt.Errorf("score orb chunking is invalid: chunk %d, count [%d, %d]", t.ScoreOrbChunk, t.ScoreOrbMin, t.ScoreOrbMax)
	case t.BotStuckFrames <= 0:
		return fmt.Errorf("bot stuck frame threshold must be positive")
	}
	return nil
}
