// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for one enemy variant.
type EnemyDefinition struct {
	Variant EnemyVariant `yaml:"variant"`
	Name    string       `yaml:"name"`
	// Speed is the base movement speed in pixels per second at 4 edges.
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
	// Stat multipliers applied on top of the edge-derived stats.
	AttackScale  float64 `yaml:"attack_scale"`
	DefenseScale float64 `yaml:"defense_scale"`
	HealthScale  float64 `yaml:"health_scale"`
	// LootRadius is how far the enemy notices unclaimed parts.
	LootRadius float64 `yaml:"loot_radius"`
	// GrowChance is the chance an edge part becomes an extra edge.
	GrowChance float64 `yaml:"grow_chance"`
	// Spawn edge range, inclusive.
	MinEdges int     `yaml:"min_edges"`
	MaxEdges int     `yaml:"max_edges"`
	Visuals  Visuals `yaml:"visuals"`
	// Weight is the relative chance of this variant on spawn and reroll.
	Weight int `yaml:"weight"`
}

// Visuals contains parameters for rendering an enemy.
type Visuals struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// Color returns the tint as an opaque color.
func (v Visuals) Color() color.RGBA {
	return color.RGBA{v.R, v.G, v.B, 255}
}

// DefaultEnemies returns the built-in variant table.
func DefaultEnemies() map[EnemyVariant]EnemyDefinition {
	return map[EnemyVariant]EnemyDefinition{
		VariantChaser: {
			Variant:      VariantChaser,
			Name:         "Chaser",
			Speed:        150,
			Radius:       17,
			AttackScale:  1.0,
			DefenseScale: 1.0,
			HealthScale:  0.8,
			LootRadius:   180,
			GrowChance:   0.5,
			MinEdges:     3,
			MaxEdges:     6,
			Visuals:      Visuals{R: 235, G: 90, B: 70},
			Weight:       5,
		},
		VariantSkitter: {
			Variant:      VariantSkitter,
			Name:         "Skitter",
			Speed:        215,
			Radius:       13,
			AttackScale:  0.8,
			DefenseScale: 0.7,
			HealthScale:  0.55,
			LootRadius:   260,
			GrowChance:   0.35,
			MinEdges:     3,
			MaxEdges:     5,
			Visuals:      Visuals{R: 250, G: 200, B: 60},
			Weight:       3,
		},
		VariantBrute: {
			Variant:      VariantBrute,
			Name:         "Brute",
			Speed:        100,
			Radius:       24,
			AttackScale:  1.3,
			DefenseScale: 1.4,
			HealthScale:  1.6,
			LootRadius:   120,
			GrowChance:   0.7,
			MinEdges:     5,
			MaxEdges:     8,
			Visuals:      Visuals{R: 170, G: 80, B: 220},
			Weight:       2,
		},
	}
}
