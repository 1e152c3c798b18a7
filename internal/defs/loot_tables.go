// internal/defs/loot_tables.go
package defs

// LootEntry is one row of the field spawn table.
// Kind is the part kind and Weight its relative chance.
type LootEntry struct {
	Kind   PartKind `yaml:"kind"`
	Weight int      `yaml:"weight"`
}

// DefaultLootTable returns the built-in part spawn weights:
// a small chance of wave, a larger one of regen, the rest edge.
func DefaultLootTable() []LootEntry {
	return []LootEntry{
		{Kind: PartWave, Weight: 6},
		{Kind: PartRegen, Weight: 14},
		{Kind: PartEdge, Weight: 80},
	}
}
