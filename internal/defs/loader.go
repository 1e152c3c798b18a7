// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Library bundles every static definition the simulation reads.
type Library struct {
	Enemies map[EnemyVariant]EnemyDefinition
	Loot    []LootEntry
}

// Default returns the built-in library.
func Default() *Library {
	return &Library{
		Enemies: DefaultEnemies(),
		Loot:    DefaultLootTable(),
	}
}

// Enemy returns the definition for variant, falling back to the chaser.
func (l *Library) Enemy(variant EnemyVariant) EnemyDefinition {
	if def, ok := l.Enemies[variant]; ok {
		return def
	}
	return l.Enemies[VariantChaser]
}

// definitionFile mirrors the YAML layout of a definitions file.
type definitionFile struct {
	Enemies []EnemyDefinition `yaml:"enemies"`
	Loot    []LootEntry       `yaml:"loot"`
}

// LoadDefinitions reads a definitions file and overlays it on the built-in library.
// Enemy entries replace the variant they name; a non-empty loot list replaces the table.
func LoadDefinitions(path string) (*Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	lib, err := ParseDefinitions(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse definitions file %s: %w", path, err)
	}
	log.Printf("Loaded %d enemy definitions, %d loot entries from %s", len(lib.Enemies), len(lib.Loot), path)
	return lib, nil
}

// ParseDefinitions decodes YAML definitions on top of the defaults.
func ParseDefinitions(data []byte) (*Library, error) {
	var raw definitionFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	lib := Default()
	for _, def := range raw.Enemies {
		lib.Enemies[def.Variant] = def
	}
	if len(raw.Loot) > 0 {
		lib.Loot = raw.Loot
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Validate checks that every variant is defined with usable numbers and that
// the loot table has a positive total weight.
func (l *Library) Validate() error {
	for _, variant := range EnemyVariants {
		def, ok := l.Enemies[variant]
		if !ok {
			return fmt.Errorf("missing definition for enemy variant %s", variant)
		}
		if def.Speed <= 0 || def.Radius <= 0 {
			return fmt.Errorf("enemy variant %s: speed and radius must be positive", variant)
		}
		if def.MinEdges < 3 || def.MaxEdges < def.MinEdges {
			return fmt.Errorf("enemy variant %s: invalid edge range [%d, %d]", variant, def.MinEdges, def.MaxEdges)
		}
		if def.GrowChance < 0 || def.GrowChance > 1 {
			return fmt.Errorf("enemy variant %s: grow chance %.2f outside [0, 1]", variant, def.GrowChance)
		}
		if def.Weight < 0 {
			return fmt.Errorf("enemy variant %s: negative weight", variant)
		}
	}

	total := 0
	for _, entry := range l.Loot {
		if entry.Weight < 0 {
			return fmt.Errorf("loot entry %s: negative weight", entry.Kind)
		}
		if entry.Kind == PartScore {
			return fmt.Errorf("loot entry: score parts cannot spawn from the field table")
		}
		total += entry.Weight
	}
	if total <= 0 {
		return fmt.Errorf("loot table has no positive weight")
	}
	return nil
}
