package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParseOverlaysDefaults(t *testing.T) {
	data := []byte(`
world_width: 3000
enemy_count: 4
pvp_drop_fraction: 0.5
`)
	tuning, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, tuning.WorldWidth)
	assert.Equal(t, 4, tuning.EnemyCount)
	assert.Equal(t, 0.5, tuning.PvPDropFraction)
	assert.Equal(t, Default().WorldHeight, tuning.WorldHeight)
	assert.Equal(t, Default().MeleeCooldown, tuning.MeleeCooldown)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"negative world":    "world_width: -5",
		"inverted boss":     "boss_timer_min: 100\nboss_timer_max: 50",
		"drop above one":    "pvp_drop_fraction: 1.5",
		"zero parts":        "parts_per_edge: 0",
		"cap below base":    "player_edge_cap: 2",
		"not yaml":          "world_width: [",
		"zero wave speed":   "wave_speed: 0",
		"orb count swapped": "score_orb_min: 9\nscore_orb_max: 3",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fighter_speed: 300\n"), 0o644))

	tuning, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 300.0, tuning.FighterSpeed)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
