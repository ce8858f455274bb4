package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"master-quest/internal/config"
)

func TestNewLibraryDefaults(t *testing.T) {
	lib := NewLibrary()
	require.NoError(t, lib.Validate())

	sword, ok := lib.Item(config.SwordID)
	require.True(t, ok)
	assert.Equal(t, "NETHERITE", sword.Tier)
	assert.True(t, sword.Unbreakable)
	require.NotNil(t, sword.Activation)
	assert.Equal(t, config.BeamEntityID, sword.Activation.Entity)
	assert.Equal(t, 20, sword.Activation.CooldownTicks)

	beam, ok := lib.EntityType(config.BeamEntityID)
	require.True(t, ok)
	assert.False(t, beam.Persistent)
	assert.Equal(t, CategoryMisc, beam.Category)
	assert.Equal(t, 10, beam.UpdateInterval)
}

func TestLoadDirOverridesAndSkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	items := `[{"id":"master_sword","tier":"DIAMOND","attack_damage":7,"attack_speed":-2.4,"unbreakable":true,
		"activation":{"entity":"master_sword_beam","health_tolerance":2,"speed":1.5,"cooldown_ticks":5}}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ItemsFile), []byte(items), 0o644))

	lib := NewLibrary()
	require.NoError(t, lib.LoadDir(dir))

	sword, _ := lib.Item(config.SwordID)
	assert.Equal(t, "DIAMOND", sword.Tier)
	assert.Equal(t, 7, sword.AttackDamage)
	assert.Equal(t, 1.5, sword.Activation.Speed)

	_, ok := lib.EntityType(config.BeamEntityID)
	assert.True(t, ok, "entity types fall back to defaults when the file is absent")
}

func TestLoadDirRejectsBadReferences(t *testing.T) {
	dir := t.TempDir()
	items := `[{"id":"broken","tier":"OBSIDIAN"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ItemsFile), []byte(items), 0o644))

	err := NewLibrary().LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OBSIDIAN")
}

func TestLoadDirRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TiersFile), []byte("{not json"), 0o644))

	err := NewLibrary().LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), TiersFile)
}
