package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdekker3d/cubefit/internal/model"
)

func TestExportImportAllData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backups", "cubefit.json")

	cfg := model.DefaultAppConfig()
	cfg.DistinctSolutions = true
	cfg.RecentPuzzles = []string{"soma.csv", "tetra.xlsx"}

	require.NoError(t, ExportAllData(path, cfg))

	backup, err := ImportAllData(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", backup.Version)
	assert.NotEmpty(t, backup.CreatedAt)
	assert.Equal(t, cfg, backup.Config)
}

// The restore path of the CLI: import a backup, write its config to the
// config file, reload. The reloaded config must match what was backed up.
func TestRestoreAppliesBackedUpConfig(t *testing.T) {
	dir := t.TempDir()
	backupPath := filepath.Join(dir, "backup.json")
	cfgPath := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultWorkers = 8
	cfg.RecentPuzzles = []string{"soma.csv"}
	require.NoError(t, ExportAllData(backupPath, cfg))

	backup, err := ImportAllData(backupPath)
	require.NoError(t, err)
	require.NoError(t, SaveConfig(cfgPath, backup.Config))

	restored, err := LoadConfig(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, restored)
}

func TestImportAllData_MissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"config":{}}`), 0o644))

	_, err := ImportAllData(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing version")
}

func TestImportAllData_BadFile(t *testing.T) {
	_, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "garbage.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err = ImportAllData(path)
	assert.Error(t, err)
}
