package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triviaz/internal/config"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	for _, k := range []string{"TRIVIAZ_DB", "TRIVIAZ_SOURCE", "TRIVIAZ_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	return dir
}

func flagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("db", "", "")
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("source", "", "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestResolveDBPath_UsesConfiguredPath(t *testing.T) {
	dir := isolateEnv(t)
	want := filepath.Join(dir, "nested", "scores.db")

	got, err := resolveDBPath(&config.Config{DBPath: want})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.DirExists(t, filepath.Dir(want))
}

func TestResolveDBPath_DefaultsToDataHome(t *testing.T) {
	dir := isolateEnv(t)

	got, err := resolveDBPath(&config.Config{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "triviaz", "triviaz.db"), got)
}

func TestOpenStore_DBFlagFlowsThroughConfig(t *testing.T) {
	dir := isolateEnv(t)
	dbPath := filepath.Join(dir, "flag", "triviaz.db")

	cfg, err := loadConfig(flagCommand(t, "--db", dbPath, "--source", "OpenTDB"))
	require.NoError(t, err)
	assert.Equal(t, dbPath, cfg.DBPath)
	assert.Equal(t, config.SourceOpenTDB, cfg.Source)

	st, err := openStore(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestOpenStore_EnvPathFromConfig(t *testing.T) {
	dir := isolateEnv(t)
	dbPath := filepath.Join(dir, "env", "triviaz.db")
	t.Setenv("TRIVIAZ_DB", dbPath)

	cfg, err := loadConfig(flagCommand(t))
	require.NoError(t, err)
	require.Equal(t, dbPath, cfg.DBPath)

	got, err := resolveDBPath(cfg)
	require.NoError(t, err)
	assert.Equal(t, dbPath, got)
}
