// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, []string{"!"}, cfg.Engine.Prefixes)
	require.True(t, cfg.History.Enabled)
	require.Equal(t, 20, cfg.History.Limit)
	require.Equal(t, "> ", cfg.REPL.Prompt)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[engine]
prefixes = [";;", "?"]
disabled_commands = ["sum"]

[repl]
prompt = "chat> "
flood_rate = 2.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, []string{";;", "?"}, cfg.Engine.Prefixes)
	require.Equal(t, []string{"sum"}, cfg.Engine.DisabledCommands)
	require.Equal(t, "chat> ", cfg.REPL.Prompt)
	require.Equal(t, 2.5, cfg.REPL.FloodRate)

	// Unset fields keep defaults.
	require.Equal(t, 10, cfg.REPL.FloodBurst)
	require.True(t, cfg.History.Enabled)
}

func TestLoadFromPath_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0600))
	_, err := LoadFromPath(path)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`
[engine]
prefixes = ["!", ""]
`), 0600))
	_, err = LoadFromPath(path)
	require.Error(t, err, "empty prefix must be rejected")

	require.NoError(t, os.WriteFile(path, []byte(`
[repl]
flood_rate = -1.0
`), 0600))
	_, err = LoadFromPath(path)
	require.Error(t, err, "negative flood rate must be rejected")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Engine.Prefixes = []string{"!", ";;"}
	cfg.History.Limit = 5
	require.NoError(t, Save(cfg, path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, cfg.Engine.Prefixes, loaded.Engine.Prefixes)
	require.Equal(t, 5, loaded.History.Limit)
}

func TestHistoryPath(t *testing.T) {
	cfg := Default()
	cfg.History.Path = "/tmp/custom.db"
	path, err := cfg.HistoryPath()
	require.NoError(t, err)
	require.Equal(t, "/tmp/custom.db", path)

	cfg.History.Path = ""
	path, err = cfg.HistoryPath()
	require.NoError(t, err)
	require.Equal(t, "history.db", filepath.Base(path))
}
