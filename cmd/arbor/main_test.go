package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/arbor/internal/app"
	"github.com/justyntemme/arbor/internal/config"
)

func execute(t *testing.T, args ...string) (string, config.Config, app.Options, bool, error) {
	t.Helper()
	var (
		gotCfg  config.Config
		gotOpts app.Options
		ran     bool
	)
	cmd := newRootCmd(func(cfg config.Config, opts app.Options) {
		gotCfg, gotOpts, ran = cfg, opts, true
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), gotCfg, gotOpts, ran, err
}

func TestRootCmd_FlagsOverrideConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")

	_, cfg, opts, ran, err := execute(t,
		"--config", cfgPath,
		"--root-name", "Projects",
		"--breadcrumbs", "name",
		"--depth", "2",
		"--resume",
		"--db", "/tmp/arbor-test.db",
		"/seed",
	)
	require.NoError(t, err)
	require.True(t, ran)

	assert.Equal(t, "Projects", cfg.Tree.RootName)
	assert.Equal(t, "name", cfg.Tree.BreadcrumbMode)
	assert.Equal(t, 2, cfg.Tree.SeedDepth)
	assert.Equal(t, "/seed", cfg.Tree.SeedPath)
	assert.Equal(t, app.Options{DBPath: "/tmp/arbor-test.db", Resume: true}, opts)

	// The default file was written, without the overrides
	mgr := config.NewManager()
	require.NoError(t, mgr.LoadFrom(cfgPath))
	assert.Equal(t, "Root", mgr.Get().Tree.RootName)
}

func TestRootCmd_Defaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	_, cfg, _, ran, err := execute(t, "--config", cfgPath)
	require.NoError(t, err)
	require.True(t, ran)
	assert.Equal(t, *config.DefaultConfig(), cfg)
}

func TestRootCmd_Errors(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")

	_, _, _, ran, err := execute(t, "--config", cfgPath, "--breadcrumbs", "path")
	assert.Error(t, err)
	assert.False(t, ran)

	_, _, _, ran, err = execute(t, "--config", cfgPath, "a", "b")
	assert.Error(t, err)
	assert.False(t, ran)
}

func TestConfigCmd(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")

	out, _, _, ran, err := execute(t, "config", "path", "--config", cfgPath)
	require.NoError(t, err)
	assert.False(t, ran)
	assert.Equal(t, cfgPath+"\n", out)

	out, _, _, _, err = execute(t, "config", "generate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote default config")
	assert.NotContains(t, out, "Backed up")
	_, err = os.Stat(cfgPath)
	require.NoError(t, err)

	out, _, _, _, err = execute(t, "config", "generate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Backed up existing config")
}
