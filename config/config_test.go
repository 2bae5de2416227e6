package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftqa/executor"
	"swiftqa/translator"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, translator.Default(), cfg.TargetPage())
	assert.Equal(t, executor.DefaultTiming(), cfg.ExecutorTiming())
	assert.Equal(t, time.Minute, cfg.CaseTimeout())
	assert.True(t, cfg.BrowserOptions().Headless)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestDefaultTOMLMatchesDefault(t *testing.T) {
	var parsed Config
	_, err := toml.Decode(DefaultTOML(), &parsed)
	require.NoError(t, err)
	assert.Equal(t, Default(), &parsed)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(path, []byte(`
[target]
url = "http://localhost:8080/"

[browser]
headless = false

[timing]
settleDelayMs = 250

[run]
concurrency = 6
reportDir = "reports"

[log]
level = "debug"
`), 0644)
	require.NoError(t, err)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/", cfg.Target.URL)
	assert.Equal(t, translator.DefaultInputPlaceholder, cfg.Target.InputPlaceholder)
	assert.False(t, cfg.BrowserOptions().Headless)
	assert.Equal(t, 250*time.Millisecond, cfg.ExecutorTiming().SettleDelay)
	assert.Equal(t, 10*time.Second, cfg.ExecutorTiming().OutputTimeout)
	assert.Equal(t, 6, cfg.Run.Concurrency)
	assert.Equal(t, "reports", cfg.Run.ReportDir)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadFileZeroTiming(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[timing]
keystrokeDelayMs = 0
settleDelayMs = 0
caseTimeoutSeconds = 0
`), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	timing := cfg.ExecutorTiming()
	assert.Zero(t, timing.KeystrokeDelay)
	assert.Zero(t, timing.SettleDelay)
	assert.Equal(t, 10*time.Second, timing.OutputTimeout)
	assert.Zero(t, cfg.CaseTimeout())
}

func TestLoadFileInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[target\n"), 0644))
	_, err := LoadFile(bad)
	assert.ErrorContains(t, err, "loading config from")

	level := filepath.Join(dir, "level.toml")
	require.NoError(t, os.WriteFile(level, []byte("[log]\nlevel = \"loud\"\n"), 0644))
	_, err = LoadFile(level)
	assert.ErrorContains(t, err, `invalid log level "loud"`)

	neg := filepath.Join(dir, "neg.toml")
	require.NoError(t, os.WriteFile(neg, []byte("[timing]\nsettleDelayMs = -5\n"), 0644))
	_, err = LoadFile(neg)
	assert.ErrorContains(t, err, "settleDelayMs cannot be negative")
}

func TestLoadWithoutUserConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
