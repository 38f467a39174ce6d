package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/pong/input"
	"github.com/plus3/pong/pong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("empty path uses defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeFile(t, `
[window]
scale = 2

[gameplay]
speed = 1.5
two_player = false

[keys]
left_up = "Q"
left_down = "a"
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 2, cfg.Window.Scale)
		assert.Equal(t, "Pong", cfg.Window.Title)
		assert.Equal(t, 1.5, cfg.Gameplay.Speed)
		assert.False(t, cfg.Gameplay.TwoPlayer)
		assert.Equal(t, float64(pong.DefaultPaddleHalfSize), cfg.Gameplay.PaddleHalfSize)

		bindings, err := cfg.Bindings()
		require.NoError(t, err)
		assert.Equal(t, input.KeyQ, bindings.Up[pong.Left])
		assert.Equal(t, input.KeyA, bindings.Down[pong.Left])
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		path := writeFile(t, "[gameplay]\nspeeed = 2\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown keys")
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeFile(t, "[gameplay\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeFile(t, "[gameplay]\nspeed = 1.5\n")
		t.Setenv("PONG_SPEED", "2.5")
		t.Setenv("PONG_TWO_PLAYER", "false")
		t.Setenv("PONG_LOG_EVENTS", "true")
		t.Setenv("PONG_SCALE", "not-a-number")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2.5, cfg.Gameplay.Speed)
		assert.False(t, cfg.Gameplay.TwoPlayer)
		assert.True(t, cfg.Debug.LogEvents)
		assert.Equal(t, 1, cfg.Window.Scale, "unparsable values keep the previous value")
	})

	t.Run("invalid values fail", func(t *testing.T) {
		path := writeFile(t, "[gameplay]\npaddle_half_size = 100.0\n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "paddle_half_size")
	})
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	cases := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"scale too small", func(c *Config) { c.Window.Scale = 0 }, "window.scale"},
		{"scale too large", func(c *Config) { c.Window.Scale = 9 }, "window.scale"},
		{"zero speed", func(c *Config) { c.Gameplay.Speed = 0 }, "gameplay.speed"},
		{"huge speed", func(c *Config) { c.Gameplay.Speed = 11 }, "gameplay.speed"},
		{"negative frame cap", func(c *Config) { c.Gameplay.MaxFrameMs = -1 }, "max_frame_ms"},
		{"tiny paddle", func(c *Config) { c.Gameplay.PaddleHalfSize = 2 }, "paddle_half_size"},
		{"unknown key", func(c *Config) { c.Keys.Serve = "hyper" }, "keys.serve"},
		{"duplicate key", func(c *Config) { c.Keys.Mode = "space" }, "already bound to serve"},
		{"debug key clash", func(c *Config) { c.Keys.DebugToggle = "w" }, "keys.debug_toggle"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.errMsg)
		})
	}
}

func TestBindings(t *testing.T) {
	cfg := Default()
	bindings, err := cfg.Bindings()
	require.NoError(t, err)
	assert.Equal(t, pong.DefaultBindings(), bindings)

	key, err := cfg.DebugToggleKey()
	require.NoError(t, err)
	assert.Equal(t, input.KeyF1, key)
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Gameplay.TwoPlayer = false
	cfg.Gameplay.PaddleHalfSize = 16

	opts := cfg.Options()
	assert.Equal(t, pong.DefaultSpeed, opts.Speed)
	assert.Equal(t, float64(pong.MaxFrameTime), opts.MaxFrameTime)
	assert.Equal(t, 16.0, opts.HalfSize)
	assert.False(t, opts.TwoPlayer)
}

func TestWrite(t *testing.T) {
	cfg := Default()
	cfg.Debug.Overlay = true

	path := filepath.Join(t.TempDir(), "pong.toml")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Write(f))
	require.NoError(t, f.Close())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
