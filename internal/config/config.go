// Package config loads game settings from defaults, an optional TOML file,
// an optional .env file and PONG_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/plus3/pong/input"
	"github.com/plus3/pong/pong"
)

type Config struct {
	Window   Window   `toml:"window"`
	Gameplay Gameplay `toml:"gameplay"`
	Keys     Keys     `toml:"keys"`
	Debug    Debug    `toml:"debug"`
}

type Window struct {
	Title     string `toml:"title"`
	Scale     int    `toml:"scale"`
	Resizable bool   `toml:"resizable"`
}

type Gameplay struct {
	Speed          float64 `toml:"speed"`
	MaxFrameMs     float64 `toml:"max_frame_ms"`
	PaddleHalfSize float64 `toml:"paddle_half_size"`
	TwoPlayer      bool    `toml:"two_player"`
}

// Keys holds key names as accepted by input.ParseKey.
type Keys struct {
	Quit        string `toml:"quit"`
	Serve       string `toml:"serve"`
	Mode        string `toml:"mode"`
	Difficulty  string `toml:"difficulty"`
	LeftUp      string `toml:"left_up"`
	LeftDown    string `toml:"left_down"`
	RightUp     string `toml:"right_up"`
	RightDown   string `toml:"right_down"`
	DebugToggle string `toml:"debug_toggle"`
}

type Debug struct {
	Overlay   bool `toml:"overlay"`
	LogEvents bool `toml:"log_events"`
}

func Default() *Config {
	return &Config{
		Window: Window{
			Title: "Pong",
			Scale: 1,
		},
		Gameplay: Gameplay{
			Speed:          pong.DefaultSpeed,
			MaxFrameMs:     pong.MaxFrameTime,
			PaddleHalfSize: pong.DefaultPaddleHalfSize,
			TwoPlayer:      true,
		},
		Keys: Keys{
			Quit:        "escape",
			Serve:       "space",
			Mode:        "p",
			Difficulty:  "o",
			LeftUp:      "w",
			LeftDown:    "s",
			RightUp:     "up",
			RightDown:   "down",
			DebugToggle: "f1",
		},
	}
}

// Load builds the configuration. A missing file at path is not an error;
// an empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return nil, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
			}
		}
	}

	// Load .env file if it exists
	godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Window.Title = getEnv("PONG_TITLE", c.Window.Title)
	c.Window.Scale = getEnvInt("PONG_SCALE", c.Window.Scale)
	c.Window.Resizable = getEnvBool("PONG_RESIZABLE", c.Window.Resizable)

	c.Gameplay.Speed = getEnvFloat("PONG_SPEED", c.Gameplay.Speed)
	c.Gameplay.MaxFrameMs = getEnvFloat("PONG_MAX_FRAME_MS", c.Gameplay.MaxFrameMs)
	c.Gameplay.PaddleHalfSize = getEnvFloat("PONG_PADDLE_HALF_SIZE", c.Gameplay.PaddleHalfSize)
	c.Gameplay.TwoPlayer = getEnvBool("PONG_TWO_PLAYER", c.Gameplay.TwoPlayer)

	c.Debug.Overlay = getEnvBool("PONG_DEBUG_OVERLAY", c.Debug.Overlay)
	c.Debug.LogEvents = getEnvBool("PONG_LOG_EVENTS", c.Debug.LogEvents)
}

// Validate checks ranges and key bindings.
func (c *Config) Validate() error {
	if c.Window.Scale < 1 || c.Window.Scale > 8 {
		return fmt.Errorf("window.scale must be between 1 and 8, got %d", c.Window.Scale)
	}
	if c.Gameplay.Speed <= 0 || c.Gameplay.Speed > 10 {
		return fmt.Errorf("gameplay.speed must be in (0, 10], got %g", c.Gameplay.Speed)
	}
	if c.Gameplay.MaxFrameMs <= 0 {
		return fmt.Errorf("gameplay.max_frame_ms must be positive, got %g", c.Gameplay.MaxFrameMs)
	}
	if half := c.Gameplay.PaddleHalfSize; half < pong.MinPaddleHalfSize || half > pong.MaxPaddleHalfSize {
		return fmt.Errorf("gameplay.paddle_half_size must be between %d and %d, got %g",
			pong.MinPaddleHalfSize, pong.MaxPaddleHalfSize, half)
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	if _, err := c.DebugToggleKey(); err != nil {
		return err
	}
	return nil
}

type binding struct {
	action string
	name   string
	dst    *input.Key
}

// Bindings parses the [keys] section. Every action needs its own key.
func (c *Config) Bindings() (pong.Bindings, error) {
	var b pong.Bindings
	var debug input.Key
	actions := []binding{
		{"quit", c.Keys.Quit, &b.Quit},
		{"serve", c.Keys.Serve, &b.Serve},
		{"mode", c.Keys.Mode, &b.Mode},
		{"difficulty", c.Keys.Difficulty, &b.Difficulty},
		{"left_up", c.Keys.LeftUp, &b.Up[pong.Left]},
		{"left_down", c.Keys.LeftDown, &b.Down[pong.Left]},
		{"right_up", c.Keys.RightUp, &b.Up[pong.Right]},
		{"right_down", c.Keys.RightDown, &b.Down[pong.Right]},
		{"debug_toggle", c.Keys.DebugToggle, &debug},
	}

	used := make(map[input.Key]string, len(actions))
	for _, a := range actions {
		key, err := input.ParseKey(a.name)
		if err != nil {
			return pong.Bindings{}, fmt.Errorf("keys.%s: %w", a.action, err)
		}
		if other, ok := used[key]; ok {
			return pong.Bindings{}, fmt.Errorf("keys.%s: %s is already bound to %s", a.action, key, other)
		}
		used[key] = a.action
		*a.dst = key
	}
	return b, nil
}

func (c *Config) DebugToggleKey() (input.Key, error) {
	key, err := input.ParseKey(c.Keys.DebugToggle)
	if err != nil {
		return input.KeyUnknown, fmt.Errorf("keys.debug_toggle: %w", err)
	}
	return key, nil
}

// Options maps the gameplay section onto world options.
func (c *Config) Options() pong.Options {
	return pong.Options{
		Speed:        c.Gameplay.Speed,
		MaxFrameTime: c.Gameplay.MaxFrameMs,
		HalfSize:     c.Gameplay.PaddleHalfSize,
		TwoPlayer:    c.Gameplay.TwoPlayer,
	}
}

// Write encodes the configuration as TOML.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
