// Package config loads the application configuration: an embedded YAML
// default, optionally replaced by a user file, then overridden by
// KIDSQUIDS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kidsquids/internal/core"
)

// ErrInvalid is returned for configurations that fail validation.
var ErrInvalid = errors.New("config: invalid")

// AppConfig is the complete application configuration.
type AppConfig struct {
	DBPath     string `yaml:"db_path" env:"KIDSQUIDS_DB"`
	Profile    string `yaml:"profile" env:"KIDSQUIDS_PROFILE"` // Empty means the OS user
	LevelsPath string `yaml:"levels_path" env:"KIDSQUIDS_LEVELS"`

	Game GameConfig `yaml:"game"`
	Log  LogConfig  `yaml:"log"`
	SSH  SSHConfig  `yaml:"ssh"`
}

// GameConfig controls the simulation.
type GameConfig struct {
	FPS          int     `yaml:"fps" env:"KIDSQUIDS_FPS"`
	Seed         int64   `yaml:"seed" env:"KIDSQUIDS_SEED"`
	CanvasWidth  float64 `yaml:"canvas_width" env:"KIDSQUIDS_CANVAS_WIDTH"`
	CanvasHeight float64 `yaml:"canvas_height" env:"KIDSQUIDS_CANVAS_HEIGHT"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level" env:"KIDSQUIDS_LOG_LEVEL"`
	File  string `yaml:"file" env:"KIDSQUIDS_LOG_FILE"` // Used while the TUI owns the terminal
}

// SSHConfig controls the SSH server.
type SSHConfig struct {
	Addr        string        `yaml:"addr" env:"KIDSQUIDS_SSH_ADDR"`
	HostKey     string        `yaml:"host_key" env:"KIDSQUIDS_SSH_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"KIDSQUIDS_SSH_IDLE_TIMEOUT"`
}

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		DBPath: "~/.kidsquids/kidsquids.db",
		Game: GameConfig{
			FPS:          60,
			CanvasWidth:  1000,
			CanvasHeight: 600,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.kidsquids/kidsquids.log",
		},
		SSH: SSHConfig{
			Addr:        "0.0.0.0:23235",
			HostKey:     "~/.kidsquids/ssh_host_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// Validate checks value ranges.
func (c AppConfig) Validate() error {
	if c.Game.FPS < 1 || c.Game.FPS > 240 {
		return fmt.Errorf("%w: fps %d out of range 1-240", ErrInvalid, c.Game.FPS)
	}
	if c.Game.CanvasWidth <= 0 || c.Game.CanvasHeight <= 0 {
		return fmt.Errorf("%w: canvas %gx%g", ErrInvalid, c.Game.CanvasWidth, c.Game.CanvasHeight)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// Runtime returns the session runtime configuration.
func (c AppConfig) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		CanvasW:  c.Game.CanvasWidth,
		CanvasH:  c.Game.CanvasHeight,
		TickRate: c.Game.FPS,
		Seed:     c.Game.Seed,
	}
}
