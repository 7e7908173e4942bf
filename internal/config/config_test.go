package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := loadFile("")
	if err != nil {
		t.Fatalf("loadFile() failed: %v", err)
	}
	// The user or local file may exist on a dev machine; only check values
	// the embedded file and Default agree on when neither is present.
	if _, err := os.Stat(filepath.Join("configs", FileName)); err == nil {
		t.Skip("local config present")
	}
	if p := UserPath("config.yaml"); p != "" {
		if _, err := os.Stat(p); err == nil {
			t.Skip("user config present")
		}
	}
	if cfg != Default() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "profile: mia\ngame:\n  fps: 30\nssh:\n  idle_timeout: 5m\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Profile != "mia" || cfg.Game.FPS != 30 || cfg.SSH.IdleTimeout != 5*time.Minute {
		t.Errorf("Load() = %+v", cfg)
	}
	// Keys missing from the file keep their defaults
	if cfg.Game.CanvasWidth != 1000 || cfg.Log.Level != "info" {
		t.Errorf("partial file lost defaults: %+v", cfg)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() should fail for a missing explicit path")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("game:\n  fps: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("KIDSQUIDS_FPS", "50")
	t.Setenv("KIDSQUIDS_PROFILE", "leo")
	t.Setenv("KIDSQUIDS_SSH_IDLE_TIMEOUT", "90s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.FPS != 50 || cfg.Profile != "leo" || cfg.SSH.IdleTimeout != 90*time.Second {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*AppConfig)
	}{
		{"zero fps", func(c *AppConfig) { c.Game.FPS = 0 }},
		{"huge fps", func(c *AppConfig) { c.Game.FPS = 1000 }},
		{"empty canvas", func(c *AppConfig) { c.Game.CanvasHeight = 0 }},
		{"bad log level", func(c *AppConfig) { c.Log.Level = "loud" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestRuntime(t *testing.T) {
	cfg := Default()
	cfg.Game.Seed = 42
	rt := cfg.Runtime()
	if rt.CanvasW != 1000 || rt.CanvasH != 600 || rt.TickRate != 60 || rt.Seed != 42 {
		t.Errorf("Runtime() = %+v", rt)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/x/y.db"); got != filepath.Join(home, "x", "y.db") {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got := ExpandHome("/tmp/y.db"); got != "/tmp/y.db" {
		t.Errorf("ExpandHome() changed an absolute path: %q", got)
	}
	if got := ExpandHome("~other/y.db"); got != "~other/y.db" {
		t.Errorf("ExpandHome() = %q, expected no change", got)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LogConfig{Level: "warn"}, &buf)
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "kidsquids") {
		t.Errorf("output = %q", out)
	}

	if _, err := NewLogger(LogConfig{Level: "loud"}, &buf); err == nil {
		t.Error("NewLogger() should reject an unknown level")
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "kidsquids.log")
	logger, closer, err := NewFileLogger(LogConfig{Level: "info", File: path})
	if err != nil {
		t.Fatalf("NewFileLogger() failed: %v", err)
	}
	logger.Info("hello")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q", data)
	}
}
