package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kidsquids/internal/catalog"
	"github.com/vovakirdan/kidsquids/internal/config"
	"github.com/vovakirdan/kidsquids/internal/progress"
	"github.com/vovakirdan/kidsquids/internal/session"
	"github.com/vovakirdan/kidsquids/internal/storage"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the config file and environment, then applies the
// global flags that were set on the command line.
func loadConfig() config.AppConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	flags := rootCmd.PersistentFlags()
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("profile") {
		cfg.Profile = flagProfile
	}
	if flags.Changed("fps") {
		cfg.Game.FPS = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}
	return cfg
}

// newLogger returns a stderr logger, or a file logger when the terminal
// belongs to the TUI. The returned closer is never nil.
func newLogger(cfg config.AppConfig, toFile bool) (*log.Logger, io.Closer) {
	if toFile && cfg.Log.File != "" {
		logger, closer, err := config.NewFileLogger(cfg.Log)
		if err == nil {
			return logger, closer
		}
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	logger, err := config.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	return logger, io.NopCloser(nil)
}

// profileName returns the configured profile or the OS user name.
func profileName(cfg config.AppConfig) string {
	if cfg.Profile != "" {
		return cfg.Profile
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}

// loadLevels returns the level table named in the config, or the search
// path default.
func loadLevels(cfg config.AppConfig) *catalog.Table {
	t, err := catalog.LoadTable(config.ExpandHome(cfg.LevelsPath))
	if err != nil {
		fail("%v", err)
	}
	return t
}

// player is the persisted state of one profile.
type player struct {
	name     string
	db       *storage.Store // nil when running in memory
	kv       progress.KV
	recorder session.AttemptRecorder
}

// openPlayer opens the database for the configured profile. With
// fallback set a database error degrades to in-memory progress.
func openPlayer(cfg config.AppConfig, fallback bool) player {
	p := player{name: profileName(cfg)}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		if !fallback {
			fail("%v", err)
		}
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		// Continue without storage - progress lasts until exit
		p.kv = progress.NewMapKV()
		return p
	}

	profile := db.Profile(p.name)
	p.db = db
	p.kv = profile
	p.recorder = profile
	return p
}

// Close closes the database if one is open.
func (p player) Close() {
	if p.db != nil {
		p.db.Close()
	}
}
