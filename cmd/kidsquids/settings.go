package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kidsquids/internal/catalog"
	"github.com/vovakirdan/kidsquids/internal/progress"
)

var (
	flagLang  string
	flagSound string
	flagTheme string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long: `Show a player's settings, or change them with flags.

Languages are BCP 47 tags and are matched to the closest supported one.
Themes must be unlocked first.

Examples:
  kidsquids settings
  kidsquids settings --lang de
  kidsquids settings --sound off --theme pastel`,
	Run: runSettings,
}

func init() {
	settingsCmd.Flags().StringVar(&flagLang, "lang", "", "Language tag (e.g. en, de)")
	settingsCmd.Flags().StringVar(&flagSound, "sound", "", "Sound: on or off")
	settingsCmd.Flags().StringVar(&flagTheme, "theme", "", "Theme: default, pastel, neon, rainbow")
}

func runSettings(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, _ := newLogger(cfg, false)

	p := openPlayer(cfg, false)
	defer p.Close()

	settings := progress.NewSettings(p.kv, logger)
	store := progress.Open(p.kv, logger)

	if cmd.Flags().Changed("lang") {
		if err := settings.SetLanguage(flagLang); err != nil {
			fail("invalid language %q: %v", flagLang, err)
		}
	}
	if cmd.Flags().Changed("sound") {
		switch flagSound {
		case "on":
			settings.SetSoundEnabled(true)
		case "off":
			settings.SetSoundEnabled(false)
		default:
			fail("sound must be on or off, got %q", flagSound)
		}
	}
	if cmd.Flags().Changed("theme") {
		if err := store.SetTheme(catalog.Theme(flagTheme)); err != nil {
			fail("%v", err)
		}
	}

	sound := "off"
	if settings.SoundEnabled() {
		sound = "on"
	}
	fmt.Printf("Settings - %s\n", p.name)
	fmt.Println()
	fmt.Printf("  Language: %s\n", settings.Language())
	fmt.Printf("  Sound:    %s\n", sound)
	fmt.Printf("  Theme:    %s\n", store.Theme())
}
