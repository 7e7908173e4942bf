package progress

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"
)

// Settings keys.
const (
	LanguageKey = "kidsquids_language"
	SoundKey    = "kidsquids_sound"
)

// Languages the game has strings for; the first is the fallback.
var Languages = []language.Tag{language.English, language.German}

var languageMatcher = language.NewMatcher(Languages)

// Settings holds small per-player preferences, each stored under its own
// key.
type Settings struct {
	kv     KV
	logger *log.Logger
}

// NewSettings creates a settings view over kv.
func NewSettings(kv KV, logger *log.Logger) *Settings {
	if logger == nil {
		logger = log.Default()
	}
	return &Settings{kv: kv, logger: logger}
}

// Language returns the saved language, or one matched from the LANG
// environment variable, or English.
func (s *Settings) Language() language.Tag {
	if raw, ok, err := s.kv.Get(LanguageKey); err == nil && ok {
		if tag, err := language.Parse(raw); err == nil {
			return matchLanguage(tag)
		}
	} else if err != nil {
		s.logger.Warn("failed to load language", "error", err)
	}
	return DetectLanguage(os.Getenv("LANG"))
}

// SetLanguage validates and stores a BCP 47 language tag.
func (s *Settings) SetLanguage(code string) error {
	tag, err := language.Parse(code)
	if err != nil {
		return err
	}
	if err := s.kv.Set(LanguageKey, matchLanguage(tag).String()); err != nil {
		s.logger.Warn("failed to save language", "error", err)
	}
	return nil
}

// SoundEnabled reports whether sound is on. It defaults to on.
func (s *Settings) SoundEnabled() bool {
	raw, ok, err := s.kv.Get(SoundKey)
	if err != nil {
		s.logger.Warn("failed to load sound setting", "error", err)
		return true
	}
	if !ok {
		return true
	}
	return raw == "on"
}

// SetSoundEnabled stores the sound flag as "on" or "off".
func (s *Settings) SetSoundEnabled(enabled bool) {
	value := "off"
	if enabled {
		value = "on"
	}
	if err := s.kv.Set(SoundKey, value); err != nil {
		s.logger.Warn("failed to save sound setting", "error", err)
	}
}

// DetectLanguage matches a POSIX locale such as "de_DE.UTF-8" against the
// supported languages.
func DetectLanguage(locale string) language.Tag {
	locale, _, _ = strings.Cut(locale, ".")
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return Languages[0]
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Languages[0]
	}
	return matchLanguage(tag)
}

func matchLanguage(tag language.Tag) language.Tag {
	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return Languages[0]
	}
	return Languages[index]
}
