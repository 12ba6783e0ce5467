package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// PauseMode selects one of the two pacing presets.
type PauseMode string

const (
	PauseShort PauseMode = "short"
	PauseLong  PauseMode = "long"
)

// UnmarshalText lets env parse and validate the preset name.
func (m *PauseMode) UnmarshalText(text []byte) error {
	switch mode := PauseMode(strings.ToLower(strings.TrimSpace(string(text)))); mode {
	case PauseShort, PauseLong:
		*m = mode
		return nil
	default:
		return fmt.Errorf("unknown pause mode %q", string(text))
	}
}

// Duration returns the pacing delay of the preset.
func (m PauseMode) Duration() time.Duration {
	if m == PauseShort {
		return ShortPause
	}
	return LongPause
}

// Settings is read once at startup.
type Settings struct {
	Difficulty int       `env:"DRACONIS_DIFFICULTY" envDefault:"0"`
	Dungeon    int       `env:"DRACONIS_DUNGEON" envDefault:"0"`
	Fight      int       `env:"DRACONIS_FIGHT" envDefault:"0"`
	UseRandom  bool      `env:"DRACONIS_USE_RANDOM" envDefault:"true"`
	Pause      PauseMode `env:"DRACONIS_PAUSE" envDefault:"long"`
	Seed       int64     `env:"DRACONIS_SEED" envDefault:"0"`
	Debug      bool      `env:"DRACONIS_DEBUG" envDefault:"false"`
	PprofAddr  string    `env:"DRACONIS_PPROF_ADDR"`
	Catalog    string    `env:"DRACONIS_CATALOG"`
}

// DefaultSettings matches the env defaults, for tests and tools.
func DefaultSettings() Settings {
	return Settings{UseRandom: true, Pause: PauseLong}
}

// DifficultyMultiplier scales enemy life and power.
func (s Settings) DifficultyMultiplier() float64 {
	return 1 + float64(s.Difficulty)/DifficultyStep
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates Settings.
func Load() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	if s.Dungeon < 0 || s.Fight < 0 {
		return Settings{}, fmt.Errorf("dungeon and fight indexes must be positive, got %d and %d", s.Dungeon, s.Fight)
	}
	if s.DifficultyMultiplier() <= 0 {
		return Settings{}, fmt.Errorf("difficulty %d leaves no enemy life, the minimum is %d", s.Difficulty, 1-int(DifficultyStep))
	}
	return s, nil
}
