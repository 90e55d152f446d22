package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings holds the start-up configuration read from the environment.
type Settings struct {
	AssetsDir  string    `env:"PIG_ASSETS_DIR"`
	RulesFile  string    `env:"PIG_RULES_FILE"`
	LogLevel   string    `env:"PIG_LOG_LEVEL"    envDefault:"info"`
	LogJSON    bool      `env:"PIG_LOG_JSON"`
	Fullscreen bool      `env:"PIG_FULLSCREEN"`
	TPS        int       `env:"PIG_TPS"          envDefault:"60"`
	Target     int       `env:"PIG_TARGET_SCORE" envDefault:"100"`
	DiceColor  DiceColor `env:"PIG_DICE_COLOR"   envDefault:"white"`
	Seed       int64     `env:"PIG_SEED"`
	Music      string    `env:"PIG_MUSIC"`
	Volume     float64   `env:"PIG_VOLUME"       envDefault:"0.5"`
	Mute       bool      `env:"PIG_MUTE"`
}

// Load reads an optional .env file and then parses the process environment.
func Load(envFiles ...string) (Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return parse(env.Options{})
}

// LoadFrom parses settings from the given variables instead of the process environment.
func LoadFrom(environment map[string]string) (Settings, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	if !slices.Contains(TargetScores, s.Target) {
		return fmt.Errorf("invalid PIG_TARGET_SCORE %d: must be one of %v", s.Target, TargetScores)
	}
	if s.TPS <= 0 {
		return fmt.Errorf("invalid PIG_TPS %d: must be positive", s.TPS)
	}
	if s.Volume < 0 || s.Volume > 1 {
		return fmt.Errorf("invalid PIG_VOLUME %v: must be within [0,1]", s.Volume)
	}
	return nil
}

// Options builds the in-game configuration store from the start-up settings.
func (s Settings) Options() *Options {
	return NewOptions(s.DiceColor, s.Target)
}
