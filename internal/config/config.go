// Package config loads game configuration from an optional config file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/tomswanson/triviamaze/internal/maze"
)

// Config holds all game configuration options.
type Config struct {
	Maze       MazeConfig       `mapstructure:"maze"`
	Game       GameConfig       `mapstructure:"game"`
	Adventurer AdventurerConfig `mapstructure:"adventurer"`
	Log        LogConfig        `mapstructure:"log"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
}

type MazeConfig struct {
	Rows int `mapstructure:"rows"`
	Cols int `mapstructure:"cols"`
	// Seed for random number generation, used for reproducible mazes.
	// A seed of 0 means a random seed will be generated.
	Seed       int64  `mapstructure:"seed"`
	Difficulty string `mapstructure:"difficulty"`
}

type GameConfig struct {
	// WrongAnswerPolicy is one of "retry", "permlock", or "damage".
	WrongAnswerPolicy string `mapstructure:"wrong_answer_policy"`
	WrongAnswerDamage int    `mapstructure:"wrong_answer_damage"`
	RequirePillars    bool   `mapstructure:"require_pillars"`
}

type AdventurerConfig struct {
	Name string `mapstructure:"name"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Debug bool   `mapstructure:"debug"`
}

type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads configuration from config.yaml in the given path (if present)
// and from TRIVIAMAZE_* environment variables, on top of the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("triviamaze")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("maze.rows", 4)
	v.SetDefault("maze.cols", 4)
	v.SetDefault("maze.seed", 0)
	v.SetDefault("maze.difficulty", "medium")
	v.SetDefault("game.wrong_answer_policy", "retry")
	v.SetDefault("game.wrong_answer_damage", 10)
	v.SetDefault("game.require_pillars", true)
	v.SetDefault("adventurer.name", "Adventurer")
	v.SetDefault("log.file", "triviamaze.log")
	v.SetDefault("log.debug", false)
	v.SetDefault("telemetry.enabled", true)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env cover everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// MazeSettings returns the generation settings for the configured
// difficulty. Unknown difficulty names fall back to medium.
func (c *Config) MazeSettings() maze.Settings {
	return SettingsForDifficulty(c.Maze.Difficulty)
}

// SettingsForDifficulty maps a difficulty preset name to generation
// settings. The presets tune item and hazard density; medium is the
// baseline.
func SettingsForDifficulty(name string) maze.Settings {
	s := maze.DefaultSettings()
	switch strings.ToLower(name) {
	case "easy":
		s.PitProbability = 0.1
		s.LockedDoorProbability = 0.25
		s.MinEntranceExitDistance = 5
	case "hard":
		s.LockedDoorProbability = 0.45
		s.PitProbability = 0.2
		s.MagicKeyProbability = 0.1
		s.HealingPotionProbability = 0.1
		s.MinEntranceExitDistance = 7
	}
	return s
}
