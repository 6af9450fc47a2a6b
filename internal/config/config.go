// Package config provides Viper-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/cory-johannsen/omega/internal/game/session"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output lists zap output paths. The terminal belongs to the game, so the default is a file.
	Output []string `mapstructure:"output"`
}

// GameConfig holds content settings.
type GameConfig struct {
	// Content is the path to a world YAML file. Empty selects the built-in world.
	Content string `mapstructure:"content"`
}

// ScoringConfig holds the reward constants of a session as read from configuration.
type ScoringConfig struct {
	MaxScore   int `mapstructure:"max_score"`
	Move       int `mapstructure:"move"`
	Swipe      int `mapstructure:"swipe"`
	Upload     int `mapstructure:"upload"`
	Wear       int `mapstructure:"wear"`
	LoreRead   int `mapstructure:"lore_read"`
	Drink      int `mapstructure:"drink"`
	Connect    int `mapstructure:"connect"`
	GasPenalty int `mapstructure:"gas_penalty"`
	ExitBonus  int `mapstructure:"exit_bonus"`
}

// Scoring converts s into the session reward table.
func (s ScoringConfig) Scoring() session.Scoring {
	return session.Scoring{
		MaxScore:   s.MaxScore,
		Move:       s.Move,
		Swipe:      s.Swipe,
		Upload:     s.Upload,
		Wear:       s.Wear,
		LoreRead:   s.LoreRead,
		Drink:      s.Drink,
		Connect:    s.Connect,
		GasPenalty: s.GasPenalty,
		ExitBonus:  s.ExitBonus,
	}
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	// Mode selects the shell: "line" for a plain prompt, "tui" for the full-screen interface.
	Mode string `mapstructure:"mode"`
	// WrapWidth is the column narration is wrapped at.
	WrapWidth int `mapstructure:"wrap_width"`
	// Color enables styled output.
	Color bool `mapstructure:"color"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
	Scoring ScoringConfig `mapstructure:"scoring"`
	Display DisplayConfig `mapstructure:"display"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateScoring(c.Scoring); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateDisplay(c.Display); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if len(l.Output) == 0 {
		return errors.New("logging.output must not be empty")
	}
	return nil
}

func validateScoring(s ScoringConfig) error {
	if err := s.Scoring().Validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	return nil
}

func validateDisplay(d DisplayConfig) error {
	var errs []string
	validModes := map[string]bool{"line": true, "tui": true}
	if !validModes[d.Mode] {
		errs = append(errs, fmt.Sprintf("display.mode must be one of [line, tui], got %q", d.Mode))
	}
	if d.WrapWidth < 20 || d.WrapWidth > 400 {
		errs = append(errs, fmt.Sprintf("display.wrap_width must be 20-400, got %d", d.WrapWidth))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. A .env file in the working directory, if
// present, is loaded into the environment first. An empty path uses defaults and
// the environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Environment variable overrides with OMEGA_ prefix
	v.SetEnvPrefix("OMEGA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns a Viper instance carrying only the default values.
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", []string{"omega.log"})

	v.SetDefault("game.content", "")

	d := session.DefaultScoring()
	v.SetDefault("scoring.max_score", d.MaxScore)
	v.SetDefault("scoring.move", d.Move)
	v.SetDefault("scoring.swipe", d.Swipe)
	v.SetDefault("scoring.upload", d.Upload)
	v.SetDefault("scoring.wear", d.Wear)
	v.SetDefault("scoring.lore_read", d.LoreRead)
	v.SetDefault("scoring.drink", d.Drink)
	v.SetDefault("scoring.connect", d.Connect)
	v.SetDefault("scoring.gas_penalty", d.GasPenalty)
	v.SetDefault("scoring.exit_bonus", d.ExitBonus)

	v.SetDefault("display.mode", "line")
	v.SetDefault("display.wrap_width", 80)
	v.SetDefault("display.color", true)
}
