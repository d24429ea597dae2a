// Package config handles reading and writing .quiz/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the top-level structure for .quiz/config.yaml.
type Config struct {
	Version int         `yaml:"version" mapstructure:"version"`
	Bank    BankConfig  `yaml:"bank" mapstructure:"bank"`
	Timer   TimerConfig `yaml:"timer" mapstructure:"timer"`
	UI      UIConfig    `yaml:"ui" mapstructure:"ui"`
	Log     LogConfig   `yaml:"log" mapstructure:"log"`
}

// BankConfig selects the question bank and how it is ordered.
type BankConfig struct {
	Path    string `yaml:"path" mapstructure:"path"` // empty: embedded bank
	Shuffle bool   `yaml:"shuffle" mapstructure:"shuffle"`
	Limit   int    `yaml:"limit" mapstructure:"limit"` // 0: all questions
	Seed    int64  `yaml:"seed" mapstructure:"seed"`   // 0: time based
}

// TimerConfig controls the per-question countdown.
type TimerConfig struct {
	LimitSeconds   int `yaml:"limit_seconds" mapstructure:"limit_seconds"`
	AdvanceDelayMs int `yaml:"advance_delay_ms" mapstructure:"advance_delay_ms"`
}

// UIConfig controls presentation.
type UIConfig struct {
	Title     string `yaml:"title" mapstructure:"title"` // empty: bank title
	Bell      bool   `yaml:"bell" mapstructure:"bell"`
	AltScreen bool   `yaml:"alt_screen" mapstructure:"alt_screen"`
}

// LogConfig controls the JSONL event log.
type LogConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

const (
	configDir  = ".quiz"
	configFile = "config.yaml"
	envPrefix  = "QUIZ"
)

// Dir returns the .quiz/ directory inside the project root.
func Dir(root string) string {
	return filepath.Join(root, configDir)
}

// ReadConfig reads .quiz/config.yaml from the given project directory.
// dir is the project root (not .quiz/ itself).
// Missing files are not an error: defaults apply, and QUIZ_* environment
// variables override both, e.g. QUIZ_TIMER_LIMIT_SECONDS=30.
func ReadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, configDir, configFile))
	v.SetConfigType("yaml")

	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("bank.path", d.Bank.Path)
	v.SetDefault("bank.shuffle", d.Bank.Shuffle)
	v.SetDefault("bank.limit", d.Bank.Limit)
	v.SetDefault("bank.seed", d.Bank.Seed)
	v.SetDefault("timer.limit_seconds", d.Timer.LimitSeconds)
	v.SetDefault("timer.advance_delay_ms", d.Timer.AdvanceDelayMs)
	v.SetDefault("ui.title", d.UI.Title)
	v.SetDefault("ui.bell", d.UI.Bell)
	v.SetDefault("ui.alt_screen", d.UI.AltScreen)
	v.SetDefault("log.enabled", d.Log.Enabled)
}

// WriteConfig writes cfg to .quiz/config.yaml in the given project directory.
// Creates the .quiz/ directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := filepath.Join(dir, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dirPath, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Timer: TimerConfig{
			LimitSeconds:   15,
			AdvanceDelayMs: 1000,
		},
		UI: UIConfig{
			Bell:      true,
			AltScreen: true,
		},
		Log: LogConfig{
			Enabled: true,
		},
	}
}

// Validate rejects values the quiz cannot run with.
func (c *Config) Validate() error {
	if c.Timer.LimitSeconds <= 0 {
		return fmt.Errorf("%w: timer.limit_seconds must be positive, got %d", ErrInvalidConfig, c.Timer.LimitSeconds)
	}
	if c.Timer.AdvanceDelayMs <= 0 {
		return fmt.Errorf("%w: timer.advance_delay_ms must be positive, got %d", ErrInvalidConfig, c.Timer.AdvanceDelayMs)
	}
	if c.Bank.Limit < 0 {
		return fmt.Errorf("%w: bank.limit must not be negative, got %d", ErrInvalidConfig, c.Bank.Limit)
	}
	return nil
}

// AdvanceDelay returns the feedback display time as a duration.
func (t TimerConfig) AdvanceDelay() time.Duration {
	return time.Duration(t.AdvanceDelayMs) * time.Millisecond
}
