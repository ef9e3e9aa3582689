// Package config loads phraseguess settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/trknhr/phraseguess/internal/phrasefinder"
	"github.com/trknhr/phraseguess/internal/score"
	"gopkg.in/yaml.v3"
)

const (
	SourceFile         = "file"
	SourceDB           = "db"
	SourcePhraseFinder = "phrasefinder"

	configFileName = "config.yaml"
)

type PhraseFinder struct {
	BaseURL  string        `yaml:"base_url"`
	Corpus   string        `yaml:"corpus"`
	TopK     int           `yaml:"topk"`
	MinScore float64       `yaml:"min_score"`
	Timeout  time.Duration `yaml:"timeout"`
}

type Game struct {
	ContextLength  int `yaml:"context_length"`
	MinOccurrences int `yaml:"min_occurrences"`
	MaxGuesses     int `yaml:"max_guesses"`
	Reveal         int `yaml:"reveal"`
}

type Config struct {
	Source     string       `yaml:"source"`
	Direction  string       `yaml:"direction"`
	Corpus     []string     `yaml:"corpus"`
	DBPath     string       `yaml:"db_path"`
	Dictionary string       `yaml:"dictionary"`
	Lemmatize  bool         `yaml:"lemmatize"`
	LogLevel   string       `yaml:"log_level"`
	LogFile    string       `yaml:"log_file"`
	Finder     PhraseFinder `yaml:"phrasefinder"`
	Game       Game         `yaml:"game"`
}

func Default() *Config {
	return &Config{
		Source:    SourceFile,
		Direction: score.After.String(),
		LogLevel:  "info",
		Finder: PhraseFinder{
			BaseURL:  phrasefinder.DefaultBaseURL,
			Corpus:   phrasefinder.DefaultCorpus,
			TopK:     phrasefinder.DefaultTopK,
			MinScore: phrasefinder.DefaultMinScore,
			Timeout:  5 * time.Second,
		},
		Game: Game{
			ContextLength:  2,
			MinOccurrences: 3,
			MaxGuesses:     3,
			Reveal:         5,
		},
	}
}

// DefaultPath is config.yaml under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	return filepath.Join(dir, "phraseguess", configFileName), nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Source {
	case SourceFile, SourceDB, SourcePhraseFinder:
	default:
		return fmt.Errorf("unknown source %q (want %s, %s or %s)", c.Source, SourceFile, SourceDB, SourcePhraseFinder)
	}
	if _, err := score.ParseDirection(c.Direction); err != nil {
		return err
	}
	if c.Game.ContextLength < 1 {
		return errors.New("game.context_length must be at least 1")
	}
	if c.Game.MaxGuesses < 1 {
		return errors.New("game.max_guesses must be at least 1")
	}
	if c.Game.MinOccurrences < 1 {
		return errors.New("game.min_occurrences must be at least 1")
	}
	return nil
}
