// internal/config/config.go
//
// Runtime configuration for the werdol terminal host.
//
// Sources, lowest precedence first:
//   1. Built-in defaults (Defaults).
//   2. A TOML file: $WERDOL_CONFIG, or ./werdol.toml when it exists.
//   3. Environment variables, after loading ./.env if present.
//
// Environment variables:
//   LOG_LEVEL, LOG_FILE, WORDS_ANSWERS_FILE, WERDOL_MODE, DAILY_SALT,
//   WERDOL_SCORING, WERDOL_SOUND, WERDOL_ANSWER

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultFile is read when WERDOL_CONFIG is unset and the file exists.
const DefaultFile = "werdol.toml"

// Answer source modes.
const (
	ModeRandom = "random"
	ModeDaily  = "daily"
)

// Scoring modes.
const (
	ScoringMembership = "membership"
	ScoringStrict     = "strict"
)

// Colors names the tcell colors used for each tile shade.
type Colors struct {
	Affirmative string `toml:"affirmative"`
	Cautionary  string `toml:"cautionary"`
	Neutral     string `toml:"neutral"`
}

type Config struct {
	LogLevel    string `toml:"log_level"`
	LogFile     string `toml:"log_file"`
	AnswersFile string `toml:"answers_file"`
	Mode        string `toml:"mode"`
	DailySalt   string `toml:"daily_salt"`
	Scoring     string `toml:"scoring"`
	Sound       bool   `toml:"sound"`
	Answer      string `toml:"answer"` // fixed answer, for debugging
	Colors      Colors `toml:"colors"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		LogLevel:  "info",
		LogFile:   "werdol.log",
		Mode:      ModeRandom,
		DailySalt: "local_dev_salt",
		Scoring:   ScoringMembership,
		Sound:     true,
		Colors: Colors{
			Affirmative: "green",
			Cautionary:  "olive",
			Neutral:     "dimgray",
		},
	}
}

// Load assembles the configuration from defaults, file and environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	path := os.Getenv("WERDOL_CONFIG")
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) decodeFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("LOG_FILE", c.LogFile)
	c.AnswersFile = getEnv("WORDS_ANSWERS_FILE", c.AnswersFile)
	c.Mode = getEnv("WERDOL_MODE", c.Mode)
	c.DailySalt = getEnv("DAILY_SALT", c.DailySalt)
	c.Scoring = getEnv("WERDOL_SCORING", c.Scoring)
	c.Answer = strings.TrimSpace(getEnv("WERDOL_ANSWER", c.Answer))
	if v := os.Getenv("WERDOL_SOUND"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("WERDOL_SOUND: %w", err)
		}
		c.Sound = b
	}
	return nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeRandom, ModeDaily:
	default:
		return fmt.Errorf("mode %q: want %s or %s", c.Mode, ModeRandom, ModeDaily)
	}
	switch c.Scoring {
	case ScoringMembership, ScoringStrict:
	default:
		return fmt.Errorf("scoring %q: want %s or %s", c.Scoring, ScoringMembership, ScoringStrict)
	}
	if c.LogFile == "" {
		return errors.New("log_file must not be empty")
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
