package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks every variable Load reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"WERDOL_CONFIG", "LOG_LEVEL", "LOG_FILE", "WORDS_ANSWERS_FILE", "WERDOL_MODE",
		"DAILY_SALT", "WERDOL_SCORING", "WERDOL_SOUND", "WERDOL_ANSWER",
	} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "werdol.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Defaults() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
log_level = "debug"
mode = "daily"
scoring = "strict"
sound = false

[colors]
affirmative = "blue"
`)
	t.Setenv("WERDOL_CONFIG", path)
	t.Setenv("WERDOL_MODE", "random")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tests := []struct {
		name, got, want string
	}{
		{"log level from file", cfg.LogLevel, "debug"},
		{"mode from env", cfg.Mode, ModeRandom},
		{"scoring from file", cfg.Scoring, ScoringStrict},
		{"color from file", cfg.Colors.Affirmative, "blue"},
		{"untouched color", cfg.Colors.Cautionary, Defaults().Colors.Cautionary},
		{"untouched log file", cfg.LogFile, "werdol.log"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
	if cfg.Sound {
		t.Error("sound = true, want false from file")
	}
}

func TestLoadSoundFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("WERDOL_SOUND", "false")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sound {
		t.Error("WERDOL_SOUND=false ignored")
	}

	t.Setenv("WERDOL_SOUND", "loud")
	if _, err := Load(); err == nil {
		t.Error("expected an error for an unparsable WERDOL_SOUND")
	}
}

func TestLoadRejectsBadFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("WERDOL_CONFIG", writeFile(t, "mode = \n"))
	if _, err := Load(); err == nil {
		t.Error("expected a decode error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"daily", func(c *Config) { c.Mode = ModeDaily }, true},
		{"bad mode", func(c *Config) { c.Mode = "weekly" }, false},
		{"bad scoring", func(c *Config) { c.Scoring = "fuzzy" }, false},
		{"no log file", func(c *Config) { c.LogFile = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Defaults()
			tt.mutate(&c)
			if err := c.Validate(); (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestLoadTrimsAnswer(t *testing.T) {
	clearEnv(t)
	t.Setenv("WERDOL_ANSWER", " crane\n")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Answer != "crane" {
		t.Errorf("Answer = %q, want %q", cfg.Answer, "crane")
	}
}
