// internal/config/config.go
//
// Runtime configuration for the Hangman CLI.
// Values come from the environment; a `.env` file in the working directory
// is loaded first (existing variables win), matching how the server side
// of the project is configured.
//
// Environment variables:
//   HANGMAN_MAX_INCORRECT=6        wrong guesses allowed per session
//   HANGMAN_WORDS_FILE=            vocabulary file (embedded list if empty)
//   HANGMAN_MODE=random            random | daily (daily plays one session per run)
//   HANGMAN_DAILY_SALT=hangman     HMAC salt for daily mode
//   HANGMAN_CLEAR_SCREEN=true      clear the terminal before each render
//   HANGMAN_PAUSE=true             wait for Enter after each guess
//   LOG_LEVEL=warn                 zerolog level

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/game"
)

// Word selection modes.
const (
	ModeRandom = "random"
	ModeDaily  = "daily"
)

// Config holds everything the CLI needs to wire a run.
type Config struct {
	MaxIncorrect int
	WordsFile    string
	Mode         string
	DailySalt    string
	ClearScreen  bool
	Pause        bool
	LogLevel     zerolog.Level
}

// Load reads `.env` (if present) and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	var c Config
	var err error

	if c.MaxIncorrect, err = getInt("HANGMAN_MAX_INCORRECT", game.DefaultMaxIncorrect); err != nil {
		return c, err
	}
	if c.MaxIncorrect < 1 {
		return c, fmt.Errorf("config: HANGMAN_MAX_INCORRECT must be at least 1, got %d", c.MaxIncorrect)
	}

	c.WordsFile = getEnv("HANGMAN_WORDS_FILE", "")

	c.Mode = strings.ToLower(getEnv("HANGMAN_MODE", ModeRandom))
	switch c.Mode {
	case ModeRandom, ModeDaily:
	default:
		return c, fmt.Errorf("config: HANGMAN_MODE must be %q or %q, got %q", ModeRandom, ModeDaily, c.Mode)
	}
	c.DailySalt = getEnv("HANGMAN_DAILY_SALT", "hangman")

	if c.ClearScreen, err = getBool("HANGMAN_CLEAR_SCREEN", true); err != nil {
		return c, err
	}
	if c.Pause, err = getBool("HANGMAN_PAUSE", true); err != nil {
		return c, err
	}

	if c.LogLevel, err = zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err != nil {
		return c, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	return c, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) (int, error) {
	v := getEnv(k, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("config: %s: %w", k, err)
	}
	return n, nil
}

func getBool(k string, def bool) (bool, error) {
	v := getEnv(k, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("config: %s: %w", k, err)
	}
	return b, nil
}
