package main

import (
	"context"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/daily"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     colorable.NewColorableStderr(),
		NoColor: !isTerminal(os.Stderr),
	}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	list, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	clearScreen := cfg.ClearScreen && isTerminal(os.Stdout)
	log.Debug().
		Int("words", list.Len()).
		Str("mode", cfg.Mode).
		Int("maxIncorrect", cfg.MaxIncorrect).
		Bool("clearScreen", clearScreen).
		Msg("starting hangman")

	r := console.New(os.Stdin, colorable.NewColorableStdout(), newPicker(cfg, list), store.NewMemoryStore(),
		runnerOptions(cfg, clearScreen, log.Logger))
	if err := r.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("hangman exited")
	}
}

// newPicker selects the word source for cfg.Mode.
func newPicker(cfg config.Config, list *words.List) console.Picker {
	if cfg.Mode == config.ModeDaily {
		return daily.NewPicker(list, cfg.DailySalt, nil)
	}
	return list
}

// runnerOptions maps cfg onto the console runner. Daily mode plays a single
// session: a restart would only replay the same word.
func runnerOptions(cfg config.Config, clearScreen bool, logger zerolog.Logger) console.Options {
	return console.Options{
		MaxIncorrect: cfg.MaxIncorrect,
		ClearScreen:  clearScreen,
		Pause:        cfg.Pause,
		NoRestart:    cfg.Mode == config.ModeDaily,
		Logger:       logger,
	}
}

// isTerminal reports whether f is an interactive terminal (including Cygwin/MSYS).
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
