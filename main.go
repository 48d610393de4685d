// werdol is a terminal word-guessing puzzle.
//
// Configuration comes from .env, an optional werdol.toml and the
// environment; see internal/config. Logs go to LOG_FILE because the
// terminal belongs to the game.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/werdol/internal/config"
	"github.com/robalobadob/werdol/internal/daily"
	"github.com/robalobadob/werdol/internal/store"
	"github.com/robalobadob/werdol/internal/tui"
	"github.com/robalobadob/werdol/internal/words"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "werdol:", err)
		os.Exit(1)
	}
}

func run() (err error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { closeLog(logFile, err) }()
	log.Logger = zerolog.New(logFile).With().Timestamp().Logger()

	list, err := words.Load(cfg.AnswersFile)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	src := answerSource(cfg, list)
	log.Info().Int("answers", list.Len()).Str("mode", cfg.Mode).Str("scoring", cfg.Scoring).Msg("starting werdol")

	var sound tui.Sounder = tui.NopSounder{}
	if cfg.Sound {
		if s, err := tui.NewBeepSounder(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		} else {
			sound = s
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	app, err := tui.New(screen, src, store.NewMemoryStore(), tui.Options{
		Strict: cfg.Scoring == config.ScoringStrict,
		Sound:  sound,
		Styles: tui.StylesFor(cfg.Colors),
	})
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info().Msg("bye")
	return nil
}

// closeLog records a failed run in the log file before closing it.
func closeLog(f io.Closer, err error) {
	if err != nil {
		log.Error().Err(err).Msg("werdol exited")
	}
	if cerr := f.Close(); cerr != nil {
		fmt.Fprintln(os.Stderr, "werdol: close log:", cerr)
	}
}

// answerSource picks where new answers come from. A fixed answer wins
// over the configured mode.
func answerSource(cfg config.Config, list *words.List) words.Source {
	switch {
	case cfg.Answer != "":
		return words.Fixed(cfg.Answer)
	case cfg.Mode == config.ModeDaily:
		return daily.NewSource(list, cfg.DailySalt, nil)
	}
	return words.NewRandomSource(list)
}
