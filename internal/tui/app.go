// Package tui is a terminal host for the werdol rule engine.
//
// The host owns every screen and input concern. Each key event becomes
// one Board operation; after it the whole screen is redrawn from the
// Board's public state. Nothing about presentation flows back into the
// engine.
package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/werdol/internal/game"
	"github.com/robalobadob/werdol/internal/store"
	"github.com/robalobadob/werdol/internal/words"
)

// Options configures an App.
type Options struct {
	Strict bool    // duplicate-capped scoring
	Sound  Sounder // nil means silent
	Styles Styles  // zero value means DefaultStyles
}

// App is one terminal session: a board, where its answers come from, and
// the record of finished games.
type App struct {
	screen tcell.Screen
	src    words.Source
	store  store.Store
	sound  Sounder
	styles Styles

	board   game.Board
	stats   store.Stats
	message string
	now     func() time.Time
}

// New builds an App and draws the first answer from src.
func New(screen tcell.Screen, src words.Source, st store.Store, opts Options) (*App, error) {
	answer, err := src.Next()
	if err != nil {
		return nil, err
	}
	var bopts []game.Option
	if opts.Strict {
		bopts = append(bopts, game.WithStrictScoring())
	}
	b, err := game.New(answer, bopts...)
	if err != nil {
		return nil, err
	}
	if opts.Sound == nil {
		opts.Sound = NopSounder{}
	}
	if opts.Styles == (Styles{}) {
		opts.Styles = DefaultStyles()
	}
	log.Debug().Str("answer", b.Answer()).Bool("strict", opts.Strict).Msg("new puzzle")
	return &App{
		screen: screen,
		src:    src,
		store:  st,
		sound:  opts.Sound,
		styles: opts.Styles,
		board:  b,
		now:    time.Now,
	}, nil
}

// Board returns a copy of the current board.
func (a *App) Board() game.Board { return a.board }

// Stats returns the session stats as of the last finished game.
func (a *App) Stats() store.Stats { return a.stats }

// Message is the transient status text, if any.
func (a *App) Message() string { return a.message }

// Apply performs one action. It returns false when the host should quit.
// Once a game is over, Submit starts the next one, like Restart.
func (a *App) Apply(ctx context.Context, act Action, r rune) bool {
	a.message = ""
	switch act {
	case ActionLetter:
		a.board.InputLetter(r)
	case ActionDelete:
		a.board.DeleteLetter()
	case ActionSubmit:
		if a.board.Finished() {
			a.restart()
			break
		}
		a.submit(ctx)
	case ActionRestart:
		a.restart()
	case ActionQuit:
		return false
	}
	return true
}

func (a *App) submit(ctx context.Context) {
	if !a.board.SubmitRow() {
		a.message = "Not enough letters"
		log.Debug().Str("guess", a.board.Guess(a.board.Row())).Msg("row rejected")
		a.sound.Reject()
		return
	}
	if !a.board.Finished() {
		return
	}

	rec, err := a.store.Save(ctx, store.RecordFor(&a.board, a.now()))
	if err != nil {
		log.Error().Err(err).Msg("save record")
	} else if a.stats, err = a.store.Stats(ctx); err != nil {
		log.Error().Err(err).Msg("read stats")
	}
	log.Info().
		Str("gameId", rec.ID).
		Str("answer", a.board.Answer()).
		Str("state", a.board.State().String()).
		Int("guesses", a.board.Guesses()).
		Msg("game finished")

	if a.board.HasWon() {
		a.sound.Win()
	} else {
		a.sound.Lose()
	}
}

// restart keeps the current board when no new answer can be had.
func (a *App) restart() {
	answer, err := a.src.Next()
	if err != nil {
		log.Error().Err(err).Msg("next answer")
		a.message = "Could not pick a new word"
		return
	}
	if err := a.board.Reset(answer); err != nil {
		log.Error().Err(err).Str("answer", answer).Msg("reset board")
		a.message = "Could not pick a new word"
		return
	}
	log.Debug().Str("answer", a.board.Answer()).Msg("new puzzle")
}

// Run draws the board and handles events until Quit, ctx cancellation, or
// the screen shutting down.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.Apply(ctx, ActionFor(ev.Key(), ev.Rune()), ev.Rune()) {
					return nil
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
			a.Draw()
		}
	}
}
