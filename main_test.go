package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/werdol/internal/config"
	"github.com/robalobadob/werdol/internal/daily"
	"github.com/robalobadob/werdol/internal/words"
)

func TestAnswerSource(t *testing.T) {
	list, err := words.Load("")
	if err != nil {
		t.Fatal(err)
	}

	cfg := config.Defaults()
	if _, ok := answerSource(cfg, list).(*words.RandomSource); !ok {
		t.Error("default mode should be random")
	}

	cfg.Mode = config.ModeDaily
	if _, ok := answerSource(cfg, list).(*daily.Source); !ok {
		t.Error("daily mode should use the daily source")
	}

	cfg.Answer = "crane"
	src := answerSource(cfg, list)
	if w, _ := src.Next(); w != "crane" {
		t.Errorf("fixed answer ignored, got %q", w)
	}
}

// recordingCloser notes what the logger had written when Close ran.
type recordingCloser struct {
	buf     *bytes.Buffer
	atClose string
	closed  bool
}

func (c *recordingCloser) Close() error {
	c.closed = true
	c.atClose = c.buf.String()
	return nil
}

func TestCloseLogWritesErrorBeforeClosing(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	c := &recordingCloser{buf: &buf}
	closeLog(c, errors.New("start game: boom"))
	if !c.closed {
		t.Fatal("log file not closed")
	}
	if !strings.Contains(c.atClose, "start game: boom") {
		t.Errorf("error not logged before close; log held %q", c.atClose)
	}

	buf.Reset()
	c = &recordingCloser{buf: &buf}
	closeLog(c, nil)
	if !c.closed || c.atClose != "" {
		t.Errorf("clean exit: closed=%v log=%q", c.closed, c.atClose)
	}
}
