package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/werdol/internal/config"
	"github.com/robalobadob/werdol/internal/game"
)

// Layout: each tile is tileW cells wide with a one-cell gap, and board
// rows are separated by a blank line.
const (
	tileW  = 3
	gap    = 1
	boardW = game.Cols*tileW + (game.Cols-1)*gap
	boardH = game.Rows*2 - 1
)

// Styles holds the tile style for each shade plus text styles.
type Styles struct {
	Affirmative tcell.Style
	Cautionary  tcell.Style
	Neutral     tcell.Style
	Text        tcell.Style
	Alert       tcell.Style
}

// DefaultStyles matches config.Defaults colors.
func DefaultStyles() Styles {
	return StylesFor(config.Defaults().Colors)
}

// StylesFor resolves color names; unknown names fall back to the
// terminal default color.
func StylesFor(c config.Colors) Styles {
	tile := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	return Styles{
		Affirmative: tile.Background(tcell.GetColor(c.Affirmative)),
		Cautionary:  tile.Background(tcell.GetColor(c.Cautionary)),
		Neutral:     tile.Background(tcell.GetColor(c.Neutral)),
		Text:        tcell.StyleDefault,
		Alert:       tcell.StyleDefault.Foreground(tcell.ColorRed),
	}
}

func (s Styles) forShade(sh game.Shade) tcell.Style {
	switch sh {
	case game.ShadeAffirmative:
		return s.Affirmative
	case game.ShadeCautionary:
		return s.Cautionary
	}
	return s.Neutral
}

// Draw renders the whole screen from the current board.
func (a *App) Draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	x0 := (w - boardW) / 2
	y0 := (h - boardH - 6) / 2
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 2 {
		y0 = 2
	}

	drawText(a.screen, (w-6)/2, y0-2, "WERDOL", a.styles.Text.Bold(true))

	b := &a.board
	cr, cc := b.Cursor()
	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Cols; c++ {
			t := b.Tile(r, c)
			st := a.styles.forShade(t.Shade())
			if !b.Finished() && r == cr && c == cc {
				st = st.Reverse(true)
			}
			x := x0 + c*(tileW+gap)
			y := y0 + r*2
			glyph := ' '
			if l, ok := t.Letter(); ok {
				glyph = l
			}
			a.screen.SetContent(x, y, ' ', nil, st)
			a.screen.SetContent(x+1, y, glyph, nil, st)
			a.screen.SetContent(x+2, y, ' ', nil, st)
		}
	}

	y := y0 + boardH + 1
	status, style := a.statusLine()
	drawText(a.screen, centre(w, status), y, status, style)
	stats := fmt.Sprintf("Played %d  Wins %d  Streak %d  Best %d",
		a.stats.Played, a.stats.Wins, a.stats.Streak, a.stats.MaxStreak)
	drawText(a.screen, centre(w, stats), y+2, stats, a.styles.Text)
	help := "A-Z type  Backspace delete  Enter submit  Esc new word  Ctrl-C quit"
	drawText(a.screen, centre(w, help), y+4, help, a.styles.Text.Dim(true))

	a.screen.Show()
}

// statusLine describes the board's state in one line.
func (a *App) statusLine() (string, tcell.Style) {
	b := &a.board
	if a.message != "" {
		return a.message, a.styles.Alert
	}
	switch b.State() {
	case game.Won:
		return fmt.Sprintf("Solved in %d! Enter for a new word", b.Guesses()), a.styles.Text
	case game.Lost:
		return fmt.Sprintf("The word was %s. Enter for a new word", b.Answer()), a.styles.Alert
	}
	return fmt.Sprintf("Guess %d of %d", b.Row()+1, game.Rows), a.styles.Text
}

func centre(w int, s string) int {
	x := (w - len([]rune(s))) / 2
	if x < 0 {
		return 0
	}
	return x
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
