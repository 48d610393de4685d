// internal/game/board.go
//
// Core rule engine for a single werdol puzzle.
// Responsibilities:
//   - Hold a 5x5 grid of tiles, the answer, and the typing cursor.
//   - Apply the four host operations: letter, delete, submit, reset.
//   - Score submitted rows tile by tile and decide win/loss.
//
// Notes:
//   - Board is a plain value. Copying it copies the whole game.
//   - Nothing here touches a screen, a clock or a random source; hosts
//     read the public queries and redraw from them.
package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidAnswer is returned when an answer is not exactly Cols letters.
var ErrInvalidAnswer = errors.New("answer must be exactly 5 letters")

// Board is the full puzzle state.
type Board struct {
	cells    [Rows][Cols]Tile
	answer   [Cols]rune // always uppercase
	row      int        // 0..Rows-1
	col      int        // 0..Cols-1
	finished bool
	strict   bool
}

// Option tweaks a Board at construction time.
type Option func(*Board)

// WithStrictScoring caps Misplaced marks at the number of answer letters
// not already matched as Correct, assigned left to right. Without it a
// repeated guess letter is marked Misplaced at every copy.
func WithStrictScoring() Option {
	return func(b *Board) { b.strict = true }
}

// New constructs a board for answer. The answer is uppercased and must be
// exactly Cols letters; surrounding whitespace counts against the length.
func New(answer string, opts ...Option) (Board, error) {
	var b Board
	ans, err := normalizeAnswer(answer)
	if err != nil {
		return b, err
	}
	b.answer = ans
	for _, o := range opts {
		o(&b)
	}
	return b, nil
}

// Reset throws the current game away and starts over with answer.
// The scoring mode is kept. On error the board is unchanged.
func (b *Board) Reset(answer string) error {
	ans, err := normalizeAnswer(answer)
	if err != nil {
		return err
	}
	*b = Board{answer: ans, strict: b.strict}
	return nil
}

// InputLetter types r at the cursor and moves right, stopping at the last
// column. Non-letters are ignored, as is everything after the game ends.
func (b *Board) InputLetter(r rune) {
	if b.finished || !unicode.IsLetter(r) {
		return
	}
	b.cells[b.row][b.col].Input(unicode.ToUpper(r))
	if b.col < Cols-1 {
		b.col++
	}
}

// DeleteLetter removes the most recently typed letter of the active row.
// With a full row the cursor sits on the filled last column, so that cell
// is cleared in place; otherwise the cursor steps back first.
// On a full row the cursor stays at column Cols-1 after the delete.
func (b *Board) DeleteLetter() {
	if b.finished {
		return
	}
	cur := &b.cells[b.row][b.col]
	if cur.Kind() != KindBlank {
		cur.Delete()
		return
	}
	if b.col == 0 {
		return
	}
	b.col--
	b.cells[b.row][b.col].Delete()
}

// SubmitRow scores the active row. It returns false and changes nothing
// when the game is over or the row is not completely typed.
//
// State transitions:
//   - every tile Correct → finished, HasWon.
//   - last row without a win → finished, HasLost.
//   - otherwise → cursor moves to the start of the next row.
func (b *Board) SubmitRow() bool {
	if b.finished || b.col != Cols-1 || !b.rowFull() {
		return false
	}
	row := &b.cells[b.row]
	for i := range row {
		row[i].Check(b.answer[:], b.answer[i])
	}
	if b.strict {
		capMisplaced(row, b.answer)
	}

	if b.row == Rows-1 || b.HasWon() {
		b.finished = true
		return true
	}
	b.row++
	b.col = 0
	return true
}

// HasWon reports whether the row under the cursor is all Correct.
// The cursor never leaves a winning row, so after the game ends this is
// the row that won.
func (b *Board) HasWon() bool {
	for _, t := range b.cells[b.row] {
		if !t.IsCorrect() {
			return false
		}
	}
	return true
}

// HasLost reports a finished game that was not won.
func (b *Board) HasLost() bool { return b.finished && !b.HasWon() }

// Finished reports whether the puzzle reached a terminal outcome.
func (b *Board) Finished() bool { return b.finished }

// State reports playing/won/lost.
func (b *Board) State() State {
	switch {
	case !b.finished:
		return Playing
	case b.HasWon():
		return Won
	}
	return Lost
}

// Row is the active guess row.
func (b *Board) Row() int { return b.row }

// Col is the active letter column.
func (b *Board) Col() int { return b.col }

// Cursor returns (row, col).
func (b *Board) Cursor() (row, col int) { return b.row, b.col }

// Answer returns the uppercase answer.
func (b *Board) Answer() string { return string(b.answer[:]) }

// Strict reports whether duplicate-capped scoring is on.
func (b *Board) Strict() bool { return b.strict }

// Tile returns the tile at (r, c). It panics on out-of-range indexes,
// like any array access.
func (b *Board) Tile(r, c int) Tile { return b.cells[r][c] }

// RowTiles returns a copy of row r.
func (b *Board) RowTiles(r int) [Cols]Tile { return b.cells[r] }

// Guess returns the letters typed in row r, with a space for each blank.
func (b *Board) Guess(r int) string {
	var sb strings.Builder
	for _, t := range b.cells[r] {
		if l, ok := t.Letter(); ok {
			sb.WriteRune(l)
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Guesses counts submitted rows.
func (b *Board) Guesses() int {
	if b.finished {
		return b.row + 1
	}
	return b.row
}

func (b *Board) rowFull() bool {
	for _, t := range b.cells[b.row] {
		if t.Kind() == KindBlank {
			return false
		}
	}
	return true
}

// capMisplaced demotes surplus Misplaced tiles to Missing.
//
// Pass 1: count answer letters whose position was not matched Correct.
// Pass 2: left to right, keep a Misplaced mark only while a count remains.
func capMisplaced(row *[Cols]Tile, answer [Cols]rune) {
	remaining := make(map[rune]int, Cols)
	for i, t := range row {
		if !t.IsCorrect() {
			remaining[answer[i]]++
		}
	}
	for i, t := range row {
		if t.Kind() != KindMisplaced {
			continue
		}
		if remaining[t.letter] > 0 {
			remaining[t.letter]--
			continue
		}
		row[i] = Missing(t.letter)
	}
}

func normalizeAnswer(s string) ([Cols]rune, error) {
	var out [Cols]rune
	rs := []rune(strings.ToUpper(s))
	if len(rs) != Cols {
		return out, fmt.Errorf("%w: got %q", ErrInvalidAnswer, s)
	}
	for i, r := range rs {
		if !unicode.IsLetter(r) {
			return out, fmt.Errorf("%w: %q is not a letter", ErrInvalidAnswer, r)
		}
		out[i] = r
	}
	return out, nil
}
