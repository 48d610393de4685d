// internal/game/tile.go
//
// Tile is one letter cell of the board. It is a tagged value: Kind says
// which variant it holds, and every variant except Blank carries a letter.

package game

import "fmt"

// Tile is a single cell's confirmation state.
// The zero value is a Blank tile.
type Tile struct {
	kind   Kind
	letter rune
}

// Blank returns an empty tile.
func Blank() Tile { return Tile{} }

// Unconfirmed returns a tile holding r in an unsubmitted row.
func Unconfirmed(r rune) Tile { return Tile{kind: KindUnconfirmed, letter: r} }

// Correct returns a tile scored as the right letter in the right place.
func Correct(r rune) Tile { return Tile{kind: KindCorrect, letter: r} }

// Misplaced returns a tile scored as present elsewhere in the answer.
func Misplaced(r rune) Tile { return Tile{kind: KindMisplaced, letter: r} }

// Missing returns a tile scored as absent from the answer.
func Missing(r rune) Tile { return Tile{kind: KindMissing, letter: r} }

// Input proposes r for this tile without scoring it.
// Any previous state is overwritten.
func (t *Tile) Input(r rune) {
	*t = Unconfirmed(r)
}

// Delete forgets whatever the tile held.
func (t *Tile) Delete() {
	*t = Tile{}
}

// Check scores an unconfirmed tile against answer, where expected is the
// answer letter at this tile's column. Tiles in any other state are left
// as they are.
//
// Priority is fixed: an exact positional match wins over membership.
// Membership is a plain "appears anywhere" test with no duplicate
// accounting; see WithStrictScoring for the capped variant.
func (t *Tile) Check(answer []rune, expected rune) {
	if t.kind != KindUnconfirmed {
		return
	}
	g := t.letter
	switch {
	case g == expected:
		*t = Correct(g)
	case containsRune(answer, g):
		*t = Misplaced(g)
	default:
		*t = Missing(g)
	}
}

// Kind reports the tile's variant.
func (t Tile) Kind() Kind { return t.kind }

// IsCorrect reports whether the tile was scored Correct.
func (t Tile) IsCorrect() bool { return t.kind == KindCorrect }

// Letter returns the carried letter. ok is false for a Blank tile.
func (t Tile) Letter() (r rune, ok bool) {
	if t.kind == KindBlank {
		return 0, false
	}
	return t.letter, true
}

// Glyph is the text a host draws on the tile; empty for Blank.
func (t Tile) Glyph() string {
	if r, ok := t.Letter(); ok {
		return string(r)
	}
	return ""
}

// Shade maps the tile to its presentation class.
func (t Tile) Shade() Shade {
	switch t.kind {
	case KindCorrect:
		return ShadeAffirmative
	case KindMisplaced:
		return ShadeCautionary
	}
	return ShadeNeutral
}

func (t Tile) String() string {
	if t.kind == KindBlank {
		return "Blank"
	}
	return fmt.Sprintf("%s(%c)", t.kind, t.letter)
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}
