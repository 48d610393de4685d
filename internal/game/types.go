// internal/game/types.go
//
// Core type definitions for the werdol rule engine.
// Defines:
//   - Kind:  which variant a Tile currently holds.
//   - Shade: the presentation class a host picks a color from.
//   - State: the coarse outcome of a Board (playing/won/lost).

package game

// Board dimensions. Rows are guesses, columns are letter positions.
const (
	Rows = 5
	Cols = 5
)

// Kind identifies the variant of a Tile.
// Possible values:
//   - KindBlank:       no letter entered.
//   - KindUnconfirmed: letter typed, row not submitted yet.
//   - KindCorrect:     letter is in the answer at this position.
//   - KindMisplaced:   letter is in the answer, elsewhere.
//   - KindMissing:     letter is not in the answer at all.
type Kind uint8

const (
	KindBlank Kind = iota
	KindUnconfirmed
	KindCorrect
	KindMisplaced
	KindMissing
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindUnconfirmed:
		return "unconfirmed"
	case KindCorrect:
		return "correct"
	case KindMisplaced:
		return "misplaced"
	case KindMissing:
		return "missing"
	}
	return "unknown"
}

// Shade is the color class of a tile as seen by a host.
type Shade uint8

const (
	ShadeNeutral Shade = iota
	ShadeCautionary
	ShadeAffirmative
)

// State is the outcome of a Board.
type State uint8

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "playing"
}
