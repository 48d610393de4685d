// internal/words/words.go
//
// Answer lists and answer sources for the rule engine.
//
// Responsibilities:
//   - Load the answer list from a file, or fall back to the embedded default.
//   - Normalize entries (trim, lowercase, keep 5-letter alphabetic words, dedupe).
//   - Provide Source implementations the host calls for each new puzzle.
//
// The engine never asks whether a guess is a real word; these lists only
// decide what the answer is.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/werdol/assets"
)

// ErrEmptyList is returned when no usable word survives normalization.
var ErrEmptyList = errors.New("words: answers list is empty")

// Source hands out answers for new puzzles.
type Source interface {
	Next() (string, error)
}

// List is an ordered, normalized answer list.
type List struct {
	words []string
	set   map[string]struct{}
}

// Load reads answers from path, or from the embedded list when path is "".
func Load(path string) (*List, error) {
	var raw []string
	var err error
	if path != "" {
		raw, err = readWordFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	} else {
		raw, err = assets.AnswersList()
		if err != nil {
			return nil, fmt.Errorf("read embedded answers: %w", err)
		}
	}
	return NewList(raw)
}

// NewList normalizes raw into a List.
func NewList(raw []string) (*List, error) {
	l := &List{set: make(map[string]struct{}, len(raw))}
	for _, w := range raw {
		w = strings.TrimSpace(strings.ToLower(w))
		if len(w) != 5 || !isAlpha(w) {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	if len(l.words) == 0 {
		return nil, ErrEmptyList
	}
	return l, nil
}

// Len returns the number of answers.
func (l *List) Len() int { return len(l.words) }

// At returns the i-th answer.
func (l *List) At(i int) string { return l.words[i] }

// Contains reports whether w is an answer, ignoring case.
func (l *List) Contains(w string) bool {
	_, ok := l.set[strings.ToLower(w)]
	return ok
}

// readWordFile loads one word per line, skipping blanks and '#' comments.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// RandomSource draws answers uniformly with crypto/rand.
type RandomSource struct {
	list *List
}

// NewRandomSource returns a Source over list.
func NewRandomSource(list *List) *RandomSource {
	return &RandomSource{list: list}
}

// Next returns a random answer.
func (s *RandomSource) Next() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(s.list.Len())))
	if err != nil {
		return "", fmt.Errorf("pick answer: %w", err)
	}
	return s.list.At(int(n.Int64())), nil
}

// Fixed is a Source that always returns the same word.
type Fixed string

// Next returns the fixed word.
func (f Fixed) Next() (string, error) { return string(f), nil }
