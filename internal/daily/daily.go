// internal/daily/daily.go
//
// Daily puzzle selection.
// Responsibilities:
//   - Map a UTC date onto an index into the answer list.
//   - Serve that day's word through the words.Source interface.
//
// Notes:
//   - The index is HMAC-SHA256(salt, YYYY-MM-DD) reduced modulo the list
//     length, so changing the salt reshuffles every day at once.

// Package daily picks one answer per UTC date.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/werdol/internal/words"
)

const dateLayout = "2006-01-02"

// DateKey is the UTC calendar date of t, e.g. "2024-03-09".
func DateKey(t time.Time) string { return t.UTC().Format(dateLayout) }

// WordIndex maps the date of t to an index in [0, n). It returns 0 for an
// empty list.
func WordIndex(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(t)))
	seed := binary.BigEndian.Uint64(mac.Sum(nil)) // first 8 bytes
	return int(seed % uint64(n))
}

// Source hands out today's answer. Every call on the same UTC date
// returns the same word, so a restart replays the daily puzzle.
type Source struct {
	list *words.List
	salt string
	now  func() time.Time
}

// NewSource returns a daily Source. now may be nil to use time.Now.
func NewSource(list *words.List, salt string, now func() time.Time) *Source {
	if now == nil {
		now = time.Now
	}
	return &Source{list: list, salt: salt, now: now}
}

// Next returns the answer for the current date.
func (s *Source) Next() (string, error) {
	return s.list.At(WordIndex(s.now(), s.salt, s.list.Len())), nil
}

// Date returns the date key Next is currently answering for.
func (s *Source) Date() string { return DateKey(s.now()) }
