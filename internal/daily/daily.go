// Package daily picks a deterministic "word of the day" so every player
// gets the same hidden word on the same UTC date.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Words is the vocabulary a Picker draws from.
type Words interface {
	Len() int
	At(i int) string
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Picker returns the word of the day from a vocabulary.
type Picker struct {
	words Words
	salt  string
	now   func() time.Time
}

// NewPicker builds a Picker over words. A nil now uses time.Now.
func NewPicker(words Words, salt string, now func() time.Time) *Picker {
	if now == nil {
		now = time.Now
	}
	return &Picker{words: words, salt: salt, now: now}
}

// Pick returns today's word.
func (p *Picker) Pick() string {
	return p.words.At(WordIndex(p.now(), p.salt, p.words.Len()))
}
