// internal/words/words.go
//
// Provides the vocabulary the game draws hidden words from.
//
// Responsibilities:
//   - Load a word list from a configured file or fall back to the embedded default.
//   - Normalise entries (uppercase, letters only, no duplicates).
//   - Pick a uniformly random word for each new session.
//
// Word list format:
//   one word per line; blank lines and lines starting with '#' are skipped.
//   Entries containing anything but letters A–Z (after upper-casing) are dropped.
//
// Lists are plain values handed to the console runner, never package globals.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/hangman/assets"
)

// ErrEmpty is returned when a source yields no usable words.
var ErrEmpty = errors.New("words: list is empty")

// List is an immutable, normalised vocabulary.
type List struct {
	words []string
}

// New normalises raw entries into a List.
// Returns ErrEmpty if nothing usable remains.
func New(raw []string) (*List, error) {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		w := normalize(line)
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return &List{words: out}, nil
}

// Parse reads one word per line from r.
func Parse(r io.Reader) (*List, error) {
	var raw []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		raw = append(raw, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read: %w", err)
	}
	return New(raw)
}

// Load reads the list at path, or the embedded default when path is empty.
func Load(path string) (*List, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Default returns the embedded vocabulary.
func Default() (*List, error) {
	raw, err := assets.WordsList()
	if err != nil {
		return nil, fmt.Errorf("words: embedded list: %w", err)
	}
	return New(raw)
}

// Len is the number of words in the list.
func (l *List) Len() int { return len(l.words) }

// At returns the i-th word.
func (l *List) At(i int) string { return l.words[i] }

// Words returns a copy of the list.
func (l *List) Words() []string { return append([]string(nil), l.words...) }

// Pick returns a cryptographically random word from the list.
func (l *List) Pick() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return l.words[0]
	}
	return l.words[n.Int64()]
}

// normalize trims and upper-cases a line, returning "" for comments,
// blanks and anything that is not purely A–Z.
func normalize(line string) string {
	w := strings.ToUpper(strings.TrimSpace(line))
	if w == "" || strings.HasPrefix(w, "#") {
		return ""
	}
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return ""
		}
	}
	return w
}
