// internal/game/engine.go
//
// Core game engine for a single Hangman session.
// Responsibilities:
//   - Create new sessions for a given word and wrong-guess ceiling.
//   - Validate player input (exactly one letter A–Z, case-insensitive).
//   - Apply guesses, counting misses against the ceiling.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The engine does no I/O; the console package owns rendering and prompts.
//   - Rejected guesses never mutate the game.
//   - randomID() is a compact hex identifier for correlating log lines.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// New constructs a new game for word. The word is upper-cased and must
// consist of letters A–Z only; maxIncorrect must be at least 1.
func New(word string, maxIncorrect int) (*Game, error) {
	w := strings.ToUpper(strings.TrimSpace(word))
	if w == "" {
		return nil, errors.New("game: empty word")
	}
	if !isAlpha(w) {
		return nil, fmt.Errorf("game: word %q must contain only letters A-Z", word)
	}
	if maxIncorrect < 1 {
		return nil, fmt.Errorf("game: max incorrect guesses must be at least 1, got %d", maxIncorrect)
	}
	return &Game{
		ID:           randomID(),
		word:         w,
		maxIncorrect: maxIncorrect,
		guessed:      make(map[rune]struct{}),
		state:        StatePlaying,
	}, nil
}

// ParseLetter turns raw player input into an uppercase letter.
// Surrounding whitespace is ignored; anything other than exactly one
// ASCII letter yields ErrInvalidLetter.
func ParseLetter(input string) (rune, error) {
	s := strings.TrimSpace(input)
	if len(s) != 1 {
		return 0, ErrInvalidLetter
	}
	r := rune(strings.ToUpper(s)[0])
	if r < 'A' || r > 'Z' {
		return 0, ErrInvalidLetter
	}
	return r, nil
}

// Guess applies one letter to the game and reports whether it occurs in
// the word.
//
// Validation rules:
//   - Game must not be finished.
//   - Letter must be A–Z (lowercase is accepted and upper-cased).
//   - Letter must not have been guessed before.
//
// State transitions:
//   - If every letter of the word has been guessed → won.
//   - Else if the miss count reaches the ceiling → lost.
func (g *Game) Guess(letter rune) (bool, error) {
	if g.Finished() {
		return false, ErrFinished
	}
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return false, ErrInvalidLetter
	}
	if g.HasGuessed(letter) {
		return false, ErrAlreadyGuessed
	}

	g.guessed[letter] = struct{}{}
	g.order = append(g.order, letter)

	hit := strings.ContainsRune(g.word, letter)
	if !hit {
		g.incorrect++
	}

	if g.revealed() {
		g.state = StateWon
	} else if g.incorrect >= g.maxIncorrect {
		g.state = StateLost
	}
	return hit, nil
}

// HasGuessed reports whether letter (uppercase) was already tried.
func (g *Game) HasGuessed(letter rune) bool {
	_, ok := g.guessed[letter]
	return ok
}

// Mask renders the word with unguessed letters hidden, e.g. "C _ O _ _".
func (g *Game) Mask() string {
	parts := make([]string, 0, len(g.word))
	for _, r := range g.word {
		if g.HasGuessed(r) {
			parts = append(parts, string(r))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

// Guessed returns the guessed letters in alphabetical order.
func (g *Game) Guessed() []rune {
	out := make([]rune, 0, len(g.guessed))
	for r := range g.guessed {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Guesses is the number of accepted guesses so far.
func (g *Game) Guesses() int { return len(g.order) }

// Remaining is the number of wrong guesses the player can still afford.
func (g *Game) Remaining() int { return g.maxIncorrect - g.incorrect }

// Word is the hidden word, uppercase.
func (g *Game) Word() string { return g.word }

// Incorrect is the number of wrong guesses so far.
func (g *Game) Incorrect() int { return g.incorrect }

// MaxIncorrect is the wrong-guess ceiling for this session.
func (g *Game) MaxIncorrect() int { return g.maxIncorrect }

func (g *Game) State() State   { return g.state }
func (g *Game) Finished() bool { return g.state != StatePlaying }
func (g *Game) Won() bool      { return g.state == StateWon }

// revealed reports whether every letter of the word has been guessed.
func (g *Game) revealed() bool {
	for _, r := range g.word {
		if !g.HasGuessed(r) {
			return false
		}
	}
	return true
}

// isAlpha checks that a string consists only of uppercase A–Z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
