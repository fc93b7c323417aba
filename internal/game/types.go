// internal/game/types.go
//
// Core type definitions for the Hangman game engine.
// Defines:
//   - State: coarse status of a session (playing/won/lost).
//   - Game: state for a single in-progress or finished session.

package game

import "errors"

// State is the coarse status of a session.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// DefaultMaxIncorrect is the number of wrong guesses allowed when no
// other ceiling is configured.
const DefaultMaxIncorrect = 6

// Guess rejections. None of them changes the game.
var (
	ErrInvalidLetter  = errors.New("invalid input: expected a single letter")
	ErrAlreadyGuessed = errors.New("letter already guessed")
	ErrFinished       = errors.New("game finished")
)

// Game holds the state of a single Hangman session.
// Everything but ID is reachable only through methods, so the word stays
// fixed and the miss count stays within 0..maxIncorrect.
type Game struct {
	ID           string            // Unique session identifier (random hex string).
	word         string            // Hidden word, uppercase A–Z.
	maxIncorrect int               // Wrong guesses allowed before loss.
	incorrect    int               // Wrong guesses so far, 0..maxIncorrect.
	guessed      map[rune]struct{} // Letters guessed so far.
	order        []rune            // Letters in the order they were guessed.
	state        State
}
