// internal/console/runner.go
//
// Console front end for Hangman.
// Responsibilities:
//   - Outer loop: start a session, play it out, offer a restart.
//   - Turn loop: render state, read a validated letter, apply it, give feedback.
//   - Record every finished session and print a tally when the player quits.
//
// Notes:
//   - Single goroutine; every read blocks on the input reader.
//   - Closed input (EOF) ends the run the same way declining a restart does.
//   - Input lines have no length limit; an oversized line is just an invalid guess.
//   - Clearing the screen is an ANSI sequence; callers decide whether the
//     output is a terminal that understands it.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/store"
)

const clearSequence = "\033[H\033[2J"

// Picker chooses the hidden word for a new session.
type Picker interface {
	Pick() string
}

// Options tune a Runner.
type Options struct {
	MaxIncorrect int            // wrong guesses allowed per session
	ClearScreen  bool           // emit clearSequence before each render
	Pause        bool           // wait for Enter after each guess
	NoRestart    bool           // end the run after one session instead of offering another
	Logger       zerolog.Logger // diagnostics; never written to out
	Now          func() time.Time
}

// Runner drives sessions over a line-oriented reader and a writer.
type Runner struct {
	in     *bufio.Reader
	out    io.Writer
	picker Picker
	store  store.Store
	opts   Options
}

// New wires a Runner. A nil Now uses time.Now; a MaxIncorrect below 1
// falls back to game.DefaultMaxIncorrect.
func New(in io.Reader, out io.Writer, picker Picker, st store.Store, opts Options) *Runner {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.MaxIncorrect < 1 {
		opts.MaxIncorrect = game.DefaultMaxIncorrect
	}
	return &Runner{
		in:     bufio.NewReader(in),
		out:    out,
		picker: picker,
		store:  st,
		opts:   opts,
	}
}

// Run plays sessions until the player declines a restart or input ends.
func (r *Runner) Run(ctx context.Context) error {
	for {
		g, err := game.New(r.picker.Pick(), r.opts.MaxIncorrect)
		if err != nil {
			return fmt.Errorf("console: new game: %w", err)
		}
		started := r.opts.Now()
		r.opts.Logger.Debug().Str("gameId", g.ID).Int("letters", len(g.Word())).Msg("session started")

		err = r.play(g)
		if g.Finished() {
			r.record(ctx, g, started)
		}
		if errors.Is(err, io.EOF) {
			r.opts.Logger.Debug().Str("gameId", g.ID).Msg("input closed")
			break
		}
		if err != nil {
			return err
		}
		if r.opts.NoRestart {
			break
		}

		again, err := r.askAgain()
		if errors.Is(err, io.EOF) || (err == nil && !again) {
			break
		}
		if err != nil {
			return err
		}
	}
	r.farewell(ctx)
	return nil
}

// play runs the turn loop for one session until it is won or lost.
func (r *Runner) play(g *game.Game) error {
	for {
		r.render(g)

		if g.Won() {
			r.printf("\nCongratulations! You guessed the word: %s\n", g.Word())
			return nil
		}
		if g.Finished() {
			r.printf("\nGame Over! You ran out of guesses.\n")
			r.printf("The word was: %s\n", g.Word())
			return nil
		}

		letter, err := r.readGuess(g)
		if err != nil {
			return err
		}
		hit, err := g.Guess(letter)
		if err != nil {
			// readGuess already filtered every rejection the engine knows.
			return fmt.Errorf("console: apply guess: %w", err)
		}
		if hit {
			r.printf("Good guess! '%c' is in the word.\n", letter)
		} else {
			r.printf("Sorry, '%c' is not in the word.\n", letter)
		}
		r.opts.Logger.Debug().
			Str("gameId", g.ID).
			Str("letter", string(letter)).
			Bool("hit", hit).
			Int("incorrect", g.Incorrect()).
			Msg("guess")

		if r.opts.Pause {
			r.printf("\nPress Enter to continue...")
			if _, err := r.readLine(); err != nil {
				return err
			}
		}
	}
}

// readGuess prompts until the player enters a single letter not yet tried.
func (r *Runner) readGuess(g *game.Game) (rune, error) {
	for {
		r.printf("Guess a letter: ")
		line, err := r.readLine()
		if err != nil {
			return 0, err
		}
		letter, err := game.ParseLetter(line)
		switch {
		case errors.Is(err, game.ErrInvalidLetter):
			r.printf("Invalid input. Please enter a single letter.\n")
		case g.HasGuessed(letter):
			r.printf("You already guessed that letter. Try again.\n")
		default:
			return letter, nil
		}
	}
}

// askAgain reports whether the player wants another session.
func (r *Runner) askAgain() (bool, error) {
	r.printf("\nDo you want to play again? (yes/no): ")
	line, err := r.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "yes", "y":
		return true, nil
	}
	return false, nil
}

// render draws the gallows, the masked word and the guess summary.
func (r *Runner) render(g *game.Game) {
	if r.opts.ClearScreen {
		r.printf(clearSequence)
	}
	r.printf("%s\n", Gallows(g.Incorrect(), g.MaxIncorrect()))
	r.printf("\n--- Hangman ---\n")
	r.printf("\nWord: %s\n", g.Mask())
	r.printf("Guessed letters: %s\n", guessedList(g.Guessed()))
	r.printf("Incorrect guesses left: %d\n", g.Remaining())
	r.printf("%s\n", strings.Repeat("-", 20))
}

// record stores a finished session; failures are logged, never fatal.
func (r *Runner) record(ctx context.Context, g *game.Game, started time.Time) {
	rec := store.Record{
		ID:         g.ID,
		Word:       g.Word(),
		Won:        g.Won(),
		Incorrect:  g.Incorrect(),
		Guesses:    g.Guesses(),
		StartedAt:  started,
		FinishedAt: r.opts.Now(),
	}
	if err := r.store.Save(ctx, rec); err != nil {
		r.opts.Logger.Warn().Err(err).Str("gameId", g.ID).Msg("save session")
		return
	}
	r.opts.Logger.Info().
		Str("gameId", g.ID).
		Str("state", string(g.State())).
		Int("guesses", rec.Guesses).
		Dur("elapsed", rec.FinishedAt.Sub(rec.StartedAt)).
		Msg("session finished")
}

// farewell prints the closing line and the run tally.
func (r *Runner) farewell(ctx context.Context) {
	r.printf("\nThanks for playing Hangman!\n")
	records, err := r.store.List(ctx)
	if err != nil {
		r.opts.Logger.Warn().Err(err).Msg("list sessions")
		return
	}
	if wins, played := store.Tally(records); played > 0 {
		r.printf("You won %d of %d game(s).\n", wins, played)
	}
}

// readLine returns the next input line without its terminator, io.EOF
// once input is exhausted. A final line lacking a newline is still returned.
func (r *Runner) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("console: read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *Runner) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// guessedList formats letters as "A, B, C", or "None" when empty.
func guessedList(letters []rune) string {
	if len(letters) == 0 {
		return "None"
	}
	parts := make([]string, len(letters))
	for i, l := range letters {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}
