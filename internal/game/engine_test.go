package game

import (
	"errors"
	"testing"
)

func mustNew(t *testing.T, word string, max int) *Game {
	t.Helper()
	g, err := New(word, max)
	if err != nil {
		t.Fatalf("New(%q, %d) failed: %v", word, max, err)
	}
	return g
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name string
		word string
		max  int
		ok   bool
	}{
		{"lowercase word", "cloud", 6, true},
		{"padded word", "  cloud\n", 6, true},
		{"empty", "", 6, false},
		{"digits", "cl0ud", 6, false},
		{"space inside", "cl oud", 6, false},
		{"zero ceiling", "cloud", 0, false},
		{"negative ceiling", "cloud", -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(tc.word, tc.max)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected error, got game %+v", g)
			}
			if tc.ok && g.Word() != "CLOUD" {
				t.Fatalf("word not normalised: %q", g.Word())
			}
		})
	}
}

func TestParseLetter(t *testing.T) {
	cases := []struct {
		in   string
		want rune
		err  error
	}{
		{"a", 'A', nil},
		{"Z", 'Z', nil},
		{" q\n", 'Q', nil},
		{"", 0, ErrInvalidLetter},
		{"ab", 0, ErrInvalidLetter},
		{"1", 0, ErrInvalidLetter},
		{"?", 0, ErrInvalidLetter},
		{"é", 0, ErrInvalidLetter},
	}
	for _, tc := range cases {
		got, err := ParseLetter(tc.in)
		if !errors.Is(err, tc.err) {
			t.Fatalf("ParseLetter(%q) err = %v, want %v", tc.in, err, tc.err)
		}
		if got != tc.want {
			t.Fatalf("ParseLetter(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWinWithoutMisses(t *testing.T) {
	g := mustNew(t, "CLOUD", 6)
	for i, r := range "CLOUD" {
		hit, err := g.Guess(r)
		if err != nil {
			t.Fatalf("guess %q: %v", r, err)
		}
		if !hit {
			t.Fatalf("guess %q should hit", r)
		}
		if i < 4 && g.Finished() {
			t.Fatalf("finished early after %q", r)
		}
	}
	if g.State() != StateWon || !g.Won() {
		t.Fatalf("state = %s, want won", g.State())
	}
	if g.Incorrect() != 0 {
		t.Fatalf("incorrect = %d, want 0", g.Incorrect())
	}
	if g.Guesses() != 5 {
		t.Fatalf("guesses = %d, want 5", g.Guesses())
	}
}

func TestLossAfterSixMisses(t *testing.T) {
	g := mustNew(t, "CLOUD", 6)
	for _, r := range "QWERTY" {
		hit, err := g.Guess(r)
		if err != nil {
			t.Fatalf("guess %q: %v", r, err)
		}
		if hit {
			t.Fatalf("guess %q should miss", r)
		}
		if g.Incorrect() > g.MaxIncorrect() {
			t.Fatalf("incorrect %d exceeds max %d", g.Incorrect(), g.MaxIncorrect())
		}
	}
	if g.State() != StateLost {
		t.Fatalf("state = %s, want lost", g.State())
	}
	if g.Incorrect() != 6 || g.Remaining() != 0 {
		t.Fatalf("incorrect = %d remaining = %d", g.Incorrect(), g.Remaining())
	}
	if _, err := g.Guess('C'); !errors.Is(err, ErrFinished) {
		t.Fatalf("guess after loss: err = %v, want ErrFinished", err)
	}
	if g.Incorrect() != 6 {
		t.Fatalf("incorrect changed after finish: %d", g.Incorrect())
	}
}

func TestRepeatGuessDoesNotMutate(t *testing.T) {
	g := mustNew(t, "CLOUD", 6)
	if _, err := g.Guess('X'); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Guess('c'); err != nil {
		t.Fatal(err)
	}
	for _, r := range []rune{'X', 'x', 'C'} {
		if _, err := g.Guess(r); !errors.Is(err, ErrAlreadyGuessed) {
			t.Fatalf("repeat %q: err = %v, want ErrAlreadyGuessed", r, err)
		}
	}
	if g.Incorrect() != 1 || g.Guesses() != 2 || len(g.Guessed()) != 2 {
		t.Fatalf("state mutated: incorrect=%d guesses=%d guessed=%q", g.Incorrect(), g.Guesses(), string(g.Guessed()))
	}
}

func TestGuessRejectsNonLetter(t *testing.T) {
	g := mustNew(t, "CLOUD", 6)
	if _, err := g.Guess('3'); !errors.Is(err, ErrInvalidLetter) {
		t.Fatalf("err = %v, want ErrInvalidLetter", err)
	}
	if g.Guesses() != 0 {
		t.Fatalf("invalid guess was recorded")
	}
}

func TestMaskAndGuessed(t *testing.T) {
	g := mustNew(t, "HELLO", 6)
	if got := g.Mask(); got != "_ _ _ _ _" {
		t.Fatalf("mask = %q", got)
	}
	for _, r := range "LZH" {
		_, _ = g.Guess(r)
	}
	if got := g.Mask(); got != "H _ L L _" {
		t.Fatalf("mask = %q", got)
	}
	if got := string(g.Guessed()); got != "HLZ" {
		t.Fatalf("guessed = %q, want sorted HLZ", got)
	}
}

func TestWinOnLastAllowedGuess(t *testing.T) {
	// A winning guess is never counted as a loss, even at the edge of the budget.
	g := mustNew(t, "AB", 2)
	_, _ = g.Guess('Z')
	_, _ = g.Guess('A')
	if _, err := g.Guess('B'); err != nil {
		t.Fatal(err)
	}
	if !g.Won() {
		t.Fatalf("state = %s, want won", g.State())
	}
}

func TestIncorrectNeverExceedsCeiling(t *testing.T) {
	for max := 1; max <= 8; max++ {
		g := mustNew(t, "CLOUD", max)
		for r := 'A'; r <= 'Z'; r++ {
			_, _ = g.Guess(r)
			if g.Incorrect() < 0 || g.Incorrect() > max {
				t.Fatalf("max=%d: incorrect=%d out of range", max, g.Incorrect())
			}
		}
		if !g.Finished() {
			t.Fatalf("max=%d: game should be finished after the whole alphabet", max)
		}
	}
}

func TestAccessorsTrackGuesses(t *testing.T) {
	g := mustNew(t, "sky", 3)
	if g.Word() != "SKY" || g.MaxIncorrect() != 3 || g.Incorrect() != 0 || g.Remaining() != 3 {
		t.Fatalf("fresh game: word=%q max=%d incorrect=%d", g.Word(), g.MaxIncorrect(), g.Incorrect())
	}
	_, _ = g.Guess('Q')
	_, _ = g.Guess('S')
	if g.Word() != "SKY" || g.Incorrect() != 1 || g.Remaining() != 2 {
		t.Fatalf("after guesses: word=%q incorrect=%d remaining=%d", g.Word(), g.Incorrect(), g.Remaining())
	}
}
