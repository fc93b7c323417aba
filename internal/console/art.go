package console

// gallows holds one drawing per stage, from empty scaffold to full figure.
var gallows = [...]string{
	`
   ------
   |    |
   |
   |
   |
   |
--------`,
	`
   ------
   |    |
   |    O
   |
   |
   |
--------`,
	`
   ------
   |    |
   |    O
   |    |
   |
   |
--------`,
	`
   ------
   |    |
   |    O
   |   /|
   |
   |
--------`,
	`
   ------
   |    |
   |    O
   |   /|\
   |
   |
--------`,
	`
   ------
   |    |
   |    O
   |   /|\
   |   /
   |
--------`,
	`
   ------
   |    |
   |    O
   |   /|\
   |   / \
   |
--------`,
}

// Gallows returns the drawing for incorrect wrong guesses out of max.
// Stages are scaled so the full figure shows exactly when incorrect == max.
func Gallows(incorrect, max int) string {
	last := len(gallows) - 1
	if max <= 0 || incorrect <= 0 {
		return gallows[0]
	}
	if incorrect >= max {
		return gallows[last]
	}
	return gallows[incorrect*last/max]
}
