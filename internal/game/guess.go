// internal/game/guess.go
//
// Guess is the validated guess value object.
// A Guess can only be obtained through NewGuess, which enforces the playable
// range [1,100]; the wrapped value is immutable and only readable via Value.

package game

import "fmt"

const (
	// GuessMin and GuessMax bound every playable guess.
	GuessMin = 1
	GuessMax = 100
)

// Guess holds one validated guess. The zero value is not a playable guess;
// always construct through NewGuess.
type Guess struct {
	value int
}

// NewGuess validates v against the playable range and wraps it.
// An out-of-range value means input validation upstream was bypassed,
// so callers treat the error as fatal for the session rather than re-prompt.
func NewGuess(v int) (Guess, error) {
	if v < GuessMin || v > GuessMax {
		return Guess{}, fmt.Errorf("guess must be between %d and %d, got %d", GuessMin, GuessMax, v)
	}
	return Guess{value: v}, nil
}

// Value reports the validated guess.
func (g Guess) Value() int { return g.value }
