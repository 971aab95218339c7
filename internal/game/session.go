// internal/game/session.go
//
// Core game state for a single guessing session.
// Responsibilities:
//   - Draw the secret number at session start.
//   - Apply guesses: count the attempt, compare against the secret.
//   - Track state transitions: playing → won.
//
// Notes:
//   - Randomness is an injected *rand.Rand handle, never package-global state.
//   - The secret is drawn from [0,100) while guesses are bounded to [1,100];
//     this asymmetry is part of the game's historical behavior.

package game

import "math/rand"

// secretUpper bounds the secret draw: the secret lies in [0, secretUpper).
const secretUpper = 100

// Outcome is the result of comparing one guess against the secret.
type Outcome int

const (
	// OutcomeTooSmall means the guess is below the secret.
	OutcomeTooSmall Outcome = iota
	// OutcomeTooLarge means the guess is above the secret.
	OutcomeTooLarge
	// OutcomeWin means the guess equals the secret; the session is over.
	OutcomeWin
)

// Session holds the state of one guessing game.
type Session struct {
	secret   int  // target value, fixed for the session lifetime
	attempts int  // accepted guesses so far, including the winning one
	finished bool // true once the secret has been guessed
}

// NewSession constructs a session around the given randomness source.
// If withSecret is negative a secret is drawn uniformly from [0,100);
// otherwise withSecret is used as-is (tests pin the secret this way).
func NewSession(rng *rand.Rand, withSecret int) *Session {
	secret := withSecret
	if secret < 0 {
		secret = rng.Intn(secretUpper)
	}
	return &Session{secret: secret}
}

// Play applies one validated guess, mutating the session state.
// The attempt is counted before the comparison so the winning guess is
// included in the final tally.
func (s *Session) Play(g Guess) Outcome {
	s.attempts++
	switch {
	case g.Value() < s.secret:
		return OutcomeTooSmall
	case g.Value() > s.secret:
		return OutcomeTooLarge
	default:
		s.finished = true
		return OutcomeWin
	}
}

// Secret reports the session's target value.
func (s *Session) Secret() int { return s.secret }

// Attempts reports how many guesses have been applied so far.
func (s *Session) Attempts() int { return s.attempts }

// Finished reports whether the secret has been guessed.
func (s *Session) Finished() bool { return s.finished }

// State reports a coarse string representation of the session state.
func (s *Session) State() string {
	if s.finished {
		return "won"
	}
	return "playing"
}
