// internal/console/loop.go
//
// Console transport for one guessing session.
// Responsibilities:
//   - Read one guess per line from the input stream.
//   - Parse and validate input before handing it to the game package.
//   - Emit feedback: one randomly picked pool line per non-winning turn,
//     the victory summary on the winning turn.
//
// Failure policy: any malformed line (not a number, out of range) or read
// failure aborts the loop with an error. There is no re-prompt.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"

	"guessquest/internal/game"
	"guessquest/internal/messages"
)

// Loop drives one session over a line-oriented input/output pair.
type Loop struct {
	in      *bufio.Scanner
	out     io.Writer
	rng     *rand.Rand
	session *game.Session
	colours bool
}

// New constructs a Loop around the given streams, randomness source, and
// session. colours toggles terminal coloring of feedback lines.
func New(in io.Reader, out io.Writer, rng *rand.Rand, session *game.Session, colours bool) *Loop {
	return &Loop{
		in:      bufio.NewScanner(in),
		out:     out,
		rng:     rng,
		session: session,
		colours: colours,
	}
}

// Run plays the session to completion.
// Returns nil after the victory summary, or the first fatal input error.
func (l *Loop) Run() error {
	fmt.Fprintln(l.out, "Welcome to the guessing game of epic proportions!")
	fmt.Fprintln(l.out, "Alrighty, what number are you tossing into the ring today?")

	for {
		// Both pools get a fresh draw every turn; the draw for the branch
		// not taken is discarded, never reused.
		smallLine := messages.Pick(messages.TooSmall(), l.rng)
		largeLine := messages.Pick(messages.TooLarge(), l.rng)

		raw, err := l.readLine()
		if err != nil {
			return err
		}

		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("guess must be a number: %q", strings.TrimSpace(raw))
		}

		guess, err := game.NewGuess(n)
		if err != nil {
			return err
		}

		outcome := l.session.Play(guess)
		log.Debug().
			Int("attempt", l.session.Attempts()).
			Int("guess", guess.Value()).
			Str("state", l.session.State()).
			Msg("guess applied")

		switch outcome {
		case game.OutcomeTooSmall:
			l.say(smallLine, color.FgYellow)
		case game.OutcomeTooLarge:
			l.say(largeLine, color.FgRed)
		case game.OutcomeWin:
			l.say("Cue the confetti!!", color.FgGreen)
			l.say(fmt.Sprintf("The secret number is indeed %d! You guessed it right with only %d tries!",
				l.session.Secret(), l.session.Attempts()), color.FgGreen)
			return nil
		}
	}
}

// readLine blocks for the next input line.
func (l *Loop) readLine() (string, error) {
	if !l.in.Scan() {
		if err := l.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read guess: %w", err)
		}
		return "", errors.New("failed to read guess: input closed")
	}
	return l.in.Text(), nil
}

// say writes one output line, colorized when colours are enabled.
func (l *Loop) say(line string, c color.Color) {
	if l.colours {
		line = c.Render(line)
	}
	fmt.Fprintln(l.out, line)
}
