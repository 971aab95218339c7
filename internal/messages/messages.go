// internal/messages/messages.go
//
// Flavor-text pools for guess feedback.
//
// Responsibilities:
//   - Load the "too small" and "too large" pools from environment-provided
//     files or fall back to embedded defaults.
//   - Supply Pick for uniform random selection out of a pool.
//
// Initialization behavior (Init):
//   1. If MESSAGES_SMALL_FILE is set, load the too-small pool from that file.
//   2. If MESSAGES_LARGE_FILE is set, load the too-large pool from that file.
//   3. Anything not overridden falls back to the embedded defaults
//      (default_small_pool.txt / default_large_pool.txt).
//
// Environment variables:
//   MESSAGES_SMALL_FILE=/path/to/small.txt
//   MESSAGES_LARGE_FILE=/path/to/large.txt
//
// Constraints:
//   • One message per line; lines are trimmed, blanks dropped.
//   • Initialization is run once (sync.Once).

package messages

import (
	"bufio"
	_ "embed"
	"errors"
	"math/rand"
	"os"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// --- embedded defaults (ensures the game runs even if no files configured) ---

//go:embed default_small_pool.txt
var embeddedSmall string

//go:embed default_large_pool.txt
var embeddedLarge string

var (
	initOnce   sync.Once
	tooSmall   []string // feedback for guesses below the secret
	tooLarge   []string // feedback for guesses above the secret
	initialErr error
)

// Init loads both pools exactly once.
// Returns an error if a configured file cannot be read or a pool ends up empty.
func Init() error {
	initOnce.Do(func() {
		small := normalizeLines(embeddedSmall)
		large := normalizeLines(embeddedLarge)

		if path := os.Getenv("MESSAGES_SMALL_FILE"); path != "" {
			var err error
			small, err = readPoolFile(path)
			if err != nil {
				initialErr = err
				return
			}
		}
		if path := os.Getenv("MESSAGES_LARGE_FILE"); path != "" {
			var err error
			large, err = readPoolFile(path)
			if err != nil {
				initialErr = err
				return
			}
		}

		tooSmall = small
		tooLarge = large

		if len(tooSmall) == 0 || len(tooLarge) == 0 {
			initialErr = errors.New("messages: a feedback pool is empty")
		}
	})
	return initialErr
}

// TooSmall returns the pool for guesses below the secret.
func TooSmall() []string { return tooSmall }

// TooLarge returns the pool for guesses above the secret.
func TooLarge() []string { return tooLarge }

// Pick returns one uniformly chosen message from pool using the given
// randomness source. An empty pool yields "".
func Pick(pool []string, rng *rand.Rand) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[rng.Intn(len(pool))]
}

// readPoolFile loads one message per line from a file,
// trimming whitespace and skipping blank lines.
func readPoolFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string
// into a slice of trimmed, non-empty message lines.
func normalizeLines(s string) []string {
	return lo.FilterMap(strings.Split(s, "\n"), func(line string, _ int) (string, bool) {
		w := strings.TrimSpace(line)
		return w, w != ""
	})
}
