package messages

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit_EmbeddedDefaults(t *testing.T) {
	req := require.New(t)
	req.NoError(Init())
	req.Len(TooSmall(), 10)
	req.Len(TooLarge(), 10)

	// Init is idempotent
	req.NoError(Init())
	req.Len(TooSmall(), 10)
}

func TestPick_StaysWithinPool(t *testing.T) {
	req := require.New(t)
	pool := []string{"a", "b", "c"}
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		req.Contains(pool, Pick(pool, rng))
	}
}

func TestPick_EmptyPool(t *testing.T) {
	require.Equal(t, "", Pick(nil, rand.New(rand.NewSource(1))))
}

func TestReadPoolFile_TrimsAndDropsBlanks(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "pool.txt")
	req.NoError(os.WriteFile(path, []byte("  one  \n\ntwo\n   \nthree\n"), 0o600))

	lines, err := readPoolFile(path)
	req.NoError(err)
	req.Equal([]string{"one", "two", "three"}, lines)
}

func TestReadPoolFile_MissingFile(t *testing.T) {
	_, err := readPoolFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestNormalizeLines(t *testing.T) {
	require.Equal(t, []string{"x", "y"}, normalizeLines(" x \n\n y \n"))
}
