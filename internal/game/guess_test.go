package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGuess_AcceptsWholeRange(t *testing.T) {
	req := require.New(t)
	for v := GuessMin; v <= GuessMax; v++ {
		g, err := NewGuess(v)
		req.NoError(err)
		req.Equal(v, g.Value())
	}
}

func TestNewGuess_RejectsOutOfRange(t *testing.T) {
	req := require.New(t)
	for _, v := range []int{0, -5, 101, 150} {
		_, err := NewGuess(v)
		req.Error(err)
		req.Contains(err.Error(), "between 1 and 100")
	}
}
