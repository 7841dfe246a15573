package testutil

import (
	"testing"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// BoardWith returns a board holding exactly the given pieces, keyed by
// algebraic square name. It calls t.Fatal on a bad square name.
func BoardWith(t *testing.T, pieces map[string]chess.Piece) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	for name, piece := range pieces {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			t.Fatalf("BoardWith: %v", err)
		}
		board.Set(sq, piece)
	}
	return board
}

// Lone returns a board with a single piece at (file, rank).
func Lone(file, rank int, piece chess.Piece) *chess.Board {
	board := chess.NewBoard()
	board.Set(chess.Sq(file, rank), piece)
	return board
}
