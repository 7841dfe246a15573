package chess

import (
	"fmt"

	"github.com/lgbarn/movegen-go/internal/errors"
)

// Square is a (file, rank) coordinate. File 0 is the a-file; rank 0 is the
// top row of the board, Black's back rank. Values outside 0-7 are only
// ever produced as intermediate candidates during move generation.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{file, rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// OnBoard reports whether the square lies within the 8x8 board.
func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square shifted by (df, dr). The result may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns the algebraic name of the square ("e2" for (4,6)), or the
// raw coordinate pair when the square is off the board.
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte('a' + s.File), byte('0' + BoardSize - s.Rank)})
}

// ParseSquare converts an algebraic square name such as "e2" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	col, row := name[0], name[1]
	if col >= 'A' && col <= 'H' {
		col += 'a' - 'A'
	}
	if col < 'a' || col > 'h' || row < '1' || row > '8' {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return Square{File: int(col - 'a'), Rank: BoardSize - int(row-'0')}, nil
}

// MustParseSquare is like ParseSquare but panics on bad input. Intended for
// tables and tests with literal square names.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}
