package chess

// Board is an 8x8 grid of optional pieces indexed [file][rank]. It is a plain
// value: assigning a Board copies it, which is how callers take snapshots.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// backRank is the back rank order, file 0 to 7, used by SetupInitialPosition.
var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, King, Queen, Bishop, Knight, Rook}

// SetupInitialPosition clears the board and sets up the starting position:
// Black on ranks 0 and 1, White on ranks 6 and 7.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for file := 0; file < BoardSize; file++ {
		b.Squares[file][0] = B(backRank[file])
		b.Squares[file][1] = B(Pawn)
		b.Squares[file][6] = W(Pawn)
		b.Squares[file][7] = W(backRank[file])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// Get returns the piece on sq. Off-board squares read as empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.OnBoard() {
		return NoPiece
	}
	return b.Squares[sq.File][sq.Rank]
}

// Set places a piece on sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.OnBoard() {
		b.Squares[sq.File][sq.Rank] = p
	}
}

// Remove empties sq and returns whatever was on it.
func (b *Board) Remove(sq Square) Piece {
	p := b.Get(sq)
	b.Set(sq, NoPiece)
	return p
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Occupied returns the squares holding a piece of the given colour, in
// file-major order.
func (b *Board) Occupied(colour Colour) []Square {
	var squares []Square
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			p := b.Squares[file][rank]
			if !p.IsEmpty() && p.Colour == colour {
				squares = append(squares, Square{File: file, Rank: rank})
			}
		}
	}
	return squares
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if !b.Squares[file][rank].IsEmpty() {
				n++
			}
		}
	}
	return n
}
