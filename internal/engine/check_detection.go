package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked. A side
// without a king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := FindKing(board, colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// FindKing finds the king of the given colour on the board.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.Piece{Kind: chess.King, Colour: colour}
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			if board.Squares[file][rank] == king {
				return chess.Sq(file, rank), true
			}
		}
	}
	return chess.Square{}, false
}

// IsSquareAttacked returns true if a piece of byColour could capture on sq.
// Pawns attack diagonally only, even though their forward moves may land
// on an enemy piece.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for _, from := range board.Occupied(byColour) {
		if attacksFrom(board, from, sq, byColour) {
			return true
		}
	}
	return false
}

// Attackers returns the squares of byColour pieces attacking sq.
func Attackers(board *chess.Board, sq chess.Square, byColour chess.Colour) []chess.Square {
	var attackers []chess.Square
	for _, from := range board.Occupied(byColour) {
		if attacksFrom(board, from, sq, byColour) {
			attackers = append(attackers, from)
		}
	}
	return attackers
}

// attacksFrom reports whether the piece on from attacks sq.
func attacksFrom(board *chess.Board, from, sq chess.Square, byColour chess.Colour) bool {
	if board.Get(from).Kind == chess.Pawn {
		dir := byColour.Forward()
		return from.Offset(-1, dir) == sq || from.Offset(1, dir) == sq
	}
	reach, _ := CanReach(board, from, sq)
	return reach
}
