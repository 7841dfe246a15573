// Package engine generates pseudo-legal moves over a chess.Board and provides
// the board notation helpers built around it.
package engine

import (
	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// offset is a (file, rank) delta.
type offset [2]int

// Knight hops.
var knightHops = [8]offset{
	{-1, -2}, {1, -2},
	{-2, -1}, {2, -1},
	{-2, 1}, {2, 1},
	{-1, 2}, {1, 2},
}

// Diagonal directions.
var bishopDirs = [4]offset{
	{-1, -1}, {1, -1},
	{-1, 1}, {1, 1},
}

// Orthogonal directions.
var rookDirs = [4]offset{
	{0, -1},
	{-1, 0}, {1, 0},
	{0, 1},
}

// All eight directions, shared by the queen (sliding) and the king (one step).
var queenDirs = [8]offset{
	bishopDirs[0], rookDirs[0], bishopDirs[1],
	rookDirs[1], rookDirs[2],
	bishopDirs[2], rookDirs[3], bishopDirs[3],
}

// GenerateMoves returns every square the piece on from can reach by its
// movement pattern, ignoring whether the move would leave its own king in
// check. The order is direction-table order then distance and carries no
// meaning. The board is only read.
func GenerateMoves(board *chess.Board, from chess.Square) ([]chess.Square, error) {
	if !from.OnBoard() {
		return nil, &errors.SquareError{Err: errors.ErrInvalidSquare, Square: from.String(), Op: "generate"}
	}
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil, &errors.SquareError{Err: errors.ErrEmptySquare, Square: from.String(), Op: "generate"}
	}
	return pieceMoves(board, from, piece), nil
}

// pieceMoves dispatches on kind. from must be on the board and hold piece.
func pieceMoves(board *chess.Board, from chess.Square, piece chess.Piece) []chess.Square {
	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(board, from, piece.Colour)
	case chess.Knight:
		return stepMoves(board, from, piece.Colour, knightHops[:])
	case chess.Bishop:
		return slidingMoves(board, from, piece.Colour, bishopDirs[:])
	case chess.Rook:
		return slidingMoves(board, from, piece.Colour, rookDirs[:])
	case chess.Queen:
		return slidingMoves(board, from, piece.Colour, queenDirs[:])
	case chess.King:
		return stepMoves(board, from, piece.Colour, queenDirs[:])
	}
	return nil
}

// canLand reports whether a piece of colour may finish its move on sq:
// the square is on the board and empty or held by the other side.
func canLand(board *chess.Board, sq chess.Square, colour chess.Colour) bool {
	if !sq.OnBoard() {
		return false
	}
	target := board.Get(sq)
	return target.IsEmpty() || target.Colour != colour
}

// isEnemy reports whether sq is on the board and held by the other side.
func isEnemy(board *chess.Board, sq chess.Square, colour chess.Colour) bool {
	if !sq.OnBoard() {
		return false
	}
	target := board.Get(sq)
	return !target.IsEmpty() && target.Colour != colour
}

// pawnMoves handles the single step, the double step from the home rank and
// the two diagonal captures. Forward steps may land on an enemy piece.
func pawnMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var moves []chess.Square
	dir := colour.Forward()

	if to := from.Offset(0, dir); canLand(board, to, colour) {
		moves = append(moves, to)
	}
	if from.Rank == colour.HomeRank() {
		if to := from.Offset(0, 2*dir); canLand(board, to, colour) {
			moves = append(moves, to)
		}
	}
	for _, df := range [2]int{-1, 1} {
		if to := from.Offset(df, dir); isEnemy(board, to, colour) {
			moves = append(moves, to)
		}
	}
	return moves
}

// stepMoves visits each offset once: knight hops and king steps.
func stepMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets []offset) []chess.Square {
	moves := make([]chess.Square, 0, len(offsets))
	for _, o := range offsets {
		if to := from.Offset(o[0], o[1]); canLand(board, to, colour) {
			moves = append(moves, to)
		}
	}
	return moves
}

// slidingMoves walks each direction until the edge or the first occupied
// square, which is included only when it holds an enemy piece.
func slidingMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs []offset) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.OnBoard() {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// GenerateAll returns the pseudo-legal moves of every piece of the given
// colour, keyed by source square. Pieces with no moves are included with an
// empty slice.
func GenerateAll(board *chess.Board, colour chess.Colour) map[chess.Square][]chess.Square {
	all := make(map[chess.Square][]chess.Square)
	for _, sq := range board.Occupied(colour) {
		moves := pieceMoves(board, sq, board.Get(sq))
		if moves == nil {
			moves = []chess.Square{}
		}
		all[sq] = moves
	}
	return all
}

// CanReach reports whether the piece on from can move to to.
func CanReach(board *chess.Board, from, to chess.Square) (bool, error) {
	moves, err := GenerateMoves(board, from)
	if err != nil {
		return false, err
	}
	for _, m := range moves {
		if m == to {
			return true, nil
		}
	}
	return false, nil
}
