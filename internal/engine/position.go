package engine

import (
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
)

var kindFromNotnil = map[nchess.PieceType]chess.PieceKind{
	nchess.Pawn:   chess.Pawn,
	nchess.Knight: chess.Knight,
	nchess.Bishop: chess.Bishop,
	nchess.Rook:   chess.Rook,
	nchess.Queen:  chess.Queen,
	nchess.King:   chess.King,
}

// BoardFromPosition copies the pieces of a notnil/chess position onto a new
// board. notnil ranks count up from White's side, ours down from Black's.
func BoardFromPosition(pos *nchess.Position) *chess.Board {
	board := chess.NewBoard()
	if pos == nil {
		return board
	}
	for sq, p := range pos.Board().SquareMap() {
		kind, ok := kindFromNotnil[p.Type()]
		if !ok {
			continue
		}
		colour := chess.White
		if p.Color() == nchess.Black {
			colour = chess.Black
		}
		board.Set(squareFromNotnil(sq), chess.Piece{Kind: kind, Colour: colour})
	}
	return board
}

// BoardFromNotnilFEN parses a full six-field FEN with notnil/chess and
// converts the resulting position.
func BoardFromNotnilFEN(fen string) (*chess.Board, error) {
	opt, err := nchess.FEN(fen)
	if err != nil {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Got: err.Error()}
	}
	return BoardFromPosition(nchess.NewGame(opt).Position()), nil
}

func squareFromNotnil(sq nchess.Square) chess.Square {
	return chess.Sq(int(sq.File()), chess.BoardSize-1-int(sq.Rank()))
}

// LoadFEN accepts either a bare placement field or a full FEN record. Full
// records are validated by notnil/chess; bare placements by NewBoardFromFEN.
func LoadFEN(fen string) (*chess.Board, error) {
	if len(strings.Fields(fen)) > 1 {
		return BoardFromNotnilFEN(fen)
	}
	return NewBoardFromFEN(fen)
}
