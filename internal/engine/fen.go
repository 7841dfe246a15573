package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// InitialFEN is the piece placement produced by chess.Board.SetupInitialPosition.
// The kings stand on the d-file and the queens on the e-file.
const InitialFEN = "rnbkqbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBKQBNR"

// ConvertFENCharToPiece converts a FEN character to a piece kind.
func ConvertFENCharToPiece(c byte) chess.PieceKind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// PieceToFENChar returns the FEN letter for a piece: uppercase for White.
func PieceToFENChar(p chess.Piece) byte {
	letter := p.Kind.Letter()
	if p.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from the piece placement field of a FEN
// string. Any further fields (side to move, castling, ...) are ignored: the
// board carries no such state. The first FEN row is rank 0.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Got: "empty string"}
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := 0
	file := 0

	for i, c := range positions {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: positions, Column: i + 1,
					Expected: "8 squares per row", Got: fmt.Sprintf("%d", file)}
			}
			rank++
			file = 0
			if rank >= chess.BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: positions, Column: i + 1,
					Got: "more than 8 rows"}
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: positions, Column: i + 1,
					Got: "row longer than 8 squares"}
			}
		default:
			kind := ConvertFENCharToPiece(byte(c))
			if kind == chess.Empty || c > unicode.MaxASCII {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: positions, Column: i + 1,
					Expected: "piece letter or digit", Got: fmt.Sprintf("%q", c)}
			}
			if file >= chess.BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: positions, Column: i + 1,
					Got: "row longer than 8 squares"}
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.Set(chess.Sq(file, rank), chess.Piece{Kind: kind, Colour: colour})
			file++
		}
	}

	if rank != chess.BoardSize-1 || file != chess.BoardSize {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: positions,
			Expected: "8 rows of 8 squares", Got: fmt.Sprintf("%d rows", rank+1)}
	}
	return nil
}

// BoardToFEN converts a board to the piece placement field of a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceToFENChar(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}

// NewInitialBoard creates a board with the starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on a malformed string.
func MustBoardFromFEN(fen string) *chess.Board {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}
