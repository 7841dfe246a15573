package engine

import (
	"testing"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.Sq(3, 7)) == chess.W(chess.King) &&
					b.Get(chess.Sq(3, 0)) == chess.B(chess.King) &&
					b.Get(chess.Sq(4, 6)) == chess.W(chess.Pawn) &&
					b.Get(chess.Sq(4, 1)) == chess.B(chess.Pawn) &&
					b.Count() == 32
			},
		},
		{
			name: "trailing fields are ignored",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.Sq(4, 4)) == chess.W(chess.Pawn) &&
					b.IsEmpty(chess.Sq(4, 6))
			},
		},
		{
			name: "empty board",
			fen:  "8/8/8/8/8/8/8/8",
			checkFn: func(b *chess.Board) bool {
				return b.Count() == 0
			},
		},
		{
			name: "corners",
			fen:  "r6k/8/8/8/8/8/8/K6R",
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.Sq(0, 0)) == chess.B(chess.Rook) &&
					b.Get(chess.Sq(7, 0)) == chess.B(chess.King) &&
					b.Get(chess.Sq(0, 7)) == chess.W(chess.King) &&
					b.Get(chess.Sq(7, 7)) == chess.W(chess.Rook)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}
			if !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN(%q): board check failed:\n%s", tt.fen, BoardToFEN(board))
			}
		})
	}
}

func TestNewBoardFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"too few rows", "8/8/8"},
		{"too many rows", "8/8/8/8/8/8/8/8/8"},
		{"trailing slash", "8/8/8/8/8/8/8/8/"},
		{"short row", "7/8/8/8/8/8/8/8"},
		{"long row by digits", "44444/8/8/8/8/8/8/8"},
		{"long row by pieces", "ppppppppp/8/8/8/8/8/8/8"},
		{"bad piece letter", "rnbxkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"},
		{"digit nine", "9/8/8/8/8/8/8/8"},
		{"zero", "08/8/8/8/8/8/8/8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN, "NewBoardFromFEN(%q)", tt.fen)
			if board != nil {
				t.Errorf("NewBoardFromFEN(%q) returned a board with an error", tt.fen)
			}
		})
	}
}

func TestNewBoardFromFEN_ParseErrorColumn(t *testing.T) {
	_, err := NewBoardFromFEN("rnbxkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")

	var parseErr *errors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	testutil.AssertEqual(t, parseErr.Column, 4)
}

func TestBoardToFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"8/8/8/8/8/8/8/8",
		"rnbkqbnr/pppppppp/4q3/3b4/2PNR3/8/PPPPPPPP/RNBKQBNR",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			got := BoardToFEN(MustBoardFromFEN(fen))
			testutil.AssertEqual(t, got, fen)
		})
	}
}

func TestNewInitialBoard_MatchesInitialFEN(t *testing.T) {
	testutil.AssertEqual(t, BoardToFEN(NewInitialBoard()), InitialFEN)
}

func TestPieceToFENChar(t *testing.T) {
	testutil.AssertEqual(t, PieceToFENChar(chess.W(chess.Knight)), byte('N'))
	testutil.AssertEqual(t, PieceToFENChar(chess.B(chess.Queen)), byte('q'))
	testutil.AssertEqual(t, ConvertFENCharToPiece('x'), chess.Empty)
}

func TestMustBoardFromFEN_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustBoardFromFEN did not panic on a bad FEN")
		}
	}()
	MustBoardFromFEN("not a fen")
}
