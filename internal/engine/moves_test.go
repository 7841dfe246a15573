package engine

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/testutil"
)

func sqs(pairs ...[2]int) []chess.Square {
	out := make([]chess.Square, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, chess.Sq(p[0], p[1]))
	}
	return out
}

func mustMoves(t *testing.T, board *chess.Board, from chess.Square) []chess.Square {
	t.Helper()
	moves, err := GenerateMoves(board, from)
	if err != nil {
		t.Fatalf("GenerateMoves(%v) error: %v", from, err)
	}
	return moves
}

func TestGenerateMoves_KnightInterior(t *testing.T) {
	t.Parallel()
	board := testutil.Lone(4, 4, chess.W(chess.Knight))

	got := mustMoves(t, board, chess.Sq(4, 4))

	want := sqs([2]int{2, 3}, [2]int{2, 5}, [2]int{3, 2}, [2]int{3, 6},
		[2]int{5, 2}, [2]int{5, 6}, [2]int{6, 3}, [2]int{6, 5})
	testutil.AssertSquares(t, got, want)
	if len(got) != 8 {
		t.Errorf("len = %d, want 8", len(got))
	}
}

func TestGenerateMoves_KingInterior(t *testing.T) {
	t.Parallel()
	board := testutil.Lone(4, 4, chess.B(chess.King))

	got := mustMoves(t, board, chess.Sq(4, 4))

	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
	for _, sq := range got {
		df, dr := sq.File-4, sq.Rank-4
		if df < -1 || df > 1 || dr < -1 || dr > 1 || (df == 0 && dr == 0) {
			t.Errorf("%v is not adjacent to (4,4)", sq)
		}
	}
}

func TestGenerateMoves_KingCorner(t *testing.T) {
	t.Parallel()
	board := testutil.Lone(7, 7, chess.W(chess.King))
	board.Set(chess.Sq(6, 7), chess.W(chess.Rook))
	board.Set(chess.Sq(7, 6), chess.B(chess.Pawn))

	got := mustMoves(t, board, chess.Sq(7, 7))

	testutil.AssertSquares(t, got, sqs([2]int{6, 6}, [2]int{7, 6}))
}

func TestGenerateMoves_Pawn(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]chess.Piece
		from   string
		want   []string
	}{
		{
			name:   "white home rank double step",
			pieces: map[string]chess.Piece{"c2": chess.W(chess.Pawn)},
			from:   "c2",
			want:   []string{"c3", "c4"},
		},
		{
			name:   "white off home rank single step",
			pieces: map[string]chess.Piece{"c3": chess.W(chess.Pawn)},
			from:   "c3",
			want:   []string{"c4"},
		},
		{
			name:   "black home rank double step",
			pieces: map[string]chess.Piece{"d7": chess.B(chess.Pawn)},
			from:   "d7",
			want:   []string{"d6", "d5"},
		},
		{
			name:   "black off home rank",
			pieces: map[string]chess.Piece{"d6": chess.B(chess.Pawn)},
			from:   "d6",
			want:   []string{"d5"},
		},
		{
			name: "diagonal captures only on enemy pieces",
			pieces: map[string]chess.Piece{
				"e2": chess.W(chess.Pawn),
				"d3": chess.B(chess.Knight),
				"f3": chess.W(chess.Bishop),
			},
			from: "e2",
			want: []string{"e3", "e4", "d3"},
		},
		{
			name: "forward step onto enemy piece is allowed",
			pieces: map[string]chess.Piece{
				"e2": chess.W(chess.Pawn),
				"e3": chess.B(chess.Rook),
			},
			from: "e2",
			want: []string{"e3", "e4"},
		},
		{
			name: "own piece blocks single step but not the double step target",
			pieces: map[string]chess.Piece{
				"e2": chess.W(chess.Pawn),
				"e3": chess.W(chess.Rook),
			},
			from: "e2",
			want: []string{"e4"},
		},
		{
			name: "own piece on double step target",
			pieces: map[string]chess.Piece{
				"e7": chess.B(chess.Pawn),
				"e5": chess.B(chess.Queen),
			},
			from: "e7",
			want: []string{"e6"},
		},
		{
			name: "a-file pawn does not wrap to the h-file",
			pieces: map[string]chess.Piece{
				"a2": chess.W(chess.Pawn),
				"b3": chess.B(chess.Pawn),
				"h3": chess.B(chess.Pawn),
				"h4": chess.B(chess.Pawn),
			},
			from: "a2",
			want: []string{"a3", "a4", "b3"},
		},
		{
			name: "h-file black pawn does not wrap",
			pieces: map[string]chess.Piece{
				"h7": chess.B(chess.Pawn),
				"g6": chess.W(chess.Pawn),
				"a6": chess.W(chess.Pawn),
			},
			from: "h7",
			want: []string{"h6", "h5", "g6"},
		},
		{
			name:   "white pawn on last rank has no moves",
			pieces: map[string]chess.Piece{"c8": chess.W(chess.Pawn)},
			from:   "c8",
			want:   nil,
		},
		{
			name:   "black pawn on last rank has no moves",
			pieces: map[string]chess.Piece{"f1": chess.B(chess.Pawn)},
			from:   "f1",
			want:   nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := testutil.BoardWith(t, tt.pieces)
			got := mustMoves(t, board, chess.MustParseSquare(tt.from))
			testutil.AssertSquares(t, got, testutil.Squares(t, tt.want...))
		})
	}
}

func TestGenerateMoves_RookCorner(t *testing.T) {
	t.Parallel()
	board := testutil.Lone(0, 0, chess.W(chess.Rook))

	got := mustMoves(t, board, chess.Sq(0, 0))

	if len(got) != 14 {
		t.Fatalf("len = %d, want 14", len(got))
	}
	for _, sq := range got {
		if sq.File < 0 || sq.Rank < 0 {
			t.Errorf("negative coordinate %v", sq)
		}
		if sq.File != 0 && sq.Rank != 0 {
			t.Errorf("%v is not on the rook's file or rank", sq)
		}
	}
}

func TestGenerateMoves_SlidingCounts(t *testing.T) {
	tests := []struct {
		kind chess.PieceKind
		file int
		rank int
		want int
	}{
		{chess.Bishop, 4, 4, 13},
		{chess.Bishop, 0, 0, 7},
		{chess.Rook, 4, 4, 14},
		{chess.Queen, 4, 4, 27},
		{chess.Queen, 0, 7, 21},
		{chess.Knight, 0, 0, 2},
		{chess.Knight, 1, 1, 4},
		{chess.King, 0, 3, 5},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			board := testutil.Lone(tt.file, tt.rank, chess.B(tt.kind))
			got := mustMoves(t, board, chess.Sq(tt.file, tt.rank))
			if len(got) != tt.want {
				t.Errorf("%v at (%d,%d): %d moves, want %d", tt.kind, tt.file, tt.rank, len(got), tt.want)
			}
		})
	}
}

func TestGenerateMoves_RookBlocked(t *testing.T) {
	t.Parallel()
	board := testutil.Lone(0, 0, chess.W(chess.Rook))
	board.Set(chess.Sq(0, 3), chess.W(chess.Knight))
	board.Set(chess.Sq(3, 0), chess.B(chess.Bishop))

	got := mustMoves(t, board, chess.Sq(0, 0))

	want := sqs([2]int{0, 1}, [2]int{0, 2}, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0})
	testutil.AssertSquares(t, got, want)
}

func TestGenerateMoves_InitialPosition(t *testing.T) {
	board := NewInitialBoard()

	tests := []struct {
		from string
		want []string
	}{
		{"b8", []string{"a6", "c6"}},
		{"g1", []string{"f3", "h3"}},
		{"e2", []string{"e3", "e4"}},
		{"d7", []string{"d6", "d5"}},
		{"c1", nil},
		{"a8", nil},
		{"d1", nil},
		{"e8", nil},
	}
	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			got := mustMoves(t, board, chess.MustParseSquare(tt.from))
			testutil.AssertSquares(t, got, testutil.Squares(t, tt.want...))
		})
	}
}

func TestGenerateMoves_CrowdedCentre(t *testing.T) {
	board := MustBoardFromFEN("rnbkqbnr/pppppppp/4q3/3b4/2PNR3/8/PPPPPPPP/RNBKQBNR")

	tests := []struct {
		name string
		from chess.Square
		want []chess.Square
	}{
		{"white rook", chess.Sq(4, 4), sqs([2]int{4, 3}, [2]int{4, 2}, [2]int{5, 4}, [2]int{6, 4}, [2]int{7, 4}, [2]int{4, 5})},
		{"black bishop", chess.Sq(3, 3), sqs([2]int{2, 2}, [2]int{2, 4}, [2]int{4, 4})},
		{"white pawn home", chess.Sq(1, 6), sqs([2]int{1, 5}, [2]int{1, 4})},
		{"white pawn advanced", chess.Sq(2, 4), sqs([2]int{2, 3}, [2]int{3, 3})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertSquares(t, mustMoves(t, board, tt.from), tt.want)
		})
	}
}

func TestGenerateMoves_GenerationOrder(t *testing.T) {
	board := testutil.Lone(4, 4, chess.W(chess.Queen))
	board.Set(chess.Sq(4, 2), chess.W(chess.Pawn))
	board.Set(chess.Sq(6, 2), chess.W(chess.Pawn))
	board.Set(chess.Sq(2, 2), chess.W(chess.Pawn))
	board.Set(chess.Sq(2, 4), chess.W(chess.Pawn))
	board.Set(chess.Sq(6, 4), chess.W(chess.Pawn))
	board.Set(chess.Sq(2, 6), chess.W(chess.Pawn))
	board.Set(chess.Sq(4, 6), chess.W(chess.Pawn))
	board.Set(chess.Sq(6, 6), chess.W(chess.Pawn))

	got := mustMoves(t, board, chess.Sq(4, 4))

	want := sqs([2]int{3, 3}, [2]int{4, 3}, [2]int{5, 3}, [2]int{3, 4},
		[2]int{5, 4}, [2]int{3, 5}, [2]int{4, 5}, [2]int{5, 5})
	testutil.AssertEqual(t, got, want)
}

func TestGenerateMoves_EmptySquare(t *testing.T) {
	board := NewInitialBoard()

	moves, err := GenerateMoves(board, chess.Sq(3, 3))

	testutil.AssertErrorIs(t, err, errors.ErrEmptySquare)
	if moves != nil {
		t.Errorf("moves = %v, want nil", moves)
	}
	var sqErr *errors.SquareError
	if !errors.As(err, &sqErr) {
		t.Fatalf("error %v is not a *SquareError", err)
	}
	testutil.AssertEqual(t, sqErr.Square, "d5")
}

func TestGenerateMoves_OffBoardSource(t *testing.T) {
	for _, sq := range []chess.Square{chess.Sq(8, 0), chess.Sq(0, -1), chess.Sq(-3, 9)} {
		_, err := GenerateMoves(chess.NewBoard(), sq)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidSquare, "source %v", sq)
	}
}

func TestGenerateMoves_DoesNotModifyBoard(t *testing.T) {
	board := MustBoardFromFEN("rnbkqbnr/pppppppp/4q3/3b4/2PNR3/8/PPPPPPPP/RNBKQBNR")
	before := *board

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		GenerateAll(board, colour)
	}

	if *board != before {
		t.Error("board changed during generation")
	}
}

// randomBoard scatters n pieces of random kind and colour.
func randomBoard(rng *rand.Rand, n int) *chess.Board {
	board := chess.NewBoard()
	kinds := []chess.PieceKind{chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King}
	for i := 0; i < n; i++ {
		board.Set(chess.Sq(rng.Intn(8), rng.Intn(8)), chess.Piece{
			Kind:   kinds[rng.Intn(len(kinds))],
			Colour: chess.Colour(rng.Intn(2)),
		})
	}
	return board
}

func TestGenerateMoves_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(20261019))

	for i := 0; i < 200; i++ {
		board := randomBoard(rng, 4+rng.Intn(24))
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			for _, from := range board.Occupied(colour) {
				piece := board.Get(from)
				first := mustMoves(t, board, from)
				second := mustMoves(t, board, from)
				testutil.AssertEqual(t, second, first, "determinism for %v at %v", piece, from)

				seen := make(map[chess.Square]bool)
				for _, to := range first {
					if !to.OnBoard() {
						t.Fatalf("%v at %v: off-board destination %v", piece, from, to)
					}
					if seen[to] {
						t.Fatalf("%v at %v: duplicate destination %v", piece, from, to)
					}
					seen[to] = true
					if target := board.Get(to); !target.IsEmpty() && target.Colour == colour {
						t.Fatalf("%v at %v: self-capture on %v", piece, from, to)
					}
				}

				if piece.Kind == chess.Bishop || piece.Kind == chess.Rook || piece.Kind == chess.Queen {
					checkRayBlocking(t, board, from, seen)
				}
			}
		}
	}
}

// checkRayBlocking asserts that nothing beyond the first occupied square of
// any ray from from was generated.
func checkRayBlocking(t *testing.T, board *chess.Board, from chess.Square, got map[chess.Square]bool) {
	t.Helper()
	for _, dir := range queenDirs {
		blocked := false
		for sq := from.Offset(dir[0], dir[1]); sq.OnBoard(); sq = sq.Offset(dir[0], dir[1]) {
			if blocked && got[sq] {
				t.Fatalf("%v at %v: %v generated past a blocker", board.Get(from), from, sq)
			}
			if !board.IsEmpty(sq) {
				blocked = true
			}
		}
	}
}

func TestGenerateAll(t *testing.T) {
	board := NewInitialBoard()

	white := GenerateAll(board, chess.White)

	if len(white) != 16 {
		t.Fatalf("len(GenerateAll(White)) = %d, want 16", len(white))
	}
	total := 0
	for _, moves := range white {
		total += len(moves)
	}
	// 8 pawns x 2 + 2 knights x 2
	if total != 20 {
		t.Errorf("total white moves = %d, want 20", total)
	}
	if moves := white[chess.Sq(0, 7)]; moves == nil || len(moves) != 0 {
		t.Errorf("rook a1 moves = %#v, want empty non-nil slice", moves)
	}
}

func TestCanReach(t *testing.T) {
	board := NewInitialBoard()

	ok, err := CanReach(board, chess.Sq(6, 7), chess.Sq(5, 5))
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, ok, "knight g1 reaches f3")

	ok, _ = CanReach(board, chess.Sq(6, 7), chess.Sq(6, 5))
	testutil.AssertTrue(t, !ok, "knight g1 does not reach g3")

	_, err = CanReach(board, chess.Sq(4, 4), chess.Sq(4, 3))
	testutil.AssertErrorIs(t, err, errors.ErrEmptySquare)
}

func TestDirectionTables(t *testing.T) {
	seen := make(map[offset]bool)
	for _, d := range bishopDirs {
		seen[d] = true
	}
	for _, d := range rookDirs {
		seen[d] = true
	}
	for _, d := range queenDirs {
		if !seen[d] {
			t.Errorf("queen direction %v is not a bishop or rook direction", d)
		}
		delete(seen, d)
	}
	if len(seen) != 0 {
		t.Errorf("directions missing from queenDirs: %v", seen)
	}
}

func TestGenerateAll_MatchesGenerateMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		board := randomBoard(rng, 12)
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			all := GenerateAll(board, colour)
			occupied := board.Occupied(colour)
			if len(all) != len(occupied) {
				t.Fatalf("board %s: %d entries for %d %v pieces", BoardToFEN(board), len(all), len(occupied), colour)
			}
			for _, from := range occupied {
				want, err := GenerateMoves(board, from)
				testutil.AssertNoError(t, err)
				testutil.AssertSquares(t, all[from], want, "board %s from %v", BoardToFEN(board), from)
			}
		}
	}
}
