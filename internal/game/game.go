// Package game applies moves produced by the engine and tracks whose turn it
// is and whether the game is in progress, in check, or over.
package game

import (
	"sync"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/engine"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// Game holds a board and the bookkeeping around it. It is safe for
// concurrent use: queries share a read lock, moves take the write lock.
type Game struct {
	mu        sync.RWMutex
	board     chess.Board
	state     chess.GameState
	toMove    chess.Colour
	promotion chess.PieceKind
	ply       int
	captured  []chess.Piece
}

// New creates a game in the starting position with White to move.
func New() *Game {
	g := &Game{}
	g.reset()
	return g
}

// NewFromBoard creates a game from an arbitrary position. The state is
// derived from the position: Check if toMove is attacked.
func NewFromBoard(board *chess.Board, toMove chess.Colour) *Game {
	g := &Game{
		board:     *board,
		toMove:    toMove,
		promotion: chess.Queen,
	}
	g.state = g.evaluateState()
	return g
}

// Reset restores the starting position.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset()
}

func (g *Game) reset() {
	g.board.SetupInitialPosition()
	g.state = chess.InProgress
	g.toMove = chess.White
	g.promotion = chess.Queen
	g.ply = 0
	g.captured = nil
}

// Snapshot is a consistent copy of a game's observable state.
type Snapshot struct {
	Board    chess.Board
	State    chess.GameState
	ToMove   chess.Colour
	Ply      int
	Captured []chess.Piece
}

// Snapshot returns the board and bookkeeping read under a single lock, so no
// move can land between the fields.
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	captured := make([]chess.Piece, len(g.captured))
	copy(captured, g.captured)
	return Snapshot{
		Board:    g.board,
		State:    g.state,
		ToMove:   g.toMove,
		Ply:      g.ply,
		Captured: captured,
	}
}

// State returns the current game state.
func (g *Game) State() chess.GameState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.toMove
}

// Board returns a snapshot of the current board.
func (g *Game) Board() chess.Board {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board
}

// Ply returns the number of half-moves played.
func (g *Game) Ply() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.ply
}

// Captured returns the pieces taken so far, in capture order.
func (g *Game) Captured() []chess.Piece {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]chess.Piece, len(g.captured))
	copy(out, g.captured)
	return out
}

// Promotion returns the kind a pawn becomes on reaching the last rank.
func (g *Game) Promotion() chess.PieceKind {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.promotion
}

// PossibleMoves returns the pseudo-legal destinations of the piece on sq.
func (g *Game) PossibleMoves(sq chess.Square) ([]chess.Square, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return engine.GenerateMoves(&g.board, sq)
}

// SetPromotion sets the kind a pawn becomes when it reaches the last rank.
func (g *Game) SetPromotion(kind chess.PieceKind) error {
	switch kind {
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
	default:
		return errors.Wrapf(errors.ErrInvalidPromotion, "%v", kind)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.promotion = kind
	return nil
}

// MakeMove moves the piece on from to to and returns the resulting state.
// The move must be one the engine generates for that piece and the piece
// must belong to the side to move. Moves that leave the mover's own king
// attacked are accepted.
func (g *Game) MakeMove(from, to chess.Square) (chess.GameState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	moveErr := func(err error, piece chess.Piece) error {
		e := &errors.MoveError{Err: err, From: from.String(), To: to.String(), Ply: g.ply + 1}
		if !piece.IsEmpty() {
			e.Piece = piece.String()
		}
		return e
	}

	if g.state == chess.GameOver {
		return g.state, moveErr(errors.ErrGameOver, chess.NoPiece)
	}

	piece := g.board.Get(from)
	reachable, err := engine.CanReach(&g.board, from, to)
	if err != nil {
		return g.state, moveErr(err, piece)
	}
	if piece.Colour != g.toMove {
		return g.state, moveErr(errors.ErrWrongTurn, piece)
	}
	if !reachable {
		return g.state, moveErr(errors.ErrIllegalMove, piece)
	}

	g.apply(from, to, piece)
	g.state = g.evaluateState()
	return g.state, nil
}

// apply moves the piece, handling capture and promotion, and passes the turn.
func (g *Game) apply(from, to chess.Square, piece chess.Piece) {
	if captured := g.board.Get(to); !captured.IsEmpty() {
		g.captured = append(g.captured, captured)
	}

	g.board.Set(from, chess.NoPiece)
	if piece.Kind == chess.Pawn && to.Rank == piece.Colour.LastRank() {
		piece = chess.Piece{Kind: g.promotion, Colour: piece.Colour}
	}
	g.board.Set(to, piece)

	g.ply++
	g.toMove = g.toMove.Opposite()
}

// evaluateState derives the state after a move: the game is over once a
// king has been captured, in check if the side to move is attacked.
func (g *Game) evaluateState() chess.GameState {
	for _, p := range g.captured {
		if p.Kind == chess.King {
			return chess.GameOver
		}
	}
	if engine.IsInCheck(&g.board, g.toMove) {
		return chess.Check
	}
	return chess.InProgress
}
