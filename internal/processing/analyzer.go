// Package processing builds whole-board move tables by fanning
// engine.GenerateMoves out over a worker pool.
package processing

import (
	"context"
	"sort"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/engine"
	"github.com/lgbarn/movegen-go/internal/worker"
)

// PieceMoves holds the pseudo-legal destinations of one piece.
type PieceMoves struct {
	Square chess.Square
	Piece  chess.Piece
	Moves  []chess.Square
}

// Filter selects which pieces a move table covers.
type Filter int

const (
	AllPieces Filter = iota
	WhitePieces
	BlackPieces
)

// ParseFilter maps "white", "black" or "" / "all" to a Filter.
func ParseFilter(s string) (Filter, bool) {
	switch s {
	case "", "all":
		return AllPieces, true
	case "white", "w":
		return WhitePieces, true
	case "black", "b":
		return BlackPieces, true
	}
	return AllPieces, false
}

// squares returns the occupied squares the filter selects.
func (f Filter) squares(board *chess.Board) []chess.Square {
	switch f {
	case WhitePieces:
		return board.Occupied(chess.White)
	case BlackPieces:
		return board.Occupied(chess.Black)
	}
	return append(board.Occupied(chess.White), board.Occupied(chess.Black)...)
}

// MoveTable generates moves for every selected piece using numWorkers
// goroutines. The board is snapshotted first, so the caller may reuse it as
// soon as MoveTable returns. Entries are sorted file-major by source square.
func MoveTable(board *chess.Board, filter Filter, numWorkers int) []PieceMoves {
	table, _ := MoveTableContext(context.Background(), board, filter, numWorkers)
	return table
}

// MoveTableContext is MoveTable with cancellation. When ctx is done the pool
// is stopped, queued squares are skipped and ctx.Err() is returned with a nil
// table.
//
// Concurrency model: workers share the read-only snapshot; results are
// consumed by the calling goroutine only.
func MoveTableContext(ctx context.Context, board *chess.Board, filter Filter, numWorkers int) ([]PieceMoves, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snapshot := *board
	sources := filter.squares(&snapshot)
	if len(sources) == 0 {
		return nil, nil
	}

	processFunc := func(item worker.WorkItem) worker.ProcessResult {
		moves, err := engine.GenerateMoves(&snapshot, item.Square)
		return worker.ProcessResult{
			Square: item.Square,
			Index:  item.Index,
			Piece:  snapshot.Get(item.Square),
			Moves:  moves,
			Error:  err,
		}
	}

	pool := worker.NewPool(processFunc,
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(len(sources)),
	)
	stop := context.AfterFunc(ctx, pool.Stop)
	defer stop()
	pool.Start()

	go func() {
		for i, sq := range sources {
			if !pool.Submit(worker.WorkItem{Square: sq, Index: i}) {
				break
			}
		}
		pool.Close()
	}()

	table := make([]PieceMoves, 0, len(sources))
	for result := range pool.Results() {
		// Sources are occupied on-board squares of the snapshot, so
		// GenerateMoves cannot fail here.
		if result.Error != nil {
			continue
		}
		table = append(table, PieceMoves{Square: result.Square, Piece: result.Piece, Moves: result.Moves})
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sortTable(table)
	return table, nil
}

// SequentialMoveTable is MoveTable without the pool.
func SequentialMoveTable(board *chess.Board, filter Filter) []PieceMoves {
	var table []PieceMoves
	for _, sq := range filter.squares(board) {
		// Occupied squares only, so GenerateMoves cannot fail.
		moves, err := engine.GenerateMoves(board, sq)
		if err != nil {
			continue
		}
		table = append(table, PieceMoves{Square: sq, Piece: board.Get(sq), Moves: moves})
	}
	sortTable(table)
	return table
}

// CountMoves returns the total number of destinations in a table.
func CountMoves(table []PieceMoves) int {
	n := 0
	for _, pm := range table {
		n += len(pm.Moves)
	}
	return n
}

func sortTable(table []PieceMoves) {
	sort.Slice(table, func(i, j int) bool {
		a, b := table[i].Square, table[j].Square
		if a.File != b.File {
			return a.File < b.File
		}
		return a.Rank < b.Rank
	})
}
