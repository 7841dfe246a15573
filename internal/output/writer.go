package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/processing"
)

// MovesWriter is the interface for writing move query results.
// Different implementations handle different output formats (text, JSON).
type MovesWriter interface {
	// WriteMoves writes the destinations of the piece on from.
	WriteMoves(board *chess.Board, from chess.Square, moves []chess.Square) error

	// WriteTable writes a whole-board move table.
	WriteTable(board *chess.Board, table []processing.PieceMoves) error
}

// TextWriter writes a rendered board followed by move lists.
type TextWriter struct {
	w          io.Writer
	noColor    bool
	lineLength int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, noColor bool) *TextWriter {
	return &TextWriter{
		w:          w,
		noColor:    noColor,
		lineLength: 80,
	}
}

// SetLineLength sets the wrap column for move lists.
func (tw *TextWriter) SetLineLength(n int) {
	if n > 0 {
		tw.lineLength = n
	}
}

// WriteMoves renders the board with the destinations highlighted, then lists
// them.
func (tw *TextWriter) WriteMoves(board *chess.Board, from chess.Square, moves []chess.Square) error {
	if err := RenderBoard(tw.w, board, RenderOptions{NoColor: tw.noColor, Highlight: moves}); err != nil {
		return err
	}
	fmt.Fprintln(tw.w)
	WriteMoveList(tw.w, board.Get(from), from, moves, tw.lineLength)
	return nil
}

// WriteTable renders the board once, then one move list per piece and a total.
func (tw *TextWriter) WriteTable(board *chess.Board, table []processing.PieceMoves) error {
	if err := RenderBoard(tw.w, board, RenderOptions{NoColor: tw.noColor}); err != nil {
		return err
	}
	fmt.Fprintln(tw.w)
	for _, pm := range table {
		WriteMoveList(tw.w, pm.Piece, pm.Square, pm.Moves, tw.lineLength)
	}
	_, err := fmt.Fprintf(tw.w, "%d pieces, %d moves\n", len(table), processing.CountMoves(table))
	return err
}

// JSONWriter writes results as indented JSON. The board is not rendered.
type JSONWriter struct {
	w      io.Writer
	colour string
}

// NewJSONWriter creates a new JSON writer. colour labels table output.
func NewJSONWriter(w io.Writer, colour string) *JSONWriter {
	return &JSONWriter{
		w:      w,
		colour: colour,
	}
}

// WriteMoves writes a single move query.
func (jw *JSONWriter) WriteMoves(board *chess.Board, from chess.Square, moves []chess.Square) error {
	return WriteMovesJSON(jw.w, MovesToJSON(from, board.Get(from), moves))
}

// WriteTable writes a move table.
func (jw *JSONWriter) WriteTable(_ *chess.Board, table []processing.PieceMoves) error {
	return WriteTableJSON(jw.w, TableToJSON(table, jw.colour))
}

// NewMovesWriter picks a writer for the requested format.
func NewMovesWriter(w io.Writer, asJSON, noColor bool, colour string) MovesWriter {
	if asJSON {
		return NewJSONWriter(w, colour)
	}
	return NewTextWriter(w, noColor)
}
