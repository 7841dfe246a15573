package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/processing"
)

// JSONMoves is the JSON form of a single move query.
type JSONMoves struct {
	Square string   `json:"square"`
	Piece  string   `json:"piece"`
	Moves  []string `json:"moves"`
}

// JSONTable is the JSON form of a whole-board move table.
type JSONTable struct {
	Colour string      `json:"colour,omitempty"`
	Count  int         `json:"count"`
	Pieces []JSONMoves `json:"pieces"`
}

// MovesToJSON converts a move query result. Moves is never nil, so a piece
// without moves encodes as [].
func MovesToJSON(from chess.Square, piece chess.Piece, moves []chess.Square) *JSONMoves {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	return &JSONMoves{
		Square: from.String(),
		Piece:  piece.String(),
		Moves:  names,
	}
}

// TableToJSON converts a move table. colour is informational and may be empty.
func TableToJSON(table []processing.PieceMoves, colour string) *JSONTable {
	jt := &JSONTable{
		Colour: colour,
		Count:  processing.CountMoves(table),
		Pieces: make([]JSONMoves, 0, len(table)),
	}
	for _, pm := range table {
		jt.Pieces = append(jt.Pieces, *MovesToJSON(pm.Square, pm.Piece, pm.Moves))
	}
	return jt
}

// WriteMovesJSON writes a single move query as indented JSON.
func WriteMovesJSON(w io.Writer, moves *JSONMoves) error {
	return encodeJSON(w, moves)
}

// WriteTableJSON writes a move table as indented JSON.
func WriteTableJSON(w io.Writer, table *JSONTable) error {
	return encodeJSON(w, table)
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
