// Package output renders boards and move lists as text or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteMoveList writes "<piece> <square>:" followed by the destinations in
// algebraic form, wrapped at lineLength. A piece with no moves gets "(none)".
func WriteMoveList(w io.Writer, piece chess.Piece, from chess.Square, moves []chess.Square, lineLength int) {
	ow := NewOutputWriter(w, lineLength)
	ow.WriteNoSpace(fmt.Sprintf("%s %s:", piece, from))
	if len(moves) == 0 {
		ow.Write("(none)")
	}
	for _, m := range moves {
		ow.Write(m.String())
	}
	ow.NewLine()
}
