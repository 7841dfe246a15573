package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// boardFrame tops and tails FormatBoard output.
const boardFrame = "|:----------------------:|"

// RenderOptions controls RenderBoard.
type RenderOptions struct {
	// NoColor suppresses ANSI escapes. Highlighted squares are then marked
	// with an "x" instead of a background colour.
	NoColor bool
	// Highlight lists squares to mark, typically the destinations of a
	// move query.
	Highlight []chess.Square
}

// palette holds the colours for one render.
type palette struct {
	header *color.Color
	white  *color.Color
	black  *color.Color
	empty  *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		header: color.New(color.FgYellow),
		white:  color.New(color.FgWhite),
		black:  color.New(color.FgBlack),
		empty:  color.New(color.FgBlack),
	}
	for _, c := range []*color.Color{p.header, p.white, p.black, p.empty} {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return p
}

// PieceCode returns the short board code for a piece kind: P Kn B R Q K.
// Knights take two letters so they cannot be confused with the king.
func PieceCode(kind chess.PieceKind) string {
	switch kind {
	case chess.Pawn:
		return "P"
	case chess.Knight:
		return "Kn"
	case chess.Bishop:
		return "B"
	case chess.Rook:
		return "R"
	case chess.Queen:
		return "Q"
	case chess.King:
		return "K"
	}
	return ""
}

// RenderBoard writes the board with a file index header and a rank index
// column. Rank 0 is printed first. White pieces are drawn in white, black
// pieces in black and empty squares as "-"; every cell is three columns wide.
func RenderBoard(w io.Writer, board *chess.Board, opts RenderOptions) error {
	p := newPalette(opts.NoColor)

	marked := make(map[chess.Square]bool, len(opts.Highlight))
	for _, sq := range opts.Highlight {
		marked[sq] = true
	}

	var sb strings.Builder
	var header strings.Builder
	header.WriteString(" ")
	for f := 0; f < chess.BoardSize; f++ {
		fmt.Fprintf(&header, " %d ", f)
	}
	sb.WriteString(p.header.Sprint(strings.TrimRight(header.String(), " ")))
	sb.WriteString("\n")

	for r := 0; r < chess.BoardSize; r++ {
		sb.WriteString(p.header.Sprintf("%d ", r))
		for f := 0; f < chess.BoardSize; f++ {
			sq := chess.Sq(f, r)
			sb.WriteString(renderCell(p, board.Get(sq), marked[sq], opts.NoColor))
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func renderCell(p palette, piece chess.Piece, marked, noColor bool) string {
	code := "-"
	c := p.empty
	if !piece.IsEmpty() {
		code = PieceCode(piece.Kind)
		c = p.white
		if piece.Colour == chess.Black {
			c = p.black
		}
	}

	if !marked {
		return c.Sprintf("%-3s", code)
	}
	if noColor {
		if piece.IsEmpty() {
			return "x  "
		}
		return fmt.Sprintf("%-3s", code+"x")
	}
	hl := color.New(color.BgGreen)
	hl.EnableColor()
	if !piece.IsEmpty() {
		if piece.Colour == chess.Black {
			hl.Add(color.FgBlack)
		} else {
			hl.Add(color.FgWhite)
		}
	}
	return hl.Sprintf("%-3s", code)
}

// FormatBoard returns the board as a framed plain-text block:
//
//	|:----------------------:|
//	| R  Kn B  K  Q  B  Kn R |
//	| P  P  P  P  P  P  P  P |
//	| *  *  *  *  *  *  *  * |
//	...
//	|:----------------------:|
//
// Empty squares are "*". Piece colour is not shown.
func FormatBoard(board *chess.Board) string {
	var sb strings.Builder
	sb.WriteString(boardFrame)
	sb.WriteString("\n")
	for r := 0; r < chess.BoardSize; r++ {
		var row strings.Builder
		row.WriteString("| ")
		for f := 0; f < chess.BoardSize; f++ {
			code := "*"
			if piece := board.Get(chess.Sq(f, r)); !piece.IsEmpty() {
				code = PieceCode(piece.Kind)
			}
			fmt.Fprintf(&row, "%-3s", code)
		}
		line := row.String()
		sb.WriteString(line[:len(line)-1])
		sb.WriteString("|\n")
	}
	sb.WriteString(boardFrame)
	sb.WriteString("\n")
	return sb.String()
}
