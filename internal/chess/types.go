// Package chess provides the core board types shared by the move generator
// and the game layer.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank delta of a pawn advance: White moves toward
// rank 0, Black toward rank 7.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRank returns the rank a pawn of this colour starts on.
func (c Colour) HomeRank() int {
	if c == White {
		return 6
	}
	return 1
}

// LastRank returns the rank on which a pawn of this colour promotes.
func (c Colour) LastRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Empty PieceKind = iota // No piece on the square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is an immutable (kind, colour) pair. The zero value is an empty square.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// NoPiece is the occupant of an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// String returns e.g. "White Knight", or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// GameState is the coarse state of a game as reported by the game layer.
type GameState int

const (
	InProgress GameState = iota
	Check
	GameOver
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Check:
		return "Check"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}

// BoardSize is the number of files and ranks.
const BoardSize = 8
