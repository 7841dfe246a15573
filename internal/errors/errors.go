// Package errors provides sentinel errors and error types for the move
// generator and the game layer built on it. The structured types preserve
// context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrEmptySquare indicates a move query on a square with no occupant.
	ErrEmptySquare = errors.New("empty square")

	// ErrInvalidSquare indicates a square name or coordinate off the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a destination the piece cannot reach.
	ErrIllegalMove = errors.New("illegal move")

	// ErrWrongTurn indicates a move by the side not on move.
	ErrWrongTurn = errors.New("not this side's turn")

	// ErrGameOver indicates a move attempted after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidPromotion indicates a promotion to a kind a pawn cannot become.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrGameNotFound indicates an unknown game session ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// SquareError wraps an error with the square it concerns.
type SquareError struct {
	Err    error  // The underlying error
	Square string // Algebraic or coordinate form of the square
	Op     string // Operation that failed, e.g. "generate"
}

// Error returns a formatted error message including all available context.
func (e *SquareError) Error() string {
	var parts []string
	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Square != "" {
		parts = append(parts, e.Square)
	}
	context := strings.Join(parts, " ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the SquareError wrapper.
func (e *SquareError) Unwrap() error {
	return e.Err
}

// MoveError wraps an error with the move being applied.
type MoveError struct {
	Err   error  // The underlying error
	From  string // Source square
	To    string // Destination square
	Piece string // Piece that was moved (if known)
	Ply   int    // Ply number where error occurred (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents an error in textual input (FEN, square names) with
// the offending position.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based, 0 if unknown)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target.
// It re-exports the standard library function so callers need one import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
