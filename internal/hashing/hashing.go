// Package hashing provides position hashing and a move table cache keyed by
// position.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/processing"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x5eed1e55

// zobristKeys holds one random key per (square, piece) pair. Index 0 of the
// piece dimension is unused: empty squares contribute nothing.
var zobristKeys [chess.BoardSize][chess.BoardSize][13]uint64

func init() {
	rng := rand.New(rand.NewSource(zobristSeed)) //nolint:gosec // G404: not security sensitive
	for f := range zobristKeys {
		for r := range zobristKeys[f] {
			for p := 1; p < len(zobristKeys[f][r]); p++ {
				zobristKeys[f][r][p] = rng.Uint64()
			}
		}
	}
}

// pieceIndex maps a piece to 1..12: White P..K then Black P..K.
func pieceIndex(p chess.Piece) int {
	return int(p.Colour)*6 + int(p.Kind)
}

// GenerateZobristHash returns the Zobrist hash of the piece placement.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for f := 0; f < chess.BoardSize; f++ {
		for r := 0; r < chess.BoardSize; r++ {
			p := board.Squares[f][r]
			if !p.IsEmpty() {
				hash ^= zobristKeys[f][r][pieceIndex(p)]
			}
		}
	}
	return hash
}

// WeakHash is a cheap position checksum used to confirm Zobrist matches.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for f := 0; f < chess.BoardSize; f++ {
		for r := 0; r < chess.BoardSize; r++ {
			p := board.Squares[f][r]
			if !p.IsEmpty() {
				hash += uint32(pieceIndex(p)) * uint32(f*chess.BoardSize+r+1)
			}
		}
	}
	return hash
}

// TableSignature identifies a cached move table.
type TableSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
	// Filter is the colour filter the table was built with
	Filter processing.Filter
}

type cacheEntry struct {
	sig   TableSignature
	table []processing.PieceMoves
}

// MoveCache remembers move tables by position. It is not safe for
// concurrent use; see ThreadSafeMoveCache.
type MoveCache struct {
	// hashTable stores cached tables by Zobrist hash
	hashTable map[uint64][]cacheEntry
	// maxCapacity limits stored tables (0 = unlimited)
	maxCapacity int
	entries     int
	hits        int
	misses      int
}

// NewMoveCache creates a cache. maxCapacity of 0 means unlimited.
func NewMoveCache(maxCapacity int) *MoveCache {
	return &MoveCache{
		hashTable:   make(map[uint64][]cacheEntry),
		maxCapacity: maxCapacity,
	}
}

// Signature computes the cache key for a board and filter.
func Signature(board *chess.Board, filter processing.Filter) TableSignature {
	return TableSignature{
		Hash:     GenerateZobristHash(board),
		WeakHash: WeakHash(board),
		Filter:   filter,
	}
}

// Get returns the cached table for sig, if any.
func (c *MoveCache) Get(sig TableSignature) ([]processing.PieceMoves, bool) {
	for _, e := range c.hashTable[sig.Hash] {
		if e.sig == sig {
			c.hits++
			return e.table, true
		}
	}
	c.misses++
	return nil, false
}

// Put stores a table. When the cache is full the table is not stored and
// Put returns false.
func (c *MoveCache) Put(sig TableSignature, table []processing.PieceMoves) bool {
	for i, e := range c.hashTable[sig.Hash] {
		if e.sig == sig {
			c.hashTable[sig.Hash][i].table = table
			return true
		}
	}
	if c.IsFull() {
		return false
	}
	c.hashTable[sig.Hash] = append(c.hashTable[sig.Hash], cacheEntry{sig: sig, table: table})
	c.entries++
	return true
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *MoveCache) IsFull() bool {
	return c.maxCapacity > 0 && c.entries >= c.maxCapacity
}

// Len returns the number of cached tables.
func (c *MoveCache) Len() int {
	return c.entries
}

// Stats returns hit and miss counts.
func (c *MoveCache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

// Reset clears the cache and its counters.
func (c *MoveCache) Reset() {
	c.hashTable = make(map[uint64][]cacheEntry)
	c.entries = 0
	c.hits = 0
	c.misses = 0
}
