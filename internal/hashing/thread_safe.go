package hashing

import (
	"context"
	"sync"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/processing"
)

// ThreadSafeMoveCache wraps MoveCache with mutex protection for concurrent access.
type ThreadSafeMoveCache struct {
	cache *MoveCache
	mu    sync.Mutex
}

// NewThreadSafeMoveCache creates a new thread-safe cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeMoveCache(maxCapacity int) *ThreadSafeMoveCache {
	return &ThreadSafeMoveCache{
		cache: NewMoveCache(maxCapacity),
	}
}

// Get returns the cached table for sig, if any.
func (c *ThreadSafeMoveCache) Get(sig TableSignature) ([]processing.PieceMoves, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Get(sig)
}

// Put stores a table, returning false if the cache is full.
func (c *ThreadSafeMoveCache) Put(sig TableSignature, table []processing.PieceMoves) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Put(sig, table)
}

// MoveTable returns the cached table for board and filter, building and
// storing it with processing.MoveTableContext on a miss. Concurrent misses on
// the same position may both build the table; the result is the same. A build
// cut short by ctx is not stored.
func (c *ThreadSafeMoveCache) MoveTable(ctx context.Context, board *chess.Board, filter processing.Filter, workers int) ([]processing.PieceMoves, error) {
	sig := Signature(board, filter)
	if table, ok := c.Get(sig); ok {
		return table, nil
	}
	table, err := processing.MoveTableContext(ctx, board, filter, workers)
	if err != nil {
		return nil, err
	}
	c.Put(sig, table)
	return table, nil
}

// Len returns the number of cached tables.
func (c *ThreadSafeMoveCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}

// Stats returns hit and miss counts.
func (c *ThreadSafeMoveCache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Stats()
}

// IsFull returns true if the cache has reached its capacity limit.
func (c *ThreadSafeMoveCache) IsFull() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.IsFull()
}
