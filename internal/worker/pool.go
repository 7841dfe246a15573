// Package worker provides a worker pool for parallel move generation over a
// shared, read-only board.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// WorkItem names one source square to generate moves for.
type WorkItem struct {
	Square chess.Square
	Index  int // Original index for tracking
}

// ProcessResult holds the moves generated for one work item.
type ProcessResult struct {
	Square chess.Square
	Index  int
	Piece  chess.Piece
	Moves  []chess.Square
	Error  error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers. Workers only read shared state, so the
// board behind processFunc must not be written while the pool runs.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool using functional options.
// Default: 1 worker, buffer size of 64 (one slot per square).
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  chess.BoardSize * chess.BoardSize,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.stopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing. It returns false without
// queueing the item once the pool has been stopped; otherwise it may block
// while the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) bool {
	if p.stopped() {
		return false
	}
	p.workChan <- item
	return true
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

func (p *Pool) stopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}
