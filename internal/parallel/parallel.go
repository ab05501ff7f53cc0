// Package parallel fans independent work items out over goroutines.
//
// It is used to build per-sample computation graphs concurrently. Graph
// construction only reads operand data, so it is safe to share parameter
// leaves across workers; Backward must still run on one goroutine.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns defaults based on CPU count.
//
// One item is one sample's whole forward graph (hundreds of node
// allocations for a small MLP), so a chunk of 8 samples already outweighs
// the cost of starting a goroutine. Batches below that size are built
// sequentially.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 8,
	}
}

// For executes f(i) for i in [0, n).
//
// Contiguous chunks of at least MinChunkSize items go to at most
// NumWorkers goroutines, each calling f in increasing index order within
// its chunk. With parallelism disabled, fewer than two workers, or n below
// MinChunkSize, f runs on the calling goroutine in index order.
func For(n int, f func(i int), cfg Config) {
	chunks := chunkBounds(n, cfg)
	if len(chunks) <= 1 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for _, c := range chunks {
		c := c
		go func() {
			defer wg.Done()
			for i := c[0]; i < c[1]; i++ {
				f(i)
			}
		}()
	}
	wg.Wait()
}

// chunkBounds splits [0, n) into half-open [start, end) ranges, one per
// goroutine. A single range means the work stays sequential.
func chunkBounds(n int, cfg Config) [][2]int {
	if n <= 0 {
		return nil
	}
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize {
		return [][2]int{{0, n}}
	}

	size := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
	bounds := make([][2]int, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		bounds = append(bounds, [2]int{start, min(start+size, n)})
	}
	return bounds
}

// Map returns []T{f(0), ..., f(n-1)}, computed with For.
// Results keep their index order regardless of which worker produced them.
func Map[T any](n int, f func(i int) T, cfg Config) []T {
	out := make([]T, n)
	For(n, func(i int) {
		out[i] = f(i)
	}, cfg)
	return out
}
