// Package parallel provides the data-parallel execution utilities used by
// the lattice array engine.
package parallel

import (
	"runtime"
	"sort"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is
// too small. Callers must guarantee that concurrent invocations of f touch
// disjoint data.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// SortStable sorts vs in place with a stable parallel merge sort: chunks
// are sorted concurrently, then merged pairwise. Equal elements keep their
// original relative order. Falls back to sort.SliceStable when parallelism
// is disabled or the input is small.
func SortStable[T any](vs []T, cmp func(a, b T) int, cfg Config) {
	n := len(vs)
	if !cfg.Enabled || n < cfg.MinChunkSize*2 {
		sort.SliceStable(vs, func(i, j int) bool { return cmp(vs[i], vs[j]) < 0 })
		return
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)
	var bounds []int
	for start := 0; start < n; start += chunkSize {
		bounds = append(bounds, start)
	}
	bounds = append(bounds, n)

	var wg sync.WaitGroup
	for c := 0; c+1 < len(bounds); c++ {
		chunk := vs[bounds[c]:bounds[c+1]]
		wg.Add(1)
		go func(chunk []T) {
			defer wg.Done()
			sort.SliceStable(chunk, func(i, j int) bool { return cmp(chunk[i], chunk[j]) < 0 })
		}(chunk)
	}
	wg.Wait()

	// Merge adjacent sorted runs until one remains. Taking from the left
	// run on ties keeps the sort stable.
	buf := make([]T, n)
	for len(bounds) > 2 {
		next := make([]int, 0, len(bounds)/2+2)
		var mw sync.WaitGroup
		for c := 0; c+2 < len(bounds); c += 2 {
			lo, mid, hi := bounds[c], bounds[c+1], bounds[c+2]
			next = append(next, lo)
			mw.Add(1)
			go func(lo, mid, hi int) {
				defer mw.Done()
				merge(vs[lo:mid], vs[mid:hi], buf[lo:hi], cmp)
				copy(vs[lo:hi], buf[lo:hi])
			}(lo, mid, hi)
		}
		if len(bounds)%2 == 0 {
			// Odd run count: the trailing run carries over unmerged.
			next = append(next, bounds[len(bounds)-2])
		}
		next = append(next, n)
		mw.Wait()
		bounds = next
	}
}

func merge[T any](left, right, out []T, cmp func(a, b T) int) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if cmp(right[j], left[i]) < 0 {
			out[k] = right[j]
			j++
		} else {
			out[k] = left[i]
			i++
		}
		k++
	}
	copy(out[k:], left[i:])
	copy(out[k+len(left)-i:], right[j:])
}
