package threadpool

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoopItCoversAllIndices(t *testing.T) {
	p := NewSize(4)
	defer p.Stop()

	const n = 997
	var seen [n]int32
	p.LoopIt(n, 0, func(begin, end, worker int) {
		for i := begin; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})

	for i, c := range seen {
		require.Equalf(t, int32(1), c, "index %d visited %d times", i, c)
	}
}

func TestLoopItTiling(t *testing.T) {
	p := NewSize(2)
	defer p.Stop()

	const n = 50
	var calls int32
	p.LoopIt(n, 7, func(begin, end, worker int) {
		require.LessOrEqual(t, end-begin, 7)
		atomic.AddInt32(&calls, 1)
	})
	require.Greater(t, int(calls), 2)
}

// TestLoopItTilesDontRaceWorkerScratch exercises a small maxChunk so a
// single worker's partition is split into several tiles, and writes to a
// per-worker scratch slot (indexed by worker, not synchronized) on every
// tile. If two tiles of the same partition were ever run on different
// goroutines, `go test -race` would report the concurrent write.
func TestLoopItTilesDontRaceWorkerScratch(t *testing.T) {
	p := NewSize(4)
	defer p.Stop()

	scratch := make([]int, p.Workers())
	const n = 997
	p.LoopIt(n, 3, func(begin, end, worker int) {
		for i := begin; i < end; i++ {
			scratch[worker]++
		}
	})

	total := 0
	for _, v := range scratch {
		total += v
	}
	require.Equal(t, n, total)
}

func TestLoopItWorkerIndexStable(t *testing.T) {
	p := NewSize(3)
	defer p.Stop()

	p.LoopIt(9, 1, func(begin, end, worker int) {
		require.GreaterOrEqual(t, worker, 0)
		require.Less(t, worker, p.Workers())
	})
}

func TestLoopItPropagatesPanic(t *testing.T) {
	p := NewSize(2)
	defer p.Stop()

	require.Panics(t, func() {
		p.LoopIt(4, 0, func(begin, end, worker int) {
			panic("boom")
		})
	})
}

func TestLoopItEmptyRange(t *testing.T) {
	p := NewSize(2)
	defer p.Stop()

	called := false
	p.LoopIt(0, 0, func(begin, end, worker int) {
		called = true
	})
	require.False(t, called)
}

func TestStopDrainsAndJoins(t *testing.T) {
	p := NewSize(2)
	p.Stop()
	// Stop must be idempotent-safe to call once more without hanging
	// tests: a second LoopIt after Stop should simply do nothing new
	// since no workers remain to pick up tasks. We only assert Stop
	// itself returned (no deadlock), which require already verified by
	// reaching this point.
}
