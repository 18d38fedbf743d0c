package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForSequential(t *testing.T) {
	cfg := Config{Enabled: false}

	visited := make([]bool, 100)
	For(100, func(i int) { visited[i] = true }, cfg)

	for i, v := range visited {
		if !v {
			t.Errorf("index %d not visited", i)
		}
	}
}

func TestForParallelCoversAllIndices(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}

	const n = 10000
	var count atomic.Int64
	visited := make([]atomic.Bool, n)
	For(n, func(i int) {
		if visited[i].Swap(true) {
			t.Errorf("index %d visited twice", i)
		}
		count.Add(1)
	}, cfg)

	if count.Load() != n {
		t.Errorf("visited %d indices, want %d", count.Load(), n)
	}
}

func TestForSmallNStaysSequential(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 100}

	// Below the chunk threshold the loop runs on the calling goroutine, so
	// unsynchronized writes are safe.
	sum := 0
	For(10, func(i int) { sum += i }, cfg)
	if sum != 45 {
		t.Errorf("sum = %d, want 45", sum)
	}
}

func TestForZeroN(t *testing.T) {
	For(0, func(i int) { t.Error("body should not run") }, DefaultConfig())
}
