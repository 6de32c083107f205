package core

import (
	"sync"
	"testing"
)

func TestGoroutineID_StableWithinGoroutine(t *testing.T) {
	first := GoroutineID()
	if first == 0 {
		t.Fatal("GoroutineID() returned 0")
	}
	second := GoroutineID()
	if first != second {
		t.Errorf("GoroutineID() changed within one goroutine: %d then %d", first, second)
	}
}

func TestGoroutineID_DistinctAcrossGoroutines(t *testing.T) {
	const n = 8
	ids := make([]uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = GoroutineID()
		}(i)
	}
	wg.Wait()

	seen := make(map[uint64]bool, n)
	for _, id := range ids {
		if id == 0 {
			t.Fatal("GoroutineID() returned 0 in a spawned goroutine")
		}
		if seen[id] {
			t.Errorf("duplicate goroutine id %d", id)
		}
		seen[id] = true
	}
}

func BenchmarkGoroutineID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GoroutineID()
	}
}
