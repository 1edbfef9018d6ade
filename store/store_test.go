package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/krisalay/timed-cache/types"
)

func TestPutGetOverwrite(t *testing.T) {
	s := New[string, int]()

	if _, ok := s.Get("k"); ok {
		t.Fatal("empty store must not hold entries")
	}

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Put("k", &types.TimedEntry[int]{Value: 1, StoredAt: t0})

	ent, ok := s.Get("k")
	if !ok || ent.Value != 1 {
		t.Fatalf("expected (1, true), got (%v, %v)", ent, ok)
	}

	// Overwriting replaces value and timestamp in place.
	t1 := t0.Add(time.Minute)
	s.Put("k", &types.TimedEntry[int]{Value: 2, StoredAt: t1})

	ent, _ = s.Get("k")
	if ent.Value != 2 || !ent.StoredAt.Equal(t1) {
		t.Fatalf("expected overwritten entry, got %+v", ent)
	}
	if s.Len() != 1 {
		t.Fatalf("overwrite must not grow the store, len = %d", s.Len())
	}
}

func TestLenCountsKeys(t *testing.T) {
	s := New[int, string]()
	for i := 0; i < 5; i++ {
		s.Put(i, &types.TimedEntry[string]{Value: "v"})
	}
	if s.Len() != 5 {
		t.Fatalf("expected 5 keys, got %d", s.Len())
	}
}

func TestConcurrentReadersAndWriters(t *testing.T) {
	s := New[string, int]()

	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Put(fmt.Sprintf("key-%d", i), &types.TimedEntry[int]{Value: j})
			}
		}(i)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Get(fmt.Sprintf("key-%d", i))
				s.Len()
			}
		}(i)
	}
	wg.Wait()

	if s.Len() != 10 {
		t.Fatalf("expected 10 keys, got %d", s.Len())
	}
}
