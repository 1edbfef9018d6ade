package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	cache "github.com/krisalay/timed-cache"
	"github.com/krisalay/timed-cache/types"
)

func newBenchmarkCache() *cache.TimedCache[string, int] {
	return cache.WithTimeToKeep[string, int](time.Minute)
}

//
// ================= SINGLE THREAD BENCH =================
//

func BenchmarkGetHit(b *testing.B) {
	c := newBenchmarkCache()

	c.Get("key", func() (int, error) { return 1, nil })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("key", func() (int, error) { return 2, nil })
	}
}

func BenchmarkGetMiss(b *testing.B) {
	c := newBenchmarkCache()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := fmt.Sprintf("miss-%d", i)
		c.Get(key, func() (int, error) { return i, nil })
	}
}

//
// ================= PARALLEL BENCH =================
//

func BenchmarkParallelGetHit(b *testing.B) {
	c := newBenchmarkCache()

	for i := 0; i < 1000; i++ {
		i := i
		c.Get(fmt.Sprintf("key-%d", i), func() (int, error) { return i, nil })
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Get("key-42", func() (int, error) { return 0, nil })
		}
	})
}

//
// ================= READ-THROUGH BENCH =================
//

func BenchmarkLoaderCacheGetHit(b *testing.B) {
	ctx := context.Background()
	lc := cache.NewLoaderCache(time.Minute, types.LoaderFunc(func(ctx context.Context, key string) (any, error) {
		return "value", nil
	}))

	lc.Get(ctx, "key")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lc.Get(ctx, "key")
	}
}
