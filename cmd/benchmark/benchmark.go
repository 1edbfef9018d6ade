package main

import (
	"fmt"
	"sync/atomic"
	"time"

	cache "github.com/krisalay/timed-cache"
	"golang.org/x/sync/errgroup"
)

// ================= BENCHMARK =================

func main() {
	fmt.Println("\n================ TIMED CACHE LOAD BENCHMARK =================")

	// ---------------- Cache Config ----------------
	const (
		timeToKeep = 50 * time.Millisecond
		hotKeys    = 1000
		goroutines = 200
		opsPerG    = 5000
	)

	fmt.Println("CONFIG")
	fmt.Println("---------------------------------")
	fmt.Println("Time To Keep :", timeToKeep)
	fmt.Println("Hot Keys     :", hotKeys)
	fmt.Println("Goroutines   :", goroutines)
	fmt.Println("Ops / G      :", opsPerG)

	c := cache.WithTimeToKeep[string, int](timeToKeep)

	var computes atomic.Int64
	keys := make([]string, hotKeys)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}

	// Preload every hot key once.
	for i, k := range keys {
		i := i
		c.Get(k, func() (int, error) {
			computes.Add(1)
			return i, nil
		})
	}

	// ---------------- Run ----------------
	start := time.Now()

	g := new(errgroup.Group)
	for w := 0; w < goroutines; w++ {
		w := w
		g.Go(func() error {
			for j := 0; j < opsPerG; j++ {
				k := keys[(w+j)%len(keys)]
				_, err := c.Get(k, func() (int, error) {
					computes.Add(1)
					return j, nil
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Println("BENCH → error:", err)
		return
	}

	elapsed := time.Since(start)
	totalOps := goroutines * opsPerG

	// ---------------- Results ----------------
	fmt.Println("\nRESULTS")
	fmt.Println("---------------------------------")
	fmt.Println("Total Ops    :", totalOps)
	fmt.Println("Computes     :", computes.Load())
	fmt.Println("Elapsed      :", elapsed)
	fmt.Printf("Throughput   : %.0f ops/sec\n", float64(totalOps)/elapsed.Seconds())
	fmt.Println("Keys Stored  :", c.Len())
}
