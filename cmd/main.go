package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	cache "github.com/krisalay/timed-cache"
	"golang.org/x/oauth2/clientcredentials"
)

// ================= SESSION SERVICE =================

// SessionService hands out numbered session tokens. Every call is
// "expensive": it sleeps to simulate a network round trip and counts how
// often it was actually invoked.
type SessionService struct {
	mu    sync.Mutex
	calls int
}

func (s *SessionService) NextToken() (string, error) {
	time.Sleep(50 * time.Millisecond)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	fmt.Println("SERVICE → issued token", s.calls)
	return fmt.Sprintf("session-token-%d", s.calls), nil
}

func (s *SessionService) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// ================= OAUTH2 LOADER =================

// tokenLoader resolves every key through an OAuth2 client-credentials
// flow. This is the motivating real-world shape: a rate-limited token
// endpoint that should not be hit more than once per freshness window.
type tokenLoader struct {
	conf *clientcredentials.Config
}

func (l *tokenLoader) Load(ctx context.Context, key string) (any, error) {
	tok, err := l.conf.Token(ctx)
	if err != nil {
		return nil, err
	}
	return tok.AccessToken, nil
}

// ================= METRICS =================

type Metrics struct {
	mu            sync.Mutex
	hits          int
	misses        int
	expired       int
	computes      int
	computeErrors int
}

func (m *Metrics) Hit()          { m.mu.Lock(); m.hits++; m.mu.Unlock() }
func (m *Metrics) Miss()         { m.mu.Lock(); m.misses++; m.mu.Unlock() }
func (m *Metrics) Expire()       { m.mu.Lock(); m.expired++; m.mu.Unlock() }
func (m *Metrics) Compute()      { m.mu.Lock(); m.computes++; m.mu.Unlock() }
func (m *Metrics) ComputeError() { m.mu.Lock(); m.computeErrors++; m.mu.Unlock() }

func (m *Metrics) Print() {
	fmt.Println("\n==================== METRICS ====================")
	fmt.Printf("HITS           : %d\n", m.hits)
	fmt.Printf("MISSES         : %d\n", m.misses)
	fmt.Printf("EXPIRED        : %d\n", m.expired)
	fmt.Printf("COMPUTES       : %d\n", m.computes)
	fmt.Printf("COMPUTE ERRORS : %d\n", m.computeErrors)
}

// ================= MAIN =================

func main() {
	fmt.Println("\n==================== SYSTEM BOOT ====================")

	// ---------------- System Config ----------------
	fmt.Println("TIME TO KEEP : 2s")
	fmt.Println("POLICY       : single-flight per key")

	// ---------------- Service + Metrics ----------------
	service := &SessionService{}
	metrics := &Metrics{}

	c := cache.WithTimeToKeep[string, string](
		2*time.Second,
		cache.WithMetrics(metrics),
	)

	getToken := func() (string, error) { return service.NextToken() }

	// ====================================================
	fmt.Println("\n==================== 1) CACHE MISS ====================")
	v, _ := c.Get("session", getToken)
	fmt.Println("CACHE  → GET session =", v)

	// ====================================================
	fmt.Println("\n==================== 2) CACHE HIT ====================")
	v, _ = c.Get("session", getToken)
	fmt.Println("CACHE  → GET session =", v)

	// ====================================================
	fmt.Println("\n==================== 3) EXPIRY ====================")

	time.Sleep(2 * time.Second)

	fmt.Println("CACHE  → time to keep elapsed for session")
	v, _ = c.Get("session", getToken)
	fmt.Println("CACHE  → GET session after expiry =", v)

	// ====================================================
	fmt.Println("\n==================== 4) SINGLE-FLIGHT ====================")

	before := service.Calls()

	wg := sync.WaitGroup{}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			val, _ := c.Get("stampede", getToken)
			fmt.Printf("GOROUTINE-%d → GET stampede = %v\n", id, val)
		}(i)
	}
	wg.Wait()

	fmt.Println("SERVICE → calls for 5 concurrent gets:", service.Calls()-before)

	// ====================================================
	fmt.Println("\n==================== 5) READ-THROUGH ====================")

	// With OAUTH_TOKEN_URL set, the loader cache memoizes a real OAuth2
	// client-credentials token fetch. Without it, this stage is skipped.
	if tokenURL := os.Getenv("OAUTH_TOKEN_URL"); tokenURL != "" {
		loader := &tokenLoader{conf: &clientcredentials.Config{
			ClientID:     os.Getenv("OAUTH_CLIENT_ID"),
			ClientSecret: os.Getenv("OAUTH_CLIENT_SECRET"),
			TokenURL:     tokenURL,
		}}

		lc := cache.NewLoaderCache(time.Minute, loader)

		ctx := context.Background()
		tok, err := lc.Get(ctx, "access-token")
		if err != nil {
			fmt.Println("LOADER → token fetch failed:", err)
		} else {
			fmt.Println("LOADER → fetched access token")
		}

		// Second get is served from memory, no endpoint round trip.
		tok2, _ := lc.Get(ctx, "access-token")
		fmt.Println("LOADER → same token from cache:", tok == tok2)
	} else {
		fmt.Println("OAUTH_TOKEN_URL not set, skipping")
	}

	// ====================================================
	metrics.Print()
}
