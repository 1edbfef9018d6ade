package engine

import (
	"testing"
	"time"

	"github.com/krisalay/timed-cache/types"
)

type stubClock struct{ now time.Time }

func (c *stubClock) Now() time.Time { return c.now }

type countingMetrics struct {
	hits, misses, expired, computes, computeErrors int
}

func (m *countingMetrics) Hit()          { m.hits++ }
func (m *countingMetrics) Miss()         { m.misses++ }
func (m *countingMetrics) Expire()       { m.expired++ }
func (m *countingMetrics) Compute()      { m.computes++ }
func (m *countingMetrics) ComputeError() { m.computeErrors++ }

func TestNewDefaults(t *testing.T) {
	e := New(time.Minute, nil, nil)

	if e.TimeToKeep() != time.Minute {
		t.Fatalf("expected 1m, got %v", e.TimeToKeep())
	}

	// Nil clock defaults to the system clock; Now must be usable.
	before := time.Now()
	if e.Now().Before(before) {
		t.Fatal("default clock went backwards")
	}

	// Nil metrics defaults to a no-op; events must not panic.
	e.OnHit()
	e.OnMiss()
}

func TestNegativeTimeToKeepPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New(-time.Second, nil, nil)
}

func TestNowUsesInjectedClock(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	e := New(time.Minute, &stubClock{now: at}, nil)

	if !e.Now().Equal(at) {
		t.Fatalf("expected injected time, got %v", e.Now())
	}
}

func TestNewEntryStampsWithEngineClock(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	e := New(time.Minute, &stubClock{now: at}, nil)

	ent := NewEntry(e, "value")
	if ent.Value != "value" {
		t.Fatalf("expected value, got %q", ent.Value)
	}
	if !ent.StoredAt.Equal(at) {
		t.Fatalf("expected stamp %v, got %v", at, ent.StoredAt)
	}
}

func TestEventsForwardToMetrics(t *testing.T) {
	m := &countingMetrics{}
	e := New(time.Minute, nil, m)

	e.OnHit()
	e.OnHit()
	e.OnMiss()
	e.OnExpire()
	e.OnCompute()
	e.OnComputeError()

	if m.hits != 2 || m.misses != 1 || m.expired != 1 || m.computes != 1 || m.computeErrors != 1 {
		t.Fatalf("unexpected counts: %+v", m)
	}
}

var _ types.Metrics = (*countingMetrics)(nil)
