package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus("timedcache", reg)

	m.Hit()
	m.Hit()
	m.Miss()
	m.Expire()
	m.Compute()
	m.ComputeError()

	if got := testutil.ToFloat64(m.hits); got != 2 {
		t.Fatalf("hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.misses); got != 1 {
		t.Fatalf("misses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.expirations); got != 1 {
		t.Fatalf("expirations = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.computes); got != 1 {
		t.Fatalf("computes = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.computeErrors); got != 1 {
		t.Fatalf("computeErrors = %v, want 1", got)
	}
}

func TestRegistersOnProvidedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheus("timedcache", reg)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if len(families) != 5 {
		t.Fatalf("expected 5 metric families, got %d", len(families))
	}
}
