package engine

import (
	"time"

	"github.com/krisalay/timed-cache/types"
)

/*
FreshnessEngine is the "brain" of the cache system.
It is responsible for the "behavior" of the cache, NOT storage.
This acts as the policy layer.

It decides:
- How long a stored value may be served (the time to keep)
- What time it is, via a pluggable clock
- How metric events are recorded

It does NOT:
- Store data
- Handle locking
- Run computes
*/
type FreshnessEngine struct {

	// timeToKeep is how long a value is served after a successful compute.
	// Immutable for the engine's lifetime. Zero means nothing is ever
	// served from memory and every read recomputes.
	timeToKeep time.Duration

	// clock is the time source for freshness decisions.
	clock types.Clock

	// metrics is how we keep track of what the cache is doing.
	// Hits, misses, expirations, computes, compute errors.
	metrics types.Metrics
}

/*
New creates a FreshnessEngine.

timeToKeep must not be negative; a negative duration is a programming
error and panics. A nil clock defaults to the system clock and a nil
metrics sink defaults to a no-op, so call sites never nil-check either.
*/
func New(timeToKeep time.Duration, clock types.Clock, metrics types.Metrics) *FreshnessEngine {
	if timeToKeep < 0 {
		panic("timed-cache: time to keep must not be negative")
	}
	if clock == nil {
		clock = types.SystemClock{}
	}
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}

	return &FreshnessEngine{
		timeToKeep: timeToKeep,
		clock:      clock,
		metrics:    metrics,
	}
}

// TimeToKeep returns the configured freshness window.
func (e *FreshnessEngine) TimeToKeep() time.Duration {
	return e.timeToKeep
}

// Now reads the engine's clock.
func (e *FreshnessEngine) Now() time.Time {
	return e.clock.Now()
}

// NewEntry stamps a freshly computed value.
func NewEntry[V any](e *FreshnessEngine, value V) *types.TimedEntry[V] {
	return &types.TimedEntry[V]{Value: value, StoredAt: e.clock.Now()}
}

/*
The event methods below forward cache lifecycle events to the metrics
sink. The orchestrator reports through the engine rather than holding a
metrics handle of its own, so behavior stays in one layer.
*/

func (e *FreshnessEngine) OnHit()          { e.metrics.Hit() }
func (e *FreshnessEngine) OnMiss()         { e.metrics.Miss() }
func (e *FreshnessEngine) OnExpire()       { e.metrics.Expire() }
func (e *FreshnessEngine) OnCompute()      { e.metrics.Compute() }
func (e *FreshnessEngine) OnComputeError() { e.metrics.ComputeError() }
