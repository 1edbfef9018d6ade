package types

// This file defines how the cache reports what it is doing.

/*
Metrics is an interface that defines what the cache wants to measure.
Each method represents an event in the cache lifecycle. The cache will call these methods whenever something happens.

Events count cache outcomes, not callers: concurrent gets that share a
single compute record one Miss (or Expire) and one Compute between them,
not one per caller.
*/
type Metrics interface {

	// Hit is called when a fresh entry is served without running compute.
	Hit()

	// Miss is called when compute runs because the key had no entry.
	Miss()

	// Expire is called when compute runs because the entry was too old to serve.
	Expire()

	// Compute is called when a caller-supplied compute actually runs.
	Compute()

	// ComputeError is called when a compute fails and nothing is stored.
	ComputeError()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

We don't want to force every user of the cache to implement metrics.
If someone does not care about metrics, the cache should still work without
nil pointer checks or `if metrics != nil` conditions everywhere.

So we provide a default implementation that simply ignores all metric events.
*/
type NoopMetrics struct{}

// All methods below intentionally do nothing.
// This satisfies the Metrics interface without side effects.

func (NoopMetrics) Hit()          {}
func (NoopMetrics) Miss()         {}
func (NoopMetrics) Expire()       {}
func (NoopMetrics) Compute()      {}
func (NoopMetrics) ComputeError() {}
