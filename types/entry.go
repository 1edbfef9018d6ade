package types

import "time"

/*
TimedEntry is a value paired with the instant it was stored.

StoredAt is written exactly once per successful compute and never touched
by reads, so an entry's age only ever grows until the entry is replaced.
*/
type TimedEntry[V any] struct {
	Value    V
	StoredAt time.Time
}

// Fresh reports whether the entry may still be served at now.
// An entry is fresh while its age is strictly below timeToKeep:
// an entry that is exactly timeToKeep old is already stale.
func (e *TimedEntry[V]) Fresh(timeToKeep time.Duration, now time.Time) bool {
	return now.Sub(e.StoredAt) < timeToKeep
}
