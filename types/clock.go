package types

import "time"

/*
Clock is the time source used for freshness decisions.

The cache only ever asks "what time is it now" and derives ages by
subtraction, so Now must be monotonically non-decreasing. A wall clock
that can be stepped backwards could re-freshen an entry that is actually
stale, or expire one early.

Tests substitute a fake Clock to move time forward without sleeping.
*/
type Clock interface {
	Now() time.Time
}

/*
SystemClock reads the real time.

time.Now carries Go's monotonic clock reading and time.Time.Sub uses it
when both operands have one, so ages computed from SystemClock values are
immune to wall-clock adjustments.
*/
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
