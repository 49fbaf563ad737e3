package core

import "time"

// Instant is an opaque, monotonically increasing tick-clock reading in
// milliseconds. It is never wall-clock time, so tests can drive it directly.
type Instant int64

// InstantOf converts an elapsed duration since boot to an Instant.
func InstantOf(d time.Duration) Instant {
	return Instant(d / time.Millisecond)
}

// Add returns the instant d after i.
func (i Instant) Add(d time.Duration) Instant {
	return i + InstantOf(d)
}

// Sub returns the time elapsed from earlier to i.
func (i Instant) Sub(earlier Instant) time.Duration {
	return time.Duration(i-earlier) * time.Millisecond
}
