package engine

import "time"

// Gate lets a phase run once its interval has elapsed since the last run
type Gate struct {
	interval time.Duration
	last     time.Time
}

// NewGate creates a gate whose first opening is one interval after start
func NewGate(interval time.Duration, start time.Time) *Gate {
	return &Gate{interval: interval, last: start}
}

// Ready reports whether the interval has elapsed at now
func (g *Gate) Ready(now time.Time) bool {
	return now.Sub(g.last) >= g.interval
}

// Reset marks the phase as having run at now
func (g *Gate) Reset(now time.Time) {
	g.last = now
}

// Interval returns the configured interval
func (g *Gate) Interval() time.Duration {
	return g.interval
}
