package billing

import (
	"fmt"
	"sync"
	"time"
)

// TrackingPrefix starts every tracking identifier.
const TrackingPrefix = "TRACK-"

// Tracker issues tracking identifiers from a clock in unix milliseconds.
// Identifiers from one tracker strictly increase, even when the clock
// stalls or steps back.
type Tracker struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewTracker creates a tracker. A nil clock uses time.Now.
func NewTracker(now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{now: now}
}

// Next returns a fresh identifier.
func (t *Tracker) Next() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	ms := t.now().UnixMilli()
	if ms <= t.last {
		ms = t.last + 1
	}
	t.last = ms
	return fmt.Sprintf("%s%d", TrackingPrefix, ms)
}
