// Package timer holds the device-local rest timer. The state is ephemeral
// and never reaches the database; it survives process restarts through a
// small JSON state file, and the remaining time is always recomputed from
// wall-clock elapsed time so a suspended process does not drift the
// countdown.
package timer

import (
	"time"
)

// State is one running rest timer, created when a non-final set is completed.
type State struct {
	SetIndex    int       `json:"set_index"`
	StartedAt   time.Time `json:"started_at"`
	DurationSec int       `json:"duration_sec"`
}

// NewState starts a timer for the given set at the given instant.
func NewState(setIndex, durationSec int, startedAt time.Time) State {
	return State{SetIndex: setIndex, StartedAt: startedAt, DurationSec: durationSec}
}

// Remaining recomputes the time left at the given instant from the wall
// clock, never from a running counter.
func (s State) Remaining(now time.Time) time.Duration {
	deadline := s.StartedAt.Add(time.Duration(s.DurationSec) * time.Second)
	if !now.Before(deadline) {
		return 0
	}
	return deadline.Sub(now)
}

// Expired reports whether the timer has naturally run out at the given
// instant. An expired state is discarded, not reconstructed.
func (s State) Expired(now time.Time) bool {
	return s.Remaining(now) <= 0
}
