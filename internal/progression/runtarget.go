package progression

import (
	"fmt"
	"math"
)

// RunIncrementKm is added to the last successful distance for the next target.
const RunIncrementKm = 0.2

// Round1 rounds to one decimal place, half away from zero.
func Round1(km float64) float64 {
	return math.Round(km*10) / 10
}

// NextRunTarget computes today's running target: the most recent successful
// distance plus the increment, or the configured starting distance when no
// successful run exists yet. lastSuccessfulKm is nil when absent.
func NextRunTarget(lastSuccessfulKm *float64, configuredStartKm float64) (float64, error) {
	if configuredStartKm <= 0 {
		return 0, fmt.Errorf("starting distance %.1f must be positive: %w", configuredStartKm, ErrInvalidInput)
	}
	if lastSuccessfulKm == nil {
		return configuredStartKm, nil
	}
	return Round1(*lastSuccessfulKm + RunIncrementKm), nil
}

// RunCompleted is the completion rule applied on every actual-distance
// submission, evaluated against the immutable per-day target.
func RunCompleted(actualKm, targetKm float64) bool {
	return actualKm >= targetKm
}
