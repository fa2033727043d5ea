package seed

import (
	"math/rand"
	"sort"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// GenerateTimestamps draws count instants uniformly over the trailing
// windowDays from now and returns them sorted ascending. Each draw combines
// an independent day offset and second-in-day offset, so every result lies
// inside [now-windowDays, now]. Duplicates are legal; the sequence is
// non-decreasing but not strictly monotonic.
func GenerateTimestamps(rng *rand.Rand, count, windowDays int) []time.Time {
	start := time.Now().AddDate(0, 0, -windowDays)

	stamps := make([]time.Time, count)
	for i := range stamps {
		days := rng.Intn(windowDays)
		seconds := rng.Intn(secondsPerDay)
		stamps[i] = start.AddDate(0, 0, days).Add(time.Duration(seconds) * time.Second)
	}

	sort.Slice(stamps, func(i, j int) bool {
		return stamps[i].Before(stamps[j])
	})

	return stamps
}
