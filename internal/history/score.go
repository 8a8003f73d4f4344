// Package history remembers dispatched task types and ranks them by frecency.
package history

import (
	"sort"
	"time"
)

// Score calculates the frecency score for an entry relative to now.
// Higher scores indicate more frequently and recently used entries.
func Score(entry Entry, now time.Time) float64 {
	hoursSince := now.Sub(entry.LastRunAt).Hours()

	var recency float64

	switch {
	case hoursSince < 1:
		recency = 4.0
	case hoursSince < 24:
		recency = 2.0
	case hoursSince < 168: // 1 week
		recency = 1.0
	default:
		recency = 0.5
	}

	return float64(entry.RunCount) * recency
}

// SortByFrecency sorts entries by score in descending order, most recent first on ties.
func SortByFrecency(entries []Entry, now time.Time) {
	sort.SliceStable(entries, func(i, j int) bool {
		si, sj := Score(entries[i], now), Score(entries[j], now)
		if si != sj {
			return si > sj
		}

		return entries[i].LastRunAt.After(entries[j].LastRunAt)
	})
}

// FilterByWorkflow returns entries for the given workflow filename; "" keeps all.
func FilterByWorkflow(entries []Entry, workflow string) []Entry {
	if workflow == "" {
		return entries
	}

	var filtered []Entry

	for _, e := range entries {
		if e.Workflow == workflow {
			filtered = append(filtered, e)
		}
	}

	return filtered
}
