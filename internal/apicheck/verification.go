package apicheck

import (
	"fmt"
	"sort"
)

// Verify checks that a snapshot is internally consistent and returns one
// message per violation.
//
// Connection counts must be non-increasing and every institution count must
// equal the sum of its per-team counts. Per-team lists must be
// non-increasing. Averages must be in [0, 1] and sorted by name, and must
// cover exactly the institutions in the connection counts.
func Verify(s *Snapshot) []string {
	var out []string
	add := func(format string, args ...any) { out = append(out, fmt.Sprintf(format, args...)) }

	if !descending(s.Connections) {
		add("connections are not in descending count order")
	}

	perInst := make(map[string]int)
	for team, counts := range s.ByTeam {
		if !descending(counts) {
			add("team %s: institutions are not in descending count order", team)
		}
		for _, c := range counts {
			perInst[c.Institution] += c.Count
		}
	}
	if len(s.ByTeam) != len(s.Teams) {
		add("fetched %d team answers for %d teams", len(s.ByTeam), len(s.Teams))
	}

	seen := make(map[string]bool, len(s.Connections))
	for _, c := range s.Connections {
		seen[c.Institution] = true
		if got := perInst[c.Institution]; got != c.Count {
			add("%s: %d connections but teams sum to %d", c.Institution, c.Count, got)
		}
	}
	for inst := range perInst {
		if !seen[inst] {
			add("%s appears for a team but not in connections", inst)
		}
	}

	if !sort.SliceIsSorted(s.Averages, func(i, j int) bool {
		return s.Averages[i].Institution < s.Averages[j].Institution
	}) {
		add("averages are not sorted by institution")
	}
	if len(s.Averages) != len(s.Connections) {
		add("%d averages for %d institutions", len(s.Averages), len(s.Connections))
	}
	for _, a := range s.Averages {
		if !seen[a.Institution] {
			add("%s has an average but no connections", a.Institution)
		}
		if a.Average != nil && (*a.Average < 0 || *a.Average > 1) {
			add("%s: average %v outside [0, 1]", a.Institution, *a.Average)
		}
	}
	return out
}

func descending(counts []Count) bool {
	for i := 1; i < len(counts); i++ {
		if counts[i].Count > counts[i-1].Count {
			return false
		}
	}
	return true
}
