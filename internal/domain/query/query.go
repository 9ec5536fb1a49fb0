// Package query answers read-only questions over an institution relation.
// Counts are sorted descending and ties keep the relation's iteration order.
package query

import (
	"math"
	"sort"

	"github.com/okian/draftroots/internal/domain/model"
	"github.com/okian/draftroots/internal/domain/relation"
)

// ConnectionCounts returns every institution with its number of rookies.
func ConnectionCounts(rel *relation.Relation) []model.InstitutionCount {
	out := make([]model.InstitutionCount, 0, rel.Len())
	for _, inst := range rel.Institutions() {
		out = append(out, model.InstitutionCount{Institution: inst, Count: len(rel.Entries(inst))})
	}
	sortCounts(out)
	return out
}

// AverageComposite returns the mean composite score per institution.
func AverageComposite(rel *relation.Relation) map[string]float64 {
	out := make(map[string]float64, rel.Len())
	for _, inst := range rel.Institutions() {
		out[inst] = Mean(rel.Entries(inst))
	}
	return out
}

// Mean averages the composite scores of entries. It is NaN for no entries.
func Mean(entries []model.Entry) float64 {
	if len(entries) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, e := range entries {
		sum += e.CompositeScore
	}
	return sum / float64(len(entries))
}

// TopInstitutionsForTeam counts, per institution, the rookies whose team code
// equals team exactly. Institutions with no match are omitted, so an unknown
// team yields an empty slice.
func TopInstitutionsForTeam(rel *relation.Relation, team string) []model.InstitutionCount {
	out := []model.InstitutionCount{}
	for _, inst := range rel.Institutions() {
		n := 0
		for _, e := range rel.Entries(inst) {
			if e.TeamAbbreviation == team {
				n++
			}
		}
		if n > 0 {
			out = append(out, model.InstitutionCount{Institution: inst, Count: n})
		}
	}
	sortCounts(out)
	return out
}

// Teams lists distinct team codes in order of first appearance.
func Teams(rel *relation.Relation) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, inst := range rel.Institutions() {
		for _, e := range rel.Entries(inst) {
			if _, ok := seen[e.TeamAbbreviation]; ok {
				continue
			}
			seen[e.TeamAbbreviation] = struct{}{}
			out = append(out, e.TeamAbbreviation)
		}
	}
	return out
}

// SortedAverages flattens an average map into ascending institution order.
func SortedAverages(avgs map[string]float64) []model.InstitutionAverage {
	out := make([]model.InstitutionAverage, 0, len(avgs))
	for inst, avg := range avgs {
		out = append(out, model.InstitutionAverage{Institution: inst, Average: avg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Institution < out[j].Institution })
	return out
}

// Limit truncates counts to the first n. Non-positive n means no limit.
func Limit(counts []model.InstitutionCount, n int) []model.InstitutionCount {
	if n <= 0 || n >= len(counts) {
		return counts
	}
	return counts[:n]
}

func sortCounts(counts []model.InstitutionCount) {
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
}
