// Package relation groups scored rookies by the institution they came from.
package relation

import "github.com/okian/draftroots/internal/domain/model"

// Relation maps institution name to the rookies drafted from it.
// Institutions iterate in order of first appearance; entries keep source order.
// Every institution present has at least one entry.
type Relation struct {
	order   []string
	entries map[string][]model.Entry
}

// Build groups rookies by College in a single pass.
func Build(rookies []model.RookieRecord) *Relation {
	r := &Relation{entries: make(map[string][]model.Entry)}
	for i := range rookies {
		rk := &rookies[i]
		if _, ok := r.entries[rk.College]; !ok {
			r.order = append(r.order, rk.College)
		}
		r.entries[rk.College] = append(r.entries[rk.College], model.Entry{
			TeamAbbreviation: rk.TeamAbbreviation,
			PlayerName:       rk.PlayerName,
			CompositeScore:   rk.CompositeScore,
		})
	}
	return r
}

// Institutions returns institution names in iteration order.
func (r *Relation) Institutions() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Entries returns the entries for an institution, or nil if it is absent.
func (r *Relation) Entries(institution string) []model.Entry {
	return r.entries[institution]
}

// Len returns the number of institutions.
func (r *Relation) Len() int { return len(r.order) }

// Size returns the total number of entries across all institutions.
func (r *Relation) Size() int {
	n := 0
	for _, es := range r.entries {
		n += len(es)
	}
	return n
}
