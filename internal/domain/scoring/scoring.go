// Package scoring computes composite performance scores for rookie seasons.
package scoring

import (
	"math"

	"github.com/okian/draftroots/internal/domain/model"
)

// Column is one raw statistic that feeds the composite score.
type Column struct {
	Name  string
	Field func(*model.Stats) *float64
}

// Columns lists the scoring columns in a fixed order.
var Columns = []Column{ //nolint:gochecknoglobals // fixed scoring table
	{Name: "pts", Field: func(s *model.Stats) *float64 { return &s.Points }},
	{Name: "reb", Field: func(s *model.Stats) *float64 { return &s.Rebounds }},
	{Name: "ast", Field: func(s *model.Stats) *float64 { return &s.Assists }},
	{Name: "net_rating", Field: func(s *model.Stats) *float64 { return &s.NetRating }},
	{Name: "ts_pct", Field: func(s *model.Stats) *float64 { return &s.TrueShooting }},
	{Name: "usg_pct", Field: func(s *model.Stats) *float64 { return &s.Usage }},
}

// Range is the observed minimum and maximum of one column.
type Range struct {
	Min float64
	Max float64
}

// Normalize maps v into [0,1]. A column without variance maps to 0.
func (r Range) Normalize(v float64) float64 {
	if r.Max == r.Min {
		return 0
	}
	return (v - r.Min) / (r.Max - r.Min)
}

// Normalizer scores a rookie set. Scores depend on the min and max of every
// column across the whole set, so they must be recomputed whenever the set changes.
type Normalizer struct {
	columns []Column
}

// NewNormalizer creates a normalizer over the default scoring columns.
func NewNormalizer() *Normalizer {
	return &Normalizer{columns: Columns}
}

// Score fills missing or infinite statistics with 0, min-max normalizes each column
// across rookies, and sets CompositeScore to the mean of the normalized
// values. The slice is modified in place and returned.
func (n *Normalizer) Score(rookies []model.RookieRecord) []model.RookieRecord {
	if len(rookies) == 0 {
		return rookies
	}

	ranges := make([]Range, len(n.columns))
	for c, col := range n.columns {
		r := Range{Min: math.Inf(1), Max: math.Inf(-1)}
		for i := range rookies {
			p := col.Field(&rookies[i].Stats)
			if math.IsNaN(*p) || math.IsInf(*p, 0) {
				*p = 0
			}
			r.Min = math.Min(r.Min, *p)
			r.Max = math.Max(r.Max, *p)
		}
		ranges[c] = r
	}

	for i := range rookies {
		sum := 0.0
		for c, col := range n.columns {
			sum += ranges[c].Normalize(*col.Field(&rookies[i].Stats))
		}
		rookies[i].CompositeScore = sum / float64(len(n.columns))
	}
	return rookies
}
