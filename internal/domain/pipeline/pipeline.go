// Package pipeline turns the base roster into an institution relation.
package pipeline

import (
	"fmt"

	"github.com/okian/draftroots/internal/domain/model"
	"github.com/okian/draftroots/internal/domain/relation"
	"github.com/okian/draftroots/internal/domain/rookie"
	"github.com/okian/draftroots/internal/domain/scoring"
)

// Result is the short-lived output of one pipeline run.
type Result struct {
	Relation *relation.Relation
	Rookies  int
}

// Run filters, scores and groups records. It either succeeds completely or
// returns an error and no relation. records is never modified.
func Run(records []model.PlayerSeasonRecord, opts ...rookie.Option) (Result, error) {
	rookies, err := rookie.Filter(records, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("filter rookies: %w", err)
	}
	rookies = scoring.NewNormalizer().Score(rookies)
	return Result{
		Relation: relation.Build(rookies),
		Rookies:  len(rookies),
	}, nil
}
