package report

import (
	"context"
	"errors"
	"fmt"
	"io"

	service "github.com/okian/draftroots/internal/app"
	"github.com/okian/draftroots/pkg/logger"
)

// Query names accepted by Run.
const (
	QueryConnections = service.QueryConnections
	QueryAverages    = service.QueryAverages
	QueryTeam        = service.QueryTeam
	QueryTeams       = service.QueryTeams
)

// Sentinel kinds for report errors.
var (
	ErrUnknownQuery = errors.New("unknown query")
	ErrMissingTeam  = errors.New("team query needs a team abbreviation")
)

// Config holds one report invocation.
type Config struct {
	DataPath    string // dataset file (.csv or SQLite)
	Table       string // SQLite table name
	Sentinel    string // draft_year value meaning undrafted
	Query       string // connections, averages, team or teams
	Team        string // team code for the team query
	Top         int    // truncate list results; 0 keeps all
	Format      Format // text, json or yaml
	Interactive bool   // run the menu loop instead of a single query
}

// Run loads the dataset once and answers the configured query, or serves
// the interactive menu reading from in. Results go to out.
func Run(ctx context.Context, cfg *Config, in io.Reader, out io.Writer) error {
	svc := service.New(
		service.WithLogger(logger.Named("report")),
		service.WithDataset(cfg.DataPath, cfg.Table),
		service.WithUndraftedSentinel(cfg.Sentinel),
	)
	if err := svc.Load(ctx); err != nil {
		return err
	}

	if cfg.Interactive {
		return NewMenu(svc, in, out, cfg.Format, cfg.Top).Run(ctx)
	}
	return Answer(ctx, svc, cfg, out)
}

// Answer runs a single query against s and renders it.
func Answer(ctx context.Context, s *service.Service, cfg *Config, out io.Writer) error {
	switch cfg.Query {
	case QueryConnections:
		counts, err := s.ConnectionCounts(ctx, cfg.Top)
		if err != nil {
			return err
		}
		return Counts(out, cfg.Format, counts)

	case QueryAverages:
		avgs, err := s.AverageComposite(ctx)
		if err != nil {
			return err
		}
		return Averages(out, cfg.Format, avgs)

	case QueryTeam:
		if cfg.Team == "" {
			return ErrMissingTeam
		}
		counts, err := s.TopInstitutionsForTeam(ctx, cfg.Team, cfg.Top)
		if err != nil {
			return err
		}
		return Counts(out, cfg.Format, counts)

	case QueryTeams:
		teams, err := s.Teams(ctx)
		if err != nil {
			return err
		}
		return Teams(out, cfg.Format, teams)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownQuery, cfg.Query)
	}
}
