// Package service runs draft queries against the loaded roster history.
// The base dataset is read-only; every query derives its own rookie set
// and institution relation and discards them once answered.
package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/draftroots/internal/adapters/dataset"
	"github.com/okian/draftroots/internal/domain/model"
	"github.com/okian/draftroots/internal/domain/pipeline"
	"github.com/okian/draftroots/internal/domain/query"
	"github.com/okian/draftroots/internal/domain/rookie"
	"github.com/okian/draftroots/pkg/logger"
	"github.com/okian/draftroots/pkg/metrics"
)

// Query names used for metrics and logs.
const (
	QueryConnections = "connections"
	QueryAverages    = "averages"
	QueryTeam        = "team"
	QueryTeams       = "teams"
)

// snapshot is one immutable generation of the base dataset.
type snapshot struct {
	records  []model.PlayerSeasonRecord
	source   string
	loadedAt time.Time
}

// Service implements the query dependencies of the HTTP API and report CLI.
type Service struct {
	base atomic.Pointer[snapshot]

	// Configuration
	datasetPath  string
	datasetTable string
	sentinel     string

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDataset sets the file Load reads from. table is only used for SQLite.
func WithDataset(path, table string) Option {
	return func(s *Service) {
		s.datasetPath = path
		if table != "" {
			s.datasetTable = table
		}
	}
}

// WithUndraftedSentinel sets the draft_year value meaning "never drafted".
func WithUndraftedSentinel(sentinel string) Option {
	return func(s *Service) {
		if sentinel != "" {
			s.sentinel = sentinel
		}
	}
}

// WithRecords installs an already loaded base dataset.
func WithRecords(records []model.PlayerSeasonRecord) Option {
	return func(s *Service) {
		s.base.Store(&snapshot{records: records, source: "memory", loadedAt: time.Now()})
	}
}

// New constructs a new Service.
func New(opts ...Option) *Service {
	s := &Service{
		datasetTable: dataset.DefaultTable,
		sentinel:     rookie.DefaultUndraftedSentinel,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if snap := s.base.Load(); snap != nil {
		metrics.UpdateDatasetRecords(len(snap.records))
	}
	return s
}

// Load reads the configured dataset and swaps it in. On failure the
// previous dataset stays active.
func (s *Service) Load(ctx context.Context) error {
	if s.datasetPath == "" {
		return ErrNoDatasetPath
	}
	start := time.Now()
	records, err := dataset.Load(ctx, s.datasetPath, dataset.WithTable(s.datasetTable))
	if err != nil {
		metrics.RecordDatasetReload(metrics.OutcomeFailure)
		s.logger.Error(ctx, "dataset load failed",
			logger.String("path", s.datasetPath),
			logger.Error(err),
		)
		return fmt.Errorf("load dataset: %w", err)
	}

	s.base.Store(&snapshot{records: records, source: s.datasetPath, loadedAt: time.Now()})
	metrics.RecordDatasetReload(metrics.OutcomeSuccess)
	metrics.UpdateDatasetRecords(len(records))
	s.logger.Info(ctx, "dataset loaded",
		logger.String("path", s.datasetPath),
		logger.Int("records", len(records)),
		logger.Any("took", time.Since(start)),
	)
	return nil
}

// Watch reloads the dataset whenever its file changes, until ctx is done.
func (s *Service) Watch(ctx context.Context) error {
	if s.datasetPath == "" {
		return ErrNoDatasetPath
	}
	return dataset.Watch(ctx, s.datasetPath, func(ctx context.Context) {
		// Load logs and counts failures; the old dataset keeps serving.
		_ = s.Load(ctx)
	})
}

// ConnectionCounts returns institutions ordered by number of rookies drafted
// from them. limit <= 0 returns all.
func (s *Service) ConnectionCounts(ctx context.Context, limit int) ([]model.InstitutionCount, error) {
	res, err := s.run(ctx, QueryConnections)
	if err != nil {
		return nil, err
	}
	return query.Limit(query.ConnectionCounts(res.Relation), limit), nil
}

// AverageComposite returns the mean rookie composite score per institution.
func (s *Service) AverageComposite(ctx context.Context) (map[string]float64, error) {
	res, err := s.run(ctx, QueryAverages)
	if err != nil {
		return nil, err
	}
	return query.AverageComposite(res.Relation), nil
}

// TopInstitutionsForTeam returns institutions ordered by how many of their
// rookies went to team. An unknown team gives an empty slice.
func (s *Service) TopInstitutionsForTeam(ctx context.Context, team string, limit int) ([]model.InstitutionCount, error) {
	res, err := s.run(ctx, QueryTeam)
	if err != nil {
		return nil, err
	}
	out := query.Limit(query.TopInstitutionsForTeam(res.Relation, team), limit)
	if len(out) == 0 {
		s.logger.Debug(ctx, "no institutions for team", logger.String("team", team))
	}
	return out, nil
}

// Teams lists the team codes that drafted at least one rookie.
func (s *Service) Teams(ctx context.Context) ([]string, error) {
	res, err := s.run(ctx, QueryTeams)
	if err != nil {
		return nil, err
	}
	return query.Teams(res.Relation), nil
}

// run derives a fresh relation from the current base dataset.
func (s *Service) run(ctx context.Context, name string) (pipeline.Result, error) {
	snap := s.base.Load()
	if snap == nil {
		return pipeline.Result{}, ErrNoDataset
	}

	id := uuid.NewString()
	start := time.Now()
	res, err := pipeline.Run(snap.records, rookie.WithUndraftedSentinel(s.sentinel))
	durationMs := float64(time.Since(start).Microseconds()) / 1000
	if err != nil {
		metrics.RecordPipelineRun(metrics.OutcomeFailure, durationMs)
		s.logger.Error(ctx, "pipeline failed",
			logger.String("queryID", id),
			logger.String("query", name),
			logger.Error(err),
		)
		return pipeline.Result{}, err
	}

	metrics.RecordPipelineRun(metrics.OutcomeSuccess, durationMs)
	metrics.RecordQuery(name)
	metrics.UpdateRelationSize(res.Rookies, res.Relation.Len())
	s.logger.Debug(ctx, "pipeline complete",
		logger.String("queryID", id),
		logger.String("query", name),
		logger.Int("rookies", res.Rookies),
		logger.Int("institutions", res.Relation.Len()),
		logger.Int("entries", res.Relation.Size()),
		logger.Float64("durationMs", durationMs),
	)
	return res, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	stats := map[string]interface{}{
		"loaded":            false,
		"undraftedSentinel": s.sentinel,
	}
	if snap := s.base.Load(); snap != nil {
		stats["loaded"] = true
		stats["records"] = len(snap.records)
		stats["source"] = snap.source
		stats["loadedAt"] = snap.loadedAt.UTC().Format(time.RFC3339)
	}
	return stats
}
