// Package dataset loads the roster history from CSV files or SQLite tables.
package dataset

import (
	"context"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/okian/draftroots/internal/domain/model"
)

// Required column names.
const (
	ColPlayerName = "player_name"
	ColCollege    = "college"
	ColTeam       = "team_abbreviation"
	ColSeason     = "season"
	ColDraftYear  = "draft_year"
	ColNetRating  = "net_rating"
	ColPoints     = "pts"
	ColRebounds   = "reb"
	ColAssists    = "ast"
	ColTSPct      = "ts_pct"
	ColUsgPct     = "usg_pct"
)

// RequiredColumns is every column the loaders must find.
var RequiredColumns = []string{ //nolint:gochecknoglobals // fixed schema
	ColPlayerName, ColCollege, ColTeam, ColSeason, ColDraftYear,
	ColNetRating, ColPoints, ColRebounds, ColAssists, ColTSPct, ColUsgPct,
}

// Loader reads a complete record set.
type Loader interface {
	Load(ctx context.Context) ([]model.PlayerSeasonRecord, error)
}

// Option applies a configuration option to loaders created by Open.
type Option func(*options)

type options struct {
	table string
}

// WithTable sets the SQLite table to read. Ignored for CSV sources.
func WithTable(table string) Option {
	return func(o *options) {
		if table != "" {
			o.table = table
		}
	}
}

// Open picks a loader from the file extension of path.
func Open(path string, opts ...Option) (Loader, error) {
	o := &options{table: DefaultTable}
	for _, opt := range opts {
		opt(o)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return NewCSVLoader(path), nil
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteLoader(path, o.table)
	default:
		return nil, &model.ConfigurationError{Source: path}
	}
}

// Load opens path and reads it in one call.
func Load(ctx context.Context, path string, opts ...Option) ([]model.PlayerSeasonRecord, error) {
	l, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	return l.Load(ctx)
}

// columnIndex resolves required column positions from a header row.
func columnIndex(source string, header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, &model.ConfigurationError{Column: col, Source: source}
		}
	}
	return idx, nil
}

// recordFrom maps one raw row onto a PlayerSeasonRecord.
func recordFrom(row int, idx map[string]int, values []string) (model.PlayerSeasonRecord, error) {
	get := func(col string) string {
		i := idx[col]
		if i >= len(values) {
			return ""
		}
		return values[i]
	}

	rec := model.PlayerSeasonRecord{
		PlayerName:       get(ColPlayerName),
		College:          get(ColCollege),
		TeamAbbreviation: get(ColTeam),
		Season:           strings.TrimSpace(get(ColSeason)),
		DraftYear:        strings.TrimSpace(get(ColDraftYear)),
	}

	stats := []struct {
		col string
		dst *float64
	}{
		{ColPoints, &rec.Stats.Points},
		{ColRebounds, &rec.Stats.Rebounds},
		{ColAssists, &rec.Stats.Assists},
		{ColNetRating, &rec.Stats.NetRating},
		{ColTSPct, &rec.Stats.TrueShooting},
		{ColUsgPct, &rec.Stats.Usage},
	}
	for _, s := range stats {
		v, err := parseStat(get(s.col))
		if err != nil {
			return model.PlayerSeasonRecord{}, &model.ParseError{Row: row, Column: s.col, Value: get(s.col), Err: err}
		}
		*s.dst = v
	}
	return rec, nil
}

// parseStat returns NaN for missing values. Infinite values are rejected.
func parseStat(v string) (float64, error) {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "", "na", "nan", "null":
		return math.NaN(), nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) {
		return 0, errInfiniteStat
	}
	return f, nil
}
