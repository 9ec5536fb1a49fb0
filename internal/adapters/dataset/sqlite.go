package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/glebarez/go-sqlite" // registers the "sqlite" driver

	"github.com/okian/draftroots/internal/domain/model"
)

// DefaultTable is the SQLite table read when none is configured.
const DefaultTable = "all_seasons"

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteLoader reads records from a table in a SQLite database file.
type SQLiteLoader struct {
	path  string
	table string
}

// NewSQLiteLoader creates a loader for table in the database at path.
func NewSQLiteLoader(path, table string) (*SQLiteLoader, error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}
	return &SQLiteLoader{path: path, table: table}, nil
}

// Load reads every row of the table in rowid order.
func (l *SQLiteLoader) Load(ctx context.Context) ([]model.PlayerSeasonRecord, error) {
	db, err := sql.Open("sqlite", l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadDataset, err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+l.table+" ORDER BY rowid") //nolint:gosec // table name is validated
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadDataset, err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadDataset, err)
	}
	idx, err := columnIndex(l.path+"#"+l.table, cols)
	if err != nil {
		return nil, err
	}

	raw := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range raw {
		dest[i] = &raw[i]
	}
	values := make([]string, len(cols))

	var out []model.PlayerSeasonRecord
	for row := 0; rows.Next(); row++ {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrLoadDataset, row, err)
		}
		for i, v := range raw {
			values[i] = v.String
		}
		rec, err := recordFrom(row, idx, values)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadDataset, err)
	}
	return out, nil
}
