package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/okian/draftroots/internal/domain/model"
)

// CSVLoader reads records from a CSV file with a header row.
type CSVLoader struct {
	path string
}

// NewCSVLoader creates a loader for the CSV file at path.
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

// Load reads the whole file.
func (l *CSVLoader) Load(ctx context.Context) ([]model.PlayerSeasonRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadDataset, err)
	}
	defer func() { _ = f.Close() }()
	return ReadCSV(ctx, l.path, f)
}

// ReadCSV parses records from r. source names the input in errors.
func ReadCSV(ctx context.Context, source string, r io.Reader) ([]model.PlayerSeasonRecord, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &model.ConfigurationError{Column: RequiredColumns[0], Source: source}
		}
		return nil, fmt.Errorf("%w: read header: %w", ErrLoadDataset, err)
	}
	idx, err := columnIndex(source, header)
	if err != nil {
		return nil, err
	}

	var out []model.PlayerSeasonRecord
	for row := 0; ; row++ {
		if row%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrLoadDataset, err)
			}
		}
		values, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrLoadDataset, row, err)
		}
		rec, err := recordFrom(row, idx, values)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
