package dataset

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrInvalidTable = errors.New("invalid table name")
	ErrLoadDataset  = errors.New("load dataset failed")

	errInfiniteStat = errors.New("statistic must be finite")
)
