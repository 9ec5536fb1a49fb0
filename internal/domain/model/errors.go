package model

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for data quality failures. These allow errors.Is from callers.
var (
	ErrParse         = errors.New("parse error")
	ErrConfiguration = errors.New("configuration error")
)

// ParseError reports a field value that could not be interpreted.
// Row is the zero-based index into the record set, or -1 when unknown.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %s %q", e.Column, e.Value)
	if e.Row >= 0 {
		msg = fmt.Sprintf("row %d: %s", e.Row, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrParse) hold for every ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error { return e.Err }

// ConfigurationError reports a dataset that does not carry a required column,
// or a source that cannot be read at all.
type ConfigurationError struct {
	Column string
	Source string
}

func (e *ConfigurationError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("unsupported dataset source %q", e.Source)
	}
	return fmt.Sprintf("dataset %q: missing required column %q", e.Source, e.Column)
}

// Is makes errors.Is(err, ErrConfiguration) hold for every ConfigurationError.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }
