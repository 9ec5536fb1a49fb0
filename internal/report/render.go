// Package report renders query results and drives the interactive menu.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okian/draftroots/internal/domain/model"
	"github.com/okian/draftroots/internal/domain/query"
)

// Format selects how results are written.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat accepts text, json or yaml (case-insensitive). Empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Counts writes institution counts, one "{institution}: {count}" line each in text.
func Counts(w io.Writer, f Format, counts []model.InstitutionCount) error {
	if f != FormatText {
		return encode(w, f, counts)
	}
	for _, c := range counts {
		if _, err := fmt.Fprintf(w, "%s: %d\n", c.Institution, c.Count); err != nil {
			return err
		}
	}
	return nil
}

// Averages writes mean composite scores in ascending institution order,
// "{institution}: {avg:.4f}" per line in text.
func Averages(w io.Writer, f Format, avgs map[string]float64) error {
	sorted := query.SortedAverages(avgs)
	if f != FormatText {
		return encode(w, f, sorted)
	}
	for _, a := range sorted {
		if _, err := fmt.Fprintf(w, "%s: %.4f\n", a.Institution, a.Average); err != nil {
			return err
		}
	}
	return nil
}

// Teams writes team codes, one per line in text.
func Teams(w io.Writer, f Format, teams []string) error {
	if f != FormatText {
		if teams == nil {
			teams = []string{}
		}
		return encode(w, f, teams)
	}
	for _, t := range teams {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}

func encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
