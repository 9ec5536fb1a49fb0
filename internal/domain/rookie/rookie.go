// Package rookie selects draft-entry seasons from the roster history.
package rookie

import (
	"errors"
	"strconv"
	"strings"

	"github.com/okian/draftroots/internal/domain/model"
)

// DefaultUndraftedSentinel is the draft_year marker for players who were never drafted.
const DefaultUndraftedSentinel = "Undrafted"

const seasonYearDigits = 4

var errSeasonFormat = errors.New("season must start with a four digit year")

// Option applies a configuration option to Filter.
type Option func(*filter)

// WithUndraftedSentinel overrides the draft_year value meaning "never drafted".
func WithUndraftedSentinel(sentinel string) Option {
	return func(f *filter) {
		if s := strings.TrimSpace(sentinel); s != "" {
			f.sentinel = s
		}
	}
}

type filter struct {
	sentinel string
}

// Filter returns copies of the records whose season start year equals the
// draft year, with net rating clamped to zero. The input slice is not modified.
// Any malformed season or draft year fails the whole call.
func Filter(records []model.PlayerSeasonRecord, opts ...Option) ([]model.RookieRecord, error) {
	f := &filter{sentinel: DefaultUndraftedSentinel}
	for _, opt := range opts {
		opt(f)
	}

	out := make([]model.RookieRecord, 0, len(records)/4)
	for i, rec := range records {
		season, err := SeasonYear(rec.Season)
		if err != nil {
			return nil, &model.ParseError{Row: i, Column: "season", Value: rec.Season, Err: err}
		}
		draft, err := f.draftYear(rec.DraftYear)
		if err != nil {
			return nil, &model.ParseError{Row: i, Column: "draft_year", Value: rec.DraftYear, Err: err}
		}
		if season != draft {
			continue
		}

		r := model.RookieRecord{
			PlayerSeasonRecord: rec,
			SeasonYear:         season,
			DraftYear:          draft,
		}
		// NaN compares false and is left for the normalizer to fill.
		if r.Stats.NetRating < 0 {
			r.Stats.NetRating = 0
		}
		out = append(out, r)
	}
	return out, nil
}

// SeasonYear parses the starting year of a season label such as "1996-97".
func SeasonYear(season string) (int, error) {
	if len(season) < seasonYearDigits {
		return 0, errSeasonFormat
	}
	prefix := season[:seasonYearDigits]
	for _, c := range prefix {
		if c < '0' || c > '9' {
			return 0, errSeasonFormat
		}
	}
	return strconv.Atoi(prefix)
}

// draftYear maps the undrafted sentinel to 0. Seasons are always later than
// year 0, so those records can never match.
func (f *filter) draftYear(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == f.sentinel {
		return 0, nil
	}
	return strconv.Atoi(v)
}
