// Package model contains domain models passed between layers.
package model

import (
	"encoding/json"
	"math"
)

// Stats holds the raw per-season numbers used for scoring.
// A missing value is represented as NaN.
type Stats struct {
	Points       float64 // pts
	Rebounds     float64 // reb
	Assists      float64 // ast
	NetRating    float64 // net_rating
	TrueShooting float64 // ts_pct
	Usage        float64 // usg_pct
}

// PlayerSeasonRecord is one row of the roster history.
// Records are treated as immutable once loaded.
type PlayerSeasonRecord struct {
	PlayerName       string // player_name
	College          string // institution the player came from
	TeamAbbreviation string // e.g. "BOS"
	Season           string // e.g. "1996-97"
	DraftYear        string // integer text or the undrafted sentinel
	Stats            Stats
}

// RookieRecord is a copy of a PlayerSeasonRecord for the season the player
// was drafted in. CompositeScore is zero until the normalizer runs.
type RookieRecord struct {
	PlayerSeasonRecord
	SeasonYear     int
	DraftYear      int
	CompositeScore float64
}

// Entry is one rookie listed under an institution.
type Entry struct {
	TeamAbbreviation string  `json:"team"`
	PlayerName       string  `json:"player"`
	CompositeScore   float64 `json:"score"`
}

// InstitutionCount pairs an institution with a count of rookies.
type InstitutionCount struct {
	Institution string `json:"institution" yaml:"institution"`
	Count       int    `json:"count" yaml:"count"`
}

// InstitutionAverage pairs an institution with its mean composite score.
type InstitutionAverage struct {
	Institution string  `json:"institution" yaml:"institution"`
	Average     float64 `json:"average" yaml:"average"`
}

// MarshalJSON writes a NaN average as null.
func (a InstitutionAverage) MarshalJSON() ([]byte, error) {
	type plain struct {
		Institution string   `json:"institution"`
		Average     *float64 `json:"average"`
	}
	p := plain{Institution: a.Institution}
	if !math.IsNaN(a.Average) {
		p.Average = &a.Average
	}
	return json.Marshal(p)
}
