// Package apicheck exercises a running draftroots server and verifies that
// its answers agree with each other.
package apicheck

import "time"

// Config holds configuration for one check run.
type Config struct {
	BaseURL    string        // Base URL of the service
	Workers    int           // Number of concurrent team fetchers
	Timeout    time.Duration // HTTP request timeout
	OutputFile string        // Optional JSON snapshot of everything fetched
	Verbose    bool          // Log every team fetch
}

// Snapshot is everything fetched from the server in one run.
type Snapshot struct {
	Connections []Count            `json:"connections"`
	Averages    []Average          `json:"averages"`
	Teams       []string           `json:"teams"`
	ByTeam      map[string][]Count `json:"by_team"`
}

// Count mirrors the institution count shape served by the API.
type Count struct {
	Institution string `json:"institution"`
	Count       int    `json:"count"`
}

// Average mirrors the institution average shape. A nil Average is an
// undefined mean.
type Average struct {
	Institution string   `json:"institution"`
	Average     *float64 `json:"average"`
}

// Stats holds run statistics.
type Stats struct {
	Requests     int
	Failed       int
	Teams        int
	Institutions int
	Violations   int
	StartTime    time.Time
	Duration     time.Duration
}
