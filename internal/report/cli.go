package report

import "os"

// ShowHelp prints usage information for the report tool.
func ShowHelp() {
	_, _ = os.Stdout.WriteString(`Draft Roots Report
==================

Answers college-to-NBA draft questions from a roster history dataset.

Usage:
  go run ./cmd/report [options]

Options:
  -data string
        Dataset file, .csv or SQLite (.db, .sqlite, .sqlite3) (default "all_seasons.csv")
  -table string
        Table to read from a SQLite dataset (default "all_seasons")
  -undrafted string
        draft_year value meaning "never drafted" (default "Undrafted")
  -query string
        connections | averages | team | teams (default "connections")
  -team string
        Team abbreviation for -query team, e.g. BOS (case-sensitive)
  -top int
        Show only the first N rows of list results (default: all)
  -format string
        text | json | yaml (default "text")
  -interactive
        Run the interactive menu
  -log-level string
        debug | info | warn | error (default "warn")
  -help
        Show this help message

Examples:
  # Colleges that supplied the most drafted rookies
  go run ./cmd/report -query connections -top 10

  # Average rookie composite score per college as YAML
  go run ./cmd/report -query averages -format yaml

  # Colleges most often drafted by Boston
  go run ./cmd/report -query team -team BOS
`)
}
