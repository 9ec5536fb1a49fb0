package apicheck

import "os"

// ShowHelp prints usage information for the API check tool.
func ShowHelp() {
	_, _ = os.Stdout.WriteString(`Draft Roots API Check
=====================

Queries a running draftroots server and verifies that its answers agree:
connection counts equal the per-team sums, lists are ordered, and
averages stay within [0, 1].

Usage:
  go run ./cmd/check-api [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -workers int
        Number of concurrent team fetchers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Write everything fetched to this JSON file
  -verbose
        Log every team fetch
  -help
        Show this help message

Examples:
  # Check a local server
  go run ./cmd/check-api

  # Check another host and keep the answers
  go run ./cmd/check-api -url http://draftroots:8080 -output answers.json
`)
}
