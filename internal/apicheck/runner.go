package apicheck

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/draftroots/pkg/logger"
)

// Run executes the complete check and returns the statistics gathered.
// Any violation makes it fail with ErrInconsistent.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Named("apicheck")

	log.Info(ctx, "starting draftroots API check",
		logger.String("baseURL", config.BaseURL),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Any("verbose", config.Verbose))

	client := newHTTPClient(config.BaseURL, config.Timeout)
	defer func() {
		stats.Requests = int(client.requests.Load())
		stats.Failed = int(client.failed.Load())
		stats.Duration = time.Since(stats.StartTime)
		displayFinalStats(ctx, stats)
	}()

	// Step 1: Check service health
	if _, err := client.get(ctx, "/healthz"); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}

	// Step 2: Fetch institution-wide answers
	snap := &Snapshot{}
	if err := client.getJSON(ctx, "/colleges/connections", &snap.Connections); err != nil {
		return stats, fmt.Errorf("connections: %w", err)
	}
	if err := client.getJSON(ctx, "/colleges/averages", &snap.Averages); err != nil {
		return stats, fmt.Errorf("averages: %w", err)
	}
	if err := client.getJSON(ctx, "/teams", &snap.Teams); err != nil {
		return stats, fmt.Errorf("teams: %w", err)
	}
	stats.Institutions = len(snap.Connections)
	stats.Teams = len(snap.Teams)

	// Step 3: Fetch every team concurrently
	byTeam, err := fetchTeams(ctx, client, snap.Teams, config.Workers, config.Verbose)
	if err != nil {
		return stats, fmt.Errorf("team colleges: %w", err)
	}
	snap.ByTeam = byTeam

	// Step 4: Save the snapshot when asked
	if config.OutputFile != "" {
		if err := saveSnapshot(ctx, config.OutputFile, snap); err != nil {
			log.Warn(ctx, "failed to save snapshot", logger.Error(err))
		}
	}

	// Step 5: Verify results
	violations := Verify(snap)
	stats.Violations = len(violations)
	for _, v := range violations {
		log.Error(ctx, "violation", logger.String("detail", v))
	}
	if len(violations) > 0 {
		return stats, fmt.Errorf("%w: %d violations", ErrInconsistent, len(violations))
	}

	log.Info(ctx, "check completed successfully")
	return stats, nil
}

// saveSnapshot writes the fetched answers as indented JSON.
func saveSnapshot(ctx context.Context, filename string, snap *Snapshot) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(filename, append(data, '\n'), filePermission); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	logger.Named("apicheck").Info(ctx, "snapshot saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats logs the final run statistics.
func displayFinalStats(ctx context.Context, stats *Stats) {
	logger.Named("apicheck").Info(ctx, "final statistics",
		logger.Int("requests", stats.Requests),
		logger.Int("failed", stats.Failed),
		logger.Int("teams", stats.Teams),
		logger.Int("institutions", stats.Institutions),
		logger.Int("violations", stats.Violations),
		logger.String("duration", stats.Duration.String()))
}
