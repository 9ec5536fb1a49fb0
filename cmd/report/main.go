package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/draftroots/internal/adapters/dataset"
	"github.com/okian/draftroots/internal/domain/rookie"
	"github.com/okian/draftroots/internal/report"
	"github.com/okian/draftroots/pkg/logger"
)

func main() {
	var (
		dataPath    = flag.String("data", "all_seasons.csv", "Dataset file (.csv, .db, .sqlite, .sqlite3)")
		table       = flag.String("table", dataset.DefaultTable, "Table to read from a SQLite dataset")
		sentinel    = flag.String("undrafted", rookie.DefaultUndraftedSentinel, "draft_year value meaning never drafted")
		queryName   = flag.String("query", report.QueryConnections, "connections | averages | team | teams")
		team        = flag.String("team", "", "Team abbreviation for -query team")
		top         = flag.Int("top", 0, "Show only the first N rows of list results")
		format      = flag.String("format", string(report.FormatText), "text | json | yaml")
		interactive = flag.Bool("interactive", false, "Run the interactive menu")
		logLevel    = flag.String("log-level", "warn", "debug | info | warn | error")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		report.ShowHelp()
		return
	}

	// Logs go to stderr so stdout carries only the report.
	if err := logger.Init(logger.WithWriter(os.Stderr)); err != nil {
		_, _ = os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := logger.SetLevelString(*logLevel); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	f, err := report.ParseFormat(*format)
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := &report.Config{
		DataPath:    *dataPath,
		Table:       *table,
		Sentinel:    *sentinel,
		Query:       *queryName,
		Team:        *team,
		Top:         *top,
		Format:      f,
		Interactive: *interactive,
	}
	if err := report.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		_, _ = os.Stderr.WriteString("report failed: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}
