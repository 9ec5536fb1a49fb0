package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/draftroots/internal/apicheck"
	"github.com/okian/draftroots/pkg/logger"
)

// Default configuration constants.
const (
	defaultWorkers      = 2 // multiplier for runtime.NumCPU()
	defaultTimeout      = 30 * time.Second
	defaultCheckTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9080", "Base URL of the service")
		workers    = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent team fetchers")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		outputFile = flag.String("output", "", "Write everything fetched to this JSON file")
		verbose    = flag.Bool("verbose", false, "Log every team fetch")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		apicheck.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		_, _ = os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultCheckTimeout)
	defer cancel()

	config := &apicheck.Config{
		BaseURL:    *baseURL,
		Workers:    *workers,
		Timeout:    *timeout,
		OutputFile: *outputFile,
		Verbose:    *verbose,
	}

	if _, err := apicheck.Run(ctx, config); err != nil {
		_, _ = os.Stderr.WriteString("Check failed: " + err.Error() + "\n")
		cancel()
		os.Exit(1)
	}
}
