// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load layers defaults, an optional YAML file and environment variables.
// - External errors are wrapped with this package's sentinel kinds.
package config

// Log formats accepted by log_format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// DatasetPath points at the roster history (.csv, .db, .sqlite, .sqlite3).
	DatasetPath string `koanf:"dataset_path"`

	// DatasetTable names the table to read from a SQLite dataset.
	DatasetTable string `koanf:"dataset_table"`

	// UndraftedSentinel is the draft_year value meaning "never drafted".
	UndraftedSentinel string `koanf:"undrafted_sentinel"`

	// WatchDataset reloads the dataset whenever the file changes.
	WatchDataset bool `koanf:"watch_dataset"`

	// MaxListLimit caps the limit query parameter on list endpoints.
	MaxListLimit int `koanf:"max_list_limit"`

	// MetricsNamespace and MetricsSubsystem prefix every exported metric.
	MetricsNamespace string `koanf:"metrics_namespace"`
	MetricsSubsystem string `koanf:"metrics_subsystem"`

	// Environment, when set, is attached to every metric as the env label.
	Environment string `koanf:"environment"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         LogFormatText,
		Addr:              ":9080",
		DatasetPath:       "all_seasons.csv",
		DatasetTable:      "all_seasons",
		UndraftedSentinel: "Undrafted",
		WatchDataset:      false,
		MaxListLimit:      100,
		MetricsNamespace:  "draftroots",
		MetricsSubsystem:  "core",
	}
}
