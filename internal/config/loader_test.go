package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/draftroots/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "all_seasons.csv")
				convey.So(cfg.MaxListLimit, convey.ShouldEqual, 100)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("DRAFTROOTS_ADDR", ":8080")
			_ = os.Setenv("DRAFTROOTS_DATASET_PATH", "/data/rosters.sqlite")
			_ = os.Setenv("DRAFTROOTS_DATASET_TABLE", "seasons")
			_ = os.Setenv("DRAFTROOTS_WATCH_DATASET", "true")
			_ = os.Setenv("DRAFTROOTS_MAX_LIST_LIMIT", "25")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "/data/rosters.sqlite")
				convey.So(cfg.DatasetTable, convey.ShouldEqual, "seasons")
				convey.So(cfg.WatchDataset, convey.ShouldBeTrue)
				convey.So(cfg.MaxListLimit, convey.ShouldEqual, 25)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
# roster source
log_level: debug
addr: ":9090"
dataset_path: "rosters.csv"
undrafted_sentinel: "N/A"
max_list_limit: 10
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("DRAFTROOTS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file and keep other defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "rosters.csv")
				convey.So(cfg.UndraftedSentinel, convey.ShouldEqual, "N/A")
				convey.So(cfg.MaxListLimit, convey.ShouldEqual, 10)
				convey.So(cfg.DatasetTable, convey.ShouldEqual, "all_seasons")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
dataset_path: "rosters.csv"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("DRAFTROOTS_CONFIG", tmpFile)
			_ = os.Setenv("DRAFTROOTS_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")              // Overridden by env
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "rosters.csv") // From file
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("DRAFTROOTS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("DRAFTROOTS_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("DRAFTROOTS_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a non-positive list limit", func() {
			_ = os.Setenv("DRAFTROOTS_MAX_LIST_LIMIT", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "max_list_limit")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading observability settings from the environment", func() {
			_ = os.Setenv("DRAFTROOTS_LOG_FORMAT", "json")
			_ = os.Setenv("DRAFTROOTS_METRICS_NAMESPACE", "nba")
			_ = os.Setenv("DRAFTROOTS_METRICS_SUBSYSTEM", "draft")
			_ = os.Setenv("DRAFTROOTS_ENVIRONMENT", "staging")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then they are applied", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogFormat, convey.ShouldEqual, config.LogFormatJSON)
				convey.So(cfg.MetricsNamespace, convey.ShouldEqual, "nba")
				convey.So(cfg.MetricsSubsystem, convey.ShouldEqual, "draft")
				convey.So(cfg.Environment, convey.ShouldEqual, "staging")
			})
		})

		convey.Convey("When loading config with an unknown log format", func() {
			_ = os.Setenv("DRAFTROOTS_LOG_FORMAT", "xml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "log_format")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("DRAFTROOTS_MAX_LIST_LIMIT", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"DRAFTROOTS_CONFIG",
		"DRAFTROOTS_LOG_LEVEL",
		"DRAFTROOTS_ADDR",
		"DRAFTROOTS_DATASET_PATH",
		"DRAFTROOTS_DATASET_TABLE",
		"DRAFTROOTS_UNDRAFTED_SENTINEL",
		"DRAFTROOTS_WATCH_DATASET",
		"DRAFTROOTS_MAX_LIST_LIMIT",
		"DRAFTROOTS_LOG_FORMAT",
		"DRAFTROOTS_METRICS_NAMESPACE",
		"DRAFTROOTS_METRICS_SUBSYSTEM",
		"DRAFTROOTS_ENVIRONMENT",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "draftroots-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
