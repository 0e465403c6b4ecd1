// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/sbasearch"
	"github.com/poiesic/sbasearch/config"
	"github.com/poiesic/sbasearch/core"
	"github.com/poiesic/sbasearch/pipeline"
	"github.com/urfave/cli/v2"
)

// logMonitor reports run stages through the default logger.
type logMonitor struct{}

var _ pipeline.RunMonitor = (*logMonitor)(nil)

func (m *logMonitor) FiltersBuilt(_ *core.Filters, activeCount int) {
	slog.Info("filters built", "activeFilters", activeCount)
}

func (m *logMonitor) SearchCompleted(totalResults int) {
	slog.Info("search completed", "totalResults", totalResults)
}

func (m *logMonitor) EnrichmentProgress(done, total int) {
	slog.Debug("profile fetched", "done", done, "total", total)
}

func (m *logMonitor) RunCompleted(summary *core.RunSummary) {
	slog.Info("run completed", "exported", summary.Exported)
}

// inputEnvVar is consulted when run is invoked without --input.
const inputEnvVar = "SBASEARCH_INPUT"

func main() {
	app := &cli.App{
		Name:  "sbasearch",
		Usage: "Search SBA-certified businesses and export enriched records",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Execute one search run and export the matched businesses",
				Action: runCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "Path to the JSON run input ('-' for stdin; falls back to " + inputEnvVar + ")",
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to the YAML configuration file",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to the dataset database directory (omit to print records to stdout)",
					},
				},
			},
			{
				Name:   "export",
				Usage:  "Print the stored records of a run as JSON",
				Action: exportCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the dataset database directory",
						Required: true,
					},
					&cli.Uint64Flag{
						Name:  "run",
						Usage: "Run id (default: most recent run)",
					},
				},
			},
			{
				Name:   "summary",
				Usage:  "Print the stored summary of a run as JSON",
				Action: summaryCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the dataset database directory",
						Required: true,
					},
					&cli.Uint64Flag{
						Name:  "run",
						Usage: "Run id (default: most recent run)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func runCommand(c *cli.Context) error {
	ctx := context.Background()

	input, err := readInput(c.String("input"))
	if err != nil {
		return err
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	app, err := sbasearch.New(c.String("db"),
		sbasearch.WithConfig(cfg),
		sbasearch.WithMonitor(&logMonitor{}),
	)
	if err != nil {
		return fmt.Errorf("failed to open dataset: %w", err)
	}
	defer app.Close()

	result, err := app.Run(ctx, input)
	if err != nil {
		return err
	}

	slog.Info("run finished",
		"totalResults", result.Summary.TotalResults,
		"exported", result.Summary.Exported,
		"runId", result.Summary.RunID,
	)

	if c.String("db") == "" {
		return printJSON(result.Records)
	}
	return nil
}

func exportCommand(c *cli.Context) error {
	ctx := context.Background()

	app, err := sbasearch.New(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open dataset: %w", err)
	}
	defer app.Close()

	runID, err := resolveRunID(ctx, app, c.Uint64("run"))
	if err != nil {
		return err
	}

	records, err := app.Dataset().GetRecords(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to read run %d: %w", runID, err)
	}
	return printJSON(records)
}

func summaryCommand(c *cli.Context) error {
	ctx := context.Background()

	app, err := sbasearch.New(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open dataset: %w", err)
	}
	defer app.Close()

	runID, err := resolveRunID(ctx, app, c.Uint64("run"))
	if err != nil {
		return err
	}

	summary, err := app.Dataset().GetRunSummary(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to read run %d: %w", runID, err)
	}
	return printJSON(summary)
}

func resolveRunID(ctx context.Context, app *sbasearch.App, requested uint64) (uint64, error) {
	if requested != 0 {
		return requested, nil
	}
	latest, err := app.Dataset().LatestRunID(ctx)
	if err != nil {
		return 0, fmt.Errorf("no runs stored: %w", err)
	}
	return latest, nil
}

// readInput loads the run input from a file, stdin, or the environment.
func readInput(path string) (*core.RunInput, error) {
	var data []byte
	var err error

	switch {
	case path == "-":
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	case path != "":
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
	default:
		env := os.Getenv(inputEnvVar)
		if env == "" {
			return nil, fmt.Errorf("no input: supply --input or set %s", inputEnvVar)
		}
		data = []byte(env)
	}

	var input core.RunInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("parsing input: %w", err)
	}
	return &input, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
