// Command report builds weather reports from a CSV file and prints them to
// stdout.
//
// Usage:
//
//	go run ./cmd/report -csv data/weather.csv -mode both
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/tidewater-labs/weather-report-service/internal/config"
	"github.com/tidewater-labs/weather-report-service/internal/observability"
	"github.com/tidewater-labs/weather-report-service/internal/report"
	"github.com/tidewater-labs/weather-report-service/internal/source"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	csvPath := flag.String("csv", cfg.CSVPath, "path to the weather CSV file")
	mode := flag.String("mode", "both", "which report to print: overview, daily, or both")
	flag.Parse()

	kinds, err := kindsForMode(*mode)
	if err != nil {
		flag.Usage()
		return err
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	src := source.NewFileSource(*csvPath, logger, metrics)
	svc := report.NewService(src, logger, metrics)

	ctx := context.Background()
	for i, kind := range kinds {
		summary, err := svc.Build(ctx, kind)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(summary.Text)
	}

	return nil
}

func kindsForMode(mode string) ([]report.Kind, error) {
	switch mode {
	case "overview":
		return []report.Kind{report.KindOverview}, nil
	case "daily":
		return []report.Kind{report.KindDaily}, nil
	case "both":
		return []report.Kind{report.KindOverview, report.KindDaily}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}
