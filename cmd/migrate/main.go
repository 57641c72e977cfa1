// Command migrate applies the declarative schema under migrations/ to the
// configured database using the Atlas CLI.
//
// Usage:
//
//	go run ./cmd/migrate            # apply migrations/001_initial_schema.sql
//	go run ./cmd/migrate -dry-run   # print the planned DDL without applying
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"hotel-frontdesk/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

const defaultDevURL = "docker://postgres/16/dev?search_path=public"

func main() {
	var (
		schemaFile = flag.String("schema", "migrations/001_initial_schema.sql", "desired schema file")
		devURL     = flag.String("dev-url", defaultDevURL, "dev database used by Atlas to plan the diff")
		dryRun     = flag.Bool("dry-run", false, "plan only, do not apply")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		logger.Error("failed to load database config", "error", err)
		os.Exit(1)
	}

	if err := run(dbCfg, *schemaFile, *devURL, *dryRun, logger); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(dbCfg config.DBConfig, schemaFile, devURL string, dryRun bool, logger *slog.Logger) error {
	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		return fmt.Errorf("failed to initialize atlas client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	params := &atlasexec.SchemaApplyParams{
		URL:    dbCfg.BuildDSN(),
		To:     "file://" + schemaFile,
		DevURL: devURL,
		DryRun: dryRun,
	}

	result, err := client.SchemaApply(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	if result.Changes.Error != nil {
		return fmt.Errorf("schema apply reported an error: %s", result.Changes.Error.Text)
	}

	logger.Info("schema apply finished",
		"applied", len(result.Changes.Applied),
		"pending", len(result.Changes.Pending),
		"dry_run", dryRun,
	)
	return nil
}
