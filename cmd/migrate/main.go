// Command migrate applies the SQL migrations in ./migrations against the
// configured database using the Atlas CLI.
package main

import (
	"context"
	"log/slog"
	"os"

	"procure-chef/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		logger.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: "file://migrations",
	})
	if err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	logger.Info("migrations applied",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied),
	)
}
