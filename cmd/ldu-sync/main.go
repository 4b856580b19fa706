// ldu-sync imports the LDU device inventory workbook and reconciles it
// against the stored rows.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/mquispe/guias-tracker/internal/assets"
	"github.com/mquispe/guias-tracker/internal/common"
	"github.com/mquispe/guias-tracker/internal/pipeline"
	"github.com/mquispe/guias-tracker/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "ldu-sync <workbook.xlsx>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	db, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	syncer := assets.NewSyncer(repository.NewAssetRepository(db, logger), cfg.LDU, logger)

	result, err := syncer.Sync(ctx, path, pipeline.SourceFileID(path))
	if err != nil {
		logger.Error("sync failed", "file", path, "error", err)
		os.Exit(1)
	}

	for _, rej := range result.Rejected {
		logger.Warn("row rejected", "row", rej.RowNumber, "imei", rej.IMEI, "reason", rej.Message)
	}
	logger.Info("sync complete",
		"total", result.Total,
		"created", result.Created,
		"updated", result.Updated,
		"unchanged", result.Unchanged,
		"absent", result.Absent,
		"rejected", len(result.Rejected),
	)
}
