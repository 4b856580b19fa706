// guia-export writes an XLSX report of the stored extractions.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/mquispe/guias-tracker/internal/common"
	"github.com/mquispe/guias-tracker/internal/export"
	"github.com/mquispe/guias-tracker/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 || len(os.Args) > 4 {
		logger.Error("usage", "cmd", "guia-export <out.xlsx> [from YYYY-MM-DD] [to YYYY-MM-DD]")
		os.Exit(2)
	}
	out := os.Args[1]

	var from, to *time.Time
	if len(os.Args) >= 3 {
		t, err := time.Parse("2006-01-02", os.Args[2])
		if err != nil {
			logger.Error("invalid from date", "arg", os.Args[2], "error", err)
			os.Exit(2)
		}
		from = &t
	}
	if len(os.Args) == 4 {
		t, err := time.Parse("2006-01-02", os.Args[3])
		if err != nil {
			logger.Error("invalid to date", "arg", os.Args[3], "error", err)
			os.Exit(2)
		}
		to = &t
	}

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	svc := export.NewService(repository.NewDocumentRepository(db, logger), logger)
	data, err := svc.ExportDocumentsXLSX(ctx, from, to)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		logger.Error("write workbook", "path", out, "error", err)
		os.Exit(1)
	}
	logger.Info("export written", "path", out, "bytes", len(data))
}
