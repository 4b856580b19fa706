// guia-batch sweeps a directory of scanned documents, processes each one, and
// stores the results. Documents run in parallel up to the worker limit; each
// document is still processed single-threaded internally.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mquispe/guias-tracker/internal/common"
	"github.com/mquispe/guias-tracker/internal/fields"
	"github.com/mquispe/guias-tracker/internal/ingest"
	"github.com/mquispe/guias-tracker/internal/ocr"
	"github.com/mquispe/guias-tracker/internal/pipeline"
	"github.com/mquispe/guias-tracker/internal/raster"
	"github.com/mquispe/guias-tracker/internal/repository"
	"github.com/mquispe/guias-tracker/internal/signature"
	"github.com/mquispe/guias-tracker/internal/table"
	"github.com/mquispe/guias-tracker/internal/template"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "guia-batch <directory>")
		os.Exit(2)
	}
	dir := os.Args[1]

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	engine, err := ocr.NewTesseractEngine(ocr.Config{
		Languages:   cfg.OCR.Languages,
		TessdataDir: cfg.OCR.TessdataDir,
	})
	if err != nil {
		logger.Error("init detection engine", "error", err)
		os.Exit(1)
	}
	defer func() { _ = engine.Close() }()

	catalog, err := template.Load(cfg.OCR.TemplateFile)
	if err != nil {
		logger.Error("load template catalog", "error", err)
		os.Exit(1)
	}

	processor := pipeline.NewProcessor(
		raster.NewReader(cfg.OCR.RenderDPI, logger),
		ocr.NewDetector(engine, logger),
		table.NewExtractor(table.Config{Catalog: catalog}, engine, logger),
		fields.NewExtractor(logger),
		fields.NewItemExtractor(catalog),
		signature.NewDetector(logger),
		logger,
	)
	docRepo := repository.NewDocumentRepository(db, logger)

	files, err := ingest.ScanDir(dir, nil)
	if err != nil {
		logger.Error("scan directory", "dir", dir, "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		logger.Info("no documents found", "dir", dir)
		return
	}
	logger.Info("batch starting", "dir", dir, "documents", len(files), "workers", cfg.Server.Workers)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Server.Workers)

	for _, path := range files {
		g.Go(func() error {
			pctx, pcancel := context.WithTimeout(gctx, cfg.Server.ProcessTimeout)
			defer pcancel()

			doc := processor.ProcessDocument(pctx, path)
			if _, err := docRepo.UpsertBySourceFile(pctx, doc); err != nil {
				logger.Error("store document", "path", path, "error", err)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("batch finished with errors", "error", err, "duration", time.Since(start))
		os.Exit(1)
	}
	logger.Info("batch complete", "documents", len(files), "duration", time.Since(start))
}
