// runextract processes a single scanned document and prints the extraction
// result as JSON, without touching the database. Useful for tuning the
// template catalog against a problem scan.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/mquispe/guias-tracker/internal/common"
	"github.com/mquispe/guias-tracker/internal/fields"
	"github.com/mquispe/guias-tracker/internal/ocr"
	"github.com/mquispe/guias-tracker/internal/pipeline"
	"github.com/mquispe/guias-tracker/internal/raster"
	"github.com/mquispe/guias-tracker/internal/signature"
	"github.com/mquispe/guias-tracker/internal/table"
	"github.com/mquispe/guias-tracker/internal/template"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <document-file>")
		os.Exit(2)
	}
	path := os.Args[1]
	if _, err := os.Stat(path); err != nil {
		logger.Error("cannot read document", "path", path, "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()

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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ProcessTimeout)
	defer cancel()

	start := time.Now()
	doc := processor.ProcessDocument(ctx, path)
	logger.Info("extraction finished",
		"status", doc.Status,
		"pages", doc.PageCount,
		"items", len(doc.LineItems),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
