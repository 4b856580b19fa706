package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/mquispe/guias-tracker/constants"
	"github.com/mquispe/guias-tracker/internal/async"
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

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	if err := db.HealthCheck(ctx); err != nil {
		logger.Error("db health failed", "error", err)
		os.Exit(1)
	}
	logger.Info("db health ok")

	// the detection engine is process-wide; model load happens once here
	engine, err := ocr.NewTesseractEngine(ocr.Config{
		Languages:   cfg.OCR.Languages,
		TessdataDir: cfg.OCR.TessdataDir,
	})
	if err != nil {
		logger.Error("init detection engine", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := engine.Close(); cerr != nil {
			logger.Error("close detection engine", "error", cerr)
		}
	}()

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

	handle := func(ctx context.Context, job async.Job) error {
		if !job.Force {
			existing, err := docRepo.GetBySourceFileID(ctx, pipeline.SourceFileID(job.Path))
			if err != nil && !errors.Is(err, common.ErrNotFound) {
				return err
			}
			if existing != nil && existing.Status == constants.DocStatusSuccess {
				logger.Info("skipping already processed document", "path", job.Path)
				return nil
			}
		}
		doc := processor.ProcessDocument(ctx, job.Path)
		_, err := docRepo.UpsertBySourceFile(ctx, doc)
		return err
	}

	queue := async.NewProcessorQueue(handle, logger,
		async.WithWorkers(cfg.Server.Workers),
		async.WithProcessTimeout(cfg.Server.ProcessTimeout),
	)

	events, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       cfg.Ingest.InboxDirs,
		InitialScan: cfg.Ingest.InitialScan,
		Debounce:    cfg.Ingest.Debounce,
	}, logger)
	if err != nil {
		logger.Error("start watcher", "error", err)
		os.Exit(1)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case path, ok := <-events:
				if !ok {
					return
				}
				_ = queue.Enqueue(ctx, async.Job{Path: path})
			case werr, ok := <-watchErrs:
				if ok && werr != nil {
					logger.Error("inbox watcher error", "error", werr)
				}
			}
		}
	}()

	// health endpoint for orchestration probes
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.HealthAddr)
	if err != nil {
		logger.Error("listen", "addr", cfg.Server.HealthAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("health server listening", "addr", cfg.Server.HealthAddr)

	go func() {
		if serr := grpcServer.Serve(lis); serr != nil {
			logger.Error("grpc serve", "error", serr)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	grpcServer.GracefulStop()

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(drainCtx)
	logger.Info("stopped")
}
