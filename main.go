package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripventura-pricing/config"
	"tripventura-pricing/ingest/sheets"
	"tripventura-pricing/server"
	"tripventura-pricing/services"
	"tripventura-pricing/storage"
	"tripventura-pricing/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Tripventura Pricing Analytics starting ===")
	logger.Info("Config — sheet: %s | port: %d | snapshots: %v",
		cfg.SheetCSVURL, cfg.ServerPort, cfg.PostgresEnabled)

	loader := sheets.New(cfg, logger)
	session := services.NewSession(loader, logger)
	insightSvc := services.NewInsightService(logger)

	if cfg.PostgresEnabled {
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN(), logger)
		if err != nil {
			logger.Error("Snapshot store unavailable: %v — continuing without snapshots", err)
		} else {
			defer pgWriter.Close()
			session.SetSnapshotWriter(pgWriter)
		}
	}

	session.Refresh(context.Background())

	if msg := session.SyncError(); msg != "" {
		logger.Warn("%s", msg)
	}
	logger.Info("Dataset loaded: %d records, %d pre-selected",
		len(session.Records()), len(session.SelectionNames()))

	report := insightSvc.Generate(session.SelectedRecords())
	insightSvc.Print(report, session.SelectedRecords())

	exportWriter, err := storage.NewExportWriter(cfg.ExportDir)
	if err != nil {
		logger.Error("Failed to create export writer: %v", err)
	} else if path, err := exportWriter.Save(session.SelectedRecords(), time.Now()); err != nil {
		logger.Error("Export write failed: %v", err)
	} else {
		logger.Info("Analysis export saved to %s", path)
	}

	srv := server.New(cfg.ServerPort, session, insightSvc, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info("Dashboard API listening on :%d", cfg.ServerPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown: %v", err)
	}
	logger.Info("Server stopped")
}
