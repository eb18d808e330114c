package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vbonduro/ecoleta/internal/db"
	"github.com/vbonduro/ecoleta/internal/photostore/local"
	"github.com/vbonduro/ecoleta/internal/presenter"
	"github.com/vbonduro/ecoleta/internal/service"
	"github.com/vbonduro/ecoleta/internal/store"
	"github.com/vbonduro/ecoleta/internal/tracing"
	"github.com/vbonduro/ecoleta/internal/web"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, logger := a.cfg, a.logger

	tp, err := tracing.NewProvider(tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		Exporter:     cfg.Tracing.Exporter,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
		ServiceName:  "ecoleta",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		if err := tp.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error("failed to shut down tracing", "error", err)
		}
	}()

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	uploads, err := local.NewLocalPhotoStore(cfg.UploadsPath)
	if err != nil {
		return fmt.Errorf("failed to initialize uploads store: %w", err)
	}

	pointService := service.NewPointService(
		store.NewPointStore(database),
		store.NewItemStore(database),
		uploads,
		tp.Tracer(),
		logger,
	)
	server := web.NewServer(pointService, presenter.New(cfg.UploadsBaseURL), uploads, logger)

	return server.ListenAndServe(ctx, cfg.ListenAddr)
}
