package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/tupyy/parcm/api/v1"
	"github.com/tupyy/parcm/internal/assets"
	"github.com/tupyy/parcm/internal/config"
	"github.com/tupyy/parcm/internal/handlers"
	"github.com/tupyy/parcm/internal/metrics"
	"github.com/tupyy/parcm/internal/server"
	"github.com/tupyy/parcm/internal/services"
	"github.com/tupyy/parcm/internal/store"
	"github.com/tupyy/parcm/pkg/loader"
	"github.com/tupyy/parcm/pkg/scheduler"
)

const shutdownTimeout = 10 * time.Second

func NewRunCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the player and its HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Server.Mode, "server-mode", cfg.Server.Mode, "server mode: dev or prod")
	flags.IntVar(&cfg.Server.HTTPPort, "http-port", cfg.Server.HTTPPort, "HTTP listen port")
	flags.IntVar(&cfg.Pool.NumWorkers, "num-workers", cfg.Pool.NumWorkers, "number of scheduler workers")
	flags.IntVar(&cfg.Pool.MaxPending, "max-pending", cfg.Pool.MaxPending, "pending task bound, 0 for unbounded")
	flags.DurationVar(&cfg.Loader.Timeout, "load-timeout", cfg.Loader.Timeout, "abandon an album load after this long, 0 to disable")
	flags.DurationVar(&cfg.Loader.TickInterval, "tick-interval", cfg.Loader.TickInterval, "player tick interval")
	flags.StringVar(&cfg.Loader.DefaultCoverPath, "default-cover", cfg.Loader.DefaultCoverPath, "cover shown when an album cover cannot be decoded")
	flags.UintVar(&cfg.Loader.FallbackRetries, "fallback-retries", cfg.Loader.FallbackRetries, "attempts for an artifact fallback")
	flags.StringVar(&cfg.Catalog.Workbook, "workbook", cfg.Catalog.Workbook, "xlsx catalog imported on start")

	return cmd
}

func run(ctx context.Context, cfg *config.Configuration) error {
	log := zap.S().Named("run")
	log.Infow("starting parcm", "config", cfg.DebugMap())

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if cfg.Catalog.Workbook != "" {
		if _, err := st.Album().ImportXLSX(ctx, cfg.Catalog.Workbook); err != nil {
			return fmt.Errorf("failed to import workbook: %w", err)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	exporter, err := metrics.NewExporter(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	sched := scheduler.NewScheduler(cfg.Pool.NumWorkers,
		scheduler.WithMaxPending(cfg.Pool.MaxPending),
		scheduler.WithMetrics(exporter),
	)
	sched.Start()
	defer sched.Close()

	lib := assets.NewLibrary()
	ld := loader.New(sched,
		assets.Artifacts(lib, st.Album(), cfg.Loader.DefaultCoverPath),
		loader.WithTimeout(cfg.Loader.Timeout),
		loader.WithFallbackRetries(cfg.Loader.FallbackRetries),
	)

	player := services.NewPlayer(sched, ld, st.Album(), cfg.Loader.TickInterval)
	player.Start(ctx)
	defer player.Stop()

	h := handlers.New(player, services.NewAlbumService(st))
	srv, err := server.NewServer(cfg, reg, func(router *gin.RouterGroup) {
		v1.RegisterHandlers(router, h)
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Errorw("failed to stop server", "error", err)
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Configuration) (*store.Store, error) {
	db, err := store.NewDB(cfg.Catalog.DatabasePath)
	if err != nil {
		return nil, err
	}

	st := store.NewStore(db)
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to migrate catalog: %w", err)
	}
	return st, nil
}
