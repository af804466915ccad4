package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"feedengine/config"
	"feedengine/di"
	"feedengine/driver/alt_db"
	"feedengine/rest"
	"feedengine/utils/logger"
	"feedengine/utils/otel"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()
		return runServer(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer(ctx context.Context) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	otelShutdown, err := otel.InitProvider(ctx, otel.Config{
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: serviceVersion(cfg),
		Environment:    cfg.OTel.Environment,
		OTLPEndpoint:   cfg.OTel.Endpoint,
		Enabled:        cfg.OTel.Enabled,
		SampleRatio:    cfg.OTel.SampleRatio,
	})
	otelEnabled := cfg.OTel.Enabled
	if err != nil {
		logger.Logger.WarnContext(ctx, "failed to initialize OpenTelemetry, continuing without tracing", "error", err)
		otelEnabled = false
	}

	log := logger.InitLogger(logger.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OTelEnabled: otelEnabled,
		ServiceName: cfg.OTel.ServiceName,
	})
	log.InfoContext(ctx, "Starting server",
		"version", version,
		"port", cfg.Server.Port,
		"search_backend", cfg.Search.Backend,
		"redis_enabled", cfg.Redis.Enabled)

	pool, err := alt_db.InitDBPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	container, err := di.NewApplicationComponents(pool, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application components: %w", err)
	}
	defer func() {
		if err := container.Publisher.Close(); err != nil {
			log.Warn("failed to close report publisher", "error", err)
		}
	}()
	if err := container.Publisher.Ping(ctx); err != nil {
		log.WarnContext(ctx, "report stream unreachable, notifications will fail until it recovers", "error", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	rest.RegisterRoutes(e, container, cfg)

	address := fmt.Sprintf(":%d", cfg.Server.Port)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.InfoContext(gCtx, "listening", "address", address)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return otelShutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	log.Info("server exited properly")
	return nil
}

func serviceVersion(cfg *config.Config) string {
	if version != "dev" {
		return version
	}
	return cfg.OTel.ServiceVersion
}
