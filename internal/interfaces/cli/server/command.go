package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ticketdesk/internal/infrastructure/config"
	"ticketdesk/internal/infrastructure/database"
	"ticketdesk/internal/infrastructure/migration"
	"ticketdesk/internal/infrastructure/ratelimit"
	httpiface "ticketdesk/internal/interfaces/http"
	"ticketdesk/internal/shared/logger"
)

// NewCommand returns the serve command: config, database, migrations, and
// the HTTP server with graceful shutdown.
func NewCommand() *cobra.Command {
	var configPath string
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the ticket API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, skipMigrations)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply database migrations on startup")

	return cmd
}

func run(configPath string, skipMigrations bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	conn, err := database.NewConnection(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Warnw("failed to close database connection", "error", err)
		}
	}()

	if !skipMigrations {
		if err := migration.Up(conn); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	var limiter ratelimit.RateLimiter = ratelimit.NewNoopRateLimiter()
	if cfg.Auth.RateLimit.Enabled {
		redisLimiter, err := ratelimit.NewRedisRateLimiter(&cfg.Redis, &cfg.Auth.RateLimit)
		if err != nil {
			// A down redis should not block startup; authentication just
			// runs unthrottled until it is back.
			log.Warnw("rate limiting disabled, redis unavailable", "error", err)
		} else {
			limiter = redisLimiter
			defer func() {
				if err := redisLimiter.Close(); err != nil {
					log.Warnw("failed to close redis connection", "error", err)
				}
			}()
		}
	}

	router := httpiface.NewRouter(cfg, conn, limiter, log)

	srv := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server starting", "addr", srv.Addr, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Infow("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Infow("server stopped")
	return nil
}
