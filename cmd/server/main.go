package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"clinic-scheduling-api/internal/clinic"
	"clinic-scheduling-api/internal/config"
	"clinic-scheduling-api/internal/handler"
	"clinic-scheduling-api/internal/middleware"
	"clinic-scheduling-api/internal/store"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:          "clinic-server",
		Short:        "Clinic scheduling API server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	root.AddCommand(
		&cobra.Command{
			Use:          "serve",
			Short:        "Start the HTTP server",
			SilenceUsage: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve()
			},
		},
		&cobra.Command{
			Use:          "migrate",
			Short:        "Apply database migrations and exit",
			SilenceUsage: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return migrate()
			},
		},
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.IsDev() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func openPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	pc.MaxConns = cfg.DBMaxConns
	pc.MinConns = cfg.DBMinConns

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("db/migrations/001_init.sql")
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}

func migrate() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	ctx := context.Background()
	pool, err := openPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := applyMigrations(ctx, pool); err != nil {
		return err
	}
	log.Info().Msg("migrations applied")
	return nil
}

func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	ctx := context.Background()
	pool, err := openPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := applyMigrations(ctx, pool); err != nil {
		log.Warn().Err(err).Msg("migration skipped")
	} else {
		log.Info().Msg("migration applied")
	}

	st := store.New(pool)
	svc := clinic.New(st, st, st, log)
	h := handler.New(svc, st, st, st, cfg.JWTSecret)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		if err := pool.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "down"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	h.Register(e.Group("/api"), rl)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("http server stopped")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
