package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickpost/cliparse"
	"github.com/danielhkuo/quickpost/db"
	"github.com/danielhkuo/quickpost/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// newRootCmd wires the CLI. Flags are handed to cliparse untouched so the
// same flag set works for every subcommand and for the bare binary.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:                "quickpost",
		Short:              "Social posting API with votes",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(args)
		},
	}

	root.AddCommand(&cobra.Command{
		Use:                "serve",
		Short:              "Create the schema if needed and serve HTTP",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(args)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:                "migrate",
		Short:              "Create the schema and exit",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(args)
		},
	})

	return root
}

func setup(args []string) (cliparse.Config, error) {
	cfg, err := cliparse.ParseFlags(args)
	if err != nil {
		return cfg, fmt.Errorf("parsing flags: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return cfg, err
	}
	slog.SetDefault(logger)

	return cfg, nil
}

func newLogger(cfg cliparse.Config) (*slog.Logger, error) {
	var level slog.Level
	if cfg.LogLevel != "" {
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(cfg.LogFormat) {
	case "", "text":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
}

func migrate(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := setup(args)
	if err != nil {
		return err
	}

	conn, dialect, err := db.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.CreateSchema(conn, dialect); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	slog.Info("Database schema ready", "dialect", dialect)
	return nil
}

func serve(args []string) error {
	// Ctrl-C cancels startup retries as well as the running server
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := setup(args)
	if err != nil {
		return err
	}

	conn, dialect, err := db.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.CreateSchema(conn, dialect); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	slog.Info("Database schema ready", "dialect", dialect)

	server := &http.Server{
		Handler:           router.NewRouter(conn, cfg),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server closed: %w", err)
	}
	slog.Info("Server closed")
	return nil
}
