// Command sopasctl runs day-to-day operations (migrations, opening and closing
// jornadas, price changes) against the database without going through HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/sopas_backend/internal/middleware"
	"github.com/SscSPs/sopas_backend/internal/platform/config"
	"github.com/urfave/cli/v2"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = middleware.WithLogger(ctx, logger)

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	env := &runtime{}
	return &cli.App{
		Name:  "sopasctl",
		Usage: "operate the sopas backend from the command line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "postgres connection string",
				EnvVars: []string{"PGSQL_URL"},
			},
		},
		Before: func(cCtx *cli.Context) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if url := cCtx.String("database-url"); url != "" {
				cfg.DatabaseURL = url
			}
			env.cfg = cfg
			return nil
		},
		After: func(*cli.Context) error {
			env.close()
			return nil
		},
		Commands: []*cli.Command{
			migrateCommand(env),
			jornadaCommand(env),
			catalogoCommand(env),
		},
	}
}
