package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/sopas_backend/internal/core/services"
	portssvc "github.com/SscSPs/sopas_backend/internal/core/ports/services"
	"github.com/SscSPs/sopas_backend/internal/platform/config"
	"github.com/SscSPs/sopas_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/sopas_backend/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

var errNoDatabaseURL = errors.New("database url not set (use --database-url or PGSQL_URL)")

// runtime lazily connects so commands that fail flag parsing never touch the database.
type runtime struct {
	cfg      *config.Config
	pool     *pgxpool.Pool
	services *portssvc.ServiceContainer
}

func (r *runtime) container(ctx context.Context) (*portssvc.ServiceContainer, error) {
	if r.services != nil {
		return r.services, nil
	}
	if r.cfg.DatabaseURL == "" {
		return nil, errNoDatabaseURL
	}
	pool, err := database.NewPgxPool(ctx, r.cfg.DatabaseURL, true)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	r.pool = pool
	r.services = services.NewServiceContainer(r.cfg, pgsql.NewRepositoryProvider(pool))
	return r.services, nil
}

func (r *runtime) close() {
	if r.pool != nil {
		database.ClosePgxPool(r.pool)
	}
}
