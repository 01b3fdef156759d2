package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sopas_backend/internal/core/domain"
)

// ListJornadasParams filters and pages the jornada listing.
type ListJornadasParams struct {
	Estado *domain.EstadoJornada
	Limit  int
	Offset int
}

// JornadaReader defines read operations for jornada data
type JornadaReader interface {
	// FindJornadaByID retrieves a jornada by ID.
	FindJornadaByID(ctx context.Context, jornadaID string) (*domain.Jornada, error)

	// FindJornadaAbierta retrieves the single open jornada, if any.
	FindJornadaAbierta(ctx context.Context) (*domain.Jornada, error)

	// ListJornadas retrieves jornadas newest first.
	ListJornadas(ctx context.Context, params ListJornadasParams) ([]domain.Jornada, error)

	// GetDashboard aggregates the live pedidos of a jornada.
	GetDashboard(ctx context.Context, jornadaID string) (*domain.Dashboard, error)
}

// JornadaWriter defines the lifecycle transitions. Each one is a single transaction.
type JornadaWriter interface {
	// OpenJornada returns the jornada for fecha, creating it (and force-closing any
	// stale open jornada) when it does not exist yet.
	OpenJornada(ctx context.Context, fecha, now time.Time) (*domain.Jornada, error)

	// CloseJornada cancels pending pedidos and freezes the snapshot.
	CloseJornada(ctx context.Context, jornadaID string, now time.Time) (*domain.Jornada, error)
}

// JornadaRepositoryFacade combines all jornada-related repository interfaces
type JornadaRepositoryFacade interface {
	JornadaReader
	JornadaWriter
}
