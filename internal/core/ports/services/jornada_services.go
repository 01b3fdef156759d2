package services

import (
	"context"

	"github.com/SscSPs/sopas_backend/internal/core/domain"
)

// ListJornadasQuery is the raw listing request. Estado is validated by the service.
type ListJornadasQuery struct {
	Estado string
	Limit  int
	Offset int
}

// JornadaReaderSvc defines read operations for jornadas
type JornadaReaderSvc interface {
	// GetActive returns the open jornada.
	GetActive(ctx context.Context) (*domain.Jornada, error)

	// GetJornada returns a jornada by ID.
	GetJornada(ctx context.Context, jornadaID string) (*domain.Jornada, error)

	// ListJornadas returns jornadas newest first.
	ListJornadas(ctx context.Context, query ListJornadasQuery) ([]domain.Jornada, error)

	// Dashboard returns the live rollup of a jornada's pedidos.
	Dashboard(ctx context.Context, jornadaID string) (*domain.Dashboard, error)
}

// JornadaLifecycleSvc defines the jornada state transitions
type JornadaLifecycleSvc interface {
	// OpenToday opens (or returns) the jornada for the current business date.
	OpenToday(ctx context.Context) (*domain.Jornada, error)

	// Close cancels pending pedidos and freezes the financial snapshot.
	Close(ctx context.Context, jornadaID string) (*domain.Jornada, error)
}

// JornadaSvcFacade combines all jornada-related service interfaces
type JornadaSvcFacade interface {
	JornadaReaderSvc
	JornadaLifecycleSvc
}
