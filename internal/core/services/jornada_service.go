package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/sopas_backend/internal/apperrors"
	"github.com/SscSPs/sopas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sopas_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sopas_backend/internal/core/ports/services"
	"github.com/SscSPs/sopas_backend/internal/platform/clock"
)

const (
	defaultJornadaListLimit = 50
	maxJornadaListLimit     = 200
)

var errPaginacionInvalida = apperrors.Validation("limit y offset no pueden ser negativos")

type jornadaService struct {
	BaseService
	jornadaRepo portsrepo.JornadaRepositoryFacade
}

// NewJornadaService creates the jornada lifecycle service.
func NewJornadaService(repo portsrepo.JornadaRepositoryFacade, clk clock.Clock) portssvc.JornadaSvcFacade {
	return &jornadaService{
		BaseService: BaseService{Clock: clk},
		jornadaRepo: repo,
	}
}

var _ portssvc.JornadaSvcFacade = (*jornadaService)(nil)

// OpenToday is idempotent for the current business date.
func (s *jornadaService) OpenToday(ctx context.Context) (*domain.Jornada, error) {
	fecha := s.Clock.Today()
	j, err := s.jornadaRepo.OpenJornada(ctx, fecha, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to open jornada", slog.String("fecha", fecha.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to open jornada for %s: %w", fecha.Format(time.DateOnly), err)
	}

	s.LogInfo(ctx, "Jornada opened",
		slog.String("jornada_id", j.ID),
		slog.String("fecha", fecha.Format(time.DateOnly)))
	return j, nil
}

func (s *jornadaService) Close(ctx context.Context, jornadaID string) (*domain.Jornada, error) {
	if err := validID(jornadaID, domain.ErrJornadaNoExiste); err != nil {
		return nil, err
	}

	j, err := s.jornadaRepo.CloseJornada(ctx, jornadaID, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to close jornada", slog.String("jornada_id", jornadaID))
		return nil, fmt.Errorf("failed to close jornada %s: %w", jornadaID, err)
	}

	s.LogInfo(ctx, "Jornada closed",
		slog.String("jornada_id", j.ID),
		slog.Int("total_pedidos", j.TotalPedidos),
		slog.String("total_recaudado", j.TotalRecaudado.String()),
		slog.Int("cancelados_al_cierre", j.CanceladosAlCierre))
	return j, nil
}

func (s *jornadaService) GetActive(ctx context.Context) (*domain.Jornada, error) {
	j, err := s.jornadaRepo.FindJornadaAbierta(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active jornada: %w", err)
	}
	return j, nil
}

func (s *jornadaService) GetJornada(ctx context.Context, jornadaID string) (*domain.Jornada, error) {
	if err := validID(jornadaID, domain.ErrJornadaNoExiste); err != nil {
		return nil, err
	}
	j, err := s.jornadaRepo.FindJornadaByID(ctx, jornadaID)
	if err != nil {
		return nil, fmt.Errorf("failed to get jornada %s: %w", jornadaID, err)
	}
	return j, nil
}

func (s *jornadaService) ListJornadas(ctx context.Context, query portssvc.ListJornadasQuery) ([]domain.Jornada, error) {
	params := portsrepo.ListJornadasParams{Limit: query.Limit, Offset: query.Offset}
	if query.Estado != "" {
		estado, err := domain.ParseEstadoJornada(query.Estado)
		if err != nil {
			return nil, err
		}
		params.Estado = &estado
	}
	if params.Limit < 0 || params.Offset < 0 {
		return nil, errPaginacionInvalida
	}
	if params.Limit == 0 {
		params.Limit = defaultJornadaListLimit
	}
	if params.Limit > maxJornadaListLimit {
		params.Limit = maxJornadaListLimit
	}

	jornadas, err := s.jornadaRepo.ListJornadas(ctx, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list jornadas")
		return nil, fmt.Errorf("failed to list jornadas: %w", err)
	}
	return jornadas, nil
}

func (s *jornadaService) Dashboard(ctx context.Context, jornadaID string) (*domain.Dashboard, error) {
	if _, err := s.GetJornada(ctx, jornadaID); err != nil {
		return nil, err
	}
	d, err := s.jornadaRepo.GetDashboard(ctx, jornadaID)
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard for jornada %s: %w", jornadaID, err)
	}
	return d, nil
}
