package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/sopas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sopas_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sopas_backend/internal/core/ports/services"
	"github.com/SscSPs/sopas_backend/internal/platform/clock"
	"github.com/shopspring/decimal"
)

type catalogService struct {
	BaseService
	catalogRepo portsrepo.CatalogRepositoryFacade
}

// NewCatalogService creates the price lookup service.
func NewCatalogService(repo portsrepo.CatalogRepositoryFacade, clk clock.Clock) portssvc.CatalogSvcFacade {
	return &catalogService{
		BaseService: BaseService{Clock: clk},
		catalogRepo: repo,
	}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) GetPrice(ctx context.Context, codigo string) (decimal.Decimal, error) {
	tipo, err := s.catalogRepo.FindTipoSopaByCodigo(ctx, codigo)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get price of %s: %w", codigo, err)
	}
	return tipo.Precio, nil
}

func (s *catalogService) ListTiposSopa(ctx context.Context) ([]domain.TipoSopa, error) {
	tipos, err := s.catalogRepo.ListTiposSopa(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list catalog")
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	return tipos, nil
}

// UpdatePrice only affects pedidos created or re-settled afterwards.
func (s *catalogService) UpdatePrice(ctx context.Context, codigo string, precio decimal.Decimal) (*domain.TipoSopa, error) {
	if err := domain.ValidatePrecio(precio); err != nil {
		return nil, err
	}

	tipo, err := s.catalogRepo.UpdatePrecio(ctx, codigo, precio, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to update price of %s: %w", codigo, err)
	}

	s.LogInfo(ctx, "Catalog price updated",
		slog.String("codigo", codigo),
		slog.String("precio", precio.String()))
	return tipo, nil
}
