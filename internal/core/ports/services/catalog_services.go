package services

import (
	"context"

	"github.com/SscSPs/sopas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CatalogReaderSvc defines read operations for the catalog
type CatalogReaderSvc interface {
	// GetPrice returns the current unit price of a product code.
	GetPrice(ctx context.Context, codigo string) (decimal.Decimal, error)

	// ListTiposSopa retrieves every catalog entry ordered by code.
	ListTiposSopa(ctx context.Context) ([]domain.TipoSopa, error)
}

// CatalogWriterSvc defines write operations for the catalog
type CatalogWriterSvc interface {
	// UpdatePrice changes the unit price used by future pedidos.
	UpdatePrice(ctx context.Context, codigo string, precio decimal.Decimal) (*domain.TipoSopa, error)
}

// CatalogSvcFacade combines all catalog-related service interfaces
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogWriterSvc
}
