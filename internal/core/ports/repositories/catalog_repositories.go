package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sopas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CatalogReader defines read operations for the soup catalog
type CatalogReader interface {
	// FindTipoSopaByCodigo retrieves a catalog entry by its code.
	FindTipoSopaByCodigo(ctx context.Context, codigo string) (*domain.TipoSopa, error)

	// ListTiposSopa retrieves every catalog entry ordered by code.
	ListTiposSopa(ctx context.Context) ([]domain.TipoSopa, error)
}

// CatalogWriter defines write operations for the soup catalog
type CatalogWriter interface {
	// UpdatePrecio sets the unit price of an existing entry and returns the stored row.
	UpdatePrecio(ctx context.Context, codigo string, precio decimal.Decimal, updatedAt time.Time) (*domain.TipoSopa, error)
}

// CatalogRepositoryFacade combines all catalog-related repository interfaces
type CatalogRepositoryFacade interface {
	CatalogReader
	CatalogWriter
}
