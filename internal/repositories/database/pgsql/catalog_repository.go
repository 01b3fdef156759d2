package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/sopas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sopas_backend/internal/core/ports/repositories"
	"github.com/SscSPs/sopas_backend/internal/models"
	"github.com/SscSPs/sopas_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const tipoSopaColumns = `id, codigo, nombre, precio, created_at, updated_at`

type PgxCatalogRepository struct {
	BaseRepository
}

// newPgxCatalogRepository creates a new repository for catalog data.
func newPgxCatalogRepository(pool *pgxpool.Pool) portsrepo.CatalogRepositoryFacade {
	return &PgxCatalogRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

func scanTipoSopa(row pgx.Row) (models.TipoSopa, error) {
	var m models.TipoSopa
	err := row.Scan(
		&m.ID,
		&m.Codigo,
		&m.Nombre,
		&m.Precio,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// FindTipoSopaByCodigo retrieves a catalog entry by its code.
func (r *PgxCatalogRepository) FindTipoSopaByCodigo(ctx context.Context, codigo string) (*domain.TipoSopa, error) {
	query := `SELECT ` + tipoSopaColumns + ` FROM tipos_sopa WHERE codigo = $1;`

	m, err := scanTipoSopa(r.Pool.QueryRow(ctx, query, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTipoSopaNoExiste
		}
		return nil, fmt.Errorf("failed to find tipo sopa %s: %w", codigo, err)
	}

	d := mapping.ToDomainTipoSopa(m)
	return &d, nil
}

// ListTiposSopa retrieves all catalog entries ordered by code.
func (r *PgxCatalogRepository) ListTiposSopa(ctx context.Context) ([]domain.TipoSopa, error) {
	query := `SELECT ` + tipoSopaColumns + ` FROM tipos_sopa ORDER BY codigo ASC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tipos sopa: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TipoSopa, error) {
		return scanTipoSopa(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tipos sopa: %w", err)
	}

	return mapping.ToDomainTipoSopaSlice(ms), nil
}

// UpdatePrecio sets the price of an existing entry and returns the stored row.
func (r *PgxCatalogRepository) UpdatePrecio(ctx context.Context, codigo string, precio decimal.Decimal, updatedAt time.Time) (*domain.TipoSopa, error) {
	query := `
		UPDATE tipos_sopa
		SET precio = $2, updated_at = $3
		WHERE codigo = $1
		RETURNING ` + tipoSopaColumns + `;
	`

	m, err := scanTipoSopa(r.Pool.QueryRow(ctx, query, codigo, precio, updatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTipoSopaNoExiste
		}
		return nil, fmt.Errorf("failed to update precio of %s: %w", codigo, err)
	}

	d := mapping.ToDomainTipoSopa(m)
	return &d, nil
}
