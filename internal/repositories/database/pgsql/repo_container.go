package pgsql

import (
	portsrepo "github.com/SscSPs/sopas_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CatalogRepo: newPgxCatalogRepository(dbPool),
		JornadaRepo: newPgxJornadaRepository(dbPool),
		PedidoRepo:  newPgxPedidoRepository(dbPool),
		Health:      &BaseRepository{Pool: dbPool},
	}
}
