package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// JornadaRepositoryWithTx extends JornadaRepositoryFacade with transaction capabilities
type JornadaRepositoryWithTx interface {
	JornadaRepositoryFacade
	TransactionManager
}

// PedidoRepositoryWithTx extends PedidoRepositoryFacade with transaction capabilities
type PedidoRepositoryWithTx interface {
	PedidoRepositoryFacade
	TransactionManager
}
