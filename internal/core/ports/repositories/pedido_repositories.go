package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sopas_backend/internal/core/domain"
)

// ListPedidosParams filters the pedido listing. Zero values mean no filter.
type ListPedidosParams struct {
	JornadaID string
	Estado    *domain.EstadoPedido
}

// PedidoMutator edits a locked pedido in place. Returning an error aborts the update.
type PedidoMutator func(p *domain.Pedido) error

// PedidoReader defines read operations for pedido data
type PedidoReader interface {
	// FindPedidoByID retrieves a live (not deleted) pedido.
	FindPedidoByID(ctx context.Context, pedidoID string) (*domain.Pedido, error)

	// FindPedidoByClientRequestID retrieves a pedido by idempotency key, deleted or not.
	FindPedidoByClientRequestID(ctx context.Context, clientRequestID string) (*domain.Pedido, error)

	// ListPedidos retrieves live pedidos newest first.
	ListPedidos(ctx context.Context, params ListPedidosParams) ([]domain.Pedido, error)
}

// PedidoWriter defines write operations for pedido data
type PedidoWriter interface {
	// SavePedido inserts a pedido into its jornada. It fails with ErrDuplicate when the
	// client_request_id is taken and with ErrInvalidState when the jornada is closed.
	SavePedido(ctx context.Context, pedido domain.Pedido) error

	// UpdatePedido locks the pedido, runs mutate on it and persists the result.
	UpdatePedido(ctx context.Context, pedidoID string, now time.Time, mutate PedidoMutator) (*domain.Pedido, error)

	// SoftDeletePedido marks a live pedido as deleted.
	SoftDeletePedido(ctx context.Context, pedidoID string, now time.Time) error
}

// PedidoRepositoryFacade combines all pedido-related repository interfaces
type PedidoRepositoryFacade interface {
	PedidoReader
	PedidoWriter
}
