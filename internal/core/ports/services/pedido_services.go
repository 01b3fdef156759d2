package services

import (
	"context"

	"github.com/SscSPs/sopas_backend/internal/core/domain"
)

// ListPedidosQuery is the raw listing request. Empty fields mean no filter.
type ListPedidosQuery struct {
	JornadaID string
	Estado    string
}

// PedidoReaderSvc defines read operations for pedidos
type PedidoReaderSvc interface {
	GetPedido(ctx context.Context, pedidoID string) (*domain.Pedido, error)
	ListPedidos(ctx context.Context, query ListPedidosQuery) ([]domain.Pedido, error)
}

// PedidoWriterSvc defines write operations for pedidos
type PedidoWriterSvc interface {
	// CreatePedido creates a pedido in the open jornada. replayed is true when the
	// client_request_id was already used with an identical payload and the stored
	// pedido is returned instead.
	CreatePedido(ctx context.Context, req domain.NuevoPedido) (pedido *domain.Pedido, replayed bool, err error)

	// UpdatePedido applies a partial update and re-settles when needed.
	UpdatePedido(ctx context.Context, pedidoID string, patch domain.PedidoPatch) (*domain.Pedido, error)

	// DeletePedido soft-deletes a pedido.
	DeletePedido(ctx context.Context, pedidoID string) error
}

// PedidoSvcFacade combines all pedido-related service interfaces
type PedidoSvcFacade interface {
	PedidoReaderSvc
	PedidoWriterSvc
}
