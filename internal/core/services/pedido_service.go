package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/sopas_backend/internal/apperrors"
	"github.com/SscSPs/sopas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sopas_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sopas_backend/internal/core/ports/services"
	"github.com/SscSPs/sopas_backend/internal/platform/clock"
	"github.com/google/uuid"
)

type pedidoService struct {
	BaseService
	pedidoRepo  portsrepo.PedidoRepositoryFacade
	jornadaRepo portsrepo.JornadaReader
	catalog     portssvc.CatalogReaderSvc
}

// NewPedidoService creates the order service. Prices are always taken from catalog.
func NewPedidoService(
	pedidoRepo portsrepo.PedidoRepositoryFacade,
	jornadaRepo portsrepo.JornadaReader,
	catalog portssvc.CatalogReaderSvc,
	clk clock.Clock,
) portssvc.PedidoSvcFacade {
	return &pedidoService{
		BaseService: BaseService{Clock: clk},
		pedidoRepo:  pedidoRepo,
		jornadaRepo: jornadaRepo,
		catalog:     catalog,
	}
}

var _ portssvc.PedidoSvcFacade = (*pedidoService)(nil)

func (s *pedidoService) CreatePedido(ctx context.Context, req domain.NuevoPedido) (*domain.Pedido, bool, error) {
	if err := req.Normalize(); err != nil {
		return nil, false, err
	}
	hash := req.Fingerprint()

	if existing, err := s.findReplay(ctx, req.ClientRequestID, hash); err != nil || existing != nil {
		return existing, existing != nil, err
	}

	jornada, err := s.jornadaRepo.FindJornadaAbierta(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create pedido: %w", err)
	}

	precio, err := s.catalog.GetPrice(ctx, req.TipoSopaCodigo)
	if err != nil {
		return nil, false, err
	}
	settlement, err := domain.Settle(precio, req.Cantidad, req.PagoConMontoExacto, req.MontoPagado)
	if err != nil {
		return nil, false, err
	}

	pedido := domain.NewPedido(uuid.NewString(), jornada.ID, req, settlement, s.now())
	if err := s.pedidoRepo.SavePedido(ctx, pedido); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a race against a request with the same key.
			existing, ferr := s.findReplay(ctx, req.ClientRequestID, hash)
			if ferr != nil {
				return nil, false, ferr
			}
			if existing != nil {
				return existing, true, nil
			}
		}
		s.LogError(ctx, err, "Failed to save pedido",
			slog.String("jornada_id", jornada.ID),
			slog.String("client_request_id", req.ClientRequestID))
		return nil, false, fmt.Errorf("failed to create pedido: %w", err)
	}

	s.LogInfo(ctx, "Pedido created",
		slog.String("pedido_id", pedido.ID),
		slog.String("jornada_id", jornada.ID),
		slog.String("total", pedido.Total.String()))
	return &pedido, false, nil
}

// findReplay returns the stored pedido when clientRequestID was already used with the same
// payload, nil when the key is unused, and ErrClientRequestIDReutilizado otherwise.
func (s *pedidoService) findReplay(ctx context.Context, clientRequestID, hash string) (*domain.Pedido, error) {
	existing, err := s.pedidoRepo.FindPedidoByClientRequestID(ctx, clientRequestID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up client_request_id %s: %w", clientRequestID, err)
	}
	if existing.RequestHash != hash {
		s.LogDebug(ctx, "client_request_id reused with a different payload",
			slog.String("client_request_id", clientRequestID))
		return nil, domain.ErrClientRequestIDReutilizado
	}
	return existing, nil
}

func (s *pedidoService) GetPedido(ctx context.Context, pedidoID string) (*domain.Pedido, error) {
	if err := validID(pedidoID, domain.ErrPedidoNoExiste); err != nil {
		return nil, err
	}
	p, err := s.pedidoRepo.FindPedidoByID(ctx, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pedido %s: %w", pedidoID, err)
	}
	return p, nil
}

func (s *pedidoService) ListPedidos(ctx context.Context, query portssvc.ListPedidosQuery) ([]domain.Pedido, error) {
	params := portsrepo.ListPedidosParams{JornadaID: query.JornadaID}
	if query.JornadaID != "" {
		if err := validID(query.JornadaID, domain.ErrJornadaNoExiste); err != nil {
			return nil, err
		}
	}
	if query.Estado != "" {
		estado, err := domain.ParseEstadoPedido(query.Estado)
		if err != nil {
			return nil, err
		}
		params.Estado = &estado
	}

	pedidos, err := s.pedidoRepo.ListPedidos(ctx, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list pedidos")
		return nil, fmt.Errorf("failed to list pedidos: %w", err)
	}
	return pedidos, nil
}

// UpdatePedido re-settles with the current catalog price whenever product, quantity or
// payment inputs change.
func (s *pedidoService) UpdatePedido(ctx context.Context, pedidoID string, patch domain.PedidoPatch) (*domain.Pedido, error) {
	if err := validID(pedidoID, domain.ErrPedidoNoExiste); err != nil {
		return nil, err
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.pedidoRepo.UpdatePedido(ctx, pedidoID, s.now(), func(p *domain.Pedido) error {
		next := *p
		if err := next.Apply(patch); err != nil {
			return err
		}
		if patch.TouchesSettlement() {
			precio, err := s.catalog.GetPrice(ctx, next.TipoSopaCodigo)
			if err != nil {
				return err
			}
			settlement, err := domain.Settle(precio, next.Cantidad, next.PagoConMontoExacto, next.MontoPagado)
			if err != nil {
				return err
			}
			next.ApplySettlement(settlement)
		}
		*p = next
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update pedido %s: %w", pedidoID, err)
	}

	s.LogInfo(ctx, "Pedido updated",
		slog.String("pedido_id", updated.ID),
		slog.String("estado", string(updated.Estado)),
		slog.String("total", updated.Total.String()))
	return updated, nil
}

func (s *pedidoService) DeletePedido(ctx context.Context, pedidoID string) error {
	if err := validID(pedidoID, domain.ErrPedidoNoExiste); err != nil {
		return err
	}
	if err := s.pedidoRepo.SoftDeletePedido(ctx, pedidoID, s.now()); err != nil {
		return fmt.Errorf("failed to delete pedido %s: %w", pedidoID, err)
	}
	s.LogInfo(ctx, "Pedido deleted", slog.String("pedido_id", pedidoID))
	return nil
}
