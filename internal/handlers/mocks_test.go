package handlers_test

import (
	"context"

	"github.com/SscSPs/sopas_backend/internal/core/domain"
	portssvc "github.com/SscSPs/sopas_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetPrice(ctx context.Context, codigo string) (decimal.Decimal, error) {
	args := m.Called(ctx, codigo)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCatalogService) ListTiposSopa(ctx context.Context) ([]domain.TipoSopa, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TipoSopa), args.Error(1)
}

func (m *MockCatalogService) UpdatePrice(ctx context.Context, codigo string, precio decimal.Decimal) (*domain.TipoSopa, error) {
	args := m.Called(ctx, codigo, precio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TipoSopa), args.Error(1)
}

// --- Mock JornadaService ---
type MockJornadaService struct {
	mock.Mock
}

func (m *MockJornadaService) jornada(args mock.Arguments) (*domain.Jornada, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Jornada), args.Error(1)
}

func (m *MockJornadaService) GetActive(ctx context.Context) (*domain.Jornada, error) {
	return m.jornada(m.Called(ctx))
}

func (m *MockJornadaService) GetJornada(ctx context.Context, jornadaID string) (*domain.Jornada, error) {
	return m.jornada(m.Called(ctx, jornadaID))
}

func (m *MockJornadaService) ListJornadas(ctx context.Context, query portssvc.ListJornadasQuery) ([]domain.Jornada, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Jornada), args.Error(1)
}

func (m *MockJornadaService) Dashboard(ctx context.Context, jornadaID string) (*domain.Dashboard, error) {
	args := m.Called(ctx, jornadaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

func (m *MockJornadaService) OpenToday(ctx context.Context) (*domain.Jornada, error) {
	return m.jornada(m.Called(ctx))
}

func (m *MockJornadaService) Close(ctx context.Context, jornadaID string) (*domain.Jornada, error) {
	return m.jornada(m.Called(ctx, jornadaID))
}

// --- Mock PedidoService ---
type MockPedidoService struct {
	mock.Mock
}

func (m *MockPedidoService) GetPedido(ctx context.Context, pedidoID string) (*domain.Pedido, error) {
	args := m.Called(ctx, pedidoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pedido), args.Error(1)
}

func (m *MockPedidoService) ListPedidos(ctx context.Context, query portssvc.ListPedidosQuery) ([]domain.Pedido, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pedido), args.Error(1)
}

func (m *MockPedidoService) CreatePedido(ctx context.Context, req domain.NuevoPedido) (*domain.Pedido, bool, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Pedido), args.Bool(1), args.Error(2)
}

func (m *MockPedidoService) UpdatePedido(ctx context.Context, pedidoID string, patch domain.PedidoPatch) (*domain.Pedido, error) {
	args := m.Called(ctx, pedidoID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pedido), args.Error(1)
}

func (m *MockPedidoService) DeletePedido(ctx context.Context, pedidoID string) error {
	args := m.Called(ctx, pedidoID)
	return args.Error(0)
}

// --- Mock HealthService ---
type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) Check(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]string), args.Error(1)
}
