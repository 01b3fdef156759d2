package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/sopas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sopas_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository is a mock type for the CatalogRepositoryFacade interface
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) FindTipoSopaByCodigo(ctx context.Context, codigo string) (*domain.TipoSopa, error) {
	args := m.Called(ctx, codigo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TipoSopa), args.Error(1)
}

func (m *MockCatalogRepository) ListTiposSopa(ctx context.Context) ([]domain.TipoSopa, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TipoSopa), args.Error(1)
}

func (m *MockCatalogRepository) UpdatePrecio(ctx context.Context, codigo string, precio decimal.Decimal, updatedAt time.Time) (*domain.TipoSopa, error) {
	args := m.Called(ctx, codigo, precio, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TipoSopa), args.Error(1)
}

// MockJornadaRepository is a mock type for the JornadaRepositoryFacade interface
type MockJornadaRepository struct {
	mock.Mock
}

func (m *MockJornadaRepository) FindJornadaByID(ctx context.Context, jornadaID string) (*domain.Jornada, error) {
	args := m.Called(ctx, jornadaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Jornada), args.Error(1)
}

func (m *MockJornadaRepository) FindJornadaAbierta(ctx context.Context) (*domain.Jornada, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Jornada), args.Error(1)
}

func (m *MockJornadaRepository) ListJornadas(ctx context.Context, params portsrepo.ListJornadasParams) ([]domain.Jornada, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Jornada), args.Error(1)
}

func (m *MockJornadaRepository) GetDashboard(ctx context.Context, jornadaID string) (*domain.Dashboard, error) {
	args := m.Called(ctx, jornadaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

func (m *MockJornadaRepository) OpenJornada(ctx context.Context, fecha, now time.Time) (*domain.Jornada, error) {
	args := m.Called(ctx, fecha, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Jornada), args.Error(1)
}

func (m *MockJornadaRepository) CloseJornada(ctx context.Context, jornadaID string, now time.Time) (*domain.Jornada, error) {
	args := m.Called(ctx, jornadaID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Jornada), args.Error(1)
}

// MockPedidoRepository is a mock type for the PedidoRepositoryFacade interface
type MockPedidoRepository struct {
	mock.Mock
}

func (m *MockPedidoRepository) FindPedidoByID(ctx context.Context, pedidoID string) (*domain.Pedido, error) {
	args := m.Called(ctx, pedidoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pedido), args.Error(1)
}

func (m *MockPedidoRepository) FindPedidoByClientRequestID(ctx context.Context, clientRequestID string) (*domain.Pedido, error) {
	args := m.Called(ctx, clientRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pedido), args.Error(1)
}

func (m *MockPedidoRepository) ListPedidos(ctx context.Context, params portsrepo.ListPedidosParams) ([]domain.Pedido, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pedido), args.Error(1)
}

func (m *MockPedidoRepository) SavePedido(ctx context.Context, pedido domain.Pedido) error {
	args := m.Called(ctx, pedido)
	return args.Error(0)
}

// UpdatePedido runs mutate on a copy of the stored pedido the expectation returns,
// the way the real repository runs it on the locked row.
func (m *MockPedidoRepository) UpdatePedido(ctx context.Context, pedidoID string, now time.Time, mutate portsrepo.PedidoMutator) (*domain.Pedido, error) {
	args := m.Called(ctx, pedidoID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	p := *args.Get(0).(*domain.Pedido)
	if err := mutate(&p); err != nil {
		return nil, err
	}
	p.UpdatedAt = now
	return &p, args.Error(1)
}

func (m *MockPedidoRepository) SoftDeletePedido(ctx context.Context, pedidoID string, now time.Time) error {
	args := m.Called(ctx, pedidoID, now)
	return args.Error(0)
}

// MockHealthChecker is a mock type for the HealthChecker interface
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
