package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/sopas_backend/internal/apperrors"
	"github.com/SscSPs/sopas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sopas_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sopas_backend/internal/core/ports/services"
	"github.com/SscSPs/sopas_backend/internal/core/services"
	"github.com/SscSPs/sopas_backend/internal/platform/clock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PedidoServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	clock       *clock.Fixed
	catalogRepo *MockCatalogRepository
	jornadaRepo *MockJornadaRepository
	pedidoRepo  *MockPedidoRepository
	service     portssvc.PedidoSvcFacade
	jornada     *domain.Jornada
}

func (suite *PedidoServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.clock = clock.NewFixed(time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC), time.UTC)
	suite.catalogRepo = new(MockCatalogRepository)
	suite.jornadaRepo = new(MockJornadaRepository)
	suite.pedidoRepo = new(MockPedidoRepository)

	catalog := services.NewCatalogService(suite.catalogRepo, suite.clock)
	suite.service = services.NewPedidoService(suite.pedidoRepo, suite.jornadaRepo, catalog, suite.clock)

	j := domain.NewJornada(uuid.NewString(), suite.clock.Today(), suite.clock.Now())
	suite.jornada = &j
}

func (suite *PedidoServiceTestSuite) TearDownTest() {
	suite.catalogRepo.AssertExpectations(suite.T())
	suite.jornadaRepo.AssertExpectations(suite.T())
	suite.pedidoRepo.AssertExpectations(suite.T())
}

func (suite *PedidoServiceTestSuite) expectPrice(codigo string, precio int64) {
	suite.catalogRepo.On("FindTipoSopaByCodigo", suite.ctx, codigo).
		Return(&domain.TipoSopa{ID: uuid.NewString(), Codigo: codigo, Precio: decimal.NewFromInt(precio)}, nil)
}

func (suite *PedidoServiceTestSuite) expectUnusedKey(key string) {
	suite.pedidoRepo.On("FindPedidoByClientRequestID", suite.ctx, key).Return(nil, apperrors.ErrNotFound).Once()
}

func nuevoPedido() domain.NuevoPedido {
	return domain.NuevoPedido{
		ClientRequestID:    uuid.NewString(),
		Cliente:            "Rosa",
		TipoSopaCodigo:     domain.CodigoConEmpaque,
		MetodoPago:         string(domain.MetodoEfectivo),
		Cantidad:           2,
		Direccion:          "Jr. Puno 123",
		PagoConMontoExacto: true,
	}
}

// storedFor builds what the store would hold for an already accepted request.
func storedFor(req domain.NuevoPedido, jornadaID string) *domain.Pedido {
	_ = req.Normalize()
	s, _ := domain.Settle(decimal.NewFromInt(180), req.Cantidad, req.PagoConMontoExacto, req.MontoPagado)
	p := domain.NewPedido(uuid.NewString(), jornadaID, req, s, time.Now().UTC())
	return &p
}

func (suite *PedidoServiceTestSuite) TestCreatePedido_ExactPayment() {
	req := nuevoPedido()
	suite.expectUnusedKey(req.ClientRequestID)
	suite.jornadaRepo.On("FindJornadaAbierta", suite.ctx).Return(suite.jornada, nil).Once()
	suite.expectPrice(domain.CodigoConEmpaque, 180)
	suite.pedidoRepo.On("SavePedido", suite.ctx, mock.MatchedBy(func(p domain.Pedido) bool {
		return p.JornadaID == suite.jornada.ID && p.Total.Equal(decimal.NewFromInt(360))
	})).Return(nil).Once()

	p, replayed, err := suite.service.CreatePedido(suite.ctx, req)

	suite.Require().NoError(err)
	suite.False(replayed)
	suite.Equal("360", p.Total.String())
	suite.Equal("360", p.MontoPagado.String())
	suite.True(p.Vuelto.IsZero())
	suite.Equal(domain.PedidoPendiente, p.Estado)
	suite.Equal(suite.clock.Now(), p.CreatedAt)
	suite.Equal(req.Fingerprint(), p.RequestHash)
}

func (suite *PedidoServiceTestSuite) TestCreatePedido_CashWithChange() {
	req := nuevoPedido()
	req.Cantidad = 1
	req.PagoConMontoExacto = false
	req.MontoPagado = decimal.NewFromInt(200)
	suite.expectUnusedKey(req.ClientRequestID)
	suite.jornadaRepo.On("FindJornadaAbierta", suite.ctx).Return(suite.jornada, nil).Once()
	suite.expectPrice(domain.CodigoConEmpaque, 180)
	suite.pedidoRepo.On("SavePedido", suite.ctx, mock.AnythingOfType("domain.Pedido")).Return(nil).Once()

	p, _, err := suite.service.CreatePedido(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("180", p.Total.String())
	suite.Equal("20", p.Vuelto.String())
	suite.Equal("200", p.MontoPagado.String())
}

func (suite *PedidoServiceTestSuite) TestCreatePedido_InsufficientPayment() {
	req := nuevoPedido()
	req.PagoConMontoExacto = false
	req.MontoPagado = decimal.NewFromInt(300)
	suite.expectUnusedKey(req.ClientRequestID)
	suite.jornadaRepo.On("FindJornadaAbierta", suite.ctx).Return(suite.jornada, nil).Once()
	suite.expectPrice(domain.CodigoConEmpaque, 180)

	p, _, err := suite.service.CreatePedido(suite.ctx, req)

	suite.Nil(p)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, domain.ErrMontoInsuficiente)
	suite.pedidoRepo.AssertNotCalled(suite.T(), "SavePedido", mock.Anything, mock.Anything)
}

func (suite *PedidoServiceTestSuite) TestCreatePedido_NoActiveJornada() {
	req := nuevoPedido()
	suite.expectUnusedKey(req.ClientRequestID)
	suite.jornadaRepo.On("FindJornadaAbierta", suite.ctx).Return(nil, domain.ErrNoHayJornadaActiva).Once()

	p, _, err := suite.service.CreatePedido(suite.ctx, req)

	suite.Nil(p)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("No hay jornada activa. Abra una jornada primero.", apperrors.Message(err))
}

func (suite *PedidoServiceTestSuite) TestCreatePedido_UnknownTipoSopa() {
	req := nuevoPedido()
	req.TipoSopaCodigo = "DOBLE"
	suite.expectUnusedKey(req.ClientRequestID)
	suite.jornadaRepo.On("FindJornadaAbierta", suite.ctx).Return(suite.jornada, nil).Once()
	suite.catalogRepo.On("FindTipoSopaByCodigo", suite.ctx, "DOBLE").Return(nil, domain.ErrTipoSopaNoExiste).Once()

	_, _, err := suite.service.CreatePedido(suite.ctx, req)

	suite.ErrorIs(err, domain.ErrTipoSopaNoExiste)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PedidoServiceTestSuite) TestCreatePedido_ValidationFailsBeforeAnyLookup() {
	cases := map[string]func(r *domain.NuevoPedido){
		"special without description": func(r *domain.NuevoPedido) { r.EsEspecial = true; r.DescripcionEspecial = "  " },
		"zero quantity":               func(r *domain.NuevoPedido) { r.Cantidad = 0 },
		"unknown payment method":      func(r *domain.NuevoPedido) { r.MetodoPago = "TARJETA" },
		"missing request id":          func(r *domain.NuevoPedido) { r.ClientRequestID = "" },
	}
	for name, mutate := range cases {
		suite.Run(name, func() {
			req := nuevoPedido()
			mutate(&req)

			p, _, err := suite.service.CreatePedido(suite.ctx, req)

			suite.Nil(p)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
}

func (suite *PedidoServiceTestSuite) TestCreatePedido_ReplayReturnsStoredPedido() {
	req := nuevoPedido()
	stored := storedFor(req, suite.jornada.ID)
	suite.pedidoRepo.On("FindPedidoByClientRequestID", suite.ctx, req.ClientRequestID).Return(stored, nil).Once()

	p, replayed, err := suite.service.CreatePedido(suite.ctx, req)

	suite.Require().NoError(err)
	suite.True(replayed)
	suite.Equal(stored.ID, p.ID)
	suite.jornadaRepo.AssertNotCalled(suite.T(), "FindJornadaAbierta", mock.Anything)
}

func (suite *PedidoServiceTestSuite) TestCreatePedido_ReusedKeyWithDifferentPayload() {
	req := nuevoPedido()
	stored := storedFor(req, suite.jornada.ID)
	req.Cantidad = 5
	suite.pedidoRepo.On("FindPedidoByClientRequestID", suite.ctx, req.ClientRequestID).Return(stored, nil).Once()

	p, replayed, err := suite.service.CreatePedido(suite.ctx, req)

	suite.Nil(p)
	suite.False(replayed)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.ErrorIs(err, domain.ErrClientRequestIDReutilizado)
}

func (suite *PedidoServiceTestSuite) TestCreatePedido_ConcurrentDuplicateBecomesReplay() {
	req := nuevoPedido()
	stored := storedFor(req, suite.jornada.ID)
	suite.expectUnusedKey(req.ClientRequestID)
	suite.jornadaRepo.On("FindJornadaAbierta", suite.ctx).Return(suite.jornada, nil).Once()
	suite.expectPrice(domain.CodigoConEmpaque, 180)
	suite.pedidoRepo.On("SavePedido", suite.ctx, mock.AnythingOfType("domain.Pedido")).
		Return(fmt.Errorf("client_request_id taken: %w", apperrors.ErrDuplicate)).Once()
	suite.pedidoRepo.On("FindPedidoByClientRequestID", suite.ctx, req.ClientRequestID).Return(stored, nil).Once()

	p, replayed, err := suite.service.CreatePedido(suite.ctx, req)

	suite.Require().NoError(err)
	suite.True(replayed)
	suite.Equal(stored.ID, p.ID)
}

func (suite *PedidoServiceTestSuite) TestCreatePedido_JornadaClosedWhileCreating() {
	req := nuevoPedido()
	suite.expectUnusedKey(req.ClientRequestID)
	suite.jornadaRepo.On("FindJornadaAbierta", suite.ctx).Return(suite.jornada, nil).Once()
	suite.expectPrice(domain.CodigoConEmpaque, 180)
	suite.pedidoRepo.On("SavePedido", suite.ctx, mock.AnythingOfType("domain.Pedido")).Return(domain.ErrJornadaYaCerrada).Once()

	_, _, err := suite.service.CreatePedido(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *PedidoServiceTestSuite) existingExactPedido(cantidad int) *domain.Pedido {
	req := nuevoPedido()
	req.Cantidad = cantidad
	return storedFor(req, suite.jornada.ID)
}

func (suite *PedidoServiceTestSuite) TestUpdatePedido_QuantityResettlesAtCurrentPrice() {
	existing := suite.existingExactPedido(2)
	suite.Require().Equal("360", existing.Total.String())
	suite.pedidoRepo.On("UpdatePedido", suite.ctx, existing.ID, suite.clock.Now()).Return(existing, nil).Once()
	suite.expectPrice(domain.CodigoConEmpaque, 180)

	cantidad := 3
	p, err := suite.service.UpdatePedido(suite.ctx, existing.ID, domain.PedidoPatch{Cantidad: &cantidad})

	suite.Require().NoError(err)
	suite.Equal(3, p.Cantidad)
	suite.Equal("540", p.Total.String())
	suite.Equal("540", p.MontoPagado.String())
	suite.True(p.Vuelto.IsZero())
	suite.Equal(suite.clock.Now(), p.UpdatedAt)
}

func (suite *PedidoServiceTestSuite) TestUpdatePedido_EstadoOnlySkipsCatalog() {
	existing := suite.existingExactPedido(2)
	suite.pedidoRepo.On("UpdatePedido", suite.ctx, existing.ID, suite.clock.Now()).Return(existing, nil).Once()

	estado := string(domain.PedidoEntregado)
	p, err := suite.service.UpdatePedido(suite.ctx, existing.ID, domain.PedidoPatch{Estado: &estado})

	suite.Require().NoError(err)
	suite.Equal(domain.PedidoEntregado, p.Estado)
	suite.Equal("360", p.Total.String())
	suite.catalogRepo.AssertNotCalled(suite.T(), "FindTipoSopaByCodigo", mock.Anything, mock.Anything)
}

func (suite *PedidoServiceTestSuite) TestUpdatePedido_InsufficientAfterResettle() {
	existing := suite.existingExactPedido(1)
	suite.pedidoRepo.On("UpdatePedido", suite.ctx, existing.ID, suite.clock.Now()).Return(existing, nil).Once()
	suite.expectPrice(domain.CodigoConEmpaque, 180)

	exacto := false
	monto := decimal.NewFromInt(100)
	p, err := suite.service.UpdatePedido(suite.ctx, existing.ID, domain.PedidoPatch{PagoConMontoExacto: &exacto, MontoPagado: &monto})

	suite.Nil(p)
	suite.ErrorIs(err, domain.ErrMontoInsuficiente)
}

func (suite *PedidoServiceTestSuite) TestUpdatePedido_InvalidEstadoRejectedUpfront() {
	estado := "PERDIDO"
	p, err := suite.service.UpdatePedido(suite.ctx, uuid.NewString(), domain.PedidoPatch{Estado: &estado})

	suite.Nil(p)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.pedidoRepo.AssertNotCalled(suite.T(), "UpdatePedido", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PedidoServiceTestSuite) TestUpdatePedido_MalformedIDIsNotFound() {
	cliente := "Ana"
	_, err := suite.service.UpdatePedido(suite.ctx, "not-a-uuid", domain.PedidoPatch{Cliente: &cliente})
	suite.ErrorIs(err, domain.ErrPedidoNoExiste)
}

func (suite *PedidoServiceTestSuite) TestUpdatePedido_NotFound() {
	id := uuid.NewString()
	suite.pedidoRepo.On("UpdatePedido", suite.ctx, id, suite.clock.Now()).Return(nil, domain.ErrPedidoNoExiste).Once()

	cliente := "Ana"
	_, err := suite.service.UpdatePedido(suite.ctx, id, domain.PedidoPatch{Cliente: &cliente})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PedidoServiceTestSuite) TestDeletePedido() {
	id := uuid.NewString()
	suite.pedidoRepo.On("SoftDeletePedido", suite.ctx, id, suite.clock.Now()).Return(nil).Once()
	suite.NoError(suite.service.DeletePedido(suite.ctx, id))
}

func (suite *PedidoServiceTestSuite) TestDeletePedido_NotFound() {
	id := uuid.NewString()
	suite.pedidoRepo.On("SoftDeletePedido", suite.ctx, id, suite.clock.Now()).Return(domain.ErrPedidoNoExiste).Once()
	suite.ErrorIs(suite.service.DeletePedido(suite.ctx, id), apperrors.ErrNotFound)
}

func (suite *PedidoServiceTestSuite) TestGetPedido() {
	existing := suite.existingExactPedido(1)
	suite.pedidoRepo.On("FindPedidoByID", suite.ctx, existing.ID).Return(existing, nil).Once()

	p, err := suite.service.GetPedido(suite.ctx, existing.ID)

	suite.Require().NoError(err)
	suite.Equal(existing, p)
}

func (suite *PedidoServiceTestSuite) TestListPedidos_Filters() {
	estado := domain.PedidoPendiente
	params := portsrepo.ListPedidosParams{JornadaID: suite.jornada.ID, Estado: &estado}
	suite.pedidoRepo.On("ListPedidos", suite.ctx, params).Return([]domain.Pedido{*suite.existingExactPedido(1)}, nil).Once()

	pedidos, err := suite.service.ListPedidos(suite.ctx, portssvc.ListPedidosQuery{JornadaID: suite.jornada.ID, Estado: "PENDIENTE"})

	suite.Require().NoError(err)
	suite.Len(pedidos, 1)
}

func (suite *PedidoServiceTestSuite) TestListPedidos_InvalidEstado() {
	_, err := suite.service.ListPedidos(suite.ctx, portssvc.ListPedidosQuery{Estado: "pendiente"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func TestPedidoService(t *testing.T) {
	suite.Run(t, new(PedidoServiceTestSuite))
}
