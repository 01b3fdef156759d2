package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sopas_backend/internal/core/ports/services"
	"github.com/SscSPs/sopas_backend/internal/dto"
	"github.com/SscSPs/sopas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pedidoHandler handles HTTP requests related to pedidos.
type pedidoHandler struct {
	pedidoService portssvc.PedidoSvcFacade
}

func newPedidoHandler(ps portssvc.PedidoSvcFacade) *pedidoHandler {
	return &pedidoHandler{pedidoService: ps}
}

// registerPedidoRoutes registers routes related to pedidos.
func registerPedidoRoutes(rg *gin.RouterGroup, pedidoService portssvc.PedidoSvcFacade) {
	h := newPedidoHandler(pedidoService)

	pedidos := rg.Group("/pedidos")
	{
		pedidos.POST("", h.createPedido)
		pedidos.GET("", h.listPedidos)
		pedidos.GET("/:pedidoID", h.getPedido)
		pedidos.PATCH("/:pedidoID", h.updatePedido)
		pedidos.DELETE("/:pedidoID", h.deletePedido)
	}
}

// createPedido godoc
// @Summary Create a pedido
// @Description Creates a pedido in the open jornada, priced from the catalog. Retrying with the same client_request_id and body returns the stored pedido with 200.
// @Tags pedidos
// @Accept json
// @Produce json
// @Param pedido body dto.CreatePedidoRequest true "Pedido"
// @Success 201 {object} dto.PedidoResponse
// @Success 200 {object} dto.PedidoResponse "Replayed request"
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "No hay jornada activa / Tipo de sopa no existe"
// @Failure 409 {object} handlers.ErrorResponse "client_request_id reused with a different body"
// @Router /pedidos [post]
func (h *pedidoHandler) createPedido(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create pedido")
		return
	}

	logger.Info("Received request to create pedido",
		slog.String("client_request_id", req.ClientRequestID),
		slog.String("tipo_sopa_codigo", req.TipoSopaCodigo))

	pedido, replayed, err := h.pedidoService.CreatePedido(c.Request.Context(), req.ToNuevoPedido())
	if err != nil {
		respondError(c, err, "create pedido")
		return
	}

	status := http.StatusCreated
	if replayed {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToPedidoResponse(pedido))
}

// listPedidos godoc
// @Summary List pedidos
// @Description Lists non-deleted pedidos newest first
// @Tags pedidos
// @Produce json
// @Param jornada_id query string false "Jornada ID"
// @Param estado query string false "PENDIENTE, ENTREGADO or CANCELADO"
// @Success 200 {array} dto.PedidoResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /pedidos [get]
func (h *pedidoHandler) listPedidos(c *gin.Context) {
	var params dto.ListPedidosParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list pedidos")
		return
	}

	pedidos, err := h.pedidoService.ListPedidos(c.Request.Context(), portssvc.ListPedidosQuery{
		JornadaID: params.JornadaID,
		Estado:    params.Estado,
	})
	if err != nil {
		respondError(c, err, "list pedidos")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPedidoResponse(pedidos))
}

// getPedido godoc
// @Summary Get a pedido
// @Tags pedidos
// @Produce json
// @Param pedidoID path string true "Pedido ID"
// @Success 200 {object} dto.PedidoResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /pedidos/{pedidoID} [get]
func (h *pedidoHandler) getPedido(c *gin.Context) {
	pedido, err := h.pedidoService.GetPedido(c.Request.Context(), c.Param("pedidoID"))
	if err != nil {
		respondError(c, err, "get pedido")
		return
	}
	c.JSON(http.StatusOK, dto.ToPedidoResponse(pedido))
}

// updatePedido godoc
// @Summary Update a pedido
// @Description Partial update. Changing product, quantity or payment re-settles the pedido at the current catalog price.
// @Tags pedidos
// @Accept json
// @Produce json
// @Param pedidoID path string true "Pedido ID"
// @Param pedido body dto.UpdatePedidoRequest true "Fields to change"
// @Success 200 {object} dto.PedidoResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /pedidos/{pedidoID} [patch]
func (h *pedidoHandler) updatePedido(c *gin.Context) {
	var req dto.UpdatePedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update pedido")
		return
	}

	pedido, err := h.pedidoService.UpdatePedido(c.Request.Context(), c.Param("pedidoID"), req.ToPatch())
	if err != nil {
		respondError(c, err, "update pedido")
		return
	}
	c.JSON(http.StatusOK, dto.ToPedidoResponse(pedido))
}

// deletePedido godoc
// @Summary Delete a pedido
// @Description Soft delete. The pedido disappears from listings, the dashboard and the closing snapshot.
// @Tags pedidos
// @Param pedidoID path string true "Pedido ID"
// @Success 204 "No Content"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /pedidos/{pedidoID} [delete]
func (h *pedidoHandler) deletePedido(c *gin.Context) {
	if err := h.pedidoService.DeletePedido(c.Request.Context(), c.Param("pedidoID")); err != nil {
		respondError(c, err, "delete pedido")
		return
	}
	c.Status(http.StatusNoContent)
}
