package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/sopas_backend/internal/core/ports/services"
	"github.com/SscSPs/sopas_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles HTTP requests related to the soup catalog.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

// registerCatalogRoutes registers routes related to the catalog.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)

	catalogo := rg.Group("/catalogo/tipos-sopa")
	{
		catalogo.GET("", h.listTiposSopa)
		catalogo.GET("/:codigo/precio", h.getPrecio)
		catalogo.PUT("/:codigo/precio", h.updatePrecio)
	}
}

// listTiposSopa godoc
// @Summary List catalog
// @Description Lists every soup type with its current unit price
// @Tags catalogo
// @Produce json
// @Success 200 {array} dto.TipoSopaResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /catalogo/tipos-sopa [get]
func (h *catalogHandler) listTiposSopa(c *gin.Context) {
	tipos, err := h.catalogService.ListTiposSopa(c.Request.Context())
	if err != nil {
		respondError(c, err, "list catalog")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTipoSopaResponse(tipos))
}

// getPrecio godoc
// @Summary Get unit price
// @Tags catalogo
// @Produce json
// @Param codigo path string true "Soup type code" example(CON_EMPAQUE)
// @Success 200 {object} dto.PrecioResponse
// @Failure 404 {object} handlers.ErrorResponse "Tipo de sopa no existe"
// @Router /catalogo/tipos-sopa/{codigo}/precio [get]
func (h *catalogHandler) getPrecio(c *gin.Context) {
	codigo := c.Param("codigo")
	precio, err := h.catalogService.GetPrice(c.Request.Context(), codigo)
	if err != nil {
		respondError(c, err, "get price")
		return
	}
	c.JSON(http.StatusOK, dto.PrecioResponse{Codigo: codigo, Precio: precio})
}

// updatePrecio godoc
// @Summary Update unit price
// @Description Changes the price used by pedidos created or re-settled from now on
// @Tags catalogo
// @Accept json
// @Produce json
// @Param codigo path string true "Soup type code"
// @Param body body dto.UpdatePrecioRequest true "New price"
// @Success 200 {object} dto.TipoSopaResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /catalogo/tipos-sopa/{codigo}/precio [put]
func (h *catalogHandler) updatePrecio(c *gin.Context) {
	var req dto.UpdatePrecioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update price")
		return
	}

	tipo, err := h.catalogService.UpdatePrice(c.Request.Context(), c.Param("codigo"), req.Precio)
	if err != nil {
		respondError(c, err, "update price")
		return
	}
	c.JSON(http.StatusOK, dto.ToTipoSopaResponse(tipo))
}
