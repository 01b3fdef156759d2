package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sopas_backend/internal/core/ports/services"
	"github.com/SscSPs/sopas_backend/internal/dto"
	"github.com/SscSPs/sopas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// jornadaHandler handles HTTP requests related to jornadas.
type jornadaHandler struct {
	jornadaService portssvc.JornadaSvcFacade
}

func newJornadaHandler(js portssvc.JornadaSvcFacade) *jornadaHandler {
	return &jornadaHandler{jornadaService: js}
}

// registerJornadaRoutes registers routes related to jornadas.
func registerJornadaRoutes(rg *gin.RouterGroup, jornadaService portssvc.JornadaSvcFacade) {
	h := newJornadaHandler(jornadaService)

	jornadas := rg.Group("/jornadas")
	{
		jornadas.POST("/abrir", h.openToday)
		jornadas.GET("/activa", h.getActive)
		jornadas.GET("", h.listJornadas)
		jornadas.GET("/:jornadaID", h.getJornada)
		jornadas.POST("/:jornadaID/cerrar", h.closeJornada)
		jornadas.GET("/:jornadaID/dashboard", h.getDashboard)
	}
}

// openToday godoc
// @Summary Open today's jornada
// @Description Returns the jornada of the current business date, creating it if needed. Any jornada left open from an earlier date is closed first.
// @Tags jornadas
// @Produce json
// @Success 200 {object} dto.JornadaResponse
// @Failure 400 {object} handlers.ErrorResponse "La jornada de hoy ya fue cerrada."
// @Router /jornadas/abrir [post]
func (h *jornadaHandler) openToday(c *gin.Context) {
	j, err := h.jornadaService.OpenToday(c.Request.Context())
	if err != nil {
		respondError(c, err, "open jornada")
		return
	}
	c.JSON(http.StatusOK, dto.ToJornadaResponse(j))
}

// getActive godoc
// @Summary Get the open jornada
// @Tags jornadas
// @Produce json
// @Success 200 {object} dto.JornadaResponse
// @Failure 404 {object} handlers.ErrorResponse "No hay jornada activa"
// @Router /jornadas/activa [get]
func (h *jornadaHandler) getActive(c *gin.Context) {
	j, err := h.jornadaService.GetActive(c.Request.Context())
	if err != nil {
		respondError(c, err, "get active jornada")
		return
	}
	c.JSON(http.StatusOK, dto.ToJornadaResponse(j))
}

// listJornadas godoc
// @Summary List jornadas
// @Description Lists jornadas newest first
// @Tags jornadas
// @Produce json
// @Param estado query string false "ABIERTA or CERRADA"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.JornadaResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /jornadas [get]
func (h *jornadaHandler) listJornadas(c *gin.Context) {
	var params dto.ListJornadasParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list jornadas")
		return
	}

	jornadas, err := h.jornadaService.ListJornadas(c.Request.Context(), portssvc.ListJornadasQuery{
		Estado: params.Estado,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		respondError(c, err, "list jornadas")
		return
	}
	c.JSON(http.StatusOK, dto.ToListJornadaResponse(jornadas))
}

// getJornada godoc
// @Summary Get a jornada
// @Tags jornadas
// @Produce json
// @Param jornadaID path string true "Jornada ID"
// @Success 200 {object} dto.JornadaResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /jornadas/{jornadaID} [get]
func (h *jornadaHandler) getJornada(c *gin.Context) {
	j, err := h.jornadaService.GetJornada(c.Request.Context(), c.Param("jornadaID"))
	if err != nil {
		respondError(c, err, "get jornada")
		return
	}
	c.JSON(http.StatusOK, dto.ToJornadaResponse(j))
}

// closeJornada godoc
// @Summary Close a jornada
// @Description Cancels every pending pedido and freezes the financial snapshot
// @Tags jornadas
// @Produce json
// @Param jornadaID path string true "Jornada ID"
// @Success 200 {object} dto.JornadaResponse
// @Failure 400 {object} handlers.ErrorResponse "La jornada ya está cerrada"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /jornadas/{jornadaID}/cerrar [post]
func (h *jornadaHandler) closeJornada(c *gin.Context) {
	jornadaID := c.Param("jornadaID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to close jornada", slog.String("jornada_id", jornadaID))

	j, err := h.jornadaService.Close(c.Request.Context(), jornadaID)
	if err != nil {
		respondError(c, err, "close jornada")
		return
	}
	c.JSON(http.StatusOK, dto.ToJornadaResponse(j))
}

// getDashboard godoc
// @Summary Live dashboard of a jornada
// @Tags jornadas
// @Produce json
// @Param jornadaID path string true "Jornada ID"
// @Success 200 {object} dto.DashboardResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /jornadas/{jornadaID}/dashboard [get]
func (h *jornadaHandler) getDashboard(c *gin.Context) {
	d, err := h.jornadaService.Dashboard(c.Request.Context(), c.Param("jornadaID"))
	if err != nil {
		respondError(c, err, "build dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(d))
}
