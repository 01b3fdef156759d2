package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/sopas_backend/internal/apperrors"
	"github.com/SscSPs/sopas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Error interno del servidor"

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps an error kind to its HTTP status. Unknown errors become a 500
// without leaking internals.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var status int
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidState):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: internalErrorMessage})
		return
	}

	logger.Warn("Rejected request to "+action,
		slog.Int("status", status),
		slog.String("error", err.Error()))
	c.JSON(status, ErrorResponse{Error: apperrors.Message(err)})
}

// respondBindError answers malformed bodies and query strings.
func respondBindError(c *gin.Context, err error, action string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request to "+action, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Solicitud inválida: " + err.Error()})
}
