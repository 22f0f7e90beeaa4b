package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/martinbaumann-sky/BaumannCo/utils"
)

// HandlerBundle groups the HTTP handlers consumed by route registration.
type HandlerBundle struct {
	// Google OAuth endpoints.
	StatusHandler        gin.HandlerFunc
	AuthURLHandler       gin.HandlerFunc
	OAuthCallbackHandler gin.HandlerFunc

	// Booking engine endpoints.
	AvailabilityHandler  gin.HandlerFunc
	CreateBookingHandler gin.HandlerFunc
}

// respondServiceError maps typed service errors onto HTTP responses.
// Upstream failures get a generic apology; the cause is only logged.
func respondServiceError(c *gin.Context, logger *zap.Logger, err error, upstreamMessage string) {
	var validationErr *utils.ValidationError
	var upstreamErr *utils.UpstreamError
	switch {
	case errors.Is(err, utils.ErrNotAuthorized):
		utils.JSONError(c, http.StatusForbidden,
			"No está conectado el calendario. Visitá `/api/google/auth-url`, autorizá la cuenta y volvé a cargar.", "")
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Message, "")
	case errors.As(err, &upstreamErr):
		logger.Error("Upstream calendar call failed", zap.String("op", upstreamErr.Op), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, upstreamMessage, "")
	default:
		logger.Error("Unexpected service error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, upstreamMessage, "")
	}
}
