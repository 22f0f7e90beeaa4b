package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/martinbaumann-sky/BaumannCo/services/availability"
)

// AvailabilityHandler serves the computed slot availability.
type AvailabilityHandler struct {
	Service availability.Service
	Logger  *zap.Logger
}

func NewAvailabilityHandler(svc availability.Service, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

// GetAvailabilityHandler returns the bookable days and slots for the
// lookahead window.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	resp, err := h.Service.GetAvailability(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.Logger, err, "No se pudo consultar la disponibilidad.")
		return
	}
	c.JSON(http.StatusOK, resp)
}
