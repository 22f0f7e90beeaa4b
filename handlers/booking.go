package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/martinbaumann-sky/BaumannCo/models"
	"github.com/martinbaumann-sky/BaumannCo/services/booking"
	"github.com/martinbaumann-sky/BaumannCo/utils"
)

// BookingHandler accepts booking submissions and forwards them to the
// booking service.
type BookingHandler struct {
	Service booking.Service
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler validates the submitted reservation and creates the
// calendar event.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	resp, err := h.Service.Book(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, booking.ErrSlotTaken) {
			utils.JSONError(c, http.StatusConflict, "El horario elegido ya no está disponible.", "")
			return
		}
		respondServiceError(c, h.Logger, err, "Ocurrió un problema creando el evento. Verificá que el token tenga permisos.")
		return
	}
	c.JSON(http.StatusOK, resp)
}
