package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/martinbaumann-sky/BaumannCo/services/gcal"
)

// GoogleAuthHandler serves the OAuth connection flow for the calendar
// account.
type GoogleAuthHandler struct {
	Conn   *gcal.Connector
	Logger *zap.Logger
}

func NewGoogleAuthHandler(conn *gcal.Connector, logger *zap.Logger) *GoogleAuthHandler {
	return &GoogleAuthHandler{Conn: conn, Logger: logger}
}

// StatusHandler reports whether calendar credentials are stored.
func (h *GoogleAuthHandler) StatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authorized": h.Conn.Authorized()})
}

// AuthURLHandler returns the consent URL the front-end should open.
func (h *GoogleAuthHandler) AuthURLHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"url": h.Conn.AuthURL()})
}

// OAuthCallbackHandler exchanges the authorization code and persists the
// resulting tokens.
func (h *GoogleAuthHandler) OAuthCallbackHandler(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.String(http.StatusBadRequest, "Falta el código de OAuth.")
		return
	}
	if err := h.Conn.Exchange(c.Request.Context(), code); err != nil {
		h.Logger.Error("OAuth code exchange failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Hubo un error guardando las credenciales.")
		return
	}
	c.String(http.StatusOK,
		"Autorización completa. Podés cerrar esta ventana y volver al sitio para terminar la reserva.")
}
