package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/martinbaumann-sky/BaumannCo/handlers"
)

// RegisterGoogleRoutes registers the OAuth flow and booking engine
// endpoints.
func RegisterGoogleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/google")
	{
		api.GET("/status", hb.StatusHandler)
		api.GET("/auth-url", hb.AuthURLHandler)
		api.GET("/oauth2callback", hb.OAuthCallbackHandler)
		api.GET("/availability", hb.AvailabilityHandler)
		api.POST("/event", hb.CreateBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterGoogleRoutes(r, hb)
	RegisterHealthRoute(r)
}
