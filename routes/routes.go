package routes

import (
	"net/http"
	"time"

	"innocurve/handlers"
	"innocurve/middleware"
	"innocurve/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the routes need.
type HandlerBundle struct {
	Chat        *handlers.ChatHandler
	Reservation *handlers.ReservationHandler
	Knowledge   *handlers.KnowledgeHandler
}

// RegisterChatRoutes registers the chat widget endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/chat", hb.Chat.HandleChat)
	}
}

// RegisterReservationRoutes registers the booking-form endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/reservation")
	{
		api.GET("/slots", hb.Reservation.GetSlotsHandler)
		api.POST("", hb.Reservation.SubmitHandler)
	}
}

// RegisterAdminRoutes sets up the knowledge curation endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/knowledge", hb.Knowledge.ListHandler)
		adminGroup.POST("/knowledge", hb.Knowledge.CreateHandler)
		adminGroup.PUT("/knowledge/:id", hb.Knowledge.UpdateHandler)
		adminGroup.DELETE("/knowledge/:id", hb.Knowledge.DeleteHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
