package routes

import (
	"net/http"
	"time"

	"veranda/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoomRoutes registers catalog administration endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.GET("", hb.ListRoomsHandler)
		api.POST("", hb.CreateRoomHandler)
		api.GET("/id/:id", hb.GetRoomByIDHandler)
		api.GET("/slug/:slug", hb.GetRoomBySlugHandler)
		api.PUT("/:id", hb.UpdateRoomHandler)
		api.DELETE("/:id", hb.DeleteRoomHandler)

		// Rate table administration; overlap among enabled rules is rejected here.
		api.POST("/:id/rules", hb.AddPricingRuleHandler)
		api.PUT("/:id/rules/:ruleId", hb.UpdatePricingRuleHandler)
		api.DELETE("/:id/rules/:ruleId", hb.RemovePricingRuleHandler)

		// Date-aware rate display for the booking card.
		api.GET("/:id/rate", hb.GetRoomRateHandler)
	}
}

// RegisterQuoteRoutes registers quote endpoints.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/quotes")
	{
		api.POST("", hb.CreateQuoteHandler)
		api.GET("/:id", hb.GetQuoteHandler)
	}
}

// RegisterBookingRoutes registers order initiation and payment verification.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("/order", hb.InitiateOrderHandler)
		api.POST("/verify", hb.VerifyPaymentHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.POST("/:id/cancel", hb.CancelBookingHandler)
	}
}

// RegisterStorageRoutes registers photo upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.POST("/photos", hb.UploadPhotoHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes wires CORS and all route groups onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterRoomRoutes(r, hb)
	RegisterQuoteRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}
