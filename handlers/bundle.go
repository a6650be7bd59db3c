package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	// Room catalog administration.
	CreateRoomHandler    gin.HandlerFunc
	UpdateRoomHandler    gin.HandlerFunc
	DeleteRoomHandler    gin.HandlerFunc
	GetRoomByIDHandler   gin.HandlerFunc
	GetRoomBySlugHandler gin.HandlerFunc
	ListRoomsHandler     gin.HandlerFunc

	// Rate table administration and display.
	AddPricingRuleHandler    gin.HandlerFunc
	UpdatePricingRuleHandler gin.HandlerFunc
	RemovePricingRuleHandler gin.HandlerFunc
	GetRoomRateHandler       gin.HandlerFunc

	// Quote endpoints.
	CreateQuoteHandler gin.HandlerFunc
	GetQuoteHandler    gin.HandlerFunc

	// Booking endpoints.
	InitiateOrderHandler gin.HandlerFunc
	VerifyPaymentHandler gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc

	// Storage endpoints.
	UploadPhotoHandler gin.HandlerFunc
}
