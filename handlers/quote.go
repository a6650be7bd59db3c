package handlers

import (
	"errors"
	"net/http"

	"veranda/services/pricing"
	"veranda/services/quote"
	"veranda/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler exposes quote creation and retrieval.
type QuoteHandler struct {
	Service quote.QuoteService
	Logger  *zap.Logger
}

// NewQuoteHandler creates a QuoteHandler.
func NewQuoteHandler(service quote.QuoteService, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{Service: service, Logger: logger}
}

// CreateQuoteHandler handles POST /api/quotes. A successful response carries
// the full price breakdown and a quote id valid for 15 minutes.
func (h *QuoteHandler) CreateQuoteHandler(c *gin.Context) {
	var req quote.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	q, err := h.Service.CreateQuote(c.Request.Context(), req)
	if err != nil {
		h.respondQuoteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, q)
}

// GetQuoteHandler handles GET /api/quotes/:id. Expired quotes surface as not
// found.
func (h *QuoteHandler) GetQuoteHandler(c *gin.Context) {
	q, err := h.Service.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *QuoteHandler) respondQuoteError(c *gin.Context, err error) {
	var validationErr *quote.ValidationError
	var inventoryErr *pricing.InsufficientInventoryError
	switch {
	case errors.Is(err, quote.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "room not found", "")
	case errors.Is(err, quote.ErrQuoteNotFound):
		utils.JSONError(c, http.StatusNotFound, "quote not found or expired", "")
	case errors.As(err, &inventoryErr):
		c.JSON(http.StatusConflict, gin.H{
			"message":        "insufficient inventory",
			"requestedRooms": inventoryErr.Requested,
			"availableRooms": inventoryErr.Available,
		})
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", validationErr.Error())
	default:
		h.Logger.Error("quote operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "quote operation failed", "")
	}
}
