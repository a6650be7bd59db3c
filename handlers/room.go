package handlers

import (
	"errors"
	"net/http"
	"time"

	roomRepo "veranda/database/repository/room"
	"veranda/models"
	"veranda/services/rooms"
	"veranda/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomHandler exposes the administrative room catalog surface.
type RoomHandler struct {
	Service rooms.RoomService
	Logger  *zap.Logger
}

// NewRoomHandler creates a RoomHandler.
func NewRoomHandler(service rooms.RoomService, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{Service: service, Logger: logger}
}

// CreateRoomHandler handles POST /api/rooms.
func (h *RoomHandler) CreateRoomHandler(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.CreateRoom(&room)
	if err != nil {
		h.respondRoomError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateRoomHandler handles PUT /api/rooms/:id.
func (h *RoomHandler) UpdateRoomHandler(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	room.ID = c.Param("id")

	updated, err := h.Service.UpdateRoom(&room)
	if err != nil {
		h.respondRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteRoomHandler handles DELETE /api/rooms/:id.
func (h *RoomHandler) DeleteRoomHandler(c *gin.Context) {
	if err := h.Service.DeleteRoom(c.Param("id")); err != nil {
		h.respondRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GetRoomByIDHandler handles GET /api/rooms/id/:id.
func (h *RoomHandler) GetRoomByIDHandler(c *gin.Context) {
	room, err := h.Service.GetRoomByID(c.Param("id"))
	if err != nil {
		h.respondRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// GetRoomBySlugHandler handles GET /api/rooms/slug/:slug.
func (h *RoomHandler) GetRoomBySlugHandler(c *gin.Context) {
	room, err := h.Service.GetRoomBySlug(c.Param("slug"))
	if err != nil {
		h.respondRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// ListRoomsHandler handles GET /api/rooms.
func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	all, err := h.Service.ListRooms()
	if err != nil {
		h.respondRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": all})
}

// AddPricingRuleHandler handles POST /api/rooms/:id/rules.
func (h *RoomHandler) AddPricingRuleHandler(c *gin.Context) {
	var rule models.PricingRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.AddPricingRule(c.Param("id"), rule)
	if err != nil {
		h.respondRoomError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePricingRuleHandler handles PUT /api/rooms/:id/rules/:ruleId.
func (h *RoomHandler) UpdatePricingRuleHandler(c *gin.Context) {
	var rule models.PricingRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	rule.ID = c.Param("ruleId")

	if err := h.Service.UpdatePricingRule(c.Param("id"), rule); err != nil {
		h.respondRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

// RemovePricingRuleHandler handles DELETE /api/rooms/:id/rules/:ruleId.
func (h *RoomHandler) RemovePricingRuleHandler(c *gin.Context) {
	if err := h.Service.RemovePricingRule(c.Param("id"), c.Param("ruleId")); err != nil {
		h.respondRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GetRoomRateHandler handles GET /api/rooms/:id/rate. With checkIn/checkOut
// query params it resolves date-ranged pricing rules; without them it returns
// the base rate. This is the one date-aware pricing path.
func (h *RoomHandler) GetRoomRateHandler(c *gin.Context) {
	var checkIn, checkOut *time.Time
	if ci := c.Query("checkIn"); ci != "" {
		t, err := time.Parse("2006-01-02", ci)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "checkIn must be YYYY-MM-DD")
			return
		}
		checkIn = &t
	}
	if co := c.Query("checkOut"); co != "" {
		t, err := time.Parse("2006-01-02", co)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "checkOut must be YYYY-MM-DD")
			return
		}
		checkOut = &t
	}

	rate, err := h.Service.RateForStay(c.Param("id"), checkIn, checkOut)
	if err != nil {
		h.respondRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, rate)
}

func (h *RoomHandler) respondRoomError(c *gin.Context, err error) {
	var validationErr *rooms.ValidationError
	switch {
	case errors.Is(err, roomRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "room not found", "")
	case errors.Is(err, roomRepo.ErrSlugTaken):
		utils.JSONError(c, http.StatusConflict, "room slug already in use", "")
	case errors.Is(err, rooms.ErrRuleOverlap):
		utils.JSONError(c, http.StatusConflict, "pricing rule overlap", err.Error())
	case errors.Is(err, rooms.ErrInvalidRuleRange):
		utils.JSONError(c, http.StatusBadRequest, "invalid pricing rule", err.Error())
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", validationErr.Error())
	default:
		h.Logger.Error("room operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "room operation failed", "")
	}
}
