package handlers

import (
	"net/http"

	"veranda/services/storage"
	"veranda/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler exposes room photo uploads.
type StorageHandler struct {
	Service storage.StorageService
	Logger  *zap.Logger
}

// NewStorageHandler creates a StorageHandler.
func NewStorageHandler(service storage.StorageService, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{Service: service, Logger: logger}
}

// UploadPhotoHandler handles POST /api/storage/photos. It accepts a multipart
// "file" field and returns the hosted image URL.
func (h *StorageHandler) UploadPhotoHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "missing file field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unable to read uploaded file")
		return
	}
	defer file.Close()

	folder := c.DefaultPostForm("folder", "rooms")
	url, err := h.Service.UploadPhoto(c.Request.Context(), file, folder)
	if err != nil {
		h.Logger.Error("photo upload failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "photo upload failed", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
