package handlers

import (
	"theatre-backend/internal/services"
	"theatre-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	storage *services.StorageService
	logger  *logrus.Logger
}

func NewUploadHandler(storage *services.StorageService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		storage: storage,
		logger:  logger,
	}
}

// GetPresignedURL godoc
// @Summary Presigned poster upload URL
// @Description Generate a presigned PUT URL for a poster image; the returned public_url is usable as a movie img field (admin only)
// @Tags upload
// @Produce json
// @Param filename query string true "Filename"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response "filename is required"
// @Failure 403 {object} utils.Response "Admin access required"
// @Security BearerAuth
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	if h.storage == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Object storage is not configured")
	}

	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	presignedURL, publicURL, err := h.storage.GeneratePresignedURL(filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessDataResponse(c, fiber.StatusOK, "Presigned URL generated successfully", fiber.Map{
		"presigned_url": presignedURL,
		"public_url":    publicURL,
	})
}
