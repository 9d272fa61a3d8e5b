package handlers

import (
	"strconv"

	"theatre-backend/internal/apperrors"
	"theatre-backend/internal/middleware"
	"theatre-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReviewHandler struct {
	service services.ReviewService
	logger  *logrus.Logger
}

func NewReviewHandler(service services.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger,
	}
}

// CreateReview godoc
// @Summary Create a review
// @Description Store a review authored by the authenticated user. The body user_id must be present but the stored author is always the token identity.
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body CreateReviewRequest true "Review fields"
// @Success 201 {object} map[string]string "Review created successfully"
// @Failure 400 {object} map[string]string "Missing field"
// @Security BearerAuth
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	// user_id is required on the wire for compatibility with existing
	// clients, but the stored author is the authenticated identity.
	if req.Content == "" || req.Rating == 0 || req.UserID == 0 || req.MovieID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields are required for review creation"})
	}

	identity := middleware.IdentityFrom(c)
	if _, err := h.service.CreateReview(c.Context(), req.Content, req.Rating, identity.UserID, req.MovieID); err != nil {
		status := apperrors.HTTPStatus(err)
		if status >= fiber.StatusInternalServerError {
			h.logger.WithError(err).Error("Failed to create review")
			return c.Status(status).JSON(fiber.Map{"message": "Failed to create review"})
		}
		return c.Status(status).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Review created successfully"})
}

// GetReview godoc
// @Summary Get a review by id
// @Tags reviews
// @Produce json
// @Param reviewId path int true "Review ID"
// @Success 200 {object} models.Review
// @Failure 404 {object} map[string]string "Review not found"
// @Router /reviews/{reviewId} [get]
func (h *ReviewHandler) GetReview(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("reviewId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid review ID"})
	}

	review, err := h.service.GetReview(c.Context(), uint(id))
	if err != nil {
		status := apperrors.HTTPStatus(err)
		if status >= fiber.StatusInternalServerError {
			h.logger.WithError(err).WithField("review_id", id).Error("Failed to get review")
			return c.Status(status).JSON(fiber.Map{"message": "Failed to retrieve review"})
		}
		return c.Status(status).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(review)
}
