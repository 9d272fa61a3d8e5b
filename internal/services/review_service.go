package services

import (
	"context"

	"theatre-backend/internal/apperrors"
	"theatre-backend/internal/models"
	"theatre-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type ReviewService interface {
	// CreateReview stores the review under the authenticated author; the
	// caller-supplied user_id never reaches storage.
	CreateReview(ctx context.Context, content string, rating float64, authorID uint, movieID string) (*models.Review, error)
	GetReview(ctx context.Context, id uint) (*models.Review, error)
}

type reviewService struct {
	repo   repository.ReviewRepository
	logger *logrus.Logger
}

func NewReviewService(repo repository.ReviewRepository, logger *logrus.Logger) ReviewService {
	return &reviewService{
		repo:   repo,
		logger: logger,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, content string, rating float64, authorID uint, movieID string) (*models.Review, error) {
	if content == "" || rating == 0 || movieID == "" {
		return nil, apperrors.Validation("All fields are required for review creation")
	}

	review := &models.Review{
		Content: content,
		Rating:  rating,
		UserID:  authorID,
		MovieID: movieID,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperrors.NotFound("Review not found")
	}
	return review, nil
}
