package repository

import (
	"context"
	"errors"
	"time"

	"theatre-backend/internal/database"
	"theatre-backend/internal/models"

	"gorm.io/gorm"
)

type TheatreRepository interface {
	FindByID(ctx context.Context, id string) (*models.Theatre, error)
}

type theatreRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewTheatreRepository(db *database.Database) TheatreRepository {
	return &theatreRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *theatreRepository) FindByID(ctx context.Context, id string) (*models.Theatre, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var theatre models.Theatre
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&theatre).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &theatre, nil
}
