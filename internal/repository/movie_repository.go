package repository

import (
	"context"
	"errors"
	"time"

	"theatre-backend/internal/database"
	"theatre-backend/internal/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	// CreateBatch inserts all rows in a single transaction; a failure rolls
	// back the whole page.
	CreateBatch(ctx context.Context, movies []models.Movie) error
	Update(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*models.Movie, error)
	FindAll(ctx context.Context) ([]models.Movie, error)
	FindByTheatre(ctx context.Context, theatreID string) ([]models.Movie, error)
	FindByName(ctx context.Context, name string) ([]models.Movie, error)

	CreateSyncLog(ctx context.Context, log *models.SyncLog) error
	GetLastSyncLog(ctx context.Context) (*models.SyncLog, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) CreateBatch(ctx context.Context, movies []models.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&movies).Error
	})
}

func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(movie).Error
}

func (r *movieRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Movie{}, "id = ?", id).Error
}

// FindByID returns (nil, nil) when the row does not exist.
func (r *movieRepository) FindByID(ctx context.Context, id string) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Find(&movies).Error
	return movies, err
}

func (r *movieRepository) FindByTheatre(ctx context.Context, theatreID string) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Where("theatre_id = ?", theatreID).Find(&movies).Error
	return movies, err
}

func (r *movieRepository) FindByName(ctx context.Context, name string) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Where("name = ?", name).Find(&movies).Error
	return movies, err
}

func (r *movieRepository) CreateSyncLog(ctx context.Context, log *models.SyncLog) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(log).Error
}

func (r *movieRepository) GetLastSyncLog(ctx context.Context) (*models.SyncLog, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var log models.SyncLog
	err := r.db.WithContext(ctx).Order("synced_at DESC").First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
