package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"theatre-backend/internal/apperrors"
	"theatre-backend/internal/config"
	"theatre-backend/internal/models"
	"theatre-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type MovieService interface {
	// SyncPage pulls one page of catalog entries, skips ids already present
	// and inserts the rest as a single batch.
	SyncPage(ctx context.Context, page int) (*models.SyncLog, error)
	GetLastSyncLog(ctx context.Context) (*models.SyncLog, error)

	AddMovie(ctx context.Context, movie *models.Movie) error
	EditMovie(ctx context.Context, id string, update MovieUpdate) error
	RemoveMovie(ctx context.Context, id string) error

	GetAllMovies(ctx context.Context) ([]models.Movie, error)
	GetMoviesByTheatre(ctx context.Context, theatreID string) ([]models.Movie, error)
	GetMoviesByName(ctx context.Context, name string) ([]models.Movie, error)
}

// MovieUpdate carries the edit payload; nil fields are left untouched.
type MovieUpdate struct {
	Name      *string
	Img       *string
	Genre     *string
	TheatreID *string
}

type movieService struct {
	repo        repository.MovieRepository
	theatreRepo repository.TheatreRepository
	tmdb        TMDBClient
	cfg         config.TMDBConfig
	logger      *logrus.Logger
	storage     *StorageService
}

func NewMovieService(repo repository.MovieRepository, theatreRepo repository.TheatreRepository, tmdb TMDBClient, cfg config.TMDBConfig, logger *logrus.Logger, storage *StorageService) MovieService {
	return &movieService{
		repo:        repo,
		theatreRepo: theatreRepo,
		tmdb:        tmdb,
		cfg:         cfg,
		logger:      logger,
		storage:     storage,
	}
}

func (s *movieService) SyncPage(ctx context.Context, page int) (*models.SyncLog, error) {
	if page < 1 {
		page = 1
	}

	syncLog := &models.SyncLog{
		Page:     page,
		Status:   "failed",
		SyncedAt: time.Now().UTC(),
	}

	genreMap, err := s.tmdb.FetchGenreMap(ctx)
	if err != nil {
		return s.failSync(ctx, syncLog, err)
	}

	results, err := s.tmdb.FetchDiscoverPage(ctx, page)
	if err != nil {
		return s.failSync(ctx, syncLog, err)
	}

	var staged []models.Movie
	seen := make(map[string]bool, len(results))
	skipped := 0

	for _, entry := range results {
		id := strconv.Itoa(entry.ID)
		if seen[id] {
			skipped++
			continue
		}
		seen[id] = true

		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return s.failSync(ctx, syncLog, err)
		}
		if existing != nil {
			// Re-ingestion never touches rows already present, even when the
			// upstream fields changed.
			skipped++
			continue
		}

		names := make([]string, 0, len(entry.GenreIDs))
		for _, gid := range entry.GenreIDs {
			if name, ok := genreMap[gid]; ok {
				names = append(names, name)
			}
		}

		staged = append(staged, models.Movie{
			ID:    id,
			Name:  entry.Title,
			Img:   s.cfg.ImageBaseURL + entry.PosterPath,
			Genre: strings.Join(names, ", "),
		})
	}

	if err := s.repo.CreateBatch(ctx, staged); err != nil {
		return s.failSync(ctx, syncLog, err)
	}

	syncLog.Status = "success"
	syncLog.MoviesAdded = len(staged)
	syncLog.MoviesSkipped = skipped
	if err := s.repo.CreateSyncLog(ctx, syncLog); err != nil {
		s.logger.WithError(err).Warn("Failed to record sync log")
	}

	s.logger.WithFields(logrus.Fields{
		"page":           page,
		"movies_added":   syncLog.MoviesAdded,
		"movies_skipped": syncLog.MoviesSkipped,
	}).Info("Catalog sync completed")

	return syncLog, nil
}

func (s *movieService) failSync(ctx context.Context, syncLog *models.SyncLog, cause error) (*models.SyncLog, error) {
	syncLog.ErrorMessage = cause.Error()
	if err := s.repo.CreateSyncLog(ctx, syncLog); err != nil {
		s.logger.WithError(err).Warn("Failed to record sync log")
	}
	return syncLog, cause
}

func (s *movieService) GetLastSyncLog(ctx context.Context) (*models.SyncLog, error) {
	return s.repo.GetLastSyncLog(ctx)
}

func (s *movieService) AddMovie(ctx context.Context, movie *models.Movie) error {
	if movie.ID == "" || movie.Name == "" || movie.Img == "" || movie.Genre == "" ||
		movie.TheatreID == nil || *movie.TheatreID == "" {
		return apperrors.Validation("All fields are required")
	}

	theatre, err := s.theatreRepo.FindByID(ctx, *movie.TheatreID)
	if err != nil {
		return err
	}
	if theatre == nil {
		return apperrors.Validation("Invalid theatre ID")
	}

	return s.repo.Create(ctx, movie)
}

func (s *movieService) EditMovie(ctx context.Context, id string, update MovieUpdate) error {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if movie == nil {
		return apperrors.NotFound("Movie not found")
	}

	if update.Name != nil {
		movie.Name = *update.Name
	}
	if update.Img != nil {
		movie.Img = *update.Img
	}
	if update.Genre != nil {
		movie.Genre = *update.Genre
	}
	if update.TheatreID != nil {
		movie.TheatreID = update.TheatreID
	}

	return s.repo.Update(ctx, movie)
}

func (s *movieService) RemoveMovie(ctx context.Context, id string) error {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if movie == nil {
		return apperrors.NotFound("Movie not found")
	}

	// Uploaded posters live in our bucket; catalog CDN links do not.
	if s.storage != nil && s.storage.Owns(movie.Img) {
		if err := s.storage.DeleteFile(movie.Img); err != nil {
			s.logger.WithError(err).WithField("movie_id", id).Warn("Failed to delete poster from object storage")
		}
	}

	return s.repo.Delete(ctx, id)
}

func (s *movieService) GetAllMovies(ctx context.Context) ([]models.Movie, error) {
	return s.repo.FindAll(ctx)
}

func (s *movieService) GetMoviesByTheatre(ctx context.Context, theatreID string) ([]models.Movie, error) {
	return s.repo.FindByTheatre(ctx, theatreID)
}

func (s *movieService) GetMoviesByName(ctx context.Context, name string) ([]models.Movie, error) {
	return s.repo.FindByName(ctx, name)
}
