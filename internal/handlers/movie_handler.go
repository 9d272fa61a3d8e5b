package handlers

import (
	"theatre-backend/internal/apperrors"
	"theatre-backend/internal/models"
	"theatre-backend/internal/services"
	"theatre-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// AddMovie godoc
// @Summary Add a movie manually
// @Description Insert a movie row with an explicit id and theatre assignment (admin only)
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body AddMovieRequest true "Movie fields"
// @Success 200 {object} utils.Response "Movie added successfully"
// @Failure 400 {object} utils.Response "Missing field or unknown theatre"
// @Failure 403 {object} utils.Response "Admin access required"
// @Security BearerAuth
// @Router /add_movie [post]
func (h *MovieHandler) AddMovie(c *fiber.Ctx) error {
	var req AddMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie := &models.Movie{
		ID:    req.ID,
		Name:  req.Name,
		Img:   req.Img,
		Genre: req.Genre,
	}
	if req.TheatreID != "" {
		movie.TheatreID = &req.TheatreID
	}

	if err := h.service.AddMovie(c.Context(), movie); err != nil {
		return h.respondError(c, err, "Failed to add movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie added successfully")
}

// FetchMovies godoc
// @Summary Ingest one catalog page
// @Description Pull a page from the TMDB discover API and insert entries not already present
// @Tags sync
// @Accept json
// @Produce json
// @Param body body FetchMoviesRequest false "Page number, defaults to 1"
// @Success 200 {object} utils.Response "Movies fetched and added successfully"
// @Failure 502 {object} utils.Response "Upstream catalog failure (remote status passed through)"
// @Router /fetch_movies [post]
func (h *MovieHandler) FetchMovies(c *fiber.Ctx) error {
	var req FetchMoviesRequest
	// Body is optional; an empty or malformed body falls back to page 1.
	_ = c.BodyParser(&req)

	if _, err := h.service.SyncPage(c.Context(), req.PageNumber); err != nil {
		return h.respondError(c, err, "Failed to fetch movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies fetched from TMDB API and added successfully")
}

// GetMovies godoc
// @Summary List all movies
// @Tags movies
// @Produce json
// @Success 200 {array} models.Movie
// @Router /movies [get]
func (h *MovieHandler) GetMovies(c *fiber.Ctx) error {
	movies, err := h.service.GetAllMovies(c.Context())
	if err != nil {
		return h.respondError(c, err, "Failed to retrieve movies")
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	return c.JSON(movies)
}

// GetMoviesByTheatre godoc
// @Summary List movies assigned to a theatre
// @Tags movies
// @Produce json
// @Param theatreId path string true "Theatre ID"
// @Success 200 {array} models.Movie
// @Router /movies_by_theatre/{theatreId} [get]
func (h *MovieHandler) GetMoviesByTheatre(c *fiber.Ctx) error {
	movies, err := h.service.GetMoviesByTheatre(c.Context(), c.Params("theatreId"))
	if err != nil {
		return h.respondError(c, err, "Failed to retrieve movies")
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	return c.JSON(movies)
}

// GetMoviesByName godoc
// @Summary List movies by exact name
// @Tags movies
// @Produce json
// @Param name path string true "Movie name (exact match)"
// @Success 200 {array} models.Movie
// @Router /movies/{name} [get]
func (h *MovieHandler) GetMoviesByName(c *fiber.Ctx) error {
	movies, err := h.service.GetMoviesByName(c.Context(), c.Params("name"))
	if err != nil {
		return h.respondError(c, err, "Failed to retrieve movies")
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	return c.JSON(movies)
}

// RemoveMovie godoc
// @Summary Delete a movie
// @Tags movies
// @Produce json
// @Param movieId path string true "Movie ID"
// @Success 200 {object} utils.Response "Movie deleted successfully"
// @Failure 403 {object} utils.Response "Admin access required"
// @Failure 404 {object} utils.Response "Movie not found"
// @Security BearerAuth
// @Router /remove_movie/{movieId} [delete]
func (h *MovieHandler) RemoveMovie(c *fiber.Ctx) error {
	if err := h.service.RemoveMovie(c.Context(), c.Params("movieId")); err != nil {
		return h.respondError(c, err, "Failed to delete movie")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully")
}

// EditMovie godoc
// @Summary Update movie fields
// @Description Merge the provided fields into an existing movie; absent fields are untouched
// @Tags movies
// @Accept json
// @Produce json
// @Param movieId path string true "Movie ID"
// @Param movie body EditMovieRequest true "Fields to update"
// @Success 200 {object} utils.Response "Movie updated successfully"
// @Failure 403 {object} utils.Response "Admin access required"
// @Failure 404 {object} utils.Response "Movie not found"
// @Security BearerAuth
// @Router /edit_movie/{movieId} [put]
func (h *MovieHandler) EditMovie(c *fiber.Ctx) error {
	var req EditMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	update := services.MovieUpdate{
		Name:      req.Name,
		Img:       req.Img,
		Genre:     req.Genre,
		TheatreID: req.TheatreID,
	}
	if err := h.service.EditMovie(c.Context(), c.Params("movieId"), update); err != nil {
		return h.respondError(c, err, "Failed to update movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully")
}

// GetLastSyncLog godoc
// @Summary Last ingestion outcome
// @Tags sync
// @Produce json
// @Success 200 {object} models.SyncLog
// @Router /sync/last_log [get]
func (h *MovieHandler) GetLastSyncLog(c *fiber.Ctx) error {
	syncLog, err := h.service.GetLastSyncLog(c.Context())
	if err != nil {
		return h.respondError(c, err, "Failed to retrieve sync log")
	}
	if syncLog == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No sync log found")
	}
	return c.JSON(syncLog)
}

func (h *MovieHandler) respondError(c *fiber.Ctx, err error, logMsg string) error {
	status := apperrors.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		h.logger.WithError(err).Error(logMsg)
		return utils.ErrorResponse(c, status, logMsg)
	}
	return utils.ErrorResponse(c, status, err.Error())
}
