package routes

import (
	"theatre-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

// Setup registers the public route table. Mutating movie routes and the
// upload presign run behind the admin gate; review creation only needs an
// authenticated identity; listing routes are open.
func Setup(app *fiber.App, movieHandler *handlers.MovieHandler, reviewHandler *handlers.ReviewHandler, uploadHandler *handlers.UploadHandler, authenticate, requireAdmin fiber.Handler) {
	app.Post("/add_movie", authenticate, requireAdmin, movieHandler.AddMovie)
	app.Post("/fetch_movies", movieHandler.FetchMovies)

	app.Get("/movies", movieHandler.GetMovies)
	app.Get("/movies_by_theatre/:theatreId", movieHandler.GetMoviesByTheatre)
	app.Get("/movies/:name", movieHandler.GetMoviesByName)

	app.Delete("/remove_movie/:movieId", authenticate, requireAdmin, movieHandler.RemoveMovie)
	app.Put("/edit_movie/:movieId", authenticate, requireAdmin, movieHandler.EditMovie)

	app.Post("/reviews", authenticate, reviewHandler.CreateReview)
	app.Get("/reviews/:reviewId", reviewHandler.GetReview)

	app.Get("/sync/last_log", movieHandler.GetLastSyncLog)
	app.Get("/upload/presign", authenticate, requireAdmin, uploadHandler.GetPresignedURL)
}
