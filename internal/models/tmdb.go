package models

// Wire types for the TMDB discover and genre-list endpoints. Only the fields
// the ingestion path reads are declared.

type TMDBMovieResult struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
	GenreIDs   []int  `json:"genre_ids"`
}

type TMDBDiscoverResponse struct {
	Page         int               `json:"page"`
	Results      []TMDBMovieResult `json:"results"`
	TotalPages   int               `json:"total_pages"`
	TotalResults int               `json:"total_results"`
}

type TMDBGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type TMDBGenreListResponse struct {
	Genres []TMDBGenre `json:"genres"`
}
