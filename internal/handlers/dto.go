package handlers

// AddMovieRequest is the manual insert payload; every field is required.
type AddMovieRequest struct {
	ID        string `json:"id" example:"550"`
	Name      string `json:"name" example:"Fight Club"`
	Img       string `json:"img" example:"https://image.tmdb.org/t/p/w500/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"`
	Genre     string `json:"genre" example:"Drama"`
	TheatreID string `json:"theatre_id" example:"t-12"`
}

// EditMovieRequest is a partial update; absent fields keep their stored value.
type EditMovieRequest struct {
	Name      *string `json:"name"`
	Img       *string `json:"img"`
	Genre     *string `json:"genre"`
	TheatreID *string `json:"theatre_id"`
}

type FetchMoviesRequest struct {
	PageNumber int `json:"page_number" example:"1"`
}

type CreateReviewRequest struct {
	Content string  `json:"content" example:"Great movie"`
	Rating  float64 `json:"rating" example:"4.5"`
	UserID  uint    `json:"user_id" example:"7"`
	MovieID string  `json:"movie_id" example:"550"`
}
