package models

import "time"

// Movie is keyed by the external catalog id (stringified TMDB id for synced
// rows, caller-chosen for manual inserts). Genre is stored as a comma-joined
// list of genre names. TheatreID stays NULL until a theatre assigns the movie.
type Movie struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id" example:"550"`
	Name      string    `gorm:"not null;index" json:"name" example:"Fight Club"`
	Img       string    `json:"img" example:"https://image.tmdb.org/t/p/w500/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"`
	Genre     string    `json:"genre" example:"Drama, Thriller"`
	TheatreID *string   `gorm:"index;size:64" json:"theatre_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

// Theatre rows are owned by another service; this backend only reads them to
// validate the foreign key on manual movie inserts.
type Theatre struct {
	ID       string `gorm:"primaryKey;size:64" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Location string `json:"location"`
}

func (Theatre) TableName() string {
	return "theatres"
}

type SyncLog struct {
	ID            uint      `gorm:"primaryKey" json:"id" example:"1"`
	Page          int       `json:"page" example:"1"`
	Status        string    `gorm:"index" json:"status" example:"success"`
	MoviesAdded   int       `json:"movies_added" example:"18"`
	MoviesSkipped int       `json:"movies_skipped" example:"2"`
	ErrorMessage  string    `gorm:"type:text" json:"error_message,omitempty"`
	SyncedAt      time.Time `gorm:"index" json:"synced_at"`
	CreatedAt     time.Time `json:"created_at"`
}

func (SyncLog) TableName() string {
	return "sync_logs"
}
