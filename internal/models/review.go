package models

import "time"

// Review rows are write-once; there is no edit endpoint. UserID is always the
// authenticated identity, never the request body (see DESIGN.md).
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Content   string    `gorm:"type:text;not null" json:"content" example:"Great movie"`
	Rating    float64   `gorm:"not null" json:"rating" example:"4.5"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	MovieID   string    `gorm:"index;not null;size:64" json:"movie_id" example:"550"`
	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
