package domain

import (
	"time"

	"github.com/google/uuid"
)

type News struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Slug        string     `json:"slug" db:"slug"`
	Title       string     `json:"title" db:"title"`
	Summary     string     `json:"summary" db:"summary"`
	Body        string     `json:"body" db:"body"`
	CoverImage  string     `json:"cover_image" db:"cover_image"`
	Published   bool       `json:"published" db:"published"`
	PublishedAt *time.Time `json:"published_at" db:"published_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"`
}
