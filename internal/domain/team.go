package domain

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Category  string     `json:"category" db:"category"`
	Season    string     `json:"season" db:"season"`
	Coach     string     `json:"coach" db:"coach"`
	PhotoURL  string     `json:"photo_url" db:"photo_url"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

type Player struct {
	ID        uuid.UUID `json:"id" db:"id"`
	TeamID    uuid.UUID `json:"team_id" db:"team_id"`
	Name      string    `json:"name" db:"name"`
	Surname   string    `json:"surname" db:"surname"`
	Number    int       `json:"number" db:"number"`
	Position  string    `json:"position" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
