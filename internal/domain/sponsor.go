package domain

import (
	"time"

	"github.com/google/uuid"
)

type Sponsor struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Website   string     `json:"website" db:"website"`
	LogoURL   string     `json:"logo_url" db:"logo_url"`
	Tier      string     `json:"tier" db:"tier"`
	Active    bool       `json:"active" db:"active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}
