package domain

import (
	"time"

	"github.com/google/uuid"
)

// Match is a scheduled convocatòria; result columns stay null until the
// game is played.
type Match struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	TeamID    uuid.UUID  `json:"team_id" db:"team_id"`
	Opponent  string     `json:"opponent" db:"opponent"`
	Kickoff   time.Time  `json:"kickoff" db:"kickoff"`
	Location  string     `json:"location" db:"location"`
	Home      bool       `json:"home" db:"home"`
	HomeGoals *int       `json:"home_goals" db:"home_goals"`
	AwayGoals *int       `json:"away_goals" db:"away_goals"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}
