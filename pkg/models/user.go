package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserStatusActive is the only status readers take in normal operation;
// readers are never hard-deleted.
const UserStatusActive = "active"

// User is a reader account.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID               int       `bun:",pk,nullzero" json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"` // Never expose password hash
	Status           string    `json:"status"`
	TimeSpentMinutes int       `json:"time_spent_minutes"`
	CaptainID        *int      `json:"captain_id,omitempty"`

	Captain *Captain `bun:"rel:belongs-to,join:captain_id=id" json:"captain,omitempty"`
}
