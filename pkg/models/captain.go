package models

import (
	"time"

	"github.com/uptrace/bun"
)

const CaptainStatusActive = "active"

// Captain is a librarian account. Captains catalog books and issue them to
// readers.
type Captain struct {
	bun.BaseModel `bun:"table:captains,alias:cap"`

	ID           int       `bun:",pk,nullzero" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Status       string    `json:"status"`
}
