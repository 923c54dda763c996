package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Favorite is a pure (user, book) membership row.
type Favorite struct {
	bun.BaseModel `bun:"table:favorites,alias:f"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    int       `json:"user_id"`
	BookID    int       `json:"book_id"`

	Book *Book `bun:"rel:belongs-to,join:book_id=id" json:"book,omitempty"`
}
