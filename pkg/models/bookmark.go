package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Bookmark is a pure (user, book) membership row, independent of favorites.
type Bookmark struct {
	bun.BaseModel `bun:"table:bookmarks,alias:bm"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    int       `json:"user_id"`
	BookID    int       `json:"book_id"`

	Book *Book `bun:"rel:belongs-to,join:book_id=id" json:"book,omitempty"`
}
