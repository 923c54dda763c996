package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ReadBook marks that a reader has spent time reading a book. Membership is
// unique per (user, book); repeated reading sessions keep incrementing the
// reader's time counter but never duplicate the row.
type ReadBook struct {
	bun.BaseModel `bun:"table:read_books,alias:rb"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    int       `json:"user_id"`
	BookID    int       `json:"book_id"`

	Book *Book `bun:"rel:belongs-to,join:book_id=id" json:"book,omitempty"`
}
