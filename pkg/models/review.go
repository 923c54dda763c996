package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Review is a reader's rating of a book. At most one review exists per
// (book, user) pair; the unique index enforces it.
type Review struct {
	bun.BaseModel `bun:"table:reviews,alias:r"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	BookID    int       `json:"book_id"`
	UserID    int       `json:"user_id"`
	Rating    float64   `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`

	UserName  *string `bun:",scanonly" json:"user_name,omitempty"`
	BookTitle *string `bun:",scanonly" json:"book_title,omitempty"`

	Book *Book `bun:"rel:belongs-to,join:book_id=id" json:"book,omitempty"`
	User *User `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
}
