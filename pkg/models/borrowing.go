package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Borrowing is a reader-initiated, day-tracked take-home loan. See BookUsage
// for the in-library counterpart.
type Borrowing struct {
	bun.BaseModel `bun:"table:borrowings,alias:bw"`

	ID           int        `bun:",pk,nullzero" json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	UserID       int        `json:"user_id"`
	BookID       int        `json:"book_id"`
	CaptainID    *int       `json:"captain_id,omitempty"`
	BorrowDate   time.Time  `json:"borrow_date"`
	ReturnDate   *time.Time `json:"return_date,omitempty"`
	DurationDays *int       `json:"duration_days,omitempty"`
	Status       string     `json:"status"`

	BookTitle  *string `bun:",scanonly" json:"book_title,omitempty"`
	AuthorName *string `bun:",scanonly" json:"author_name,omitempty"`

	Book *Book `bun:"rel:belongs-to,join:book_id=id" json:"book,omitempty"`
}
