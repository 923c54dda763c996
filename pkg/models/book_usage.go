package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Usage record statuses. The transition is one-way: active -> returned.
const (
	UsageStatusActive   = "active"
	UsageStatusReturned = "returned"
)

// BookUsage is a librarian-mediated, minute-tracked issuance (in-library
// timed reading). Take-home loans live in Borrowing instead; the two
// lifecycles are deliberately separate.
type BookUsage struct {
	bun.BaseModel `bun:"table:book_usages,alias:bu"`

	ID              int        `bun:",pk,nullzero" json:"id"`
	CreatedAt       time.Time  `json:"created_at"`
	UserID          int        `json:"user_id"`
	BookID          int        `json:"book_id"`
	CaptainID       int        `json:"captain_id"`
	IssueDate       time.Time  `json:"issue_date"`
	ReturnDate      *time.Time `json:"return_date,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Status          string     `json:"status"`

	BookTitle *string `bun:",scanonly" json:"book_title,omitempty"`
	UserName  *string `bun:",scanonly" json:"user_name,omitempty"`

	Book *Book `bun:"rel:belongs-to,join:book_id=id" json:"book,omitempty"`
	User *User `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
}
