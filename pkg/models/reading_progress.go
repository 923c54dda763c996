package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ReadingProgress tracks where a reader is in a book. One row per
// (user, book) pair, upserted on every update. FinishedAt reflects the
// current finished state; marking a book unfinished clears it.
type ReadingProgress struct {
	bun.BaseModel `bun:"table:reading_progress,alias:rp"`

	ID          int        `bun:",pk,nullzero" json:"id"`
	UserID      int        `json:"user_id"`
	BookID      int        `json:"book_id"`
	CurrentPage *int       `json:"current_page,omitempty"`
	IsFinished  bool       `json:"is_finished"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
	LastReadAt  time.Time  `json:"last_read_at"`

	BookTitle  *string `bun:",scanonly" json:"book_title,omitempty"`
	AuthorName *string `bun:",scanonly" json:"author_name,omitempty"`
	GenreName  *string `bun:",scanonly" json:"genre_name,omitempty"`

	Book *Book `bun:"rel:belongs-to,join:book_id=id" json:"book,omitempty"`
}
