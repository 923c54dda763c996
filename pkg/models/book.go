package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Book is a catalog entry. Content itself lives behind an external URL; the
// catalog only stores metadata.
type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID              int       `bun:",pk,nullzero" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Title           string    `json:"title"`
	ISBN            string    `json:"isbn"`
	PublicationYear int       `json:"publication_year"`
	BookURL         *string   `json:"book_url,omitempty"`
	AuthorID        *int      `json:"author_id,omitempty"`
	GenreID         *int      `json:"genre_id,omitempty"`
	PublisherID     *int      `json:"publisher_id,omitempty"`
	CaptainID       int       `json:"captain_id"`

	AuthorName    *string  `bun:",scanonly" json:"author_name,omitempty"`
	GenreName     *string  `bun:",scanonly" json:"genre_name,omitempty"`
	PublisherName *string  `bun:",scanonly" json:"publisher_name,omitempty"`
	AverageRating *float64 `bun:",scanonly" json:"average_rating"`
	ReviewCount   int      `bun:",scanonly" json:"review_count"`

	Author    *Author    `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
	Genre     *Genre     `bun:"rel:belongs-to,join:genre_id=id" json:"genre,omitempty"`
	Publisher *Publisher `bun:"rel:belongs-to,join:publisher_id=id" json:"publisher,omitempty"`
}
