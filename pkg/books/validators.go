package books

type CreateBookPayload struct {
	Title           string  `json:"title" mod:"trim" validate:"required,min=1,max=300"`
	ISBN            string  `json:"isbn" mod:"trim" validate:"required,min=1,max=20"`
	PublicationYear int     `json:"publication_year" validate:"required,min=1,max=9999"`
	BookURL         *string `json:"book_url,omitempty" mod:"trim" validate:"omitempty,url,max=500"`
	AuthorID        *int    `json:"author_id,omitempty" validate:"omitempty,min=1"`
	GenreID         *int    `json:"genre_id,omitempty" validate:"omitempty,min=1"`
	PublisherID     *int    `json:"publisher_id,omitempty" validate:"omitempty,min=1"`
}

type UpdateBookPayload struct {
	Title           *string `json:"title,omitempty" mod:"trim" validate:"omitempty,min=1,max=300"`
	ISBN            *string `json:"isbn,omitempty" mod:"trim" validate:"omitempty,min=1,max=20"`
	PublicationYear *int    `json:"publication_year,omitempty" validate:"omitempty,min=1,max=9999"`
	BookURL         *string `json:"book_url,omitempty" mod:"trim" validate:"omitempty,url,max=500"`
	AuthorID        *int    `json:"author_id,omitempty" validate:"omitempty,min=1"`
	GenreID         *int    `json:"genre_id,omitempty" validate:"omitempty,min=1"`
	PublisherID     *int    `json:"publisher_id,omitempty" validate:"omitempty,min=1"`
}

// ListBooksQuery filters are mutually exclusive; when more than one is sent,
// title wins over authorId, authorId over genreId, genreId over search.
type ListBooksQuery struct {
	Page     int     `query:"page" json:"page,omitempty" default:"1" validate:"min=1"`
	Limit    int     `query:"limit" json:"limit,omitempty" default:"10" validate:"min=1,max=100"`
	Title    *string `query:"title" json:"title,omitempty" validate:"omitempty,max=300"`
	AuthorID *int    `query:"authorId" json:"author_id,omitempty" validate:"omitempty,min=1"`
	GenreID  *int    `query:"genreId" json:"genre_id,omitempty" validate:"omitempty,min=1"`
	Search   *string `query:"search" json:"search,omitempty" validate:"omitempty,max=100"`
}

type PopularBooksQuery struct {
	Limit int `query:"limit" json:"limit,omitempty" default:"10" validate:"min=1,max=50"`
}

type SuggestionsQuery struct {
	Query string `query:"query" json:"query,omitempty" validate:"omitempty,max=100"`
	Limit int    `query:"limit" json:"limit,omitempty" default:"10" validate:"min=1,max=50"`
}
