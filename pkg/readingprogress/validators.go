package readingprogress

type UpdateProgressPayload struct {
	BookID      int   `json:"book_id" validate:"required,min=1"`
	CurrentPage *int  `json:"current_page,omitempty" validate:"omitempty,min=0"`
	IsFinished  *bool `json:"is_finished,omitempty"`
}
