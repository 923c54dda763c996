package favorites

type BookRefPayload struct {
	BookID int `json:"book_id" validate:"required,min=1"`
}
