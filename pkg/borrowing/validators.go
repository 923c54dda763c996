package borrowing

type BorrowBookPayload struct {
	BookID int `json:"book_id" validate:"required,min=1"`
}
