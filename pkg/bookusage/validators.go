package bookusage

type IssueBookPayload struct {
	BookID int `json:"book_id" validate:"required,min=1"`
	UserID int `json:"user_id" validate:"required,min=1"`
}
