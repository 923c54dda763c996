package reviews

type CreateReviewPayload struct {
	BookID  int     `json:"book_id" validate:"required,min=1"`
	Rating  float64 `json:"rating" validate:"min=0,max=5"`
	Comment *string `json:"comment,omitempty" mod:"trim" validate:"omitempty,max=2000"`
}

type UpdateReviewPayload struct {
	Rating  *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Comment *string  `json:"comment,omitempty" mod:"trim" validate:"omitempty,max=2000"`
}
