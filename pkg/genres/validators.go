package genres

type CreateGenrePayload struct {
	Name string `json:"name" mod:"trim" validate:"required,min=1,max=100"`
}

type UpdateGenrePayload struct {
	Name *string `json:"name,omitempty" mod:"trim" validate:"omitempty,min=1,max=100"`
}
