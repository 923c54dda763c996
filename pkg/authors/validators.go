package authors

type CreateAuthorPayload struct {
	Name string `json:"name" mod:"trim" validate:"required,min=1,max=100"`
}

type UpdateAuthorPayload struct {
	Name *string `json:"name,omitempty" mod:"trim" validate:"omitempty,min=1,max=100"`
}
