package users

// RegisterPayload is the reader registration request body.
type RegisterPayload struct {
	Name     string `json:"name" mod:"trim" validate:"required,min=2,max=100"`
	Email    string `json:"email" mod:"trim,lcase" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginPayload is the reader login request body.
type LoginPayload struct {
	Email    string `json:"email" mod:"trim,lcase" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
