package publishers

type CreatePublisherPayload struct {
	Name    string  `json:"name" mod:"trim" validate:"required,min=1,max=100"`
	Country *string `json:"country,omitempty" mod:"trim" validate:"omitempty,min=1,max=100"`
}

type UpdatePublisherPayload struct {
	Name    *string `json:"name,omitempty" mod:"trim" validate:"omitempty,min=1,max=100"`
	Country *string `json:"country,omitempty" mod:"trim" validate:"omitempty,min=1,max=100"`
}
