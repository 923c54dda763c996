package reading

// UpdateTimePayload rejects non-positive durations before any counter is
// touched.
type UpdateTimePayload struct {
	BookID           int `json:"book_id" validate:"required,min=1"`
	TimeSpentMinutes int `json:"time_spent_minutes" validate:"required,min=1"`
}
