package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Audit action types written by the issuance endpoints.
const (
	ActionBookIssued   = "book_issued"
	ActionBookReturned = "book_returned"
)

// AdminAction is an append-only audit row. It is written as a side effect of
// issue/return operations and never updated or deleted.
type AdminAction struct {
	bun.BaseModel `bun:"table:admin_actions,alias:aa"`

	ID         int       `bun:",pk,nullzero" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UserID     int       `json:"user_id"`
	CaptainID  int       `json:"captain_id"`
	ActionType string    `json:"action_type"`
	Notes      string    `json:"notes"`
}
