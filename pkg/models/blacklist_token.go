package models

import (
	"time"

	"github.com/uptrace/bun"
)

// BlacklistToken is a revoked-but-not-yet-expired session token. Entries only
// need to outlive the signed token's expiry; older rows are swept
// opportunistically.
type BlacklistToken struct {
	bun.BaseModel `bun:"table:blacklist_tokens,alias:bt"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Token     string    `json:"token"`
}
