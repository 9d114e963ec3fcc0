package models

import (
	"time"

	"github.com/uptrace/bun"
)

// AuthSession maps an issued bearer token to a user. Tokens are minted by
// the auth frontend; this service only reads them. An expired or unknown
// token is treated as anonymous by endpoints that allow it.
type AuthSession struct {
	bun.BaseModel `bun:"table:auth_sessions,alias:as"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Token     string    `bun:"token,notnull,unique"`
	UserID    string    `bun:"user_id,notnull"`
	ExpiresAt time.Time `bun:"expires_at,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
