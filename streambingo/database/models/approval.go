package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Approval is a pending catch submission awaiting moderator review.
// Proof is either a single external link or two uploaded images (shiny
// proof + date proof).
type Approval struct {
	bun.BaseModel `bun:"table:approvals,alias:a"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID    string    `bun:"user_id,notnull" json:"user_id"`
	MonthID   int64     `bun:"month_id,notnull" json:"month_id"`
	PokemonID int64     `bun:"pokemon_id,notnull" json:"pokemon_id"`
	ProofURL  string    `bun:"proof_url,notnull" json:"proof_url"`
	ProofURL2 string    `bun:"proof_url2" json:"proof_url2,omitempty"`
	Notes     string    `bun:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
