package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Entry is a user's confirmed shiny catch for a month.
type Entry struct {
	bun.BaseModel `bun:"table:entries,alias:e"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID    string    `bun:"user_id,notnull" json:"user_id"`
	MonthID   int64     `bun:"month_id,notnull" json:"month_id"`
	PokemonID int64     `bun:"pokemon_id,notnull" json:"pokemon_id"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
