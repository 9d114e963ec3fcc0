package models

import "github.com/uptrace/bun"

// Board geometry. Position 13 is the free space and never carries a pool
// entry.
const (
	BoardSize         = 25
	FreeSpacePosition = 13
)

// MonthlyPool binds one board position of a month to a pokemon.
type MonthlyPool struct {
	bun.BaseModel `bun:"table:monthly_pools,alias:mp"`

	ID        int64 `bun:"id,pk,autoincrement" json:"id"`
	MonthID   int64 `bun:"month_id,notnull" json:"month_id"`
	Position  int   `bun:"position,notnull" json:"position"`
	PokemonID int64 `bun:"pokemon_id,notnull" json:"pokemon_id"`
}
