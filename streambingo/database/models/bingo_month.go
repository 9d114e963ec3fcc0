package models

import (
	"time"

	"github.com/uptrace/bun"
)

// BingoMonth is one time-boxed community bingo round. Months are created by
// moderator tooling and are read-only to this service.
type BingoMonth struct {
	bun.BaseModel `bun:"table:bingo_months,alias:bm"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	StartDate time.Time `bun:"start_date,notnull" json:"start_date"`
	EndDate   time.Time `bun:"end_date,notnull" json:"end_date"`
}

// Contains reports whether t falls inside the month's [start, end] range.
func (m *BingoMonth) Contains(t time.Time) bool {
	return !t.Before(m.StartDate) && !t.After(m.EndDate)
}
