package models

import "github.com/uptrace/bun"

// UserMonthlyPoints is the pre-aggregated per-month score row. Maintained by
// moderator tooling when approvals are processed; read-only here.
type UserMonthlyPoints struct {
	bun.BaseModel `bun:"table:user_monthly_points,alias:ump"`

	ID              int64  `bun:"id,pk,autoincrement" json:"id"`
	UserID          string `bun:"user_id,notnull" json:"user_id"`
	MonthID         int64  `bun:"month_id,notnull" json:"month_id"`
	Points          int    `bun:"points,notnull,default:0" json:"points"`
	BingosCompleted int    `bun:"bingos_completed,notnull,default:0" json:"bingos_completed"`
}
