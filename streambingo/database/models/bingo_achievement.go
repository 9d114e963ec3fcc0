package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Achievement types awarded for completed board patterns.
const (
	AchievementRow      = "row"
	AchievementColumn   = "column"
	AchievementX        = "x"
	AchievementBlackout = "blackout"
)

// BingoAchievement marks a completed pattern for a user in a month.
type BingoAchievement struct {
	bun.BaseModel `bun:"table:bingo_achievements,alias:ba"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID    string    `bun:"user_id,notnull" json:"user_id"`
	MonthID   int64     `bun:"month_id,notnull" json:"month_id"`
	Type      string    `bun:"type,notnull" json:"type"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

// AchievementFlags is the per-user pattern summary for a single month.
type AchievementFlags struct {
	Row      bool `json:"row"`
	Column   bool `json:"column"`
	X        bool `json:"x"`
	Blackout bool `json:"blackout"`
}

// AchievementCounts is the per-user pattern tally across all months.
type AchievementCounts struct {
	Row      int `json:"row"`
	Column   int `json:"column"`
	X        int `json:"x"`
	Blackout int `json:"blackout"`
}

// Mark sets the flag matching the achievement type.
func (f *AchievementFlags) Mark(achievementType string) {
	switch achievementType {
	case AchievementRow:
		f.Row = true
	case AchievementColumn:
		f.Column = true
	case AchievementX:
		f.X = true
	case AchievementBlackout:
		f.Blackout = true
	}
}

// Add increments the counter matching the achievement type.
func (c *AchievementCounts) Add(achievementType string) {
	switch achievementType {
	case AchievementRow:
		c.Row++
	case AchievementColumn:
		c.Column++
	case AchievementX:
		c.X++
	case AchievementBlackout:
		c.Blackout++
	}
}
