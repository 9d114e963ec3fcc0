package models

import (
	"time"

	dbmodels "github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/shinysquad/streambingo/streambingo/services"
)

// BoardResponse is the payload for the bingo board endpoints.
type BoardResponse struct {
	Month             string                     `json:"month"`
	StartDate         time.Time                  `json:"start_date"`
	EndDate           time.Time                  `json:"end_date"`
	Board             []services.BoardCell       `json:"board"`
	UserAuthenticated bool                       `json:"user_authenticated"`
	Achievements      *dbmodels.AchievementFlags `json:"achievements,omitempty"`
}

// ProfileStats is the aggregate block of a user profile.
type ProfileStats struct {
	TotalShinies      int                   `json:"totalShinies"`
	OverallRank       int                   `json:"overallRank"`
	TotalPoints       int                   `json:"totalPoints"`
	TotalCaught       int                   `json:"totalCaught"`
	TotalPokemon      int                   `json:"totalPokemon"`
	HighestPointMonth *services.MonthPoints `json:"highestPointMonth"`
	BestRankedMonth   *services.MonthRank   `json:"bestRankedMonth"`
	TotalBingos       int                   `json:"totalBingos"`
	TotalBlackouts    int                   `json:"totalBlackouts"`
}

// ProfileResponse is the payload for GET /api/profile/:userId.
type ProfileResponse struct {
	User        *dbmodels.User         `json:"user"`
	Stats       ProfileStats           `json:"stats"`
	MonthlyData []services.MonthPoints `json:"monthlyData"`
}

// PokedexPokemon is one pokedex row with the viewer's progress flags.
type PokedexPokemon struct {
	ID            int64  `json:"id"`
	NationalDexID int    `json:"national_dex_id"`
	Name          string `json:"name"`
	ImgURL        string `json:"img_url"`
	Caught        bool   `json:"caught"`
	InPool        bool   `json:"in_pool"`
}

// PokedexResponse is the payload for GET /api/pokedex.
type PokedexResponse struct {
	Pokemon     []PokedexPokemon `json:"pokemon"`
	CaughtCount int              `json:"caughtCount"`
	TotalCount  int              `json:"totalCount"`
}

// Ambassador is a promoted community profile with live decoration.
type Ambassador struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	TwitchURL   string `json:"twitch_url,omitempty"`
	BrandColor  string `json:"brand_color"`
	IsLive      bool   `json:"is_live"`
	ViewerCount int    `json:"viewer_count,omitempty"`
}

// RecentCatch is one confirmed catch event with its display enrichment.
type RecentCatch struct {
	ID           int64                      `json:"id"`
	UserID       string                     `json:"user_id"`
	Username     string                     `json:"username"`
	DisplayName  string                     `json:"display_name"`
	AvatarURL    string                     `json:"avatar_url,omitempty"`
	HexCode      string                     `json:"hex_code"`
	CaughtAt     time.Time                  `json:"caught_at"`
	Points       int                        `json:"points"`
	Achievements *dbmodels.AchievementFlags `json:"achievements,omitempty"`
}

// PendingApproval is one queued submission with user and pokemon context
// for the moderator review screen.
type PendingApproval struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	MonthID     int64     `json:"month_id"`
	PokemonID   int64     `json:"pokemon_id"`
	PokemonName string    `json:"pokemon_name"`
	ImgURL      string    `json:"img_url,omitempty"`
	ProofURL    string    `json:"proof_url"`
	ProofURL2   string    `json:"proof_url2,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SubmissionResponse is the payload for POST /api/upload/submission.
type SubmissionResponse struct {
	Success  bool               `json:"success"`
	Approval *dbmodels.Approval `json:"approval"`
}
