package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shinysquad/streambingo/models"
	dbmodels "github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/shinysquad/streambingo/streambingo/services"
	"github.com/shinysquad/streambingo/utils"
)

// Profile returns a user's public profile with their lifetime stats and
// per-month point history.
func Profile(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("userId")

		user, err := webApp.Repos.Users.GetByID(c.Context(), userID)
		if err != nil {
			if repoNotFound(err) {
				return utils.SendNotFound(c, "User not found")
			}
			return utils.SendInternalServerError(c, "Failed to load user", err)
		}
		if user.HexCode == "" {
			user.HexCode = services.DefaultHexCode
		}

		stats, err := profileStats(c, webApp, user.ID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to compute profile stats", err)
		}

		monthlyData, err := webApp.Ranking.MonthlyBreakdown(c.Context(), user.ID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load monthly breakdown", err)
		}

		return utils.SendJSON(c, fiber.StatusOK, models.ProfileResponse{
			User:        user,
			Stats:       *stats,
			MonthlyData: monthlyData,
		})
	}
}

func profileStats(c *fiber.Ctx, webApp *WebApp, userID string) (*models.ProfileStats, error) {
	ctx := c.Context()

	totalShinies, err := webApp.Repos.Entries.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := webApp.Repos.Entries.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	distinct := make(map[int64]bool, len(entries))
	for _, entry := range entries {
		distinct[entry.PokemonID] = true
	}

	totalPokemon, err := webApp.Repos.Pokemon.CountShiny(ctx)
	if err != nil {
		return nil, err
	}

	overallRank, err := webApp.Ranking.SelfRank(ctx, services.ScopeAllTime, 0, userID)
	if err != nil {
		return nil, err
	}

	pointRows, err := webApp.Repos.Points.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalPoints := 0
	totalBingos := 0
	for _, row := range pointRows {
		totalPoints += row.Points
		totalBingos += row.BingosCompleted
	}

	achievements, err := webApp.Repos.Achievements.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalBlackouts := 0
	for _, achievement := range achievements {
		if achievement.Type == dbmodels.AchievementBlackout {
			totalBlackouts++
		}
	}

	highestPointMonth, err := webApp.Ranking.HighestPointMonth(ctx, userID)
	if err != nil {
		return nil, err
	}

	bestRankedMonth, err := webApp.Ranking.BestRankedMonth(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.ProfileStats{
		TotalShinies:      totalShinies,
		OverallRank:       overallRank,
		TotalPoints:       totalPoints,
		TotalCaught:       len(distinct),
		TotalPokemon:      totalPokemon,
		HighestPointMonth: highestPointMonth,
		BestRankedMonth:   bestRankedMonth,
		TotalBingos:       totalBingos,
		TotalBlackouts:    totalBlackouts,
	}, nil
}
