package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/shinysquad/streambingo/models"
	dbmodels "github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/shinysquad/streambingo/streambingo/services"
	"github.com/shinysquad/streambingo/utils"
)

const defaultRecentCatchLimit = 10

// RecentCatches returns the latest confirmed catches of one pokemon, newest
// first, decorated with the catcher's display info and that month's pattern
// flags.
func RecentCatches(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pokemonID, err := c.ParamsInt("pokemonId")
		if err != nil || pokemonID <= 0 {
			return utils.SendBadRequest(c, "Invalid pokemon id")
		}

		limit := c.QueryInt("limit", defaultRecentCatchLimit)
		if limit <= 0 || limit > 100 {
			limit = defaultRecentCatchLimit
		}

		ctx := c.Context()

		pokemon, err := webApp.Repos.Pokemon.GetByID(ctx, int64(pokemonID))
		if err != nil {
			if repoNotFound(err) {
				return utils.SendNotFound(c, "Pokemon not found")
			}
			return utils.SendInternalServerError(c, "Failed to load pokemon", err)
		}

		entries, err := webApp.Repos.Entries.GetRecentByPokemon(ctx, pokemon.ID, limit)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load recent catches", err)
		}

		catches := make([]models.RecentCatch, 0, len(entries))
		for _, entry := range entries {
			catch := models.RecentCatch{
				ID:       entry.ID,
				UserID:   entry.UserID,
				CaughtAt: entry.CreatedAt,
				HexCode:  services.DefaultHexCode,
			}

			// User and achievement context is decoration; a failed lookup
			// keeps the catch row with defaults.
			if user, err := webApp.Repos.Users.GetByID(ctx, entry.UserID); err == nil {
				catch.Username = user.Username
				catch.DisplayName = user.DisplayName
				catch.AvatarURL = user.AvatarURL
				if user.HexCode != "" {
					catch.HexCode = user.HexCode
				}
			} else {
				slog.Warn("Recent catch user enrichment failed",
					slog.String("user_id", entry.UserID),
					slog.String("error", err.Error()))
			}

			if rows, err := webApp.Repos.Achievements.GetByUserAndMonth(ctx, entry.UserID, entry.MonthID); err == nil {
				flags := &dbmodels.AchievementFlags{}
				for _, row := range rows {
					flags.Mark(row.Type)
				}
				catch.Achievements = flags
			}

			if points, err := webApp.Repos.Points.GetByUser(ctx, entry.UserID); err == nil {
				for _, row := range points {
					if row.MonthID == entry.MonthID {
						catch.Points = row.Points
						break
					}
				}
			}

			catches = append(catches, catch)
		}

		return utils.SendJSON(c, fiber.StatusOK, catches)
	}
}
