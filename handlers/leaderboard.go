package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shinysquad/streambingo/streambingo/services"
	"github.com/shinysquad/streambingo/utils"
)

// Leaderboard returns the ranked standings. Scope defaults to monthly;
// ?scope=alltime aggregates across every month. ?limit trims the result.
func Leaderboard(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scope := services.Scope(c.Query("scope", string(services.ScopeMonthly)))
		if scope != services.ScopeMonthly && scope != services.ScopeAllTime {
			return utils.SendBadRequest(c, "scope must be monthly or alltime")
		}

		limit := c.QueryInt("limit", 0)
		if limit < 0 {
			return utils.SendBadRequest(c, "limit must not be negative")
		}

		var monthID int64
		if scope == services.ScopeMonthly {
			user, _ := utils.ExtractUser(c)
			offset := webApp.Resolver.OffsetFor(user)

			month, err := webApp.Resolver.ActiveMonth(c.Context(), offset)
			if err != nil {
				return sendMonthError(c, err)
			}
			monthID = month.ID
		}

		entries, err := webApp.Ranking.Leaderboard(c.Context(), scope, monthID, limit)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to build leaderboard", err)
		}

		return utils.SendJSON(c, fiber.StatusOK, entries)
	}
}
