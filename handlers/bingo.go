package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/shinysquad/streambingo/models"
	dbmodels "github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/shinysquad/streambingo/streambingo/services"
	"github.com/shinysquad/streambingo/utils"
)

// BingoBoard returns the current month's board. Anonymous viewers get an
// all-unchecked board; authenticated viewers get their own progress, and
// moderators resolve the month through their testing date offset.
func BingoBoard(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, authenticated := utils.ExtractUser(c)

		offset := webApp.Resolver.OffsetFor(user)
		month, err := webApp.Resolver.ActiveMonth(c.Context(), offset)
		if err != nil {
			return sendMonthError(c, err)
		}

		userID := ""
		if authenticated {
			userID = user.ID
		}

		board, err := webApp.Board.Assemble(c.Context(), month.ID, userID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to build bingo board", err)
		}

		response := models.BoardResponse{
			Month:             month.Name,
			StartDate:         month.StartDate,
			EndDate:           month.EndDate,
			Board:             board,
			UserAuthenticated: authenticated,
		}
		if authenticated {
			response.Achievements = monthAchievements(c, webApp, userID, month.ID)
		}

		return utils.SendJSON(c, fiber.StatusOK, response)
	}
}

// ProfileBoard returns another user's board for the current month. It always
// resolves against real time; the viewer's offset never leaks into someone
// else's board.
func ProfileBoard(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("userId")

		profileUser, err := webApp.Repos.Users.GetByID(c.Context(), userID)
		if err != nil {
			if repoNotFound(err) {
				return utils.SendNotFound(c, "User not found")
			}
			return utils.SendInternalServerError(c, "Failed to load user", err)
		}

		month, err := webApp.Resolver.ActiveMonth(c.Context(), 0)
		if err != nil {
			return sendMonthError(c, err)
		}

		board, err := webApp.Board.Assemble(c.Context(), month.ID, profileUser.ID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to build bingo board", err)
		}

		response := models.BoardResponse{
			Month:             month.Name,
			StartDate:         month.StartDate,
			EndDate:           month.EndDate,
			Board:             board,
			UserAuthenticated: true,
			Achievements:      monthAchievements(c, webApp, profileUser.ID, month.ID),
		}

		return utils.SendJSON(c, fiber.StatusOK, response)
	}
}

// monthAchievements loads a user's pattern flags for a month. Enrichment
// only; a read failure logs and returns zero flags.
func monthAchievements(c *fiber.Ctx, webApp *WebApp, userID string, monthID int64) *dbmodels.AchievementFlags {
	flags := &dbmodels.AchievementFlags{}

	rows, err := webApp.Repos.Achievements.GetByUserAndMonth(c.Context(), userID, monthID)
	if err != nil {
		slog.Warn("Board achievement enrichment failed",
			slog.String("user_id", userID),
			slog.Int64("month_id", monthID),
			slog.String("error", err.Error()))
		return flags
	}

	for _, row := range rows {
		flags.Mark(row.Type)
	}
	return flags
}

// sendMonthError maps active-month resolution failures to responses. A
// missing month is a 404; overlapping months are a data problem and a 500.
func sendMonthError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrNoActiveMonth) {
		return utils.SendNotFound(c, "No active bingo month")
	}
	return utils.SendInternalServerError(c, "Failed to resolve active month", err)
}
