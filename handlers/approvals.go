package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/shinysquad/streambingo/models"
	"github.com/shinysquad/streambingo/utils"
)

// IsModerator reports whether the authenticated caller has moderator
// privileges.
func IsModerator(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := utils.ExtractUser(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		return utils.SendJSON(c, fiber.StatusOK, fiber.Map{
			"isModerator": user.IsModerator,
		})
	}
}

// PendingApprovals lists the queued catch submissions oldest first, with the
// submitting user and pokemon resolved for the review screen.
func PendingApprovals(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.Context()

		pending, err := webApp.Repos.Approvals.GetPending(ctx)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load pending approvals", err)
		}

		approvals := make([]models.PendingApproval, 0, len(pending))
		for _, approval := range pending {
			row := models.PendingApproval{
				ID:        approval.ID,
				UserID:    approval.UserID,
				MonthID:   approval.MonthID,
				PokemonID: approval.PokemonID,
				ProofURL:  approval.ProofURL,
				ProofURL2: approval.ProofURL2,
				CreatedAt: approval.CreatedAt,
			}

			if user, err := webApp.Repos.Users.GetByID(ctx, approval.UserID); err == nil {
				row.Username = user.Username
				row.DisplayName = user.DisplayName
			} else {
				slog.Warn("Pending approval user enrichment failed",
					slog.String("user_id", approval.UserID),
					slog.String("error", err.Error()))
			}

			if pokemon, err := webApp.Repos.Pokemon.GetByID(ctx, approval.PokemonID); err == nil {
				row.PokemonName = pokemon.Name
				row.ImgURL = pokemon.ImgURL
			} else {
				slog.Warn("Pending approval pokemon enrichment failed",
					slog.Int64("pokemon_id", approval.PokemonID),
					slog.String("error", err.Error()))
			}

			approvals = append(approvals, row)
		}

		return utils.SendJSON(c, fiber.StatusOK, approvals)
	}
}
