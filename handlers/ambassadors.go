package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/shinysquad/streambingo/models"
	"github.com/shinysquad/streambingo/streambingo/services"
	"github.com/shinysquad/streambingo/utils"
	"golang.org/x/sync/errgroup"
)

// Ambassadors lists the community ambassadors with their brand color and
// current live status.
func Ambassadors(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := webApp.Repos.Users.GetAmbassadors(c.Context())
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load ambassadors", err)
		}

		ambassadors := make([]models.Ambassador, len(users))
		g, gctx := errgroup.WithContext(c.Context())
		g.SetLimit(8)
		for i, user := range users {
			ambassadors[i] = models.Ambassador{
				ID:          user.ID,
				Username:    user.Username,
				DisplayName: user.DisplayName,
				AvatarURL:   user.AvatarURL,
				TwitchURL:   user.TwitchURL,
				BrandColor:  services.DefaultHexCode,
			}
			if user.HexCode != "" {
				ambassadors[i].BrandColor = user.HexCode
			}

			login := user.TwitchLogin()
			if webApp.Twitch == nil || !webApp.Twitch.Enabled() || login == "" {
				continue
			}

			ambassador := &ambassadors[i]
			g.Go(func() error {
				status, err := webApp.Twitch.Status(gctx, login)
				if err != nil {
					slog.Debug("Ambassador live status lookup failed",
						slog.String("login", login),
						slog.String("error", err.Error()))
					return nil
				}
				ambassador.IsLive = status.IsLive
				ambassador.ViewerCount = status.ViewerCount
				return nil
			})
		}
		_ = g.Wait()

		return utils.SendJSON(c, fiber.StatusOK, ambassadors)
	}
}
