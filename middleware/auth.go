package middleware

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shinysquad/streambingo/handlers"
	"github.com/shinysquad/streambingo/streambingo/database/models"
	"github.com/shinysquad/streambingo/utils"
)

// AuthRequired middleware ensures the request carries a valid session token.
func AuthRequired(webApp *handlers.WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := resolveUser(c, webApp)
		if err != nil || user == nil {
			slog.Debug("Auth required: no valid session")
			return utils.SendUnauthorized(c, "Authentication required")
		}

		// Store user in context
		c.Locals("user", user)

		slog.Debug("Auth middleware: user authenticated",
			slog.String("user_id", user.ID),
			slog.String("username", user.Username))

		return c.Next()
	}
}

// OptionalAuth middleware adds user info to context if a valid token is
// present, but doesn't require it. A bad or expired token degrades to an
// anonymous request instead of failing.
func OptionalAuth(webApp *handlers.WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := resolveUser(c, webApp)
		if err == nil && user != nil {
			c.Locals("user", user)
			slog.Debug("Optional auth: user authenticated",
				slog.String("user_id", user.ID),
				slog.String("username", user.Username))
		}

		return c.Next()
	}
}

// ModeratorRequired middleware ensures the authenticated user has moderator
// privileges. It expects AuthRequired to have run first.
func ModeratorRequired(webApp *handlers.WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := utils.ExtractUser(c)
		if !ok {
			slog.Warn("Moderator required: no user in context")
			return utils.SendForbidden(c, "Access denied")
		}

		if !user.IsModerator {
			slog.Warn("Moderator required: user lacks moderator privileges",
				slog.String("user_id", user.ID),
				slog.String("username", user.Username))
			return utils.SendForbidden(c, "Moderator access required")
		}

		return c.Next()
	}
}

// resolveUser looks up the user behind the request's bearer token.
func resolveUser(c *fiber.Ctx, webApp *handlers.WebApp) (*models.User, error) {
	token := extractBearerToken(c)
	if token == "" {
		return nil, nil
	}

	user, err := webApp.Repos.Users.GetByToken(c.Context(), token)
	if err != nil {
		slog.Debug("Session token lookup failed", slog.String("error", err.Error()))
		return nil, err
	}
	return user, nil
}

// extractBearerToken pulls the token out of the Authorization header.
func extractBearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
