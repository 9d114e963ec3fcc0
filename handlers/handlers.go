package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shinysquad/streambingo/models"
	"github.com/shinysquad/streambingo/streambingo"
	"github.com/shinysquad/streambingo/streambingo/database"
	"github.com/shinysquad/streambingo/streambingo/database/repositories"
	"github.com/shinysquad/streambingo/streambingo/services"
)

// WebApp represents the web application with all dependencies
type WebApp struct {
	Config      *streambingo.Config
	DB          *database.DB
	Repos       *models.Repositories
	Resolver    *services.PeriodResolver
	Board       *services.BoardAssembler
	Ranking     *services.RankingService
	Submissions *services.SubmissionService
	Twitch      *services.TwitchService
	Spaces      *services.SpacesService
	Version     string
	Commit      string
}

// repoNotFound reports whether a repository error means the row is missing.
func repoNotFound(err error) bool {
	return repositories.IsNotFound(err)
}

// HealthCheck reports server and database health.
func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := webApp.DB.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":  "unhealthy",
				"message": "database unreachable",
			})
		}

		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Shiny Bingo API is running",
			"version": webApp.Version,
		})
	}
}
