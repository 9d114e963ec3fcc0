package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/shinysquad/streambingo/handlers"
	"github.com/shinysquad/streambingo/middleware"
	webmodels "github.com/shinysquad/streambingo/models"
	"github.com/shinysquad/streambingo/streambingo"
	"github.com/shinysquad/streambingo/streambingo/database"
	"github.com/shinysquad/streambingo/streambingo/database/repositories"
	"github.com/shinysquad/streambingo/streambingo/logger"
	"github.com/shinysquad/streambingo/streambingo/services"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// Initialize logger first
	customHandler := logger.NewHandler("ShinyBingo")
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting Shiny Bingo API",
		slog.String("version", version),
		slog.String("commit", commit),
		slog.String("type", "sys"))

	cfg, err := streambingo.LoadConfig(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	slog.Info("Connecting to database...")
	db, err := database.New(ctx, database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
	})
	if err != nil {
		slog.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("Database connected successfully")

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	repos := webmodels.NewRepositories(
		repositories.NewUserRepository(db.BunDB()),
		repositories.NewMonthRepository(db.BunDB()),
		repositories.NewPokemonRepository(db.BunDB()),
		repositories.NewPoolRepository(db.BunDB()),
		repositories.NewEntryRepository(db.BunDB()),
		repositories.NewApprovalRepository(db.BunDB()),
		repositories.NewPointsRepository(db.BunDB()),
		repositories.NewAchievementRepository(db.BunDB()),
	)

	// Initialize services
	spacesService := services.NewSpacesService(
		cfg.Spaces.Key,
		cfg.Spaces.Secret,
		cfg.Spaces.Region,
		cfg.Spaces.Bucket,
		cfg.Spaces.ProofRoot,
	)
	twitchService := services.NewTwitchService(cfg.Twitch.ClientID, cfg.Twitch.ClientSecret)

	resolver := services.NewPeriodResolver(repos.Months)
	board := services.NewBoardAssembler(repos.Pools, repos.Pokemon, repos.Entries)
	ranking := services.NewRankingService(repos.Points, repos.Users, repos.Achievements, repos.Months, twitchService)
	submissions := services.NewSubmissionService(resolver, repos.Pools, repos.Pokemon, repos.Entries, repos.Approvals, spacesService)

	// Initialize Fiber as API-only backend
	app := fiber.New(fiber.Config{
		AppName:      "Shiny Bingo API",
		ServerHeader: "ShinyBingo",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.Web.AllowOrigins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Requested-With",
		AllowCredentials: true,
	}))
	app.Use(middleware.LoggingMiddleware())

	webApp := &handlers.WebApp{
		Config:      cfg,
		DB:          db,
		Repos:       repos,
		Resolver:    resolver,
		Board:       board,
		Ranking:     ranking,
		Submissions: submissions,
		Twitch:      twitchService,
		Spaces:      spacesService,
		Version:     version,
		Commit:      commit,
	}

	setupRoutes(app, webApp)

	address := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	slog.Info("Starting server", slog.String("address", address))

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := app.Listen(address); err != nil {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-c
	slog.Info("Shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		slog.Error("Server shutdown error", slog.String("error", err.Error()))
	}

	db.Close()

	slog.Info("Server shutdown complete")
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, webApp *handlers.WebApp) {
	api := app.Group("/api")

	api.Get("/health", handlers.HealthCheck(webApp))

	// Public routes; optional auth personalizes the board and applies the
	// moderator preview offset.
	api.Get("/bingo/board", middleware.OptionalAuth(webApp), handlers.BingoBoard(webApp))
	api.Get("/leaderboard", middleware.OptionalAuth(webApp), handlers.Leaderboard(webApp))
	api.Get("/profile/:userId", handlers.Profile(webApp))
	api.Get("/profile/:userId/board", handlers.ProfileBoard(webApp))
	api.Get("/ambassadors", handlers.Ambassadors(webApp))
	api.Get("/pokemon/:pokemonId/recent-catches", handlers.RecentCatches(webApp))

	// Authenticated routes
	api.Get("/pokedex", middleware.AuthRequired(webApp), handlers.Pokedex(webApp))
	api.Get("/user/is-moderator", middleware.AuthRequired(webApp), handlers.IsModerator(webApp))

	upload := api.Group("/upload")
	upload.Use(middleware.AuthRequired(webApp))
	upload.Get("/available-pokemon", handlers.AvailablePokemon(webApp))
	upload.Post("/submission", handlers.SubmitCatch(webApp))

	// Moderator routes
	approvals := api.Group("/approvals")
	approvals.Use(middleware.AuthRequired(webApp))
	approvals.Use(middleware.ModeratorRequired(webApp))
	approvals.Get("/pending", middleware.AuditLogMiddleware("list_pending_approvals"), handlers.PendingApprovals(webApp))

	// Global handler for unmatched routes
	app.Use(func(c *fiber.Ctx) error {
		slog.Warn("No route matched for request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
		)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not Found",
		})
	})
}
