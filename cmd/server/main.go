// cmd/server is the entry point for the Buddies Cup API server.
// The cmd/ folder holds executable binaries; internal/ holds the packages
// they are built from.
package main

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"

	"github.com/dmoran14/buddies-cup/internal/config"
	"github.com/dmoran14/buddies-cup/internal/database"
	"github.com/dmoran14/buddies-cup/internal/handlers"
	"github.com/dmoran14/buddies-cup/internal/middleware"
	"github.com/dmoran14/buddies-cup/internal/websocket"
)

func main() {
	cfg := config.Load()
	log := newLogger(cfg)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	// Migrations run at startup so the schema is always in sync with the binary.
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	// The hub fans score-write broadcasts out to everyone streaming a day's
	// results. It owns the client set on its own goroutine.
	hub := websocket.NewHub()
	go hub.Run()

	app := fiber.New(fiber.Config{
		AppName: "Buddies Cup API",
	})

	app.Use(fiberlogger.New())
	app.Use(cors.New())

	// Public surface: liveness, metrics, and login.
	app.Get("/health", handlers.HealthCheck)
	app.Get("/metrics", handlers.Metrics())
	app.Post("/api/v1/auth/login", handlers.Login(cfg))

	// Everything else requires a session from one of the shared passwords.
	api := app.Group("/api/v1", middleware.Auth(cfg))

	api.Get("/players", handlers.GetPlayers(db))
	api.Post("/players", middleware.RequireAdmin(), handlers.CreatePlayer(db))
	api.Put("/players/:id", middleware.RequireAdmin(), handlers.UpdatePlayer(db))

	api.Get("/courses", handlers.GetCourses(db))
	api.Post("/courses", middleware.RequireAdmin(), handlers.CreateCourse(db))

	api.Get("/matches", handlers.GetMatches(db))
	api.Get("/matches/:id", handlers.GetMatch(db))
	api.Post("/matches", middleware.RequireAdmin(), handlers.CreateMatch(db))
	api.Put("/matches/:id/lock", middleware.RequireAdmin(), handlers.SetMatchLock(db))

	// Score entry is open to every signed-in player; the per-match lock is the
	// only write gate. Writes trigger a hub broadcast for the day.
	api.Get("/matches/:id/scores", handlers.GetScores(db))
	api.Put("/matches/:id/scores", handlers.UpsertScore(db, hub, log))
	api.Delete("/matches/:id/scores/:player/:hole", handlers.DeleteScore(db, hub, log))

	api.Get("/leaderboard", handlers.GetLeaderboard(db))
	api.Get("/skins/:day", handlers.GetSkins(db))
	api.Get("/quota/:day", handlers.GetQuota(db))

	api.Get("/odds/matchup", handlers.GetMatchupOdds())
	api.Get("/odds/team", handlers.GetTeamOdds())
	api.Get("/odds/tease", handlers.GetTeaseOdds())
	api.Get("/odds/live/:matchId", handlers.GetLiveOdds(db))

	api.Get("/bets", handlers.GetBets(db))
	api.Post("/bets", handlers.CreateBet(db))
	api.Put("/bets/:id/settle", middleware.RequireAdmin(), handlers.SettleBet(db))

	api.Get("/stats", handlers.GetRoundStats(db))
	api.Post("/days/:day/stats", middleware.RequireAdmin(), handlers.SnapshotRoundStats(db))

	// Live results feed (SSE), one stream per tournament day.
	api.Get("/stream/:day", handlers.StreamDay(hub))

	log.WithField("port", cfg.Port).Info("starting server")
	log.Fatal(app.Listen(":" + cfg.Port))
}

// newLogger builds the app logger: JSON in production, colored text in
// development, level from LOG_LEVEL when set.
func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()

	level := cfg.LogLevel
	if level == "" {
		if cfg.Env == "development" {
			level = "debug"
		} else {
			level = "info"
		}
	}
	if parsed, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		log.SetLevel(parsed)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", level).Warn("invalid LOG_LEVEL, using info")
	}

	if cfg.Env == "development" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}
