package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/gokul-1998/flashdeck-service/config"
	"github.com/gokul-1998/flashdeck-service/db"
	authhandler "github.com/gokul-1998/flashdeck-service/internal/auth/handler"
	authrepo "github.com/gokul-1998/flashdeck-service/internal/auth/repository/postgres"
	authservice "github.com/gokul-1998/flashdeck-service/internal/auth/service"
	dashboardhandler "github.com/gokul-1998/flashdeck-service/internal/dashboard/handler"
	dashboardrepo "github.com/gokul-1998/flashdeck-service/internal/dashboard/repository/postgres"
	dashboardservice "github.com/gokul-1998/flashdeck-service/internal/dashboard/service"
	deckhandler "github.com/gokul-1998/flashdeck-service/internal/deck/handler"
	deckrepo "github.com/gokul-1998/flashdeck-service/internal/deck/repository/postgres"
	deckservice "github.com/gokul-1998/flashdeck-service/internal/deck/service"
	mediahandler "github.com/gokul-1998/flashdeck-service/internal/media/handler"
	quizhandler "github.com/gokul-1998/flashdeck-service/internal/quiz/handler"
	quizservice "github.com/gokul-1998/flashdeck-service/internal/quiz/service"
	quizstore "github.com/gokul-1998/flashdeck-service/internal/quiz/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("failed to create upload dir: %v", err)
	}

	tokenService, err := authservice.NewTokenService(cfg)
	if err != nil {
		log.Fatalf("failed to initialise token service: %v", err)
	}

	userRepo := authrepo.NewPostgresRepository(dbPool)
	userService := authservice.NewUserService(userRepo, tokenService)
	authHandler := authhandler.NewAuthHandler(userService, tokenService)

	deckRepo := deckrepo.NewPostgresRepository(dbPool)
	deckService := deckservice.NewDeckService(deckRepo, cfg.MaxPageSize)
	deckHandler := deckhandler.NewDeckHandler(deckService)

	quizService := quizservice.NewQuizService(deckService, quizstore.NewMemoryStore())
	quizHandler := quizhandler.NewQuizHandler(quizService)

	dashboardRepo := dashboardrepo.NewPostgresRepository(dbPool)
	dashboardService := dashboardservice.NewDashboardService(dashboardRepo)
	dashboardHandler := dashboardhandler.NewDashboardHandler(dashboardService)

	mediaHandler := mediahandler.NewMediaHandler(cfg.UploadDir)

	app := fiber.New()
	app.Static("/static/uploads", cfg.UploadDir)

	authhandler.RegisterRoutes(app, authHandler)
	deckhandler.RegisterRoutes(app, deckHandler, authHandler.RequireAuth)
	quizhandler.RegisterRoutes(app, quizHandler, authHandler.RequireAuth)
	dashboardhandler.RegisterRoutes(app, dashboardHandler, authHandler.RequireAuth)
	mediahandler.RegisterRoutes(app, mediaHandler, authHandler.RequireAuth)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
