package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "epicare/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"epicare/internal/auth"
	"epicare/internal/cache"
	"epicare/internal/config"
	"epicare/internal/db"
	"epicare/internal/handler"
	"epicare/internal/model"
	"epicare/internal/notify"
	"epicare/internal/repository"
	"epicare/internal/router"
	"epicare/internal/service"
)

// @title Epicare API
// @version 1.0
// @description Epilepsy support backend: accounts, support teams, medication schedules and seizure alerts with push notification fan-out.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Medication{},
			&model.Seizure{},
			&model.SupportRelation{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.SupportRelation{},
		&model.Seizure{},
		&model.Medication{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if !cacheClient.Ping(context.Background()) {
		log.Println("Warning: Redis unreachable, running without cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	relationRepo := repository.NewRelationRepository(gormDB)
	seizureRepo := repository.NewSeizureRepository(gormDB)
	medicationRepo := repository.NewMedicationRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize push dispatcher
	pushClient := notify.NewPushClient(cfg.PushGatewayURL)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	profileService := service.NewProfileService(userRepo, cacheClient)
	teamService := service.NewTeamService(userRepo, relationRepo)
	alertService := service.NewAlertService(userRepo, relationRepo, seizureRepo, pushClient)
	seizureService := service.NewSeizureService(userRepo, relationRepo, seizureRepo)
	medicationService := service.NewMedicationService(medicationRepo, userRepo, pushClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	teamHandler := handler.NewTeamHandler(teamService)
	seizureHandler := handler.NewSeizureHandler(alertService, seizureService)
	medicationHandler := handler.NewMedicationHandler(medicationService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		profileHandler,
		teamHandler,
		seizureHandler,
		medicationHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
