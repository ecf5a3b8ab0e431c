package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"MovieVaultAPI/internal/auth"
	"MovieVaultAPI/internal/config"
	"MovieVaultAPI/internal/db"
	"MovieVaultAPI/internal/repository"
	"MovieVaultAPI/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config error", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// ======================
	// INFRA
	// ======================
	if err := db.Migrate(ctx, cfg.DatabaseDSN); err != nil {
		logger.Error("migration error", "err", err)
		os.Exit(1)
	}

	pool, err := db.Connect(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error("db error", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	// ======================
	// AUTH CORE
	// ======================
	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenLifetime)

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	movieRepo := repository.NewMovieRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(userRepo, hasher, tokens)
	userSvc := services.NewUserService(userRepo, hasher)
	movieSvc := services.NewMovieService(movieRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"ping": true})
	})

	api := e.Group("")
	registerAuthRoutes(api, authSvc)
	registerUserRoutes(api, userSvc, tokens)
	registerMovieRoutes(api, movieSvc, tokens)

	logger.Info("starting server", "port", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
