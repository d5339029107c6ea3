package main

import (
	"log"
	"net/http"

	_ "userauth/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"userauth/internal/auth"
	"userauth/internal/config"
	"userauth/internal/db"
	"userauth/internal/handler"
	"userauth/internal/model"
	"userauth/internal/repository"
	"userauth/internal/router"
	"userauth/internal/service"
)

// @title User Authentication API
// @version 1.0
// @description User registration, login and profile retrieval with JWT bearer authentication.
// @host localhost:3000
// @BasePath /api/user
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	authHandler := handler.NewAuthHandler(authService)

	router.Register(e, authHandler, jwtService)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
