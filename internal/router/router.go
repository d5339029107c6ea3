package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"userauth/internal/auth"
	"userauth/internal/handler"
	"userauth/internal/validation"
)

// Register wires routes and middleware.
func Register(e *echo.Echo, authHandler *handler.AuthHandler, jwtService *auth.JWTService) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = validation.NewEchoValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/user")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// Protected routes
	api.GET("/profile", authHandler.Profile, auth.RequireAuth(jwtService))
}
