package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"userauth/internal/auth"
	apierrors "userauth/internal/errors"
	"userauth/internal/model"
	"userauth/internal/service"
	"userauth/internal/validation"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse extends the standard envelope with the issued bearer token.
type LoginResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Token     string      `json:"token"`
	TokenType string      `json:"tokenType"`
	Data      *model.User `json:"data"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 409 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierrors.Fail("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierrors.Validation(validation.Translate(err)))
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if err == service.ErrUserAlreadyExists {
			return c.JSON(http.StatusConflict, apierrors.Fail("User already exists"))
		}
		return c.JSON(http.StatusInternalServerError, apierrors.Internal("Registration failed", err))
	}

	return c.JSON(http.StatusCreated, apierrors.OK("User registered successfully", user))
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierrors.Fail("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierrors.Validation(validation.Translate(err)))
	}

	email := validation.NormalizeEmail(req.Email)

	token, user, err := h.authService.Login(c.Request().Context(), email, req.Password)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			return c.JSON(http.StatusNotFound, apierrors.Fail("Invalid credentials (user not found)"))
		case service.ErrPasswordMismatch:
			return c.JSON(http.StatusUnauthorized, apierrors.Fail("Password not matching"))
		}
		return c.JSON(http.StatusInternalServerError, apierrors.Internal("Login failed", err))
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Success:   true,
		Message:   "Login successful",
		Token:     token,
		TokenType: "Bearer",
		Data:      user,
	})
}

// Profile godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	identity, ok := c.Get(auth.ContextUserKey).(*model.User)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apierrors.Fail("Invalid or expired token"))
	}

	user, err := h.authService.Profile(c.Request().Context(), identity.ID)
	if err != nil {
		if err == service.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, apierrors.Fail("User not found"))
		}
		return c.JSON(http.StatusInternalServerError, apierrors.Internal("Fetching profile failed", err))
	}

	return c.JSON(http.StatusOK, apierrors.OK("User profile fetched successfully", user))
}
