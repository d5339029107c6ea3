package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apierrors "userauth/internal/errors"
)

// ContextUserKey is the echo context key under which the verified user record
// is stored.
const ContextUserKey = "user"

// RequireAuth returns middleware that enforces a valid bearer token. The raw
// value is taken from the Authorization header, falling back to the "token"
// query parameter and then a "token" field in a JSON body. The value must have
// the form "Bearer <token>" regardless of where it came from.
func RequireAuth(jwtService *JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			if raw == "" {
				raw = c.QueryParam("token")
			}
			if raw == "" {
				raw = tokenFromBody(c)
			}
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, apierrors.Fail("Authorization token required"))
			}

			parts := strings.Split(raw, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, apierrors.Fail("Invalid token format"))
			}

			claims, err := jwtService.ValidateToken(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierrors.Fail("Invalid or expired token"))
			}

			c.Set(ContextUserKey, &claims.User)
			return next(c)
		}
	}
}

// tokenFromBody peeks at a JSON request body for a "token" field, restoring
// the body for downstream handlers.
func tokenFromBody(c echo.Context) string {
	req := c.Request()
	if req.Body == nil {
		return ""
	}
	body, err := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil || len(body) == 0 {
		return ""
	}
	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Token
}
