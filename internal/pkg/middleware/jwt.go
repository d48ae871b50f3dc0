package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/gebeta-delivery/gebeta/internal/pkg/jwt"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	"github.com/gebeta-delivery/gebeta/internal/utils"
)

// JWTAuthMiddleware authenticates requests with a Bearer token and threads
// the actor id and role into the Echo context. Core logic never reads a
// session globally; handlers pass the actor id down explicitly.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}
			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			c.Set("user_id", userID)
			c.Set("user_role", fmt.Sprintf("%v", role))

			return next(c)
		}
	}
}

// RequireRole rejects requests whose token role is not one of the allowed
// roles.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("user_role").(string)
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Insufficient permissions")
		}
	}
}

// ActorID returns the authenticated actor id from the Echo context
func ActorID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get("user_id").(uuid.UUID)
	return id, ok
}
