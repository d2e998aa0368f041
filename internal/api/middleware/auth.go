package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/bookhive/bookstore-api/internal/core/ports"
)

// DenylistChecker reports whether a token has been revoked by logout.
type DenylistChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// Auth is the access guard: it validates the bearer token, rejects revoked
// tokens, resolves the referenced user, and injects the user into context
// under the "user" key. It never mutates state.
func Auth(jwtSecret string, users ports.UserRepository, denylist DenylistChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, no token provided")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, invalid authorization header")
			}
			raw := parts[1]

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, token invalid or expired")
			}

			if denylist != nil {
				revoked, err := denylist.IsRevoked(c.Request().Context(), raw)
				if err == nil && revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, token revoked")
				}
			}

			id, _ := claims["id"].(string)
			user, err := users.FindByID(c.Request().Context(), id)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "User no longer exists")
			}

			c.Set("user", user)
			return next(c)
		}
	}
}
