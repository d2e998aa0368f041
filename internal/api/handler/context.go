package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookhive/bookstore-api/internal/core/domain"
)

// currentUser extracts the user injected by the Auth middleware. Its absence
// means the middleware did not run on this route — treat as unauthenticated.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Not authorized")
	}
	return user, nil
}
