package ports

import (
	"context"

	"github.com/bookhive/bookstore-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. Role is
// optional and defaults to the standard user role.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Age      int
	Role     string
}

type AuthService interface {
	// Register creates an account and returns it with a freshly minted token.
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the given raw bearer token for its remaining lifetime.
	// An empty or unparsable token is a no-op.
	Logout(ctx context.Context, rawToken string) error
}
