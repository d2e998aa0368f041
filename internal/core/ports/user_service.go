package ports

import (
	"context"

	"github.com/bookhive/bookstore-api/internal/core/domain"
)

type UserService interface {
	GetAll(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// Update applies a partial profile update. The actor must be the user
	// themselves or an admin.
	Update(ctx context.Context, actor *domain.User, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
