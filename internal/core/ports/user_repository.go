package ports

import (
	"context"

	"github.com/bookhive/bookstore-api/internal/core/domain"
)

// UserUpdate carries a partial profile update. Nil fields are left untouched.
type UserUpdate struct {
	Name  *string
	Email *string
	Age   *int
}

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// IncrementPurchaseCount atomically bumps purchase_count by one and
	// returns the new value.
	IncrementPurchaseCount(ctx context.Context, id string) (int, error)
}
