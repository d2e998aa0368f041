package ports

import (
	"context"

	"github.com/bookhive/bookstore-api/internal/core/domain"
)

// BookUpdate carries a partial book update. Nil fields are left untouched.
type BookUpdate struct {
	Title       *string
	Description *string
	Amount      *int
}

// BookRepository defines persistence for the book inventory.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	// FindByIDWithOwner resolves the owner to its {name,email} projection.
	FindByIDWithOwner(ctx context.Context, id string) (*domain.Book, error)
	// FindAll returns every book with owners resolved. No pagination.
	FindAll(ctx context.Context) ([]*domain.Book, error)
	Update(ctx context.Context, id string, update BookUpdate) (*domain.Book, error)
	Delete(ctx context.Context, id string) error
	// DecrementStock atomically decrements amount by one, guarded by
	// amount > 0, and returns the updated book. Returns ErrOutOfStock when
	// the guard does not match.
	DecrementStock(ctx context.Context, id string) (*domain.Book, error)
}
