package ports

import (
	"context"

	"github.com/bookhive/bookstore-api/internal/core/domain"
)

// CreateBookInput carries all data needed to create a book.
type CreateBookInput struct {
	Title       string
	Description string
	Amount      int
}

// PurchasedBook is the slice of the book returned after a purchase.
type PurchasedBook struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Amount int    `json:"amount"`
}

// PurchasingUser is the slice of the buyer returned after a purchase.
type PurchasingUser struct {
	PurchaseCount int `json:"purchase_count"`
}

// PurchaseResult is returned by Buy: the decremented stock and the buyer's
// incremented purchase counter.
type PurchaseResult struct {
	Book PurchasedBook  `json:"book"`
	User PurchasingUser `json:"user"`
}

// BookService defines use-case operations for the book inventory.
type BookService interface {
	Create(ctx context.Context, actor *domain.User, input CreateBookInput) (*domain.Book, error)
	List(ctx context.Context) ([]*domain.Book, error)
	Get(ctx context.Context, id string) (*domain.Book, error)
	Update(ctx context.Context, actor *domain.User, id string, update BookUpdate) (*domain.Book, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	Buy(ctx context.Context, actor *domain.User, id string) (*PurchaseResult, error)
}
