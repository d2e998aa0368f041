package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookhive/bookstore-api/internal/api/metrics"
	"github.com/bookhive/bookstore-api/internal/core/domain"
	"github.com/bookhive/bookstore-api/internal/core/ports"
)

type bookService struct {
	books ports.BookRepository
	users ports.UserRepository
	log   zerolog.Logger
}

// NewBookService returns a BookService implementation.
func NewBookService(books ports.BookRepository, users ports.UserRepository, log zerolog.Logger) ports.BookService {
	return &bookService{books: books, users: users, log: log}
}

func (s *bookService) Create(ctx context.Context, actor *domain.User, input ports.CreateBookInput) (*domain.Book, error) {
	if input.Amount < 0 {
		return nil, domain.ErrNegativeAmount
	}

	now := time.Now().UTC()
	book := &domain.Book{
		Title:       input.Title,
		Description: input.Description,
		Amount:      input.Amount,
		OwnerID:     actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.books.Create(ctx, book)
	if err != nil {
		return nil, err
	}

	metrics.BooksCreatedTotal.Inc()
	s.log.Info().Str("book_id", created.ID).Str("owner_id", actor.ID).Msg("book created")
	return created, nil
}

func (s *bookService) List(ctx context.Context) ([]*domain.Book, error) {
	return s.books.FindAll(ctx)
}

func (s *bookService) Get(ctx context.Context, id string) (*domain.Book, error) {
	return s.books.FindByIDWithOwner(ctx, id)
}

func (s *bookService) Update(ctx context.Context, actor *domain.User, id string, update ports.BookUpdate) (*domain.Book, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanActOn(actor, book.OwnerID) {
		return nil, domain.ErrForbidden
	}

	if update.Amount != nil && *update.Amount < 0 {
		return nil, domain.ErrNegativeAmount
	}

	updated, err := s.books.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("book_id", id).Str("actor_id", actor.ID).Msg("book updated")
	return updated, nil
}

func (s *bookService) Delete(ctx context.Context, actor *domain.User, id string) error {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !domain.CanActOn(actor, book.OwnerID) {
		return domain.ErrForbidden
	}

	if err := s.books.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("book_id", id).Str("actor_id", actor.ID).Msg("book deleted")
	return nil
}

// Buy performs the purchase transaction:
//  1. the stock decrement is atomic at the store ("decrement if > 0"), so
//     concurrent purchases cannot drive the amount negative;
//  2. the buyer's purchase counter is incremented afterwards. If that second
//     write fails the stock stays decremented — there is no compensating
//     rollback across the two documents.
func (s *bookService) Buy(ctx context.Context, actor *domain.User, id string) (*ports.PurchaseResult, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			metrics.PurchaseErrorsTotal.WithLabelValues("not_found").Inc()
		}
		return nil, err
	}

	if book.OwnerID == actor.ID {
		metrics.PurchaseErrorsTotal.WithLabelValues("own_book").Inc()
		return nil, domain.ErrOwnBookPurchase
	}

	if book.Amount <= 0 {
		metrics.PurchaseErrorsTotal.WithLabelValues("out_of_stock").Inc()
		return nil, domain.ErrOutOfStock
	}

	updated, err := s.books.DecrementStock(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrOutOfStock) {
			// Lost the race against a concurrent purchase.
			metrics.PurchaseErrorsTotal.WithLabelValues("out_of_stock").Inc()
			return nil, err
		}
		metrics.PurchaseErrorsTotal.WithLabelValues("update_failed").Inc()
		return nil, err
	}

	count, err := s.users.IncrementPurchaseCount(ctx, actor.ID)
	if err != nil {
		metrics.PurchaseErrorsTotal.WithLabelValues("update_failed").Inc()
		s.log.Error().Err(err).
			Str("book_id", id).
			Str("buyer_id", actor.ID).
			Msg("stock decremented but purchase counter update failed")
		return nil, fmt.Errorf("purchase counter update: %w", err)
	}

	metrics.PurchasesTotal.Inc()
	s.log.Info().
		Str("book_id", id).
		Str("buyer_id", actor.ID).
		Int("remaining", updated.Amount).
		Msg("book purchased")

	return &ports.PurchaseResult{
		Book: ports.PurchasedBook{ID: updated.ID, Title: updated.Title, Amount: updated.Amount},
		User: ports.PurchasingUser{PurchaseCount: count},
	}, nil
}
