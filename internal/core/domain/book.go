package domain

import (
	"errors"
	"time"
)

var ErrBookNotFound = errors.New("book not found")
var ErrNegativeAmount = errors.New("amount cannot be negative")
var ErrOwnBookPurchase = errors.New("you cannot buy your own book")
var ErrOutOfStock = errors.New("book is out of stock")

// BookOwner is the public projection of the user who created a book.
type BookOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Book is the inventory aggregate. Amount is the remaining purchasable
// copies and must never go negative. OwnerID is immutable after creation.
type Book struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Amount      int        `json:"amount"`
	OwnerID     string     `json:"owner_id"`
	Owner       *BookOwner `json:"owner,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
