package book

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks bookstore/internal/book Repository

// Repository defines the contract for book data storage.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id string) (Book, error)
	Append(ctx context.Context, b Book) error
	// Update applies mutate to the stored book and returns the result.
	Update(ctx context.Context, id string, mutate func(*Book)) (Book, error)
	// Delete removes the book and returns it as it was before removal.
	Delete(ctx context.Context, id string) (Book, error)
}
