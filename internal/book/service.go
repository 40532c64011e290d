package book

import (
	"context"
	"fmt"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
	ids  *IDGenerator
}

// NewService creates a new book service.
func NewService(repo Repository, ids *IDGenerator) *Service {
	if ids == nil {
		ids = NewIDGenerator(nil)
	}
	return &Service{repo: repo, ids: ids}
}

// List returns every book in collection order.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// Get returns the book with the given id.
func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return Book{}, fmt.Errorf("get book %q: %w", id, err)
	}
	return b, nil
}

// Create assigns a fresh id and appends the book to the collection.
func (s *Service) Create(ctx context.Context, in CreateInput) (Book, error) {
	b := in.toBook(s.ids.Next())
	if err := s.repo.Append(ctx, b); err != nil {
		return Book{}, fmt.Errorf("create book: %w", err)
	}
	return b, nil
}

// Update merges the set fields of in onto the stored book.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Book, error) {
	b, err := s.repo.Update(ctx, id, in.Apply)
	if err != nil {
		return Book{}, fmt.Errorf("update book %q: %w", id, err)
	}
	return b, nil
}

// Delete removes the book and returns it.
func (s *Service) Delete(ctx context.Context, id string) (Book, error) {
	b, err := s.repo.Delete(ctx, id)
	if err != nil {
		return Book{}, fmt.Errorf("delete book %q: %w", id, err)
	}
	return b, nil
}
