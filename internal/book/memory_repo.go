package book

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepo keeps the collection in process memory. Each call holds the
// lock for its whole read-modify-write, so concurrent requests apply in some
// serial order.
type MemoryRepo struct {
	mu    sync.RWMutex
	books []Book
}

func NewMemoryRepo(seed ...Book) *MemoryRepo {
	return &MemoryRepo{books: slices.Clone(seed)}
}

func (r *MemoryRepo) indexOf(id string) int {
	return slices.IndexFunc(r.books, func(b Book) bool { return b.ID == id })
}

func (r *MemoryRepo) List(ctx context.Context) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	return r.books[i], nil
}

func (r *MemoryRepo) Append(ctx context.Context, b Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.books = append(r.books, b)
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, id string, mutate func(*Book)) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	mutate(&r.books[i])
	return r.books[i], nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	removed := r.books[i]
	r.books = slices.Delete(r.books, i, i+1)
	return removed, nil
}
