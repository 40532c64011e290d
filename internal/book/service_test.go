package book

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestService(now func() time.Time) *Service {
	return NewService(NewMemoryRepo(SeedBooks()...), NewIDGenerator(now))
}

func TestService_List_Seed(t *testing.T) {
	svc := newTestService(nil)

	books, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "1", books[0].ID)
	assert.Equal(t, "2", books[1].ID)
	assert.Equal(t, "Harper Lee", books[1].Author)
}

func TestService_Create(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	svc := newTestService(func() time.Time { return fixed })
	ctx := context.Background()

	t.Run("assigns timestamp id and appends", func(t *testing.T) {
		created, err := svc.Create(ctx, CreateInput{
			Title:         "Dune",
			Author:        "Frank Herbert",
			PublishedDate: "1965-08-01",
			ISBN:          "9780441172719",
		})
		require.NoError(t, err)
		assert.Equal(t, "1700000000000", created.ID)
		assert.Equal(t, "Dune", created.Title)

		books, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, books, 3)
		assert.Equal(t, created, books[2])
	})

	t.Run("ids stay unique within one millisecond", func(t *testing.T) {
		before, err := svc.List(ctx)
		require.NoError(t, err)

		seen := map[string]bool{}
		for _, b := range before {
			seen[b.ID] = true
		}
		const n = 25
		for i := 0; i < n; i++ {
			created, err := svc.Create(ctx, CreateInput{Title: "copy"})
			require.NoError(t, err)
			assert.False(t, seen[created.ID], "duplicate id %s", created.ID)
			seen[created.ID] = true
		}

		after, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, after, len(before)+n)
	})
}

func TestService_GetAfterCreate(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Title: "Emma", Author: "Jane Austen", PublishedDate: "1815-12-23", ISBN: "9780141439587"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

// Update merges the provided fields instead of replacing the whole record.
func TestService_Update_PartialMerge(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	updated, err := svc.Update(ctx, "1", UpdateInput{Title: strPtr("Nineteen Eighty-Four")})
	require.NoError(t, err)

	want := Book{
		ID:            "1",
		Title:         "Nineteen Eighty-Four",
		Author:        "George Orwell",
		PublishedDate: "1949-06-08",
		ISBN:          "9780451524935",
	}
	assert.Equal(t, want, updated)

	got, err := svc.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_Update_AllFields(t *testing.T) {
	svc := newTestService(nil)

	updated, err := svc.Update(context.Background(), "2", UpdateInput{
		Title:         strPtr("Go Set a Watchman"),
		Author:        strPtr("Harper Lee"),
		PublishedDate: strPtr("2015-07-14"),
		ISBN:          strPtr("9780062409850"),
	})
	require.NoError(t, err)
	assert.Equal(t, Book{ID: "2", Title: "Go Set a Watchman", Author: "Harper Lee", PublishedDate: "2015-07-14", ISBN: "9780062409850"}, updated)
}

func TestService_Delete(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	deleted, err := svc.Delete(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "To Kill a Mockingbird", deleted.Title)

	_, err = svc.Get(ctx, "2")
	assert.True(t, errors.Is(err, ErrNotFound))

	books, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "1", books[0].ID)

	_, err = svc.Delete(ctx, "2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_NotFound(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()
	const missing = "does-not-exist"

	_, err := svc.Get(ctx, missing)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, missing, UpdateInput{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Delete(ctx, missing)
	assert.ErrorIs(t, err, ErrNotFound)

	books, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 2)
}
