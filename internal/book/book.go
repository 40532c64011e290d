package book

import "errors"

// ErrNotFound is returned when no book has the requested id.
var ErrNotFound = errors.New("book not found")

// Book represents a book entity.
type Book struct {
	ID            string `json:"id" description:"The unique identifier of the book"`
	Title         string `json:"title" description:"The title of the book"`
	Author        string `json:"author" description:"The author of the book"`
	PublishedDate string `json:"publishedDate" description:"The publication date of the book"`
	ISBN          string `json:"isbn" description:"The ISBN number of the book"`
}

// CreateInput holds the client-supplied fields of a new book.
type CreateInput struct {
	Title         string
	Author        string
	PublishedDate string
	ISBN          string
}

func (in CreateInput) toBook(id string) Book {
	return Book{
		ID:            id,
		Title:         in.Title,
		Author:        in.Author,
		PublishedDate: in.PublishedDate,
		ISBN:          in.ISBN,
	}
}

// UpdateInput is a partial update. Nil fields keep their stored value.
type UpdateInput struct {
	Title         *string
	Author        *string
	PublishedDate *string
	ISBN          *string
}

// Apply merges the set fields of in onto b. The id is never touched.
func (in UpdateInput) Apply(b *Book) {
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Author != nil {
		b.Author = *in.Author
	}
	if in.PublishedDate != nil {
		b.PublishedDate = *in.PublishedDate
	}
	if in.ISBN != nil {
		b.ISBN = *in.ISBN
	}
}

// SeedBooks returns the records the store starts with.
func SeedBooks() []Book {
	return []Book{
		{ID: "1", Title: "1984", Author: "George Orwell", PublishedDate: "1949-06-08", ISBN: "9780451524935"},
		{ID: "2", Title: "To Kill a Mockingbird", Author: "Harper Lee", PublishedDate: "1960-07-11", ISBN: "9780060935467"},
	}
}
