package library

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// DefaultCategory is applied when a book is added with no category.
const DefaultCategory = "General"

// Books exposes CRUD and search over the books collection. Every mutating
// call independently reloads the whole document, mutates it in memory, and
// writes it back; nothing is cached between calls.
type Books struct {
	store *Store
}

// NewBooks returns a repository over the given store.
func NewBooks(store *Store) *Books { return &Books{store: store} }

// newID returns a fresh 8-character token. Collisions are possible in
// principle; no check against existing ids is performed.
func newID() string {
	return uuid.NewString()[:8]
}

// Add appends a new book and persists. An empty category becomes
// DefaultCategory and a year that does not parse as an integer becomes 0;
// neither is ever rejected. Returns the created record.
func (b *Books) Add(title, author, category, year string) (*Book, error) {
	doc, err := b.store.Read()
	if err != nil {
		return nil, err
	}
	if category == "" {
		category = DefaultCategory
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		y = 0
	}
	book := Book{
		ID:       newID(),
		Title:    title,
		Author:   author,
		Category: category,
		Year:     y,
	}
	doc.Books = append(doc.Books, book)
	if err := b.store.Write(doc); err != nil {
		return nil, err
	}
	return &book, nil
}

// List returns all books in stored order.
func (b *Books) List() ([]Book, error) {
	doc, err := b.store.Read()
	if err != nil {
		return nil, err
	}
	return doc.Books, nil
}

// FindByID returns the matching book, or nil when no record has that id.
// Absence is not an error.
func (b *Books) FindByID(id string) (*Book, error) {
	doc, err := b.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Books {
		if doc.Books[i].ID == id {
			book := doc.Books[i]
			return &book, nil
		}
	}
	return nil, nil
}

// BookUpdate names the fields of a partial update. A nil field keeps the
// current value.
type BookUpdate struct {
	Title    *string
	Author   *string
	Category *string
	Year     *int
}

// Update overwrites the supplied fields of the book with the given id and
// persists. Returns the updated record, or nil when no record matches. An
// update with no fields set still rewrites the document unchanged.
func (b *Books) Update(id string, change BookUpdate) (*Book, error) {
	doc, err := b.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Books {
		if doc.Books[i].ID != id {
			continue
		}
		book := &doc.Books[i]
		if change.Title != nil {
			book.Title = *change.Title
		}
		if change.Author != nil {
			book.Author = *change.Author
		}
		if change.Category != nil {
			book.Category = *change.Category
		}
		if change.Year != nil {
			book.Year = *change.Year
		}
		if err := b.store.Write(doc); err != nil {
			return nil, err
		}
		updated := *book
		return &updated, nil
	}
	return nil, nil
}

// Delete removes the book with the given id and reports whether a record
// was removed. The document is only rewritten when one was.
func (b *Books) Delete(id string) (bool, error) {
	doc, err := b.store.Read()
	if err != nil {
		return false, err
	}
	kept := make([]Book, 0, len(doc.Books))
	for _, book := range doc.Books {
		if book.ID != id {
			kept = append(kept, book)
		}
	}
	if len(kept) == len(doc.Books) {
		return false, nil
	}
	doc.Books = kept
	if err := b.store.Write(doc); err != nil {
		return false, err
	}
	return true, nil
}

// Search returns books whose title or author contains the query,
// case-insensitively, in stored order. The empty query matches every
// record.
func (b *Books) Search(query string) ([]Book, error) {
	doc, err := b.store.Read()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	var matches []Book
	for _, book := range doc.Books {
		if strings.Contains(strings.ToLower(book.Title), q) ||
			strings.Contains(strings.ToLower(book.Author), q) {
			matches = append(matches, book)
		}
	}
	return matches, nil
}
