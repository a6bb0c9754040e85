package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aescanero/bookshelf/pkg/domain"
)

// BookStore keeps books in insertion order in process memory.
// It owns the collection and the id counter; every mutation, including the
// counter increment, happens under the write lock.
type BookStore struct {
	books  []domain.Book
	nextID int
	mu     sync.RWMutex
}

// NewBookStore creates an empty store whose first id is 1
func NewBookStore() *BookStore {
	return &BookStore{
		books:  make([]domain.Book, 0),
		nextID: 1,
	}
}

// List returns a copy of all books in insertion order
func (s *BookStore) List(ctx context.Context) []domain.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Book, len(s.books))
	copy(out, s.books)
	return out
}

// Create stores a new book under the next id and returns it
func (s *BookStore) Create(ctx context.Context, nb domain.NewBook) domain.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := domain.Book{
		ID:     s.nextID,
		Title:  nb.Title,
		Author: nb.Author,
		Year:   nb.Year,
	}
	s.books = append(s.books, book)
	s.nextID++

	return book
}

// Get returns the book with the given id
func (s *BookStore) Get(ctx context.Context, id int) (domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Book{}, fmt.Errorf("get book %d: %w", id, domain.ErrBookNotFound)
	}

	return s.books[i], nil
}

// Update merges the supplied fields into the stored book
func (s *BookStore) Update(ctx context.Context, id int, update domain.BookUpdate) (domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Book{}, fmt.Errorf("update book %d: %w", id, domain.ErrBookNotFound)
	}

	update.Apply(&s.books[i])
	return s.books[i], nil
}

// Delete removes the book with the given id. Ids are not reused.
func (s *BookStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete book %d: %w", id, domain.ErrBookNotFound)
	}

	s.books = append(s.books[:i], s.books[i+1:]...)
	return nil
}

// Count returns the number of stored books
func (s *BookStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.books)
}

// Reset drops every book and restarts ids at 1
func (s *BookStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = make([]domain.Book, 0)
	s.nextID = 1
}

// indexOf does a linear scan; callers must hold the lock
func (s *BookStore) indexOf(id int) int {
	for i := range s.books {
		if s.books[i].ID == id {
			return i
		}
	}
	return -1
}
