// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

/*
Package catalog holds the immutable in-memory book catalog.

A Catalog is built once at startup from a JSON snapshot and never changes
for the lifetime of the process. Positions are stable indices into the
catalog order and are what the genre index and the ranking tie-break use.

Thread Safety:
  - A Catalog is read-only after New returns and safe for concurrent use.
  - Book values returned by At and Books are copies; their slice fields
    share backing arrays with the catalog and must not be mutated.
*/
package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by New.
var (
	ErrEmptyISBN     = errors.New("catalog: book has empty isbn")
	ErrDuplicateISBN = errors.New("catalog: duplicate isbn")
)

// Catalog is an ordered, immutable collection of books with O(1) ISBN lookup.
type Catalog struct {
	books []Book
	byID  map[string]int
}

// New builds a Catalog from books. The input slice is copied and every
// book is normalized. Duplicate or empty ISBNs are rejected.
func New(books []Book) (*Catalog, error) {
	c := &Catalog{
		books: make([]Book, 0, len(books)),
		byID:  make(map[string]int, len(books)),
	}
	for i := range books {
		b := books[i]
		normalizeBook(&b)
		if b.ISBN == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrEmptyISBN)
		}
		if prev, dup := c.byID[b.ISBN]; dup {
			return nil, fmt.Errorf("record %d isbn %q (first at %d): %w", i, b.ISBN, prev, ErrDuplicateISBN)
		}
		c.byID[b.ISBN] = len(c.books)
		c.books = append(c.books, b)
	}
	return c, nil
}

// Empty returns a catalog with no books.
func Empty() *Catalog {
	return &Catalog{byID: map[string]int{}}
}

// Len returns the number of books.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.books)
}

// IsEmpty reports whether the catalog holds no books.
func (c *Catalog) IsEmpty() bool {
	return c.Len() == 0
}

// At returns the book at position pos. It panics if pos is out of range.
func (c *Catalog) At(pos int) Book {
	return c.books[pos]
}

// Ref returns a pointer to the book at pos for read-only use in hot loops.
func (c *Catalog) Ref(pos int) *Book {
	return &c.books[pos]
}

// Books returns a copy of the catalog in order.
func (c *Catalog) Books() []Book {
	if c == nil {
		return []Book{}
	}
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// Lookup returns the position of the book with the given ISBN.
func (c *Catalog) Lookup(isbn string) (int, bool) {
	if c == nil {
		return 0, false
	}
	pos, ok := c.byID[isbn]
	return pos, ok
}
