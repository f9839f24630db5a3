// Package collector implements the in-memory book catalog.
//
// A BooksCollector owns two containers: the catalog, mapping each title
// to its genre, and the favorites list. Business-rule violations such as
// duplicate titles, titles of the wrong length, unknown genres or unknown
// titles are ignored without error; callers re-query state to detect them.
// The only reported failure is a non-string title arriving through
// AddNewBookValue.
//
// # Usage
//
//	c := collector.NewBooksCollector(collector.Options{})
//	c.AddNewBook("Книга 1")
//	c.SetBookGenre("Книга 1", "Фантастика")
//	c.AddBookInFavorites("Книга 1")
//
// A BooksCollector is not safe for concurrent use.
package collector

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/mrlokans/bookscollector/internal/entities"
)

// DefaultMaxTitleLength is the longest accepted title, in characters.
const DefaultMaxTitleLength = 40

// ErrInvalidTitleType is returned by AddNewBookValue for non-string titles.
var ErrInvalidTitleType = errors.New("book title must be a string")

// Options configures a new collector. Zero fields fall back to defaults.
type Options struct {
	Genres         Genres
	MaxTitleLength int
}

// BooksCollector keeps the catalog and the favorites of a single session.
type BooksCollector struct {
	genres         Genres
	maxTitleLength int

	booksGenre map[string]string
	order      []string // catalog titles in insertion order
	favorites  []string
}

// NewBooksCollector creates an empty collector.
func NewBooksCollector(opts Options) *BooksCollector {
	genres := opts.Genres
	if len(genres.all) == 0 {
		genres = DefaultGenres()
	}
	maxLen := opts.MaxTitleLength
	if maxLen <= 0 {
		maxLen = DefaultMaxTitleLength
	}

	return &BooksCollector{
		genres:         genres,
		maxTitleLength: maxLen,
		booksGenre:     make(map[string]string),
	}
}

// Genres returns the registry this collector validates against.
func (c *BooksCollector) Genres() Genres {
	return c.genres
}

// MaxTitleLength returns the longest title the collector admits.
func (c *BooksCollector) MaxTitleLength() int {
	return c.maxTitleLength
}

// Len returns the number of books in the catalog.
func (c *BooksCollector) Len() int {
	return len(c.order)
}

// AddNewBook adds a title with no genre. Titles that are empty, longer
// than the limit or already present are ignored.
func (c *BooksCollector) AddNewBook(title string) {
	if !c.validTitle(title) {
		return
	}
	if _, exists := c.booksGenre[title]; exists {
		return
	}
	c.booksGenre[title] = ""
	c.order = append(c.order, title)
}

// AddNewBookValue is AddNewBook for values whose type is only known at
// runtime, such as fields of a decoded document. Non-string values are
// rejected with ErrInvalidTitleType.
func (c *BooksCollector) AddNewBookValue(title any) error {
	s, ok := title.(string)
	if !ok {
		return fmt.Errorf("%w, got %T", ErrInvalidTitleType, title)
	}
	c.AddNewBook(s)
	return nil
}

func (c *BooksCollector) validTitle(title string) bool {
	n := utf8.RuneCountInString(title)
	return n > 0 && n <= c.maxTitleLength
}

// SetBookGenre assigns a genre to an existing book. Unknown titles and
// genres outside the registry leave the catalog unchanged.
func (c *BooksCollector) SetBookGenre(title, genre string) {
	if _, exists := c.booksGenre[title]; !exists {
		return
	}
	if !c.genres.Contains(genre) {
		return
	}
	c.booksGenre[title] = genre
}

// GetBookGenre returns the genre of a book. The second result is false
// when the title is not in the catalog.
func (c *BooksCollector) GetBookGenre(title string) (string, bool) {
	genre, ok := c.booksGenre[title]
	return genre, ok
}

// GetBooksWithSpecificGenre lists the titles whose genre equals genre.
func (c *BooksCollector) GetBooksWithSpecificGenre(genre string) []string {
	books := make([]string, 0)
	for _, title := range c.order {
		if c.booksGenre[title] == genre {
			books = append(books, title)
		}
	}
	return books
}

// GetBooksGenre returns a copy of the whole catalog.
func (c *BooksCollector) GetBooksGenre() map[string]string {
	books := make(map[string]string, len(c.booksGenre))
	for title, genre := range c.booksGenre {
		books[title] = genre
	}
	return books
}

// GetBooksForChildren lists the titles whose genre is not age-restricted.
// Books without a genre are included.
func (c *BooksCollector) GetBooksForChildren() []string {
	books := make([]string, 0)
	for _, title := range c.order {
		if c.forChildren(c.booksGenre[title]) {
			books = append(books, title)
		}
	}
	return books
}

func (c *BooksCollector) forChildren(genre string) bool {
	return !c.genres.IsAgeRestricted(genre)
}

// AddBookInFavorites marks a catalog book as favorite. Repeated calls
// and titles outside the catalog are ignored.
func (c *BooksCollector) AddBookInFavorites(title string) {
	if _, exists := c.booksGenre[title]; !exists {
		return
	}
	if c.IsFavorite(title) {
		return
	}
	c.favorites = append(c.favorites, title)
}

// DeleteBookFromFavorites unmarks a favorite book, if it is one.
func (c *BooksCollector) DeleteBookFromFavorites(title string) {
	i := slices.Index(c.favorites, title)
	if i < 0 {
		return
	}
	c.favorites = slices.Delete(c.favorites, i, i+1)
}

// GetListOfFavoritesBooks returns the favorites in the order they were added.
func (c *BooksCollector) GetListOfFavoritesBooks() []string {
	favorites := make([]string, len(c.favorites))
	copy(favorites, c.favorites)
	return favorites
}

// IsFavorite reports whether title is in the favorites list.
func (c *BooksCollector) IsFavorite(title string) bool {
	return slices.Contains(c.favorites, title)
}

// Books returns every catalog entry in insertion order.
func (c *BooksCollector) Books() []entities.Book {
	books := make([]entities.Book, 0, len(c.order))
	for _, title := range c.order {
		genre := c.booksGenre[title]
		books = append(books, entities.Book{
			Title:       title,
			Genre:       genre,
			IsFavorite:  c.IsFavorite(title),
			ForChildren: c.forChildren(genre),
		})
	}
	return books
}
