package importers

import (
	"errors"
	"log"

	"github.com/mrlokans/bookscollector/internal/collector"
)

// RawBook is a catalog record from any import source. Title is kept
// untyped because the document may carry a list, a number or anything
// else in that field.
type RawBook struct {
	Title    any    `json:"title" yaml:"title"`
	Genre    string `json:"genre,omitempty" yaml:"genre,omitempty"`
	Favorite bool   `json:"favorite,omitempty" yaml:"favorite,omitempty"`
}

// Converter decodes source data into raw catalog records.
//
// Implementations:
//   - JSONConverter (catalog.go) - JSON catalog documents
//   - YAMLConverter (catalog.go) - YAML catalog documents
type Converter interface {
	Convert() ([]RawBook, error)
}

// ImportResult summarizes a single import run.
type ImportResult struct {
	RecordsProcessed int
	BooksAdded       int
	Duplicates       int
	InvalidTitles    int // Empty or too long
	InvalidTypes     int // Title is not a string
	UnknownGenres    int
	Favorites        int
}

// Failed returns the number of records that did not produce a catalog entry.
func (r ImportResult) Failed() int {
	return r.InvalidTitles + r.InvalidTypes
}

// Pipeline applies converted records to a collector:
// decode → add book → set genre → mark favorite.
type Pipeline struct {
	collector *collector.BooksCollector
	verbose   bool
}

// NewPipeline creates a pipeline that fills the given collector.
func NewPipeline(c *collector.BooksCollector, verbose bool) *Pipeline {
	return &Pipeline{collector: c, verbose: verbose}
}

// Import decodes the converter's data and applies every record.
// Records that break catalog rules are counted and skipped; only a
// decoding failure aborts the import.
func (p *Pipeline) Import(converter Converter) (ImportResult, error) {
	records, err := converter.Convert()
	if err != nil {
		return ImportResult{}, err
	}

	var result ImportResult
	for i, record := range records {
		result.RecordsProcessed++
		p.apply(i, record, &result)
	}

	return result, nil
}

func (p *Pipeline) apply(index int, record RawBook, result *ImportResult) {
	c := p.collector

	title, _ := record.Title.(string)
	_, existed := c.GetBookGenre(title)

	if err := c.AddNewBookValue(record.Title); err != nil {
		if errors.Is(err, collector.ErrInvalidTitleType) {
			result.InvalidTypes++
		}
		p.logf("record %d skipped: %v", index, err)
		return
	}

	switch _, exists := c.GetBookGenre(title); {
	case !exists:
		result.InvalidTitles++
		p.logf("record %d skipped: title %q must be 1-%d characters", index, title, c.MaxTitleLength())
		return
	case existed:
		result.Duplicates++
	default:
		result.BooksAdded++
	}

	if record.Genre != "" {
		if c.Genres().Contains(record.Genre) {
			c.SetBookGenre(title, record.Genre)
		} else {
			result.UnknownGenres++
			p.logf("record %d: unknown genre %q for %q", index, record.Genre, title)
		}
	}

	if record.Favorite && !c.IsFavorite(title) {
		c.AddBookInFavorites(title)
		result.Favorites++
	}
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.verbose {
		log.Printf(format, args...)
	}
}
