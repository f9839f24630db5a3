// Package importers loads catalog documents into a collector.
//
// # Architecture
//
//	Catalog file → Converter → RawBook → Pipeline → BooksCollector
//
// A Converter decodes one document format into RawBook records. The
// Pipeline applies each record with the collector's own operations, so
// every catalog rule (title length, duplicates, registry membership,
// favorites only for catalog books) holds for imported data too. Records
// that break a rule are counted in the ImportResult and skipped.
//
// A decoded document is the one place where a title may arrive as
// something other than a string. RawBook.Title is therefore untyped and
// goes through BooksCollector.AddNewBookValue.
//
// # Document Format
//
//	books:
//	  - title: Книга 1
//	    genre: Фантастика
//	    favorite: true
//	  - title: Книга 2
//
// The same structure is accepted as JSON.
//
// Decoding is strict. A field other than title, genre and favorite, on
// any record or at the top level, rejects the whole document. Titles
// must be strings: an unquoted YAML title such as 1984 decodes as a
// number and is counted under ImportResult.InvalidTypes, so quote it
// ("1984").
//
// # Example Usage
//
//	c := collector.NewBooksCollector(collector.Options{})
//	result, err := importers.LoadCatalog("catalog.yaml", c, false)
package importers
