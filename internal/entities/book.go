package entities

// Book is a read-only view of a single catalog entry.
type Book struct {
	Title       string `json:"title" yaml:"title"`
	Genre       string `json:"genre,omitempty" yaml:"genre,omitempty"` // Empty when unassigned
	IsFavorite  bool   `json:"is_favorite" yaml:"is_favorite"`
	ForChildren bool   `json:"for_children" yaml:"for_children"`
}

// HasGenre reports whether a genre has been assigned to the book.
func (b Book) HasGenre() bool {
	return b.Genre != ""
}
