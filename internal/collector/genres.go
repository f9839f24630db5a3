package collector

import (
	"errors"
	"fmt"
	"slices"
)

// Errors returned by NewGenres.
var (
	ErrEmptyRegistry             = errors.New("genre registry is empty")
	ErrInvalidGenre              = errors.New("genre name must not be empty")
	ErrDuplicateGenre            = errors.New("duplicate genre")
	ErrUnknownAgeRestrictedGenre = errors.New("age-restricted genre is not in the registry")
)

// Default genre registry and its age-restricted subset.
var (
	defaultGenres              = []string{"Фантастика", "Ужасы", "Детективы", "Мультфильмы", "Комедии"}
	defaultAgeRestrictedGenres = []string{"Ужасы", "Детективы"}
)

// Genres is the closed, ordered set of genres a collector accepts,
// together with the subset hidden from the children's view.
// A Genres value is immutable; accessors return copies.
type Genres struct {
	all           []string
	ageRestricted []string
}

// NewGenres validates and builds a genre registry.
func NewGenres(all, ageRestricted []string) (Genres, error) {
	if len(all) == 0 {
		return Genres{}, ErrEmptyRegistry
	}

	seen := make(map[string]struct{}, len(all))
	for _, name := range all {
		if name == "" {
			return Genres{}, ErrInvalidGenre
		}
		if _, ok := seen[name]; ok {
			return Genres{}, fmt.Errorf("%w: %s", ErrDuplicateGenre, name)
		}
		seen[name] = struct{}{}
	}

	restricted := make([]string, 0, len(ageRestricted))
	for _, name := range ageRestricted {
		if _, ok := seen[name]; !ok {
			return Genres{}, fmt.Errorf("%w: %s", ErrUnknownAgeRestrictedGenre, name)
		}
		if slices.Contains(restricted, name) {
			continue
		}
		restricted = append(restricted, name)
	}

	return Genres{
		all:           slices.Clone(all),
		ageRestricted: restricted,
	}, nil
}

// DefaultGenres returns the built-in registry.
func DefaultGenres() Genres {
	return Genres{
		all:           slices.Clone(defaultGenres),
		ageRestricted: slices.Clone(defaultAgeRestrictedGenres),
	}
}

// All returns the registry in its configured order.
func (g Genres) All() []string {
	return slices.Clone(g.all)
}

// AgeRestricted returns the genres excluded from the children's view.
func (g Genres) AgeRestricted() []string {
	return slices.Clone(g.ageRestricted)
}

// Contains reports whether genre is a registry member.
func (g Genres) Contains(genre string) bool {
	return slices.Contains(g.all, genre)
}

// IsAgeRestricted reports whether books of the genre are hidden from children.
func (g Genres) IsAgeRestricted(genre string) bool {
	return slices.Contains(g.ageRestricted, genre)
}
