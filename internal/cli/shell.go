package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mrlokans/bookscollector/internal/collector"
)

// Errors returned by Shell.Execute for lines it cannot run.
var (
	ErrUnknownCommand    = errors.New("unknown command")
	ErrWrongArgCount     = errors.New("wrong number of arguments")
	ErrUnterminatedQuote = errors.New("unterminated quote")
)

type shellCommand struct {
	name  string
	args  []string
	usage string
	run   func(s *Shell, args []string)
}

func shellCommands() []shellCommand {
	return []shellCommand{
		{"add", []string{"title"}, "Add a book without a genre", (*Shell).add},
		{"genre", []string{"title", "genre"}, "Assign a genre to a book", (*Shell).setGenre},
		{"get", []string{"title"}, "Show the genre of a book", (*Shell).getGenre},
		{"by-genre", []string{"genre"}, "List books of a genre", (*Shell).byGenre},
		{"all", nil, "List every book", (*Shell).all},
		{"children", nil, "List books suitable for children", (*Shell).children},
		{"fav", []string{"title"}, "Add a book to favorites", (*Shell).addFavorite},
		{"unfav", []string{"title"}, "Remove a book from favorites", (*Shell).deleteFavorite},
		{"favorites", nil, "List favorite books", (*Shell).favorites},
		{"genres", nil, "List available genres", (*Shell).genres},
		{"help", nil, "Show this help", (*Shell).help},
	}
}

// Shell executes text commands against a single collector.
type Shell struct {
	collector *collector.BooksCollector
	out       io.Writer
	commands  []shellCommand
}

// NewShell creates a shell that runs commands against c and writes to out.
func NewShell(c *collector.BooksCollector, out io.Writer) *Shell {
	return &Shell{collector: c, out: out, commands: shellCommands()}
}

// Execute runs one command line. It reports whether the session should
// end. Blank lines and lines starting with # are ignored.
func (s *Shell) Execute(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}

	fields, err := splitArgs(line)
	if err != nil {
		return false, err
	}

	name, args := fields[0], fields[1:]
	if name == "quit" || name == "exit" {
		return true, nil
	}

	for _, cmd := range s.commands {
		if cmd.name != name {
			continue
		}
		if len(args) != len(cmd.args) {
			return false, fmt.Errorf("%w: %s expects %d, got %d", ErrWrongArgCount, name, len(cmd.args), len(args))
		}
		cmd.run(s, args)
		return false, nil
	}

	return false, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}

func (s *Shell) add(args []string) {
	title := args[0]
	before := s.collector.Len()
	s.collector.AddNewBook(title)

	switch {
	case s.collector.Len() > before:
		s.printf("Added %q\n", title)
	case s.has(title):
		s.printf("%q is already in the catalog\n", title)
	default:
		s.printf("Title must be 1-%d characters\n", s.collector.MaxTitleLength())
	}
}

func (s *Shell) setGenre(args []string) {
	title, genre := args[0], args[1]
	s.collector.SetBookGenre(title, genre)

	switch _, ok := s.collector.GetBookGenre(title); {
	case !ok:
		s.printf("%q is not in the catalog\n", title)
	case !s.collector.Genres().Contains(genre):
		s.printf("Unknown genre %q, see 'genres'\n", genre)
	default:
		s.printf("%q is now %s\n", title, genre)
	}
}

func (s *Shell) getGenre(args []string) {
	title := args[0]
	genre, ok := s.collector.GetBookGenre(title)
	switch {
	case !ok:
		s.printf("%q is not in the catalog\n", title)
	case genre == "":
		s.printf("%q has no genre\n", title)
	default:
		s.printf("%s\n", genre)
	}
}

func (s *Shell) byGenre(args []string) {
	s.printList(s.collector.GetBooksWithSpecificGenre(args[0]))
}

func (s *Shell) all(_ []string) {
	books := s.collector.Books()
	if len(books) == 0 {
		s.printf("(empty)\n")
		return
	}
	for i, book := range books {
		genre := book.Genre
		if !book.HasGenre() {
			genre = "no genre"
		}
		marker := ""
		if book.IsFavorite {
			marker = " ★"
		}
		s.printf("%d. %s [%s]%s\n", i+1, book.Title, genre, marker)
	}
}

func (s *Shell) children(_ []string) {
	s.printList(s.collector.GetBooksForChildren())
}

func (s *Shell) addFavorite(args []string) {
	title := args[0]
	if !s.has(title) {
		s.printf("%q is not in the catalog\n", title)
		return
	}
	s.collector.AddBookInFavorites(title)
	s.printf("%q is a favorite\n", title)
}

func (s *Shell) deleteFavorite(args []string) {
	title := args[0]
	if !s.collector.IsFavorite(title) {
		s.printf("%q is not a favorite\n", title)
		return
	}
	s.collector.DeleteBookFromFavorites(title)
	s.printf("Removed %q from favorites\n", title)
}

func (s *Shell) favorites(_ []string) {
	s.printList(s.collector.GetListOfFavoritesBooks())
}

func (s *Shell) genres(_ []string) {
	g := s.collector.Genres()
	for _, genre := range g.All() {
		if g.IsAgeRestricted(genre) {
			s.printf("%s (age-restricted)\n", genre)
			continue
		}
		s.printf("%s\n", genre)
	}
}

func (s *Shell) help(_ []string) {
	s.printf("Commands:\n")
	for _, cmd := range s.commands {
		usage := cmd.name
		for _, arg := range cmd.args {
			usage += " <" + arg + ">"
		}
		s.printf("  %-22s %s\n", usage, cmd.usage)
	}
	s.printf("  %-22s %s\n", "quit", "End the session")
	s.printf("\nQuote arguments that contain spaces: add \"Книга 1\"\n")
}

func (s *Shell) has(title string) bool {
	_, ok := s.collector.GetBookGenre(title)
	return ok
}

func (s *Shell) printList(items []string) {
	if len(items) == 0 {
		s.printf("(empty)\n")
		return
	}
	for i, item := range items {
		s.printf("%d. %s\n", i+1, item)
	}
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// splitArgs splits a command line on whitespace, keeping double-quoted
// sections together. A backslash escapes the next character; a trailing
// backslash is kept as is.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		inQuote bool
		escaped bool
		started bool
	)

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
			started = true
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && (r == ' ' || r == '\t'):
			if started {
				args = append(args, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}

	if inQuote {
		return nil, ErrUnterminatedQuote
	}
	if escaped {
		current.WriteRune('\\')
	}
	if started {
		args = append(args, current.String())
	}
	return args, nil
}
