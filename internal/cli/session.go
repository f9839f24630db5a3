package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mrlokans/bookscollector/internal/collector"
	"github.com/mrlokans/bookscollector/internal/config"
	"github.com/mrlokans/bookscollector/internal/importers"
)

// SessionCommand runs an interactive command loop over one collector.
type SessionCommand struct {
	CatalogPath string
	Verbose     bool

	cfg *config.Config
	in  io.Reader
	out io.Writer
}

// NewSessionCommand creates a session reading commands from in and writing to out.
func NewSessionCommand(cfg *config.Config, in io.Reader, out io.Writer) *SessionCommand {
	return &SessionCommand{cfg: cfg, in: in, out: out}
}

func (cmd *SessionCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("session", flag.ContinueOnError)

	fs.StringVar(&cmd.CatalogPath, "catalog", "", "Catalog file (.json, .yaml) to load before the session starts")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s session [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Start an interactive session. Commands are read from standard input, one per line.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s session\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s session -catalog ./catalog.yaml\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  echo 'add \"Книга 1\"' | %s session\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *SessionCommand) Run() error {
	if cmd.Verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	c, err := newCollector(cmd.cfg, cmd.Verbose)
	if err != nil {
		return err
	}

	if cmd.CatalogPath != "" {
		result, err := importers.LoadCatalog(cmd.CatalogPath, c, cmd.Verbose)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		fmt.Fprintf(cmd.out, "Loaded %d books from %s\n", result.BooksAdded, cmd.CatalogPath)
	}

	shell := NewShell(c, cmd.out)
	scanner := bufio.NewScanner(cmd.in)
	for {
		fmt.Fprint(cmd.out, cmd.cfg.Prompt)
		if !scanner.Scan() {
			break
		}

		quit, err := shell.Execute(scanner.Text())
		if err != nil {
			fmt.Fprintf(cmd.out, "Error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
	fmt.Fprintln(cmd.out)

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func newCollector(cfg *config.Config, verbose bool) (*collector.BooksCollector, error) {
	opts, err := cfg.CollectorOptions()
	if err != nil {
		return nil, err
	}
	if verbose {
		log.Printf("Genres: %v (age-restricted: %v), max title length %d",
			opts.Genres.All(), opts.Genres.AgeRestricted(), opts.MaxTitleLength)
	}
	return collector.NewBooksCollector(opts), nil
}
