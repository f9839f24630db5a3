package cli

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mrlokans/bookscollector/internal/config"
	"github.com/mrlokans/bookscollector/internal/importers"
)

// ImportCommand loads a catalog file and reports what was accepted.
type ImportCommand struct {
	FilePath string
	Verbose  bool

	cfg *config.Config
	out io.Writer
}

// NewImportCommand creates a new catalog import command.
func NewImportCommand(cfg *config.Config, out io.Writer) *ImportCommand {
	return &ImportCommand{cfg: cfg, out: out}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to a catalog file, .json or .yaml (required)")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Log every skipped record")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Load a catalog file, check it against the genre registry and print the result.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import -file ./catalog.yaml\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import -file ./catalog.json -verbose\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		fs.Usage()
		return fmt.Errorf("file is required")
	}

	return nil
}

func (cmd *ImportCommand) Run() error {
	if cmd.Verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	c, err := newCollector(cmd.cfg, cmd.Verbose)
	if err != nil {
		return err
	}

	result, err := importers.LoadCatalog(cmd.FilePath, c, cmd.Verbose)
	if err != nil {
		return fmt.Errorf("failed to import catalog: %w", err)
	}

	fmt.Fprintf(cmd.out, "=== Import Results ===\n")
	fmt.Fprintf(cmd.out, "Records processed: %d\n", result.RecordsProcessed)
	fmt.Fprintf(cmd.out, "Books added: %d\n", result.BooksAdded)
	fmt.Fprintf(cmd.out, "Duplicates: %d\n", result.Duplicates)
	fmt.Fprintf(cmd.out, "Invalid titles: %d\n", result.InvalidTitles)
	fmt.Fprintf(cmd.out, "Invalid title types: %d\n", result.InvalidTypes)
	fmt.Fprintf(cmd.out, "Unknown genres: %d\n", result.UnknownGenres)
	fmt.Fprintf(cmd.out, "Favorites: %d\n", result.Favorites)

	if c.Len() > 0 {
		shell := NewShell(c, cmd.out)
		fmt.Fprintf(cmd.out, "\n=== Books ===\n")
		shell.all(nil)
		fmt.Fprintf(cmd.out, "\n=== For Children ===\n")
		shell.children(nil)
	}

	if failed := result.Failed(); failed > 0 {
		fmt.Fprintf(cmd.out, "\n%d records were skipped (use -verbose for details)\n", failed)
	}

	return nil
}
