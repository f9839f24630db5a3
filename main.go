package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/bookscollector/internal/cli"
	"github.com/mrlokans/bookscollector/internal/config"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type runner interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	command, args := "session", os.Args[1:]
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	switch command {
	case "-h", "--help", "help":
		printUsage()
		return
	case "version":
		fmt.Printf("bookscollector %s (%s)\n", Version, Commit)
		return
	}

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "session":
		run(cli.NewSessionCommand(cfg, os.Stdin, os.Stdout), args)

	case "import":
		run(cli.NewImportCommand(cfg, os.Stdout), args)

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func run(cmd runner, args []string) {
	if err := cmd.ParseFlags(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  session   Start an interactive session (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  import    Load a catalog file and print the result\n")
	fmt.Fprintf(os.Stderr, "  version   Print version information\n")
	fmt.Fprintf(os.Stderr, "\nConfiguration is read from COLLECTOR_* environment variables\n")
	fmt.Fprintf(os.Stderr, "and the optional file named by COLLECTOR_CONFIG_FILE.\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
