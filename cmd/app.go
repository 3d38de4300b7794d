// Package cmd implements the CLI application to query a book file.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/gncbook/gncbook"
	"github.com/gncbook/gncbook/gnc"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&accountsCmd{}, "book")
	c.Register(&balanceCmd{}, "book")
	c.Register(&checkCmd{}, "book")

	c.Register(&invoicesCmd{}, "business")
	c.Register(&ownersCmd{}, "business")

	c.Register(&priceCmd{}, "prices")
	c.Register(&quotesCmd{}, "prices")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var bookFile = flag.String("f", "book.gnucash", "Path to the book file (GnuCash XML, gzip'd or plain)")
var Verbose = flag.Bool("v", false, "Log skipped records and other warnings")

// OpenBook decodes and indexes the app's book file.
func OpenBook() (*gncbook.Book, error) {
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
	f, err := gnc.DecodeFile(*bookFile)
	if err != nil {
		return nil, err
	}
	return gncbook.NewBook(f)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails (e.g. in a pipe with no TERM).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail reports an error on stderr and returns the failure status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
