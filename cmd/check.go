package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "scan the book for suspect transactions" }
func (*checkCmd) Usage() string {
	return `gncq check

  Scans every transaction and reports those whose split values do not sum to
  zero in the transaction currency, and those holding fewer than two splits.
  Exits with a failure status when any suspect transaction is found.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := OpenBook()
	if err != nil {
		return fail("Error opening book %q: %v", *bookFile, err)
	}

	bad := 0
	for _, t := range book.Transactions() {
		if n := len(t.Splits()); n < 2 {
			bad++
			fmt.Printf("transaction %s (%s) %q has only %d split(s)\n", t.ID(), t.DatePosted(), t.Description(), n)
			continue
		}
		if t.IsBalanced() {
			continue
		}
		bad++
		fmt.Printf("unbalanced transaction %s (%s) %q\n", t.ID(), t.DatePosted(), t.Description())
	}
	if bad > 0 {
		return fail("%d suspect transaction(s) out of %d", bad, len(book.Transactions()))
	}
	fmt.Printf("all %d transactions balanced\n", len(book.Transactions()))
	return subcommands.ExitSuccess
}
