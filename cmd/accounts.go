package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/gncbook/gncbook"
	"github.com/gncbook/gncbook/date"
	"github.com/google/subcommands"
)

// accountsCmd holds the flags for the 'accounts' subcommand.
type accountsCmd struct {
	date    string
	typ     string
	balance bool
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "display the account tree" }
func (*accountsCmd) Usage() string {
	return `gncq accounts [-d <date>] [-t <type>] [-b]

  Displays the chart of accounts as a tree, optionally with balances as of a
  date, optionally restricted to one account type.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date for balances.")
	f.StringVar(&c.typ, "t", "", "Only show accounts of this type (ASSET, INCOME, ...).")
	f.BoolVar(&c.balance, "b", false, "Show the balance of each account.")
}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		return fail("Error parsing date: %v", err)
	}
	var only gncbook.AccountType
	filtered := c.typ != ""
	if filtered {
		if only, err = gncbook.ParseAccountType(c.typ); err != nil {
			return fail("Error: %v", err)
		}
	}

	book, err := OpenBook()
	if err != nil {
		return fail("Error opening book %q: %v", *bookFile, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Accounts\n\n")
	for _, a := range book.Accounts() {
		if a.IsRoot() {
			continue
		}
		if filtered && a.Type() != only {
			continue
		}
		indent := strings.Repeat("  ", a.Depth()-1)
		if c.balance {
			fmt.Fprintf(&b, "%s- %s (%s): %s %s\n", indent, a.Name(), a.Type(), a.Balance(on), a.Commodity().Code)
		} else {
			fmt.Fprintf(&b, "%s- %s (%s)\n", indent, a.Name(), a.Type())
		}
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
