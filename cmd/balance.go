package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/gncbook/gncbook/date"
	"github.com/google/subcommands"
)

// balanceCmd holds the flags for the 'balance' subcommand.
type balanceCmd struct {
	date      string
	currency  string
	recursive bool
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the balance of one account" }
func (*balanceCmd) Usage() string {
	return `gncq balance <account full name> [-d <date>] [-cur <currency>] [-r]

  Displays the balance of an account as of a date. With -cur the balance is
  converted into that currency through the book's price database.

Usage Examples:
$ gncq balance Assets:Bank:Checking
$ gncq balance -cur EUR -d 2024-12-31 Assets:Brokerage
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date for the balance.")
	f.StringVar(&c.currency, "cur", "", "Convert the balance into this currency.")
	f.BoolVar(&c.recursive, "r", false, "Include all children accounts.")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail("Error: want exactly one account full name\n%s", c.Usage())
	}
	on, err := date.Parse(c.date)
	if err != nil {
		return fail("Error parsing date: %v", err)
	}

	book, err := OpenBook()
	if err != nil {
		return fail("Error opening book %q: %v", *bookFile, err)
	}

	account := book.AccountByFullName(f.Arg(0))
	if account == nil {
		return fail("Error: account %q not found", f.Arg(0))
	}

	if c.currency == "" {
		if c.recursive {
			fmt.Printf("%s %s\n", account.BalanceRecursive(on), account.Commodity().Code)
		} else {
			fmt.Printf("%s %s\n", account.Balance(on), account.Commodity().Code)
		}
		return subcommands.ExitSuccess
	}

	balance, err := account.BalanceIn(on, c.currency)
	if c.recursive {
		balance, err = account.BalanceRecursiveIn(on, c.currency)
	}
	if err != nil {
		return fail("Error converting balance: %v", err)
	}
	fmt.Println(balance)
	return subcommands.ExitSuccess
}
