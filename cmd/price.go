package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/gncbook/gncbook"
	"github.com/gncbook/gncbook/date"
	"github.com/google/subcommands"
)

// priceCmd holds the flags for the 'price' subcommand.
type priceCmd struct {
	asOf string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "resolve the latest price of a commodity or currency" }
func (*priceCmd) Usage() string {
	return `gncq price <namespace:code> [-d <date>]

  Resolves the latest quoted price of a commodity or currency into the
  book's default currency, converting through intermediate quotes when the
  quote currency is not the default one.

Usage Examples:
$ gncq price NASDAQ:AAPL
$ gncq price CURRENCY:USD -d 2024-12-31
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "d", "", "Only use quotes on or before this date.")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail("Error: want exactly one commodity id\n%s", c.Usage())
	}
	id, err := gncbook.ParseCmdtyID(f.Arg(0))
	if err != nil {
		return fail("Error: %v", err)
	}

	book, err := OpenBook()
	if err != nil {
		return fail("Error opening book %q: %v", *bookFile, err)
	}

	var price gncbook.Money
	var ok bool
	if c.asOf == "" {
		price, ok = book.LatestPrice(id)
	} else {
		on, err := date.Parse(c.asOf)
		if err != nil {
			return fail("Error parsing date: %v", err)
		}
		price, ok = book.PriceAsOf(id, on)
	}
	if !ok {
		return fail("No price found for %s", id)
	}
	fmt.Println(price)
	return subcommands.ExitSuccess
}
