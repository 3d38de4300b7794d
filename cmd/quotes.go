package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gncbook/gncbook"
	"github.com/google/subcommands"
)

// quotesCmd holds the flags for the 'quotes' subcommand.
type quotesCmd struct {
	commodity string
	currency  string
	rows      string
	dateKey   string
	valueKey  string
}

func (*quotesCmd) Name() string     { return "quotes" }
func (*quotesCmd) Synopsis() string { return "import price quotes from a JSON file" }
func (*quotesCmd) Usage() string {
	return `gncq quotes -c <namespace:code> [-cur <currency>] [-rows <jsonpath>] <file.json>

  Imports price quotes for one commodity from an arbitrary JSON document and
  resolves its latest price with the imported quotes taken into account. The
  book file itself is never modified.

Usage Examples:
$ gncq quotes -c NYSE:VTI -rows '$.prices[*]' -date date -value close prices.json
`
}

func (c *quotesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.commodity, "c", "", "Commodity the quotes are for (namespace:code).")
	f.StringVar(&c.currency, "cur", "", "Currency the quotes are denominated in (defaults to the book's).")
	f.StringVar(&c.rows, "rows", "$[*]", "jsonpath expression selecting the quote rows.")
	f.StringVar(&c.dateKey, "date", "date", "Row key holding the quote date.")
	f.StringVar(&c.valueKey, "value", "value", "Row key holding the quote value.")
}

func (c *quotesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail("Error: want exactly one JSON file\n%s", c.Usage())
	}
	id, err := gncbook.ParseCmdtyID(c.commodity)
	if err != nil {
		return fail("Error: %v", err)
	}

	book, err := OpenBook()
	if err != nil {
		return fail("Error opening book %q: %v", *bookFile, err)
	}

	fd, err := os.Open(f.Arg(0))
	if err != nil {
		return fail("Error opening quotes file: %v", err)
	}
	defer fd.Close()

	n, err := book.ImportQuotes(fd, gncbook.QuoteSpec{
		Commodity: id,
		Currency:  c.currency,
		Rows:      c.rows,
		DateKey:   c.dateKey,
		ValueKey:  c.valueKey,
	})
	if err != nil {
		return fail("Error importing quotes: %v", err)
	}
	fmt.Printf("imported %d quotes for %s\n", n, id)

	if price, ok := book.LatestPrice(id); ok {
		fmt.Printf("latest price: %s\n", price)
	}
	return subcommands.ExitSuccess
}
