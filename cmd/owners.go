package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/gncbook/gncbook"
	"github.com/google/subcommands"
)

// ownersCmd holds the flags for the 'owners' subcommand.
type ownersCmd struct {
	kind string
}

func (*ownersCmd) Name() string     { return "owners" }
func (*ownersCmd) Synopsis() string { return "display per-owner financial rollups" }
func (*ownersCmd) Usage() string {
	return `gncq owners [-k customer|vendor|employee]

  Displays, per owner, the outstanding value and the income/expense
  generated, computed separately for direct invoices and for invoices owned
  via the owner's jobs.
`
}

func (c *ownersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "customer", "Owner kind to summarize: customer, vendor or employee.")
}

func (c *ownersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := OpenBook()
	if err != nil {
		return fail("Error opening book %q: %v", *bookFile, err)
	}

	type row struct {
		name string
		id   string
	}
	var rows []row
	switch c.kind {
	case "customer":
		for _, cu := range book.Customers() {
			rows = append(rows, row{cu.Name(), cu.ID()})
		}
	case "vendor":
		for _, v := range book.Vendors() {
			rows = append(rows, row{v.Name(), v.ID()})
		}
	case "employee":
		for _, e := range book.Employees() {
			rows = append(rows, row{e.Username(), e.ID()})
		}
	default:
		return fail("Error: unknown owner kind %q", c.kind)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Owners (%s)\n\n", c.kind)
	fmt.Fprintf(&b, "| Name | Outstanding (direct) | Outstanding (via job) | Generated (direct) | Generated (via job) |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			r.name,
			book.OutstandingValue(r.id, gncbook.Direct),
			book.OutstandingValue(r.id, gncbook.ViaJob),
			book.IncomeExpense(r.id, gncbook.Direct),
			book.IncomeExpense(r.id, gncbook.ViaJob),
		)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
