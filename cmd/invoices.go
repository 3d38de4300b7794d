package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/gncbook/gncbook"
	"github.com/google/subcommands"
)

// invoicesCmd holds the flags for the 'invoices' subcommand.
type invoicesCmd struct {
	owner   string
	variant string
	unpaid  bool
}

func (*invoicesCmd) Name() string     { return "invoices" }
func (*invoicesCmd) Synopsis() string { return "list invoices and their payment state" }
func (*invoicesCmd) Usage() string {
	return `gncq invoices [-owner <name>] [-variant direct|via-job] [-unpaid]

  Lists invoices, bills and vouchers with their reconciled payment state.
  With -owner, only the invoices of the single customer/vendor/employee
  matching that name are listed, for the chosen read variant. Direct and
  via-job invoices are always listed separately, never merged.
`
}

func (c *invoicesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.owner, "owner", "", "Name of the owner to list invoices for.")
	f.StringVar(&c.variant, "variant", "direct", "Read variant: direct or via-job.")
	f.BoolVar(&c.unpaid, "unpaid", false, "Only list invoices not fully paid.")
}

func (c *invoicesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var variant gncbook.ReadVariant
	switch c.variant {
	case "direct":
		variant = gncbook.Direct
	case "via-job", "job":
		variant = gncbook.ViaJob
	default:
		return fail("Error: unknown read variant %q, want direct or via-job", c.variant)
	}

	book, err := OpenBook()
	if err != nil {
		return fail("Error opening book %q: %v", *bookFile, err)
	}

	var invoices []*gncbook.GenericInvoice
	if c.owner == "" {
		invoices = book.Invoices()
	} else {
		ownerID, err := findOwnerID(book, c.owner)
		if err != nil {
			return fail("Error: %v", err)
		}
		if c.unpaid {
			invoices = book.UnpaidInvoicesFor(ownerID, variant)
		} else {
			invoices = book.InvoicesFor(ownerID, variant)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Invoices\n\n")
	fmt.Fprintf(&b, "| Number | Flavor | Posted | Total | Outstanding | Paid |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|---|\n")
	for _, inv := range invoices {
		r := book.Reconcile(inv)
		if c.unpaid && r.FullyPaid {
			continue
		}
		state := "open"
		if r.FullyPaid {
			state = "paid"
		}
		posted := "-"
		if inv.IsPosted() {
			posted = inv.DatePosted().String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			inv.Number(), inv.OwnerType(), posted, r.Total, r.Outstanding, state)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// findOwnerID resolves an owner name to its GUID, across customers, vendors
// and employees, requiring a unique match overall.
func findOwnerID(book *gncbook.Book, name string) (string, error) {
	var ids []string
	for _, c := range book.CustomersByName(name) {
		ids = append(ids, c.ID())
	}
	for _, v := range book.VendorsByName(name) {
		ids = append(ids, v.ID())
	}
	for _, e := range book.EmployeesByName(name) {
		ids = append(ids, e.ID())
	}
	switch len(ids) {
	case 0:
		return "", fmt.Errorf("no owner matching %q", name)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("%d owners matching %q, be more specific", len(ids), name)
	}
}
