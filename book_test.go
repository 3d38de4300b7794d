package gncbook

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/gncbook/gncbook/gnc"
	"github.com/shopspring/decimal"
)

func TestNewBookIndexes(t *testing.T) {
	b := testBook(t)

	if got := b.DefaultCurrency(); got != "EUR" {
		t.Errorf("DefaultCurrency() = %q, want EUR", got)
	}
	if b.RootAccount() == nil || b.RootAccount().Name() != "Root Account" {
		t.Fatalf("RootAccount() = %v, want the fixture root", b.RootAccount())
	}
	if got := len(b.Accounts()); got != 11 {
		t.Errorf("len(Accounts()) = %d, want 11", got)
	}
	if got := len(b.Transactions()); got != 7 {
		t.Errorf("len(Transactions()) = %d, want 7", got)
	}
	if got := len(b.Invoices()); got != 4 {
		t.Errorf("len(Invoices()) = %d, want 4", got)
	}
	if got := len(b.Jobs()); got != 2 {
		t.Errorf("len(Jobs()) = %d, want 2", got)
	}
	if got := len(b.Customers()); got != 2 {
		t.Errorf("len(Customers()) = %d, want 2", got)
	}
	if got := len(b.Vendors()); got != 1 {
		t.Errorf("len(Vendors()) = %d, want 1", got)
	}
	if got := len(b.Employees()); got != 1 {
		t.Errorf("len(Employees()) = %d, want 1", got)
	}
	if got := len(b.Commodities()); got != 3 {
		t.Errorf("len(Commodities()) = %d, want 3", got)
	}
	if got := len(b.Prices()); got != 3 {
		t.Errorf("len(Prices()) = %d, want 3", got)
	}

	a := b.AccountByFullName("Assets:Bank")
	if a == nil || a.ID() != "bank" {
		t.Errorf("AccountByFullName(Assets:Bank) = %v, want the bank account", a)
	}
	// posting split plus one payment split share lot-1
	if got := len(b.SplitsByLot("lot-1")); got != 2 {
		t.Errorf("len(SplitsByLot(lot-1)) = %d, want 2", got)
	}
	if inv := b.InvoiceByID("inv-1"); inv == nil || inv.Number() != "000010" {
		t.Errorf("InvoiceByID(inv-1) = %v, want invoice 000010", inv)
	}
}

// Individually malformed records are skipped without failing the build, and
// without dragging valid records down with them.
func TestNewBookSkipsMalformedRecords(t *testing.T) {
	f := testFile()
	f.Accounts = append(f.Accounts,
		gnc.Account{ID: "weird", Name: "Weird", Type: "FANCY", Commodity: gnc.Cmdty{Space: "CURRENCY", ID: "EUR"}, Parent: "root"},
		gnc.Account{ID: "orphan", Name: "Orphan", Type: "ASSET", Commodity: gnc.Cmdty{Space: "CURRENCY", ID: "EUR"}, Parent: "no-such-parent"},
	)
	f.Transactions = append(f.Transactions, gnc.Transaction{
		ID: "txn-bad", Description: "bad date", DatePosted: gnc.TS{Date: "not a date"},
	})
	f.Prices = append(f.Prices, gnc.Price{
		ID: "p-bad", Commodity: gnc.Cmdty{Space: "NASDAQ", ID: "AAPL"},
		Currency: gnc.Cmdty{Space: "CURRENCY", ID: "USD"}, Time: ts("2024-01-03"),
	})
	f.Entries = append(f.Entries, gnc.Entry{
		GUID: "ent-bad", Invoice: "inv-1", Qty: "oops", IPrice: "1/1",
	})

	b, err := NewBook(f)
	if err != nil {
		t.Fatalf("NewBook: %v", err)
	}
	if got := len(b.Accounts()); got != 11 {
		t.Errorf("len(Accounts()) = %d, want 11 (malformed ones skipped)", got)
	}
	if got := len(b.Transactions()); got != 7 {
		t.Errorf("len(Transactions()) = %d, want 7", got)
	}
	if got := len(b.Prices()); got != 3 {
		t.Errorf("len(Prices()) = %d, want 3", got)
	}
	if got := len(mustInvoice(t, b, "inv-1").Entries()); got != 1 {
		t.Errorf("invoice inv-1 has %d entries, want 1", got)
	}
}

func TestNewBookSkipsAccountCycles(t *testing.T) {
	f := testFile()
	f.Accounts = append(f.Accounts,
		gnc.Account{ID: "cyc-a", Name: "Loop A", Type: "ASSET", Commodity: gnc.Cmdty{Space: "CURRENCY", ID: "EUR"}, Parent: "cyc-b"},
		gnc.Account{ID: "cyc-b", Name: "Loop B", Type: "ASSET", Commodity: gnc.Cmdty{Space: "CURRENCY", ID: "EUR"}, Parent: "cyc-a"},
	)

	b, err := NewBook(f)
	if err != nil {
		t.Fatalf("NewBook: %v", err)
	}
	if got := len(b.Accounts()); got != 11 {
		t.Errorf("len(Accounts()) = %d, want 11 (cyclic ones skipped)", got)
	}
	if a := b.AccountByID("cyc-a"); a != nil {
		t.Errorf("AccountByID(cyc-a) = %v, want nil", a)
	}
	if a := b.AccountByID("cyc-b"); a != nil {
		t.Errorf("AccountByID(cyc-b) = %v, want nil", a)
	}
}

func TestNewBookSkipsOrphanSubtrees(t *testing.T) {
	f := testFile()
	// the child comes first so it is linked to its parent before the parent
	// itself is rejected for its missing parent
	f.Accounts = append(f.Accounts,
		gnc.Account{ID: "stray-child", Name: "Stray Child", Type: "ASSET", Commodity: gnc.Cmdty{Space: "CURRENCY", ID: "EUR"}, Parent: "stray"},
		gnc.Account{ID: "stray", Name: "Stray", Type: "ASSET", Commodity: gnc.Cmdty{Space: "CURRENCY", ID: "EUR"}, Parent: "no-such-parent"},
	)

	b, err := NewBook(f)
	if err != nil {
		t.Fatalf("NewBook: %v", err)
	}
	if got := len(b.Accounts()); got != 11 {
		t.Errorf("len(Accounts()) = %d, want 11 (orphan subtree skipped)", got)
	}
	if a := b.AccountByID("stray-child"); a != nil {
		t.Errorf("AccountByID(stray-child) = %v, want nil", a)
	}
	if a := b.AccountByFullName("Stray Child"); a != nil {
		t.Errorf("AccountByFullName(Stray Child) = %v, want nil", a)
	}
}

func TestNewBookFlagsShortTransactions(t *testing.T) {
	f := testFile()
	f.Transactions = append(f.Transactions, gnc.Transaction{
		ID: "txn-solo", Currency: gnc.Cmdty{Space: "CURRENCY", ID: "EUR"},
		Description: "one-legged", DatePosted: ts("2024-03-02"),
		Splits: []gnc.Split{
			{ID: "s-solo", Account: "bank", Value: "100/100", Quantity: "100/100"},
		},
	})

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(io.Discard)

	b, err := NewBook(f)
	if err != nil {
		t.Fatalf("NewBook: %v", err)
	}
	if b.TransactionByID("txn-solo") == nil {
		t.Fatal("transaction txn-solo not found, short transactions must stay indexed")
	}
	if !strings.Contains(buf.String(), "one-legged") {
		t.Errorf("building the book logged %q, want a mention of the one-legged transaction", buf.String())
	}
}

func TestNewBookRequiresSingleRoot(t *testing.T) {
	f := testFile()
	f.Accounts = append(f.Accounts, gnc.Account{
		ID: "root2", Name: "Second Root", Type: "ROOT",
		Commodity: gnc.Cmdty{Space: "CURRENCY", ID: "EUR"},
	})
	if _, err := NewBook(f); err == nil {
		t.Error("NewBook with two root accounts: got nil error, want failure")
	}

	f = testFile()
	f.Accounts = nil
	if _, err := NewBook(f); err == nil {
		t.Error("NewBook with no accounts: got nil error, want failure")
	}
}

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "12345/100", want: "123.45"},
		{in: "-3570/100", want: "-35.7"},
		{in: "10/1", want: "10"},
		{in: "0/100", want: "0"},
		{in: "42.5", want: "42.5"},
		{in: "", wantErr: true},
		{in: "1/0", wantErr: true},
		{in: "x/100", wantErr: true},
		{in: "100/x", wantErr: true},
	}
	for _, tc := range tests {
		got, err := parseNumeric(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseNumeric(%q): got nil error, want failure", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseNumeric(%q): %v", tc.in, err)
			continue
		}
		if want, _ := decimal.NewFromString(tc.want); !got.Equal(want) {
			t.Errorf("parseNumeric(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
