package gncbook

import (
	"testing"

	"github.com/gncbook/gncbook/date"
	"github.com/gncbook/gncbook/gnc"
)

var (
	testAAPL = CmdtyID{Space: "NASDAQ", Code: "AAPL"}
)

// priceFile wraps a quote list in the minimal buildable book.
func priceFile(prices ...gnc.Price) *gnc.File {
	return &gnc.File{
		Accounts: []gnc.Account{
			{ID: "root", Name: "Root Account", Type: "ROOT", Commodity: gnc.Cmdty{Space: "CURRENCY", ID: "EUR"}},
		},
		Prices:          prices,
		DefaultCurrency: "EUR",
	}
}

func TestLatestPrice(t *testing.T) {
	b := testBook(t)

	// latest AAPL quote is 170 USD, converted through the 0.9 EUR/USD rate
	got, ok := b.LatestPrice(testAAPL)
	if !ok {
		t.Fatal("LatestPrice(AAPL): no price found")
	}
	if !got.Equal(M(153, "EUR")) {
		t.Errorf("LatestPrice(AAPL) = %s, want 153 EUR", got)
	}

	// the default currency always prices at exactly 1
	got, ok = b.LatestPrice(Currency("EUR"))
	if !ok || !got.Equal(M(1, "EUR")) {
		t.Errorf("LatestPrice(EUR) = %s, %v, want 1 EUR", got, ok)
	}

	if _, ok := b.LatestPrice(CmdtyID{Space: "NASDAQ", Code: "MSFT"}); ok {
		t.Error("LatestPrice(MSFT): got a price for an unquoted commodity")
	}
}

func TestPriceAsOf(t *testing.T) {
	b := testBook(t)
	tests := []struct {
		asOf   string
		want   string
		wantOK bool
	}{
		// the USD rate only exists from 2024-02-15 on; before that the AAPL
		// quote cannot reach the default currency and resolution fails closed
		{asOf: "2024-01-31", wantOK: false},
		{asOf: "2024-02-20", want: "135", wantOK: true}, // 150 USD x 0.9
		{asOf: "2024-12-31", want: "153", wantOK: true}, // 170 USD x 0.9
	}
	for _, tc := range tests {
		got, ok := b.PriceAsOf(testAAPL, date.MustParse(tc.asOf))
		if ok != tc.wantOK {
			t.Errorf("PriceAsOf(AAPL, %s): ok = %v, want %v", tc.asOf, ok, tc.wantOK)
			continue
		}
		if ok && got.Amount().String() != tc.want {
			t.Errorf("PriceAsOf(AAPL, %s) = %s, want %s EUR", tc.asOf, got.Amount(), tc.want)
		}
	}
}

// A cyclic quote graph must terminate as "no price found", not recurse
// forever.
func TestPriceCycleFailsClosed(t *testing.T) {
	gbp := gnc.Cmdty{Space: "CURRENCY", ID: "GBP"}
	chf := gnc.Cmdty{Space: "CURRENCY", ID: "CHF"}
	b, err := NewBook(priceFile(
		gnc.Price{ID: "c-1", Commodity: gbp, Currency: chf, Time: ts("2024-01-01"), Value: "11/10"},
		gnc.Price{ID: "c-2", Commodity: chf, Currency: gbp, Time: ts("2024-01-01"), Value: "10/11"},
	))
	if err != nil {
		t.Fatalf("NewBook: %v", err)
	}
	if _, ok := b.LatestPrice(Currency("GBP")); ok {
		t.Error("LatestPrice(GBP): got a price out of a quote cycle")
	}
}

// Among quotes for the same commodity the later date wins; among equal dates
// the last quote in file order wins.
func TestPriceTieBreak(t *testing.T) {
	usd := gnc.Cmdty{Space: "CURRENCY", ID: "USD"}
	eur := gnc.Cmdty{Space: "CURRENCY", ID: "EUR"}
	b, err := NewBook(priceFile(
		gnc.Price{ID: "t-1", Commodity: usd, Currency: eur, Time: ts("2024-05-01"), Value: "8/10"},
		gnc.Price{ID: "t-2", Commodity: usd, Currency: eur, Time: ts("2024-05-01"), Value: "85/100"},
		gnc.Price{ID: "t-3", Commodity: usd, Currency: eur, Time: ts("2024-04-01"), Value: "99/100"},
	))
	if err != nil {
		t.Fatalf("NewBook: %v", err)
	}
	got, ok := b.LatestPrice(Currency("USD"))
	if !ok {
		t.Fatal("LatestPrice(USD): no price found")
	}
	if got.Amount().String() != "0.85" {
		t.Errorf("LatestPrice(USD) = %s, want 0.85 (same-date quotes resolve to the later one in file order)", got.Amount())
	}
}

func TestPricesFor(t *testing.T) {
	b := testBook(t)
	if got := len(b.PricesFor(testAAPL)); got != 2 {
		t.Errorf("len(PricesFor(AAPL)) = %d, want 2", got)
	}
	// ISO4217 and CURRENCY namespaces identify the same unit
	if got := len(b.PricesFor(CmdtyID{Space: "ISO4217", Code: "USD"})); got != 1 {
		t.Errorf("len(PricesFor(ISO4217:USD)) = %d, want 1", got)
	}
}

func TestNewPriceValidation(t *testing.T) {
	aapl := gnc.Cmdty{Space: "NASDAQ", ID: "AAPL"}
	usd := gnc.Cmdty{Space: "CURRENCY", ID: "USD"}
	tests := []struct {
		name string
		rec  gnc.Price
	}{
		{"missing commodity", gnc.Price{ID: "x", Currency: usd, Time: ts("2024-01-01"), Value: "1/1"}},
		{"missing currency", gnc.Price{ID: "x", Commodity: aapl, Time: ts("2024-01-01"), Value: "1/1"}},
		{"null value", gnc.Price{ID: "x", Commodity: aapl, Currency: usd, Time: ts("2024-01-01")}},
		{"bad value", gnc.Price{ID: "x", Commodity: aapl, Currency: usd, Time: ts("2024-01-01"), Value: "1/0"}},
		{"bad date", gnc.Price{ID: "x", Commodity: aapl, Currency: usd, Time: gnc.TS{Date: "whenever"}, Value: "1/1"}},
	}
	for _, tc := range tests {
		if _, err := newPrice(tc.rec); err == nil {
			t.Errorf("%s: newPrice returned no error", tc.name)
		}
	}

	p, err := newPrice(gnc.Price{
		ID: "ok", Commodity: aapl, Currency: usd, Time: ts("2024-01-01"),
		Value: "301/2", Source: "Finance::Quote", Type: "last",
	})
	if err != nil {
		t.Fatalf("newPrice: %v", err)
	}
	if !p.Value().Equal(Q(150.5)) {
		t.Errorf("Value() = %s, want 150.5", p.Value())
	}
	if p.Source() != SourceFinanceQuote || p.Type() != PriceTypeLast {
		t.Errorf("Source()/Type() = %s/%s, want Finance::Quote/last", p.Source(), p.Type())
	}
}
