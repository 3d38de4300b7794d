package gncbook

import (
	"fmt"

	"github.com/gncbook/gncbook/date"
	"github.com/gncbook/gncbook/gnc"
)

// PriceSource records where a quote came from.
type PriceSource int

const (
	SourceUnknown PriceSource = iota
	SourceUserPrice
	SourceUserXferPrice
	SourceUserInvoice
	SourceFinanceQuote
)

func (s PriceSource) String() string {
	switch s {
	case SourceUserPrice:
		return "user:price"
	case SourceUserXferPrice:
		return "user:xfer-price"
	case SourceUserInvoice:
		return "user:invoice"
	case SourceFinanceQuote:
		return "Finance::Quote"
	default:
		return "unknown"
	}
}

// ParsePriceSource maps the on-file source string; unrecognized sources are
// SourceUnknown, they do not invalidate the quote.
func ParsePriceSource(tag string) PriceSource {
	switch tag {
	case "user:price", "user:price-editor":
		return SourceUserPrice
	case "user:xfer-dialog", "user:xfer-price":
		return SourceUserXferPrice
	case "user:invoice", "user:invoice-post":
		return SourceUserInvoice
	case "Finance::Quote":
		return SourceFinanceQuote
	default:
		return SourceUnknown
	}
}

// PriceType tags how the quote was established.
type PriceType int

const (
	PriceTypeUnknown PriceType = iota
	PriceTypeLast
	PriceTypeTransaction
)

func (t PriceType) String() string {
	switch t {
	case PriceTypeLast:
		return "last"
	case PriceTypeTransaction:
		return "transaction"
	default:
		return "unknown"
	}
}

// Price is one quote of the price database: the value of one unit of From in
// the currency To, on a date.
type Price struct {
	id     string
	from   CmdtyID
	to     CmdtyID
	date   date.Date
	value  Quantity
	source PriceSource
	typ    PriceType
}

func (p *Price) ID() string          { return p.id }
func (p *Price) From() CmdtyID       { return p.from }
func (p *Price) To() CmdtyID         { return p.to }
func (p *Price) Date() date.Date     { return p.date }
func (p *Price) Value() Quantity     { return p.value }
func (p *Price) Source() PriceSource { return p.source }
func (p *Price) Type() PriceType     { return p.typ }

// newPrice validates and types a raw quote record. Quotes missing namespace,
// code, date or value are malformed; the caller logs and skips them
// individually, they never abort resolution for other quotes.
func newPrice(rec gnc.Price) (*Price, error) {
	from := cmdtyID(rec.Commodity)
	to := cmdtyID(rec.Currency)
	if from.Space == "" || from.Code == "" {
		return nil, fmt.Errorf("quote %s: missing commodity namespace or code", rec.ID)
	}
	if to.Code == "" {
		return nil, fmt.Errorf("quote %s: missing currency", rec.ID)
	}
	if rec.Value == "" {
		return nil, fmt.Errorf("quote %s (%s): null value", rec.ID, from)
	}
	value, err := parseNumeric(rec.Value)
	if err != nil {
		return nil, fmt.Errorf("quote %s (%s): bad value %q: %w", rec.ID, from, rec.Value, err)
	}
	on, err := date.ParseTimestamp(rec.Time.Date)
	if err != nil {
		return nil, fmt.Errorf("quote %s (%s): bad date %q: %w", rec.ID, from, rec.Time.Date, err)
	}
	typ := PriceTypeUnknown
	switch rec.Type {
	case "last":
		typ = PriceTypeLast
	case "transaction":
		typ = PriceTypeTransaction
	}
	return &Price{
		id:     rec.ID,
		from:   from,
		to:     to,
		date:   on,
		value:  Q(value),
		source: ParsePriceSource(rec.Source),
		typ:    typ,
	}, nil
}

// Prices returns all well-formed quotes in file order.
func (b *Book) Prices() []*Price { return b.prices }

// PricesFor returns the quotes whose "from" side is the given commodity, in
// file order.
func (b *Book) PricesFor(id CmdtyID) []*Price {
	var out []*Price
	for _, p := range b.prices {
		if p.from.Equal(id) {
			out = append(out, p)
		}
	}
	return out
}

// maxPriceHops bounds the recursive conversion of a quote's "to" currency
// into the default currency. Exceeding it is not an error, it is the defined
// "no price found" outcome; the bound guards against cyclic quote graphs
// without cycle detection.
const maxPriceHops = 5

// LatestPrice resolves the latest quoted price of a commodity or currency,
// expressed in the book's default currency. Quotes against a non-default
// currency are converted through that currency's own latest price,
// recursively, up to maxPriceHops.
//
// Among equally dated candidates the last one in file order wins. The second
// return value is false when no usable quote exists.
func (b *Book) LatestPrice(id CmdtyID) (Money, bool) {
	return b.resolvePrice(id, date.Date{}, 0)
}

// PriceAsOf is LatestPrice restricted to quotes dated on or before asOf.
func (b *Book) PriceAsOf(id CmdtyID, asOf date.Date) (Money, bool) {
	return b.resolvePrice(id, asOf, 0)
}

// resolvePrice implements the depth-bounded price graph walk. A zero asOf
// means no date restriction.
func (b *Book) resolvePrice(id CmdtyID, asOf date.Date, depth int) (Money, bool) {
	if depth > maxPriceHops {
		return Money{}, false // fail closed on pathological quote graphs
	}
	def := Currency(b.defaultCurrency)
	if id.Equal(def) {
		return M(1, b.defaultCurrency), true
	}
	var best *Price
	var bestValue Money
	for _, p := range b.prices {
		if !p.from.Equal(id) {
			continue
		}
		if !asOf.IsZero() && p.date.After(asOf) {
			continue
		}
		value := M(p.value.Decimal(), b.defaultCurrency)
		if !p.to.Equal(def) {
			factor, ok := b.resolvePrice(p.to, asOf, depth+1)
			if !ok {
				continue
			}
			value = factor.Mul(p.value)
		}
		// later date wins; on equal dates the last quote in file order wins
		if best == nil || !p.date.Before(best.date) {
			best, bestValue = p, value
		}
	}
	if best == nil {
		return Money{}, false
	}
	return bestValue, true
}

// convert values a quantity of a commodity in the target currency as of a
// date, going through the default currency when needed.
func (b *Book) convert(qty Quantity, commodity CmdtyID, currency string, asOf date.Date) (Money, error) {
	if commodity.IsCurrency() && commodity.Code == currency {
		return M(qty.Decimal(), currency), nil
	}
	price, ok := b.PriceAsOf(commodity, asOf)
	if !ok {
		return Money{}, fmt.Errorf("no price found for %s as of %s", commodity, asOf)
	}
	inDefault := price.Mul(qty)
	if currency == b.defaultCurrency {
		return inDefault, nil
	}
	rate, ok := b.PriceAsOf(Currency(currency), asOf)
	if !ok {
		return Money{}, fmt.Errorf("no exchange rate found for %s as of %s", currency, asOf)
	}
	return M(inDefault.Amount().Div(rate.Amount()), currency), nil
}
