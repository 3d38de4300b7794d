package gncbook

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/PaesslerAG/jsonpath"
	"github.com/gncbook/gncbook/date"
	"github.com/shopspring/decimal"
)

// QuoteSpec describes where quotes live inside an arbitrary JSON document:
// a jsonpath expression selecting the quote rows, and the keys carrying date
// and value inside each row.
type QuoteSpec struct {
	Commodity CmdtyID // the "from" side the quotes are recorded for
	Currency  string  // the "to" currency the quotes are denominated in
	Rows      string  // jsonpath selecting the rows, e.g. "$.data[*]"
	DateKey   string  // row key holding the quote date
	ValueKey  string  // row key holding the quote value
}

// ImportQuotes extracts price quotes from a JSON document and appends them to
// the book's price table, in document order, so they take part in price
// resolution like any on-file quote. It returns the number of quotes
// imported. Malformed rows are logged and skipped individually.
func (b *Book) ImportQuotes(r io.Reader, spec QuoteSpec) (int, error) {
	if spec.Commodity.IsZero() {
		return 0, fmt.Errorf("quote import: no commodity given")
	}
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return 0, fmt.Errorf("quote import: invalid JSON: %w", err)
	}
	jrows, err := jsonpath.Get(spec.Rows, jobj)
	if err != nil {
		return 0, fmt.Errorf("quote import: %q: %w", spec.Rows, err)
	}
	// jsonpath is never clear about whether it returns a list or a single
	// answer; normalize to a list.
	rows, ok := jrows.([]any)
	if !ok {
		rows = []any{jrows}
	}

	currency := spec.Currency
	if currency == "" {
		currency = b.defaultCurrency
	}
	count := 0
	for i, jrow := range rows {
		row, ok := jrow.(map[string]any)
		if !ok {
			log.Printf("quote row %d: not an object, skipped", i)
			continue
		}
		on, err := quoteDate(row[spec.DateKey])
		if err != nil {
			log.Printf("quote row %d: %v, skipped", i, err)
			continue
		}
		value, err := quoteValue(row[spec.ValueKey])
		if err != nil {
			log.Printf("quote row %d: %v, skipped", i, err)
			continue
		}
		b.prices = append(b.prices, &Price{
			from:   spec.Commodity,
			to:     Currency(currency),
			date:   on,
			value:  Q(value),
			source: SourceFinanceQuote,
			typ:    PriceTypeLast,
		})
		count++
	}
	return count, nil
}

func quoteDate(v any) (date.Date, error) {
	s, ok := v.(string)
	if !ok {
		return date.Date{}, fmt.Errorf("date is %T, want string", v)
	}
	on, err := date.Parse(s)
	if err != nil {
		return date.Date{}, fmt.Errorf("bad date %q: %w", s, err)
	}
	return on, nil
}

func quoteValue(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case float64:
		return decimal.NewFromFloat(val), nil
	case string:
		return decimal.NewFromString(val)
	case json.Number:
		return decimal.NewFromString(val.String())
	default:
		return decimal.Zero, fmt.Errorf("value is %T, want number or string", v)
	}
}
