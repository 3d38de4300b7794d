package gncbook

import (
	"fmt"

	"github.com/gncbook/gncbook/date"
)

// TaxType discriminates how a tax table entry is computed.
type TaxType int

const (
	TaxPercent TaxType = iota // percentage of the taxed amount
	TaxValue                  // fixed amount per document
)

func (t TaxType) String() string {
	if t == TaxValue {
		return "VALUE"
	}
	return "PERCENT"
}

// ParseTaxType parses the on-file tax entry type tag.
func ParseTaxType(tag string) (TaxType, error) {
	switch tag {
	case "PERCENT", "1":
		return TaxPercent, nil
	case "VALUE", "2":
		return TaxValue, nil
	default:
		return 0, fmt.Errorf("unknown tax entry type %q", tag)
	}
}

// TaxTableEntry is one component of a tax table: a percentage or a fixed
// value booked to a tax account.
type TaxTableEntry struct {
	accountID string
	typ       TaxType
	amount    Quantity // percent value for TaxPercent, monetary value for TaxValue
}

func (e TaxTableEntry) AccountID() string { return e.accountID }
func (e TaxTableEntry) Type() TaxType     { return e.typ }
func (e TaxTableEntry) Amount() Quantity  { return e.amount }

// TaxTable is a named set of tax components referenced by invoice entries.
type TaxTable struct {
	id      string
	name    string
	entries []TaxTableEntry
}

func (t *TaxTable) ID() string               { return t.id }
func (t *TaxTable) Name() string             { return t.name }
func (t *TaxTable) Entries() []TaxTableEntry { return t.entries }

// TaxOn computes the tax this table levies on a subtotal, in the subtotal's
// currency.
func (t *TaxTable) TaxOn(subtotal Money) Money {
	tax := M(0, subtotal.Currency())
	for _, e := range t.entries {
		switch e.typ {
		case TaxPercent:
			tax = tax.Add(subtotal.Mul(e.amount).Div(Q(100)))
		case TaxValue:
			tax = tax.Add(M(e.amount.Decimal(), subtotal.Currency()))
		}
	}
	return tax
}

// BillTerms describes payment terms referenced by invoices and owners.
type BillTerms struct {
	id          string
	name        string
	description string
	dueDays     int
}

func (b *BillTerms) ID() string          { return b.id }
func (b *BillTerms) Name() string        { return b.name }
func (b *BillTerms) Description() string { return b.description }
func (b *BillTerms) DueDays() int        { return b.dueDays }

// DueDate returns the day a document posted on the given date falls due.
func (b *BillTerms) DueDate(posted date.Date) date.Date {
	return posted.Add(b.dueDays)
}
