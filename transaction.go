package gncbook

import (
	"strings"

	"github.com/gncbook/gncbook/date"
)

// SplitAction tags the business meaning of a split. GnuCash stores the action
// as a free, locale-dependent string; unrecognized values map to ActionOther
// with the raw tag preserved on the split.
type SplitAction int

const (
	ActionNone SplitAction = iota
	ActionInvoice
	ActionBill
	ActionVoucher
	ActionPayment
	ActionBuy
	ActionSell
	ActionIncrease
	ActionDecrease
	ActionOther
)

func (a SplitAction) String() string {
	switch a {
	case ActionNone:
		return ""
	case ActionInvoice:
		return "Invoice"
	case ActionBill:
		return "Bill"
	case ActionVoucher:
		return "Voucher"
	case ActionPayment:
		return "Payment"
	case ActionBuy:
		return "Buy"
	case ActionSell:
		return "Sell"
	case ActionIncrease:
		return "Increase"
	case ActionDecrease:
		return "Decrease"
	default:
		return "Other"
	}
}

// splitActions maps on-file action strings to tags. The file stores the
// string in the locale the book was written with; the German forms show up
// in practice often enough to warrant entries of their own.
var splitActions = map[string]SplitAction{
	"":                    ActionNone,
	"invoice":             ActionInvoice,
	"rechnung":            ActionInvoice,
	"bill":                ActionBill,
	"lieferantenrechnung": ActionBill,
	"voucher":             ActionVoucher,
	"expense":             ActionVoucher,
	"auslagenerstattung":  ActionVoucher,
	"payment":             ActionPayment,
	"zahlung":             ActionPayment,
	"buy":                 ActionBuy,
	"kauf":                ActionBuy,
	"sell":                ActionSell,
	"verkauf":             ActionSell,
	"increase":            ActionIncrease,
	"zunahme":             ActionIncrease,
	"decrease":            ActionDecrease,
	"abnahme":             ActionDecrease,
}

// ParseSplitAction maps an on-file action string to its tag.
func ParseSplitAction(tag string) SplitAction {
	if a, ok := splitActions[strings.ToLower(tag)]; ok {
		return a
	}
	return ActionOther
}

// Split is one leg of a transaction: a value in the transaction currency and
// a quantity in the account's commodity.
type Split struct {
	id        string
	txn       *Transaction
	account   *Account
	memo      string
	action    SplitAction
	rawAction string
	value     Money    // in the transaction currency
	quantity  Quantity // in the account commodity
	lotID     string
}

func (s *Split) ID() string                { return s.id }
func (s *Split) Transaction() *Transaction { return s.txn }
func (s *Split) Account() *Account         { return s.account }
func (s *Split) Memo() string              { return s.memo }
func (s *Split) Action() SplitAction       { return s.action }
func (s *Split) RawAction() string         { return s.rawAction }
func (s *Split) Value() Money              { return s.value }
func (s *Split) Quantity() Quantity        { return s.quantity }

// LotID returns the lot this split belongs to, or "" if it is not
// lot-associated. Lot-associated splits participate in invoice payment
// tracking.
func (s *Split) LotID() string { return s.lotID }

// Transaction groups two or more splits posted on a date, denominated in one
// currency.
type Transaction struct {
	id          string
	currency    string
	num         string
	datePosted  date.Date
	dateEntered date.Date
	description string
	splits      []*Split
}

func (t *Transaction) ID() string             { return t.id }
func (t *Transaction) Currency() string       { return t.currency }
func (t *Transaction) Num() string            { return t.num }
func (t *Transaction) DatePosted() date.Date  { return t.datePosted }
func (t *Transaction) DateEntered() date.Date { return t.dateEntered }
func (t *Transaction) Description() string    { return t.description }

// Splits returns the transaction's splits in file order.
func (t *Transaction) Splits() []*Split { return t.splits }

// IsBalanced reports whether the split values (in the transaction currency)
// sum exactly to zero. The file stores exact fixed-point values, so there is
// no tolerance.
func (t *Transaction) IsBalanced() bool {
	var sum Money
	for _, s := range t.splits {
		sum = sum.Add(s.value)
	}
	return sum.IsZero()
}
