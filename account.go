package gncbook

import (
	"fmt"
	"strings"

	"github.com/gncbook/gncbook/date"
)

// AccountType classifies accounts in the chart of accounts.
type AccountType int

const (
	AccountRoot AccountType = iota
	AccountAsset
	AccountBank
	AccountCash
	AccountCredit
	AccountLiability
	AccountIncome
	AccountExpense
	AccountEquity
	AccountReceivable
	AccountPayable
	AccountStock
	AccountMutual
	AccountTrading
)

func (t AccountType) String() string {
	switch t {
	case AccountRoot:
		return "ROOT"
	case AccountAsset:
		return "ASSET"
	case AccountBank:
		return "BANK"
	case AccountCash:
		return "CASH"
	case AccountCredit:
		return "CREDIT"
	case AccountLiability:
		return "LIABILITY"
	case AccountIncome:
		return "INCOME"
	case AccountExpense:
		return "EXPENSE"
	case AccountEquity:
		return "EQUITY"
	case AccountReceivable:
		return "RECEIVABLE"
	case AccountPayable:
		return "PAYABLE"
	case AccountStock:
		return "STOCK"
	case AccountMutual:
		return "MUTUAL"
	case AccountTrading:
		return "TRADING"
	default:
		return "UNKNOWN"
	}
}

// ParseAccountType parses the on-file account type tag. An unrecognized tag
// is an *UnknownAccountTypeError, never a default.
func ParseAccountType(tag string) (AccountType, error) {
	switch strings.ToUpper(tag) {
	case "ROOT":
		return AccountRoot, nil
	case "ASSET":
		return AccountAsset, nil
	case "BANK":
		return AccountBank, nil
	case "CASH":
		return AccountCash, nil
	case "CREDIT":
		return AccountCredit, nil
	case "LIABILITY":
		return AccountLiability, nil
	case "INCOME":
		return AccountIncome, nil
	case "EXPENSE":
		return AccountExpense, nil
	case "EQUITY":
		return AccountEquity, nil
	case "RECEIVABLE":
		return AccountReceivable, nil
	case "PAYABLE":
		return AccountPayable, nil
	case "STOCK":
		return AccountStock, nil
	case "MUTUAL":
		return AccountMutual, nil
	case "CURRENCY", "TRADING":
		return AccountTrading, nil
	default:
		return 0, &UnknownAccountTypeError{Tag: tag}
	}
}

// Account is one node of the book's account tree.
type Account struct {
	book        *Book
	id          string
	name        string
	description string
	typ         AccountType
	commodity   CmdtyID

	parent   *Account
	children []*Account
	splits   []*Split // splits booked against this account, in file order
}

func (a *Account) ID() string          { return a.id }
func (a *Account) Name() string        { return a.name }
func (a *Account) Description() string { return a.description }
func (a *Account) Type() AccountType   { return a.typ }
func (a *Account) Commodity() CmdtyID  { return a.commodity }
func (a *Account) Parent() *Account    { return a.parent }
func (a *Account) IsRoot() bool        { return a.parent == nil }

// Children returns the direct child accounts, in file order.
func (a *Account) Children() []*Account { return a.children }

// Splits returns the splits booked against this account, in file order.
func (a *Account) Splits() []*Split { return a.splits }

// FullName is the colon-separated path from the root, root excluded,
// e.g. "Assets:Bank:Checking".
func (a *Account) FullName() string {
	if a.parent == nil {
		return ""
	}
	if prefix := a.parent.FullName(); prefix != "" {
		return prefix + ":" + a.name
	}
	return a.name
}

// Depth is the number of hops to the root account.
func (a *Account) Depth() int {
	if a.parent == nil {
		return 0
	}
	return a.parent.Depth() + 1
}

// Balance sums the account's split quantities (in the account's commodity)
// for splits posted on or before asOf. Child accounts are not included; see
// BalanceRecursive.
func (a *Account) Balance(asOf date.Date) Quantity {
	var total Quantity
	for _, s := range a.splits {
		if s.txn.datePosted.After(asOf) {
			continue
		}
		total = total.Add(s.quantity)
	}
	return total
}

// BalanceRecursive is the account's balance plus all descendants' balances.
// It is only meaningful when the whole subtree shares one commodity; use
// BalanceRecursiveIn otherwise.
func (a *Account) BalanceRecursive(asOf date.Date) Quantity {
	total := a.Balance(asOf)
	for _, c := range a.children {
		total = total.Add(c.BalanceRecursive(asOf))
	}
	return total
}

// BalanceIn values the account balance as of a date in the given currency,
// converting through the book's price database when the account commodity
// differs from the target currency.
func (a *Account) BalanceIn(asOf date.Date, currency string) (Money, error) {
	bal := a.Balance(asOf)
	return a.book.convert(bal, a.commodity, currency, asOf)
}

// BalanceRecursiveIn values the whole subtree in the given currency.
func (a *Account) BalanceRecursiveIn(asOf date.Date, currency string) (Money, error) {
	total, err := a.BalanceIn(asOf, currency)
	if err != nil {
		return Money{}, err
	}
	for _, c := range a.children {
		sub, err := c.BalanceRecursiveIn(asOf, currency)
		if err != nil {
			return Money{}, fmt.Errorf("account %q: %w", c.FullName(), err)
		}
		total = total.Add(sub)
	}
	return total, nil
}
